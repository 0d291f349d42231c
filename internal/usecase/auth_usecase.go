// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// --- Input DTOs ---

// SignupInput defines the data required to open a merchant account.
type SignupInput struct {
	Name     string
	Email    string
	Password string
}

// LoginInput defines the data required for a merchant to log in.
type LoginInput struct {
	Email    string
	Password string
}

// RefreshTokenInput carries the refresh token of the current session.
type RefreshTokenInput struct {
	RefreshToken string
}

// LogoutInput carries the refresh token of the session to end.
type LogoutInput struct {
	RefreshToken string
}

// ForgotPasswordInput starts the password reset flow for an email address.
type ForgotPasswordInput struct {
	Email string
}

// ResetPasswordInput redeems a reset token.
type ResetPasswordInput struct {
	Token       string
	NewPassword string
}

// VerifyPhoneInput carries the Firebase ID token issued after a successful SMS OTP.
type VerifyPhoneInput struct {
	IDToken string
}

// GoogleCallbackInput carries the ID token returned by Google Sign-In.
type GoogleCallbackInput struct {
	IDToken string
}

// --- Output DTOs ---

// LoginOutput returns the generated tokens after a successful login or signup.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// RefreshTokenOutput returns a new access token.
type RefreshTokenOutput struct {
	AccessToken string
}

// AuthUsecase defines the account and session operations of the dashboard.
type AuthUsecase interface {
	Signup(ctx context.Context, input *SignupInput) (*LoginOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	RefreshToken(ctx context.Context, input *RefreshTokenInput) (*RefreshTokenOutput, error)
	Logout(ctx context.Context, input *LogoutInput) error
	ForgotPassword(ctx context.Context, input *ForgotPasswordInput) error
	ResetPassword(ctx context.Context, input *ResetPasswordInput) error
	VerifyPhone(ctx context.Context, actor entity.Actor, input *VerifyPhoneInput) (*entity.User, error)
	GoogleCallback(ctx context.Context, input *GoogleCallbackInput) (*LoginOutput, error)
	CurrentUser(ctx context.Context, actor entity.Actor) (*entity.User, error)
}
