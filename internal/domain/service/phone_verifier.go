package service

import "context"

// VerifiedPhone is the outcome of a successful phone OTP challenge.
type VerifiedPhone struct {
	ProviderUID string
	PhoneNumber string // E.164
}

// PhoneVerifier checks the ID token a client receives after completing an SMS OTP challenge.
type PhoneVerifier interface {
	VerifyPhoneToken(ctx context.Context, idToken string) (*VerifiedPhone, error)
}
