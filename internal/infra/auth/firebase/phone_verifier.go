// Package firebase verifies phone numbers confirmed through Firebase Authentication SMS OTP.
package firebase

import (
	"context"
	"log/slog"

	"storefront/config"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

const phoneSignInProvider = "phone"

// tokenVerifier is the subset of *auth.Client used here.
type tokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

type phoneVerifier struct {
	client tokenVerifier
	logger *slog.Logger
}

// NewPhoneVerifier builds the Firebase Auth client. Without a firebase section the returned
// verifier answers every call with ErrServiceNotConfigured.
func NewPhoneVerifier(cfg *config.Config, logger *slog.Logger) (service.PhoneVerifier, error) {
	if cfg.Firebase == nil {
		logger.Warn("Firebase is not configured, phone verification is disabled")

		return &phoneVerifier{logger: logger}, nil
	}

	var opts []option.ClientOption
	if cfg.Firebase.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.Firebase.CredentialsPath))
	}

	ctx := context.Background()
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.Firebase.ProjectID}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get Firebase auth client")
	}

	return &phoneVerifier{client: client, logger: logger}, nil
}

// VerifyPhoneToken checks the Firebase ID token issued after the SMS challenge and returns the
// phone number it proves.
func (v *phoneVerifier) VerifyPhoneToken(ctx context.Context, idToken string) (*service.VerifiedPhone, error) {
	if v.client == nil {
		return nil, domainerrors.ErrServiceNotConfigured.WrapMessage("phone verification is not configured")
	}

	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		v.logger.WarnContext(ctx, "Firebase ID token rejected", slog.Any("error", err))

		return nil, domainerrors.ErrPhoneVerificationFailed.WrapMessage(err.Error())
	}

	if token.Firebase.SignInProvider != phoneSignInProvider {
		return nil, domainerrors.ErrPhoneVerificationFailed.WrapMessage("token was not issued by phone sign-in")
	}

	phone, _ := token.Claims["phone_number"].(string)
	if phone == "" {
		return nil, domainerrors.ErrPhoneVerificationFailed.WrapMessage("token carries no phone number")
	}

	return &service.VerifiedPhone{ProviderUID: token.UID, PhoneNumber: phone}, nil
}
