package firebase

import (
	"context"
	"log/slog"
	"testing"

	"storefront/config"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"

	"firebase.google.com/go/v4/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubVerifier struct {
	token *auth.Token
	err   error
}

func (s stubVerifier) VerifyIDToken(context.Context, string) (*auth.Token, error) {
	return s.token, s.err
}

func phoneToken(provider, phone string) *auth.Token {
	token := &auth.Token{UID: "uid-1", Claims: map[string]any{}}
	token.Firebase.SignInProvider = provider
	if phone != "" {
		token.Claims["phone_number"] = phone
	}

	return token
}

func TestPhoneVerifier_VerifyPhoneToken(t *testing.T) {
	tests := []struct {
		name      string
		verifier  stubVerifier
		wantPhone string
		wantErr   error
	}{
		{
			name:      "phone sign-in",
			verifier:  stubVerifier{token: phoneToken("phone", "+201001234567")},
			wantPhone: "+201001234567",
		},
		{
			name:     "other provider",
			verifier: stubVerifier{token: phoneToken("password", "+201001234567")},
			wantErr:  domainerrors.ErrPhoneVerificationFailed,
		},
		{
			name:     "missing phone claim",
			verifier: stubVerifier{token: phoneToken("phone", "")},
			wantErr:  domainerrors.ErrPhoneVerificationFailed,
		},
		{
			name:     "rejected token",
			verifier: stubVerifier{err: errors.New("ID token has expired")},
			wantErr:  domainerrors.ErrPhoneVerificationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &phoneVerifier{client: tt.verifier, logger: slog.Default()}

			phone, err := v.VerifyPhoneToken(context.Background(), "token")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, phone)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantPhone, phone.PhoneNumber)
			assert.Equal(t, "uid-1", phone.ProviderUID)
		})
	}
}

func TestPhoneVerifier_NotConfigured(t *testing.T) {
	v, err := NewPhoneVerifier(&config.Config{}, slog.Default())
	require.NoError(t, err)

	_, err = v.VerifyPhoneToken(context.Background(), "token")
	assert.ErrorIs(t, err, domainerrors.ErrServiceNotConfigured)
}
