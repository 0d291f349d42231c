package google

import (
	"context"
	"log/slog"
	"testing"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newTestService(validate validateFunc) *AuthServiceImpl {
	cfg := &config.Config{GoogleOAuth: &config.GoogleOAuthConfig{ClientID: "test_client_id"}}
	svc := NewAuthService(cfg, slog.Default()).(*AuthServiceImpl)
	svc.validate = validate

	return svc
}

func TestAuthService_VerifyIDToken(t *testing.T) {
	var gotAudience string
	svc := newTestService(func(_ context.Context, _, audience string) (*idtoken.Payload, error) {
		gotAudience = audience

		return &idtoken.Payload{
			Subject: "test_user_123",
			Claims: map[string]any{
				"email":          "test@example.com",
				"name":           "Test User",
				"picture":        "https://example.com/a.png",
				"email_verified": true,
			},
		}, nil
	})

	user, err := svc.VerifyIDToken(context.Background(), "id-token")
	require.NoError(t, err)
	assert.Equal(t, "test_client_id", gotAudience)
	assert.Equal(t, "test_user_123", user.ID)
	assert.Equal(t, "test@example.com", user.Email)
	assert.Equal(t, "Test User", user.Name)
	assert.Equal(t, entity.ProviderTypeGoogle, user.Provider)
	assert.True(t, user.EmailVerified)
}

func TestAuthService_RejectsInvalidToken(t *testing.T) {
	svc := newTestService(func(context.Context, string, string) (*idtoken.Payload, error) {
		return nil, errors.New("idtoken: token expired")
	})

	user, err := svc.VerifyIDToken(context.Background(), "id-token")
	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrOAuthTokenInvalid)
}

func TestAuthService_RejectsUnverifiedEmail(t *testing.T) {
	svc := newTestService(func(context.Context, string, string) (*idtoken.Payload, error) {
		return &idtoken.Payload{
			Subject: "test_user_123",
			Claims:  map[string]any{"email": "test@example.com", "email_verified": "false"},
		}, nil
	})

	user, err := svc.VerifyIDToken(context.Background(), "id-token")
	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrOAuthFailed)
}

func TestAuthService_NotConfigured(t *testing.T) {
	svc := NewAuthService(&config.Config{}, slog.Default())

	user, err := svc.VerifyIDToken(context.Background(), "id-token")
	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrServiceNotConfigured)
}

func TestAuthService_GetProvider(t *testing.T) {
	assert.Equal(t, entity.ProviderTypeGoogle, NewAuthService(&config.Config{}, slog.Default()).GetProvider())
}

func TestBoolClaim(t *testing.T) {
	claims := map[string]any{"a": true, "b": "true", "c": "yes", "d": 1}

	assert.True(t, boolClaim(claims, "a"))
	assert.True(t, boolClaim(claims, "b"))
	assert.False(t, boolClaim(claims, "c"))
	assert.False(t, boolClaim(claims, "d"))
	assert.False(t, boolClaim(claims, "missing"))
}
