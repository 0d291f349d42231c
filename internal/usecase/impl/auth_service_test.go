package impl

import (
	"context"
	"testing"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type authServiceFixtures struct {
	service          usecase.AuthUsecase
	txManager        *mockRepo.MockTransactionManager
	repoFactory      *mockRepo.MockRepositoryFactory
	userRepo         *mockRepo.MockUserRepository
	authRepo         *mockRepo.MockAuthRepository
	refreshTokenRepo *mockRepo.MockRefreshTokenRepository
	txUserRepo       *mockRepo.MockUserRepository
	txAuthRepo       *mockRepo.MockAuthRepository
	txRefreshRepo    *mockRepo.MockRefreshTokenRepository
	txResetRepo      *mockRepo.MockPasswordResetRepository
	hasher           *mockSvc.MockPasswordHasher
	tokenService     *mockSvc.MockTokenService
	googleAuth       *mockSvc.MockOAuthAuthService
	phoneVerifier    *mockSvc.MockPhoneVerifier
	publisher        *mockSvc.MockEventPublisher
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	fx := authServiceFixtures{
		txManager:        mockRepo.NewMockTransactionManager(t),
		repoFactory:      mockRepo.NewMockRepositoryFactory(t),
		userRepo:         mockRepo.NewMockUserRepository(t),
		authRepo:         mockRepo.NewMockAuthRepository(t),
		refreshTokenRepo: mockRepo.NewMockRefreshTokenRepository(t),
		txUserRepo:       mockRepo.NewMockUserRepository(t),
		txAuthRepo:       mockRepo.NewMockAuthRepository(t),
		txRefreshRepo:    mockRepo.NewMockRefreshTokenRepository(t),
		txResetRepo:      mockRepo.NewMockPasswordResetRepository(t),
		hasher:           mockSvc.NewMockPasswordHasher(t),
		tokenService:     mockSvc.NewMockTokenService(t),
		googleAuth:       mockSvc.NewMockOAuthAuthService(t),
		phoneVerifier:    mockSvc.NewMockPhoneVerifier(t),
		publisher:        mockSvc.NewMockEventPublisher(t),
	}

	srv := NewAuthService(AuthServiceParams{
		TxManager:         fx.txManager,
		UserRepo:          fx.userRepo,
		AuthRepo:          fx.authRepo,
		RefreshTokenRepo:  fx.refreshTokenRepo,
		Hasher:            fx.hasher,
		TokenService:      fx.tokenService,
		GoogleAuthService: fx.googleAuth,
		PhoneVerifier:     fx.phoneVerifier,
		Publisher:         fx.publisher,
		Config:            newTestConfig(),
		Logger:            newDiscardLogger(),
	})
	srv.(*authService).now = func() time.Time { return fixedNow }
	fx.service = srv

	return fx
}

// expectSession sets up token generation and refresh token storage for userID.
func (f authServiceFixtures) expectSession(userID uuid.UUID) {
	f.tokenService.EXPECT().GenerateTokens(userID, []string{"merchant"}).Return("access-token", "refresh-token", nil)
	f.tokenService.EXPECT().HashToken("refresh-token").Return("refresh-hash")
	f.tokenService.EXPECT().GetRefreshTokenDuration().Return(7 * 24 * time.Hour)
	f.refreshTokenRepo.EXPECT().
		CreateRefreshToken(mock.Anything, mock.MatchedBy(func(token *entity.RefreshToken) bool {
			return token.UserID == userID && token.TokenHash == "refresh-hash" &&
				token.ExpiresAt.Equal(fixedNow.Add(7*24*time.Hour))
		})).
		Return(nil)
}

func TestAuthService_Signup_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.hasher.EXPECT().ValidatePassword("secret1").Return(nil)
	fx.hasher.EXPECT().Hash("secret1").Return("bcrypt-hash", nil)
	expectTx(fx.txManager, fx.repoFactory)
	fx.repoFactory.EXPECT().UserRepo().Return(fx.txUserRepo)
	fx.repoFactory.EXPECT().AuthRepo().Return(fx.txAuthRepo)
	fx.txAuthRepo.EXPECT().FindAuthentication(ctx, entity.ProviderTypeEmail, "owner@example.com").Return(nil, repository.ErrAuthNotFound)
	fx.txUserRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(user *entity.User) bool {
			return user.Email == "owner@example.com" && user.Name == "owner"
		})).
		Run(func(_ context.Context, user *entity.User) { user.ID = userID }).
		Return(nil)
	fx.txAuthRepo.EXPECT().
		CreateAuthentication(ctx, mock.MatchedBy(func(auth *entity.Authentication) bool {
			return auth.UserID == userID && auth.PasswordHash == "bcrypt-hash" && auth.Provider == entity.ProviderTypeEmail
		})).
		Return(nil)
	fx.expectSession(userID)

	output, err := fx.service.Signup(ctx, &usecase.SignupInput{Email: " Owner@Example.com ", Password: "secret1"})

	require.NoError(t, err)
	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, "refresh-token", output.RefreshToken)
	assert.Equal(t, userID, output.User.ID)
}

func TestAuthService_Signup_EmailTaken(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().ValidatePassword("secret1").Return(nil)
	fx.hasher.EXPECT().Hash("secret1").Return("bcrypt-hash", nil)
	expectTx(fx.txManager, fx.repoFactory)
	fx.repoFactory.EXPECT().UserRepo().Return(fx.txUserRepo)
	fx.repoFactory.EXPECT().AuthRepo().Return(fx.txAuthRepo)
	fx.txAuthRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeEmail, "owner@example.com").
		Return(&entity.Authentication{UserID: uuid.New()}, nil)

	_, err := fx.service.Signup(ctx, &usecase.SignupInput{Email: "owner@example.com", Password: "secret1"})

	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestAuthService_Signup_MissingCredentials(t *testing.T) {
	fx := createTestAuthService(t)

	_, err := fx.service.Signup(context.Background(), &usecase.SignupInput{Email: "   "})

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, msgCredentialsRequired, appErr.Message())
}

func TestAuthService_Login(t *testing.T) {
	userID := uuid.New()
	authRecord := &entity.Authentication{UserID: userID, Provider: entity.ProviderTypeEmail, PasswordHash: "bcrypt-hash"}

	tests := []struct {
		name    string
		setup   func(fx authServiceFixtures)
		wantErr error
	}{
		{
			name: "valid credentials",
			setup: func(fx authServiceFixtures) {
				fx.authRepo.EXPECT().FindAuthentication(mock.Anything, entity.ProviderTypeEmail, "owner@example.com").Return(authRecord, nil)
				fx.hasher.EXPECT().Check("secret1", "bcrypt-hash").Return(true)
				fx.userRepo.EXPECT().FindByID(mock.Anything, userID).Return(&entity.User{ID: userID}, nil)
				fx.expectSession(userID)
			},
		},
		{
			name: "unknown email",
			setup: func(fx authServiceFixtures) {
				fx.authRepo.EXPECT().FindAuthentication(mock.Anything, entity.ProviderTypeEmail, "owner@example.com").Return(nil, repository.ErrAuthNotFound)
			},
			wantErr: domainerrors.ErrInvalidCredentials,
		},
		{
			name: "wrong password",
			setup: func(fx authServiceFixtures) {
				fx.authRepo.EXPECT().FindAuthentication(mock.Anything, entity.ProviderTypeEmail, "owner@example.com").Return(authRecord, nil)
				fx.hasher.EXPECT().Check("secret1", "bcrypt-hash").Return(false)
			},
			wantErr: domainerrors.ErrInvalidCredentials,
		},
		{
			name: "database not configured",
			setup: func(fx authServiceFixtures) {
				fx.authRepo.EXPECT().FindAuthentication(mock.Anything, entity.ProviderTypeEmail, "owner@example.com").Return(nil, domainerrors.ErrServiceNotConfigured)
			},
			wantErr: domainerrors.ErrServiceNotConfigured,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAuthService(t)
			tt.setup(fx)

			output, err := fx.service.Login(context.Background(), &usecase.LoginInput{Email: "owner@example.com", Password: "secret1"})

			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				assert.Nil(t, output)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, userID, output.User.ID)
		})
	}
}

func TestAuthService_RefreshToken(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.tokenService.EXPECT().ValidateToken("refresh-token").Return(&service.Claims{UserID: userID, Type: service.TokenTypeRefresh}, nil)
	fx.tokenService.EXPECT().HashToken("refresh-token").Return("refresh-hash")
	fx.refreshTokenRepo.EXPECT().FindRefreshTokenByHash(ctx, "refresh-hash").Return(&entity.RefreshToken{UserID: userID}, nil)
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
	fx.tokenService.EXPECT().GenerateTokens(userID, []string{"merchant"}).Return("new-access", "unused", nil)

	output, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "refresh-token"})

	require.NoError(t, err)
	assert.Equal(t, "new-access", output.AccessToken)
}

func TestAuthService_RefreshToken_RejectsAccessToken(t *testing.T) {
	fx := createTestAuthService(t)

	fx.tokenService.EXPECT().ValidateToken("access-token").Return(&service.Claims{UserID: uuid.New(), Type: service.TokenTypeAccess}, nil)

	_, err := fx.service.RefreshToken(context.Background(), &usecase.RefreshTokenInput{RefreshToken: "access-token"})

	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
}

func TestAuthService_RefreshToken_Revoked(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.tokenService.EXPECT().ValidateToken("refresh-token").Return(&service.Claims{UserID: uuid.New(), Type: service.TokenTypeRefresh}, nil)
	fx.tokenService.EXPECT().HashToken("refresh-token").Return("refresh-hash")
	fx.refreshTokenRepo.EXPECT().FindRefreshTokenByHash(ctx, "refresh-hash").Return(nil, repository.ErrRefreshTokenExpired)

	_, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "refresh-token"})

	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
}

func TestAuthService_Logout(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.tokenService.EXPECT().ValidateToken("refresh-token").Return(nil, errors.New("token is expired"))
	fx.tokenService.EXPECT().HashToken("refresh-token").Return("refresh-hash")
	fx.refreshTokenRepo.EXPECT().DeleteRefreshTokenByHash(ctx, "refresh-hash").Return(repository.ErrRefreshTokenNotFound)

	assert.NoError(t, fx.service.Logout(ctx, &usecase.LogoutInput{RefreshToken: "refresh-token"}))
	assert.NoError(t, fx.service.Logout(ctx, &usecase.LogoutInput{}))
}

func TestAuthService_ForgotPassword_UnknownEmailIsSilent(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.authRepo.EXPECT().FindAuthentication(ctx, entity.ProviderTypeEmail, "ghost@example.com").Return(nil, repository.ErrAuthNotFound)

	assert.NoError(t, fx.service.ForgotPassword(ctx, &usecase.ForgotPasswordInput{Email: "ghost@example.com"}))
}

func TestAuthService_ForgotPassword_PublishesToken(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := deliverycontext.WithRequestID(context.Background(), "req-reset")
	userID := uuid.New()
	var published *service.Event

	fx.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeEmail, "owner@example.com").
		Return(&entity.Authentication{UserID: userID}, nil)
	fx.tokenService.EXPECT().HashToken(mock.AnythingOfType("string")).Return("reset-hash")
	expectTx(fx.txManager, fx.repoFactory)
	fx.repoFactory.EXPECT().PasswordResetRepo().Return(fx.txResetRepo)
	fx.txResetRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(reset *entity.PasswordReset) bool {
			return reset.UserID == userID && reset.TokenHash == "reset-hash" && reset.ExpiresAt.Equal(fixedNow.Add(time.Hour))
		})).
		Return(nil)
	fx.publisher.EXPECT().
		Publish(ctx, mock.AnythingOfType("*service.Event")).
		Run(func(_ context.Context, event *service.Event) { published = event }).
		Return(nil)

	require.NoError(t, fx.service.ForgotPassword(ctx, &usecase.ForgotPasswordInput{Email: "owner@example.com"}))

	require.NotNil(t, published)
	assert.Equal(t, constants.EventPasswordResetRequested, published.Type)
	assert.Equal(t, "req-reset", published.RequestID)
	assert.Equal(t, "owner@example.com", published.Attributes["email"])
	assert.Len(t, published.Attributes["token"], 64)
	assert.Equal(t, "2026-03-01T13:00:00Z", published.Attributes["expires_at"])
}

func TestAuthService_ResetPassword_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	userID := uuid.New()
	reset := &entity.PasswordReset{ID: uuid.New(), UserID: userID, ExpiresAt: fixedNow.Add(30 * time.Minute)}
	authRecord := &entity.Authentication{ID: uuid.New(), UserID: userID}

	fx.hasher.EXPECT().ValidatePassword("new-secret").Return(nil)
	fx.hasher.EXPECT().Hash("new-secret").Return("new-hash", nil)
	fx.tokenService.EXPECT().HashToken("reset-token").Return("reset-hash")
	expectTx(fx.txManager, fx.repoFactory)
	fx.repoFactory.EXPECT().PasswordResetRepo().Return(fx.txResetRepo)
	fx.repoFactory.EXPECT().AuthRepo().Return(fx.txAuthRepo)
	fx.repoFactory.EXPECT().RefreshTokenRepo().Return(fx.txRefreshRepo)
	fx.txResetRepo.EXPECT().FindByHash(ctx, "reset-hash").Return(reset, nil)
	fx.txAuthRepo.EXPECT().FindAuthenticationByUser(ctx, userID, entity.ProviderTypeEmail).Return(authRecord, nil)
	fx.txAuthRepo.EXPECT().UpdatePasswordHash(ctx, authRecord.ID, "new-hash").Return(nil)
	fx.txResetRepo.EXPECT().MarkUsed(ctx, reset.ID, fixedNow).Return(nil)
	fx.txRefreshRepo.EXPECT().DeleteRefreshTokensByUserID(ctx, userID).Return(nil)

	assert.NoError(t, fx.service.ResetPassword(ctx, &usecase.ResetPasswordInput{Token: "reset-token", NewPassword: "new-secret"}))
}

func TestAuthService_ResetPassword_ExpiredToken(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	reset := &entity.PasswordReset{ID: uuid.New(), UserID: uuid.New(), ExpiresAt: fixedNow.Add(-time.Minute)}

	fx.hasher.EXPECT().ValidatePassword("new-secret").Return(nil)
	fx.hasher.EXPECT().Hash("new-secret").Return("new-hash", nil)
	fx.tokenService.EXPECT().HashToken("reset-token").Return("reset-hash")
	expectTx(fx.txManager, fx.repoFactory)
	fx.repoFactory.EXPECT().PasswordResetRepo().Return(fx.txResetRepo)
	fx.txResetRepo.EXPECT().FindByHash(ctx, "reset-hash").Return(reset, nil)

	err := fx.service.ResetPassword(ctx, &usecase.ResetPasswordInput{Token: "reset-token", NewPassword: "new-secret"})

	assert.True(t, errors.Is(err, domainerrors.ErrPasswordResetInvalid))
}

func TestAuthService_VerifyPhone(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	actor := newActor()
	user := &entity.User{ID: actor.UserID, Email: "owner@example.com"}

	fx.phoneVerifier.EXPECT().VerifyPhoneToken(ctx, "firebase-id-token").Return(&service.VerifiedPhone{ProviderUID: "uid", PhoneNumber: "+201012345678"}, nil)
	fx.userRepo.EXPECT().FindByID(ctx, actor.UserID).Return(user, nil)
	fx.userRepo.EXPECT().Update(ctx, user).Return(nil)
	fx.publisher.EXPECT().
		Publish(ctx, mock.MatchedBy(func(event *service.Event) bool {
			return event.Type == constants.EventPhoneVerified && event.Attributes["phone"] == "+201012345678"
		})).
		Return(nil)

	updated, err := fx.service.VerifyPhone(ctx, actor, &usecase.VerifyPhoneInput{IDToken: "firebase-id-token"})

	require.NoError(t, err)
	assert.Equal(t, "+201012345678", updated.Phone)
	require.NotNil(t, updated.PhoneVerifiedAt)
	assert.Equal(t, fixedNow, *updated.PhoneVerifiedAt)
}

func TestAuthService_VerifyPhone_InvalidToken(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.phoneVerifier.EXPECT().VerifyPhoneToken(ctx, "bad").Return(nil, domainerrors.ErrPhoneVerificationFailed)

	_, err := fx.service.VerifyPhone(ctx, newActor(), &usecase.VerifyPhoneInput{IDToken: "bad"})

	assert.True(t, errors.Is(err, domainerrors.ErrPhoneVerificationFailed))
}

func TestAuthService_GoogleCallback_LinksExistingEmailUser(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	existing := &entity.User{ID: uuid.New(), Email: "owner@example.com"}

	fx.googleAuth.EXPECT().VerifyIDToken(ctx, "google-id-token").Return(&service.OAuthUser{
		ID:       "google-sub",
		Email:    "Owner@Example.com",
		Provider: entity.ProviderTypeGoogle,
	}, nil)
	expectTx(fx.txManager, fx.repoFactory)
	fx.repoFactory.EXPECT().UserRepo().Return(fx.txUserRepo)
	fx.repoFactory.EXPECT().AuthRepo().Return(fx.txAuthRepo)
	fx.txAuthRepo.EXPECT().FindAuthentication(ctx, entity.ProviderTypeGoogle, "google-sub").Return(nil, repository.ErrAuthNotFound)
	fx.txUserRepo.EXPECT().FindByEmail(ctx, "owner@example.com").Return(existing, nil)
	fx.txAuthRepo.EXPECT().
		CreateAuthentication(ctx, mock.MatchedBy(func(auth *entity.Authentication) bool {
			return auth.UserID == existing.ID && auth.Provider == entity.ProviderTypeGoogle && auth.ProviderUserID == "google-sub"
		})).
		Return(nil)
	fx.expectSession(existing.ID)

	output, err := fx.service.GoogleCallback(ctx, &usecase.GoogleCallbackInput{IDToken: "google-id-token"})

	require.NoError(t, err)
	assert.Equal(t, existing, output.User)
}

func TestAuthService_GoogleCallback_ExistingGoogleUser(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "owner@example.com"}

	fx.googleAuth.EXPECT().VerifyIDToken(ctx, "google-id-token").Return(&service.OAuthUser{ID: "google-sub", Email: user.Email}, nil)
	expectTx(fx.txManager, fx.repoFactory)
	fx.repoFactory.EXPECT().UserRepo().Return(fx.txUserRepo)
	fx.repoFactory.EXPECT().AuthRepo().Return(fx.txAuthRepo)
	fx.txAuthRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeGoogle, "google-sub").
		Return(&entity.Authentication{UserID: user.ID, Provider: entity.ProviderTypeGoogle}, nil)
	fx.txUserRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.expectSession(user.ID)

	output, err := fx.service.GoogleCallback(ctx, &usecase.GoogleCallbackInput{IDToken: "google-id-token"})

	require.NoError(t, err)
	assert.Equal(t, user.ID, output.User.ID)
}

func TestAuthService_CurrentUser_RequiresActor(t *testing.T) {
	fx := createTestAuthService(t)

	_, err := fx.service.CurrentUser(context.Background(), entity.Actor{})

	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
}

func TestDisplayNameFor(t *testing.T) {
	assert.Equal(t, "Mona", displayNameFor("  Mona ", "mona@example.com"))
	assert.Equal(t, "mona", displayNameFor("", "mona@example.com"))
	assert.Equal(t, "no-at-sign", displayNameFor("", "no-at-sign"))
}

func TestKeepOrReplace(t *testing.T) {
	passthrough := keepOrReplace(domainerrors.ErrSlugTaken, domainerrors.ErrCatalogSaveFailed, "ctx")
	assert.True(t, errors.Is(passthrough, domainerrors.ErrSlugTaken))

	dbErr := domainerrors.NewDatabaseExecuteError(errors.New("pq: duplicate"), "insert")
	replaced := keepOrReplace(errors.Wrap(dbErr, "tx"), domainerrors.ErrCatalogSaveFailed, "ctx")
	assert.True(t, errors.Is(replaced, domainerrors.ErrCatalogSaveFailed))
	assert.NotContains(t, replaced.Error(), "duplicate")

	plain := keepOrReplace(errors.New("boom"), domainerrors.ErrInternalError, "ctx")
	assert.True(t, errors.Is(plain, domainerrors.ErrInternalError))
}
