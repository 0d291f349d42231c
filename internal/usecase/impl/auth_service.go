package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"
	"storefront/internal/util"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	defaultPasswordResetTTL = time.Hour
	resetTokenBytes         = 32
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager         repository.TransactionManager
	userRepo          repository.UserRepository
	authRepo          repository.AuthRepository
	refreshTokenRepo  repository.RefreshTokenRepository
	hasher            service.PasswordHasher
	tokenService      service.TokenService
	googleAuthService service.OAuthAuthService
	phoneVerifier     service.PhoneVerifier
	publisher         service.EventPublisher
	passwordResetTTL  time.Duration
	now               func() time.Time
	logger            *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager         repository.TransactionManager
	UserRepo          repository.UserRepository
	AuthRepo          repository.AuthRepository
	RefreshTokenRepo  repository.RefreshTokenRepository
	Hasher            service.PasswordHasher
	TokenService      service.TokenService
	GoogleAuthService service.OAuthAuthService
	PhoneVerifier     service.PhoneVerifier
	Publisher         service.EventPublisher
	Config            *config.Config
	Logger            *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	resetTTL := defaultPasswordResetTTL
	if params.Config != nil && params.Config.Auth != nil && params.Config.Auth.PasswordResetTTL > 0 {
		resetTTL = params.Config.Auth.PasswordResetTTL
	}

	return &authService{
		txManager:         params.TxManager,
		userRepo:          params.UserRepo,
		authRepo:          params.AuthRepo,
		refreshTokenRepo:  params.RefreshTokenRepo,
		hasher:            params.Hasher,
		tokenService:      params.TokenService,
		googleAuthService: params.GoogleAuthService,
		phoneVerifier:     params.PhoneVerifier,
		publisher:         params.Publisher,
		passwordResetTTL:  resetTTL,
		now:               time.Now,
		logger:            params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Signup creates a merchant account with an email credential and opens a session.
func (srv *authService) Signup(ctx context.Context, input *usecase.SignupInput) (*usecase.LoginOutput, error) {
	email := normalizeEmail(input.Email)
	if email == "" || input.Password == "" {
		return nil, domainerrors.Validation(msgCredentialsRequired)
	}
	if err := srv.hasher.ValidatePassword(input.Password); err != nil {
		srv.log(ctx).Warn("Password validation failed during signup", slog.String("email", email))

		return nil, err
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during signup", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during signup")
	}

	srv.log(ctx).Info("Starting signup", slog.String("email", email))

	var registeredUser *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		authRepo := repoFactory.AuthRepo()

		_, err := authRepo.FindAuthentication(ctx, entity.ProviderTypeEmail, email)
		if err == nil {
			return errors.Wrap(domainerrors.ErrUserAlreadyExists, "email credential already registered")
		}
		if !errors.Is(err, repository.ErrAuthNotFound) {
			return errors.Wrap(err, "failed to find authentication")
		}

		newUser := &entity.User{Name: displayNameFor(input.Name, email), Email: email}
		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.Wrap(err, "failed to create user during signup")
		}

		newAuth := &entity.Authentication{
			UserID:         newUser.ID,
			Provider:       entity.ProviderTypeEmail,
			ProviderUserID: email,
			PasswordHash:   hashedPassword,
		}
		if err := authRepo.CreateAuthentication(ctx, newAuth); err != nil {
			return errors.Wrap(err, "failed to create authentication during signup")
		}

		registeredUser = newUser

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute signup transaction", slog.String("email", email), slog.Any("error", err))

		return nil, keepOrReplace(err, domainerrors.ErrUserCreationFailed, "failed to execute signup transaction")
	}

	return srv.openSession(ctx, registeredUser)
}

// Login checks an email credential and opens a session.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	email := normalizeEmail(input.Email)
	if email == "" || input.Password == "" {
		return nil, domainerrors.Validation(msgCredentialsRequired)
	}

	srv.log(ctx).Debug("Starting user login", slog.String("email", email))

	authRecord, err := srv.authRepo.FindAuthentication(ctx, entity.ProviderTypeEmail, email)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.Any("error", err))
		if errors.Is(err, repository.ErrAuthNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, keepOrReplace(err, domainerrors.ErrInternalError, "failed to load login authentication")
	}

	// bcrypt is CPU-bound; no transaction is held while it runs.
	if !srv.hasher.Check(input.Password, authRecord.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	loggedInUser, err := srv.userRepo.FindByID(ctx, authRecord.UserID)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.Any("error", err))

		return nil, keepOrReplace(err, domainerrors.ErrInternalError, "failed to load login user")
	}

	return srv.openSession(ctx, loggedInUser)
}

// RefreshToken issues a new access token. The refresh token itself is not rotated.
func (srv *authService) RefreshToken(ctx context.Context, input *usecase.RefreshTokenInput) (*usecase.RefreshTokenOutput, error) {
	srv.log(ctx).Info("Attempting to refresh access token")

	claims, err := srv.tokenService.ValidateToken(input.RefreshToken)
	if err != nil || claims.Type != service.TokenTypeRefresh {
		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "invalid refresh token")
	}

	tokenHash := srv.tokenService.HashToken(input.RefreshToken)
	if _, err := srv.refreshTokenRepo.FindRefreshTokenByHash(ctx, tokenHash); err != nil {
		if errors.IsAny(err, repository.ErrRefreshTokenNotFound, repository.ErrRefreshTokenExpired) {
			return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh token not found or expired")
		}

		return nil, keepOrReplace(err, domainerrors.ErrInternalError, "failed to load refresh token")
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "session user no longer exists")
		}

		return nil, keepOrReplace(err, domainerrors.ErrInternalError, "failed to find user")
	}

	accessToken, _, err := srv.tokenService.GenerateTokens(user.ID, merchantRoles().ToStrings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate new access token")
	}

	return &usecase.RefreshTokenOutput{AccessToken: accessToken}, nil
}

// Logout ends the session bound to the refresh token.
func (srv *authService) Logout(ctx context.Context, input *usecase.LogoutInput) error {
	srv.log(ctx).Info("Attempting to log out")

	if input.RefreshToken == "" {
		return nil
	}
	if _, err := srv.tokenService.ValidateToken(input.RefreshToken); err != nil {
		// An invalid token may still have a stored row.
		srv.log(ctx).Warn("Logout with invalid token", slog.Any("error", err))
	}

	tokenHash := srv.tokenService.HashToken(input.RefreshToken)
	if err := srv.refreshTokenRepo.DeleteRefreshTokenByHash(ctx, tokenHash); err != nil && !errors.Is(err, repository.ErrRefreshTokenNotFound) {
		srv.log(ctx).Error("Failed to delete refresh token", slog.Any("error", err))

		return keepOrReplace(err, domainerrors.ErrInternalError, "failed to delete refresh token")
	}
	srv.log(ctx).Info("Successfully logged out")

	return nil
}

// ForgotPassword issues a single-use reset token and hands it to the mail worker through
// the event publisher. Unknown addresses succeed silently.
func (srv *authService) ForgotPassword(ctx context.Context, input *usecase.ForgotPasswordInput) error {
	email := normalizeEmail(input.Email)
	if email == "" {
		return domainerrors.Validation(msgCredentialsRequired)
	}

	authRecord, err := srv.authRepo.FindAuthentication(ctx, entity.ProviderTypeEmail, email)
	if err != nil {
		if errors.Is(err, repository.ErrAuthNotFound) {
			srv.log(ctx).Info("Password reset requested for unknown email", slog.String("email", email))

			return nil
		}

		return keepOrReplace(err, domainerrors.ErrInternalError, "failed to find authentication")
	}

	token, err := util.RandomToken(resetTokenBytes)
	if err != nil {
		return errors.Wrap(domainerrors.ErrInternalError, "failed to generate reset token")
	}

	reset := &entity.PasswordReset{
		UserID:    authRecord.UserID,
		TokenHash: srv.tokenService.HashToken(token),
		ExpiresAt: srv.now().Add(srv.passwordResetTTL),
	}
	if err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.PasswordResetRepo().Create(ctx, reset)
	}); err != nil {
		srv.log(ctx).Error("Failed to store password reset", slog.Any("userID", authRecord.UserID), slog.Any("error", err))

		return keepOrReplace(err, domainerrors.ErrInternalError, "failed to store password reset")
	}

	event := &service.Event{
		Type:      constants.EventPasswordResetRequested,
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		UserID:    authRecord.UserID.String(),
		Attributes: map[string]string{
			"email":      email,
			"token":      token,
			"expires_at": reset.ExpiresAt.UTC().Format(time.RFC3339),
		},
	}
	if err := srv.publisher.Publish(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish password reset event", slog.Any("userID", authRecord.UserID), slog.Any("error", err))

		return errors.Wrap(domainerrors.ErrInternalError, "failed to dispatch password reset")
	}

	return nil
}

// ResetPassword redeems a reset token, replaces the password and ends every session.
func (srv *authService) ResetPassword(ctx context.Context, input *usecase.ResetPasswordInput) error {
	if strings.TrimSpace(input.Token) == "" {
		return domainerrors.Validation(msgTokenRequired)
	}
	if err := srv.hasher.ValidatePassword(input.NewPassword); err != nil {
		return err
	}

	hashedPassword, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash new password")
	}

	tokenHash := srv.tokenService.HashToken(strings.TrimSpace(input.Token))
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		resetRepo := repoFactory.PasswordResetRepo()

		reset, err := resetRepo.FindByHash(ctx, tokenHash)
		if err != nil {
			if errors.Is(err, repository.ErrPasswordResetNotFound) {
				return errors.Wrap(domainerrors.ErrPasswordResetInvalid, "unknown reset token")
			}

			return errors.Wrap(err, "failed to find password reset")
		}
		now := srv.now()
		if !reset.Usable(now) {
			return errors.Wrap(domainerrors.ErrPasswordResetInvalid, "reset token used or expired")
		}

		authRecord, err := repoFactory.AuthRepo().FindAuthenticationByUser(ctx, reset.UserID, entity.ProviderTypeEmail)
		if err != nil {
			if errors.Is(err, repository.ErrAuthNotFound) {
				return errors.Wrap(domainerrors.ErrPasswordResetInvalid, "user has no email credential")
			}

			return errors.Wrap(err, "failed to find email credential")
		}

		if err := repoFactory.AuthRepo().UpdatePasswordHash(ctx, authRecord.ID, hashedPassword); err != nil {
			return errors.Wrap(err, "failed to update password")
		}
		if err := resetRepo.MarkUsed(ctx, reset.ID, now); err != nil {
			if errors.Is(err, repository.ErrPasswordResetNotFound) {
				return errors.Wrap(domainerrors.ErrPasswordResetInvalid, "reset token redeemed concurrently")
			}

			return errors.Wrap(err, "failed to mark reset token used")
		}

		return repoFactory.RefreshTokenRepo().DeleteRefreshTokensByUserID(ctx, reset.UserID)
	})
	if err != nil {
		srv.log(ctx).Warn("Password reset failed", slog.Any("error", err))

		return keepOrReplace(err, domainerrors.ErrInternalError, "failed to execute password reset transaction")
	}

	srv.log(ctx).Info("Password reset completed")

	return nil
}

// VerifyPhone stores the phone number proven by a Firebase SMS sign-in on the caller's account.
func (srv *authService) VerifyPhone(ctx context.Context, actor entity.Actor, input *usecase.VerifyPhoneInput) (*entity.User, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.IDToken) == "" {
		return nil, domainerrors.Validation(msgTokenRequired)
	}

	verified, err := srv.phoneVerifier.VerifyPhoneToken(ctx, input.IDToken)
	if err != nil {
		srv.log(ctx).Warn("Phone verification failed", slog.Any("userID", actor.UserID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to verify phone token")
	}

	user, err := srv.userRepo.FindByID(ctx, actor.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "actor has no account")
		}

		return nil, keepOrReplace(err, domainerrors.ErrUserUpdateFailed, "failed to load user")
	}

	verifiedAt := srv.now()
	user.Phone = verified.PhoneNumber
	user.PhoneVerifiedAt = &verifiedAt
	if err := srv.userRepo.Update(ctx, user); err != nil {
		srv.log(ctx).Error("Failed to store verified phone", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, keepOrReplace(err, domainerrors.ErrUserUpdateFailed, "failed to store verified phone")
	}

	event := &service.Event{
		Type:       constants.EventPhoneVerified,
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		UserID:     user.ID.String(),
		Attributes: map[string]string{"phone": verified.PhoneNumber},
	}
	if err := srv.publisher.Publish(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish phone verified event", slog.Any("userID", user.ID), slog.Any("error", err))
	}

	return user, nil
}

// GoogleCallback handles the user login or registration via Google Sign-In.
func (srv *authService) GoogleCallback(ctx context.Context, input *usecase.GoogleCallbackInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Info("Handling Google callback")

	oauthUser, err := srv.googleAuthService.VerifyIDToken(ctx, input.IDToken)
	if err != nil {
		return nil, errors.Wrap(err, "failed to verify Google ID token")
	}

	var loggedInUser *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, err := srv.findOrCreateGoogleUser(ctx, repoFactory, oauthUser)
		if err != nil {
			return err
		}
		loggedInUser = user

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute Google sign-in transaction", slog.Any("error", err))

		return nil, keepOrReplace(err, domainerrors.ErrOAuthFailed, "failed to execute Google user authentication transaction")
	}

	return srv.openSession(ctx, loggedInUser)
}

// CurrentUser returns the account of the caller.
func (srv *authService) CurrentUser(ctx context.Context, actor entity.Actor) (*entity.User, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}

	user, err := srv.userRepo.FindByID(ctx, actor.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUnauthenticated, "actor has no account")
		}

		return nil, keepOrReplace(err, domainerrors.ErrInternalError, "failed to load user")
	}

	return user, nil
}

// findOrCreateGoogleUser resolves the Google identity to an account. A Google account whose
// email matches an existing merchant is linked to that merchant.
func (srv *authService) findOrCreateGoogleUser(ctx context.Context, repoFactory repository.RepositoryFactory, oauthUser *service.OAuthUser) (*entity.User, error) {
	authRepo := repoFactory.AuthRepo()
	userRepo := repoFactory.UserRepo()

	authRecord, err := authRepo.FindAuthentication(ctx, entity.ProviderTypeGoogle, oauthUser.ID)
	if err == nil {
		srv.log(ctx).Info("Found existing Google user", slog.Any("userID", authRecord.UserID))

		user, err := userRepo.FindByID(ctx, authRecord.UserID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to find user by id for google auth")
		}

		return user, nil
	}
	if !errors.Is(err, repository.ErrAuthNotFound) {
		return nil, errors.Wrap(err, "failed to find authentication")
	}

	email := normalizeEmail(oauthUser.Email)
	user, err := userRepo.FindByEmail(ctx, email)
	switch {
	case errors.Is(err, repository.ErrUserNotFound):
		srv.log(ctx).Info("Google user not found, creating new user", slog.String("email", email))

		user = &entity.User{Name: displayNameFor(oauthUser.Name, email), Email: email}
		if err := userRepo.Create(ctx, user); err != nil {
			return nil, errors.Wrap(err, "failed to create user for Google authentication")
		}
	case err != nil:
		return nil, errors.Wrap(err, "failed to find user by email")
	default:
		srv.log(ctx).Info("Linking Google account to existing user", slog.Any("userID", user.ID))
	}

	newAuth := &entity.Authentication{
		UserID:         user.ID,
		Provider:       entity.ProviderTypeGoogle,
		ProviderUserID: oauthUser.ID,
	}
	if err := authRepo.CreateAuthentication(ctx, newAuth); err != nil {
		return nil, errors.Wrap(err, "failed to create Google authentication")
	}

	return user, nil
}

// openSession issues a token pair and stores the refresh token.
func (srv *authService) openSession(ctx context.Context, user *entity.User) (*usecase.LoginOutput, error) {
	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID, merchantRoles().ToStrings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	if err := srv.storeRefreshToken(ctx, user.ID, refreshToken); err != nil {
		srv.log(ctx).Error("Failed to store refresh token", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, keepOrReplace(err, domainerrors.ErrInternalError, "failed to create refresh token")
	}
	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

func (srv *authService) storeRefreshToken(ctx context.Context, userID uuid.UUID, refreshToken string) error {
	newRefreshToken := &entity.RefreshToken{
		UserID:    userID,
		TokenHash: srv.tokenService.HashToken(refreshToken),
		ExpiresAt: srv.now().Add(srv.tokenService.GetRefreshTokenDuration()),
	}

	if err := srv.refreshTokenRepo.CreateRefreshToken(ctx, newRefreshToken); err != nil {
		return errors.Wrap(err, "failed to store refresh token")
	}

	return nil
}

// merchantRoles is the role set of every account; platform admins are provisioned out of band.
func merchantRoles() entity.Roles {
	return entity.Roles{entity.RoleMerchant}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// displayNameFor falls back to the local part of the email address.
func displayNameFor(name, email string) string {
	if name = strings.TrimSpace(name); name != "" {
		return name
	}
	if at := strings.IndexByte(email, '@'); at > 0 {
		return email[:at]
	}

	return email
}
