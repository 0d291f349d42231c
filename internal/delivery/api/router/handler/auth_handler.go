package handler

import (
	"log/slog"
	"net/http"
	"time"

	"storefront/config"
	"storefront/internal/delivery/api/response"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/constants"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// Pages that HTML forms are redirected to.
const (
	pageLogin          = "/login"
	pageSignup         = "/signup"
	pageForgotPassword = "/forgot-password"
	pageResetPassword  = "/reset-password"
	pageVerifyOTP      = "/verify-otp"
	pageDashboard      = "/dashboard"
)

// Messages carried by form redirects.
const (
	msgWelcome       = "تم إنشاء حسابك بنجاح"
	msgLoggedOut     = "تم تسجيل الخروج"
	msgResetSent     = "إذا كان البريد مسجلاً فستصلك رسالة لإعادة تعيين كلمة المرور"
	msgPasswordReset = "تم تغيير كلمة المرور، يمكنك تسجيل الدخول الآن"
	msgPhoneVerified = "تم تأكيد رقم الهاتف"
)

// AuthHandler serves signup, login and session endpoints.
type AuthHandler struct {
	uc            usecase.AuthUsecase
	tokens        service.TokenService
	secureCookies bool
	logger        *slog.Logger
}

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Tokens service.TokenService
	Config *config.Config
	Logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		uc:            params.AuthUC,
		tokens:        params.Tokens,
		secureCookies: params.Config.Auth != nil && params.Config.Auth.SecureCookies,
		logger:        params.Logger,
	}
}

type signupRequest struct {
	Name     string `json:"name" form:"name" validate:"max=100" msg:"الاسم طويل جداً"`
	Email    string `json:"email" form:"email" validate:"required,email" msg:"البريد الإلكتروني غير صالح"`
	Password string `json:"password" form:"password" validate:"required,min=6" msg:"كلمة المرور يجب أن تكون 6 أحرف على الأقل"`
}

type loginRequest struct {
	Email    string `json:"email" form:"email" validate:"required,email" msg:"البريد الإلكتروني غير صالح"`
	Password string `json:"password" form:"password" validate:"required" msg:"البريد الإلكتروني وكلمة المرور مطلوبة"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" form:"refresh_token"`
}

type forgotPasswordRequest struct {
	Email string `json:"email" form:"email" validate:"required,email" msg:"البريد الإلكتروني غير صالح"`
}

type resetPasswordRequest struct {
	Token    string `json:"token" form:"token" validate:"required" msg:"رابط إعادة تعيين كلمة المرور غير صالح أو منتهي الصلاحية"`
	Password string `json:"password" form:"password" validate:"required,min=6" msg:"كلمة المرور يجب أن تكون 6 أحرف على الأقل"`
}

type idTokenRequest struct {
	IDToken string `json:"id_token" form:"id_token" validate:"required" msg:"رمز التحقق مطلوب"`
}

type sessionView struct {
	User         *userView `json:"user"`
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresIn    int64     `json:"expires_in"`
}

// Signup opens a merchant account and starts a session.
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := bindAndValidate(c, &req); err != nil {
		return h.fail(c, pageSignup, err)
	}

	out, err := h.uc.Signup(c.Request().Context(), &usecase.SignupInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return h.fail(c, pageSignup, err)
	}

	return h.startSession(c, http.StatusCreated, out, msgWelcome)
}

// Login starts a session for email and password credentials.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return h.fail(c, pageLogin, err)
	}

	out, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return h.fail(c, pageLogin, err)
	}

	return h.startSession(c, http.StatusOK, out, "")
}

// GoogleCallback starts a session from a Google Sign-In ID token.
func (h *AuthHandler) GoogleCallback(c echo.Context) error {
	var req idTokenRequest
	if err := bindAndValidate(c, &req); err != nil {
		return h.fail(c, pageLogin, err)
	}

	out, err := h.uc.GoogleCallback(c.Request().Context(), &usecase.GoogleCallbackInput{IDToken: req.IDToken})
	if err != nil {
		return h.fail(c, pageLogin, err)
	}

	return h.startSession(c, http.StatusOK, out, "")
}

// Refresh issues a new access token for the refresh token cookie or body value.
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req refreshRequest
	if err := c.Bind(&req); err != nil {
		return response.HandleAppError(c, domainerrors.ErrValidationFailed.WrapMessage(err.Error()))
	}

	token := refreshTokenFrom(c, req.RefreshToken)
	if token == "" {
		return response.HandleAppError(c, domainerrors.ErrRefreshTokenInvalid.WrapMessage("no refresh token"))
	}

	out, err := h.uc.RefreshToken(c.Request().Context(), &usecase.RefreshTokenInput{RefreshToken: token})
	if err != nil {
		h.clearSession(c)

		return response.HandleAppError(c, err)
	}

	h.setCookie(c, constants.CookieSession, out.AccessToken, h.tokens.GetAccessTokenDuration())

	return response.Success(c, http.StatusOK, map[string]any{
		"access_token": out.AccessToken,
		"expires_in":   int64(h.tokens.GetAccessTokenDuration().Seconds()),
	})
}

// Logout revokes the refresh token and clears the session cookies.
func (h *AuthHandler) Logout(c echo.Context) error {
	var req refreshRequest
	_ = c.Bind(&req)

	if token := refreshTokenFrom(c, req.RefreshToken); token != "" {
		if err := h.uc.Logout(c.Request().Context(), &usecase.LogoutInput{RefreshToken: token}); err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Warn("Failed to revoke refresh token",
				slog.Any("error", err))
		}
	}
	h.clearSession(c)

	if isFormPost(c) {
		return response.Redirect(c, pageLogin, msgLoggedOut)
	}

	return response.Success(c, http.StatusOK, nil)
}

// ForgotPassword sends a reset link. The answer is the same for unknown emails.
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req forgotPasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return h.fail(c, pageForgotPassword, err)
	}

	if err := h.uc.ForgotPassword(c.Request().Context(), &usecase.ForgotPasswordInput{Email: req.Email}); err != nil {
		return h.fail(c, pageForgotPassword, err)
	}

	if isFormPost(c) {
		return response.Redirect(c, pageForgotPassword, msgResetSent)
	}

	return response.Success(c, http.StatusAccepted, map[string]string{"message": msgResetSent})
}

// ResetPassword redeems a reset token.
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req resetPasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return h.fail(c, pageResetPassword, err)
	}

	err := h.uc.ResetPassword(c.Request().Context(), &usecase.ResetPasswordInput{
		Token:       req.Token,
		NewPassword: req.Password,
	})
	if err != nil {
		return h.fail(c, pageResetPassword, err)
	}

	if isFormPost(c) {
		return response.Redirect(c, pageLogin, msgPasswordReset)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": msgPasswordReset})
}

// VerifyOTP stores the phone number proven by a Firebase phone sign-in.
func (h *AuthHandler) VerifyOTP(c echo.Context) error {
	var req idTokenRequest
	if err := bindAndValidate(c, &req); err != nil {
		return h.fail(c, pageVerifyOTP, err)
	}

	user, err := h.uc.VerifyPhone(c.Request().Context(), deliverycontext.GetActor(c), &usecase.VerifyPhoneInput{IDToken: req.IDToken})
	if err != nil {
		return h.fail(c, pageVerifyOTP, err)
	}

	if isFormPost(c) {
		return response.Redirect(c, pageDashboard, msgPhoneVerified)
	}

	return response.Success(c, http.StatusOK, newUserView(user))
}

// Me returns the authenticated merchant.
func (h *AuthHandler) Me(c echo.Context) error {
	user, err := h.uc.CurrentUser(c.Request().Context(), deliverycontext.GetActor(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newUserView(user))
}

func (h *AuthHandler) startSession(c echo.Context, status int, out *usecase.LoginOutput, message string) error {
	accessTTL := h.tokens.GetAccessTokenDuration()
	h.setCookie(c, constants.CookieSession, out.AccessToken, accessTTL)
	h.setCookie(c, constants.CookieRefreshToken, out.RefreshToken, h.tokens.GetRefreshTokenDuration())

	if isFormPost(c) {
		return response.Redirect(c, pageDashboard, message)
	}

	return response.Success(c, status, &sessionView{
		User:         newUserView(out.User),
		AccessToken:  out.AccessToken,
		RefreshToken: out.RefreshToken,
		ExpiresIn:    int64(accessTTL.Seconds()),
	})
}

// fail answers a form post with a redirect back to page carrying the error message,
// and API calls with the error envelope.
func (h *AuthHandler) fail(c echo.Context, page string, err error) error {
	if !isFormPost(c) {
		return response.HandleAppError(c, err)
	}

	message := domainerrors.ErrInternalError.Message()
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		message = appErr.Message()
	}
	if appErr == nil || appErr.HTTPCode() >= http.StatusInternalServerError {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Error("Auth form failed",
			slog.String("page", page),
			slog.Any("error", err))
	}

	return response.Redirect(c, page, message)
}

func (h *AuthHandler) setCookie(c echo.Context, name, value string, ttl time.Duration) {
	c.SetCookie(&http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) clearSession(c echo.Context) {
	for _, name := range []string{constants.CookieSession, constants.CookieRefreshToken} {
		c.SetCookie(&http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			Secure:   h.secureCookies,
			SameSite: http.SameSiteLaxMode,
		})
	}
}

func refreshTokenFrom(c echo.Context, fromBody string) string {
	if fromBody != "" {
		return fromBody
	}
	if cookie, err := c.Cookie(constants.CookieRefreshToken); err == nil {
		return cookie.Value
	}

	return ""
}
