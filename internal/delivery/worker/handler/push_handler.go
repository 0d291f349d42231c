// Package handler processes asynchronous events pushed to the worker.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// newRetryableError wraps an error as retryable
func newRetryableError(err error) error {
	return &retryableError{err: err}
}

// isRetryableError checks if an error is retryable
func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// tokenValidator checks a Google-signed push token for audience.
type tokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler handles Pub/Sub push messages carrying storefront events.
type PushHandler struct {
	verifyPushAuth   bool
	validateToken    tokenValidator
	publicBaseURL    string
	logger           *slog.Logger
	cache            service.StorefrontCache
	mailer           service.Mailer
	refreshTokenRepo repository.RefreshTokenRepository
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config           *config.Config
	Logger           *slog.Logger
	Cache            service.StorefrontCache
	Mailer           service.Mailer
	RefreshTokenRepo repository.RefreshTokenRepository
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Google signs push requests; the local publisher does not.
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvLocal

	return &PushHandler{
		verifyPushAuth:   verifyPushAuth,
		validateToken:    idtoken.Validate,
		publicBaseURL:    strings.TrimRight(params.Config.HTTP.PublicBaseURL, "/"),
		logger:           params.Logger,
		cache:            params.Cache,
		mailer:           params.Mailer,
		refreshTokenRepo: params.RefreshTokenRepo,
	}
}

// HandlePush handles incoming Pub/Sub push messages.
// Malformed messages are acknowledged so Pub/Sub does not redeliver them forever.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.Event
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Continue the trace of the request that published the event.
	logger := h.logger.With(
		slog.String("request_id", extractRequestID(&event, c)),
		slog.String("event_id", event.ID),
		slog.String("event_type", event.Type),
	)
	ctx = deliverycontext.WithLogger(ctx, logger)

	if err := h.dispatch(ctx, &event); err != nil {
		if isRetryableError(err) {
			logger.Warn("[Worker] Event failed, requesting redelivery", slog.Any("error", err))

			return c.NoContent(http.StatusServiceUnavailable)
		}
		logger.Error("[Worker] Event dropped", slog.Any("error", err))

		return c.NoContent(http.StatusOK)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *PushHandler) dispatch(ctx context.Context, event *service.Event) error {
	switch event.Type {
	case constants.EventCatalogChanged:
		return h.handleCatalogChanged(ctx, event)
	case constants.EventPasswordResetRequested:
		return h.handlePasswordReset(ctx, event)
	case constants.EventPhoneVerified:
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Info("[Worker] Phone verified",
			slog.String("user_id", event.UserID))

		return nil
	default:
		return errors.Errorf("unknown event type %q", event.Type)
	}
}

// handleCatalogChanged drops the cached storefront of the changed catalog.
func (h *PushHandler) handleCatalogChanged(ctx context.Context, event *service.Event) error {
	slug := event.Attributes["slug"]
	if slug == "" {
		return errors.New("catalog event without slug")
	}

	if err := h.cache.Invalidate(ctx, slug); err != nil {
		return newRetryableError(errors.Wrapf(err, "invalidate storefront %s", slug))
	}

	deliverycontext.GetLoggerOrDefault(ctx, h.logger).Info("[Worker] Storefront cache invalidated",
		slog.String("slug", slug),
		slog.String("action", event.Attributes["action"]))

	return nil
}

// handlePasswordReset mails the reset link. The token is a bearer credential and never
// reaches the log.
func (h *PushHandler) handlePasswordReset(ctx context.Context, event *service.Event) error {
	token := event.Attributes["token"]
	email := event.Attributes["email"]
	if token == "" || email == "" {
		return errors.New("password reset event without token or email")
	}

	expiresAt, err := time.Parse(time.RFC3339, event.Attributes["expires_at"])
	if err != nil {
		return errors.Wrap(err, "password reset event with invalid expiry")
	}
	if time.Now().After(expiresAt) {
		return errors.New("password reset event expired before delivery")
	}

	mail := &service.PasswordResetMail{
		To:        email,
		Link:      h.publicBaseURL + "/reset-password?token=" + url.QueryEscape(token),
		ExpiresAt: expiresAt,
	}
	if err := h.mailer.SendPasswordReset(ctx, mail); err != nil {
		return newRetryableError(err)
	}

	deliverycontext.GetLoggerOrDefault(ctx, h.logger).Info("[Worker] Password reset mail sent",
		slog.String("email", email),
		slog.Time("expires_at", expiresAt))

	return nil
}

// PurgeSessions removes expired refresh tokens. It is meant for a scheduler.
func (h *PushHandler) PurgeSessions(c echo.Context) error {
	deleted, err := h.refreshTokenRepo.DeleteExpiredRefreshTokens(c.Request().Context())
	if err != nil {
		h.logger.Error("[Worker] Failed to purge expired sessions", slog.Any("error", err))

		return c.NoContent(http.StatusServiceUnavailable)
	}

	h.logger.Info("[Worker] Expired sessions purged", slog.Int64("deleted", deleted))

	return c.JSON(http.StatusOK, map[string]int64{"deleted": deleted})
}

// extractRequestID prefers the ID recorded in the event over the push request header.
func extractRequestID(event *service.Event, c echo.Context) string {
	if event.RequestID != "" {
		return event.RequestID
	}

	return deliverycontext.GetRequestID(c)
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func (h *PushHandler) verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	token, found := strings.CutPrefix(authHeader, "Bearer ")
	if !found {
		return errors.New("invalid authorization header format")
	}

	// The audience is the URL of this endpoint.
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := h.validateToken(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
