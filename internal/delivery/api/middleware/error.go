package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"storefront/internal/delivery/api/response"
	deliverycontext "storefront/internal/delivery/context"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"

	"github.com/labstack/echo/v4"
)

// NotFoundTemplate is the page rendered for unknown HTML routes.
const NotFoundTemplate = "not_found"

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		// Storage and driver details stay in the log.
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			logger.Error("Request failed",
				slog.Any("error", err),
				slog.String("code", appErr.ErrorCode()),
				slog.String("details", appErr.Details()),
				slog.String("path", c.Request().URL.Path),
			)
		}

		m.write(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message())

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		code, message := httpErrorInfo(httpErr)
		m.write(c, httpErr.Code, code, message)

		return
	}

	logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	m.write(c, http.StatusInternalServerError, domainerrors.ErrInternalError.ErrorCode(), domainerrors.ErrInternalError.Message())
}

func (m *ErrorMiddleware) write(c echo.Context, status int, code, message string) {
	if status == http.StatusNotFound && wantsHTML(c) && c.Echo().Renderer != nil {
		if err := c.Render(status, NotFoundTemplate, nil); err == nil {
			return
		}
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(status)

		return
	}

	_ = response.Error(c, status, code, message, nil)
}

// httpErrorInfo maps echo's router and middleware errors onto localised messages.
func httpErrorInfo(httpErr *echo.HTTPError) (string, string) {
	switch httpErr.Code {
	case http.StatusNotFound, http.StatusMethodNotAllowed:
		return domainerrors.ErrNotFound.ErrorCode(), domainerrors.ErrNotFound.Message()
	case http.StatusUnauthorized:
		return domainerrors.ErrUnauthenticated.ErrorCode(), domainerrors.ErrUnauthenticated.Message()
	case http.StatusRequestEntityTooLarge:
		return "PAYLOAD_TOO_LARGE", "حجم الطلب أكبر من المسموح"
	}

	if httpErr.Code < http.StatusInternalServerError {
		return domainerrors.ErrValidationFailed.ErrorCode(), domainerrors.ErrValidationFailed.Message()
	}

	return domainerrors.ErrInternalError.ErrorCode(), domainerrors.ErrInternalError.Message()
}

func wantsHTML(c echo.Context) bool {
	if strings.HasPrefix(c.Request().URL.Path, "/api/") {
		return false
	}

	return strings.Contains(c.Request().Header.Get(echo.HeaderAccept), echo.MIMETextHTML)
}
