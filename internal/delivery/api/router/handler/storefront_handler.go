package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"storefront/config"
	"storefront/internal/delivery/api/render"
	"storefront/internal/delivery/api/response"
	deliverycontext "storefront/internal/delivery/context"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// StorefrontHandler serves the public catalog pages.
type StorefrontHandler struct {
	uc      usecase.StorefrontUsecase
	baseURL string
	logger  *slog.Logger
}

// StorefrontHandlerParams holds dependencies for StorefrontHandler, injected by Fx.
type StorefrontHandlerParams struct {
	fx.In

	StorefrontUC usecase.StorefrontUsecase
	Config       *config.Config
	Logger       *slog.Logger
}

// NewStorefrontHandler is the constructor for StorefrontHandler.
func NewStorefrontHandler(params StorefrontHandlerParams) *StorefrontHandler {
	return &StorefrontHandler{
		uc:      params.StorefrontUC,
		baseURL: strings.TrimRight(params.Config.HTTP.PublicBaseURL, "/"),
		logger:  params.Logger,
	}
}

// Page renders the public HTML catalog. Unknown slugs get the not-found page.
func (h *StorefrontHandler) Page(c echo.Context) error {
	ctx := c.Request().Context()
	slug := c.Param("slug")

	out, err := h.uc.GetStorefront(ctx, slug)
	if err != nil {
		if errors.Is(err, domainerrors.ErrCatalogNotFound) {
			return c.Render(http.StatusNotFound, render.TemplateNotFound, nil)
		}

		var appErr domainerrors.AppError
		status := http.StatusInternalServerError
		if errors.As(err, &appErr) {
			status = appErr.HTTPCode()
		}
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Error("Failed to render storefront",
			slog.String("slug", slug),
			slog.Any("error", err))

		return c.Render(status, render.TemplateError, render.ErrorPage{RequestID: deliverycontext.GetRequestID(c)})
	}

	return c.Render(http.StatusOK, render.TemplateStorefront, render.StorefrontPage{
		StorefrontOutput: out,
		URL:              h.baseURL + "/c/" + out.Catalog.Slug,
	})
}

// Get returns the composed catalog as JSON.
func (h *StorefrontHandler) Get(c echo.Context) error {
	out, err := h.uc.GetStorefront(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, out)
}
