package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/api/response"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CatalogHandler serves the catalog settings and QR export of the dashboard.
type CatalogHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler.
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		uc:     params.CatalogUC,
		logger: params.Logger,
	}
}

type catalogRequest struct {
	Slug                string `json:"slug" form:"slug" validate:"omitempty,max=50" msg:"يجب أن يكون اسم الكتالوج 50 حرفًا على الأكثر"`
	Name                string `json:"name" form:"name" validate:"required" msg:"اسم المتجر يجب أن يكون بين 2 و 100 حرف"`
	Description         string `json:"description" form:"description"`
	LogoURL             string `json:"logo_url" form:"logo_url"`
	CoverURL            string `json:"cover_url" form:"cover_url"`
	Theme               string `json:"theme" form:"theme"`
	WhatsAppNumber      string `json:"whatsapp_number" form:"whatsapp_number"`
	CountryCode         string `json:"country_code" form:"country_code"`
	EnableSubcategories flag   `json:"enable_subcategories" form:"enable_subcategories"`
	HideFooter          flag   `json:"hide_footer" form:"hide_footer"`
}

func (r *catalogRequest) toInput() *usecase.CatalogInput {
	return &usecase.CatalogInput{
		Slug:                r.Slug,
		Name:                r.Name,
		Description:         r.Description,
		LogoURL:             r.LogoURL,
		CoverURL:            r.CoverURL,
		Theme:               entity.Theme(r.Theme),
		WhatsAppNumber:      r.WhatsAppNumber,
		CountryCode:         r.CountryCode,
		EnableSubcategories: bool(r.EnableSubcategories),
		HideFooter:          bool(r.HideFooter),
	}
}

// Create opens the caller's catalog.
func (h *CatalogHandler) Create(c echo.Context) error {
	var req catalogRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	catalog, err := h.uc.CreateCatalog(c.Request().Context(), deliverycontext.GetActor(c), req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newCatalogView(catalog))
}

// Get returns the caller's catalog settings.
func (h *CatalogHandler) Get(c echo.Context) error {
	catalog, err := h.uc.GetCatalog(c.Request().Context(), deliverycontext.GetActor(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newCatalogView(catalog))
}

// Update saves the caller's catalog settings.
func (h *CatalogHandler) Update(c echo.Context) error {
	var req catalogRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	catalog, err := h.uc.UpdateCatalog(c.Request().Context(), deliverycontext.GetActor(c), req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newCatalogView(catalog))
}

// QRCode downloads a PNG QR code of the public catalog URL.
func (h *CatalogHandler) QRCode(c echo.Context) error {
	out, err := h.uc.GenerateQRCode(c.Request().Context(), deliverycontext.GetActor(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	header := c.Response().Header()
	header.Set(echo.HeaderContentDisposition, "attachment; filename="+out.Filename)
	header.Set("X-Catalog-URL", out.URL)

	return c.Blob(http.StatusOK, "image/png", out.PNG)
}
