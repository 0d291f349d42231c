package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/api/response"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ItemHandler serves the menu item endpoints of the dashboard.
type ItemHandler struct {
	uc     usecase.ItemUsecase
	logger *slog.Logger
}

// ItemHandlerParams holds dependencies for ItemHandler, injected by Fx.
type ItemHandlerParams struct {
	fx.In

	ItemUC usecase.ItemUsecase
	Logger *slog.Logger
}

// NewItemHandler is the constructor for ItemHandler.
func NewItemHandler(params ItemHandlerParams) *ItemHandler {
	return &ItemHandler{
		uc:     params.ItemUC,
		logger: params.Logger,
	}
}

type itemRequest struct {
	CategoryID  string     `json:"category_id" form:"category_id" validate:"required,uuid" msg:"يجب اختيار فئة للمنتج"`
	Name        string     `json:"name" form:"name" validate:"required" msg:"اسم المنتج يجب أن يكون بين 2 و 100 حرف"`
	Description string     `json:"description" form:"description"`
	Price       priceParam `json:"price" form:"price"`
	ImageURLs   []string   `json:"images" form:"images" validate:"max=5,dive,max=2048" msg:"رابط الصورة غير صالح"`
	IsFeatured  flag       `json:"is_featured" form:"is_featured"`
	IsPopular   flag       `json:"is_popular" form:"is_popular"`
}

func (r *itemRequest) toInput() *usecase.ItemInput {
	return &usecase.ItemInput{
		// Format is checked by the validator.
		CategoryID:  uuid.MustParse(r.CategoryID),
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price.Value,
		ImageURLs:   r.ImageURLs,
		IsFeatured:  bool(r.IsFeatured),
		IsPopular:   bool(r.IsPopular),
	}
}

// List returns every item of the caller's catalog.
func (h *ItemHandler) List(c echo.Context) error {
	items, err := h.uc.ListItems(c.Request().Context(), deliverycontext.GetActor(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	views := make([]*itemView, 0, len(items))
	for _, item := range items {
		views = append(views, newItemView(item))
	}

	return response.Success(c, http.StatusOK, views)
}

// Create adds an item to the caller's catalog.
func (h *ItemHandler) Create(c echo.Context) error {
	var req itemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	item, err := h.uc.CreateItem(c.Request().Context(), deliverycontext.GetActor(c), req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newItemView(item))
}

// Update edits an item of the caller's catalog.
func (h *ItemHandler) Update(c echo.Context) error {
	itemID, err := paramUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req itemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	item, err := h.uc.UpdateItem(c.Request().Context(), deliverycontext.GetActor(c), itemID, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newItemView(item))
}

// Delete removes an item of the caller's catalog.
func (h *ItemHandler) Delete(c echo.Context) error {
	itemID, err := paramUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.uc.DeleteItem(c.Request().Context(), deliverycontext.GetActor(c), itemID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": itemID.String()})
}
