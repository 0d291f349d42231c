package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/api/response"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CategoryHandler serves the category endpoints of the dashboard.
type CategoryHandler struct {
	uc     usecase.CategoryUsecase
	logger *slog.Logger
}

// CategoryHandlerParams holds dependencies for CategoryHandler, injected by Fx.
type CategoryHandlerParams struct {
	fx.In

	CategoryUC usecase.CategoryUsecase
	Logger     *slog.Logger
}

// NewCategoryHandler is the constructor for CategoryHandler.
func NewCategoryHandler(params CategoryHandlerParams) *CategoryHandler {
	return &CategoryHandler{
		uc:     params.CategoryUC,
		logger: params.Logger,
	}
}

type categoryRequest struct {
	Name        string `json:"name" form:"name" validate:"required" msg:"يجب أن يكون الاسم حرفين على الأقل."`
	Description string `json:"description" form:"description" validate:"max=500" msg:"الوصف يجب ألا يزيد عن 500 حرف"`
	ParentID    string `json:"parent_id" form:"parent_id"`
}

func (r *categoryRequest) toInput() (*usecase.CategoryInput, error) {
	parentID, err := optionalUUID(r.ParentID)
	if err != nil {
		return nil, err
	}

	return &usecase.CategoryInput{
		Name:        r.Name,
		Description: r.Description,
		ParentID:    parentID,
	}, nil
}

// List returns the catalog's categories flat and grouped by parent.
func (h *CategoryHandler) List(c echo.Context) error {
	out, err := h.uc.ListCategories(c.Request().Context(), deliverycontext.GetActor(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newCategoryListView(out.Categories, out.Groups))
}

// Create adds a category to the caller's catalog.
func (h *CategoryHandler) Create(c echo.Context) error {
	var req categoryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}
	input, err := req.toInput()
	if err != nil {
		return response.HandleAppError(c, err)
	}

	category, err := h.uc.CreateCategory(c.Request().Context(), deliverycontext.GetActor(c), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newCategoryView(category))
}

// Update edits a category of the caller's catalog.
func (h *CategoryHandler) Update(c echo.Context) error {
	categoryID, err := paramUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req categoryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}
	input, err := req.toInput()
	if err != nil {
		return response.HandleAppError(c, err)
	}

	category, err := h.uc.UpdateCategory(c.Request().Context(), deliverycontext.GetActor(c), categoryID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newCategoryView(category))
}

// Delete removes a category together with its subcategories and items.
func (h *CategoryHandler) Delete(c echo.Context) error {
	categoryID, err := paramUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.uc.DeleteCategory(c.Request().Context(), deliverycontext.GetActor(c), categoryID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": categoryID.String()})
}
