package usecase

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/menu"

	"github.com/google/uuid"
)

// CategoryInput holds the editable fields of a category.
type CategoryInput struct {
	Name        string
	Description string
	ParentID    *uuid.UUID
}

// CategoryListOutput is the dashboard view of a catalog's categories.
type CategoryListOutput struct {
	Categories []*entity.Category
	Groups     []menu.Group
}

// CategoryUsecase manages the categories of the calling merchant's catalog.
type CategoryUsecase interface {
	ListCategories(ctx context.Context, actor entity.Actor) (*CategoryListOutput, error)
	CreateCategory(ctx context.Context, actor entity.Actor, input *CategoryInput) (*entity.Category, error)
	UpdateCategory(ctx context.Context, actor entity.Actor, categoryID uuid.UUID, input *CategoryInput) (*entity.Category, error)
	DeleteCategory(ctx context.Context, actor entity.Actor, categoryID uuid.UUID) error
}
