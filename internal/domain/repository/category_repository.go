package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// ErrCategoryNotFound is returned when no category matches the lookup.
var ErrCategoryNotFound = errors.New("category not found")

// CategoryRepository defines the operations on catalog categories.
type CategoryRepository interface {
	// FindByID retrieves a category by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// ListByCatalog returns every category of a catalog ordered by creation time.
	ListByCatalog(ctx context.Context, catalogID uuid.UUID) ([]*entity.Category, error)

	// ListWithItemsByCatalog returns every category with its items preloaded in one query.
	ListWithItemsByCatalog(ctx context.Context, catalogID uuid.UUID) ([]*entity.Category, error)

	// Create persists a new category.
	Create(ctx context.Context, category *entity.Category) error

	// Update replaces the mutable fields of a category.
	Update(ctx context.Context, category *entity.Category) error

	// Delete removes a category; child categories and items go with it through FK cascade.
	Delete(ctx context.Context, id uuid.UUID) error
}
