package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// ErrMenuItemNotFound is returned when no item matches the lookup.
var ErrMenuItemNotFound = errors.New("menu item not found")

// MenuItemRepository defines the operations on menu items and their gallery images.
type MenuItemRepository interface {
	// FindByID retrieves an item with its images.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error)

	// ListByCatalog returns every item of a catalog, newest first.
	ListByCatalog(ctx context.Context, catalogID uuid.UUID) ([]*entity.MenuItem, error)

	// Create persists a new item and its images.
	Create(ctx context.Context, item *entity.MenuItem) error

	// Update replaces the mutable fields of an item.
	Update(ctx context.Context, item *entity.MenuItem) error

	// ReplaceImages swaps the image gallery of an item.
	ReplaceImages(ctx context.Context, itemID uuid.UUID, images []entity.ItemImage) error

	// Delete removes an item; its images go with it through FK cascade.
	Delete(ctx context.Context, id uuid.UUID) error
}
