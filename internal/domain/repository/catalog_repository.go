package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// ErrCatalogNotFound is returned when no catalog matches the lookup.
var ErrCatalogNotFound = errors.New("catalog not found")

// CatalogRepository defines the operations on merchant catalogs. Catalogs are never deleted.
type CatalogRepository interface {
	// FindByID retrieves a catalog by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Catalog, error)

	// FindBySlug retrieves the catalog published under slug.
	FindBySlug(ctx context.Context, slug string) (*entity.Catalog, error)

	// FindByOwnerID retrieves the catalog owned by a user.
	FindByOwnerID(ctx context.Context, ownerID uuid.UUID) (*entity.Catalog, error)

	// SlugExists reports whether slug is used by a catalog other than excludeID.
	SlugExists(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error)

	// Create persists a new catalog.
	Create(ctx context.Context, catalog *entity.Catalog) error

	// Update replaces the mutable fields of a catalog.
	Update(ctx context.Context, catalog *entity.Catalog) error
}
