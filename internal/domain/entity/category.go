package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category is a named grouping of menu items inside one catalog.
// A category may point at a parent category of the same catalog.
type Category struct {
	ID          uuid.UUID
	CatalogID   uuid.UUID
	ParentID    *uuid.UUID
	Name        string
	Description string
	CreatedAt   time.Time

	// Items is only populated by storefront reads.
	Items []*MenuItem
}

// IsRoot reports whether the category has no parent.
func (c *Category) IsRoot() bool {
	return c.ParentID == nil
}
