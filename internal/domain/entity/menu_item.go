package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MenuItem is a single product or dish listed in a catalog.
type MenuItem struct {
	ID          uuid.UUID
	CatalogID   uuid.UUID
	CategoryID  uuid.UUID
	Name        string
	Description string
	Price       decimal.NullDecimal // Unset when the merchant hides the price.
	ImageURL    string              // Primary image, mirrors Images[0] when present.
	Images      []ItemImage
	IsFeatured  bool
	IsPopular   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ItemImage is one entry of an item's gallery.
type ItemImage struct {
	ID       uuid.UUID
	ItemID   uuid.UUID
	URL      string
	Position int
}
