package usecase

import (
	"context"

	"github.com/shopspring/decimal"
)

// StorefrontCatalog is the public part of a catalog.
type StorefrontCatalog struct {
	ID             string `json:"id"`
	Slug           string `json:"slug"`
	Name           string `json:"name"`
	Description    string `json:"description,omitempty"`
	LogoURL        string `json:"logo_url,omitempty"`
	CoverURL       string `json:"cover_url,omitempty"`
	Theme          string `json:"theme"`
	WhatsAppNumber string `json:"whatsapp_number,omitempty"`
	HideFooter     bool   `json:"hide_footer"`
}

// StorefrontItem is a menu item as shown to shoppers.
type StorefrontItem struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	ImageURL    string           `json:"image_url,omitempty"`
	Images      []string         `json:"images,omitempty"`
	IsFeatured  bool             `json:"is_featured"`
	IsPopular   bool             `json:"is_popular"`
}

// StorefrontSection is a category with its items and nested sections.
type StorefrontSection struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Description string              `json:"description,omitempty"`
	Items       []StorefrontItem    `json:"items"`
	Subsections []StorefrontSection `json:"subsections,omitempty"`
}

// StorefrontOutput is the composed public catalog page.
type StorefrontOutput struct {
	Catalog  StorefrontCatalog   `json:"catalog"`
	Sections []StorefrontSection `json:"sections"`
}

// IsEmpty reports whether no section survived pruning.
func (o *StorefrontOutput) IsEmpty() bool {
	return o == nil || len(o.Sections) == 0
}

// StorefrontUsecase serves public catalog pages.
type StorefrontUsecase interface {
	GetStorefront(ctx context.Context, slug string) (*StorefrontOutput, error)
}
