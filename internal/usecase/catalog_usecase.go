package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// CatalogInput holds the merchant editable catalog settings.
// An empty Slug on create is derived from Name.
type CatalogInput struct {
	Slug                string
	Name                string
	Description         string
	LogoURL             string
	CoverURL            string
	Theme               entity.Theme
	WhatsAppNumber      string
	CountryCode         string
	EnableSubcategories bool
	HideFooter          bool
}

// QRCodeOutput is a rendered QR code of the public catalog URL.
type QRCodeOutput struct {
	PNG      []byte
	URL      string
	Filename string
}

// CatalogUsecase manages the catalog owned by the calling merchant.
type CatalogUsecase interface {
	CreateCatalog(ctx context.Context, actor entity.Actor, input *CatalogInput) (*entity.Catalog, error)
	GetCatalog(ctx context.Context, actor entity.Actor) (*entity.Catalog, error)
	UpdateCatalog(ctx context.Context, actor entity.Actor, input *CatalogInput) (*entity.Catalog, error)
	GenerateQRCode(ctx context.Context, actor entity.Actor) (*QRCodeOutput, error)
}
