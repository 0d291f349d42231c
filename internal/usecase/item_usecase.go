package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ItemInput holds the editable fields of a menu item.
// A nil Price hides the price on the storefront.
type ItemInput struct {
	CategoryID  uuid.UUID
	Name        string
	Description string
	Price       *decimal.Decimal
	ImageURLs   []string
	IsFeatured  bool
	IsPopular   bool
}

// ItemUsecase manages the menu items of the calling merchant's catalog.
type ItemUsecase interface {
	ListItems(ctx context.Context, actor entity.Actor) ([]*entity.MenuItem, error)
	CreateItem(ctx context.Context, actor entity.Actor, input *ItemInput) (*entity.MenuItem, error)
	UpdateItem(ctx context.Context, actor entity.Actor, itemID uuid.UUID, input *ItemInput) (*entity.MenuItem, error)
	DeleteItem(ctx context.Context, actor entity.Actor, itemID uuid.UUID) error
}
