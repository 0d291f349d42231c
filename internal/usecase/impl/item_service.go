package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// itemService implements the ItemUsecase interface.
type itemService struct {
	txManager    repository.TransactionManager
	catalogRepo  repository.CatalogRepository
	categoryRepo repository.CategoryRepository
	itemRepo     repository.MenuItemRepository
	cache        service.StorefrontCache
	publisher    service.EventPublisher
	logger       *slog.Logger
}

// ItemServiceParams holds dependencies for ItemService, injected by Fx.
type ItemServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	CatalogRepo  repository.CatalogRepository
	CategoryRepo repository.CategoryRepository
	ItemRepo     repository.MenuItemRepository
	Cache        service.StorefrontCache
	Publisher    service.EventPublisher
	Logger       *slog.Logger
}

// NewItemService creates the menu item usecase.
func NewItemService(params ItemServiceParams) usecase.ItemUsecase {
	return &itemService{
		txManager:    params.TxManager,
		catalogRepo:  params.CatalogRepo,
		categoryRepo: params.CategoryRepo,
		itemRepo:     params.ItemRepo,
		cache:        params.Cache,
		publisher:    params.Publisher,
		logger:       params.Logger,
	}
}

func (srv *itemService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListItems returns every item of the merchant's catalog.
func (srv *itemService) ListItems(ctx context.Context, actor entity.Actor) ([]*entity.MenuItem, error) {
	catalog, err := findOwnedCatalog(ctx, srv.catalogRepo, actor)
	if err != nil {
		return nil, err
	}

	items, err := srv.itemRepo.ListByCatalog(ctx, catalog.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to list items", slog.Any("catalogID", catalog.ID), slog.Any("error", err))

		return nil, keepOrReplace(err, domainerrors.ErrInternalError, "failed to list items")
	}

	return items, nil
}

// CreateItem adds an item and its gallery in one transaction.
func (srv *itemService) CreateItem(ctx context.Context, actor entity.Actor, input *usecase.ItemInput) (*entity.MenuItem, error) {
	if err := validateItemInput(input); err != nil {
		return nil, err
	}

	catalog, err := findOwnedCatalog(ctx, srv.catalogRepo, actor)
	if err != nil {
		return nil, err
	}
	if err := srv.checkCategory(ctx, catalog.ID, input.CategoryID); err != nil {
		return nil, err
	}
	if err := checkImageAllowance(catalog, input.ImageURLs); err != nil {
		return nil, err
	}

	item := &entity.MenuItem{CatalogID: catalog.ID}
	applyItemInput(item, input)

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		itemRepo := repoFactory.MenuItemRepo()
		if err := itemRepo.Create(ctx, item); err != nil {
			return errors.Wrap(err, "failed to create item")
		}

		return itemRepo.ReplaceImages(ctx, item.ID, item.Images)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute create item transaction", slog.Any("catalogID", catalog.ID), slog.Any("error", err))

		return nil, keepOrReplace(err, domainerrors.ErrItemCreateFailed, "failed to execute create item transaction")
	}

	srv.log(ctx).Info("Item created", slog.Any("itemID", item.ID), slog.Any("catalogID", catalog.ID))
	publishCatalogChanged(ctx, srv.log(ctx), srv.cache, srv.publisher, catalog, "item.created")

	return item, nil
}

// UpdateItem replaces the fields and gallery of an item owned by the caller.
func (srv *itemService) UpdateItem(ctx context.Context, actor entity.Actor, itemID uuid.UUID, input *usecase.ItemInput) (*entity.MenuItem, error) {
	if err := validateItemInput(input); err != nil {
		return nil, err
	}

	item, catalog, err := srv.loadOwnedItem(ctx, actor, itemID)
	if err != nil {
		return nil, err
	}
	if input.CategoryID != item.CategoryID {
		if err := srv.checkCategory(ctx, catalog.ID, input.CategoryID); err != nil {
			return nil, err
		}
	}
	if err := checkImageAllowance(catalog, input.ImageURLs); err != nil {
		return nil, err
	}

	applyItemInput(item, input)

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		itemRepo := repoFactory.MenuItemRepo()
		if err := itemRepo.Update(ctx, item); err != nil {
			return errors.Wrap(err, "failed to update item")
		}

		return itemRepo.ReplaceImages(ctx, item.ID, item.Images)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute update item transaction", slog.Any("itemID", itemID), slog.Any("error", err))
		if errors.Is(err, repository.ErrMenuItemNotFound) {
			return nil, errors.Wrap(domainerrors.ErrItemNotFound, "item vanished during update")
		}

		return nil, keepOrReplace(err, domainerrors.ErrItemUpdateFailed, "failed to execute update item transaction")
	}

	publishCatalogChanged(ctx, srv.log(ctx), srv.cache, srv.publisher, catalog, "item.updated")

	return item, nil
}

// DeleteItem removes an item owned by the caller.
func (srv *itemService) DeleteItem(ctx context.Context, actor entity.Actor, itemID uuid.UUID) error {
	_, catalog, err := srv.loadOwnedItem(ctx, actor, itemID)
	if err != nil {
		return err
	}

	if err := srv.itemRepo.Delete(ctx, itemID); err != nil {
		srv.log(ctx).Error("Failed to delete item", slog.Any("itemID", itemID), slog.Any("error", err))
		if errors.Is(err, repository.ErrMenuItemNotFound) {
			return errors.Wrap(domainerrors.ErrItemNotFound, "item vanished during delete")
		}

		return keepOrReplace(err, domainerrors.ErrItemDeleteFailed, "failed to delete item")
	}

	srv.log(ctx).Info("Item deleted", slog.Any("itemID", itemID), slog.Any("catalogID", catalog.ID))
	publishCatalogChanged(ctx, srv.log(ctx), srv.cache, srv.publisher, catalog, "item.deleted")

	return nil
}

func (srv *itemService) loadOwnedItem(ctx context.Context, actor entity.Actor, itemID uuid.UUID) (*entity.MenuItem, *entity.Catalog, error) {
	if err := requireActor(actor); err != nil {
		return nil, nil, err
	}

	item, err := srv.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, repository.ErrMenuItemNotFound) {
			return nil, nil, errors.Wrap(domainerrors.ErrItemNotFound, "item not found")
		}
		srv.log(ctx).Error("Failed to load item", slog.Any("itemID", itemID), slog.Any("error", err))

		return nil, nil, keepOrReplace(err, domainerrors.ErrInternalError, "failed to load item")
	}

	catalog, err := authorizeCatalog(ctx, srv.catalogRepo, actor, item.CatalogID)
	if err != nil {
		srv.log(ctx).Warn("Item access rejected", slog.Any("itemID", itemID), slog.Any("userID", actor.UserID))

		return nil, nil, err
	}

	return item, catalog, nil
}

// checkCategory requires the target category to exist in the same catalog.
func (srv *itemService) checkCategory(ctx context.Context, catalogID, categoryID uuid.UUID) error {
	category, err := srv.categoryRepo.FindByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return errors.Wrap(domainerrors.ErrCategoryNotFound, "item category not found")
		}

		return keepOrReplace(err, domainerrors.ErrInternalError, "failed to load item category")
	}
	if category.CatalogID != catalogID {
		return errors.Wrap(domainerrors.ErrCategoryNotFound, "item category belongs to another catalog")
	}

	return nil
}

func checkImageAllowance(catalog *entity.Catalog, urls []string) error {
	if len(urls) > catalog.Plan.MaxItemImages() {
		return errors.Wrapf(domainerrors.ErrPlanFeatureUnavailable, "plan %s allows %d images", catalog.Plan, catalog.Plan.MaxItemImages())
	}

	return nil
}

func validateItemInput(input *usecase.ItemInput) error {
	if input.CategoryID == uuid.Nil {
		return domainerrors.Validation(msgCategoryRequired)
	}
	if !runeLenBetween(input.Name, minItemNameLength, maxItemNameLength) {
		return domainerrors.Validation(msgItemName)
	}
	if err := validateDescription(input.Description); err != nil {
		return err
	}
	if input.Price != nil && input.Price.IsNegative() {
		return domainerrors.Validation(msgPriceNegative)
	}
	for _, raw := range input.ImageURLs {
		if err := validateImageURL(raw); err != nil {
			return err
		}
	}

	return nil
}

func applyItemInput(item *entity.MenuItem, input *usecase.ItemInput) {
	item.CategoryID = input.CategoryID
	item.Name = strings.TrimSpace(input.Name)
	item.Description = strings.TrimSpace(input.Description)
	item.IsFeatured = input.IsFeatured
	item.IsPopular = input.IsPopular

	item.Price = decimal.NullDecimal{}
	if input.Price != nil {
		item.Price = decimal.NewNullDecimal(input.Price.Round(2))
	}

	item.Images = make([]entity.ItemImage, 0, len(input.ImageURLs))
	for _, raw := range input.ImageURLs {
		if raw == "" {
			continue
		}
		item.Images = append(item.Images, entity.ItemImage{URL: raw, Position: len(item.Images)})
	}
	item.ImageURL = ""
	if len(item.Images) > 0 {
		item.ImageURL = item.Images[0].URL
	}
}
