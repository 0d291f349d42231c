package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/menu"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"go.uber.org/fx"
)

// storefrontService implements the StorefrontUsecase interface.
type storefrontService struct {
	catalogRepo  repository.CatalogRepository
	categoryRepo repository.CategoryRepository
	cache        service.StorefrontCache
	logger       *slog.Logger
}

// StorefrontServiceParams holds dependencies for StorefrontService, injected by Fx.
type StorefrontServiceParams struct {
	fx.In

	CatalogRepo  repository.CatalogRepository
	CategoryRepo repository.CategoryRepository
	Cache        service.StorefrontCache
	Logger       *slog.Logger
}

// NewStorefrontService creates the public storefront usecase.
func NewStorefrontService(params StorefrontServiceParams) usecase.StorefrontUsecase {
	return &storefrontService{
		catalogRepo:  params.CatalogRepo,
		categoryRepo: params.CategoryRepo,
		cache:        params.Cache,
		logger:       params.Logger,
	}
}

func (srv *storefrontService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetStorefront resolves a catalog by slug and composes its public page.
// An unknown or malformed slug yields ErrCatalogNotFound.
func (srv *storefrontService) GetStorefront(ctx context.Context, slug string) (*usecase.StorefrontOutput, error) {
	slug = strings.ToLower(strings.TrimSpace(slug))
	if validateSlug(slug) != nil {
		return nil, errors.Wrapf(domainerrors.ErrCatalogNotFound, "malformed slug %q", slug)
	}

	if cached := srv.fromCache(ctx, slug); cached != nil {
		return cached, nil
	}

	catalog, err := srv.catalogRepo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrCatalogNotFound) {
			return nil, errors.Wrapf(domainerrors.ErrCatalogNotFound, "no catalog for slug %q", slug)
		}
		srv.log(ctx).Error("Failed to load catalog by slug", slog.String("slug", slug), slog.Any("error", err))

		return nil, keepOrReplace(err, domainerrors.ErrInternalError, "failed to load catalog")
	}

	categories, err := srv.categoryRepo.ListWithItemsByCatalog(ctx, catalog.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to load storefront categories", slog.Any("catalogID", catalog.ID), slog.Any("error", err))

		return nil, keepOrReplace(err, domainerrors.ErrInternalError, "failed to load storefront categories")
	}

	output := &usecase.StorefrontOutput{
		Catalog:  toStorefrontCatalog(catalog),
		Sections: toStorefrontSections(menu.Compose(categories, catalog.EnableSubcategories)),
	}
	srv.toCache(ctx, slug, output)

	return output, nil
}

func (srv *storefrontService) fromCache(ctx context.Context, slug string) *usecase.StorefrontOutput {
	payload, ok, err := srv.cache.Get(ctx, slug)
	if err != nil {
		srv.log(ctx).Warn("Storefront cache read failed", slog.String("slug", slug), slog.Any("error", err))

		return nil
	}
	if !ok {
		return nil
	}

	var output usecase.StorefrontOutput
	if err := json.Unmarshal(payload, &output); err != nil {
		srv.log(ctx).Warn("Discarding unreadable storefront cache entry", slog.String("slug", slug), slog.Any("error", err))

		return nil
	}

	return &output
}

func (srv *storefrontService) toCache(ctx context.Context, slug string, output *usecase.StorefrontOutput) {
	payload, err := json.Marshal(output)
	if err != nil {
		srv.log(ctx).Warn("Failed to encode storefront for cache", slog.String("slug", slug), slog.Any("error", err))

		return
	}
	if err := srv.cache.Set(ctx, slug, payload); err != nil {
		srv.log(ctx).Warn("Storefront cache write failed", slog.String("slug", slug), slog.Any("error", err))
	}
}

func toStorefrontCatalog(catalog *entity.Catalog) usecase.StorefrontCatalog {
	return usecase.StorefrontCatalog{
		ID:             catalog.ID.String(),
		Slug:           catalog.Slug,
		Name:           catalog.Name,
		Description:    catalog.Description,
		LogoURL:        catalog.LogoURL,
		CoverURL:       catalog.CoverURL,
		Theme:          string(catalog.Theme),
		WhatsAppNumber: catalog.WhatsAppNumber,
		HideFooter:     catalog.HideFooter,
	}
}

func toStorefrontSections(sections []*menu.Section) []usecase.StorefrontSection {
	result := make([]usecase.StorefrontSection, 0, len(sections))
	for _, section := range sections {
		items := make([]usecase.StorefrontItem, 0, len(section.Items))
		for _, item := range section.Items {
			items = append(items, toStorefrontItem(item))
		}

		view := usecase.StorefrontSection{
			ID:          section.Category.ID.String(),
			Name:        section.Category.Name,
			Description: section.Category.Description,
			Items:       items,
		}
		if len(section.Subsections) > 0 {
			view.Subsections = toStorefrontSections(section.Subsections)
		}
		result = append(result, view)
	}

	return result
}

func toStorefrontItem(item *entity.MenuItem) usecase.StorefrontItem {
	view := usecase.StorefrontItem{
		ID:          item.ID.String(),
		Name:        item.Name,
		Description: item.Description,
		ImageURL:    item.ImageURL,
		IsFeatured:  item.IsFeatured,
		IsPopular:   item.IsPopular,
	}
	if item.Price.Valid {
		price := item.Price.Decimal
		view.Price = &price
	}
	for _, image := range item.Images {
		view.Images = append(view.Images, image.URL)
	}
	if view.ImageURL == "" && len(view.Images) > 0 {
		view.ImageURL = view.Images[0]
	}

	return view
}
