package impl

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type storefrontServiceFixtures struct {
	service      usecase.StorefrontUsecase
	catalogRepo  *mockRepo.MockCatalogRepository
	categoryRepo *mockRepo.MockCategoryRepository
	cache        *mockSvc.MockStorefrontCache
}

func createTestStorefrontService(t *testing.T) storefrontServiceFixtures {
	catalogRepo := mockRepo.NewMockCatalogRepository(t)
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	cache := mockSvc.NewMockStorefrontCache(t)

	return storefrontServiceFixtures{
		service: NewStorefrontService(StorefrontServiceParams{
			CatalogRepo:  catalogRepo,
			CategoryRepo: categoryRepo,
			Cache:        cache,
			Logger:       newDiscardLogger(),
		}),
		catalogRepo:  catalogRepo,
		categoryRepo: categoryRepo,
		cache:        cache,
	}
}

// storefrontTree returns Drinks > {Hot (empty), Cold > [Lemonade]} and an empty Desserts root.
func storefrontTree(catalogID uuid.UUID) []*entity.Category {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	drinks := &entity.Category{ID: uuid.New(), CatalogID: catalogID, Name: "Drinks", CreatedAt: base}
	hot := &entity.Category{ID: uuid.New(), CatalogID: catalogID, Name: "Hot", ParentID: &drinks.ID, CreatedAt: base.Add(time.Minute)}
	cold := &entity.Category{ID: uuid.New(), CatalogID: catalogID, Name: "Cold", ParentID: &drinks.ID, CreatedAt: base.Add(2 * time.Minute)}
	desserts := &entity.Category{ID: uuid.New(), CatalogID: catalogID, Name: "Desserts", CreatedAt: base.Add(3 * time.Minute)}
	cold.Items = []*entity.MenuItem{{
		ID:         uuid.New(),
		CatalogID:  catalogID,
		CategoryID: cold.ID,
		Name:       "Lemonade",
		Price:      decimal.NewNullDecimal(decimal.RequireFromString("35.50")),
		Images:     []entity.ItemImage{{URL: "/media/catalogs/x/item/l.jpg"}},
	}}

	return []*entity.Category{drinks, hot, cold, desserts}
}

func TestStorefrontService_GetStorefront_ComposesNestedSections(t *testing.T) {
	fx := createTestStorefrontService(t)
	ctx := context.Background()
	catalog := newCatalogFor(newActor())
	catalog.EnableSubcategories = true

	fx.cache.EXPECT().Get(ctx, "pizza-house").Return(nil, false, nil)
	fx.catalogRepo.EXPECT().FindBySlug(ctx, "pizza-house").Return(catalog, nil)
	fx.categoryRepo.EXPECT().ListWithItemsByCatalog(ctx, catalog.ID).Return(storefrontTree(catalog.ID), nil)
	fx.cache.EXPECT().Set(ctx, "pizza-house", mock.AnythingOfType("[]uint8")).Return(nil)

	output, err := fx.service.GetStorefront(ctx, " Pizza-House ")

	require.NoError(t, err)
	assert.Equal(t, "Pizza House", output.Catalog.Name)
	require.Len(t, output.Sections, 1)
	assert.Equal(t, "Drinks", output.Sections[0].Name)
	assert.Empty(t, output.Sections[0].Items)
	require.Len(t, output.Sections[0].Subsections, 1)

	cold := output.Sections[0].Subsections[0]
	assert.Equal(t, "Cold", cold.Name)
	require.Len(t, cold.Items, 1)
	assert.Equal(t, "35.5", cold.Items[0].Price.String())
	assert.Equal(t, "/media/catalogs/x/item/l.jpg", cold.Items[0].ImageURL)
}

func TestStorefrontService_GetStorefront_FlattensWhenSubcategoriesDisabled(t *testing.T) {
	fx := createTestStorefrontService(t)
	ctx := context.Background()
	catalog := newCatalogFor(newActor())

	fx.cache.EXPECT().Get(ctx, "pizza-house").Return(nil, false, nil)
	fx.catalogRepo.EXPECT().FindBySlug(ctx, "pizza-house").Return(catalog, nil)
	fx.categoryRepo.EXPECT().ListWithItemsByCatalog(ctx, catalog.ID).Return(storefrontTree(catalog.ID), nil)
	fx.cache.EXPECT().Set(ctx, "pizza-house", mock.Anything).Return(nil)

	output, err := fx.service.GetStorefront(ctx, "pizza-house")

	require.NoError(t, err)
	for _, section := range output.Sections {
		assert.Empty(t, section.Subsections)
	}

	var names []string
	for _, section := range output.Sections {
		names = append(names, section.Name)
	}
	assert.Contains(t, names, "Cold")
	assert.NotContains(t, names, "Hot")
	assert.NotContains(t, names, "Desserts")
}

func TestStorefrontService_GetStorefront_EmptyCatalog(t *testing.T) {
	fx := createTestStorefrontService(t)
	ctx := context.Background()
	catalog := newCatalogFor(newActor())

	fx.cache.EXPECT().Get(ctx, "pizza-house").Return(nil, false, nil)
	fx.catalogRepo.EXPECT().FindBySlug(ctx, "pizza-house").Return(catalog, nil)
	fx.categoryRepo.EXPECT().ListWithItemsByCatalog(ctx, catalog.ID).Return(nil, nil)
	fx.cache.EXPECT().Set(ctx, "pizza-house", mock.Anything).Return(nil)

	output, err := fx.service.GetStorefront(ctx, "pizza-house")

	require.NoError(t, err)
	assert.True(t, output.IsEmpty())
}

func TestStorefrontService_GetStorefront_UnknownSlug(t *testing.T) {
	fx := createTestStorefrontService(t)
	ctx := context.Background()

	fx.cache.EXPECT().Get(ctx, "nobody-here").Return(nil, false, nil)
	fx.catalogRepo.EXPECT().FindBySlug(ctx, "nobody-here").Return(nil, repository.ErrCatalogNotFound)

	output, err := fx.service.GetStorefront(ctx, "nobody-here")

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrCatalogNotFound))
}

func TestStorefrontService_GetStorefront_MalformedSlugSkipsLookup(t *testing.T) {
	fx := createTestStorefrontService(t)

	for _, slug := range []string{"", "ab", "../etc/passwd", "مطعم-كبير"} {
		_, err := fx.service.GetStorefront(context.Background(), slug)
		assert.True(t, errors.Is(err, domainerrors.ErrCatalogNotFound), slug)
	}
}

func TestStorefrontService_GetStorefront_ServedFromCache(t *testing.T) {
	fx := createTestStorefrontService(t)
	ctx := context.Background()
	cached := usecase.StorefrontOutput{
		Catalog:  usecase.StorefrontCatalog{Slug: "pizza-house", Name: "Cached"},
		Sections: []usecase.StorefrontSection{{ID: "1", Name: "Pizza", Items: []usecase.StorefrontItem{{ID: "2", Name: "Pepperoni"}}}},
	}
	payload, err := json.Marshal(cached)
	require.NoError(t, err)

	fx.cache.EXPECT().Get(ctx, "pizza-house").Return(payload, true, nil)

	output, err := fx.service.GetStorefront(ctx, "pizza-house")

	require.NoError(t, err)
	assert.Equal(t, "Cached", output.Catalog.Name)
	assert.Equal(t, "Pepperoni", output.Sections[0].Items[0].Name)
}

func TestStorefrontService_GetStorefront_CacheFailuresAreIgnored(t *testing.T) {
	fx := createTestStorefrontService(t)
	ctx := context.Background()
	catalog := newCatalogFor(newActor())

	fx.cache.EXPECT().Get(ctx, "pizza-house").Return(nil, false, errors.New("redis: connection refused"))
	fx.catalogRepo.EXPECT().FindBySlug(ctx, "pizza-house").Return(catalog, nil)
	fx.categoryRepo.EXPECT().ListWithItemsByCatalog(ctx, catalog.ID).Return(storefrontTree(catalog.ID), nil)
	fx.cache.EXPECT().Set(ctx, "pizza-house", mock.Anything).Return(errors.New("redis: connection refused"))

	output, err := fx.service.GetStorefront(ctx, "pizza-house")

	require.NoError(t, err)
	assert.False(t, output.IsEmpty())
}

func TestStorefrontService_GetStorefront_ServiceNotConfigured(t *testing.T) {
	fx := createTestStorefrontService(t)
	ctx := context.Background()

	fx.cache.EXPECT().Get(ctx, "pizza-house").Return(nil, false, nil)
	fx.catalogRepo.EXPECT().FindBySlug(ctx, "pizza-house").Return(nil, domainerrors.ErrServiceNotConfigured)

	_, err := fx.service.GetStorefront(ctx, "pizza-house")

	assert.True(t, errors.Is(err, domainerrors.ErrServiceNotConfigured))
}
