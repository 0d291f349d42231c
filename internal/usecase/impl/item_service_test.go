package impl

import (
	"context"
	"testing"

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

type itemServiceFixtures struct {
	service      usecase.ItemUsecase
	txManager    *mockRepo.MockTransactionManager
	repoFactory  *mockRepo.MockRepositoryFactory
	catalogRepo  *mockRepo.MockCatalogRepository
	categoryRepo *mockRepo.MockCategoryRepository
	itemRepo     *mockRepo.MockMenuItemRepository
	txItemRepo   *mockRepo.MockMenuItemRepository
	cache        *mockSvc.MockStorefrontCache
	publisher    *mockSvc.MockEventPublisher
}

func createTestItemService(t *testing.T) itemServiceFixtures {
	fx := itemServiceFixtures{
		txManager:    mockRepo.NewMockTransactionManager(t),
		repoFactory:  mockRepo.NewMockRepositoryFactory(t),
		catalogRepo:  mockRepo.NewMockCatalogRepository(t),
		categoryRepo: mockRepo.NewMockCategoryRepository(t),
		itemRepo:     mockRepo.NewMockMenuItemRepository(t),
		txItemRepo:   mockRepo.NewMockMenuItemRepository(t),
		cache:        mockSvc.NewMockStorefrontCache(t),
		publisher:    mockSvc.NewMockEventPublisher(t),
	}
	fx.service = NewItemService(ItemServiceParams{
		TxManager:    fx.txManager,
		CatalogRepo:  fx.catalogRepo,
		CategoryRepo: fx.categoryRepo,
		ItemRepo:     fx.itemRepo,
		Cache:        fx.cache,
		Publisher:    fx.publisher,
		Logger:       newDiscardLogger(),
	})

	return fx
}

func (f itemServiceFixtures) expectChanged(catalog *entity.Catalog) {
	f.cache.EXPECT().Invalidate(mock.Anything, catalog.Slug).Return(nil).Once()
	f.publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Once()
}

func TestItemService_CreateItem_Success(t *testing.T) {
	fx := createTestItemService(t)
	ctx := context.Background()
	actor := newActor()
	catalog := newCatalogFor(actor)
	category := &entity.Category{ID: uuid.New(), CatalogID: catalog.ID, Name: "Pizza"}

	fx.catalogRepo.EXPECT().FindByOwnerID(ctx, actor.UserID).Return(catalog, nil)
	fx.categoryRepo.EXPECT().FindByID(ctx, category.ID).Return(category, nil)
	expectTx(fx.txManager, fx.repoFactory)
	fx.repoFactory.EXPECT().MenuItemRepo().Return(fx.txItemRepo)
	fx.txItemRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.MenuItem")).
		Run(func(_ context.Context, item *entity.MenuItem) {
			item.ID = uuid.New()
		}).
		Return(nil)
	fx.txItemRepo.EXPECT().ReplaceImages(ctx, mock.AnythingOfType("uuid.UUID"), mock.Anything).Return(nil)
	fx.expectChanged(catalog)

	item, err := fx.service.CreateItem(ctx, actor, &usecase.ItemInput{
		CategoryID: category.ID,
		Name:       " Margherita ",
		Price:      ptr(decimal.RequireFromString("120.456")),
		ImageURLs:  []string{"/media/catalogs/x/item/a.jpg"},
		IsPopular:  true,
	})

	require.NoError(t, err)
	assert.Equal(t, "Margherita", item.Name)
	assert.Equal(t, catalog.ID, item.CatalogID)
	assert.True(t, item.Price.Valid)
	assert.Equal(t, "120.46", item.Price.Decimal.StringFixed(2))
	assert.Equal(t, "/media/catalogs/x/item/a.jpg", item.ImageURL)
	require.Len(t, item.Images, 1)
	assert.Equal(t, 0, item.Images[0].Position)
	assert.True(t, item.IsPopular)
}

func TestItemService_CreateItem_ValidationRejectsWithoutWrite(t *testing.T) {
	categoryID := uuid.New()
	tests := []struct {
		name    string
		input   usecase.ItemInput
		message string
	}{
		{name: "missing category", input: usecase.ItemInput{Name: "Tea"}, message: msgCategoryRequired},
		{name: "short name", input: usecase.ItemInput{CategoryID: categoryID, Name: "T"}, message: msgItemName},
		{
			name:    "negative price",
			input:   usecase.ItemInput{CategoryID: categoryID, Name: "Tea", Price: ptr(decimal.NewFromInt(-1))},
			message: msgPriceNegative,
		},
		{
			name:    "bad image url",
			input:   usecase.ItemInput{CategoryID: categoryID, Name: "Tea", ImageURLs: []string{"javascript:alert(1)"}},
			message: msgImageURL,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestItemService(t)

			item, err := fx.service.CreateItem(context.Background(), newActor(), &tt.input)

			assert.Nil(t, item)
			var appErr domainerrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
			assert.Equal(t, tt.message, appErr.Message())
		})
	}
}

func TestItemService_CreateItem_CategoryFromAnotherCatalog(t *testing.T) {
	fx := createTestItemService(t)
	ctx := context.Background()
	actor := newActor()
	catalog := newCatalogFor(actor)
	foreign := &entity.Category{ID: uuid.New(), CatalogID: uuid.New(), Name: "Other"}

	fx.catalogRepo.EXPECT().FindByOwnerID(ctx, actor.UserID).Return(catalog, nil)
	fx.categoryRepo.EXPECT().FindByID(ctx, foreign.ID).Return(foreign, nil)

	_, err := fx.service.CreateItem(ctx, actor, &usecase.ItemInput{CategoryID: foreign.ID, Name: "Tea"})

	assert.True(t, errors.Is(err, domainerrors.ErrCategoryNotFound))
}

func TestItemService_CreateItem_FreePlanImageLimit(t *testing.T) {
	fx := createTestItemService(t)
	ctx := context.Background()
	actor := newActor()
	catalog := newCatalogFor(actor)
	category := &entity.Category{ID: uuid.New(), CatalogID: catalog.ID, Name: "Pizza"}

	fx.catalogRepo.EXPECT().FindByOwnerID(ctx, actor.UserID).Return(catalog, nil)
	fx.categoryRepo.EXPECT().FindByID(ctx, category.ID).Return(category, nil)

	_, err := fx.service.CreateItem(ctx, actor, &usecase.ItemInput{
		CategoryID: category.ID,
		Name:       "Tea",
		ImageURLs:  []string{"https://cdn.example.com/a.jpg", "https://cdn.example.com/b.jpg"},
	})

	assert.True(t, errors.Is(err, domainerrors.ErrPlanFeatureUnavailable))
}

func TestItemService_CreateItem_TransactionFailureIsGeneric(t *testing.T) {
	fx := createTestItemService(t)
	ctx := context.Background()
	actor := newActor()
	catalog := newCatalogFor(actor)
	category := &entity.Category{ID: uuid.New(), CatalogID: catalog.ID, Name: "Pizza"}

	fx.catalogRepo.EXPECT().FindByOwnerID(ctx, actor.UserID).Return(catalog, nil)
	fx.categoryRepo.EXPECT().FindByID(ctx, category.ID).Return(category, nil)
	expectTx(fx.txManager, fx.repoFactory)
	fx.repoFactory.EXPECT().MenuItemRepo().Return(fx.txItemRepo)
	fx.txItemRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.MenuItem")).
		Return(domainerrors.NewDatabaseExecuteError(errors.New("deadlock detected"), "failed to create menu item"))

	_, err := fx.service.CreateItem(ctx, actor, &usecase.ItemInput{CategoryID: category.ID, Name: "Tea"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrItemCreateFailed))
	assert.NotContains(t, err.Error(), "deadlock")
}

func TestItemService_UpdateItem_NonOwnerIsDenied(t *testing.T) {
	fx := createTestItemService(t)
	ctx := context.Background()
	catalog := newCatalogFor(newActor())
	item := &entity.MenuItem{ID: uuid.New(), CatalogID: catalog.ID, CategoryID: uuid.New(), Name: "Tea"}

	fx.itemRepo.EXPECT().FindByID(ctx, item.ID).Return(item, nil)
	fx.catalogRepo.EXPECT().FindByID(ctx, catalog.ID).Return(catalog, nil)

	_, err := fx.service.UpdateItem(ctx, newActor(), item.ID, &usecase.ItemInput{CategoryID: item.CategoryID, Name: "Coffee"})

	assert.True(t, errors.Is(err, domainerrors.ErrCatalogAccessDenied))
}

func TestItemService_UpdateItem_MissingCatalogIsDenied(t *testing.T) {
	fx := createTestItemService(t)
	ctx := context.Background()
	item := &entity.MenuItem{ID: uuid.New(), CatalogID: uuid.New(), CategoryID: uuid.New(), Name: "Tea"}

	fx.itemRepo.EXPECT().FindByID(ctx, item.ID).Return(item, nil)
	fx.catalogRepo.EXPECT().FindByID(ctx, item.CatalogID).Return(nil, repository.ErrCatalogNotFound)

	_, err := fx.service.UpdateItem(ctx, newActor(), item.ID, &usecase.ItemInput{CategoryID: item.CategoryID, Name: "Coffee"})

	assert.True(t, errors.Is(err, domainerrors.ErrCatalogAccessDenied))
}

func TestItemService_UpdateItem_Success(t *testing.T) {
	fx := createTestItemService(t)
	ctx := context.Background()
	actor := newActor()
	catalog := newCatalogFor(actor)
	catalog.Plan = entity.PlanPro
	item := &entity.MenuItem{
		ID:         uuid.New(),
		CatalogID:  catalog.ID,
		CategoryID: uuid.New(),
		Name:       "Tea",
		Price:      decimal.NewNullDecimal(decimal.NewFromInt(10)),
	}

	fx.itemRepo.EXPECT().FindByID(ctx, item.ID).Return(item, nil)
	fx.catalogRepo.EXPECT().FindByID(ctx, catalog.ID).Return(catalog, nil)
	expectTx(fx.txManager, fx.repoFactory)
	fx.repoFactory.EXPECT().MenuItemRepo().Return(fx.txItemRepo)
	fx.txItemRepo.EXPECT().Update(ctx, item).Return(nil)
	fx.txItemRepo.EXPECT().
		ReplaceImages(ctx, item.ID, mock.MatchedBy(func(images []entity.ItemImage) bool {
			return len(images) == 2 && images[0].Position == 0 && images[1].Position == 1 &&
				images[1].URL == "https://cdn.example.com/b.jpg"
		})).
		Return(nil)
	fx.expectChanged(catalog)

	updated, err := fx.service.UpdateItem(ctx, actor, item.ID, &usecase.ItemInput{
		CategoryID: item.CategoryID,
		Name:       "Green Tea",
		ImageURLs:  []string{"https://cdn.example.com/a.jpg", "", "https://cdn.example.com/b.jpg"},
	})

	require.NoError(t, err)
	assert.Equal(t, "Green Tea", updated.Name)
	assert.False(t, updated.Price.Valid)
	assert.Equal(t, "https://cdn.example.com/a.jpg", updated.ImageURL)
}

func TestItemService_DeleteItem_NotFound(t *testing.T) {
	fx := createTestItemService(t)
	ctx := context.Background()
	itemID := uuid.New()

	fx.itemRepo.EXPECT().FindByID(ctx, itemID).Return(nil, repository.ErrMenuItemNotFound)

	err := fx.service.DeleteItem(ctx, newActor(), itemID)

	assert.True(t, errors.Is(err, domainerrors.ErrItemNotFound))
}

func TestItemService_DeleteItem_Success(t *testing.T) {
	fx := createTestItemService(t)
	ctx := context.Background()
	actor := newActor()
	catalog := newCatalogFor(actor)
	item := &entity.MenuItem{ID: uuid.New(), CatalogID: catalog.ID, CategoryID: uuid.New(), Name: "Tea"}

	fx.itemRepo.EXPECT().FindByID(ctx, item.ID).Return(item, nil)
	fx.catalogRepo.EXPECT().FindByID(ctx, catalog.ID).Return(catalog, nil)
	fx.itemRepo.EXPECT().Delete(ctx, item.ID).Return(nil)
	fx.expectChanged(catalog)

	require.NoError(t, fx.service.DeleteItem(ctx, actor, item.ID))
}

func TestItemService_ListItems(t *testing.T) {
	fx := createTestItemService(t)
	ctx := context.Background()
	actor := newActor()
	catalog := newCatalogFor(actor)
	items := []*entity.MenuItem{{ID: uuid.New(), CatalogID: catalog.ID, Name: "Tea"}}

	fx.catalogRepo.EXPECT().FindByOwnerID(ctx, actor.UserID).Return(catalog, nil)
	fx.itemRepo.EXPECT().ListByCatalog(ctx, catalog.ID).Return(items, nil)

	got, err := fx.service.ListItems(ctx, actor)

	require.NoError(t, err)
	assert.Equal(t, items, got)
}
