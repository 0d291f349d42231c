package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/menu"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type categoryServiceFixtures struct {
	service      usecase.CategoryUsecase
	catalogRepo  *mockRepo.MockCatalogRepository
	categoryRepo *mockRepo.MockCategoryRepository
	cache        *mockSvc.MockStorefrontCache
	publisher    *mockSvc.MockEventPublisher
}

func createTestCategoryService(t *testing.T) categoryServiceFixtures {
	catalogRepo := mockRepo.NewMockCatalogRepository(t)
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	cache := mockSvc.NewMockStorefrontCache(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	return categoryServiceFixtures{
		service: NewCategoryService(CategoryServiceParams{
			CatalogRepo:  catalogRepo,
			CategoryRepo: categoryRepo,
			Cache:        cache,
			Publisher:    publisher,
			Config:       newTestConfig(),
			Logger:       newDiscardLogger(),
		}),
		catalogRepo:  catalogRepo,
		categoryRepo: categoryRepo,
		cache:        cache,
		publisher:    publisher,
	}
}

func (f categoryServiceFixtures) expectChanged(catalog *entity.Catalog, action string) {
	f.cache.EXPECT().Invalidate(mock.Anything, catalog.Slug).Return(nil).Once()
	f.publisher.EXPECT().
		Publish(mock.Anything, mock.MatchedBy(func(event *service.Event) bool {
			return event.Type == constants.EventCatalogChanged &&
				event.CatalogID == catalog.ID.String() &&
				event.Attributes["action"] == action
		})).
		Return(nil).
		Once()
}

func TestCategoryService_CreateCategory_ShortNameIsRejectedWithoutWrite(t *testing.T) {
	fx := createTestCategoryService(t)

	category, err := fx.service.CreateCategory(context.Background(), newActor(), &usecase.CategoryInput{Name: "a"})

	require.Error(t, err)
	assert.Nil(t, category)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
	assert.Equal(t, msgCategoryNameShort, appErr.Message())
}

func TestCategoryService_CreateCategory_LongNameIsRejected(t *testing.T) {
	fx := createTestCategoryService(t)

	name := ""
	for range 51 {
		name += "ب"
	}
	_, err := fx.service.CreateCategory(context.Background(), newActor(), &usecase.CategoryInput{Name: name})

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestCategoryService_CreateCategory_Success(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()
	actor := newActor()
	catalog := newCatalogFor(actor)
	parent := &entity.Category{ID: uuid.New(), CatalogID: catalog.ID, Name: "مشروبات"}

	fx.catalogRepo.EXPECT().FindByOwnerID(ctx, actor.UserID).Return(catalog, nil)
	fx.categoryRepo.EXPECT().FindByID(ctx, parent.ID).Return(parent, nil)
	fx.categoryRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Category")).
		Run(func(_ context.Context, category *entity.Category) {
			category.ID = uuid.New()
		}).
		Return(nil)
	fx.expectChanged(catalog, "category.created")

	category, err := fx.service.CreateCategory(ctx, actor, &usecase.CategoryInput{
		Name:     "  عصائر  ",
		ParentID: &parent.ID,
	})

	require.NoError(t, err)
	assert.Equal(t, "عصائر", category.Name)
	assert.Equal(t, catalog.ID, category.CatalogID)
	assert.Equal(t, parent.ID, *category.ParentID)
}

func TestCategoryService_CreateCategory_ParentFromAnotherCatalog(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()
	actor := newActor()
	catalog := newCatalogFor(actor)
	foreignParent := &entity.Category{ID: uuid.New(), CatalogID: uuid.New(), Name: "Other"}

	fx.catalogRepo.EXPECT().FindByOwnerID(ctx, actor.UserID).Return(catalog, nil)
	fx.categoryRepo.EXPECT().FindByID(ctx, foreignParent.ID).Return(foreignParent, nil)

	_, err := fx.service.CreateCategory(ctx, actor, &usecase.CategoryInput{Name: "Juices", ParentID: &foreignParent.ID})

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidParentCategory))
}

func TestCategoryService_CreateCategory_WithoutCatalog(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()
	actor := newActor()

	fx.catalogRepo.EXPECT().FindByOwnerID(ctx, actor.UserID).Return(nil, repository.ErrCatalogNotFound)

	_, err := fx.service.CreateCategory(ctx, actor, &usecase.CategoryInput{Name: "Juices"})

	assert.True(t, errors.Is(err, domainerrors.ErrCatalogNotFound))
}

func TestCategoryService_CreateCategory_DatastoreFailureIsGeneric(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()
	actor := newActor()
	catalog := newCatalogFor(actor)

	fx.catalogRepo.EXPECT().FindByOwnerID(ctx, actor.UserID).Return(catalog, nil)
	fx.categoryRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Category")).
		Return(domainerrors.NewDatabaseExecuteError(errors.New("connection reset"), "failed to create category"))

	_, err := fx.service.CreateCategory(ctx, actor, &usecase.CategoryInput{Name: "Juices"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCategoryCreateFailed))
	assert.NotContains(t, err.Error(), "connection reset")
}

func TestCategoryService_CreateCategory_ServiceNotConfiguredPassesThrough(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()
	actor := newActor()

	fx.catalogRepo.EXPECT().FindByOwnerID(ctx, actor.UserID).Return(nil, domainerrors.ErrServiceNotConfigured)

	_, err := fx.service.CreateCategory(ctx, actor, &usecase.CategoryInput{Name: "Juices"})

	assert.True(t, errors.Is(err, domainerrors.ErrServiceNotConfigured))
}

func TestCategoryService_CreateCategory_RequiresActor(t *testing.T) {
	fx := createTestCategoryService(t)

	_, err := fx.service.CreateCategory(context.Background(), entity.Actor{}, &usecase.CategoryInput{Name: "Juices"})

	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
}

func TestCategoryService_UpdateCategory_SelfParentIsRejectedWithoutLookup(t *testing.T) {
	fx := createTestCategoryService(t)
	categoryID := uuid.New()

	_, err := fx.service.UpdateCategory(context.Background(), newActor(), categoryID, &usecase.CategoryInput{
		Name:     "Juices",
		ParentID: &categoryID,
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestCategoryService_UpdateCategory_NonOwnerIsDenied(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()
	owner := newActor()
	intruder := newActor()
	catalog := newCatalogFor(owner)
	category := &entity.Category{ID: uuid.New(), CatalogID: catalog.ID, Name: "Juices"}

	fx.categoryRepo.EXPECT().FindByID(ctx, category.ID).Return(category, nil)
	fx.catalogRepo.EXPECT().FindByID(ctx, catalog.ID).Return(catalog, nil)

	_, err := fx.service.UpdateCategory(ctx, intruder, category.ID, &usecase.CategoryInput{Name: "Hacked"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCatalogAccessDenied))

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 403, appErr.HTTPCode())
	assert.Equal(t, "CATALOG_ACCESS_DENIED", appErr.ErrorCode())
}

func TestCategoryService_UpdateCategory_DescendantParentIsRejected(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()
	actor := newActor()
	catalog := newCatalogFor(actor)
	root := &entity.Category{ID: uuid.New(), CatalogID: catalog.ID, Name: "Drinks"}
	child := &entity.Category{ID: uuid.New(), CatalogID: catalog.ID, Name: "Juices", ParentID: &root.ID}

	fx.categoryRepo.EXPECT().FindByID(ctx, root.ID).Return(root, nil)
	fx.catalogRepo.EXPECT().FindByID(ctx, catalog.ID).Return(catalog, nil)
	fx.categoryRepo.EXPECT().FindByID(ctx, child.ID).Return(child, nil)
	fx.categoryRepo.EXPECT().ListByCatalog(ctx, catalog.ID).Return([]*entity.Category{root, child}, nil)

	_, err := fx.service.UpdateCategory(ctx, actor, root.ID, &usecase.CategoryInput{Name: "Drinks", ParentID: &child.ID})

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidParentCategory))
}

func TestCategoryService_UpdateCategory_Success(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()
	actor := newActor()
	catalog := newCatalogFor(actor)
	category := &entity.Category{ID: uuid.New(), CatalogID: catalog.ID, Name: "Juices"}

	fx.categoryRepo.EXPECT().FindByID(ctx, category.ID).Return(category, nil)
	fx.catalogRepo.EXPECT().FindByID(ctx, catalog.ID).Return(catalog, nil)
	fx.categoryRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(c *entity.Category) bool {
			return c.ID == category.ID && c.Name == "Fresh Juices" && c.ParentID == nil
		})).
		Return(nil)
	fx.expectChanged(catalog, "category.updated")

	updated, err := fx.service.UpdateCategory(ctx, actor, category.ID, &usecase.CategoryInput{Name: "Fresh Juices"})

	require.NoError(t, err)
	assert.Equal(t, "Fresh Juices", updated.Name)
}

func TestCategoryService_UpdateCategory_NotFound(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()
	categoryID := uuid.New()

	fx.categoryRepo.EXPECT().FindByID(ctx, categoryID).Return(nil, repository.ErrCategoryNotFound)

	_, err := fx.service.UpdateCategory(ctx, newActor(), categoryID, &usecase.CategoryInput{Name: "Juices"})

	assert.True(t, errors.Is(err, domainerrors.ErrCategoryNotFound))
}

func TestCategoryService_DeleteCategory_NonOwnerIsDenied(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()
	catalog := newCatalogFor(newActor())
	category := &entity.Category{ID: uuid.New(), CatalogID: catalog.ID, Name: "Juices"}

	fx.categoryRepo.EXPECT().FindByID(ctx, category.ID).Return(category, nil)
	fx.catalogRepo.EXPECT().FindByID(ctx, catalog.ID).Return(catalog, nil)

	err := fx.service.DeleteCategory(ctx, newActor(), category.ID)

	assert.True(t, errors.Is(err, domainerrors.ErrCatalogAccessDenied))
}

func TestCategoryService_DeleteCategory_Success(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()
	actor := newActor()
	catalog := newCatalogFor(actor)
	category := &entity.Category{ID: uuid.New(), CatalogID: catalog.ID, Name: "Juices"}

	fx.categoryRepo.EXPECT().FindByID(ctx, category.ID).Return(category, nil)
	fx.catalogRepo.EXPECT().FindByID(ctx, catalog.ID).Return(catalog, nil)
	fx.categoryRepo.EXPECT().Delete(ctx, category.ID).Return(nil)
	fx.expectChanged(catalog, "category.deleted")

	require.NoError(t, fx.service.DeleteCategory(ctx, actor, category.ID))
}

func TestCategoryService_DeleteCategory_SideEffectFailuresAreIgnored(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()
	actor := newActor()
	catalog := newCatalogFor(actor)
	category := &entity.Category{ID: uuid.New(), CatalogID: catalog.ID, Name: "Juices"}

	fx.categoryRepo.EXPECT().FindByID(ctx, category.ID).Return(category, nil)
	fx.catalogRepo.EXPECT().FindByID(ctx, catalog.ID).Return(catalog, nil)
	fx.categoryRepo.EXPECT().Delete(ctx, category.ID).Return(nil)
	fx.cache.EXPECT().Invalidate(mock.Anything, catalog.Slug).Return(errors.New("redis down"))
	fx.publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(errors.New("topic missing"))

	assert.NoError(t, fx.service.DeleteCategory(ctx, actor, category.ID))
}

func TestCategoryService_ListCategories_GroupsUnderRoots(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()
	actor := newActor()
	catalog := newCatalogFor(actor)
	drinks := &entity.Category{ID: uuid.New(), CatalogID: catalog.ID, Name: "مشروبات"}
	juices := &entity.Category{ID: uuid.New(), CatalogID: catalog.ID, Name: "عصائر", ParentID: &drinks.ID}
	orphan := &entity.Category{ID: uuid.New(), CatalogID: catalog.ID, Name: "يتيم", ParentID: ptr(uuid.New())}

	fx.catalogRepo.EXPECT().FindByOwnerID(ctx, actor.UserID).Return(catalog, nil)
	fx.categoryRepo.EXPECT().ListByCatalog(ctx, catalog.ID).Return([]*entity.Category{drinks, juices, orphan}, nil)

	output, err := fx.service.ListCategories(ctx, actor)

	require.NoError(t, err)
	assert.Len(t, output.Categories, 3)
	require.Len(t, output.Groups, 2)
	assert.Equal(t, drinks, output.Groups[0].Parent)
	assert.Equal(t, []*entity.Category{juices}, output.Groups[0].Children)
	assert.True(t, output.Groups[1].IsOrphan())
	assert.Equal(t, menu.UnlinkedGroupLabel, output.Groups[1].Label())
}

func TestIsDescendant(t *testing.T) {
	a := &entity.Category{ID: uuid.New()}
	b := &entity.Category{ID: uuid.New(), ParentID: &a.ID}
	c := &entity.Category{ID: uuid.New(), ParentID: &b.ID}
	loopX := &entity.Category{ID: uuid.New()}
	loopY := &entity.Category{ID: uuid.New(), ParentID: &loopX.ID}
	loopX.ParentID = &loopY.ID
	categories := []*entity.Category{a, b, c, loopX, loopY}

	assert.True(t, isDescendant(categories, c.ID, a.ID))
	assert.True(t, isDescendant(categories, b.ID, a.ID))
	assert.False(t, isDescendant(categories, a.ID, c.ID))
	assert.False(t, isDescendant(categories, loopX.ID, a.ID))
}
