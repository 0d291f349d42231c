package impl

import (
	"context"
	"log/slog"
	"strings"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/menu"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"golang.org/x/text/language"
)

// categoryService implements the CategoryUsecase interface.
type categoryService struct {
	catalogRepo  repository.CatalogRepository
	categoryRepo repository.CategoryRepository
	cache        service.StorefrontCache
	publisher    service.EventPublisher
	lang         language.Tag
	logger       *slog.Logger
}

// CategoryServiceParams holds dependencies for CategoryService, injected by Fx.
type CategoryServiceParams struct {
	fx.In

	CatalogRepo  repository.CatalogRepository
	CategoryRepo repository.CategoryRepository
	Cache        service.StorefrontCache
	Publisher    service.EventPublisher
	Config       *config.Config
	Logger       *slog.Logger
}

// NewCategoryService creates the category usecase.
func NewCategoryService(params CategoryServiceParams) usecase.CategoryUsecase {
	return &categoryService{
		catalogRepo:  params.CatalogRepo,
		categoryRepo: params.CategoryRepo,
		cache:        params.Cache,
		publisher:    params.Publisher,
		lang:         language.Make(params.Config.Catalog.Locale),
		logger:       params.Logger,
	}
}

func (srv *categoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListCategories returns the merchant's categories, flat and grouped under their roots.
func (srv *categoryService) ListCategories(ctx context.Context, actor entity.Actor) (*usecase.CategoryListOutput, error) {
	catalog, err := findOwnedCatalog(ctx, srv.catalogRepo, actor)
	if err != nil {
		return nil, err
	}

	categories, err := srv.categoryRepo.ListByCatalog(ctx, catalog.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to list categories", slog.Any("catalogID", catalog.ID), slog.Any("error", err))

		return nil, keepOrReplace(err, domainerrors.ErrInternalError, "failed to list categories")
	}

	return &usecase.CategoryListOutput{
		Categories: categories,
		Groups:     menu.GroupCategories(categories, srv.lang),
	}, nil
}

// CreateCategory adds a category to the merchant's catalog.
func (srv *categoryService) CreateCategory(ctx context.Context, actor entity.Actor, input *usecase.CategoryInput) (*entity.Category, error) {
	if err := validateCategoryInput(input); err != nil {
		return nil, err
	}

	catalog, err := findOwnedCatalog(ctx, srv.catalogRepo, actor)
	if err != nil {
		return nil, err
	}

	if input.ParentID != nil {
		if _, err := srv.loadParent(ctx, catalog.ID, *input.ParentID); err != nil {
			return nil, err
		}
	}

	category := &entity.Category{
		CatalogID:   catalog.ID,
		ParentID:    input.ParentID,
		Name:        strings.TrimSpace(input.Name),
		Description: strings.TrimSpace(input.Description),
	}
	if err := srv.categoryRepo.Create(ctx, category); err != nil {
		srv.log(ctx).Error("Failed to create category", slog.Any("catalogID", catalog.ID), slog.Any("error", err))

		return nil, keepOrReplace(err, domainerrors.ErrCategoryCreateFailed, "failed to create category")
	}

	srv.log(ctx).Info("Category created", slog.Any("categoryID", category.ID), slog.Any("catalogID", catalog.ID))
	publishCatalogChanged(ctx, srv.log(ctx), srv.cache, srv.publisher, catalog, "category.created")

	return category, nil
}

// UpdateCategory renames or moves a category. The owning catalog is read from the stored row.
func (srv *categoryService) UpdateCategory(ctx context.Context, actor entity.Actor, categoryID uuid.UUID, input *usecase.CategoryInput) (*entity.Category, error) {
	if err := validateCategoryInput(input); err != nil {
		return nil, err
	}
	if input.ParentID != nil && *input.ParentID == categoryID {
		return nil, domainerrors.Validation(msgParentSelf)
	}

	category, catalog, err := srv.loadOwnedCategory(ctx, actor, categoryID)
	if err != nil {
		return nil, err
	}

	if input.ParentID != nil {
		if err := srv.checkNewParent(ctx, catalog.ID, categoryID, *input.ParentID); err != nil {
			return nil, err
		}
	}

	category.Name = strings.TrimSpace(input.Name)
	category.Description = strings.TrimSpace(input.Description)
	category.ParentID = input.ParentID

	if err := srv.categoryRepo.Update(ctx, category); err != nil {
		srv.log(ctx).Error("Failed to update category", slog.Any("categoryID", categoryID), slog.Any("error", err))
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, errors.Wrap(domainerrors.ErrCategoryNotFound, "category vanished during update")
		}

		return nil, keepOrReplace(err, domainerrors.ErrCategoryUpdateFailed, "failed to update category")
	}

	publishCatalogChanged(ctx, srv.log(ctx), srv.cache, srv.publisher, catalog, "category.updated")

	return category, nil
}

// DeleteCategory removes a category together with its subcategories and items.
func (srv *categoryService) DeleteCategory(ctx context.Context, actor entity.Actor, categoryID uuid.UUID) error {
	_, catalog, err := srv.loadOwnedCategory(ctx, actor, categoryID)
	if err != nil {
		return err
	}

	if err := srv.categoryRepo.Delete(ctx, categoryID); err != nil {
		srv.log(ctx).Error("Failed to delete category", slog.Any("categoryID", categoryID), slog.Any("error", err))
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return errors.Wrap(domainerrors.ErrCategoryNotFound, "category vanished during delete")
		}

		return keepOrReplace(err, domainerrors.ErrCategoryDeleteFailed, "failed to delete category")
	}

	srv.log(ctx).Info("Category deleted", slog.Any("categoryID", categoryID), slog.Any("catalogID", catalog.ID))
	publishCatalogChanged(ctx, srv.log(ctx), srv.cache, srv.publisher, catalog, "category.deleted")

	return nil
}

func (srv *categoryService) loadOwnedCategory(ctx context.Context, actor entity.Actor, categoryID uuid.UUID) (*entity.Category, *entity.Catalog, error) {
	if err := requireActor(actor); err != nil {
		return nil, nil, err
	}

	category, err := srv.categoryRepo.FindByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, nil, errors.Wrap(domainerrors.ErrCategoryNotFound, "category not found")
		}
		srv.log(ctx).Error("Failed to load category", slog.Any("categoryID", categoryID), slog.Any("error", err))

		return nil, nil, keepOrReplace(err, domainerrors.ErrInternalError, "failed to load category")
	}

	catalog, err := authorizeCatalog(ctx, srv.catalogRepo, actor, category.CatalogID)
	if err != nil {
		srv.log(ctx).Warn("Category access rejected", slog.Any("categoryID", categoryID), slog.Any("userID", actor.UserID))

		return nil, nil, err
	}

	return category, catalog, nil
}

func (srv *categoryService) loadParent(ctx context.Context, catalogID, parentID uuid.UUID) (*entity.Category, error) {
	parent, err := srv.categoryRepo.FindByID(ctx, parentID)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidParentCategory, "parent category not found")
		}

		return nil, keepOrReplace(err, domainerrors.ErrInternalError, "failed to load parent category")
	}
	if parent.CatalogID != catalogID {
		return nil, errors.Wrap(domainerrors.ErrInvalidParentCategory, "parent category belongs to another catalog")
	}

	return parent, nil
}

// checkNewParent rejects parents from other catalogs and parents that sit below the category.
func (srv *categoryService) checkNewParent(ctx context.Context, catalogID, categoryID, parentID uuid.UUID) error {
	if _, err := srv.loadParent(ctx, catalogID, parentID); err != nil {
		return err
	}

	categories, err := srv.categoryRepo.ListByCatalog(ctx, catalogID)
	if err != nil {
		return keepOrReplace(err, domainerrors.ErrCategoryUpdateFailed, "failed to load categories for cycle check")
	}
	if isDescendant(categories, parentID, categoryID) {
		return errors.Wrap(domainerrors.ErrInvalidParentCategory, "parent category is a descendant")
	}

	return nil
}

// isDescendant walks the parent chain of candidate and reports whether it reaches ancestor.
func isDescendant(categories []*entity.Category, candidate, ancestor uuid.UUID) bool {
	parents := make(map[uuid.UUID]*uuid.UUID, len(categories))
	for _, c := range categories {
		parents[c.ID] = c.ParentID
	}

	seen := make(map[uuid.UUID]bool, len(categories))
	for current := candidate; !seen[current]; {
		seen[current] = true
		parent := parents[current]
		if parent == nil {
			return false
		}
		if *parent == ancestor {
			return true
		}
		current = *parent
	}

	return false
}

func validateCategoryInput(input *usecase.CategoryInput) error {
	if err := validateCategoryName(input.Name); err != nil {
		return err
	}

	return validateDescription(input.Description)
}
