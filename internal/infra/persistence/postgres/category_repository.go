package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type categoryRepository struct {
	conn
}

// NewCategoryRepository is the constructor for categoryRepository.
func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &categoryRepository{conn: conn{db: db}}
}

func (repo *categoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	db, err := repo.session(ctx)
	if err != nil {
		return nil, err
	}

	var categoryM model.CategoryModel
	if err := db.Where("id = ?", id).First(&categoryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find category")
	}

	return toCategoryDomain(&categoryM), nil
}

// ListByCatalog returns the catalog's categories in creation order, without items.
func (repo *categoryRepository) ListByCatalog(ctx context.Context, catalogID uuid.UUID) ([]*entity.Category, error) {
	db, err := repo.session(ctx)
	if err != nil {
		return nil, err
	}

	var categoryModels []*model.CategoryModel
	if err := db.Where("catalog_id = ?", catalogID).
		Order("created_at ASC").Order("id ASC").
		Find(&categoryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return toCategoryDomains(categoryModels), nil
}

// ListWithItemsByCatalog loads every category with its items and their images in one round of preloads.
func (repo *categoryRepository) ListWithItemsByCatalog(ctx context.Context, catalogID uuid.UUID) ([]*entity.Category, error) {
	db, err := repo.session(ctx)
	if err != nil {
		return nil, err
	}

	var categoryModels []*model.CategoryModel
	if err := db.
		Preload("Items", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("created_at ASC").Order("id ASC")
		}).
		Preload("Items.Images", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("position ASC")
		}).
		Where("catalog_id = ?", catalogID).
		Order("created_at ASC").Order("id ASC").
		Find(&categoryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list categories with items")
	}

	return toCategoryDomains(categoryModels), nil
}

func (repo *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	db, err := repo.session(ctx)
	if err != nil {
		return err
	}

	categoryM := fromCategoryDomain(category)
	if err := db.Omit(clause.Associations).Create(categoryM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrInvalidParentCategory.WrapMessage("invalid catalog or parent reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create category")
	}

	category.ID = categoryM.ID
	category.CreatedAt = categoryM.CreatedAt

	return nil
}

func (repo *categoryRepository) Update(ctx context.Context, category *entity.Category) error {
	db, err := repo.session(ctx)
	if err != nil {
		return err
	}

	result := db.Model(&model.CategoryModel{}).
		Where("id = ?", category.ID).
		Updates(map[string]any{
			"name":        category.Name,
			"description": category.Description,
			"parent_id":   category.ParentID,
		})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrInvalidParentCategory.WrapMessage("invalid parent reference")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update category")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCategoryNotFound
	}

	return nil
}

// Delete removes a category. Child categories and items go with it through ON DELETE CASCADE.
func (repo *categoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	db, err := repo.session(ctx)
	if err != nil {
		return err
	}

	result := db.Where("id = ?", id).Delete(&model.CategoryModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete category")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCategoryNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toCategoryDomains(data []*model.CategoryModel) []*entity.Category {
	categories := make([]*entity.Category, 0, len(data))
	for _, categoryM := range data {
		categories = append(categories, toCategoryDomain(categoryM))
	}

	return categories
}

func toCategoryDomain(data *model.CategoryModel) *entity.Category {
	if data == nil {
		return nil
	}

	category := &entity.Category{
		ID:          data.ID,
		CatalogID:   data.CatalogID,
		ParentID:    data.ParentID,
		Name:        data.Name,
		Description: data.Description,
		CreatedAt:   data.CreatedAt,
	}
	if data.Items != nil {
		category.Items = make([]*entity.MenuItem, 0, len(data.Items))
		for i := range data.Items {
			category.Items = append(category.Items, toMenuItemDomain(&data.Items[i]))
		}
	}

	return category
}

func fromCategoryDomain(data *entity.Category) *model.CategoryModel {
	if data == nil {
		return nil
	}

	return &model.CategoryModel{
		ID:          data.ID,
		CatalogID:   data.CatalogID,
		ParentID:    data.ParentID,
		Name:        data.Name,
		Description: data.Description,
		CreatedAt:   data.CreatedAt,
	}
}
