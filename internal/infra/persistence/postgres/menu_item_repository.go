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

type menuItemRepository struct {
	conn
}

// NewMenuItemRepository is the constructor for menuItemRepository.
func NewMenuItemRepository(db *gorm.DB) repository.MenuItemRepository {
	return &menuItemRepository{conn: conn{db: db}}
}

func preloadImages(tx *gorm.DB) *gorm.DB {
	return tx.Order("position ASC")
}

func (repo *menuItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error) {
	db, err := repo.session(ctx)
	if err != nil {
		return nil, err
	}

	var itemM model.MenuItemModel
	if err := db.Preload("Images", preloadImages).Where("id = ?", id).First(&itemM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMenuItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find menu item")
	}

	return toMenuItemDomain(&itemM), nil
}

func (repo *menuItemRepository) ListByCatalog(ctx context.Context, catalogID uuid.UUID) ([]*entity.MenuItem, error) {
	db, err := repo.session(ctx)
	if err != nil {
		return nil, err
	}

	var itemModels []model.MenuItemModel
	if err := db.Preload("Images", preloadImages).
		Where("catalog_id = ?", catalogID).
		Order("created_at ASC").Order("id ASC").
		Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list menu items")
	}

	items := make([]*entity.MenuItem, 0, len(itemModels))
	for i := range itemModels {
		items = append(items, toMenuItemDomain(&itemModels[i]))
	}

	return items, nil
}

// Create inserts the item row only; images are written with ReplaceImages.
func (repo *menuItemRepository) Create(ctx context.Context, item *entity.MenuItem) error {
	db, err := repo.session(ctx)
	if err != nil {
		return err
	}

	itemM := fromMenuItemDomain(item)
	if err := db.Omit(clause.Associations).Create(itemM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrCategoryNotFound.WrapMessage("invalid category reference")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrItemCreateFailed.WrapMessage("check constraint violated")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create menu item")
	}

	item.ID = itemM.ID
	item.CreatedAt = itemM.CreatedAt
	item.UpdatedAt = itemM.UpdatedAt

	return nil
}

func (repo *menuItemRepository) Update(ctx context.Context, item *entity.MenuItem) error {
	db, err := repo.session(ctx)
	if err != nil {
		return err
	}

	itemM := fromMenuItemDomain(item)
	result := db.Model(&model.MenuItemModel{ID: item.ID}).
		Select("category_id", "name", "description", "price", "image_url", "is_featured", "is_popular").
		Updates(itemM)
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrCategoryNotFound.WrapMessage("invalid category reference")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update menu item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMenuItemNotFound
	}

	item.UpdatedAt = itemM.UpdatedAt

	return nil
}

// ReplaceImages swaps the item's gallery for images, numbering positions from zero.
// Callers run it inside a transaction together with the item write.
func (repo *menuItemRepository) ReplaceImages(ctx context.Context, itemID uuid.UUID, images []entity.ItemImage) error {
	db, err := repo.session(ctx)
	if err != nil {
		return err
	}

	if err := db.Where("item_id = ?", itemID).Delete(&model.ItemImageModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear item images")
	}
	if len(images) == 0 {
		return nil
	}

	imageModels := make([]model.ItemImageModel, 0, len(images))
	for i, image := range images {
		imageModels = append(imageModels, model.ItemImageModel{
			ItemID:   itemID,
			URL:      image.URL,
			Position: i,
		})
	}
	if err := db.Create(&imageModels).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrMenuItemNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save item images")
	}

	return nil
}

func (repo *menuItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	db, err := repo.session(ctx)
	if err != nil {
		return err
	}

	result := db.Where("id = ?", id).Delete(&model.MenuItemModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete menu item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMenuItemNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toMenuItemDomain(data *model.MenuItemModel) *entity.MenuItem {
	if data == nil {
		return nil
	}

	item := &entity.MenuItem{
		ID:          data.ID,
		CatalogID:   data.CatalogID,
		CategoryID:  data.CategoryID,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		ImageURL:    data.ImageURL,
		IsFeatured:  data.IsFeatured,
		IsPopular:   data.IsPopular,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
		Images:      make([]entity.ItemImage, 0, len(data.Images)),
	}
	for _, imageM := range data.Images {
		item.Images = append(item.Images, entity.ItemImage{
			ID:       imageM.ID,
			ItemID:   imageM.ItemID,
			URL:      imageM.URL,
			Position: imageM.Position,
		})
	}

	return item
}

func fromMenuItemDomain(data *entity.MenuItem) *model.MenuItemModel {
	if data == nil {
		return nil
	}

	return &model.MenuItemModel{
		ID:          data.ID,
		CatalogID:   data.CatalogID,
		CategoryID:  data.CategoryID,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		ImageURL:    data.ImageURL,
		IsFeatured:  data.IsFeatured,
		IsPopular:   data.IsPopular,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
