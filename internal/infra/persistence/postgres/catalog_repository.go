package postgres

import (
	"context"
	"strings"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// catalogUpdatableColumns lists the columns a merchant may change after onboarding.
var catalogUpdatableColumns = []string{
	"slug", "name", "description", "logo_url", "cover_url", "theme",
	"whatsapp_number", "country_code", "plan", "enable_subcategories", "hide_footer",
}

type catalogRepository struct {
	conn
}

// NewCatalogRepository is the constructor for catalogRepository.
func NewCatalogRepository(db *gorm.DB) repository.CatalogRepository {
	return &catalogRepository{conn: conn{db: db}}
}

func (repo *catalogRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Catalog, error) {
	return repo.first(ctx, "id = ?", id)
}

func (repo *catalogRepository) FindBySlug(ctx context.Context, slug string) (*entity.Catalog, error) {
	return repo.first(ctx, "slug = ?", slug)
}

func (repo *catalogRepository) FindByOwnerID(ctx context.Context, ownerID uuid.UUID) (*entity.Catalog, error) {
	return repo.first(ctx, "owner_id = ?", ownerID)
}

func (repo *catalogRepository) first(ctx context.Context, query string, args ...any) (*entity.Catalog, error) {
	db, err := repo.session(ctx)
	if err != nil {
		return nil, err
	}

	var catalogM model.CatalogModel
	if err := db.Where(query, args...).First(&catalogM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCatalogNotFound
		}

		return nil, errors.Wrap(err, "failed to find catalog")
	}

	return toCatalogDomain(&catalogM), nil
}

// SlugExists reports whether another catalog already uses slug. excludeID may be uuid.Nil.
func (repo *catalogRepository) SlugExists(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error) {
	db, err := repo.session(ctx)
	if err != nil {
		return false, err
	}

	query := db.Model(&model.CatalogModel{}).Where("slug = ?", slug)
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check slug")
	}

	return count > 0, nil
}

func (repo *catalogRepository) Create(ctx context.Context, catalog *entity.Catalog) error {
	db, err := repo.session(ctx)
	if err != nil {
		return err
	}

	catalogM := fromCatalogDomain(catalog)
	if err := db.Omit(clause.Associations).Create(catalogM).Error; err != nil {
		return mapCatalogWriteError(err, "failed to create catalog")
	}

	catalog.ID = catalogM.ID
	catalog.CreatedAt = catalogM.CreatedAt
	catalog.UpdatedAt = catalogM.UpdatedAt

	return nil
}

func (repo *catalogRepository) Update(ctx context.Context, catalog *entity.Catalog) error {
	db, err := repo.session(ctx)
	if err != nil {
		return err
	}

	catalogM := fromCatalogDomain(catalog)
	result := db.Model(&model.CatalogModel{ID: catalog.ID}).
		Select(catalogUpdatableColumns).
		Updates(catalogM)
	if result.Error != nil {
		return mapCatalogWriteError(result.Error, "failed to update catalog")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCatalogNotFound
	}

	catalog.UpdatedAt = catalogM.UpdatedAt

	return nil
}

func mapCatalogWriteError(err error, details string) error {
	if isUniqueConstraintViolation(err) {
		if strings.Contains(constraintName(err), "owner_id") {
			return domainerrors.ErrCatalogAlreadyExists.WrapMessage(details)
		}

		return domainerrors.ErrSlugTaken.WrapMessage(details)
	}
	if isForeignKeyConstraintViolation(err) {
		return domainerrors.ErrUserNotFound.WrapMessage("invalid owner reference")
	}
	if isCheckConstraintViolation(err) || isNotNullConstraintViolation(err) {
		return domainerrors.ErrCatalogSaveFailed.WrapMessage(details)
	}

	return domainerrors.NewDatabaseExecuteError(err, details)
}

// --- Mapper Functions ---

func toCatalogDomain(data *model.CatalogModel) *entity.Catalog {
	if data == nil {
		return nil
	}

	return &entity.Catalog{
		ID:                  data.ID,
		OwnerID:             data.OwnerID,
		Slug:                data.Slug,
		Name:                data.Name,
		Description:         data.Description,
		LogoURL:             data.LogoURL,
		CoverURL:            data.CoverURL,
		Theme:               entity.Theme(data.Theme),
		WhatsAppNumber:      data.WhatsAppNumber,
		CountryCode:         data.CountryCode,
		Plan:                entity.Plan(data.Plan),
		EnableSubcategories: data.EnableSubcategories,
		HideFooter:          data.HideFooter,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
}

func fromCatalogDomain(data *entity.Catalog) *model.CatalogModel {
	if data == nil {
		return nil
	}

	return &model.CatalogModel{
		ID:                  data.ID,
		OwnerID:             data.OwnerID,
		Slug:                data.Slug,
		Name:                data.Name,
		Description:         data.Description,
		LogoURL:             data.LogoURL,
		CoverURL:            data.CoverURL,
		Theme:               string(data.Theme),
		WhatsAppNumber:      data.WhatsAppNumber,
		CountryCode:         data.CountryCode,
		Plan:                string(data.Plan),
		EnableSubcategories: data.EnableSubcategories,
		HideFooter:          data.HideFooter,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
}
