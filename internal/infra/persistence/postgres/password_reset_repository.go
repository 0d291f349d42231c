package postgres

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type passwordResetRepository struct {
	conn
}

// NewPasswordResetRepository is the constructor for passwordResetRepository.
func NewPasswordResetRepository(db *gorm.DB) repository.PasswordResetRepository {
	return &passwordResetRepository{conn: conn{db: db}}
}

func (repo *passwordResetRepository) Create(ctx context.Context, reset *entity.PasswordReset) error {
	db, err := repo.session(ctx)
	if err != nil {
		return err
	}

	resetM := fromPasswordResetDomain(reset)
	if err := db.Create(resetM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create password reset")
	}

	reset.ID = resetM.ID
	reset.CreatedAt = resetM.CreatedAt

	return nil
}

func (repo *passwordResetRepository) FindByHash(ctx context.Context, tokenHash string) (*entity.PasswordReset, error) {
	db, err := repo.session(ctx)
	if err != nil {
		return nil, err
	}

	var resetM model.PasswordResetModel
	if err := db.Where("token_hash = ?", tokenHash).First(&resetM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPasswordResetNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toPasswordResetDomain(&resetM), nil
}

// MarkUsed consumes a reset token. A token that was already used is reported as not found.
func (repo *passwordResetRepository) MarkUsed(ctx context.Context, id uuid.UUID, usedAt time.Time) error {
	db, err := repo.session(ctx)
	if err != nil {
		return err
	}

	result := db.Model(&model.PasswordResetModel{}).
		Where("id = ? AND used_at IS NULL", id).
		Update("used_at", usedAt)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark password reset used")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPasswordResetNotFound
	}

	return nil
}

func toPasswordResetDomain(data *model.PasswordResetModel) *entity.PasswordReset {
	return &entity.PasswordReset{
		ID:        data.ID,
		UserID:    data.UserID,
		TokenHash: data.TokenHash,
		ExpiresAt: data.ExpiresAt,
		UsedAt:    data.UsedAt,
		CreatedAt: data.CreatedAt,
	}
}

func fromPasswordResetDomain(data *entity.PasswordReset) *model.PasswordResetModel {
	return &model.PasswordResetModel{
		ID:        data.ID,
		UserID:    data.UserID,
		TokenHash: data.TokenHash,
		ExpiresAt: data.ExpiresAt,
		UsedAt:    data.UsedAt,
		CreatedAt: data.CreatedAt,
	}
}
