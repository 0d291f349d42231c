package postgres

import (
	"context"

	domainerrors "storefront/internal/domain/errors"

	"gorm.io/gorm"
)

// conn is embedded by every repository. A nil handle means postgres is not configured.
type conn struct {
	db *gorm.DB
}

func (c conn) session(ctx context.Context) (*gorm.DB, error) {
	if c.db == nil {
		return nil, domainerrors.ErrServiceNotConfigured
	}

	return c.db.WithContext(ctx), nil
}
