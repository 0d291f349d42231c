// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// keepOrReplace returns err unchanged when it already carries a user facing error,
// otherwise it hides the storage detail behind fallback.
func keepOrReplace(err error, fallback *domainerrors.BaseError, message string) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if _, isDB := appErr.(*domainerrors.DatabaseExecuteError); !isDB {
			return errors.Wrap(err, message)
		}
	}

	return fallback.WrapMessage(message)
}

// requireActor rejects calls without an authenticated identity.
func requireActor(actor entity.Actor) error {
	if actor.IsZero() {
		return errors.Wrap(domainerrors.ErrUnauthenticated, "missing actor")
	}

	return nil
}

// findOwnedCatalog loads the catalog of the calling merchant.
func findOwnedCatalog(ctx context.Context, repo repository.CatalogRepository, actor entity.Actor) (*entity.Catalog, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}

	catalog, err := repo.FindByOwnerID(ctx, actor.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrCatalogNotFound) {
			return nil, errors.Wrap(domainerrors.ErrCatalogNotFound, "merchant has no catalog")
		}

		return nil, keepOrReplace(err, domainerrors.ErrInternalError, "failed to load merchant catalog")
	}

	return catalog, nil
}

// authorizeCatalog loads the catalog a row belongs to and checks that actor owns it.
func authorizeCatalog(ctx context.Context, repo repository.CatalogRepository, actor entity.Actor, catalogID uuid.UUID) (*entity.Catalog, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}

	catalog, err := repo.FindByID(ctx, catalogID)
	if err != nil {
		if errors.Is(err, repository.ErrCatalogNotFound) {
			return nil, errors.Wrap(domainerrors.ErrCatalogAccessDenied, "catalog of row does not exist")
		}

		return nil, keepOrReplace(err, domainerrors.ErrInternalError, "failed to load catalog")
	}

	if !catalog.OwnedBy(actor.UserID) {
		return nil, errors.Wrap(domainerrors.ErrCatalogAccessDenied, "actor does not own catalog")
	}

	return catalog, nil
}

// publishCatalogChanged invalidates the cached storefront and announces the change.
// Both side effects are best effort; failures are logged.
func publishCatalogChanged(
	ctx context.Context,
	logger *slog.Logger,
	cache service.StorefrontCache,
	publisher service.EventPublisher,
	catalog *entity.Catalog,
	action string,
	staleSlugs ...string,
) {
	slugs := append([]string{catalog.Slug}, staleSlugs...)
	if err := cache.Invalidate(ctx, slugs...); err != nil {
		logger.Warn("Failed to invalidate storefront cache", slog.Any("slugs", slugs), slog.Any("error", err))
	}

	event := &service.Event{
		Type:       constants.EventCatalogChanged,
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		CatalogID:  catalog.ID.String(),
		UserID:     catalog.OwnerID.String(),
		Attributes: map[string]string{"action": action, "slug": catalog.Slug},
	}
	if err := publisher.Publish(ctx, event); err != nil {
		logger.Warn("Failed to publish catalog event", slog.String("action", action), slog.Any("error", err))
	}
}

// runeLenBetween reports whether the trimmed value has between lower and upper runes.
func runeLenBetween(value string, lower, upper int) bool {
	n := utf8.RuneCountInString(strings.TrimSpace(value))

	return n >= lower && n <= upper
}
