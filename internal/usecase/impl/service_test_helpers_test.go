package impl

import (
	"context"
	"io"
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.HTTP.PublicBaseURL = "https://menu.example.com/"
	cfg.Catalog.Locale = "ar"
	cfg.Catalog.DefaultCountryCode = "+20"

	return cfg
}

// expectTx runs the transaction body against factory and returns its error.
func expectTx(txManager *mockRepo.MockTransactionManager, factory *mockRepo.MockRepositoryFactory) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		}).
		Once()
}

func newActor() entity.Actor {
	return entity.Actor{UserID: uuid.New(), Roles: entity.Roles{entity.RoleMerchant}}
}

func newCatalogFor(actor entity.Actor) *entity.Catalog {
	return &entity.Catalog{
		ID:      uuid.New(),
		OwnerID: actor.UserID,
		Slug:    "pizza-house",
		Name:    "Pizza House",
		Theme:   entity.ThemeDefault,
		Plan:    entity.PlanFree,
	}
}

func ptr[T any](v T) *T {
	return &v
}
