package impl

import (
	"context"
	"log/slog"
	"strings"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"
	"storefront/internal/util"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	catalogPathPrefix  = "/c/"
	slugSuffixBytes    = 2
	maxSlugSuffixTries = 3
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	catalogRepo        repository.CatalogRepository
	qrCodeService      service.QRCodeService
	cache              service.StorefrontCache
	publisher          service.EventPublisher
	publicBaseURL      string
	defaultCountryCode string
	logger             *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	CatalogRepo   repository.CatalogRepository
	QRCodeService service.QRCodeService
	Cache         service.StorefrontCache
	Publisher     service.EventPublisher
	Config        *config.Config
	Logger        *slog.Logger
}

// NewCatalogService creates the catalog usecase.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		catalogRepo:        params.CatalogRepo,
		qrCodeService:      params.QRCodeService,
		cache:              params.Cache,
		publisher:          params.Publisher,
		publicBaseURL:      strings.TrimRight(params.Config.HTTP.PublicBaseURL, "/"),
		defaultCountryCode: params.Config.Catalog.DefaultCountryCode,
		logger:             params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateCatalog performs the onboarding of a merchant. A merchant owns at most one catalog.
func (srv *catalogService) CreateCatalog(ctx context.Context, actor entity.Actor, input *usecase.CatalogInput) (*entity.Catalog, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}

	catalog := &entity.Catalog{
		OwnerID: actor.UserID,
		Plan:    entity.PlanFree,
	}
	in := *input
	derivedSlug := strings.TrimSpace(in.Slug) == ""
	if derivedSlug {
		in.Slug = deriveSlug(in.Name)
	}
	if err := srv.applyInput(catalog, &in); err != nil {
		return nil, err
	}

	existing, err := srv.catalogRepo.FindByOwnerID(ctx, actor.UserID)
	switch {
	case err == nil && existing != nil:
		return nil, errors.Wrap(domainerrors.ErrCatalogAlreadyExists, "merchant already has a catalog")
	case err != nil && !errors.Is(err, repository.ErrCatalogNotFound):
		srv.log(ctx).Error("Failed to look up merchant catalog", slog.Any("userID", actor.UserID), slog.Any("error", err))

		return nil, keepOrReplace(err, domainerrors.ErrCatalogSaveFailed, "failed to look up merchant catalog")
	}

	slug, err := srv.availableSlug(ctx, catalog.Slug, uuid.Nil, derivedSlug)
	if err != nil {
		return nil, err
	}
	catalog.Slug = slug

	if err := srv.catalogRepo.Create(ctx, catalog); err != nil {
		srv.log(ctx).Error("Failed to create catalog", slog.Any("userID", actor.UserID), slog.String("slug", catalog.Slug), slog.Any("error", err))

		return nil, keepOrReplace(err, domainerrors.ErrCatalogSaveFailed, "failed to create catalog")
	}

	srv.log(ctx).Info("Catalog created", slog.Any("catalogID", catalog.ID), slog.String("slug", catalog.Slug))
	publishCatalogChanged(ctx, srv.log(ctx), srv.cache, srv.publisher, catalog, "catalog.created")

	return catalog, nil
}

// GetCatalog returns the catalog of the calling merchant.
func (srv *catalogService) GetCatalog(ctx context.Context, actor entity.Actor) (*entity.Catalog, error) {
	return findOwnedCatalog(ctx, srv.catalogRepo, actor)
}

// UpdateCatalog replaces the settings of the calling merchant's catalog.
func (srv *catalogService) UpdateCatalog(ctx context.Context, actor entity.Actor, input *usecase.CatalogInput) (*entity.Catalog, error) {
	catalog, err := findOwnedCatalog(ctx, srv.catalogRepo, actor)
	if err != nil {
		return nil, err
	}

	previousSlug := catalog.Slug
	in := *input
	if strings.TrimSpace(in.Slug) == "" {
		in.Slug = previousSlug
	}
	if err := srv.applyInput(catalog, &in); err != nil {
		return nil, err
	}

	if catalog.Slug != previousSlug {
		if _, err := srv.availableSlug(ctx, catalog.Slug, catalog.ID, false); err != nil {
			return nil, err
		}
	}

	if err := srv.catalogRepo.Update(ctx, catalog); err != nil {
		srv.log(ctx).Error("Failed to update catalog", slog.Any("catalogID", catalog.ID), slog.Any("error", err))

		return nil, keepOrReplace(err, domainerrors.ErrCatalogSaveFailed, "failed to update catalog")
	}

	srv.log(ctx).Info("Catalog updated", slog.Any("catalogID", catalog.ID), slog.String("slug", catalog.Slug))
	publishCatalogChanged(ctx, srv.log(ctx), srv.cache, srv.publisher, catalog, "catalog.updated", previousSlug)

	return catalog, nil
}

// GenerateQRCode renders the public URL of the merchant's catalog as a PNG.
func (srv *catalogService) GenerateQRCode(ctx context.Context, actor entity.Actor) (*usecase.QRCodeOutput, error) {
	catalog, err := findOwnedCatalog(ctx, srv.catalogRepo, actor)
	if err != nil {
		return nil, err
	}

	publicURL := srv.publicBaseURL + catalogPathPrefix + catalog.Slug
	png, err := srv.qrCodeService.GenerateURLQR(publicURL)
	if err != nil {
		srv.log(ctx).Error("Failed to render catalog QR code", slog.String("url", publicURL), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrInternalError, "failed to render QR code")
	}

	return &usecase.QRCodeOutput{
		PNG:      png,
		URL:      publicURL,
		Filename: catalog.Slug + "-qr.png",
	}, nil
}

// applyInput validates input and copies it onto catalog. Nothing is copied when validation fails.
func (srv *catalogService) applyInput(catalog *entity.Catalog, input *usecase.CatalogInput) error {
	slug := strings.ToLower(strings.TrimSpace(input.Slug))
	if err := validateSlug(slug); err != nil {
		return err
	}
	if !runeLenBetween(input.Name, minCatalogNameLength, maxCatalogNameLength) {
		return domainerrors.Validation(msgCatalogName)
	}
	if err := validateDescription(input.Description); err != nil {
		return err
	}
	if err := validateImageURL(input.LogoURL); err != nil {
		return err
	}
	if err := validateImageURL(input.CoverURL); err != nil {
		return err
	}

	theme := input.Theme
	if theme == "" {
		theme = entity.ThemeDefault
	}
	if !theme.IsValid() {
		return domainerrors.Validation(msgTheme)
	}

	countryCode := strings.TrimSpace(input.CountryCode)
	if countryCode == "" {
		countryCode = srv.defaultCountryCode
	}
	var whatsApp string
	if strings.TrimSpace(input.WhatsAppNumber) != "" {
		normalized, ok := util.NormalizeWhatsApp(input.WhatsAppNumber, countryCode)
		if !ok {
			return domainerrors.Validation(msgWhatsApp)
		}
		whatsApp = normalized
	}

	if input.HideFooter && !catalog.Plan.IsPaid() {
		return errors.Wrap(domainerrors.ErrPlanFeatureUnavailable, "hiding the footer requires a paid plan")
	}

	catalog.Slug = slug
	catalog.Name = strings.TrimSpace(input.Name)
	catalog.Description = strings.TrimSpace(input.Description)
	catalog.LogoURL = input.LogoURL
	catalog.CoverURL = input.CoverURL
	catalog.Theme = theme
	catalog.WhatsAppNumber = whatsApp
	catalog.CountryCode = countryCode
	catalog.EnableSubcategories = input.EnableSubcategories
	catalog.HideFooter = input.HideFooter

	return nil
}

// availableSlug checks that slug is free. A derived slug gets a random suffix instead of failing.
func (srv *catalogService) availableSlug(ctx context.Context, slug string, excludeID uuid.UUID, derived bool) (string, error) {
	candidate := slug
	for attempt := 0; ; attempt++ {
		taken, err := srv.catalogRepo.SlugExists(ctx, candidate, excludeID)
		if err != nil {
			srv.log(ctx).Error("Failed to check slug", slog.String("slug", candidate), slog.Any("error", err))

			return "", keepOrReplace(err, domainerrors.ErrCatalogSaveFailed, "failed to check slug")
		}
		if !taken {
			return candidate, nil
		}
		if !derived || attempt >= maxSlugSuffixTries {
			return "", errors.Wrapf(domainerrors.ErrSlugTaken, "slug %q is taken", candidate)
		}

		suffix, err := util.RandomToken(slugSuffixBytes)
		if err != nil {
			return "", errors.Wrap(domainerrors.ErrCatalogSaveFailed, "failed to generate slug suffix")
		}
		candidate = trimSlug(slug, maxSlugLength-len(suffix)-1) + "-" + suffix
	}
}

// deriveSlug builds a slug from a display name, falling back to a random one when
// the name has no usable characters (e.g. an Arabic-only name).
func deriveSlug(name string) string {
	slug := trimSlug(util.Slugify(name), maxSlugLength)
	if len(slug) >= minSlugLength {
		return slug
	}

	token, err := util.RandomToken(3)
	if err != nil {
		return "catalog"
	}

	return "catalog-" + token
}

func trimSlug(slug string, limit int) string {
	if len(slug) > limit {
		slug = slug[:limit]
	}

	return strings.Trim(slug, "-")
}
