package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"
	"storefront/internal/util"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"go.uber.org/fx"
)

const msgMediaKind = "نوع الصورة غير مدعوم"

// mediaService implements the MediaUsecase interface.
type mediaService struct {
	catalogRepo repository.CatalogRepository
	compressor  service.ImageCompressor
	storage     service.BlobStorage
	logger      *slog.Logger
}

// MediaServiceParams holds dependencies for MediaService, injected by Fx.
type MediaServiceParams struct {
	fx.In

	CatalogRepo repository.CatalogRepository
	Compressor  service.ImageCompressor
	Storage     service.BlobStorage
	Logger      *slog.Logger
}

// NewMediaService creates the media usecase.
func NewMediaService(params MediaServiceParams) usecase.MediaUsecase {
	return &mediaService{
		catalogRepo: params.CatalogRepo,
		compressor:  params.Compressor,
		storage:     params.Storage,
		logger:      params.Logger,
	}
}

func (srv *mediaService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// UploadImage compresses an image and stores it under the merchant's catalog.
// Compression problems never block the upload; the original bytes are stored instead.
func (srv *mediaService) UploadImage(ctx context.Context, actor entity.Actor, input *usecase.UploadMediaInput) (*usecase.UploadMediaOutput, error) {
	kind := strings.ToLower(strings.TrimSpace(input.Kind))
	switch kind {
	case constants.MediaKindLogo, constants.MediaKindCover, constants.MediaKindItem:
	default:
		return nil, domainerrors.Validation(msgMediaKind)
	}
	if len(input.Data) == 0 {
		return nil, errors.Wrap(domainerrors.ErrMediaInvalid, "empty upload")
	}
	detected := mimetype.Detect(input.Data)
	if !strings.HasPrefix(detected.String(), "image/") {
		return nil, errors.Wrapf(domainerrors.ErrMediaInvalid, "unsupported content type %s", detected.String())
	}

	catalog, err := findOwnedCatalog(ctx, srv.catalogRepo, actor)
	if err != nil {
		return nil, err
	}

	image := srv.compressor.Compress(input.Data, detected.String())
	key := objectKey(catalog.ID, kind, image.Extension)

	url, err := srv.storage.Put(ctx, key, image.Data, image.ContentType)
	if err != nil {
		if errors.Is(err, domainerrors.ErrStorageNotConfigured) {
			return nil, errors.Wrap(err, "image storage is disabled")
		}
		srv.log(ctx).Error("Failed to store image", slog.String("key", key), slog.Any("error", err))

		return nil, keepOrReplace(err, domainerrors.ErrMediaUploadFailed, "failed to store image")
	}

	srv.log(ctx).Info("Image uploaded",
		slog.String("key", key),
		slog.String("originalSize", util.FormatBytes(int64(len(input.Data)))),
		slog.String("storedSize", util.FormatBytes(int64(len(image.Data)))),
		slog.Bool("compressed", image.Compressed))

	return &usecase.UploadMediaOutput{
		URL:          url,
		Key:          key,
		ContentType:  image.ContentType,
		Size:         len(image.Data),
		OriginalSize: len(input.Data),
		Compressed:   image.Compressed,
	}, nil
}

// objectKey builds catalogs/<catalogID>/<kind>/<uuid>.<ext>.
func objectKey(catalogID uuid.UUID, kind, ext string) string {
	return fmt.Sprintf("catalogs/%s/%s/%s.%s", catalogID, kind, uuid.NewString(), ext)
}
