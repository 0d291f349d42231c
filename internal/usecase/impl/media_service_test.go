package impl

import (
	"context"
	"regexp"
	"testing"

	"storefront/internal/domain/constants"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")

type mediaServiceFixtures struct {
	service     usecase.MediaUsecase
	catalogRepo *mockRepo.MockCatalogRepository
	compressor  *mockSvc.MockImageCompressor
	storage     *mockSvc.MockBlobStorage
}

func createTestMediaService(t *testing.T) mediaServiceFixtures {
	catalogRepo := mockRepo.NewMockCatalogRepository(t)
	compressor := mockSvc.NewMockImageCompressor(t)
	storage := mockSvc.NewMockBlobStorage(t)

	return mediaServiceFixtures{
		service: NewMediaService(MediaServiceParams{
			CatalogRepo: catalogRepo,
			Compressor:  compressor,
			Storage:     storage,
			Logger:      newDiscardLogger(),
		}),
		catalogRepo: catalogRepo,
		compressor:  compressor,
		storage:     storage,
	}
}

func TestMediaService_UploadImage_Success(t *testing.T) {
	fx := createTestMediaService(t)
	ctx := context.Background()
	actor := newActor()
	catalog := newCatalogFor(actor)
	compressed := &service.CompressedImage{
		Data:         []byte("jpeg-bytes"),
		ContentType:  "image/jpeg",
		Extension:    "jpg",
		Compressed:   true,
		MaxDimension: 1920,
	}

	fx.catalogRepo.EXPECT().FindByOwnerID(ctx, actor.UserID).Return(catalog, nil)
	fx.compressor.EXPECT().Compress(pngHeader, "image/png").Return(compressed)
	fx.storage.EXPECT().
		Put(ctx, mock.AnythingOfType("string"), compressed.Data, "image/jpeg").
		RunAndReturn(func(_ context.Context, key string, _ []byte, _ string) (string, error) {
			return "/media/" + key, nil
		})

	output, err := fx.service.UploadImage(ctx, actor, &usecase.UploadMediaInput{Kind: "Cover", Data: pngHeader})

	require.NoError(t, err)
	pattern := regexp.MustCompile(`^catalogs/` + catalog.ID.String() + `/cover/[0-9a-f-]{36}\.jpg$`)
	assert.Regexp(t, pattern, output.Key)
	assert.Equal(t, "/media/"+output.Key, output.URL)
	assert.Equal(t, len(compressed.Data), output.Size)
	assert.Equal(t, len(pngHeader), output.OriginalSize)
	assert.True(t, output.Compressed)
}

func TestMediaService_UploadImage_RejectsBeforeLookup(t *testing.T) {
	tests := []struct {
		name  string
		input usecase.UploadMediaInput
		want  error
	}{
		{name: "unknown kind", input: usecase.UploadMediaInput{Kind: "avatar", Data: pngHeader}, want: domainerrors.ErrValidationFailed},
		{name: "empty file", input: usecase.UploadMediaInput{Kind: constants.MediaKindLogo}, want: domainerrors.ErrMediaInvalid},
		{name: "not an image", input: usecase.UploadMediaInput{Kind: constants.MediaKindItem, Data: []byte("%PDF-1.4 hello")}, want: domainerrors.ErrMediaInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestMediaService(t)

			_, err := fx.service.UploadImage(context.Background(), newActor(), &tt.input)

			assert.True(t, errors.Is(err, tt.want))
		})
	}
}

func TestMediaService_UploadImage_StorageNotConfigured(t *testing.T) {
	fx := createTestMediaService(t)
	ctx := context.Background()
	actor := newActor()

	fx.catalogRepo.EXPECT().FindByOwnerID(ctx, actor.UserID).Return(newCatalogFor(actor), nil)
	fx.compressor.EXPECT().Compress(mock.Anything, mock.Anything).Return(&service.CompressedImage{
		Data: pngHeader, ContentType: "image/png", Extension: "png",
	})
	fx.storage.EXPECT().Put(ctx, mock.Anything, mock.Anything, mock.Anything).Return("", domainerrors.ErrStorageNotConfigured)

	_, err := fx.service.UploadImage(ctx, actor, &usecase.UploadMediaInput{Kind: constants.MediaKindLogo, Data: pngHeader})

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 503, appErr.HTTPCode())
	assert.True(t, errors.Is(err, domainerrors.ErrStorageNotConfigured))
}

func TestMediaService_UploadImage_StorageFailureIsGeneric(t *testing.T) {
	fx := createTestMediaService(t)
	ctx := context.Background()
	actor := newActor()

	fx.catalogRepo.EXPECT().FindByOwnerID(ctx, actor.UserID).Return(newCatalogFor(actor), nil)
	fx.compressor.EXPECT().Compress(mock.Anything, mock.Anything).Return(&service.CompressedImage{
		Data: pngHeader, ContentType: "image/png", Extension: "png",
	})
	fx.storage.EXPECT().Put(ctx, mock.Anything, mock.Anything, mock.Anything).Return("", errors.New("bucket quota exceeded"))

	_, err := fx.service.UploadImage(ctx, actor, &usecase.UploadMediaInput{Kind: constants.MediaKindLogo, Data: pngHeader})

	assert.True(t, errors.Is(err, domainerrors.ErrMediaUploadFailed))
	assert.NotContains(t, err.Error(), "quota")
}

func TestObjectKey(t *testing.T) {
	catalogID := uuid.MustParse("0193c0de-0000-7000-8000-000000000001")

	first := objectKey(catalogID, constants.MediaKindItem, "webp")
	second := objectKey(catalogID, constants.MediaKindItem, "webp")

	assert.Regexp(t, `^catalogs/0193c0de-0000-7000-8000-000000000001/item/[0-9a-f-]{36}\.webp$`, first)
	assert.NotEqual(t, first, second)
}
