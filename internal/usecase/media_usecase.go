package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// UploadMediaInput is one uploaded image.
type UploadMediaInput struct {
	Kind        string
	Data        []byte
	ContentType string
}

// UploadMediaOutput describes the stored object.
type UploadMediaOutput struct {
	URL          string
	Key          string
	ContentType  string
	Size         int
	OriginalSize int
	Compressed   bool
}

// MediaUsecase stores catalog images.
type MediaUsecase interface {
	UploadImage(ctx context.Context, actor entity.Actor, input *UploadMediaInput) (*UploadMediaOutput, error)
}
