package handler

import (
	"io"
	"log/slog"
	"net/http"
	"path"
	"strings"

	"storefront/internal/delivery/api/response"
	deliverycontext "storefront/internal/delivery/context"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	formFieldFile = "file"
	formFieldKind = "kind"
)

// MediaHandler accepts image uploads and serves stored objects.
type MediaHandler struct {
	uc      usecase.MediaUsecase
	storage service.BlobStorage
	logger  *slog.Logger
}

// MediaHandlerParams holds dependencies for MediaHandler, injected by Fx.
type MediaHandlerParams struct {
	fx.In

	MediaUC usecase.MediaUsecase
	Storage service.BlobStorage
	Logger  *slog.Logger
}

// NewMediaHandler is the constructor for MediaHandler.
func NewMediaHandler(params MediaHandlerParams) *MediaHandler {
	return &MediaHandler{
		uc:      params.MediaUC,
		storage: params.Storage,
		logger:  params.Logger,
	}
}

type uploadView struct {
	URL          string `json:"url"`
	Key          string `json:"key"`
	ContentType  string `json:"content_type"`
	Size         int    `json:"size"`
	OriginalSize int    `json:"original_size"`
	Compressed   bool   `json:"compressed"`
}

// Upload stores a multipart image under the caller's catalog.
func (h *MediaHandler) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile(formFieldFile)
	if err != nil {
		return response.HandleAppError(c, errors.Wrap(domainerrors.ErrMediaInvalid, err.Error()))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return response.HandleAppError(c, errors.Wrap(domainerrors.ErrMediaInvalid, err.Error()))
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return response.HandleAppError(c, errors.Wrap(domainerrors.ErrMediaInvalid, err.Error()))
	}

	out, err := h.uc.UploadImage(c.Request().Context(), deliverycontext.GetActor(c), &usecase.UploadMediaInput{
		Kind:        c.FormValue(formFieldKind),
		Data:        data,
		ContentType: fileHeader.Header.Get(echo.HeaderContentType),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, &uploadView{
		URL:          out.URL,
		Key:          out.Key,
		ContentType:  out.ContentType,
		Size:         out.Size,
		OriginalSize: out.OriginalSize,
		Compressed:   out.Compressed,
	})
}

// Serve streams a stored object for buckets without their own public URL.
func (h *MediaHandler) Serve(c echo.Context) error {
	key := path.Clean(strings.TrimPrefix(c.Param("*"), "/"))
	if key == "." || strings.HasPrefix(key, "..") {
		return response.NotFound(c)
	}

	obj, err := h.storage.Get(c.Request().Context(), key)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set(echo.HeaderCacheControl, "public, max-age=31536000, immutable")

	return c.Blob(http.StatusOK, obj.ContentType, obj.Data)
}
