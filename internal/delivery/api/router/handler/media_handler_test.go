package handler

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/internal/domain/constants"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	mockSvc "storefront/internal/mocks/service"
	mockUC "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newMediaHandler(t *testing.T) (*MediaHandler, *mockUC.MockMediaUsecase, *mockSvc.MockBlobStorage) {
	uc := mockUC.NewMockMediaUsecase(t)
	storage := mockSvc.NewMockBlobStorage(t)

	return NewMediaHandler(MediaHandlerParams{MediaUC: uc, Storage: storage, Logger: newDiscardLogger()}), uc, storage
}

func multipartUpload(t *testing.T, kind string, data []byte) *http.Request {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	require.NoError(t, w.WriteField(formFieldKind, kind))
	if data != nil {
		part, err := w.CreateFormFile(formFieldFile, "cover.png")
		require.NoError(t, err)
		_, err = part.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/media", &body)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())

	return req
}

func TestMediaHandler_Upload(t *testing.T) {
	e := newTestEcho(t)
	actor := newMerchant()
	data := []byte("\x89PNG\r\n\x1a\nrest")

	h, uc, _ := newMediaHandler(t)
	uc.EXPECT().
		UploadImage(mock.Anything, actor, mock.MatchedBy(func(in *usecase.UploadMediaInput) bool {
			return in.Kind == constants.MediaKindCover && bytes.Equal(in.Data, data)
		})).
		Return(&usecase.UploadMediaOutput{URL: "/media/catalogs/x/cover/y.jpg", Key: "catalogs/x/cover/y.jpg", Size: 10, OriginalSize: 12, Compressed: true}, nil)

	c, rec := newContext(e, multipartUpload(t, constants.MediaKindCover, data), &actor)

	require.NoError(t, h.Upload(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"url":"/media/catalogs/x/cover/y.jpg"`)
	assert.Contains(t, rec.Body.String(), `"compressed":true`)
}

func TestMediaHandler_UploadWithoutFile(t *testing.T) {
	e := newTestEcho(t)
	actor := newMerchant()
	h, _, _ := newMediaHandler(t)

	c, rec := newContext(e, multipartUpload(t, constants.MediaKindCover, nil), &actor)

	require.NoError(t, h.Upload(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "MEDIA_INVALID", decodeEnvelope(t, rec).Error.Code)
}

func TestMediaHandler_Serve(t *testing.T) {
	e := newTestEcho(t)

	t.Run("stored object", func(t *testing.T) {
		h, _, storage := newMediaHandler(t)
		storage.EXPECT().Get(mock.Anything, "catalogs/x/cover/y.jpg").
			Return(&service.BlobObject{Data: []byte("jpeg"), ContentType: "image/jpeg"}, nil)

		c, rec := newContext(e, httptest.NewRequest(http.MethodGet, "/media/catalogs/x/cover/y.jpg", nil), nil)
		c.SetParamNames("*")
		c.SetParamValues("catalogs/x/cover/y.jpg")

		require.NoError(t, h.Serve(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/jpeg", rec.Header().Get(echo.HeaderContentType))
		assert.Equal(t, "jpeg", rec.Body.String())
	})

	t.Run("path traversal", func(t *testing.T) {
		h, _, _ := newMediaHandler(t)

		c, rec := newContext(e, httptest.NewRequest(http.MethodGet, "/media/../config.yaml", nil), nil)
		c.SetParamNames("*")
		c.SetParamValues("../config.yaml")

		require.NoError(t, h.Serve(c))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("missing object", func(t *testing.T) {
		h, _, storage := newMediaHandler(t)
		storage.EXPECT().Get(mock.Anything, "nope.jpg").Return(nil, domainerrors.ErrNotFound)

		c, rec := newContext(e, httptest.NewRequest(http.MethodGet, "/media/nope.jpg", nil), nil)
		c.SetParamNames("*")
		c.SetParamValues("nope.jpg")

		require.NoError(t, h.Serve(c))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
