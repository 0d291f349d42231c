package handler

import (
	"net/http"
	"strings"
	"testing"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"
	mockUC "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newStorefrontHandler(t *testing.T) (*StorefrontHandler, *mockUC.MockStorefrontUsecase) {
	uc := mockUC.NewMockStorefrontUsecase(t)

	return NewStorefrontHandler(StorefrontHandlerParams{
		StorefrontUC: uc,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	}), uc
}

func pageRequest(t *testing.T, h *StorefrontHandler, slug string) (int, string) {
	t.Helper()

	e := newTestEcho(t)
	c, rec := newContext(e, jsonRequest(http.MethodGet, "/c/"+slug, ""), nil)
	c.SetParamNames("slug")
	c.SetParamValues(slug)

	require.NoError(t, h.Page(c))

	return rec.Code, rec.Body.String()
}

func TestStorefrontHandler_PageEmptyState(t *testing.T) {
	h, uc := newStorefrontHandler(t)
	uc.EXPECT().GetStorefront(mock.Anything, "pizza-house").Return(&usecase.StorefrontOutput{
		Catalog: usecase.StorefrontCatalog{Slug: "pizza-house", Name: "Pizza House", Theme: "default"},
	}, nil)

	status, body := pageRequest(t, h, "pizza-house")

	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "قائمة الطعام فارغة حالياً")
	assert.NotContains(t, body, "<section")
	assert.Contains(t, body, `href="https://menu.example.com/c/pizza-house"`)
}

func TestStorefrontHandler_PageWithSections(t *testing.T) {
	price := decimal.RequireFromString("35.50")
	h, uc := newStorefrontHandler(t)
	uc.EXPECT().GetStorefront(mock.Anything, "pizza-house").Return(&usecase.StorefrontOutput{
		Catalog: usecase.StorefrontCatalog{Slug: "pizza-house", Name: "Pizza House", Theme: "default"},
		Sections: []usecase.StorefrontSection{{
			ID:   "drinks",
			Name: "Drinks",
			Subsections: []usecase.StorefrontSection{{
				ID:    "cold",
				Name:  "Cold",
				Items: []usecase.StorefrontItem{{ID: "lemonade", Name: "Lemonade", Price: &price}},
			}},
		}},
	}, nil)

	status, body := pageRequest(t, h, "pizza-house")

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, 2, strings.Count(body, "<section"))
	assert.Contains(t, body, "Lemonade")
	assert.NotContains(t, body, "قائمة الطعام فارغة")
}

func TestStorefrontHandler_PageNotFound(t *testing.T) {
	h, uc := newStorefrontHandler(t)
	uc.EXPECT().GetStorefront(mock.Anything, "missing").
		Return(nil, errors.Wrap(domainerrors.ErrCatalogNotFound, "no catalog with slug missing"))

	status, body := pageRequest(t, h, "missing")

	assert.Equal(t, http.StatusNotFound, status)
	assert.Contains(t, body, "الكتالوج غير موجود")
}

func TestStorefrontHandler_PageBackendDown(t *testing.T) {
	h, uc := newStorefrontHandler(t)
	uc.EXPECT().GetStorefront(mock.Anything, "pizza-house").Return(nil, domainerrors.ErrServiceNotConfigured)

	status, body := pageRequest(t, h, "pizza-house")

	assert.Equal(t, http.StatusServiceUnavailable, status)
	assert.Contains(t, body, "req-test")
}

func TestStorefrontHandler_GetJSON(t *testing.T) {
	h, uc := newStorefrontHandler(t)
	uc.EXPECT().GetStorefront(mock.Anything, "missing").Return(nil, domainerrors.ErrCatalogNotFound)

	e := newTestEcho(t)
	c, rec := newContext(e, jsonRequest(http.MethodGet, "/api/v1/storefront/missing", ""), nil)
	c.SetParamNames("slug")
	c.SetParamValues("missing")

	require.NoError(t, h.Get(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "CATALOG_NOT_FOUND", decodeEnvelope(t, rec).Error.Code)
}
