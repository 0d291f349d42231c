package handler

import (
	"net/http"
	"net/url"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockUC "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newItemHandler(t *testing.T) (*ItemHandler, *mockUC.MockItemUsecase) {
	uc := mockUC.NewMockItemUsecase(t)

	return NewItemHandler(ItemHandlerParams{ItemUC: uc, Logger: newDiscardLogger()}), uc
}

func TestItemHandler_CreatePriceFormats(t *testing.T) {
	e := newTestEcho(t)
	actor := newMerchant()
	categoryID := uuid.New()

	tests := []struct {
		name      string
		build     func() *http.Request
		wantPrice string
	}{
		{
			name: "json number",
			build: func() *http.Request {
				return jsonRequest(http.MethodPost, "/api/v1/items",
					`{"category_id":"`+categoryID.String()+`","name":"Lemonade","price":35.5,"is_popular":true}`)
			},
			wantPrice: "35.5",
		},
		{
			name: "json string",
			build: func() *http.Request {
				return jsonRequest(http.MethodPost, "/api/v1/items",
					`{"category_id":"`+categoryID.String()+`","name":"Lemonade","price":"35.50","is_popular":true}`)
			},
			wantPrice: "35.5",
		},
		{
			name: "form with checkbox",
			build: func() *http.Request {
				return formRequest(http.MethodPost, "/api/v1/items", url.Values{
					"category_id": {categoryID.String()},
					"name":        {"Lemonade"},
					"price":       {"35.50"},
					"is_popular":  {"on"},
				})
			},
			wantPrice: "35.5",
		},
		{
			name: "hidden price",
			build: func() *http.Request {
				return jsonRequest(http.MethodPost, "/api/v1/items",
					`{"category_id":"`+categoryID.String()+`","name":"Lemonade","price":null,"is_popular":true}`)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, uc := newItemHandler(t)
			uc.EXPECT().
				CreateItem(mock.Anything, actor, mock.MatchedBy(func(in *usecase.ItemInput) bool {
					if in.CategoryID != categoryID || in.Name != "Lemonade" || !in.IsPopular {
						return false
					}
					if tt.wantPrice == "" {
						return in.Price == nil
					}

					return in.Price != nil && in.Price.Equal(decimal.RequireFromString(tt.wantPrice))
				})).
				Return(&entity.MenuItem{ID: uuid.New(), CategoryID: categoryID, Name: "Lemonade"}, nil)

			c, rec := newContext(e, tt.build(), &actor)

			require.NoError(t, h.Create(c))

			assert.Equal(t, http.StatusCreated, rec.Code)
		})
	}
}

func TestItemHandler_CreateRejectsBadInput(t *testing.T) {
	e := newTestEcho(t)
	actor := newMerchant()

	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{
			name:    "missing category",
			body:    `{"name":"Lemonade"}`,
			wantMsg: "يجب اختيار فئة للمنتج",
		},
		{
			name:    "malformed price",
			body:    `{"category_id":"` + uuid.NewString() + `","name":"Lemonade","price":"abc"}`,
			wantMsg: msgInvalidPrice,
		},
		{
			name:    "malformed json",
			body:    `{"name":`,
			wantMsg: domainerrors.ErrValidationFailed.Message(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newItemHandler(t)
			c, rec := newContext(e, jsonRequest(http.MethodPost, "/api/v1/items", tt.body), &actor)

			require.NoError(t, h.Create(c))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.wantMsg, decodeEnvelope(t, rec).Error.Message)
		})
	}
}

func TestItemHandler_UpdateNotOwner(t *testing.T) {
	e := newTestEcho(t)
	actor := newMerchant()
	itemID := uuid.New()

	h, uc := newItemHandler(t)
	uc.EXPECT().UpdateItem(mock.Anything, actor, itemID, mock.Anything).Return(nil, domainerrors.ErrCatalogAccessDenied)

	c, rec := newContext(e, jsonRequest(http.MethodPut, "/api/v1/items/"+itemID.String(),
		`{"category_id":"`+uuid.NewString()+`","name":"Lemonade"}`), &actor)
	c.SetParamNames("id")
	c.SetParamValues(itemID.String())

	require.NoError(t, h.Update(c))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "CATALOG_ACCESS_DENIED", decodeEnvelope(t, rec).Error.Code)
}

func TestNewItemView(t *testing.T) {
	item := &entity.MenuItem{
		ID:       uuid.New(),
		Name:     "Lemonade",
		Price:    decimal.NewNullDecimal(decimal.RequireFromString("35.50")),
		ImageURL: "/media/a.jpg",
		Images:   []entity.ItemImage{{URL: "/media/a.jpg"}, {URL: "/media/b.jpg", Position: 1}},
	}

	view := newItemView(item)

	require.NotNil(t, view.Price)
	assert.Equal(t, "35.5", view.Price.String())
	assert.Equal(t, []string{"/media/a.jpg", "/media/b.jpg"}, view.Images)

	item.Price = decimal.NullDecimal{}
	assert.Nil(t, newItemView(item).Price)
}
