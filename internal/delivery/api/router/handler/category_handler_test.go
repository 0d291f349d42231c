package handler

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/menu"
	"storefront/internal/errors"
	mockUC "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCategoryHandler(t *testing.T) (*CategoryHandler, *mockUC.MockCategoryUsecase) {
	uc := mockUC.NewMockCategoryUsecase(t)

	return NewCategoryHandler(CategoryHandlerParams{CategoryUC: uc, Logger: newDiscardLogger()}), uc
}

func TestCategoryHandler_Create(t *testing.T) {
	e := newTestEcho(t)
	actor := newMerchant()
	parentID := uuid.New()

	t.Run("success", func(t *testing.T) {
		h, uc := newCategoryHandler(t)
		uc.EXPECT().
			CreateCategory(mock.Anything, actor, mock.MatchedBy(func(in *usecase.CategoryInput) bool {
				return in.Name == "Cold" && in.ParentID != nil && *in.ParentID == parentID
			})).
			Return(&entity.Category{ID: uuid.New(), Name: "Cold", ParentID: &parentID, CreatedAt: time.Now()}, nil)

		c, rec := newContext(e, jsonRequest(http.MethodPost, "/api/v1/categories",
			`{"name":"Cold","parent_id":"`+parentID.String()+`"}`), &actor)

		require.NoError(t, h.Create(c))

		assert.Equal(t, http.StatusCreated, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.True(t, env.OK)
		assert.Equal(t, "req-test", env.Meta.RequestID)

		var view categoryView
		require.NoError(t, json.Unmarshal(env.Data, &view))
		assert.Equal(t, "Cold", view.Name)
		require.NotNil(t, view.ParentID)
		assert.Equal(t, parentID.String(), *view.ParentID)
	})

	t.Run("missing name is rejected before the usecase", func(t *testing.T) {
		h, _ := newCategoryHandler(t)
		c, rec := newContext(e, jsonRequest(http.MethodPost, "/api/v1/categories", `{"name":""}`), &actor)

		require.NoError(t, h.Create(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.False(t, env.OK)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
		assert.Equal(t, "يجب أن يكون الاسم حرفين على الأقل.", env.Error.Message)
	})

	t.Run("malformed parent id", func(t *testing.T) {
		h, _ := newCategoryHandler(t)
		c, rec := newContext(e, jsonRequest(http.MethodPost, "/api/v1/categories", `{"name":"Cold","parent_id":"x"}`), &actor)

		require.NoError(t, h.Create(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, msgInvalidID, decodeEnvelope(t, rec).Error.Message)
	})
}

func TestCategoryHandler_UpdateNotOwner(t *testing.T) {
	e := newTestEcho(t)
	actor := newMerchant()
	categoryID := uuid.New()

	h, uc := newCategoryHandler(t)
	uc.EXPECT().
		UpdateCategory(mock.Anything, actor, categoryID, mock.Anything).
		Return(nil, errors.Wrap(domainerrors.ErrCatalogAccessDenied, "actor does not own catalog"))

	c, rec := newContext(e, jsonRequest(http.MethodPut, "/api/v1/categories/"+categoryID.String(), `{"name":"Hot"}`), &actor)
	c.SetParamNames("id")
	c.SetParamValues(categoryID.String())

	require.NoError(t, h.Update(c))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "CATALOG_ACCESS_DENIED", env.Error.Code)
	assert.Equal(t, domainerrors.ErrCatalogAccessDenied.Message(), env.Error.Message)
	assert.NotContains(t, rec.Body.String(), "actor does not own catalog")
}

func TestCategoryHandler_Delete(t *testing.T) {
	e := newTestEcho(t)
	actor := newMerchant()

	t.Run("invalid id", func(t *testing.T) {
		h, _ := newCategoryHandler(t)
		c, rec := newContext(e, jsonRequest(http.MethodDelete, "/api/v1/categories/nope", ""), &actor)
		c.SetParamNames("id")
		c.SetParamValues("nope")

		require.NoError(t, h.Delete(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("success", func(t *testing.T) {
		categoryID := uuid.New()
		h, uc := newCategoryHandler(t)
		uc.EXPECT().DeleteCategory(mock.Anything, actor, categoryID).Return(nil)

		c, rec := newContext(e, jsonRequest(http.MethodDelete, "/api/v1/categories/"+categoryID.String(), ""), &actor)
		c.SetParamNames("id")
		c.SetParamValues(categoryID.String())

		require.NoError(t, h.Delete(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), categoryID.String())
	})
}

func TestCategoryHandler_ListGroups(t *testing.T) {
	e := newTestEcho(t)
	actor := newMerchant()
	drinks := &entity.Category{ID: uuid.New(), Name: "Drinks"}
	cold := &entity.Category{ID: uuid.New(), Name: "Cold", ParentID: &drinks.ID}
	stray := &entity.Category{ID: uuid.New(), Name: "Stray", ParentID: &cold.ID}

	h, uc := newCategoryHandler(t)
	uc.EXPECT().ListCategories(mock.Anything, actor).Return(&usecase.CategoryListOutput{
		Categories: []*entity.Category{drinks, cold, stray},
		Groups: []menu.Group{
			{Parent: drinks, Children: []*entity.Category{cold}},
			{Children: []*entity.Category{stray}},
		},
	}, nil)

	c, rec := newContext(e, jsonRequest(http.MethodGet, "/api/v1/categories", ""), &actor)

	require.NoError(t, h.List(c))

	var view categoryListView
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &view))
	require.Len(t, view.Groups, 2)
	assert.Equal(t, "Drinks", view.Groups[0].Label)
	assert.Nil(t, view.Groups[1].Parent)
	assert.Equal(t, menu.UnlinkedGroupLabel, view.Groups[1].Label)
	assert.Len(t, view.Categories, 3)
}
