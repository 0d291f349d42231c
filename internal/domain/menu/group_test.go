package menu

import (
	"testing"
	"time"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func newCategory(name string, parent *entity.Category) *entity.Category {
	category := &entity.Category{ID: uuid.New(), Name: name, CreatedAt: time.Now()}
	if parent != nil {
		category.ParentID = &parent.ID
	}

	return category
}

func orphanOf(name string, parentID uuid.UUID) *entity.Category {
	return &entity.Category{ID: uuid.New(), Name: name, ParentID: &parentID}
}

func names(categories []*entity.Category) []string {
	out := make([]string, 0, len(categories))
	for _, category := range categories {
		out = append(out, category.Name)
	}

	return out
}

func TestGroupCategories_Example(t *testing.T) {
	drinks := newCategory("Drinks", nil)
	tea := newCategory("Tea", drinks)
	coffee := newCategory("Coffee", drinks)
	orphan := orphanOf("Orphan", uuid.New())

	groups := GroupCategories([]*entity.Category{drinks, tea, coffee, orphan}, language.Arabic)

	require.Len(t, groups, 2)
	assert.Equal(t, drinks, groups[0].Parent)
	assert.Equal(t, []string{"Coffee", "Tea"}, names(groups[0].Children))
	assert.True(t, groups[1].IsOrphan())
	assert.Equal(t, UnlinkedGroupLabel, groups[1].Label())
	assert.Equal(t, []string{"Orphan"}, names(groups[1].Children))
}

func TestGroupCategories_Empty(t *testing.T) {
	groups := GroupCategories(nil, language.Arabic)

	assert.NotNil(t, groups)
	assert.Empty(t, groups)
}

func TestGroupCategories_RootWithoutChildren(t *testing.T) {
	desserts := newCategory("Desserts", nil)

	groups := GroupCategories([]*entity.Category{desserts}, language.English)

	require.Len(t, groups, 1)
	assert.Equal(t, "Desserts", groups[0].Label())
	assert.Empty(t, groups[0].Children)
}

func TestGroupCategories_SelfParentGoesToOrphanGroup(t *testing.T) {
	loop := &entity.Category{ID: uuid.New(), Name: "Loop"}
	loop.ParentID = &loop.ID
	root := newCategory("Root", nil)

	groups := GroupCategories([]*entity.Category{loop, root}, language.English)

	require.Len(t, groups, 2)
	assert.Equal(t, "Root", groups[0].Label())
	assert.Empty(t, groups[0].Children)
	assert.True(t, groups[1].IsOrphan())
	assert.Equal(t, []string{"Loop"}, names(groups[1].Children))
}

func TestGroupCategories_GrandchildGoesToOrphanGroup(t *testing.T) {
	root := newCategory("Food", nil)
	child := newCategory("Pizza", root)
	grandchild := newCategory("Margherita", child)

	groups := GroupCategories([]*entity.Category{grandchild, child, root}, language.English)

	require.Len(t, groups, 2)
	assert.Equal(t, []string{"Pizza"}, names(groups[0].Children))
	assert.Equal(t, []string{"Margherita"}, names(groups[1].Children))
}

func TestGroupCategories_OrphanGroupIsLast(t *testing.T) {
	// "Zz" would sort after the sentinel label if the orphan group were sorted by name.
	zz := newCategory("Zz", nil)
	aa := newCategory("Aa", nil)
	orphan := orphanOf("Lost", uuid.New())

	groups := GroupCategories([]*entity.Category{orphan, zz, aa}, language.English)

	require.Len(t, groups, 3)
	assert.Equal(t, "Aa", groups[0].Label())
	assert.Equal(t, "Zz", groups[1].Label())
	assert.True(t, groups[2].IsOrphan())
}

func TestGroupCategories_LocaleCollation(t *testing.T) {
	root := newCategory("Menu", nil)
	children := []*entity.Category{
		newCategory("Zaatar", root),
		newCategory("شاي", root),
		newCategory("apple", root),
		newCategory("éclair", root),
	}

	groups := GroupCategories(append([]*entity.Category{root}, children...), language.English)

	require.Len(t, groups, 1)
	// Code-point order would be Zaatar, apple, éclair, شاي.
	assert.Equal(t, []string{"apple", "éclair", "Zaatar", "شاي"}, names(groups[0].Children))
}

func TestGroupCategories_StableForEqualNames(t *testing.T) {
	root := newCategory("Menu", nil)
	first := newCategory("Same", root)
	second := newCategory("Same", root)

	groups := GroupCategories([]*entity.Category{root, first, second}, language.English)

	require.Len(t, groups, 1)
	assert.Same(t, first, groups[0].Children[0])
	assert.Same(t, second, groups[0].Children[1])
}

func TestGroupCategories_EveryCategoryAppearsExactlyOnce(t *testing.T) {
	rootA := newCategory("A", nil)
	rootB := newCategory("B", nil)
	childA := newCategory("A1", rootA)
	childB := newCategory("B1", rootB)
	grandchild := newCategory("A1x", childA)
	missing := orphanOf("Missing", uuid.New())
	self := &entity.Category{ID: uuid.New(), Name: "Self"}
	self.ParentID = &self.ID

	input := []*entity.Category{grandchild, rootB, missing, childA, self, rootA, childB}

	groups := GroupCategories(input, language.Arabic)

	seen := map[uuid.UUID]int{}
	for _, group := range groups {
		if group.Parent != nil {
			seen[group.Parent.ID]++
		}
		for _, child := range group.Children {
			seen[child.ID]++
		}
	}

	require.Len(t, seen, len(input))
	for _, category := range input {
		assert.Equal(t, 1, seen[category.ID], category.Name)
	}
}
