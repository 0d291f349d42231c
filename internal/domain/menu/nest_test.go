package menu

import (
	"testing"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withItems(category *entity.Category, itemNames ...string) *entity.Category {
	for _, name := range itemNames {
		category.Items = append(category.Items, &entity.MenuItem{ID: uuid.New(), CategoryID: category.ID, Name: name})
	}

	return category
}

func sectionNames(sections []*Section) []string {
	out := make([]string, 0, len(sections))
	for _, section := range sections {
		out = append(out, section.Category.Name)
	}

	return out
}

func TestNest_BuildsRecursiveTree(t *testing.T) {
	drinks := newCategory("Drinks", nil)
	hot := newCategory("Hot", drinks)
	tea := withItems(newCategory("Tea", hot), "Mint tea")
	cold := withItems(newCategory("Cold", drinks), "Lemonade")

	sections := Nest([]*entity.Category{tea, cold, drinks, hot})

	require.Len(t, sections, 1)
	assert.Equal(t, "Drinks", sections[0].Category.Name)
	assert.Equal(t, []string{"Cold", "Hot"}, sectionNames(sections[0].Subsections))
	assert.Equal(t, []string{"Tea"}, sectionNames(sections[0].Subsections[1].Subsections))
	assert.Equal(t, 2, sections[0].ItemCount())
}

func TestNest_MissingAndSelfParentsBecomeRoots(t *testing.T) {
	missing := orphanOf("Missing", uuid.New())
	self := &entity.Category{ID: uuid.New(), Name: "Self"}
	self.ParentID = &self.ID

	sections := Nest([]*entity.Category{missing, self})

	assert.Equal(t, []string{"Missing", "Self"}, sectionNames(sections))
}

func TestNest_CycleMembersBecomeRoots(t *testing.T) {
	a := &entity.Category{ID: uuid.New(), Name: "A"}
	b := &entity.Category{ID: uuid.New(), Name: "B"}
	a.ParentID = &b.ID
	b.ParentID = &a.ID
	c := newCategory("C", a)

	sections := Nest([]*entity.Category{a, b, c})

	assert.Equal(t, []string{"A", "B"}, sectionNames(sections))
	assert.Equal(t, []string{"C"}, sectionNames(sections[0].Subsections))
}

func TestNest_NilItemsBecomeEmpty(t *testing.T) {
	sections := Nest([]*entity.Category{newCategory("Empty", nil)})

	require.Len(t, sections, 1)
	assert.NotNil(t, sections[0].Items)
	assert.False(t, sections[0].HasContent())
}

func TestPrune_DropsEmptySubtrees(t *testing.T) {
	food := newCategory("Food", nil)
	emptyChild := newCategory("Soon", food)
	pizza := withItems(newCategory("Pizza", food), "Margherita")
	drinks := newCategory("Drinks", nil)
	emptyDrinkChild := newCategory("Juices", drinks)

	sections := Prune(Nest([]*entity.Category{food, emptyChild, pizza, drinks, emptyDrinkChild}))

	require.Len(t, sections, 1)
	assert.Equal(t, "Food", sections[0].Category.Name)
	assert.Equal(t, []string{"Pizza"}, sectionNames(sections[0].Subsections))
}

func TestPrune_KeepsParentWithOnlyNestedItems(t *testing.T) {
	root := newCategory("Root", nil)
	mid := newCategory("Mid", root)
	leaf := withItems(newCategory("Leaf", mid), "Item")

	sections := Prune(Nest([]*entity.Category{root, mid, leaf}))

	require.Len(t, sections, 1)
	assert.Equal(t, 1, sections[0].ItemCount())
}

func TestFlatten_LiftsSubsectionsInDepthFirstOrder(t *testing.T) {
	a := withItems(newCategory("A", nil), "a1")
	a1 := withItems(newCategory("A1", a), "a11")
	b := withItems(newCategory("B", nil), "b1")

	flat := Flatten(Nest([]*entity.Category{a, a1, b}))

	assert.Equal(t, []string{"A", "A1", "B"}, sectionNames(flat))
	for _, section := range flat {
		assert.Empty(t, section.Subsections)
	}
}

func TestCompose(t *testing.T) {
	root := newCategory("Root", nil)
	child := withItems(newCategory("Child", root), "Item")

	nested := Compose([]*entity.Category{root, child}, true)
	require.Len(t, nested, 1)
	assert.Equal(t, []string{"Child"}, sectionNames(nested[0].Subsections))

	flat := Compose([]*entity.Category{root, child}, false)
	assert.Equal(t, []string{"Child"}, sectionNames(flat))
}

func TestCompose_NoCategories(t *testing.T) {
	assert.Empty(t, Compose(nil, true))
}
