// Package menu shapes the flat category rows of a catalog into the structures
// shown on the dashboard and on the public storefront.
package menu

import (
	"sort"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// UnlinkedGroupLabel is the heading of the orphan group.
const UnlinkedGroupLabel = "فئات غير مرتبطة"

// Group pairs a root category with its direct children.
// Parent is nil for the orphan group.
type Group struct {
	Parent   *entity.Category
	Children []*entity.Category
}

// Label returns the heading shown for the group.
func (g Group) Label() string {
	if g.Parent == nil {
		return UnlinkedGroupLabel
	}

	return g.Parent.Name
}

// IsOrphan reports whether g is the orphan group.
func (g Group) IsOrphan() bool {
	return g.Parent == nil
}

// GroupCategories groups a flat category list into roots with their direct children.
//
// Children whose parent is not a root of the input (missing, itself a child, or the
// category itself) are collected in a trailing orphan group, so every category
// appears exactly once. Groups and children are ordered by name using the collation
// rules of lang; ties keep input order.
func GroupCategories(categories []*entity.Category, lang language.Tag) []Group {
	if len(categories) == 0 {
		return []Group{}
	}

	col := collate.New(lang)

	roots := make(map[uuid.UUID]*Group, len(categories))
	groups := make([]*Group, 0, len(categories))
	for _, category := range categories {
		if category == nil || !category.IsRoot() {
			continue
		}
		group := &Group{Parent: category, Children: []*entity.Category{}}
		roots[category.ID] = group
		groups = append(groups, group)
	}

	var orphans []*entity.Category
	for _, category := range categories {
		if category == nil || category.IsRoot() {
			continue
		}
		// A self-referencing category is never a root, so it lands here too.
		parent, ok := roots[*category.ParentID]
		if !ok {
			orphans = append(orphans, category)

			continue
		}
		parent.Children = append(parent.Children, category)
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return col.CompareString(groups[i].Parent.Name, groups[j].Parent.Name) < 0
	})

	result := make([]Group, 0, len(groups)+1)
	for _, group := range groups {
		sortByName(col, group.Children)
		result = append(result, *group)
	}

	if len(orphans) > 0 {
		sortByName(col, orphans)
		result = append(result, Group{Children: orphans})
	}

	return result
}

func sortByName(col *collate.Collator, categories []*entity.Category) {
	sort.SliceStable(categories, func(i, j int) bool {
		return col.CompareString(categories[i].Name, categories[j].Name) < 0
	})
}
