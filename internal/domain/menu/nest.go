package menu

import (
	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// Section is a category rendered on the storefront together with its own items
// and its nested subsections.
type Section struct {
	Category    *entity.Category
	Items       []*entity.MenuItem
	Subsections []*Section
}

// HasContent reports whether the section or any of its descendants lists an item.
func (s *Section) HasContent() bool {
	if len(s.Items) > 0 {
		return true
	}
	for _, sub := range s.Subsections {
		if sub.HasContent() {
			return true
		}
	}

	return false
}

// ItemCount returns the number of items in the section's subtree.
func (s *Section) ItemCount() int {
	count := len(s.Items)
	for _, sub := range s.Subsections {
		count += sub.ItemCount()
	}

	return count
}

// Nest builds the recursive section tree of a catalog.
//
// The first pass indexes every category, the second attaches each category to its
// parent. Categories whose parent is missing, is the category itself, or would close
// a cycle become roots. Input order is preserved for roots and for siblings.
func Nest(categories []*entity.Category) []*Section {
	byID := make(map[uuid.UUID]*Section, len(categories))
	ordered := make([]*Section, 0, len(categories))
	for _, category := range categories {
		if category == nil {
			continue
		}
		if _, dup := byID[category.ID]; dup {
			continue
		}
		section := &Section{Category: category, Items: category.Items}
		if section.Items == nil {
			section.Items = []*entity.MenuItem{}
		}
		byID[category.ID] = section
		ordered = append(ordered, section)
	}

	roots := make([]*Section, 0, len(ordered))
	for _, section := range ordered {
		parent := parentSection(section.Category, byID)
		if parent == nil {
			roots = append(roots, section)

			continue
		}
		parent.Subsections = append(parent.Subsections, section)
	}

	return roots
}

// parentSection returns the section a category should hang under, or nil when the
// category has to be treated as a root.
func parentSection(category *entity.Category, byID map[uuid.UUID]*Section) *Section {
	if category.ParentID == nil || *category.ParentID == category.ID {
		return nil
	}

	parent, ok := byID[*category.ParentID]
	if !ok {
		return nil
	}

	// Walk the ancestor chain; reaching the category again means a cycle.
	visited := map[uuid.UUID]struct{}{}
	for cur := parent.Category; cur != nil && cur.ParentID != nil; {
		if cur.ID == category.ID {
			return nil
		}
		if _, seen := visited[cur.ID]; seen {
			break
		}
		visited[cur.ID] = struct{}{}

		next, ok := byID[*cur.ParentID]
		if !ok {
			break
		}
		cur = next.Category
	}

	return parent
}

// Prune drops every section whose subtree lists no item.
func Prune(sections []*Section) []*Section {
	kept := make([]*Section, 0, len(sections))
	for _, section := range sections {
		if !section.HasContent() {
			continue
		}
		section.Subsections = Prune(section.Subsections)
		kept = append(kept, section)
	}

	return kept
}

// Flatten lifts every nested section to the top level in depth-first order.
// It is used when a catalog has subcategories disabled.
func Flatten(sections []*Section) []*Section {
	flat := make([]*Section, 0, len(sections))
	var walk func([]*Section)
	walk = func(level []*Section) {
		for _, section := range level {
			children := section.Subsections
			flat = append(flat, &Section{Category: section.Category, Items: section.Items})
			walk(children)
		}
	}
	walk(sections)

	return flat
}

// Compose runs the storefront shaping pipeline: nest, optionally flatten, then prune.
func Compose(categories []*entity.Category, nested bool) []*Section {
	sections := Nest(categories)
	if !nested {
		sections = Flatten(sections)
	}

	return Prune(sections)
}
