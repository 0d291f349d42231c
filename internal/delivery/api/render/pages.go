package render

import (
	"storefront/internal/usecase"
)

const maxHeadingLevel = 6

// StorefrontPage is the view model of a public catalog page.
type StorefrontPage struct {
	*usecase.StorefrontOutput
	URL string
}

// Empty reports whether the page shows the empty-state message.
func (p StorefrontPage) Empty() bool {
	return p.StorefrontOutput.IsEmpty()
}

// Tree returns the sections annotated with their heading level.
func (p StorefrontPage) Tree() []PageSection {
	if p.StorefrontOutput == nil {
		return nil
	}

	return toPageSections(p.Sections, 2)
}

// PageSection is a storefront section with the heading level it renders at.
type PageSection struct {
	usecase.StorefrontSection
	Level    int
	Children []PageSection
}

func toPageSections(sections []usecase.StorefrontSection, level int) []PageSection {
	out := make([]PageSection, 0, len(sections))
	for _, s := range sections {
		out = append(out, PageSection{
			StorefrontSection: s,
			Level:             level,
			Children:          toPageSections(s.Subsections, min(level+1, maxHeadingLevel)),
		})
	}

	return out
}

// ErrorPage is the view model of a failed public page.
type ErrorPage struct {
	Message   string
	RequestID string
}
