package entity

import (
	"time"

	"github.com/google/uuid"
)

// Theme is the colour scheme of a public storefront.
type Theme string

const (
	ThemeDefault Theme = "default"
	ThemeDark    Theme = "dark"
	ThemeEmerald Theme = "emerald"
	ThemeAmber   Theme = "amber"
)

// IsValid checks if the Theme is a known value.
func (t Theme) IsValid() bool {
	switch t {
	case ThemeDefault, ThemeDark, ThemeEmerald, ThemeAmber:
		return true
	default:
		return false
	}
}

// Plan is the subscription tier of a catalog. Tiers are compared by value only.
type Plan string

const (
	PlanFree     Plan = "free"
	PlanPro      Plan = "pro"
	PlanBusiness Plan = "business"
)

// IsPaid reports whether the plan unlocks paid features.
func (p Plan) IsPaid() bool {
	return p == PlanPro || p == PlanBusiness
}

// MaxItemImages returns how many gallery images an item may carry on this plan.
func (p Plan) MaxItemImages() int {
	if p.IsPaid() {
		return 5
	}

	return 1
}

// Catalog is a merchant's storefront configuration and public namespace.
type Catalog struct {
	ID                  uuid.UUID
	OwnerID             uuid.UUID // The user that owns the catalog; one catalog per user.
	Slug                string    // URL-safe unique identifier, lowercase alphanumerics and hyphens.
	Name                string    // Display name.
	Description         string
	LogoURL             string
	CoverURL            string
	Theme               Theme
	WhatsAppNumber      string // Digits only, including the country code.
	CountryCode         string // e.g. "+20"
	Plan                Plan
	EnableSubcategories bool
	HideFooter          bool
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// OwnedBy reports whether userID owns the catalog.
func (c *Catalog) OwnedBy(userID uuid.UUID) bool {
	return c != nil && userID != uuid.Nil && c.OwnerID == userID
}
