package handler

import (
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/menu"

	"github.com/shopspring/decimal"
)

type userView struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	Name          string `json:"name"`
	Phone         string `json:"phone,omitempty"`
	PhoneVerified bool   `json:"phone_verified"`
}

func newUserView(u *entity.User) *userView {
	if u == nil {
		return nil
	}

	return &userView{
		ID:            u.ID.String(),
		Email:         u.Email,
		Name:          u.Name,
		Phone:         u.Phone,
		PhoneVerified: u.PhoneVerifiedAt != nil,
	}
}

type catalogView struct {
	ID                  string    `json:"id"`
	Slug                string    `json:"slug"`
	Name                string    `json:"name"`
	Description         string    `json:"description"`
	LogoURL             string    `json:"logo_url"`
	CoverURL            string    `json:"cover_url"`
	Theme               string    `json:"theme"`
	WhatsAppNumber      string    `json:"whatsapp_number"`
	CountryCode         string    `json:"country_code"`
	Plan                string    `json:"plan"`
	EnableSubcategories bool      `json:"enable_subcategories"`
	HideFooter          bool      `json:"hide_footer"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

func newCatalogView(c *entity.Catalog) *catalogView {
	return &catalogView{
		ID:                  c.ID.String(),
		Slug:                c.Slug,
		Name:                c.Name,
		Description:         c.Description,
		LogoURL:             c.LogoURL,
		CoverURL:            c.CoverURL,
		Theme:               string(c.Theme),
		WhatsAppNumber:      c.WhatsAppNumber,
		CountryCode:         c.CountryCode,
		Plan:                string(c.Plan),
		EnableSubcategories: c.EnableSubcategories,
		HideFooter:          c.HideFooter,
		CreatedAt:           c.CreatedAt,
		UpdatedAt:           c.UpdatedAt,
	}
}

type categoryView struct {
	ID          string    `json:"id"`
	ParentID    *string   `json:"parent_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

func newCategoryView(c *entity.Category) *categoryView {
	v := &categoryView{
		ID:          c.ID.String(),
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
	}
	if c.ParentID != nil {
		parent := c.ParentID.String()
		v.ParentID = &parent
	}

	return v
}

type categoryGroupView struct {
	Label    string          `json:"label"`
	Parent   *categoryView   `json:"parent"`
	Children []*categoryView `json:"children"`
}

type categoryListView struct {
	Categories []*categoryView      `json:"categories"`
	Groups     []*categoryGroupView `json:"groups"`
}

func newCategoryListView(categories []*entity.Category, groups []menu.Group) *categoryListView {
	out := &categoryListView{
		Categories: make([]*categoryView, 0, len(categories)),
		Groups:     make([]*categoryGroupView, 0, len(groups)),
	}
	for _, c := range categories {
		out.Categories = append(out.Categories, newCategoryView(c))
	}
	for _, g := range groups {
		gv := &categoryGroupView{
			Label:    g.Label(),
			Children: make([]*categoryView, 0, len(g.Children)),
		}
		if g.Parent != nil {
			gv.Parent = newCategoryView(g.Parent)
		}
		for _, child := range g.Children {
			gv.Children = append(gv.Children, newCategoryView(child))
		}
		out.Groups = append(out.Groups, gv)
	}

	return out
}

type itemView struct {
	ID          string           `json:"id"`
	CategoryID  string           `json:"category_id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	ImageURL    string           `json:"image_url"`
	Images      []string         `json:"images"`
	IsFeatured  bool             `json:"is_featured"`
	IsPopular   bool             `json:"is_popular"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

func newItemView(item *entity.MenuItem) *itemView {
	v := &itemView{
		ID:          item.ID.String(),
		CategoryID:  item.CategoryID.String(),
		Name:        item.Name,
		Description: item.Description,
		ImageURL:    item.ImageURL,
		Images:      make([]string, 0, len(item.Images)),
		IsFeatured:  item.IsFeatured,
		IsPopular:   item.IsPopular,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
	if item.Price.Valid {
		price := item.Price.Decimal
		v.Price = &price
	}
	for _, img := range item.Images {
		v.Images = append(v.Images, img.URL)
	}

	return v
}
