package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CatalogModel mirrors the 'catalogs' table. One row per merchant, never hard-deleted.
type CatalogModel struct {
	ID                  uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OwnerID             uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Slug                string    `gorm:"type:varchar(50);not null;uniqueIndex"`
	Name                string    `gorm:"type:varchar(100);not null"`
	Description         string    `gorm:"type:text"`
	LogoURL             string    `gorm:"type:text"`
	CoverURL            string    `gorm:"type:text"`
	Theme               string    `gorm:"type:varchar(20);not null;default:'default'"`
	WhatsAppNumber      string    `gorm:"column:whatsapp_number;type:varchar(20)"`
	CountryCode         string    `gorm:"type:varchar(6)"`
	Plan                string    `gorm:"type:varchar(20);not null;default:'free'"`
	EnableSubcategories bool      `gorm:"not null;default:false"`
	HideFooter          bool      `gorm:"not null;default:false"`
	CreatedAt           time.Time
	UpdatedAt           time.Time

	Categories []CategoryModel `gorm:"foreignKey:CatalogID;constraint:OnDelete:CASCADE"`
	Items      []MenuItemModel `gorm:"foreignKey:CatalogID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (CatalogModel) TableName() string {
	return "catalogs"
}

// CategoryModel mirrors the 'categories' table. Deleting a category cascades to its
// child categories and their items through the foreign keys.
type CategoryModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CatalogID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	ParentID    *uuid.UUID `gorm:"type:uuid;index"`
	Name        string     `gorm:"type:varchar(50);not null"`
	Description string     `gorm:"type:text"`
	CreatedAt   time.Time

	Children []CategoryModel `gorm:"foreignKey:ParentID;constraint:OnDelete:CASCADE"`
	Items    []MenuItemModel `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}

// MenuItemModel mirrors the 'menu_items' table.
type MenuItemModel struct {
	ID          uuid.UUID           `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CatalogID   uuid.UUID           `gorm:"type:uuid;not null;index"`
	CategoryID  uuid.UUID           `gorm:"type:uuid;not null;index"`
	Name        string              `gorm:"type:varchar(100);not null"`
	Description string              `gorm:"type:varchar(500)"`
	Price       decimal.NullDecimal `gorm:"type:decimal(10,2)"`
	ImageURL    string              `gorm:"type:text"`
	IsFeatured  bool                `gorm:"not null;default:false"`
	IsPopular   bool                `gorm:"not null;default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Images []ItemImageModel `gorm:"foreignKey:ItemID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (MenuItemModel) TableName() string {
	return "menu_items"
}

// ItemImageModel mirrors the 'item_images' table, ordered by position.
type ItemImageModel struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ItemID   uuid.UUID `gorm:"type:uuid;not null;index"`
	URL      string    `gorm:"type:text;not null"`
	Position int       `gorm:"not null;default:0"`
}

// TableName explicitly sets the table name for GORM.
func (ItemImageModel) TableName() string {
	return "item_images"
}
