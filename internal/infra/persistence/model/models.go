// Package model holds the GORM persistence models.
package model

// All lists every model in migration order.
func All() []any {
	return []any{
		&UserModel{},
		&AuthenticationModel{},
		&RefreshTokenModel{},
		&PasswordResetModel{},
		&CatalogModel{},
		&CategoryModel{},
		&MenuItemModel{},
		&ItemImageModel{},
	}
}
