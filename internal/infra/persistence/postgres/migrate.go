package postgres

import (
	"storefront/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// Migrate creates or updates the schema for every persistence model. Parent
// tables come first so foreign keys resolve.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.UserModel{},
		&model.AddressModel{},
		&model.CategoryModel{},
		&model.AttributeModel{},
		&model.AttributeValueModel{},
		&model.ProductModel{},
		&model.VariantModel{},
		&model.ImageModel{},
		&model.OrderModel{},
		&model.OrderItemModel{},
	)
}
