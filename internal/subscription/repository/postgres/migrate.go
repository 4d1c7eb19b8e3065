package postgres

import "gorm.io/gorm"

// Migrate creates or updates the subscriptions table schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&subscriptionModel{})
}
