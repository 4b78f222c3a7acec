package postgres

import (
	"dinehub/internal/adapters/out/postgres/archiverepo"
	"dinehub/internal/adapters/out/postgres/dishrepo"
	"dinehub/internal/adapters/out/postgres/ownershiprepo"
	"dinehub/internal/adapters/out/postgres/restaurantrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates the schema for all aggregates and declares the
// store-level guard behind the primary-owner invariant: a partial unique
// index allowing at most one relationship per restaurant with the primary
// flag set. Application-level clear-then-set sequences additionally run
// under row locks, but the index makes a double primary impossible even for
// writers that race past the application check.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&restaurantrepo.RestaurantDTO{},
		&dishrepo.DishDTO{},
		&ownershiprepo.RelationshipDTO{},
		&archiverepo.RecordDTO{},
	); err != nil {
		return err
	}

	return db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS uix_ownership_one_primary_per_restaurant
		ON ownership_relationships (restaurant_id)
		WHERE is_primary
	`).Error
}
