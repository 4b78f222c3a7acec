// Package restaurantrepo provides data transfer objects and mapping functions
// for restaurant persistence, converting between domain aggregates and their
// database representation.
package restaurantrepo

import (
	"dinehub/internal/core/domain/model/kernel"
	"dinehub/internal/core/domain/model/restaurant"

	"github.com/google/uuid"
)

// RestaurantDTO represents the database structure for persisting restaurant aggregates.
type RestaurantDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Address     string    `gorm:"type:varchar(512);not null"`
	Description string    `gorm:"type:text"`
}

// TableName specifies the database table name for restaurant entities.
func (RestaurantDTO) TableName() string {
	return restaurant.StoreName
}

// fromDomain converts a restaurant domain aggregate to its database representation.
func fromDomain(aggregate *restaurant.Restaurant) RestaurantDTO {
	return RestaurantDTO{
		ID:          aggregate.ID().Bytes(),
		Name:        aggregate.Name(),
		Address:     aggregate.Address(),
		Description: aggregate.Description(),
	}
}

// toDomain converts a database DTO to a restaurant domain aggregate.
func toDomain(dto RestaurantDTO) (*restaurant.Restaurant, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return restaurant.RestoreRestaurant(id, dto.Name, dto.Address, dto.Description)
}
