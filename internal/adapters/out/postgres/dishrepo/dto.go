// Package dishrepo provides data transfer objects and mapping functions for
// dish persistence, converting between domain aggregates and their database
// representation.
package dishrepo

import (
	"dinehub/internal/core/domain/model/dish"
	"dinehub/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DishDTO represents the database structure for persisting dish aggregates.
type DishDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	RestaurantID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name         string    `gorm:"type:varchar(255);not null"`
	Description  string    `gorm:"type:text"`
	PriceCents   int       `gorm:"type:int;not null"`
}

// TableName specifies the database table name for dish entities.
func (DishDTO) TableName() string {
	return dish.StoreName
}

// fromDomain converts a dish domain aggregate to its database representation.
func fromDomain(aggregate *dish.Dish) DishDTO {
	return DishDTO{
		ID:           aggregate.ID().Bytes(),
		RestaurantID: aggregate.RestaurantID().Bytes(),
		Name:         aggregate.Name(),
		Description:  aggregate.Description(),
		PriceCents:   aggregate.PriceCents(),
	}
}

// toDomain converts a database DTO to a dish domain aggregate.
func toDomain(dto DishDTO) (*dish.Dish, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	return dish.RestoreDish(id, restaurantID, dto.Name, dto.Description, dto.PriceCents)
}
