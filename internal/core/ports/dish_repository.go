package ports

import (
	"context"

	"dinehub/internal/core/domain/model/dish"
	"dinehub/internal/core/domain/model/kernel"
)

// DishRepository defines the persistence contract for dish aggregates.
type DishRepository interface {
	// Add persists a new dish aggregate to storage.
	Add(ctx context.Context, aggregate *dish.Dish) error

	// Update persists changes to an existing dish aggregate.
	Update(ctx context.Context, aggregate *dish.Dish) error

	// Get retrieves a dish aggregate by its unique identifier.
	// Returns an object-not-found error if no dish exists with the id.
	Get(ctx context.Context, id kernel.UUID) (*dish.Dish, error)

	// ListByRestaurant retrieves all dishes on a restaurant's menu.
	ListByRestaurant(ctx context.Context, restaurantID kernel.UUID) ([]*dish.Dish, error)

	// Delete removes the live dish row.
	// Returns an object-not-found error if no dish exists with the id.
	// Inside a unit of work the removal only becomes visible on commit.
	Delete(ctx context.Context, id kernel.UUID) error
}
