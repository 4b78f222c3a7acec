// Package ports defines repository interfaces for the dinehub domain.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"dinehub/internal/core/domain/model/kernel"
	"dinehub/internal/core/domain/model/restaurant"
)

// RestaurantRepository defines the persistence contract for restaurant aggregates.
type RestaurantRepository interface {
	// Add persists a new restaurant aggregate to storage.
	Add(ctx context.Context, aggregate *restaurant.Restaurant) error

	// Update persists changes to an existing restaurant aggregate.
	Update(ctx context.Context, aggregate *restaurant.Restaurant) error

	// Get retrieves a restaurant aggregate by its unique identifier.
	// Returns an object-not-found error if no restaurant exists with the id.
	Get(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error)

	// Delete removes the live restaurant row.
	// Returns an object-not-found error if no restaurant exists with the id.
	// Inside a unit of work the removal only becomes visible on commit.
	Delete(ctx context.Context, id kernel.UUID) error
}
