package queries

import (
	"context"

	"dinehub/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetRestaurantsByOwnerQueryHandler retrieves an owner's restaurant list
// from the database. Joins ownership relationships with restaurant rows so
// the read model carries the display fields in one round trip.
type GetRestaurantsByOwnerQueryHandler struct {
	db *gorm.DB
}

// NewGetRestaurantsByOwnerQueryHandler creates a handler for owner restaurant queries.
// Requires a GORM database connection for query execution.
func NewGetRestaurantsByOwnerQueryHandler(db *gorm.DB) GetRestaurantsByOwnerQueryHandler {
	return GetRestaurantsByOwnerQueryHandler{db: db}
}

// Handle executes the query to retrieve the owner's restaurants.
// Results are sorted by restaurant name for consistent output.
func (h GetRestaurantsByOwnerQueryHandler) Handle(
	ctx context.Context,
	query GetRestaurantsByOwnerQuery,
) ([]GetRestaurantsByOwnerQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	restaurants := make([]GetRestaurantsByOwnerQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			r.id,
			r.name,
			r.address,
			o.role,
			o.is_primary
		FROM ownership_relationships o
		JOIN restaurants r ON r.id = o.restaurant_id
		WHERE o.owner_id = ?
		ORDER BY r.name
	`, query.OwnerID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var restaurant GetRestaurantsByOwnerQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&restaurant.Name,
			&restaurant.Address,
			&restaurant.Role,
			&restaurant.IsPrimary,
		)
		if err != nil {
			return nil, err
		}

		restaurantID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		restaurant.RestaurantID = restaurantID
		restaurants = append(restaurants, restaurant)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return restaurants, nil
}
