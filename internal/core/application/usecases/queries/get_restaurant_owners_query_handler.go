package queries

import (
	"context"

	"dinehub/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetRestaurantOwnersQueryHandler retrieves a restaurant's owner list from
// the database. Uses direct SQL queries for optimal read performance in the
// CQRS pattern.
//
// Example:
//
//	handler := NewGetRestaurantOwnersQueryHandler(db)
//	query, _ := NewGetRestaurantOwnersQuery(restaurantID)
//
//	owners, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get owners: %v", err)
//	    return err
//	}
//
//	fmt.Printf("Found %d owners\n", len(owners))
type GetRestaurantOwnersQueryHandler struct {
	db *gorm.DB
}

// NewGetRestaurantOwnersQueryHandler creates a handler for owner list queries.
// Requires a GORM database connection for query execution.
func NewGetRestaurantOwnersQueryHandler(db *gorm.DB) GetRestaurantOwnersQueryHandler {
	return GetRestaurantOwnersQueryHandler{db: db}
}

// Handle executes the query to retrieve the restaurant's owners.
// The primary owner sorts first, remaining owners follow by assignment time.
func (h GetRestaurantOwnersQueryHandler) Handle(
	ctx context.Context,
	query GetRestaurantOwnersQuery,
) ([]GetRestaurantOwnersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	owners := make([]GetRestaurantOwnersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			owner_id,
			role,
			is_primary,
			created_at,
			updated_at
		FROM ownership_relationships
		WHERE restaurant_id = ?
		ORDER BY is_primary DESC, created_at
	`, query.RestaurantID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var owner GetRestaurantOwnersQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&owner.Role,
			&owner.IsPrimary,
			&owner.CreatedAt,
			&owner.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		ownerID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		owner.OwnerID = ownerID
		owners = append(owners, owner)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return owners, nil
}
