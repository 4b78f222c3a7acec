// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"dinehub/internal/core/domain/model/kernel"
	"dinehub/internal/pkg/guard"
)

var (
	ErrGetRestaurantOwnersQueryIsNotConstructed = errors.New(
		"GetRestaurantOwnersQuery must be created via NewGetRestaurantOwnersQuery constructor",
	)
	ErrRestaurantIDIsRequired = errors.New("restaurantID is required")
)

// GetRestaurantOwnersQuery retrieves every ownership relationship of one
// restaurant. Returns owners with their roles and the primary flag so a
// caller can see who holds the restaurant and who is in charge of it.
//
// Example:
//
//	query, err := NewGetRestaurantOwnersQuery(restaurantID)
//	if err != nil {
//	    return err
//	}
//	handler := NewGetRestaurantOwnersQueryHandler(db)
//
//	owners, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve owners: %w", err)
//	}
//
//	for _, owner := range owners {
//	    fmt.Printf("Owner %s role=%s primary=%t\n", owner.OwnerID, owner.Role, owner.IsPrimary)
//	}
type GetRestaurantOwnersQuery struct {
	restaurantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetRestaurantOwnersQuery creates a query for a restaurant's owner list.
func NewGetRestaurantOwnersQuery(restaurantID kernel.UUID) (GetRestaurantOwnersQuery, error) {
	if restaurantID.Validate() != nil {
		return GetRestaurantOwnersQuery{}, ErrRestaurantIDIsRequired
	}

	return GetRestaurantOwnersQuery{
		restaurantID: restaurantID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetRestaurantOwnersQueryIsNotConstructed if validation fails.
func (q GetRestaurantOwnersQuery) Validate() error {
	return q.guard.Validate(ErrGetRestaurantOwnersQueryIsNotConstructed)
}

// RestaurantID returns the restaurant whose owners are requested.
func (q GetRestaurantOwnersQuery) RestaurantID() kernel.UUID {
	return q.restaurantID
}

// GetRestaurantOwnersQueryResponse represents one ownership relationship in
// the read model.
type GetRestaurantOwnersQueryResponse struct {
	OwnerID   kernel.UUID
	Role      string
	IsPrimary bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
