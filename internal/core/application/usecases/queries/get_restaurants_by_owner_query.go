package queries

import (
	"errors"

	"dinehub/internal/core/domain/model/kernel"
	"dinehub/internal/pkg/guard"
)

var (
	ErrGetRestaurantsByOwnerQueryIsNotConstructed = errors.New(
		"GetRestaurantsByOwnerQuery must be created via NewGetRestaurantsByOwnerQuery constructor",
	)
	ErrOwnerIDIsRequired = errors.New("ownerID is required")
)

// GetRestaurantsByOwnerQuery retrieves every restaurant a given owner is
// assigned to, together with the role the owner holds there.
//
// Example:
//
//	query, err := NewGetRestaurantsByOwnerQuery(ownerID)
//	if err != nil {
//	    return err
//	}
//	handler := NewGetRestaurantsByOwnerQueryHandler(db)
//
//	restaurants, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve restaurants: %w", err)
//	}
type GetRestaurantsByOwnerQuery struct {
	ownerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetRestaurantsByOwnerQuery creates a query for an owner's restaurants.
func NewGetRestaurantsByOwnerQuery(ownerID kernel.UUID) (GetRestaurantsByOwnerQuery, error) {
	if ownerID.Validate() != nil {
		return GetRestaurantsByOwnerQuery{}, ErrOwnerIDIsRequired
	}

	return GetRestaurantsByOwnerQuery{
		ownerID: ownerID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetRestaurantsByOwnerQueryIsNotConstructed if validation fails.
func (q GetRestaurantsByOwnerQuery) Validate() error {
	return q.guard.Validate(ErrGetRestaurantsByOwnerQueryIsNotConstructed)
}

// OwnerID returns the owner whose restaurants are requested.
func (q GetRestaurantsByOwnerQuery) OwnerID() kernel.UUID {
	return q.ownerID
}

// GetRestaurantsByOwnerQueryResponse represents one restaurant the owner is
// assigned to in the read model.
type GetRestaurantsByOwnerQueryResponse struct {
	RestaurantID kernel.UUID
	Name         string
	Address      string
	Role         string
	IsPrimary    bool
}
