package ports

import (
	"context"

	"dinehub/internal/core/domain/model/kernel"
	"dinehub/internal/core/domain/model/ownership"
)

// OwnershipRepository defines the persistence contract for ownership relationships.
//
// Relationships are keyed by the (restaurant, owner) pair. Methods that take
// part in the primary-owner invariants (UnsetPrimaryOwner and writes that set
// the primary flag) are meant to be called inside a unit of work so the
// clear-then-set sequence commits atomically; the repository itself never
// commits.
type OwnershipRepository interface {
	// Add persists a new relationship.
	// A store-level uniqueness violation on the (restaurant, owner) pair
	// surfaces as an object-already-exists error.
	Add(ctx context.Context, relationship *ownership.Relationship) error

	// Update persists changes to an existing relationship.
	Update(ctx context.Context, relationship *ownership.Relationship) error

	// Delete removes the relationship for the (restaurant, owner) pair.
	// Returns an object-not-found error if no relationship exists.
	Delete(ctx context.Context, restaurantID, ownerID kernel.UUID) error

	// GetByIDs retrieves the relationship for the (restaurant, owner) pair.
	// Returns an object-not-found error if no relationship exists.
	GetByIDs(ctx context.Context, restaurantID, ownerID kernel.UUID) (*ownership.Relationship, error)

	// ListByRestaurant retrieves all relationships of a restaurant.
	ListByRestaurant(ctx context.Context, restaurantID kernel.UUID) ([]*ownership.Relationship, error)

	// ListByOwner retrieves all relationships a user holds across restaurants.
	ListByOwner(ctx context.Context, ownerID kernel.UUID) ([]*ownership.Relationship, error)

	// GetPrimaryOwner retrieves the relationship flagged primary for a restaurant.
	// Returns an object-not-found error if the restaurant has no primary owner.
	GetPrimaryOwner(ctx context.Context, restaurantID kernel.UUID) (*ownership.Relationship, error)

	// IsOwnerOfRestaurant reports whether any relationship exists for the pair,
	// regardless of role or primary flag.
	IsOwnerOfRestaurant(ctx context.Context, restaurantID, ownerID kernel.UUID) (bool, error)

	// CountByRestaurant returns the number of relationships a restaurant has.
	CountByRestaurant(ctx context.Context, restaurantID kernel.UUID) (int64, error)

	// UnsetPrimaryOwner clears the primary flag on every relationship of the
	// restaurant. Called inside a unit of work immediately before a write
	// that sets the flag elsewhere.
	UnsetPrimaryOwner(ctx context.Context, restaurantID kernel.UUID) error

	// LockRestaurantRelationships takes row locks on all relationships of the
	// restaurant for the duration of the enclosing transaction, serializing
	// concurrent primary-flag flips.
	LockRestaurantRelationships(ctx context.Context, restaurantID kernel.UUID) error
}
