// Package accessguard provides the ownership check used to authorize
// restaurant-scoped operations. It answers one question: is this user an
// owner of this restaurant.
package accessguard

import (
	"context"

	"dinehub/internal/core/domain/model/kernel"
	"dinehub/internal/pkg/errs"
)

// OwnershipReader is the narrow read access the guard needs. The postgres
// ownership repository satisfies it.
type OwnershipReader interface {
	IsOwnerOfRestaurant(ctx context.Context, restaurantID kernel.UUID, ownerID kernel.UUID) (bool, error)
}

// OwnershipGuard authorizes restaurant-scoped operations against the
// ownership relationships. Handlers call RequireOwnership before mutating a
// restaurant on behalf of a user.
//
// Example:
//
//	guard := NewOwnershipGuard(ownershipReader)
//
//	if err := guard.RequireOwnership(ctx, restaurantID, userID); err != nil {
//	    if errors.Is(err, errs.ErrPermissionDenied) {
//	        // user is not an owner of the restaurant
//	    }
//	    return err
//	}
type OwnershipGuard struct {
	reader OwnershipReader
}

// NewOwnershipGuard creates a guard backed by the given ownership reader.
func NewOwnershipGuard(reader OwnershipReader) OwnershipGuard {
	return OwnershipGuard{reader: reader}
}

// IsOwnerOfRestaurant reports whether the user holds any ownership role on
// the restaurant. Role does not matter here, only membership.
func (g OwnershipGuard) IsOwnerOfRestaurant(
	ctx context.Context,
	restaurantID kernel.UUID,
	userID kernel.UUID,
) (bool, error) {
	return g.reader.IsOwnerOfRestaurant(ctx, restaurantID, userID)
}

// RequireOwnership returns a permission denied error when the user is not
// an owner of the restaurant.
func (g OwnershipGuard) RequireOwnership(
	ctx context.Context,
	restaurantID kernel.UUID,
	userID kernel.UUID,
) error {
	isOwner, err := g.reader.IsOwnerOfRestaurant(ctx, restaurantID, userID)
	if err != nil {
		return err
	}
	if !isOwner {
		return errs.NewPermissionDeniedError(userID.String(), restaurantID.String())
	}

	return nil
}
