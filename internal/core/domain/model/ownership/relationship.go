package ownership

import (
	"errors"
	"time"

	"dinehub/internal/core/domain/model/kernel"
	"dinehub/internal/pkg/guard"
)

// ErrRelationshipIsNotConstructed is returned when using an improperly
// initialized Relationship.
var ErrRelationshipIsNotConstructed = errors.New(
	"Relationship must be created via NewRelationship or RestoreRelationship")

// Relationship links a user to a restaurant with a role and a primary flag.
// It is the aggregate the ownership invariants are expressed over:
//
//   - at most one relationship per (restaurant, owner) pair;
//   - at most one relationship per restaurant with the primary flag set;
//   - the sole relationship of a restaurant, when primary, cannot be removed
//     until the flag is transferred.
//
// The pair (RestaurantID, OwnerID) is the identity of the relationship.
// The per-restaurant invariants span multiple relationships and are enforced
// by the application layer inside one transaction; a Relationship on its own
// only guards its local state.
type Relationship struct {
	restaurantID kernel.UUID
	ownerID      kernel.UUID
	role         Role
	isPrimary    bool

	createdAt time.Time
	updatedAt time.Time
	createdBy kernel.UUID
	updatedBy kernel.UUID

	guard guard.ConstructorGuard
}

// NewRelationship creates a relationship between a restaurant and a user.
// actorID identifies the user performing the assignment and is recorded in
// the audit fields. Timestamps are set to the current UTC time.
func NewRelationship(
	restaurantID kernel.UUID,
	ownerID kernel.UUID,
	role Role,
	isPrimary bool,
	actorID kernel.UUID,
) (*Relationship, error) {
	now := time.Now().UTC()

	rel := &Relationship{
		isPrimary: isPrimary,
		createdAt: now,
		updatedAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		rel.setRestaurantID(restaurantID),
		rel.setOwnerID(ownerID),
		rel.setRole(role),
		rel.setCreatedBy(actorID),
		rel.setUpdatedBy(actorID),
	); err != nil {
		return nil, err
	}

	return rel, nil
}

// RestoreRelationship reconstructs a relationship from persistent storage,
// preserving its audit fields and primary flag as persisted.
func RestoreRelationship(
	restaurantID kernel.UUID,
	ownerID kernel.UUID,
	role Role,
	isPrimary bool,
	createdAt time.Time,
	updatedAt time.Time,
	createdBy kernel.UUID,
	updatedBy kernel.UUID,
) (*Relationship, error) {
	rel := &Relationship{
		isPrimary: isPrimary,
		createdAt: createdAt,
		updatedAt: updatedAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		rel.setRestaurantID(restaurantID),
		rel.setOwnerID(ownerID),
		rel.setRole(role),
		rel.setCreatedBy(createdBy),
		rel.setUpdatedBy(updatedBy),
	); err != nil {
		return nil, err
	}

	return rel, nil
}

// Validate ensures the relationship was created through a constructor.
func (r *Relationship) Validate() error {
	return r.guard.Validate(ErrRelationshipIsNotConstructed)
}

// RestaurantID returns the restaurant side of the relationship identity.
func (r *Relationship) RestaurantID() kernel.UUID {
	return r.restaurantID
}

// OwnerID returns the user side of the relationship identity.
func (r *Relationship) OwnerID() kernel.UUID {
	return r.ownerID
}

// Role returns the role the user holds for the restaurant.
func (r *Relationship) Role() Role {
	return r.role
}

// IsPrimary reports whether this relationship carries the primary-owner flag.
func (r *Relationship) IsPrimary() bool {
	return r.isPrimary
}

// CreatedAt returns when the relationship was created.
func (r *Relationship) CreatedAt() time.Time {
	return r.createdAt
}

// UpdatedAt returns when the relationship was last modified.
func (r *Relationship) UpdatedAt() time.Time {
	return r.updatedAt
}

// CreatedBy returns the user that created the relationship.
func (r *Relationship) CreatedBy() kernel.UUID {
	return r.createdBy
}

// UpdatedBy returns the user that last modified the relationship.
func (r *Relationship) UpdatedBy() kernel.UUID {
	return r.updatedBy
}

// ChangeRole updates the role, leaving the primary flag untouched.
func (r *Relationship) ChangeRole(role Role, actorID kernel.UUID) error {
	if err := r.Validate(); err != nil {
		return err
	}
	if err := role.Validate(); err != nil {
		return err
	}
	if err := r.setUpdatedBy(actorID); err != nil {
		return err
	}

	r.role = role
	r.updatedAt = time.Now().UTC()
	return nil
}

// MarkPrimary sets the primary-owner flag on this relationship.
// The caller must clear the flag on the previous primary within the same
// transaction to keep the at-most-one-primary invariant.
func (r *Relationship) MarkPrimary(actorID kernel.UUID) error {
	if err := r.Validate(); err != nil {
		return err
	}
	if err := r.setUpdatedBy(actorID); err != nil {
		return err
	}

	r.isPrimary = true
	r.updatedAt = time.Now().UTC()
	return nil
}

// ClearPrimary removes the primary-owner flag from this relationship.
func (r *Relationship) ClearPrimary(actorID kernel.UUID) error {
	if err := r.Validate(); err != nil {
		return err
	}
	if err := r.setUpdatedBy(actorID); err != nil {
		return err
	}

	r.isPrimary = false
	r.updatedAt = time.Now().UTC()
	return nil
}

// IsEqual compares two relationships by their (restaurant, owner) identity.
func (r *Relationship) IsEqual(other *Relationship) bool {
	if other == nil {
		return false
	}
	return r.restaurantID.IsEqual(other.restaurantID) && r.ownerID.IsEqual(other.ownerID)
}

func (r *Relationship) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	r.restaurantID = id
	return nil
}

func (r *Relationship) setOwnerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	r.ownerID = id
	return nil
}

func (r *Relationship) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	r.role = role
	return nil
}

func (r *Relationship) setCreatedBy(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	r.createdBy = id
	return nil
}

func (r *Relationship) setUpdatedBy(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	r.updatedBy = id
	return nil
}
