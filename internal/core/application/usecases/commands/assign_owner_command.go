package commands

import (
	"errors"

	"dinehub/internal/core/domain/model/kernel"
	"dinehub/internal/core/domain/model/ownership"
	"dinehub/internal/pkg/guard"
)

var ErrAssignOwnerCommandIsNotConstructed = errors.New(
	"AssignOwnerCommand must be created via NewAssignOwnerCommand constructor",
)

// AssignOwnerCommand represents a request to link a user to a restaurant with
// a role, optionally as the restaurant's primary owner.
//
// Example:
//
//	cmd, err := NewAssignOwnerCommand(restaurantID, userID, actorID, ownership.RoleOwner, true)
//	if err != nil {
//	    return fmt.Errorf("invalid assignment: %w", err)
//	}
//	err = handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrObjectAlreadyExists) {
//	    // the user already has a relationship with this restaurant
//	}
type AssignOwnerCommand struct { //nolint:recvcheck //using for validation
	restaurantID kernel.UUID
	ownerID      kernel.UUID
	actorID      kernel.UUID
	role         ownership.Role
	isPrimary    bool

	guard guard.ConstructorGuard
}

// NewAssignOwnerCommand creates a command to assign an owner to a restaurant.
// actorID identifies the user performing the assignment (recorded in the
// relationship's audit fields). An invalid role fails construction.
func NewAssignOwnerCommand(
	restaurantID, ownerID, actorID kernel.UUID,
	role ownership.Role,
	isPrimary bool,
) (AssignOwnerCommand, error) {
	command := AssignOwnerCommand{
		isPrimary: isPrimary,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setRestaurantID(restaurantID),
		command.setOwnerID(ownerID),
		command.setActorID(actorID),
		command.setRole(role),
	); err != nil {
		return AssignOwnerCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignOwnerCommand) Validate() error {
	return c.guard.Validate(ErrAssignOwnerCommandIsNotConstructed)
}

// RestaurantID returns the restaurant the owner is assigned to.
func (c AssignOwnerCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// OwnerID returns the user being assigned.
func (c AssignOwnerCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

// ActorID returns the user performing the assignment.
func (c AssignOwnerCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Role returns the role to assign.
func (c AssignOwnerCommand) Role() ownership.Role {
	return c.role
}

// IsPrimary reports whether the new relationship should carry the primary flag.
func (c AssignOwnerCommand) IsPrimary() bool {
	return c.isPrimary
}

func (c *AssignOwnerCommand) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.restaurantID = id
	return nil
}

func (c *AssignOwnerCommand) setOwnerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.ownerID = id
	return nil
}

func (c *AssignOwnerCommand) setActorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.actorID = id
	return nil
}

func (c *AssignOwnerCommand) setRole(role ownership.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}
