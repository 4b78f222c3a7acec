package commands

import (
	"errors"

	"dinehub/internal/core/domain/model/kernel"
	"dinehub/internal/core/domain/model/ownership"
	"dinehub/internal/pkg/guard"
)

var ErrUpdateOwnerRoleCommandIsNotConstructed = errors.New(
	"UpdateOwnerRoleCommand must be created via NewUpdateOwnerRoleCommand constructor",
)

// UpdateOwnerRoleCommand represents a request to change the role of an
// existing ownership relationship. The primary flag is never touched by this
// operation.
type UpdateOwnerRoleCommand struct { //nolint:recvcheck //using for validation
	restaurantID kernel.UUID
	ownerID      kernel.UUID
	actorID      kernel.UUID
	role         ownership.Role

	guard guard.ConstructorGuard
}

// NewUpdateOwnerRoleCommand creates a command to change an owner's role.
// An invalid role fails construction with a value-is-invalid error.
func NewUpdateOwnerRoleCommand(
	restaurantID, ownerID, actorID kernel.UUID,
	role ownership.Role,
) (UpdateOwnerRoleCommand, error) {
	command := UpdateOwnerRoleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setRestaurantID(restaurantID),
		command.setOwnerID(ownerID),
		command.setActorID(actorID),
		command.setRole(role),
	); err != nil {
		return UpdateOwnerRoleCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOwnerRoleCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOwnerRoleCommandIsNotConstructed)
}

// RestaurantID returns the restaurant side of the relationship.
func (c UpdateOwnerRoleCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// OwnerID returns the user whose role changes.
func (c UpdateOwnerRoleCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

// ActorID returns the user performing the change.
func (c UpdateOwnerRoleCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Role returns the new role.
func (c UpdateOwnerRoleCommand) Role() ownership.Role {
	return c.role
}

func (c *UpdateOwnerRoleCommand) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.restaurantID = id
	return nil
}

func (c *UpdateOwnerRoleCommand) setOwnerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.ownerID = id
	return nil
}

func (c *UpdateOwnerRoleCommand) setActorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.actorID = id
	return nil
}

func (c *UpdateOwnerRoleCommand) setRole(role ownership.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}
