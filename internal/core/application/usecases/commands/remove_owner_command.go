package commands

import (
	"errors"

	"dinehub/internal/core/domain/model/kernel"
	"dinehub/internal/pkg/guard"
)

var ErrRemoveOwnerCommandIsNotConstructed = errors.New(
	"RemoveOwnerCommand must be created via NewRemoveOwnerCommand constructor",
)

// RemoveOwnerCommand represents a request to remove a user's relationship
// with a restaurant.
type RemoveOwnerCommand struct { //nolint:recvcheck //using for validation
	restaurantID kernel.UUID
	ownerID      kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveOwnerCommand creates a command to remove an owner from a restaurant.
func NewRemoveOwnerCommand(restaurantID, ownerID kernel.UUID) (RemoveOwnerCommand, error) {
	command := RemoveOwnerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setRestaurantID(restaurantID),
		command.setOwnerID(ownerID),
	); err != nil {
		return RemoveOwnerCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveOwnerCommand) Validate() error {
	return c.guard.Validate(ErrRemoveOwnerCommandIsNotConstructed)
}

// RestaurantID returns the restaurant the owner is removed from.
func (c RemoveOwnerCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// OwnerID returns the user being removed.
func (c RemoveOwnerCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

func (c *RemoveOwnerCommand) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.restaurantID = id
	return nil
}

func (c *RemoveOwnerCommand) setOwnerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.ownerID = id
	return nil
}
