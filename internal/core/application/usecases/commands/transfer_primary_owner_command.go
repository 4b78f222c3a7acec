package commands

import (
	"errors"

	"dinehub/internal/core/domain/model/kernel"
	"dinehub/internal/pkg/guard"
)

var ErrTransferPrimaryOwnerCommandIsNotConstructed = errors.New(
	"TransferPrimaryOwnerCommand must be created via NewTransferPrimaryOwnerCommand constructor",
)

// TransferPrimaryOwnerCommand represents a request to move the primary flag
// of a restaurant onto another of its existing owners.
type TransferPrimaryOwnerCommand struct { //nolint:recvcheck //using for validation
	restaurantID kernel.UUID
	newOwnerID   kernel.UUID
	actorID      kernel.UUID

	guard guard.ConstructorGuard
}

// NewTransferPrimaryOwnerCommand creates a command to transfer the primary flag.
func NewTransferPrimaryOwnerCommand(
	restaurantID, newOwnerID, actorID kernel.UUID,
) (TransferPrimaryOwnerCommand, error) {
	command := TransferPrimaryOwnerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setRestaurantID(restaurantID),
		command.setNewOwnerID(newOwnerID),
		command.setActorID(actorID),
	); err != nil {
		return TransferPrimaryOwnerCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c TransferPrimaryOwnerCommand) Validate() error {
	return c.guard.Validate(ErrTransferPrimaryOwnerCommandIsNotConstructed)
}

// RestaurantID returns the restaurant whose primary flag moves.
func (c TransferPrimaryOwnerCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// NewOwnerID returns the owner receiving the primary flag.
func (c TransferPrimaryOwnerCommand) NewOwnerID() kernel.UUID {
	return c.newOwnerID
}

// ActorID returns the user performing the transfer.
func (c TransferPrimaryOwnerCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c *TransferPrimaryOwnerCommand) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.restaurantID = id
	return nil
}

func (c *TransferPrimaryOwnerCommand) setNewOwnerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.newOwnerID = id
	return nil
}

func (c *TransferPrimaryOwnerCommand) setActorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.actorID = id
	return nil
}
