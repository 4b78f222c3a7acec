package commands

import (
	"errors"

	"dinehub/internal/core/domain/model/kernel"
	"dinehub/internal/pkg/guard"
)

var ErrDeleteDishCommandIsNotConstructed = errors.New(
	"DeleteDishCommand must be created via NewDeleteDishCommand constructor",
)

// DeleteDishCommand represents a request to remove a dish through the
// archive-first protocol, mirroring restaurant deletion.
type DeleteDishCommand struct { //nolint:recvcheck //using for validation
	dishID    kernel.UUID
	deletedBy string
	note      string

	guard guard.ConstructorGuard
}

// NewDeleteDishCommand creates a command to delete a dish.
// deletedBy and note are optional audit inputs recorded on the snapshot.
func NewDeleteDishCommand(dishID kernel.UUID, deletedBy, note string) (DeleteDishCommand, error) {
	command := DeleteDishCommand{
		deletedBy: deletedBy,
		note:      note,
		guard:     guard.NewConstructorGuard(),
	}

	if err := command.setDishID(dishID); err != nil {
		return DeleteDishCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteDishCommand) Validate() error {
	return c.guard.Validate(ErrDeleteDishCommandIsNotConstructed)
}

// DishID returns the dish to delete.
func (c DeleteDishCommand) DishID() kernel.UUID {
	return c.dishID
}

// DeletedBy returns the requesting actor, or nil when not supplied.
func (c DeleteDishCommand) DeletedBy() *string {
	return optionalString(c.deletedBy)
}

// Note returns the deletion note, or nil when not supplied.
func (c DeleteDishCommand) Note() *string {
	return optionalString(c.note)
}

func (c *DeleteDishCommand) setDishID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.dishID = id
	return nil
}
