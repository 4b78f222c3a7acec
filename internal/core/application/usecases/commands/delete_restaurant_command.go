package commands

import (
	"errors"

	"dinehub/internal/core/domain/model/kernel"
	"dinehub/internal/pkg/guard"
)

var ErrDeleteRestaurantCommandIsNotConstructed = errors.New(
	"DeleteRestaurantCommand must be created via NewDeleteRestaurantCommand constructor",
)

// DeleteRestaurantCommand represents a request to remove a restaurant through
// the archive-first protocol: the restaurant's full state is snapshotted into
// the archive in the same transaction that deletes the live row.
//
// deletedBy and note are optional audit inputs recorded on the snapshot.
type DeleteRestaurantCommand struct { //nolint:recvcheck //using for validation
	restaurantID kernel.UUID
	deletedBy    string
	note         string

	guard guard.ConstructorGuard
}

// NewDeleteRestaurantCommand creates a command to delete a restaurant.
// deletedBy identifies the requesting actor and note is a free-form reason;
// both may be empty.
func NewDeleteRestaurantCommand(restaurantID kernel.UUID, deletedBy, note string) (DeleteRestaurantCommand, error) {
	command := DeleteRestaurantCommand{
		deletedBy: deletedBy,
		note:      note,
		guard:     guard.NewConstructorGuard(),
	}

	if err := command.setRestaurantID(restaurantID); err != nil {
		return DeleteRestaurantCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteRestaurantCommand) Validate() error {
	return c.guard.Validate(ErrDeleteRestaurantCommandIsNotConstructed)
}

// RestaurantID returns the restaurant to delete.
func (c DeleteRestaurantCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// DeletedBy returns the requesting actor, or nil when not supplied.
func (c DeleteRestaurantCommand) DeletedBy() *string {
	return optionalString(c.deletedBy)
}

// Note returns the deletion note, or nil when not supplied.
func (c DeleteRestaurantCommand) Note() *string {
	return optionalString(c.note)
}

func (c *DeleteRestaurantCommand) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.restaurantID = id
	return nil
}

// optionalString maps an empty string to nil so optional audit fields are
// stored as NULL rather than empty text.
func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
