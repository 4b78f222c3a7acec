package commands

import (
	"errors"

	"dinehub/internal/core/domain/model/kernel"
	"dinehub/internal/pkg/guard"
)

var (
	ErrCreateRestaurantCommandIsNotConstructed = errors.New(
		"CreateRestaurantCommand must be created via NewCreateRestaurantCommand constructor",
	)
	ErrRestaurantNameIsRequired    = errors.New("name is required")
	ErrRestaurantAddressIsRequired = errors.New("address is required")
)

// CreateRestaurantCommand represents a request to list a new restaurant in
// the directory.
//
// Example:
//
//	cmd, err := NewCreateRestaurantCommand("Trattoria Sole", "1 Via Roma", "family kitchen")
//	if err != nil {
//	    return fmt.Errorf("invalid restaurant data: %w", err)
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create restaurant: %w", err)
//	}
type CreateRestaurantCommand struct { //nolint:recvcheck //using for validation
	restaurantID kernel.UUID
	name         string
	address      string
	description  string

	guard guard.ConstructorGuard
}

// NewCreateRestaurantCommand creates a command to list a new restaurant.
// Automatically generates a unique ID for the restaurant.
func NewCreateRestaurantCommand(name, address, description string) (CreateRestaurantCommand, error) {
	command := CreateRestaurantCommand{
		description: description,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setRestaurantID(kernel.NewUUID()),
		command.setName(name),
		command.setAddress(address),
	); err != nil {
		return CreateRestaurantCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateRestaurantCommand) Validate() error {
	return c.guard.Validate(ErrCreateRestaurantCommandIsNotConstructed)
}

// RestaurantID returns the generated restaurant ID.
func (c CreateRestaurantCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// Name returns the restaurant name from the command.
func (c CreateRestaurantCommand) Name() string {
	return c.name
}

// Address returns the restaurant address from the command.
func (c CreateRestaurantCommand) Address() string {
	return c.address
}

// Description returns the restaurant description from the command.
func (c CreateRestaurantCommand) Description() string {
	return c.description
}

func (c *CreateRestaurantCommand) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.restaurantID = id
	return nil
}

func (c *CreateRestaurantCommand) setName(name string) error {
	if name == "" {
		return ErrRestaurantNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateRestaurantCommand) setAddress(address string) error {
	if address == "" {
		return ErrRestaurantAddressIsRequired
	}

	c.address = address
	return nil
}
