package commands

import (
	"errors"

	"dinehub/internal/core/domain/model/kernel"
	"dinehub/internal/pkg/guard"
)

var (
	ErrCreateDishCommandIsNotConstructed = errors.New(
		"CreateDishCommand must be created via NewCreateDishCommand constructor",
	)
	ErrDishNameIsRequired = errors.New("name is required")
)

// CreateDishCommand represents a request to add a dish to a restaurant's menu.
type CreateDishCommand struct { //nolint:recvcheck //using for validation
	dishID       kernel.UUID
	restaurantID kernel.UUID
	name         string
	description  string
	priceCents   int

	guard guard.ConstructorGuard
}

// NewCreateDishCommand creates a command to add a dish to a menu.
// Automatically generates a unique ID for the dish. Price bounds are
// enforced by the dish aggregate itself at creation time.
func NewCreateDishCommand(
	restaurantID kernel.UUID,
	name, description string,
	priceCents int,
) (CreateDishCommand, error) {
	command := CreateDishCommand{
		description: description,
		priceCents:  priceCents,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDishID(kernel.NewUUID()),
		command.setRestaurantID(restaurantID),
		command.setName(name),
	); err != nil {
		return CreateDishCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDishCommand) Validate() error {
	return c.guard.Validate(ErrCreateDishCommandIsNotConstructed)
}

// DishID returns the generated dish ID.
func (c CreateDishCommand) DishID() kernel.UUID {
	return c.dishID
}

// RestaurantID returns the restaurant the dish is added to.
func (c CreateDishCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// Name returns the dish name from the command.
func (c CreateDishCommand) Name() string {
	return c.name
}

// Description returns the dish description from the command.
func (c CreateDishCommand) Description() string {
	return c.description
}

// PriceCents returns the dish price from the command.
func (c CreateDishCommand) PriceCents() int {
	return c.priceCents
}

func (c *CreateDishCommand) setDishID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.dishID = id
	return nil
}

func (c *CreateDishCommand) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.restaurantID = id
	return nil
}

func (c *CreateDishCommand) setName(name string) error {
	if name == "" {
		return ErrDishNameIsRequired
	}

	c.name = name
	return nil
}
