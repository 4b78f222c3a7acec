package commands

import (
	"context"

	"dinehub/internal/core/domain/model/restaurant"
)

// CreateRestaurantCommandHandler handles the business logic for listing a
// new restaurant. Creates and persists the aggregate within a transaction.
type CreateRestaurantCommandHandler struct {
	uowFactory RestaurantUoWFactory
}

// NewCreateRestaurantCommandHandler creates a handler for restaurant creation.
func NewCreateRestaurantCommandHandler(uowFactory RestaurantUoWFactory) CreateRestaurantCommandHandler {
	return CreateRestaurantCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the restaurant creation command.
// Automatically rolls back on any error to prevent partial data.
func (h CreateRestaurantCommandHandler) Handle(ctx context.Context, cmd CreateRestaurantCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := restaurant.NewRestaurant(cmd.RestaurantID(), cmd.Name(), cmd.Address(), cmd.Description())
	if err != nil {
		return err
	}

	if err = uow.RestaurantRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
