package commands

import (
	"context"

	"dinehub/internal/core/domain/model/dish"
)

// CreateDishCommandHandler handles the business logic for adding a dish to a
// restaurant's menu. Verifies the restaurant exists before persisting.
type CreateDishCommandHandler struct {
	uowFactory DishUoWFactory
}

// NewCreateDishCommandHandler creates a handler for dish creation.
func NewCreateDishCommandHandler(uowFactory DishUoWFactory) CreateDishCommandHandler {
	return CreateDishCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the dish creation command.
// Fails with an object-not-found error when the target restaurant does not exist.
func (h CreateDishCommandHandler) Handle(ctx context.Context, cmd CreateDishCommand) error {
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

	if _, err := uow.RestaurantRepository().Get(ctx, cmd.RestaurantID()); err != nil {
		return err
	}

	aggregate, err := dish.NewDish(
		cmd.DishID(),
		cmd.RestaurantID(),
		cmd.Name(),
		cmd.Description(),
		cmd.PriceCents(),
	)
	if err != nil {
		return err
	}

	if err = uow.DishRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
