package commands

import (
	"context"
)

// UpdateOwnerRoleCommandHandler changes the role on an existing ownership
// relationship, leaving the primary flag untouched.
type UpdateOwnerRoleCommandHandler struct {
	uowFactory OwnershipUoWFactory
}

// NewUpdateOwnerRoleCommandHandler creates a handler for role updates.
func NewUpdateOwnerRoleCommandHandler(uowFactory OwnershipUoWFactory) UpdateOwnerRoleCommandHandler {
	return UpdateOwnerRoleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the role update command.
// Fails with an object-not-found error when no relationship exists for the pair.
func (h UpdateOwnerRoleCommandHandler) Handle(ctx context.Context, cmd UpdateOwnerRoleCommand) error {
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

	ownershipRepo := uow.OwnershipRepository()

	relationship, err := ownershipRepo.GetByIDs(ctx, cmd.RestaurantID(), cmd.OwnerID())
	if err != nil {
		return err
	}

	if err = relationship.ChangeRole(cmd.Role(), cmd.ActorID()); err != nil {
		return err
	}

	if err = ownershipRepo.Update(ctx, relationship); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
