package commands

import (
	"context"
	"errors"

	"dinehub/internal/pkg/errs"
)

// ErrOwnerNotAssigned is returned when the target of a primary transfer has
// no relationship with the restaurant.
var ErrOwnerNotAssigned = errors.New("owner is not assigned to the restaurant")

// TransferPrimaryOwnerCommandHandler moves the primary flag onto another
// existing owner of the restaurant. The clear on the current primary and the
// set on the new one commit together in one unit of work; the restaurant's
// relationship rows are locked for the duration so concurrent flips
// serialize.
//
// Example:
//
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, ErrOwnerNotAssigned) {
//	    // assign the user to the restaurant before transferring
//	}
type TransferPrimaryOwnerCommandHandler struct {
	uowFactory OwnershipUoWFactory
}

// NewTransferPrimaryOwnerCommandHandler creates a handler for primary transfers.
func NewTransferPrimaryOwnerCommandHandler(uowFactory OwnershipUoWFactory) TransferPrimaryOwnerCommandHandler {
	return TransferPrimaryOwnerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the primary transfer command.
// Fails with ErrOwnerNotAssigned when the new owner has no relationship with
// the restaurant; in that case all relationships are left unchanged.
func (h TransferPrimaryOwnerCommandHandler) Handle(ctx context.Context, cmd TransferPrimaryOwnerCommand) error {
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

	if err := ownershipRepo.LockRestaurantRelationships(ctx, cmd.RestaurantID()); err != nil {
		return err
	}

	relationship, err := ownershipRepo.GetByIDs(ctx, cmd.RestaurantID(), cmd.NewOwnerID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ErrOwnerNotAssigned
		}
		return err
	}

	if err = ownershipRepo.UnsetPrimaryOwner(ctx, cmd.RestaurantID()); err != nil {
		return err
	}

	if err = relationship.MarkPrimary(cmd.ActorID()); err != nil {
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
