package commands

import (
	"context"
	"errors"
)

// ErrCannotRemovePrimaryOwner is returned when removing the primary owner of a
// restaurant that has no other owners. The flag must be transferred first.
var ErrCannotRemovePrimaryOwner = errors.New(
	"cannot remove the primary owner: transfer the primary flag to another owner first")

// RemoveOwnerCommandHandler removes an ownership relationship while
// preserving the invariant that a restaurant with at least one owner always
// keeps its primary: the sole remaining relationship, when primary, cannot be
// removed.
//
// Example:
//
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrCannotRemovePrimaryOwner):
//	    // transfer the primary flag first
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // no such relationship
//	}
type RemoveOwnerCommandHandler struct {
	uowFactory OwnershipUoWFactory
}

// NewRemoveOwnerCommandHandler creates a handler for owner removal.
func NewRemoveOwnerCommandHandler(uowFactory OwnershipUoWFactory) RemoveOwnerCommandHandler {
	return RemoveOwnerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the owner removal command.
// Fails with an object-not-found error when no relationship exists; with
// ErrCannotRemovePrimaryOwner when the relationship is the restaurant's sole
// primary. Failed removals leave all relationships untouched.
func (h RemoveOwnerCommandHandler) Handle(ctx context.Context, cmd RemoveOwnerCommand) error {
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

	if relationship.IsPrimary() {
		count, countErr := ownershipRepo.CountByRestaurant(ctx, cmd.RestaurantID())
		if countErr != nil {
			return countErr
		}
		if count <= 1 {
			return ErrCannotRemovePrimaryOwner
		}
	}

	if err = ownershipRepo.Delete(ctx, cmd.RestaurantID(), cmd.OwnerID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
