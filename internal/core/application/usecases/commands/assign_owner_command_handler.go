package commands

import (
	"context"
	"errors"

	"dinehub/internal/core/domain/model/ownership"
	"dinehub/internal/pkg/errs"
)

// AssignOwnerCommandHandler links a user to a restaurant while keeping the
// per-restaurant ownership invariants intact.
//
// Assigning with the primary flag runs as clear-then-set inside one
// transaction: every existing relationship of the restaurant loses the flag
// before the new one is inserted with it, so at most one primary exists at
// commit. The restaurant's relationship rows are locked first to serialize
// concurrent flips; a racing insert that slips through still trips the
// store's partial unique index and the pair's uniqueness surfaces as
// object-already-exists either way.
type AssignOwnerCommandHandler struct {
	uowFactory OwnershipUoWFactory
}

// NewAssignOwnerCommandHandler creates a handler for owner assignment.
func NewAssignOwnerCommandHandler(uowFactory OwnershipUoWFactory) AssignOwnerCommandHandler {
	return AssignOwnerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the owner assignment command.
// Fails with an object-already-exists error when a relationship for the
// (restaurant, owner) pair is already present.
func (h AssignOwnerCommandHandler) Handle(ctx context.Context, cmd AssignOwnerCommand) error {
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

	_, err := ownershipRepo.GetByIDs(ctx, cmd.RestaurantID(), cmd.OwnerID())
	if err == nil {
		return errs.NewObjectAlreadyExistsError(
			"ownership", cmd.RestaurantID().String()+"/"+cmd.OwnerID().String())
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	relationship, err := ownership.NewRelationship(
		cmd.RestaurantID(),
		cmd.OwnerID(),
		cmd.Role(),
		cmd.IsPrimary(),
		cmd.ActorID(),
	)
	if err != nil {
		return err
	}

	if cmd.IsPrimary() {
		if err = ownershipRepo.LockRestaurantRelationships(ctx, cmd.RestaurantID()); err != nil {
			return err
		}
		if err = ownershipRepo.UnsetPrimaryOwner(ctx, cmd.RestaurantID()); err != nil {
			return err
		}
	}

	if err = ownershipRepo.Add(ctx, relationship); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
