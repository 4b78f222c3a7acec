package commands

import (
	"context"

	"dinehub/internal/core/domain/model/archive"
	"dinehub/internal/core/domain/model/kernel"
	"dinehub/internal/core/domain/model/restaurant"
)

// DeleteRestaurantCommandHandler performs the archive-first deletion of a
// restaurant: fetch, snapshot, archive write and live-row delete, committed
// as one unit. If any step fails nothing becomes visible — there is no state
// in which the restaurant is gone but unarchived, or archived but still live.
//
// Example:
//
//	handler := NewDeleteRestaurantCommandHandler(uowFactory)
//	cmd, _ := NewDeleteRestaurantCommand(id, "admin1", "closed")
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    if errors.Is(err, errs.ErrObjectNotFound) {
//	        // nothing was deleted and nothing was archived
//	    }
//	    return err
//	}
type DeleteRestaurantCommandHandler struct {
	uowFactory RestaurantArchiveUoWFactory
}

// NewDeleteRestaurantCommandHandler creates a handler for restaurant deletion.
func NewDeleteRestaurantCommandHandler(uowFactory RestaurantArchiveUoWFactory) DeleteRestaurantCommandHandler {
	return DeleteRestaurantCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the restaurant deletion command.
// The lookup failing with not-found short-circuits before any write; every
// later failure aborts the transaction, rolling back archive row and delete
// together.
func (h DeleteRestaurantCommandHandler) Handle(ctx context.Context, cmd DeleteRestaurantCommand) error {
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

	restaurantRepo := uow.RestaurantRepository()

	aggregate, err := restaurantRepo.Get(ctx, cmd.RestaurantID())
	if err != nil {
		return err
	}

	snapshot, err := aggregate.Snapshot()
	if err != nil {
		return err
	}

	record, err := archive.NewRecord(
		kernel.NewUUID(),
		restaurant.StoreName,
		cmd.RestaurantID(),
		snapshot,
		cmd.DeletedBy(),
		cmd.Note(),
	)
	if err != nil {
		return err
	}

	if err = uow.ArchiveRepository().Add(ctx, record); err != nil {
		return err
	}

	if err = restaurantRepo.Delete(ctx, cmd.RestaurantID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
