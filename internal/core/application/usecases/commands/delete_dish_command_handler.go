package commands

import (
	"context"

	"dinehub/internal/core/domain/model/archive"
	"dinehub/internal/core/domain/model/dish"
	"dinehub/internal/core/domain/model/kernel"
)

// DeleteDishCommandHandler performs the archive-first deletion of a dish.
// Same protocol as restaurant deletion: fetch, snapshot, archive write and
// live-row delete in one transaction.
type DeleteDishCommandHandler struct {
	uowFactory DishArchiveUoWFactory
}

// NewDeleteDishCommandHandler creates a handler for dish deletion.
func NewDeleteDishCommandHandler(uowFactory DishArchiveUoWFactory) DeleteDishCommandHandler {
	return DeleteDishCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the dish deletion command.
func (h DeleteDishCommandHandler) Handle(ctx context.Context, cmd DeleteDishCommand) error {
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

	dishRepo := uow.DishRepository()

	aggregate, err := dishRepo.Get(ctx, cmd.DishID())
	if err != nil {
		return err
	}

	snapshot, err := aggregate.Snapshot()
	if err != nil {
		return err
	}

	record, err := archive.NewRecord(
		kernel.NewUUID(),
		dish.StoreName,
		cmd.DishID(),
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

	if err = dishRepo.Delete(ctx, cmd.DishID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
