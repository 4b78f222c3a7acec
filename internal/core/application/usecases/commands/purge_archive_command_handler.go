package commands

import (
	"context"
)

// PurgeArchiveCommandHandler permanently deletes archive records matching
// the command filter. It is the retention path: the archive is append-only
// for everyone else, and even here the filter is mandatory.
type PurgeArchiveCommandHandler struct {
	uowFactory ArchiveUoWFactory
}

// NewPurgeArchiveCommandHandler creates a handler for archive purging.
func NewPurgeArchiveCommandHandler(uowFactory ArchiveUoWFactory) PurgeArchiveCommandHandler {
	return PurgeArchiveCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the purge command and reports how many records were
// removed.
func (h PurgeArchiveCommandHandler) Handle(ctx context.Context, cmd PurgeArchiveCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	removed, err := uow.ArchiveRepository().HardDelete(ctx, cmd.Filter())
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return removed, nil
}
