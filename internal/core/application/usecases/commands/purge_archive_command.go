package commands

import (
	"errors"

	"dinehub/internal/core/ports"
	"dinehub/internal/pkg/errs"
	"dinehub/internal/pkg/guard"
)

var (
	ErrPurgeArchiveCommandIsNotConstructed = errors.New(
		"PurgeArchiveCommand must be created via NewPurgeArchiveCommand constructor",
	)
	// ErrPurgeFilterIsRequired is returned when a purge is requested without
	// any predicate; wiping the whole archive takes an explicit filter.
	ErrPurgeFilterIsRequired = errs.NewValueIsRequiredError("filter")
)

// PurgeArchiveCommand represents an administrative request to permanently
// remove archive records matching a filter. This is the only mutation the
// append-only archive ever sees.
type PurgeArchiveCommand struct { //nolint:recvcheck //using for validation
	filter ports.ArchiveFilter

	guard guard.ConstructorGuard
}

// NewPurgeArchiveCommand creates a purge command. An empty filter is refused.
func NewPurgeArchiveCommand(filter ports.ArchiveFilter) (PurgeArchiveCommand, error) {
	if filter.IsEmpty() {
		return PurgeArchiveCommand{}, ErrPurgeFilterIsRequired
	}

	return PurgeArchiveCommand{
		filter: filter,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c PurgeArchiveCommand) Validate() error {
	return c.guard.Validate(ErrPurgeArchiveCommandIsNotConstructed)
}

// Filter returns the purge predicate.
func (c PurgeArchiveCommand) Filter() ports.ArchiveFilter {
	return c.filter
}
