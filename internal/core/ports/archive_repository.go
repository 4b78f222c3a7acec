package ports

import (
	"context"
	"time"

	"dinehub/internal/core/domain/model/archive"
	"dinehub/internal/core/domain/model/kernel"
)

// ArchiveFilter is a typed query specification for archive records.
// Only the predicates the archive supports are expressible; nil fields
// are ignored. This replaces free-form attribute-name filter maps so
// field names are checked at compile time.
type ArchiveFilter struct {
	// OriginalTable restricts results to snapshots taken from one live table.
	OriginalTable string
	// OriginalID restricts results to snapshots of one aggregate.
	OriginalID *kernel.UUID
	// DeletedBy restricts results to deletions requested by one actor.
	DeletedBy *string
	// DeletedBefore restricts results to deletions older than the given instant.
	DeletedBefore *time.Time
}

// IsEmpty reports whether the filter constrains nothing.
func (f ArchiveFilter) IsEmpty() bool {
	return f.OriginalTable == "" && f.OriginalID == nil && f.DeletedBy == nil && f.DeletedBefore == nil
}

// ArchiveRepository defines the persistence contract for deletion snapshots.
// The archive is append-only: records are written once by the archive-first
// deletion protocol and never updated. HardDelete exists solely for the
// administrative purge.
type ArchiveRepository interface {
	// Add persists a new archive record.
	Add(ctx context.Context, record *archive.Record) error

	// Get retrieves an archive record by its own identifier.
	// Returns an object-not-found error if no record exists with the id.
	Get(ctx context.Context, id kernel.UUID) (*archive.Record, error)

	// Find retrieves records matching the filter, newest deletions first.
	Find(ctx context.Context, filter ArchiveFilter, offset, limit int) ([]*archive.Record, error)

	// HardDelete permanently removes all records matching the filter and
	// returns how many were removed. Refuses an empty filter.
	HardDelete(ctx context.Context, filter ArchiveFilter) (int64, error)
}
