package queries

import (
	"encoding/json"
	"errors"
	"math"
	"time"

	"dinehub/internal/core/domain/model/kernel"
	"dinehub/internal/pkg/errs"
	"dinehub/internal/pkg/guard"
)

var (
	ErrGetArchiveRecordsQueryIsNotConstructed = errors.New(
		"GetArchiveRecordsQuery must be created via NewGetArchiveRecordsQuery constructor",
	)
)

const maxArchivePageSize = 500

// GetArchiveRecordsQuery searches the archive. All predicates are optional
// and combine with AND; an unfiltered query pages through the whole archive,
// newest deletions first.
//
// Example:
//
//	table := "restaurants"
//	query, err := NewGetArchiveRecordsQuery(&table, nil, nil, nil, 0, 50)
//	if err != nil {
//	    return err
//	}
//	handler := NewGetArchiveRecordsQueryHandler(db)
//
//	records, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to search archive: %w", err)
//	}
type GetArchiveRecordsQuery struct {
	originalTable *string
	originalID    *kernel.UUID
	deletedBy     *string
	deletedBefore *time.Time
	offset        int
	limit         int

	guard guard.ConstructorGuard
}

// NewGetArchiveRecordsQuery creates an archive search query. Nil predicates
// are skipped. A non-positive limit falls back to the maximum page size.
func NewGetArchiveRecordsQuery(
	originalTable *string,
	originalID *kernel.UUID,
	deletedBy *string,
	deletedBefore *time.Time,
	offset int,
	limit int,
) (GetArchiveRecordsQuery, error) {
	if offset < 0 {
		return GetArchiveRecordsQuery{}, errs.NewValueIsOutOfRangeError("offset", offset, 0, math.MaxInt)
	}
	if limit <= 0 || limit > maxArchivePageSize {
		limit = maxArchivePageSize
	}

	return GetArchiveRecordsQuery{
		originalTable: originalTable,
		originalID:    originalID,
		deletedBy:     deletedBy,
		deletedBefore: deletedBefore,
		offset:        offset,
		limit:         limit,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetArchiveRecordsQueryIsNotConstructed if validation fails.
func (q GetArchiveRecordsQuery) Validate() error {
	return q.guard.Validate(ErrGetArchiveRecordsQueryIsNotConstructed)
}

// OriginalTable returns the source table predicate, nil when unset.
func (q GetArchiveRecordsQuery) OriginalTable() *string {
	return q.originalTable
}

// OriginalID returns the source row predicate, nil when unset.
func (q GetArchiveRecordsQuery) OriginalID() *kernel.UUID {
	return q.originalID
}

// DeletedBy returns the actor predicate, nil when unset.
func (q GetArchiveRecordsQuery) DeletedBy() *string {
	return q.deletedBy
}

// DeletedBefore returns the deletion time upper bound, nil when unset.
func (q GetArchiveRecordsQuery) DeletedBefore() *time.Time {
	return q.deletedBefore
}

// Offset returns the number of records to skip.
func (q GetArchiveRecordsQuery) Offset() int {
	return q.offset
}

// Limit returns the page size.
func (q GetArchiveRecordsQuery) Limit() int {
	return q.limit
}

// GetArchiveRecordsQueryResponse represents one archived row in the read
// model. Data carries the snapshot exactly as it was captured at deletion.
type GetArchiveRecordsQueryResponse struct {
	ID            kernel.UUID
	OriginalTable string
	OriginalID    kernel.UUID
	Data          json.RawMessage
	DeletedAt     time.Time
	DeletedBy     *string
	Note          *string
}
