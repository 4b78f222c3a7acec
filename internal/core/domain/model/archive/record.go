package archive

import (
	"encoding/json"
	"errors"
	"time"

	"dinehub/internal/core/domain/model/kernel"
	"dinehub/internal/pkg/errs"
	"dinehub/internal/pkg/guard"
)

// Domain errors for archive records.
var (
	// ErrOriginalTableIsRequired is returned when a record is created without a source table name.
	ErrOriginalTableIsRequired = errs.NewValueIsRequiredError("originalTable")
	// ErrDataIsRequired is returned when a record is created without a snapshot payload.
	ErrDataIsRequired = errs.NewValueIsRequiredError("data")
	// ErrRecordIsNotConstructed is returned when using an improperly initialized Record.
	ErrRecordIsNotConstructed = errors.New("Record must be created via NewRecord or RestoreRecord")
)

// Record is a deletion snapshot: the full state of an aggregate captured at
// the moment it was removed from its live table.
//
// Records are immutable once written and conceptually append-only. The only
// mutation the system ever performs on the archive is the administrative
// purge (hard delete); normal flow never updates a record. Exactly one
// record is produced per successful archive-first deletion.
type Record struct {
	id            kernel.UUID
	originalTable string
	originalID    kernel.UUID
	data          json.RawMessage
	deletedAt     time.Time
	deletedBy     *string
	note          *string

	guard guard.ConstructorGuard
}

// NewRecord captures a deletion snapshot.
// originalTable names the live table the aggregate is removed from,
// originalID is the aggregate's identifier, and data is its full state
// serialized at delete time. deletedBy and note are optional audit fields.
// The deletion timestamp is set to the current UTC time.
func NewRecord(
	id kernel.UUID,
	originalTable string,
	originalID kernel.UUID,
	data json.RawMessage,
	deletedBy *string,
	note *string,
) (*Record, error) {
	record := &Record{
		deletedAt: time.Now().UTC(),
		deletedBy: deletedBy,
		note:      note,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		record.setID(id),
		record.setOriginalTable(originalTable),
		record.setOriginalID(originalID),
		record.setData(data),
	); err != nil {
		return nil, err
	}

	return record, nil
}

// RestoreRecord reconstructs a record from persistent storage.
func RestoreRecord(
	id kernel.UUID,
	originalTable string,
	originalID kernel.UUID,
	data json.RawMessage,
	deletedAt time.Time,
	deletedBy *string,
	note *string,
) (*Record, error) {
	record := &Record{
		deletedAt: deletedAt,
		deletedBy: deletedBy,
		note:      note,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		record.setID(id),
		record.setOriginalTable(originalTable),
		record.setOriginalID(originalID),
		record.setData(data),
	); err != nil {
		return nil, err
	}

	return record, nil
}

// Validate ensures the record was created through a constructor.
func (r *Record) Validate() error {
	return r.guard.Validate(ErrRecordIsNotConstructed)
}

// ID returns the record's own identifier.
func (r *Record) ID() kernel.UUID {
	return r.id
}

// OriginalTable returns the name of the live table the snapshot came from.
func (r *Record) OriginalTable() string {
	return r.originalTable
}

// OriginalID returns the identifier of the deleted aggregate.
func (r *Record) OriginalID() kernel.UUID {
	return r.originalID
}

// Data returns the serialized snapshot of the deleted aggregate.
func (r *Record) Data() json.RawMessage {
	return r.data
}

// DeletedAt returns when the deletion happened.
func (r *Record) DeletedAt() time.Time {
	return r.deletedAt
}

// DeletedBy returns who requested the deletion, if recorded.
func (r *Record) DeletedBy() *string {
	return r.deletedBy
}

// Note returns the caller-supplied deletion note, if any.
func (r *Record) Note() *string {
	return r.note
}

// IsEqual compares two records by identifier.
func (r *Record) IsEqual(other *Record) bool {
	if other == nil {
		return false
	}
	return r.id.IsEqual(other.id)
}

func (r *Record) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	r.id = id
	return nil
}

func (r *Record) setOriginalTable(table string) error {
	if table == "" {
		return ErrOriginalTableIsRequired
	}

	r.originalTable = table
	return nil
}

func (r *Record) setOriginalID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	r.originalID = id
	return nil
}

func (r *Record) setData(data json.RawMessage) error {
	if len(data) == 0 {
		return ErrDataIsRequired
	}

	r.data = data
	return nil
}
