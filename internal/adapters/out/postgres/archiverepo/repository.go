package archiverepo

import (
	"context"
	"errors"

	"dinehub/internal/core/domain/model/archive"
	"dinehub/internal/core/domain/model/kernel"
	"dinehub/internal/core/ports"
	"dinehub/internal/pkg/errs"

	"gorm.io/gorm"
)

// ErrEmptyFilter is returned when a hard delete is attempted without any predicate.
var ErrEmptyFilter = errs.NewValueIsRequiredError("filter")

// GormArchiveRepository implements ArchiveRepository using GORM.
type GormArchiveRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormArchiveRepository creates a new GORM archive repository.
func NewGormArchiveRepository(db *gorm.DB, tracker aggregateTracker) *GormArchiveRepository {
	return &GormArchiveRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new archive record. Records are written exactly once per
// successful archive-first deletion and never updated afterwards.
func (r *GormArchiveRepository) Add(ctx context.Context, record *archive.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := fromDomain(record)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsErrorWithCause("archiveRecord", record.ID().String(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(record.ID(), record)
	return nil
}

// Get retrieves an archive record by its own identifier.
func (r *GormArchiveRepository) Get(ctx context.Context, id kernel.UUID) (*archive.Record, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RecordDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("archiveRecord", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Find retrieves records matching the filter, newest deletions first.
func (r *GormArchiveRepository) Find(
	ctx context.Context,
	filter ports.ArchiveFilter,
	offset, limit int,
) ([]*archive.Record, error) {
	query := applyFilter(r.db.WithContext(ctx).Model(&RecordDTO{}), filter).
		Order("deleted_at DESC")

	if offset > 0 {
		query = query.Offset(offset)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var dtos []RecordDTO
	if err := query.Find(&dtos).Error; err != nil {
		return nil, err
	}

	records := make([]*archive.Record, 0, len(dtos))
	for _, dto := range dtos {
		record, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}

// HardDelete permanently removes all records matching the filter and returns
// how many were removed. An empty filter is refused rather than wiping the
// whole archive.
func (r *GormArchiveRepository) HardDelete(ctx context.Context, filter ports.ArchiveFilter) (int64, error) {
	if filter.IsEmpty() {
		return 0, ErrEmptyFilter
	}

	result := applyFilter(r.db.WithContext(ctx), filter).Delete(&RecordDTO{})
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}

// applyFilter translates the typed filter spec into WHERE predicates.
// Only the predicates the filter type enumerates are expressible.
func applyFilter(db *gorm.DB, filter ports.ArchiveFilter) *gorm.DB {
	if filter.OriginalTable != "" {
		db = db.Where("original_table = ?", filter.OriginalTable)
	}
	if filter.OriginalID != nil {
		db = db.Where("original_id = ?", filter.OriginalID.Bytes())
	}
	if filter.DeletedBy != nil {
		db = db.Where("deleted_by = ?", *filter.DeletedBy)
	}
	if filter.DeletedBefore != nil {
		db = db.Where("deleted_at < ?", *filter.DeletedBefore)
	}
	return db
}
