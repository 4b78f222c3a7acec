// Package archiverepo provides data transfer objects and mapping functions
// for archive-record persistence. The archive table is append-only: rows are
// inserted by the archive-first deletion protocol and only ever removed by
// the administrative purge.
package archiverepo

import (
	"encoding/json"
	"time"

	"dinehub/internal/core/domain/model/archive"
	"dinehub/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// RecordDTO represents the database structure for persisting deletion snapshots.
// The snapshot payload is stored as JSONB so archived state stays queryable.
type RecordDTO struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey"`
	OriginalTable string         `gorm:"type:varchar(64);not null;index:idx_archive_origin"`
	OriginalID    uuid.UUID      `gorm:"type:uuid;not null;index:idx_archive_origin"`
	Data          datatypes.JSON `gorm:"not null"`
	DeletedAt     time.Time      `gorm:"not null;index"`
	DeletedBy     *string        `gorm:"type:varchar(255)"`
	Note          *string        `gorm:"type:text"`
}

// TableName specifies the database table name for archive records.
func (RecordDTO) TableName() string {
	return "archive_records"
}

// fromDomain converts an archive record to its database representation.
func fromDomain(record *archive.Record) RecordDTO {
	return RecordDTO{
		ID:            record.ID().Bytes(),
		OriginalTable: record.OriginalTable(),
		OriginalID:    record.OriginalID().Bytes(),
		Data:          datatypes.JSON(record.Data()),
		DeletedAt:     record.DeletedAt(),
		DeletedBy:     record.DeletedBy(),
		Note:          record.Note(),
	}
}

// toDomain converts a database DTO to an archive record.
func toDomain(dto RecordDTO) (*archive.Record, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	originalID, err := kernel.UUIDFromBytes(dto.OriginalID[:])
	if err != nil {
		return nil, err
	}

	return archive.RestoreRecord(
		id,
		dto.OriginalTable,
		originalID,
		json.RawMessage(dto.Data),
		dto.DeletedAt,
		dto.DeletedBy,
		dto.Note,
	)
}
