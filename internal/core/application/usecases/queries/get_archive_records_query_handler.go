package queries

import (
	"context"
	"strings"

	"dinehub/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetArchiveRecordsQueryHandler searches archived rows in the database.
// Builds the WHERE clause from the query's optional predicates and pages
// the result, newest deletions first.
//
// Example:
//
//	handler := NewGetArchiveRecordsQueryHandler(db)
//	query, _ := NewGetArchiveRecordsQuery(nil, nil, nil, nil, 0, 50)
//
//	records, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to search archive: %v", err)
//	    return err
//	}
//
//	fmt.Printf("Found %d records\n", len(records))
type GetArchiveRecordsQueryHandler struct {
	db *gorm.DB
}

// NewGetArchiveRecordsQueryHandler creates a handler for archive search queries.
// Requires a GORM database connection for query execution.
func NewGetArchiveRecordsQueryHandler(db *gorm.DB) GetArchiveRecordsQueryHandler {
	return GetArchiveRecordsQueryHandler{db: db}
}

// Handle executes the archive search.
// Predicates combine with AND; results are ordered by deleted_at descending.
func (h GetArchiveRecordsQueryHandler) Handle(
	ctx context.Context,
	query GetArchiveRecordsQuery,
) ([]GetArchiveRecordsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	conditions := make([]string, 0, 4)
	args := make([]any, 0, 6)

	if query.OriginalTable() != nil {
		conditions = append(conditions, "original_table = ?")
		args = append(args, *query.OriginalTable())
	}
	if query.OriginalID() != nil {
		conditions = append(conditions, "original_id = ?")
		args = append(args, query.OriginalID().String())
	}
	if query.DeletedBy() != nil {
		conditions = append(conditions, "deleted_by = ?")
		args = append(args, *query.DeletedBy())
	}
	if query.DeletedBefore() != nil {
		conditions = append(conditions, "deleted_at < ?")
		args = append(args, *query.DeletedBefore())
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}
	args = append(args, query.Limit(), query.Offset())

	records := make([]GetArchiveRecordsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			original_table,
			original_id,
			data,
			deleted_at,
			deleted_by,
			note
		FROM archive_records
		`+where+`
		ORDER BY deleted_at DESC
		LIMIT ? OFFSET ?
	`, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var record GetArchiveRecordsQueryResponse
		var id, originalID uuid.UUID
		var data []byte

		err = rows.Scan(
			&id,
			&record.OriginalTable,
			&originalID,
			&data,
			&record.DeletedAt,
			&record.DeletedBy,
			&record.Note,
		)
		if err != nil {
			return nil, err
		}

		recordID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		record.ID = recordID

		sourceID, idErr := kernel.UUIDFromBytes(originalID[:])
		if idErr != nil {
			return nil, idErr
		}
		record.OriginalID = sourceID
		record.Data = data
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
