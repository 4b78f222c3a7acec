package postgres

import (
	"dinehub/internal/adapters/out/postgres/ownershiprepo"
	"dinehub/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// noopTracker satisfies the repositories' tracker dependency on read paths
// that never run inside a unit of work.
type noopTracker struct{}

func (noopTracker) TrackAggregate(_ kernel.UUID, _ any) {}

// NewReadOnlyOwnershipRepository returns an ownership repository bound to
// the base connection. Used by authorization checks that only read.
func NewReadOnlyOwnershipRepository(db *gorm.DB) *ownershiprepo.GormOwnershipRepository {
	return ownershiprepo.NewGormOwnershipRepository(db, noopTracker{})
}
