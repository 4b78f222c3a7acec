// Package ownershiprepo provides data transfer objects and mapping functions
// for ownership-relationship persistence.
//
// The (restaurant_id, owner_id) pair is the composite primary key, so the
// uniqueness of a relationship per pair is enforced by the store itself. The
// at-most-one-primary invariant is backed by a partial unique index declared
// in the postgres package's Migrate.
package ownershiprepo

import (
	"time"

	"dinehub/internal/core/domain/model/kernel"
	"dinehub/internal/core/domain/model/ownership"

	"github.com/google/uuid"
)

// RelationshipDTO represents the database structure for persisting ownership relationships.
type RelationshipDTO struct {
	RestaurantID uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID      uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	Role         string    `gorm:"type:varchar(32);not null"`
	IsPrimary    bool      `gorm:"not null;default:false"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
	CreatedBy    uuid.UUID `gorm:"type:uuid;not null"`
	UpdatedBy    uuid.UUID `gorm:"type:uuid;not null"`
}

// TableName specifies the database table name for ownership relationships.
func (RelationshipDTO) TableName() string {
	return "ownership_relationships"
}

// fromDomain converts a relationship domain aggregate to its database representation.
func fromDomain(rel *ownership.Relationship) RelationshipDTO {
	return RelationshipDTO{
		RestaurantID: rel.RestaurantID().Bytes(),
		OwnerID:      rel.OwnerID().Bytes(),
		Role:         rel.Role().String(),
		IsPrimary:    rel.IsPrimary(),
		CreatedAt:    rel.CreatedAt(),
		UpdatedAt:    rel.UpdatedAt(),
		CreatedBy:    rel.CreatedBy().Bytes(),
		UpdatedBy:    rel.UpdatedBy().Bytes(),
	}
}

// toDomain converts a database DTO to a relationship domain aggregate.
func toDomain(dto RelationshipDTO) (*ownership.Relationship, error) {
	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	role, err := ownership.RoleFromString(dto.Role)
	if err != nil {
		return nil, err
	}

	createdBy, err := kernel.UUIDFromBytes(dto.CreatedBy[:])
	if err != nil {
		return nil, err
	}

	updatedBy, err := kernel.UUIDFromBytes(dto.UpdatedBy[:])
	if err != nil {
		return nil, err
	}

	return ownership.RestoreRelationship(
		restaurantID,
		ownerID,
		role,
		dto.IsPrimary,
		dto.CreatedAt,
		dto.UpdatedAt,
		createdBy,
		updatedBy,
	)
}
