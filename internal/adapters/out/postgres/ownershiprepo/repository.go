package ownershiprepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dinehub/internal/core/domain/model/kernel"
	"dinehub/internal/core/domain/model/ownership"
	"dinehub/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOwnershipRepository implements OwnershipRepository using GORM.
type GormOwnershipRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOwnershipRepository creates a new GORM ownership repository.
func NewGormOwnershipRepository(db *gorm.DB, tracker aggregateTracker) *GormOwnershipRepository {
	return &GormOwnershipRepository{
		db:      db,
		tracker: tracker,
	}
}

// pairID renders the composite identity for error messages.
func pairID(restaurantID, ownerID kernel.UUID) string {
	return fmt.Sprintf("%s/%s", restaurantID, ownerID)
}

// Add saves a new relationship to the database.
// A duplicate (restaurant, owner) pair — whether it slipped past a pre-write
// existence check or not — surfaces as an object-already-exists error, so
// both detection paths look identical to callers.
func (r *GormOwnershipRepository) Add(ctx context.Context, rel *ownership.Relationship) error {
	if err := rel.Validate(); err != nil {
		return err
	}

	dto := fromDomain(rel)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsErrorWithCause(
				"ownership", pairID(rel.RestaurantID(), rel.OwnerID()), err)
		}
		return err
	}

	r.tracker.TrackAggregate(rel.RestaurantID(), rel)
	return nil
}

// Update saves an existing relationship to the database.
func (r *GormOwnershipRepository) Update(ctx context.Context, rel *ownership.Relationship) error {
	if err := rel.Validate(); err != nil {
		return err
	}

	dto := fromDomain(rel)

	result := r.db.WithContext(ctx).Save(&dto)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsErrorWithCause(
				"ownership", pairID(rel.RestaurantID(), rel.OwnerID()), result.Error)
		}
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("ownership", pairID(rel.RestaurantID(), rel.OwnerID()))
	}

	r.tracker.TrackAggregate(rel.RestaurantID(), rel)
	return nil
}

// Delete removes the relationship for the (restaurant, owner) pair.
func (r *GormOwnershipRepository) Delete(ctx context.Context, restaurantID, ownerID kernel.UUID) error {
	if err := errors.Join(restaurantID.Validate(), ownerID.Validate()); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Where("restaurant_id = ? AND owner_id = ?", restaurantID.Bytes(), ownerID.Bytes()).
		Delete(&RelationshipDTO{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("ownership", pairID(restaurantID, ownerID))
	}

	return nil
}

// GetByIDs retrieves the relationship for the (restaurant, owner) pair.
func (r *GormOwnershipRepository) GetByIDs(
	ctx context.Context,
	restaurantID, ownerID kernel.UUID,
) (*ownership.Relationship, error) {
	if err := errors.Join(restaurantID.Validate(), ownerID.Validate()); err != nil {
		return nil, err
	}

	var dto RelationshipDTO
	if err := r.db.WithContext(ctx).
		First(&dto, "restaurant_id = ? AND owner_id = ?", restaurantID.Bytes(), ownerID.Bytes()).
		Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("ownership", pairID(restaurantID, ownerID))
		}
		return nil, err
	}

	return toDomain(dto)
}

// ListByRestaurant retrieves all relationships of a restaurant.
func (r *GormOwnershipRepository) ListByRestaurant(
	ctx context.Context,
	restaurantID kernel.UUID,
) ([]*ownership.Relationship, error) {
	if err := restaurantID.Validate(); err != nil {
		return nil, err
	}

	var dtos []RelationshipDTO
	if err := r.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID.Bytes()).
		Order("created_at").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// ListByOwner retrieves all relationships a user holds across restaurants.
func (r *GormOwnershipRepository) ListByOwner(
	ctx context.Context,
	ownerID kernel.UUID,
) ([]*ownership.Relationship, error) {
	if err := ownerID.Validate(); err != nil {
		return nil, err
	}

	var dtos []RelationshipDTO
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID.Bytes()).
		Order("created_at").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetPrimaryOwner retrieves the relationship flagged primary for a restaurant.
func (r *GormOwnershipRepository) GetPrimaryOwner(
	ctx context.Context,
	restaurantID kernel.UUID,
) (*ownership.Relationship, error) {
	if err := restaurantID.Validate(); err != nil {
		return nil, err
	}

	var dto RelationshipDTO
	if err := r.db.WithContext(ctx).
		First(&dto, "restaurant_id = ? AND is_primary", restaurantID.Bytes()).
		Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("primaryOwner", restaurantID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// IsOwnerOfRestaurant reports whether any relationship exists for the pair.
func (r *GormOwnershipRepository) IsOwnerOfRestaurant(
	ctx context.Context,
	restaurantID, ownerID kernel.UUID,
) (bool, error) {
	if err := errors.Join(restaurantID.Validate(), ownerID.Validate()); err != nil {
		return false, err
	}

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&RelationshipDTO{}).
		Where("restaurant_id = ? AND owner_id = ?", restaurantID.Bytes(), ownerID.Bytes()).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

// CountByRestaurant returns the number of relationships a restaurant has.
func (r *GormOwnershipRepository) CountByRestaurant(
	ctx context.Context,
	restaurantID kernel.UUID,
) (int64, error) {
	if err := restaurantID.Validate(); err != nil {
		return 0, err
	}

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&RelationshipDTO{}).
		Where("restaurant_id = ?", restaurantID.Bytes()).
		Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}

// UnsetPrimaryOwner clears the primary flag on every relationship of the
// restaurant. Meant to run inside a unit of work right before the write that
// sets the flag on another relationship.
func (r *GormOwnershipRepository) UnsetPrimaryOwner(ctx context.Context, restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Model(&RelationshipDTO{}).
		Where("restaurant_id = ? AND is_primary", restaurantID.Bytes()).
		Updates(map[string]any{
			"is_primary": false,
			"updated_at": time.Now().UTC(),
		}).Error
}

// LockRestaurantRelationships takes FOR UPDATE row locks on all relationships
// of the restaurant, serializing concurrent primary-flag flips for the
// duration of the enclosing transaction.
func (r *GormOwnershipRepository) LockRestaurantRelationships(ctx context.Context, restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	var dtos []RelationshipDTO
	return r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("restaurant_id = ?", restaurantID.Bytes()).
		Find(&dtos).Error
}

// toDomainSlice converts a slice of DTOs to domain relationships.
func toDomainSlice(dtos []RelationshipDTO) ([]*ownership.Relationship, error) {
	relationships := make([]*ownership.Relationship, 0, len(dtos))
	for _, dto := range dtos {
		rel, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		relationships = append(relationships, rel)
	}

	return relationships, nil
}
