package commands_test

import (
	"context"

	"dinehub/internal/core/application/usecases/commands"
	"dinehub/internal/core/domain/model/archive"
	"dinehub/internal/core/domain/model/dish"
	"dinehub/internal/core/domain/model/kernel"
	"dinehub/internal/core/domain/model/ownership"
	"dinehub/internal/core/domain/model/restaurant"
	"dinehub/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

// Shared mocks for the command handler tests. One MockUnitOfWork satisfies
// every narrow unit of work interface in the package, so each test wires
// only the repositories its use case touches.

type MockRestaurantRepository struct{ mock.Mock }

func (m *MockRestaurantRepository) Add(ctx context.Context, aggregate *restaurant.Restaurant) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockRestaurantRepository) Update(ctx context.Context, aggregate *restaurant.Restaurant) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockRestaurantRepository) Get(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*restaurant.Restaurant), args.Error(1)
}

func (m *MockRestaurantRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockDishRepository struct{ mock.Mock }

func (m *MockDishRepository) Add(ctx context.Context, aggregate *dish.Dish) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockDishRepository) Update(ctx context.Context, aggregate *dish.Dish) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockDishRepository) Get(ctx context.Context, id kernel.UUID) (*dish.Dish, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dish.Dish), args.Error(1)
}

func (m *MockDishRepository) ListByRestaurant(ctx context.Context, restaurantID kernel.UUID) ([]*dish.Dish, error) {
	args := m.Called(ctx, restaurantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*dish.Dish), args.Error(1)
}

func (m *MockDishRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockOwnershipRepository struct{ mock.Mock }

func (m *MockOwnershipRepository) Add(ctx context.Context, relationship *ownership.Relationship) error {
	args := m.Called(ctx, relationship)
	return args.Error(0)
}

func (m *MockOwnershipRepository) Update(ctx context.Context, relationship *ownership.Relationship) error {
	args := m.Called(ctx, relationship)
	return args.Error(0)
}

func (m *MockOwnershipRepository) Delete(ctx context.Context, restaurantID, ownerID kernel.UUID) error {
	args := m.Called(ctx, restaurantID, ownerID)
	return args.Error(0)
}

func (m *MockOwnershipRepository) GetByIDs(
	ctx context.Context,
	restaurantID, ownerID kernel.UUID,
) (*ownership.Relationship, error) {
	args := m.Called(ctx, restaurantID, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ownership.Relationship), args.Error(1)
}

func (m *MockOwnershipRepository) ListByRestaurant(
	ctx context.Context,
	restaurantID kernel.UUID,
) ([]*ownership.Relationship, error) {
	args := m.Called(ctx, restaurantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*ownership.Relationship), args.Error(1)
}

func (m *MockOwnershipRepository) ListByOwner(
	ctx context.Context,
	ownerID kernel.UUID,
) ([]*ownership.Relationship, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*ownership.Relationship), args.Error(1)
}

func (m *MockOwnershipRepository) GetPrimaryOwner(
	ctx context.Context,
	restaurantID kernel.UUID,
) (*ownership.Relationship, error) {
	args := m.Called(ctx, restaurantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ownership.Relationship), args.Error(1)
}

func (m *MockOwnershipRepository) IsOwnerOfRestaurant(
	ctx context.Context,
	restaurantID, ownerID kernel.UUID,
) (bool, error) {
	args := m.Called(ctx, restaurantID, ownerID)
	return args.Bool(0), args.Error(1)
}

func (m *MockOwnershipRepository) CountByRestaurant(ctx context.Context, restaurantID kernel.UUID) (int64, error) {
	args := m.Called(ctx, restaurantID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOwnershipRepository) UnsetPrimaryOwner(ctx context.Context, restaurantID kernel.UUID) error {
	args := m.Called(ctx, restaurantID)
	return args.Error(0)
}

func (m *MockOwnershipRepository) LockRestaurantRelationships(ctx context.Context, restaurantID kernel.UUID) error {
	args := m.Called(ctx, restaurantID)
	return args.Error(0)
}

type MockArchiveRepository struct{ mock.Mock }

func (m *MockArchiveRepository) Add(ctx context.Context, record *archive.Record) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockArchiveRepository) Get(ctx context.Context, id kernel.UUID) (*archive.Record, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*archive.Record), args.Error(1)
}

func (m *MockArchiveRepository) Find(
	ctx context.Context,
	filter ports.ArchiveFilter,
	offset, limit int,
) ([]*archive.Record, error) {
	args := m.Called(ctx, filter, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*archive.Record), args.Error(1)
}

func (m *MockArchiveRepository) HardDelete(ctx context.Context, filter ports.ArchiveFilter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

type MockUnitOfWork struct{ mock.Mock }

func (m *MockUnitOfWork) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) RestaurantRepository() ports.RestaurantRepository {
	args := m.Called()
	return args.Get(0).(ports.RestaurantRepository)
}

func (m *MockUnitOfWork) DishRepository() ports.DishRepository {
	args := m.Called()
	return args.Get(0).(ports.DishRepository)
}

func (m *MockUnitOfWork) OwnershipRepository() ports.OwnershipRepository {
	args := m.Called()
	return args.Get(0).(ports.OwnershipRepository)
}

func (m *MockUnitOfWork) ArchiveRepository() ports.ArchiveRepository {
	args := m.Called()
	return args.Get(0).(ports.ArchiveRepository)
}

type MockRestaurantUoWFactory struct{ mock.Mock }

func (m *MockRestaurantUoWFactory) Create() commands.RestaurantUoW {
	args := m.Called()
	return args.Get(0).(commands.RestaurantUoW)
}

type MockRestaurantArchiveUoWFactory struct{ mock.Mock }

func (m *MockRestaurantArchiveUoWFactory) Create() commands.RestaurantArchiveUoW {
	args := m.Called()
	return args.Get(0).(commands.RestaurantArchiveUoW)
}

type MockDishUoWFactory struct{ mock.Mock }

func (m *MockDishUoWFactory) Create() commands.DishUoW {
	args := m.Called()
	return args.Get(0).(commands.DishUoW)
}

type MockDishArchiveUoWFactory struct{ mock.Mock }

func (m *MockDishArchiveUoWFactory) Create() commands.DishArchiveUoW {
	args := m.Called()
	return args.Get(0).(commands.DishArchiveUoW)
}

type MockOwnershipUoWFactory struct{ mock.Mock }

func (m *MockOwnershipUoWFactory) Create() commands.OwnershipUoW {
	args := m.Called()
	return args.Get(0).(commands.OwnershipUoW)
}

type MockArchiveUoWFactory struct{ mock.Mock }

func (m *MockArchiveUoWFactory) Create() commands.ArchiveUoW {
	args := m.Called()
	return args.Get(0).(commands.ArchiveUoW)
}
