package postgres_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	postgres_adapter "dinehub/internal/adapters/out/postgres"
	"dinehub/internal/core/domain/model/archive"
	"dinehub/internal/core/domain/model/kernel"
	"dinehub/internal/core/domain/model/ownership"
	"dinehub/internal/core/domain/model/restaurant"
	"dinehub/internal/core/ports"
	"dinehub/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite exercises the GORM-based unit of work
// against a real PostgreSQL database: the archive-first deletion protocol,
// the ownership uniqueness constraints and transaction atomicity.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite initializes PostgreSQL container and database connection for all tests.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	// TranslateError is what maps unique violations onto gorm.ErrDuplicatedKey.
	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	err = postgres_adapter.Migrate(db)
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest ensures clean database state before each test.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec(
		"TRUNCATE TABLE restaurants, dishes, ownership_relationships, archive_records").Error
	suite.Require().NoError(err)
}

// TearDownSuite cleans up PostgreSQL container after all tests complete.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")
	suite.NotNil(uow1.RestaurantRepository())
	suite.NotNil(uow1.DishRepository())
	suite.NotNil(uow2.OwnershipRepository())
	suite.NotNil(suite.factory.Create().ArchiveRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	// Repeated begin calls are safe inside an active transaction.
	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	// Commit without an active transaction fails.
	err = uow.Commit(ctx)
	suite.Require().Error(err)
}

// TestArchiveFirstDelete_CommitsAtomically verifies the deletion protocol:
// after a committed delete the live row is gone and exactly one archive
// record holds its snapshot.
func (suite *UnitOfWorkIntegrationTestSuite) TestArchiveFirstDelete_CommitsAtomically() {
	ctx := context.Background()

	restaurantID := kernel.NewUUID()
	aggregate, err := restaurant.NewRestaurant(restaurantID, "Test", "1 Main St", "")
	suite.Require().NoError(err)

	suite.addRestaurant(aggregate)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	snapshot, err := aggregate.Snapshot()
	suite.Require().NoError(err)

	deletedBy := "admin1"
	record, err := archive.NewRecord(
		kernel.NewUUID(), restaurant.StoreName, restaurantID, snapshot, &deletedBy, nil)
	suite.Require().NoError(err)

	suite.Require().NoError(uow.ArchiveRepository().Add(ctx, record))
	suite.Require().NoError(uow.RestaurantRepository().Delete(ctx, restaurantID))
	suite.Require().NoError(uow.Commit(ctx))

	// Live row is gone.
	readUow := suite.factory.Create()
	_, err = readUow.RestaurantRepository().Get(ctx, restaurantID)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	// Exactly one archive record carries the snapshot.
	records, err := readUow.ArchiveRepository().Find(ctx, ports.ArchiveFilter{
		OriginalTable: restaurant.StoreName,
		OriginalID:    &restaurantID,
	}, 0, 0)
	suite.Require().NoError(err)
	suite.Require().Len(records, 1)

	var data map[string]any
	suite.Require().NoError(json.Unmarshal(records[0].Data(), &data))
	suite.Equal("Test", data["name"])
	suite.Require().NotNil(records[0].DeletedBy())
	suite.Equal("admin1", *records[0].DeletedBy())
}

// TestArchiveFirstDelete_RollbackLeavesNothing verifies that aborting the
// transaction after the archive insert leaves the live row in place and
// writes no archive record.
func (suite *UnitOfWorkIntegrationTestSuite) TestArchiveFirstDelete_RollbackLeavesNothing() {
	ctx := context.Background()

	restaurantID := kernel.NewUUID()
	aggregate, err := restaurant.NewRestaurant(restaurantID, "Test", "1 Main St", "")
	suite.Require().NoError(err)

	suite.addRestaurant(aggregate)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	snapshot, err := aggregate.Snapshot()
	suite.Require().NoError(err)

	record, err := archive.NewRecord(
		kernel.NewUUID(), restaurant.StoreName, restaurantID, snapshot, nil, nil)
	suite.Require().NoError(err)

	suite.Require().NoError(uow.ArchiveRepository().Add(ctx, record))
	suite.Require().NoError(uow.RestaurantRepository().Delete(ctx, restaurantID))
	suite.Require().NoError(uow.Rollback(ctx))

	readUow := suite.factory.Create()
	_, err = readUow.RestaurantRepository().Get(ctx, restaurantID)
	suite.Require().NoError(err, "live row must survive the rollback")

	records, err := readUow.ArchiveRepository().Find(ctx, ports.ArchiveFilter{
		OriginalID: &restaurantID,
	}, 0, 0)
	suite.Require().NoError(err)
	suite.Empty(records, "no archive record must be visible after rollback")
}

// TestOwnership_PairUniqueness verifies the composite primary key on
// (restaurant_id, owner_id): a second insert for the same pair is rejected.
func (suite *UnitOfWorkIntegrationTestSuite) TestOwnership_PairUniqueness() {
	ctx := context.Background()

	restaurantID := kernel.NewUUID()
	ownerID := kernel.NewUUID()
	actorID := kernel.NewUUID()

	first, err := ownership.NewRelationship(restaurantID, ownerID, ownership.RoleOwner, true, actorID)
	suite.Require().NoError(err)
	suite.addRelationship(first)

	second, err := ownership.NewRelationship(restaurantID, ownerID, ownership.RoleStaff, false, actorID)
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	err = uow.OwnershipRepository().Add(ctx, second)
	suite.Require().ErrorIs(err, errs.ErrObjectAlreadyExists)
	suite.Require().NoError(uow.Rollback(ctx))
}

// TestOwnership_SinglePrimaryIndex verifies the partial unique index: two
// different owners of one restaurant cannot both hold the primary flag.
func (suite *UnitOfWorkIntegrationTestSuite) TestOwnership_SinglePrimaryIndex() {
	ctx := context.Background()

	restaurantID := kernel.NewUUID()
	actorID := kernel.NewUUID()

	first, err := ownership.NewRelationship(
		restaurantID, kernel.NewUUID(), ownership.RoleOwner, true, actorID)
	suite.Require().NoError(err)
	suite.addRelationship(first)

	second, err := ownership.NewRelationship(
		restaurantID, kernel.NewUUID(), ownership.RoleOwner, true, actorID)
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	err = uow.OwnershipRepository().Add(ctx, second)
	suite.Require().ErrorIs(err, errs.ErrObjectAlreadyExists,
		"the store itself must reject a second primary")
	suite.Require().NoError(uow.Rollback(ctx))

	// Non-primary relationships of the same restaurant are unaffected.
	third, err := ownership.NewRelationship(
		restaurantID, kernel.NewUUID(), ownership.RoleManager, false, actorID)
	suite.Require().NoError(err)
	suite.addRelationship(third)
}

// TestOwnership_PrimaryTransferFlow verifies the clear-then-set sequence
// inside one transaction ends with exactly one primary owner.
func (suite *UnitOfWorkIntegrationTestSuite) TestOwnership_PrimaryTransferFlow() {
	ctx := context.Background()

	restaurantID := kernel.NewUUID()
	actorID := kernel.NewUUID()
	newPrimaryOwnerID := kernel.NewUUID()

	current, err := ownership.NewRelationship(
		restaurantID, kernel.NewUUID(), ownership.RoleOwner, true, actorID)
	suite.Require().NoError(err)
	suite.addRelationship(current)

	target, err := ownership.NewRelationship(
		restaurantID, newPrimaryOwnerID, ownership.RoleManager, false, actorID)
	suite.Require().NoError(err)
	suite.addRelationship(target)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	ownershipRepo := uow.OwnershipRepository()
	suite.Require().NoError(ownershipRepo.LockRestaurantRelationships(ctx, restaurantID))

	relationship, err := ownershipRepo.GetByIDs(ctx, restaurantID, newPrimaryOwnerID)
	suite.Require().NoError(err)

	suite.Require().NoError(ownershipRepo.UnsetPrimaryOwner(ctx, restaurantID))
	suite.Require().NoError(relationship.MarkPrimary(actorID))
	suite.Require().NoError(ownershipRepo.Update(ctx, relationship))
	suite.Require().NoError(uow.Commit(ctx))

	readUow := suite.factory.Create()
	primary, err := readUow.OwnershipRepository().GetPrimaryOwner(ctx, restaurantID)
	suite.Require().NoError(err)
	suite.True(primary.OwnerID().IsEqual(newPrimaryOwnerID))

	count, err := readUow.OwnershipRepository().CountByRestaurant(ctx, restaurantID)
	suite.Require().NoError(err)
	suite.Equal(int64(2), count)
}

// TestArchive_HardDelete verifies the purge path: an empty filter is refused
// and a time-bounded filter removes only the expired records.
func (suite *UnitOfWorkIntegrationTestSuite) TestArchive_HardDelete() {
	ctx := context.Background()

	old, err := archive.RestoreRecord(
		kernel.NewUUID(), restaurant.StoreName, kernel.NewUUID(),
		json.RawMessage(`{"name":"Old"}`),
		time.Now().UTC().Add(-60*24*time.Hour), nil, nil)
	suite.Require().NoError(err)

	recent, err := archive.NewRecord(
		kernel.NewUUID(), restaurant.StoreName, kernel.NewUUID(),
		json.RawMessage(`{"name":"Recent"}`), nil, nil)
	suite.Require().NoError(err)

	suite.addArchiveRecords(old, recent)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	_, err = uow.ArchiveRepository().HardDelete(ctx, ports.ArchiveFilter{})
	suite.Require().Error(err, "an unfiltered purge must be refused")

	cutoff := time.Now().UTC().Add(-30 * 24 * time.Hour)
	removed, err := uow.ArchiveRepository().HardDelete(ctx, ports.ArchiveFilter{DeletedBefore: &cutoff})
	suite.Require().NoError(err)
	suite.Equal(int64(1), removed)
	suite.Require().NoError(uow.Commit(ctx))

	records, err := suite.factory.Create().ArchiveRepository().Find(ctx, ports.ArchiveFilter{
		OriginalTable: restaurant.StoreName,
	}, 0, 0)
	suite.Require().NoError(err)
	suite.Require().Len(records, 1)

	var data map[string]any
	suite.Require().NoError(json.Unmarshal(records[0].Data(), &data))
	suite.Equal("Recent", data["name"])
}

func (suite *UnitOfWorkIntegrationTestSuite) addRestaurant(aggregate *restaurant.Restaurant) {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.RestaurantRepository().Add(ctx, aggregate))
	suite.Require().NoError(uow.Commit(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) addRelationship(relationship *ownership.Relationship) {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OwnershipRepository().Add(ctx, relationship))
	suite.Require().NoError(uow.Commit(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) addArchiveRecords(records ...*archive.Record) {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	for _, record := range records {
		suite.Require().NoError(uow.ArchiveRepository().Add(ctx, record))
	}
	suite.Require().NoError(uow.Commit(ctx))
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
