package ownershiprepo_test

import (
	"context"
	"testing"

	"dinehub/internal/adapters/out/postgres/ownershiprepo"
	"dinehub/internal/core/domain/model/kernel"
	"dinehub/internal/core/domain/model/ownership"
	"dinehub/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// noopTracker satisfies the repository's tracker dependency in tests that
// run outside a unit of work.
type noopTracker struct{}

func (noopTracker) TrackAggregate(_ kernel.UUID, _ any) {}

// OwnershipRepositoryIntegrationTestSuite exercises the GORM ownership
// repository against a real PostgreSQL database.
type OwnershipRepositoryIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	repo      *ownershiprepo.GormOwnershipRepository
}

func (suite *OwnershipRepositoryIntegrationTestSuite) SetupSuite() {
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

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&ownershiprepo.RelationshipDTO{})
	suite.Require().NoError(err)

	suite.repo = ownershiprepo.NewGormOwnershipRepository(db, noopTracker{})
}

func (suite *OwnershipRepositoryIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE ownership_relationships").Error
	suite.Require().NoError(err)
}

func (suite *OwnershipRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *OwnershipRepositoryIntegrationTestSuite) TestAddAndGetByIDs_RoundTrip() {
	ctx := context.Background()

	restaurantID := kernel.NewUUID()
	ownerID := kernel.NewUUID()
	actorID := kernel.NewUUID()

	relationship, err := ownership.NewRelationship(
		restaurantID, ownerID, ownership.RoleManager, true, actorID)
	suite.Require().NoError(err)

	err = suite.repo.Add(ctx, relationship)
	suite.Require().NoError(err)

	loaded, err := suite.repo.GetByIDs(ctx, restaurantID, ownerID)
	suite.Require().NoError(err)
	suite.True(loaded.RestaurantID().IsEqual(restaurantID))
	suite.True(loaded.OwnerID().IsEqual(ownerID))
	suite.Equal(ownership.RoleManager, loaded.Role())
	suite.True(loaded.IsPrimary())
	suite.True(loaded.CreatedBy().IsEqual(actorID))
}

func (suite *OwnershipRepositoryIntegrationTestSuite) TestGetByIDs_NotFound() {
	ctx := context.Background()

	_, err := suite.repo.GetByIDs(ctx, kernel.NewUUID(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OwnershipRepositoryIntegrationTestSuite) TestListByRestaurantAndOwner() {
	ctx := context.Background()

	restaurantID := kernel.NewUUID()
	sharedOwnerID := kernel.NewUUID()
	actorID := kernel.NewUUID()

	suite.addRelationship(restaurantID, sharedOwnerID, ownership.RoleOwner, true, actorID)
	suite.addRelationship(restaurantID, kernel.NewUUID(), ownership.RoleStaff, false, actorID)
	suite.addRelationship(kernel.NewUUID(), sharedOwnerID, ownership.RoleOwner, true, actorID)

	byRestaurant, err := suite.repo.ListByRestaurant(ctx, restaurantID)
	suite.Require().NoError(err)
	suite.Len(byRestaurant, 2)

	byOwner, err := suite.repo.ListByOwner(ctx, sharedOwnerID)
	suite.Require().NoError(err)
	suite.Len(byOwner, 2)
}

func (suite *OwnershipRepositoryIntegrationTestSuite) TestIsOwnerOfRestaurant() {
	ctx := context.Background()

	restaurantID := kernel.NewUUID()
	ownerID := kernel.NewUUID()

	suite.addRelationship(restaurantID, ownerID, ownership.RoleStaff, false, kernel.NewUUID())

	isOwner, err := suite.repo.IsOwnerOfRestaurant(ctx, restaurantID, ownerID)
	suite.Require().NoError(err)
	suite.True(isOwner, "any role counts as ownership membership")

	isOwner, err = suite.repo.IsOwnerOfRestaurant(ctx, restaurantID, kernel.NewUUID())
	suite.Require().NoError(err)
	suite.False(isOwner)
}

func (suite *OwnershipRepositoryIntegrationTestSuite) TestDelete() {
	ctx := context.Background()

	restaurantID := kernel.NewUUID()
	ownerID := kernel.NewUUID()

	suite.addRelationship(restaurantID, ownerID, ownership.RoleOwner, false, kernel.NewUUID())

	err := suite.repo.Delete(ctx, restaurantID, ownerID)
	suite.Require().NoError(err)

	_, err = suite.repo.GetByIDs(ctx, restaurantID, ownerID)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	// A second delete of the same pair reports not found.
	err = suite.repo.Delete(ctx, restaurantID, ownerID)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OwnershipRepositoryIntegrationTestSuite) TestUnsetPrimaryOwner() {
	ctx := context.Background()

	restaurantID := kernel.NewUUID()
	primaryOwnerID := kernel.NewUUID()

	suite.addRelationship(restaurantID, primaryOwnerID, ownership.RoleOwner, true, kernel.NewUUID())
	suite.addRelationship(restaurantID, kernel.NewUUID(), ownership.RoleManager, false, kernel.NewUUID())

	err := suite.repo.UnsetPrimaryOwner(ctx, restaurantID)
	suite.Require().NoError(err)

	_, err = suite.repo.GetPrimaryOwner(ctx, restaurantID)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OwnershipRepositoryIntegrationTestSuite) addRelationship(
	restaurantID, ownerID kernel.UUID,
	role ownership.Role,
	isPrimary bool,
	actorID kernel.UUID,
) {
	relationship, err := ownership.NewRelationship(restaurantID, ownerID, role, isPrimary, actorID)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repo.Add(context.Background(), relationship))
}

func TestOwnershipRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OwnershipRepositoryIntegrationTestSuite))
}
