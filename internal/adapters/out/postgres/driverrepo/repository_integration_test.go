package driverrepo_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/postgres/driverrepo"
	"fulfillment/internal/core/domain/model/driver"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// DriverRepositoryIntegrationTestSuite provides integration tests for DriverRepository
// using PostgreSQL containers to verify database persistence behavior.
type DriverRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *driverrepo.GormDriverRepository
	tracker    *MockAggregateTracker
}

func (suite *DriverRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&driverrepo.DriverDTO{}))
}

func (suite *DriverRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE drivers").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = driverrepo.NewGormDriverRepository(suite.db, suite.tracker)
}

func (suite *DriverRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *DriverRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()
	testDriver := suite.createTestDriver("marco@example.com")
	suite.tracker.On("TrackAggregate", testDriver.ID(), testDriver).Once()

	suite.Require().NoError(suite.repository.Add(ctx, testDriver))

	loaded, err := suite.repository.Get(ctx, testDriver.ID())
	suite.Require().NoError(err)
	suite.True(loaded.IsEqual(testDriver))
	suite.Equal(driver.Available, loaded.Status())
	suite.Equal("Marco", loaded.Profile().Name)
	suite.True(loaded.IsActive())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DriverRepositoryIntegrationTestSuite) TestAdd_DuplicateEmailFails() {
	ctx := context.Background()
	first := suite.createTestDriver("dup@example.com")
	second := suite.createTestDriver("dup@example.com")
	suite.tracker.On("TrackAggregate", first.ID(), first).Once()

	suite.Require().NoError(suite.repository.Add(ctx, first))
	suite.Require().Error(suite.repository.Add(ctx, second))
}

func (suite *DriverRepositoryIntegrationTestSuite) TestUpdate_PersistsSoftDelete() {
	ctx := context.Background()
	testDriver := suite.createTestDriver("marco@example.com")
	suite.tracker.On("TrackAggregate", testDriver.ID(), testDriver).Twice()

	suite.Require().NoError(suite.repository.Add(ctx, testDriver))

	suite.Require().NoError(testDriver.Deactivate())
	suite.Require().NoError(suite.repository.Update(ctx, testDriver))

	// Soft-deleted drivers stay readable by ID.
	loaded, err := suite.repository.Get(ctx, testDriver.ID())
	suite.Require().NoError(err)
	suite.False(loaded.IsActive())
	suite.Equal(driver.Offline, loaded.Status())

	// But they never show up as available.
	_, err = suite.repository.GetFirstAvailable(ctx)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *DriverRepositoryIntegrationTestSuite) TestGetFirstAvailable_PicksLongestIdle() {
	ctx := context.Background()

	longestIdle, err := driver.RestoreDriver(kernel.NewUUID(),
		driver.Profile{Name: "Idle", Email: "idle@example.com"},
		driver.Available, "", 0, 0, 0, time.Now().UTC().Add(-2*time.Hour), true)
	suite.Require().NoError(err)

	recentlyActive, err := driver.RestoreDriver(kernel.NewUUID(),
		driver.Profile{Name: "Fresh", Email: "fresh@example.com"},
		driver.Available, "", 0, 0, 0, time.Now().UTC().Add(-time.Minute), true)
	suite.Require().NoError(err)

	busy, err := driver.RestoreDriver(kernel.NewUUID(),
		driver.Profile{Name: "Busy", Email: "busy@example.com"},
		driver.Busy, "", 0, 0, 0, time.Now().UTC().Add(-3*time.Hour), true)
	suite.Require().NoError(err)

	for _, d := range []*driver.Driver{longestIdle, recentlyActive, busy} {
		suite.tracker.On("TrackAggregate", d.ID(), d).Once()
		suite.Require().NoError(suite.repository.Add(ctx, d))
	}

	picked, err := suite.repository.GetFirstAvailable(ctx)
	suite.Require().NoError(err)
	suite.True(picked.IsEqual(longestIdle))

	available, err := suite.repository.GetAllAvailable(ctx)
	suite.Require().NoError(err)
	suite.Len(available, 2)
	suite.True(available[0].IsEqual(longestIdle))
	suite.True(available[1].IsEqual(recentlyActive))
}

func (suite *DriverRepositoryIntegrationTestSuite) TestRemove_DeletesRow() {
	ctx := context.Background()
	testDriver := suite.createTestDriver("marco@example.com")
	suite.tracker.On("TrackAggregate", testDriver.ID(), testDriver).Once()

	suite.Require().NoError(suite.repository.Add(ctx, testDriver))
	suite.Require().NoError(suite.repository.Remove(ctx, testDriver.ID()))

	_, err := suite.repository.Get(ctx, testDriver.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *DriverRepositoryIntegrationTestSuite) TestRemove_MissingDriver() {
	err := suite.repository.Remove(context.Background(), kernel.NewUUID())
	suite.Require().Error(err)
}

func (suite *DriverRepositoryIntegrationTestSuite) TestGet_LocksRowUntilCommit() {
	ctx := context.Background()
	testDriver := suite.createTestDriver("marco@example.com")
	suite.tracker.On("TrackAggregate", testDriver.ID(), testDriver).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testDriver))

	tx := suite.db.Begin()
	suite.Require().NoError(tx.Error)
	txRepository := driverrepo.NewGormDriverRepository(tx, suite.tracker)

	_, err := txRepository.Get(ctx, testDriver.ID())
	suite.Require().NoError(err)

	// The transaction holds the row lock, so a concurrent assignment cannot
	// read the same driver state until this one commits.
	err = suite.db.Exec(
		"SELECT id FROM drivers WHERE id = ? FOR UPDATE NOWAIT", testDriver.ID().Bytes(),
	).Error
	suite.Require().Error(err)
	suite.Contains(err.Error(), "could not obtain lock")

	suite.Require().NoError(tx.Commit().Error)

	suite.Require().NoError(suite.db.Exec(
		"SELECT id FROM drivers WHERE id = ? FOR UPDATE NOWAIT", testDriver.ID().Bytes(),
	).Error)
}

func (suite *DriverRepositoryIntegrationTestSuite) createTestDriver(email string) *driver.Driver {
	d, err := driver.NewDriver(kernel.NewUUID(), driver.Profile{
		Name:         "Marco",
		Email:        email,
		Phone:        "+15550002222",
		VehicleType:  "scooter",
		VehiclePlate: "AB-123",
	}, "downtown")
	suite.Require().NoError(err)
	return d
}

func TestDriverRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(DriverRepositoryIntegrationTestSuite))
}
