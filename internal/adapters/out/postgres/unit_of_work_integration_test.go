package postgres_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/adapters/out/postgres/customerrepo"
	"fulfillment/internal/adapters/out/postgres/driverrepo"
	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/core/domain/model/driver"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite verifies transaction semantics across the
// order and driver repositories: a dispatch either moves both sides or neither.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *pgcontainer.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := pgcontainer.Run(ctx,
		"postgres:15-alpine",
		pgcontainer.WithDatabase("testdb"),
		pgcontainer.WithUsername("testuser"),
		pgcontainer.WithPassword("testpass"),
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

	suite.Require().NoError(db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&driverrepo.DriverDTO{},
		&customerrepo.CustomerDTO{},
	))

	suite.factory = postgres.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	for _, table := range []string{"orders", "order_items", "drivers", "customers"} {
		suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE " + table + " CASCADE").Error)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsBothSidesOfDispatch() {
	ctx := context.Background()
	testOrder := suite.createPreparingOrder()
	testDriver := suite.createDriver()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.DriverRepository().Add(ctx, testDriver))

	suite.Require().NoError(testOrder.AssignDriver(testDriver.ID()))
	suite.Require().NoError(testDriver.MarkBusy(time.Now().UTC()))
	suite.Require().NoError(uow.OrderRepository().Update(ctx, testOrder))
	suite.Require().NoError(uow.DriverRepository().Update(ctx, testDriver))
	suite.Require().NoError(uow.Commit(ctx))

	check := suite.factory.Create()
	loadedOrder, err := check.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	loadedDriver, err := check.DriverRepository().Get(ctx, testDriver.ID())
	suite.Require().NoError(err)

	suite.Equal(order.OnTheWay, loadedOrder.Status())
	suite.Require().NotNil(loadedOrder.Driver())
	suite.True(loadedOrder.Driver().IsEqual(testDriver.ID()))
	suite.Equal(driver.Busy, loadedDriver.Status())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsBothSides() {
	ctx := context.Background()
	testOrder := suite.createPreparingOrder()
	testDriver := suite.createDriver()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.DriverRepository().Add(ctx, testDriver))
	suite.Require().NoError(uow.Rollback(ctx))

	check := suite.factory.Create()
	_, err := check.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	_, err = check.DriverRepository().Get(ctx, testDriver.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_WithoutBegin() {
	uow := suite.factory.Create()
	suite.Require().ErrorIs(uow.Commit(context.Background()), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_WithoutBegin() {
	uow := suite.factory.Create()
	suite.Require().ErrorIs(uow.Rollback(context.Background()), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) createPreparingOrder() *order.Order {
	item, err := order.NewItem(kernel.NewUUID(), "Margherita", 1, 12.00, order.Customization{})
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), "Alice",
		[]*order.Item{item}, 3.00, 0,
		order.DeliveryDetails{Address: "12 Elm Street", Phone: "+15550001111"},
		order.PaymentDetails{Method: "card", Status: "pending"},
	)
	suite.Require().NoError(err)
	suite.Require().NoError(testOrder.StartPreparing())
	return testOrder
}

func (suite *UnitOfWorkIntegrationTestSuite) createDriver() *driver.Driver {
	d, err := driver.NewDriver(kernel.NewUUID(), driver.Profile{
		Name:  "Marco",
		Email: "marco@example.com",
	}, "downtown")
	suite.Require().NoError(err)
	return d
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
