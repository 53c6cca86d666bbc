package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "laundry/internal/adapters/out/postgres"
	"laundry/internal/adapters/out/postgres/orderrepo"
	"laundry/internal/adapters/out/postgres/pricingrepo"
	"laundry/internal/adapters/out/postgres/requestrepo"
	"laundry/internal/adapters/out/postgres/userrepo"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/request"
	"laundry/internal/core/domain/model/user"
	"laundry/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides integration testing for the
// GORM-based Unit of Work implementation with a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

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

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&userrepo.UserDTO{},
		&orderrepo.OrderDTO{},
		&requestrepo.RequestDTO{},
		&pricingrepo.PricingDTO{},
	)
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE laundry_requests, orders, pricing, users CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) seedUser() *user.User {
	account, err := user.NewUser(kernel.NewUUID(), "alice", "secret", "a@example.com", "12345", "basic", user.RoleUser)
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(context.Background()))
	suite.Require().NoError(uow.UserRepository().Add(context.Background(), account))
	suite.Require().NoError(uow.Commit(context.Background()))

	return account
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.UserRepository())
	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow1.RequestRepository())
	suite.NotNil(uow1.PricingRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CommitWithoutBegin() {
	uow := suite.factory.Create()
	suite.Require().ErrorIs(uow.Commit(context.Background()), gorm.ErrInvalidTransaction)
	suite.Require().ErrorIs(uow.Rollback(context.Background()), gorm.ErrInvalidTransaction)
}

// TestUnitOfWork_IntakeDualWrite_Commit verifies that a laundry request and
// its order persist together in one transaction.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_IntakeDualWrite_Commit() {
	ctx := context.Background()
	account := suite.seedUser()
	now := time.Now().UTC()

	laundryRequest, err := request.NewLaundryRequest(
		kernel.NewUUID(), account.ID(), "Shirt", 3, nil, nil, nil, now)
	suite.Require().NoError(err)

	newOrder, err := order.NewOrder(
		kernel.NewUUID(), account.ID(), "Shirt", 3, 20,
		"Hostel A", "101", "Morning", now)
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.RequestRepository().Add(ctx, laundryRequest))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, newOrder))
	suite.Require().NoError(uow.Commit(ctx))

	var requestCount, orderCount int64
	suite.Require().NoError(suite.db.Model(&requestrepo.RequestDTO{}).Count(&requestCount).Error)
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&orderCount).Error)
	suite.Equal(int64(1), requestCount)
	suite.Equal(int64(1), orderCount)
}

// TestUnitOfWork_IntakeDualWrite_Rollback verifies that rolling back after
// both writes leaves neither row behind.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_IntakeDualWrite_Rollback() {
	ctx := context.Background()
	account := suite.seedUser()
	now := time.Now().UTC()

	laundryRequest, err := request.NewLaundryRequest(
		kernel.NewUUID(), account.ID(), "Shirt", 3, nil, nil, nil, now)
	suite.Require().NoError(err)

	newOrder, err := order.NewOrder(
		kernel.NewUUID(), account.ID(), "Shirt", 3, 20,
		"Hostel A", "101", "Morning", now)
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.RequestRepository().Add(ctx, laundryRequest))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, newOrder))
	suite.Require().NoError(uow.Rollback(ctx))

	var requestCount, orderCount int64
	suite.Require().NoError(suite.db.Model(&requestrepo.RequestDTO{}).Count(&requestCount).Error)
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&orderCount).Error)
	suite.Zero(requestCount)
	suite.Zero(orderCount)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
