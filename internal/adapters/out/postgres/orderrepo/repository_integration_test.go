package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"pedidos/internal/adapters/out/postgres/migrations"
	"pedidos/internal/adapters/out/postgres/orderrepo"
	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/domain/model/order"
	"pedidos/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// OrderRepositoryIntegrationTestSuite runs the repository against a real
// PostgreSQL with the schema created by the embedded migrations.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	suite.Require().NoError(migrations.Up(dsn))

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.repository = orderrepo.NewGormOrderRepository(db, kernel.NewMonotonicIDGenerator(), kernel.NewMonotonicClock())
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE order_items, orders").Error
	suite.Require().NoError(err)
}

func (suite *OrderRepositoryIntegrationTestSuite) details(company string, items ...order.Item) order.Details {
	details, err := order.NewDetails(company, "2024-01-01", 3, items)
	suite.Require().NoError(err)
	return details
}

func (suite *OrderRepositoryIntegrationTestSuite) item(name string, quantity int) order.Item {
	item, err := order.NewItem(name, quantity)
	suite.Require().NoError(err)
	return item
}

func (suite *OrderRepositoryIntegrationTestSuite) TestInsert_AssignsIDAndReceivedStatus() {
	ctx := context.Background()

	created, err := suite.repository.Insert(ctx, suite.details("Acme", suite.item("box", 2), suite.item("tape", 1)))
	suite.Require().NoError(err)

	suite.Positive(created.ID().Int64())
	suite.Equal(order.Received, created.Status())
	suite.False(created.ReceivedAt().IsZero())

	stored, err := suite.repository.Get(ctx, created.ID())
	suite.Require().NoError(err)
	suite.Equal(created.ID(), stored.ID())
	suite.Equal("Acme", stored.Details().Company())
	suite.Equal("2024-01-01", stored.Details().OrderDate())
	suite.Equal(3, stored.Details().TotalVolumes())
	suite.True(created.ReceivedAt().Equal(stored.ReceivedAt()))

	items := stored.Details().Items()
	suite.Require().Len(items, 2)
	suite.Equal("box", items[0].Name())
	suite.Equal(2, items[0].Quantity())
	suite.Equal("tape", items[1].Name())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestInsert_IDsAreUnique() {
	ctx := context.Background()
	seen := make(map[kernel.OrderID]struct{})

	for range 20 {
		created, err := suite.repository.Insert(ctx, suite.details("Acme"))
		suite.Require().NoError(err)
		_, dup := seen[created.ID()]
		suite.False(dup, "id %s issued twice", created.ID())
		seen[created.ID()] = struct{}{}
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestListAll_OrderedByReceipt() {
	ctx := context.Background()

	first, err := suite.repository.Insert(ctx, suite.details("First"))
	suite.Require().NoError(err)
	second, err := suite.repository.Insert(ctx, suite.details("Second", suite.item("box", 1)))
	suite.Require().NoError(err)
	third, err := suite.repository.Insert(ctx, suite.details("Third"))
	suite.Require().NoError(err)

	orders, err := suite.repository.ListAll(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(orders, 3)
	suite.Equal(first.ID(), orders[0].ID())
	suite.Equal(second.ID(), orders[1].ID())
	suite.Equal(third.ID(), orders[2].ID())
	suite.Len(orders[1].Details().Items(), 1)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestListAll_Empty() {
	orders, err := suite.repository.ListAll(context.Background())

	suite.Require().NoError(err)
	suite.Empty(orders)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateStatusForIDs_SkipsUnknownIDs() {
	ctx := context.Background()
	created, err := suite.repository.Insert(ctx, suite.details("Acme"))
	suite.Require().NoError(err)
	other, err := suite.repository.Insert(ctx, suite.details("Other"))
	suite.Require().NoError(err)

	updated, err := suite.repository.UpdateStatusForIDs(ctx, []kernel.OrderID{created.ID(), 99}, order.Picking)
	suite.Require().NoError(err)
	suite.Equal(int64(1), updated)

	stored, err := suite.repository.Get(ctx, created.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Picking, stored.Status())

	untouched, err := suite.repository.Get(ctx, other.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Received, untouched.Status())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateStatusForIDs_AnyTransitionAllowed() {
	ctx := context.Background()
	created, err := suite.repository.Insert(ctx, suite.details("Acme"))
	suite.Require().NoError(err)

	for _, status := range []order.Status{order.Finalized, order.Received, order.Received, order.Picking} {
		updated, updateErr := suite.repository.UpdateStatusForIDs(ctx, []kernel.OrderID{created.ID()}, status)
		suite.Require().NoError(updateErr)
		suite.Equal(int64(1), updated)

		stored, getErr := suite.repository.Get(ctx, created.ID())
		suite.Require().NoError(getErr)
		suite.Equal(status, stored.Status())
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDeleteByID() {
	ctx := context.Background()
	created, err := suite.repository.Insert(ctx, suite.details("Acme", suite.item("box", 3)))
	suite.Require().NoError(err)

	deleted, err := suite.repository.DeleteByID(ctx, created.ID())
	suite.Require().NoError(err)
	suite.Equal(created.ID(), deleted.ID())
	suite.Len(deleted.Details().Items(), 1)

	_, err = suite.repository.Get(ctx, created.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	var items int64
	suite.Require().NoError(suite.db.Model(&orderrepo.ItemDTO{}).Where("order_id = ?", created.ID().Int64()).Count(&items).Error)
	suite.Zero(items)

	_, err = suite.repository.DeleteByID(ctx, created.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.NotErrorIs(err, errs.ErrPersistence)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestMaxID() {
	ctx := context.Background()

	maxID, err := suite.repository.MaxID(ctx)
	suite.Require().NoError(err)
	suite.Zero(maxID)

	_, err = suite.repository.Insert(ctx, suite.details("Acme"))
	suite.Require().NoError(err)
	last, err := suite.repository.Insert(ctx, suite.details("Acme"))
	suite.Require().NoError(err)

	maxID, err = suite.repository.MaxID(ctx)
	suite.Require().NoError(err)
	suite.Equal(last.ID(), maxID)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), 12345)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
