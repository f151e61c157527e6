package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"mediorder/internal/adapters/out/postgres/orderrepo"
	"mediorder/internal/core/domain/model/kernel"
	"mediorder/internal/core/domain/model/order"
	"mediorder/internal/core/ports"
	"mediorder/internal/pkg/errs"
)

// MockAggregateTracker is a mock implementation of the aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite verifies order persistence, rehydration
// and the optimistic concurrency check against a real PostgreSQL instance.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, order_items").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder() *order.Order {
	now := time.Now().UTC().Truncate(time.Microsecond)

	first, err := order.NewItem("Paracetamol", "500mg", 2)
	suite.Require().NoError(err)
	second, err := order.NewItem("Amoxicillin", "250mg", 1)
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.GenerateOrderNumber(now),
		kernel.NewUUID(),
		kernel.NewUUID(),
		order.TypeDelivery,
		"12 MG Road",
		"560001",
		"+91-9000000000",
		"ring twice",
		[]order.Item{first, second},
		now,
	)
	suite.Require().NoError(err)
	return testOrder
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()

	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	loaded, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.True(loaded.ID().IsEqual(testOrder.ID()))
	suite.Equal(testOrder.OrderNumber().String(), loaded.OrderNumber().String())
	suite.Equal(order.Pending, loaded.Status())
	suite.Equal(order.TypeDelivery, loaded.OrderType())
	suite.Nil(loaded.Pharmacy())
	suite.InDelta(testOrder.FinalAmount(), loaded.FinalAmount(), 1e-9)
	suite.Equal(int64(1), loaded.Version())

	suite.Require().Len(loaded.Items(), 2)
	suite.Equal("Paracetamol", loaded.Items()[0].MedicineName())
	suite.Equal("Amoxicillin", loaded.Items()[1].MedicineName())
	suite.Equal(order.ItemPending, loaded.Items()[0].Status())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByOrderNumber() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	loaded, err := suite.repository.GetByOrderNumber(ctx, testOrder.OrderNumber())
	suite.Require().NoError(err)
	suite.True(loaded.ID().IsEqual(testOrder.ID()))

	missing := kernel.GenerateOrderNumber(time.Now())
	_, err = suite.repository.GetByOrderNumber(ctx, missing)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsAssignment() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	pharmacyID := kernel.NewUUID()
	suite.Require().NoError(testOrder.AssignPharmacy(pharmacyID, time.Now().UTC()))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	loaded, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.PharmacyAssigned, loaded.Status())
	suite.Require().NotNil(loaded.Pharmacy())
	suite.True(loaded.Pharmacy().IsEqual(pharmacyID))
	suite.Equal(int64(2), loaded.Version())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StaleVersionConflicts() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	// Two copies of the same order, as two concurrent requests would hold.
	first, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	second, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	pharmacyA := kernel.NewUUID()
	pharmacyB := kernel.NewUUID()
	suite.Require().NoError(first.AssignPharmacy(pharmacyA, time.Now().UTC()))
	suite.Require().NoError(second.AssignPharmacy(pharmacyB, time.Now().UTC()))

	suite.Require().NoError(suite.repository.Update(ctx, first))

	err = suite.repository.Update(ctx, second)
	suite.Require().ErrorIs(err, ports.ErrConcurrencyConflict)

	// The winner's assignment is intact.
	loaded, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.True(loaded.Pharmacy().IsEqual(pharmacyA))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_MissingOrderIsNotFound() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()

	err := suite.repository.Update(ctx, testOrder)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_ClearsPharmacyOnRejection() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	pharmacyID := kernel.NewUUID()
	now := time.Now().UTC()
	suite.Require().NoError(testOrder.AssignPharmacy(pharmacyID, now))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	loaded, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(loaded.Reject(pharmacyID, "out of stock", now))
	suite.Require().NoError(suite.repository.Update(ctx, loaded))

	reloaded, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Rejected, reloaded.Status())
	suite.Nil(reloaded.Pharmacy())
	suite.Equal("out of stock", reloaded.RejectionReason())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllInStatusQueries() {
	ctx := context.Background()

	pending := suite.createTestOrder()
	suite.Require().NoError(suite.repository.Add(ctx, pending))

	assigned := suite.createTestOrder()
	suite.Require().NoError(assigned.AssignPharmacy(kernel.NewUUID(), time.Now().UTC()))
	suite.Require().NoError(suite.repository.Add(ctx, assigned))

	pendingOrders, err := suite.repository.GetAllInPendingStatus(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(pendingOrders, 1)
	suite.True(pendingOrders[0].ID().IsEqual(pending.ID()))

	rejectedOrders, err := suite.repository.GetAllInRejectedStatus(ctx)
	suite.Require().NoError(err)
	suite.Empty(rejectedOrders)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
