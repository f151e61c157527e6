package queries_test

import (
	"context"
	"testing"
	"time"

	"mediorder/internal/adapters/out/postgres/orderrepo"
	"mediorder/internal/core/application/usecases/queries"
	"mediorder/internal/core/domain/model/kernel"
	"mediorder/internal/core/domain/model/order"
	"mediorder/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetOrderQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetOrderQueryHandler
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *GetOrderQueryHandlerTestSuite) SetupSuite() {
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

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetOrderQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
}

func (suite *GetOrderQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetOrderQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, order_items").Error
	suite.Require().NoError(err)
}

func (suite *GetOrderQueryHandlerTestSuite) newOrderWithItems() *order.Order {
	now := time.Now().UTC().Truncate(time.Millisecond)

	item1, err := order.NewItem("Paracetamol", "500mg", 2)
	suite.Require().NoError(err)
	item2, err := order.NewItem("Amoxicillin", "250mg", 1)
	suite.Require().NoError(err)

	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.GenerateOrderNumber(now), kernel.NewUUID(), kernel.NewUUID(),
		order.TypeDelivery, "12 MG Road", "560001", "+91-9000000000", "call on arrival",
		[]order.Item{item1, item2}, now,
	)
	suite.Require().NoError(err)
	return o
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_PendingOrder_MapsAllFields() {
	ctx := context.Background()
	testOrder := suite.newOrderWithItems()
	err := suite.orderRepo.Add(ctx, testOrder)
	suite.Require().NoError(err)

	query, err := queries.NewGetOrderQuery(testOrder.ID())
	suite.Require().NoError(err)

	resp, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.True(resp.ID.IsEqual(testOrder.ID()))
	suite.Equal(testOrder.OrderNumber().String(), resp.OrderNumber)
	suite.True(resp.PrescriptionID.IsEqual(testOrder.PrescriptionID()))
	suite.True(resp.PatientID.IsEqual(testOrder.PatientID()))
	suite.Nil(resp.PharmacyID)
	suite.Equal(order.Pending.String(), resp.Status)
	suite.Equal(order.TypeDelivery.String(), resp.OrderType)
	suite.InDelta(testOrder.TotalAmount(), resp.TotalAmount, 1e-9)
	suite.InDelta(testOrder.DeliveryFee(), resp.DeliveryFee, 1e-9)
	suite.InDelta(testOrder.FinalAmount(), resp.FinalAmount, 1e-9)
	suite.Equal("12 MG Road", resp.DeliveryAddress)
	suite.Equal("560001", resp.DeliveryPincode)
	suite.Equal("+91-9000000000", resp.PatientPhone)
	suite.Equal("call on arrival", resp.SpecialInstructions)
	suite.Nil(resp.AcceptedAt)
	suite.Nil(resp.ExpectedDeliveryTime)

	suite.Require().Len(resp.Items, 2)
	suite.Equal("Paracetamol", resp.Items[0].MedicineName)
	suite.Equal("500mg", resp.Items[0].Dosage)
	suite.Equal(2, resp.Items[0].Quantity)
	suite.Equal("Amoxicillin", resp.Items[1].MedicineName)
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_AcceptedOrder_IncludesPharmacyAndTimestamps() {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)
	pharmacyID := kernel.NewUUID()

	testOrder := suite.newOrderWithItems()
	suite.Require().NoError(testOrder.AssignPharmacy(pharmacyID, now))
	suite.Require().NoError(testOrder.Accept(pharmacyID, "ready in 20 minutes", now))
	suite.Require().NoError(suite.orderRepo.Add(ctx, testOrder))

	query, err := queries.NewGetOrderQuery(testOrder.ID())
	suite.Require().NoError(err)

	resp, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Equal(order.Accepted.String(), resp.Status)
	suite.Require().NotNil(resp.PharmacyID)
	suite.True(resp.PharmacyID.IsEqual(pharmacyID))
	suite.Equal("ready in 20 minutes", resp.PharmacyNotes)
	suite.Require().NotNil(resp.AcceptedAt)
	suite.Require().NotNil(resp.ExpectedDeliveryTime)
	suite.WithinDuration(now, *resp.AcceptedAt, time.Second)
	suite.WithinDuration(now.Add(2*time.Hour), *resp.ExpectedDeliveryTime, time.Second)
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_OrderNotFound_ReturnsError() {
	query, err := queries.NewGetOrderQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetOrderQuery{}

	_, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, queries.ErrGetOrderQueryIsNotConstructed)
}

func TestGetOrderQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOrderQueryHandlerTestSuite))
}

// mockAggregateTracker satisfies the repository tracker dependency in query tests.
type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}
