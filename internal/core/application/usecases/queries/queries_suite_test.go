package queries_test

import (
	"context"
	"time"

	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/adapters/out/postgres/sellerrepo"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/seller"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// mockAggregateTracker implements the repositories' tracker dependency.
// Query tests don't care about aggregate tracking.
type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}

// QueryHandlerSuite boots one Postgres container for a query handler suite
// and provides seeding helpers shared by the handler tests.
type QueryHandlerSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
}

func (s *QueryHandlerSuite) SetupSuite() {
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
	s.Require().NoError(err)
	s.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	s.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	s.Require().NoError(err)
	s.db = db

	err = db.AutoMigrate(&sellerrepo.SellerDTO{}, &orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{})
	s.Require().NoError(err)
}

func (s *QueryHandlerSuite) TearDownSuite() {
	if s.container != nil {
		err := s.container.Terminate(context.Background())
		s.Require().NoError(err)
	}
}

func (s *QueryHandlerSuite) SetupTest() {
	err := s.db.Exec("TRUNCATE TABLE orders, order_items, sellers CASCADE").Error
	s.Require().NoError(err)
}

func (s *QueryHandlerSuite) createSeller(userID, adminID kernel.UUID, name string) *seller.Seller {
	profile, err := seller.NewSeller(kernel.NewUUID(), userID, adminID, name)
	s.Require().NoError(err)

	repo := sellerrepo.NewGormSellerRepository(s.db, &mockAggregateTracker{})
	err = repo.Add(context.Background(), profile)
	s.Require().NoError(err)
	return profile
}

func (s *QueryHandlerSuite) createOrder(sellerID kernel.UUID, status order.Status, createdAt time.Time) *order.Order {
	customer, err := order.NewCustomerDetails("Nora Aziz", "9715550001", "12 Marina Walk", "")
	s.Require().NoError(err)
	item, err := order.NewItem(kernel.NewUUID(), "Walnut Desk", "120cm", 1, 149.90)
	s.Require().NoError(err)

	o, err := order.RestoreOrder(
		kernel.NewUUID(), order.NewOrderNumber(), sellerID,
		customer, "", 149.90, []order.Item{item}, status, createdAt)
	s.Require().NoError(err)

	repo := orderrepo.NewGormOrderRepository(s.db, &mockAggregateTracker{})
	err = repo.Add(context.Background(), o)
	s.Require().NoError(err)
	return o
}
