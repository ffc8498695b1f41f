package shipmentrepo_test

import (
	"context"
	"testing"
	"time"

	"courierhub/internal/adapters/out/postgres/shipmentrepo"
	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/domain/model/shipment"
	"courierhub/internal/pkg/errs"

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

// ShipmentRepositoryIntegrationTestSuite provides integration tests for
// ShipmentRepository using PostgreSQL containers.
type ShipmentRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *shipmentrepo.GormShipmentRepository
	tracker    *MockAggregateTracker
	tenant     kernel.Tenant
}

func (suite *ShipmentRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
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

	// Get connection string and connect to database
	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Auto-migrate the schema
	suite.Require().NoError(db.AutoMigrate(&shipmentrepo.ShipmentDTO{}))
}

func (suite *ShipmentRepositoryIntegrationTestSuite) SetupTest() {
	// Clean the database before each test
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE shipments").Error)

	// Create fresh repository, tracker and tenant for each test
	suite.tracker = new(MockAggregateTracker)
	suite.repository = shipmentrepo.NewGormShipmentRepository(suite.db, suite.tracker)

	tenant, err := kernel.NewTenant(kernel.NewUUID())
	suite.Require().NoError(err)
	suite.tenant = tenant
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestAdd_ValidShipment_Success() {
	ctx := context.Background()

	aggregate := suite.createTestShipment()
	suite.tracker.On("TrackAggregate", aggregate.ID(), aggregate).Once()

	err := suite.repository.Add(ctx, aggregate)
	suite.Require().NoError(err)

	suite.assertShipmentCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestAdd_DuplicateCN_ReturnsConflict() {
	ctx := context.Background()

	first := suite.createTestShipment()
	suite.tracker.On("TrackAggregate", first.ID(), first).Once()
	suite.Require().NoError(suite.repository.Add(ctx, first))

	// Same consignment number under the same franchise
	duplicate, err := shipment.RestoreShipment(
		kernel.NewUUID(),
		suite.tenant,
		first.CN(),
		first.Sender(),
		first.Receiver(),
		first.WeightKg(),
		first.Dimensions(),
		first.Pieces(),
		first.DeclaredValue(),
		first.ServiceType(),
		first.Source(),
		first.TotalCharge(),
		shipment.Created,
		nil,
	)
	suite.Require().NoError(err)

	err = suite.repository.Add(ctx, duplicate)
	suite.Require().Error(err)

	var conflictErr *errs.ConflictError
	suite.Require().ErrorAs(err, &conflictErr)

	suite.assertShipmentCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestGet_ExistingShipment_RoundTrips() {
	ctx := context.Background()

	aggregate := suite.createTestShipment()
	suite.tracker.On("TrackAggregate", aggregate.ID(), aggregate).Once()
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	stored, err := suite.repository.Get(ctx, suite.tenant, aggregate.ID())
	suite.Require().NoError(err)

	suite.Equal(aggregate.ID(), stored.ID())
	suite.Equal(aggregate.CN(), stored.CN())
	suite.Equal(aggregate.Sender(), stored.Sender())
	suite.Equal(aggregate.Receiver(), stored.Receiver())
	suite.Equal(aggregate.ServiceType(), stored.ServiceType())
	suite.Equal(aggregate.Source(), stored.Source())
	suite.InDelta(aggregate.WeightKg(), stored.WeightKg(), 0.001)
	suite.InDelta(aggregate.TotalCharge(), stored.TotalCharge(), 0.001)
	suite.Equal(shipment.Created, stored.Status())
	suite.Nil(stored.ManifestID())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestGet_NonExistent_ReturnsNotFoundError() {
	ctx := context.Background()

	stored, err := suite.repository.Get(ctx, suite.tenant, kernel.NewUUID())

	suite.Nil(stored)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestGetByCN_WrongTenant_ReturnsNotFoundError() {
	ctx := context.Background()

	aggregate := suite.createTestShipment()
	suite.tracker.On("TrackAggregate", aggregate.ID(), aggregate).Once()
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	otherTenant, err := kernel.NewTenant(kernel.NewUUID())
	suite.Require().NoError(err)

	stored, err := suite.repository.GetByCN(ctx, otherTenant, aggregate.CN())
	suite.Nil(stored)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestUpdate_StatusAndManifestDetachment() {
	ctx := context.Background()

	aggregate := suite.createTestShipment()
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(3)
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	// Attach to a manifest
	manifestID := kernel.NewUUID()
	suite.Require().NoError(aggregate.AddToManifest(manifestID))
	suite.Require().NoError(suite.repository.Update(ctx, aggregate))

	stored, err := suite.repository.Get(ctx, suite.tenant, aggregate.ID())
	suite.Require().NoError(err)
	suite.Require().NotNil(stored.ManifestID())
	suite.Equal(manifestID, *stored.ManifestID())
	suite.Equal(shipment.Manifested, stored.Status())

	// Detach: manifest_id must go back to NULL
	suite.Require().NoError(stored.DetachFromManifest())
	suite.Require().NoError(suite.repository.Update(ctx, stored))

	detached, err := suite.repository.Get(ctx, suite.tenant, aggregate.ID())
	suite.Require().NoError(err)
	suite.Nil(detached.ManifestID())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestUpdate_NonExistent_ReturnsError() {
	ctx := context.Background()

	aggregate := suite.createTestShipment()
	err := suite.repository.Update(ctx, aggregate)

	suite.Require().ErrorIs(err, gorm.ErrRecordNotFound)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestGetAllForUpdate_MissingID_FailsWholeBatch() {
	ctx := context.Background()

	aggregate := suite.createTestShipment()
	suite.tracker.On("TrackAggregate", aggregate.ID(), aggregate).Once()
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	missing := kernel.NewUUID()
	shipments, err := suite.repository.GetAllForUpdate(
		ctx, suite.tenant, []kernel.UUID{aggregate.ID(), missing})

	suite.Nil(shipments)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
	suite.Contains(err.Error(), missing.String())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestGetAllForUpdate_PreservesRequestOrder() {
	ctx := context.Background()

	first := suite.createTestShipment()
	second := suite.createTestShipment()
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(2)
	suite.Require().NoError(suite.repository.Add(ctx, first))
	suite.Require().NoError(suite.repository.Add(ctx, second))

	shipments, err := suite.repository.GetAllForUpdate(
		ctx, suite.tenant, []kernel.UUID{second.ID(), first.ID()})
	suite.Require().NoError(err)
	suite.Require().Len(shipments, 2)
	suite.Equal(second.ID(), shipments[0].ID())
	suite.Equal(first.ID(), shipments[1].ID())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestDelete_RemovesRow() {
	ctx := context.Background()

	aggregate := suite.createTestShipment()
	suite.tracker.On("TrackAggregate", aggregate.ID(), aggregate).Once()
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	suite.Require().NoError(suite.repository.Delete(ctx, suite.tenant, aggregate.ID()))
	suite.assertShipmentCount(0)

	err := suite.repository.Delete(ctx, suite.tenant, aggregate.ID())
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

// createTestShipment creates a basic shipment with default values under the
// suite tenant.
func (suite *ShipmentRepositoryIntegrationTestSuite) createTestShipment() *shipment.Shipment {
	sender, err := shipment.NewParty(
		"Acme Traders", "9876543210", "14 MG Road", "560001", "Bengaluru", "Karnataka")
	suite.Require().NoError(err)

	receiver, err := shipment.NewParty(
		"Rhea Kapoor", "9123456780", "2 Park Street", "700016", "Kolkata", "West Bengal")
	suite.Require().NoError(err)

	aggregate, err := shipment.NewShipment(
		kernel.NewUUID(),
		suite.tenant,
		sender,
		receiver,
		5.5,
		shipment.Dimensions{LengthCm: 30, WidthCm: 20, HeightCm: 10},
		1,
		1000,
		shipment.Express,
		shipment.Manual,
		240,
	)
	suite.Require().NoError(err)
	return aggregate
}

// assertShipmentCount verifies the number of shipments in the database.
func (suite *ShipmentRepositoryIntegrationTestSuite) assertShipmentCount(expected int) {
	var count int64
	err := suite.db.Model(&shipmentrepo.ShipmentDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestShipmentRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ShipmentRepositoryIntegrationTestSuite))
}
