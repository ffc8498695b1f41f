package postgres_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	postgres_adapter "courierhub/internal/adapters/out/postgres"
	"courierhub/internal/adapters/out/postgres/exceptionrepo"
	"courierhub/internal/adapters/out/postgres/manifestrepo"
	"courierhub/internal/adapters/out/postgres/rtorepo"
	"courierhub/internal/adapters/out/postgres/scanrepo"
	"courierhub/internal/adapters/out/postgres/shipmentrepo"
	"courierhub/internal/core/application/usecases/commands"
	"courierhub/internal/core/domain/model/exception"
	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/domain/model/manifest"
	"courierhub/internal/core/domain/model/rto"
	"courierhub/internal/core/domain/model/scan"
	"courierhub/internal/core/domain/model/shipment"
	"courierhub/internal/core/ports"
	"courierhub/internal/pkg/errs"

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

// SetupSuite initializes PostgreSQL container and database connection for all tests.
// Runs database migrations to prepare schema for unit of work operations.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
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

	// Connect to database
	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Run migrations
	err = db.AutoMigrate(
		&shipmentrepo.ShipmentDTO{},
		&manifestrepo.ManifestDTO{},
		&manifestrepo.RemovalDTO{},
		&scanrepo.ScanEventDTO{},
		&exceptionrepo.ExceptionDTO{},
		&rtorepo.RTOManifestDTO{},
		&rtorepo.RTOMemberDTO{},
	)
	suite.Require().NoError(err)

	// Create factory
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest ensures clean database state before each test.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec(
		"TRUNCATE TABLE shipments, manifests, manifest_removals, hub_scan_events," +
			" shipment_exceptions, rto_manifests, rto_manifest_shipments").Error
	suite.Require().NoError(err)
}

// TearDownSuite cleans up PostgreSQL container after all tests complete.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCreate_ReturnsFreshInstances() {
	first := suite.factory.Create()
	second := suite.factory.Create()

	suite.NotNil(first)
	suite.NotNil(second)
	suite.NotSame(first, second)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsAcrossRepositories() {
	ctx := context.Background()
	tenant := suite.newTenant()
	aggregate := suite.newShipment(tenant)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	suite.Require().NoError(uow.ShipmentRepository().Add(ctx, aggregate))

	event, err := scan.NewInScan(tenant, aggregate.CN(), kernel.NewUUID(), "HHT-01")
	suite.Require().NoError(err)
	suite.Require().NoError(uow.ScanRepository().Add(ctx, event))

	suite.Require().NoError(uow.Commit(ctx))

	stored, err := suite.factory.Create().ShipmentRepository().Get(ctx, tenant, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(aggregate.CN(), stored.CN())

	has, err := suite.factory.Create().ScanRepository().
		Has(ctx, tenant, aggregate.CN(), event.HubID(), scan.In)
	suite.Require().NoError(err)
	suite.True(has)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsAllChanges() {
	ctx := context.Background()
	tenant := suite.newTenant()
	aggregate := suite.newShipment(tenant)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ShipmentRepository().Add(ctx, aggregate))
	suite.Require().NoError(uow.Rollback(ctx))

	_, err := suite.factory.Create().ShipmentRepository().Get(ctx, tenant, aggregate.ID())
	suite.Require().Error(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_WithoutBegin_ReturnsError() {
	uow := suite.factory.Create()
	suite.Require().ErrorIs(uow.Commit(context.Background()), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_WithoutBegin_ReturnsError() {
	uow := suite.factory.Create()
	suite.Require().ErrorIs(uow.Rollback(context.Background()), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestManifestFlow_TotalsAndMembershipSurviveRestore() {
	ctx := context.Background()
	tenant := suite.newTenant()
	aggregate := suite.newShipment(tenant)

	batch, err := manifest.NewManifest(kernel.NewUUID(), tenant, kernel.NewUUID(), kernel.NewUUID())
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ShipmentRepository().Add(ctx, aggregate))

	suite.Require().NoError(aggregate.AddToManifest(batch.ID()))
	suite.Require().NoError(batch.AddShipment(aggregate.WeightKg()))

	suite.Require().NoError(uow.ManifestRepository().Add(ctx, batch))
	suite.Require().NoError(uow.ShipmentRepository().Update(ctx, aggregate))
	suite.Require().NoError(uow.Commit(ctx))

	stored, err := suite.factory.Create().ManifestRepository().Get(ctx, tenant, batch.ID())
	suite.Require().NoError(err)
	suite.Equal(1, stored.TotalShipments())
	suite.InDelta(aggregate.WeightKg(), stored.TotalWeightKg(), 0.001)

	storedShipment, err := suite.factory.Create().ShipmentRepository().Get(ctx, tenant, aggregate.ID())
	suite.Require().NoError(err)
	suite.Require().NotNil(storedShipment.ManifestID())
	suite.Equal(batch.ID(), *storedShipment.ManifestID())
	suite.Equal(shipment.Manifested, storedShipment.Status())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestExceptionAndRTO_RoundTrip() {
	ctx := context.Background()
	tenant := suite.newTenant()
	aggregate := suite.newShipment(tenant)

	record, err := exception.NewException(tenant, aggregate.ID(), exception.DamagedParcel, "crushed box")
	suite.Require().NoError(err)

	batch, err := rto.NewManifest(
		kernel.NewUUID(), tenant, rto.DamagedParcel, kernel.NewUUID(), kernel.NewUUID(), "")
	suite.Require().NoError(err)
	suite.Require().NoError(batch.AddShipment())

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ShipmentRepository().Add(ctx, aggregate))
	suite.Require().NoError(uow.ExceptionRepository().Add(ctx, record))
	suite.Require().NoError(uow.RTORepository().Add(ctx, batch))
	suite.Require().NoError(uow.RTORepository().AddMember(ctx, tenant, batch.ID(), aggregate.ID()))
	suite.Require().NoError(uow.Commit(ctx))

	storedException, err := suite.factory.Create().ExceptionRepository().Get(ctx, tenant, record.ID())
	suite.Require().NoError(err)
	suite.Equal(exception.Pending, storedException.Status())
	suite.Equal(aggregate.ID(), storedException.ShipmentID())

	storedBatch, err := suite.factory.Create().RTORepository().Get(ctx, tenant, batch.ID())
	suite.Require().NoError(err)
	suite.Equal(rto.Initiated, storedBatch.Status())
	suite.Equal(1, storedBatch.ShipmentsCount())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTenantIsolation_OtherFranchiseSeesNothing() {
	ctx := context.Background()
	tenant := suite.newTenant()
	other := suite.newTenant()
	aggregate := suite.newShipment(tenant)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ShipmentRepository().Add(ctx, aggregate))
	suite.Require().NoError(uow.Commit(ctx))

	_, err := suite.factory.Create().ShipmentRepository().Get(ctx, other, aggregate.ID())
	suite.Require().Error(err)

	_, err = suite.factory.Create().ShipmentRepository().GetByCN(ctx, other, aggregate.CN())
	suite.Require().Error(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRemanifest_ConcurrentCorrections_SerializeOnManifestRow() {
	ctx := context.Background()
	tenant := suite.newTenant()
	first := suite.newShipment(tenant)
	second := suite.newShipment(tenant)

	batch, err := manifest.NewManifest(kernel.NewUUID(), tenant, kernel.NewUUID(), kernel.NewUUID())
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	for _, member := range []*shipment.Shipment{first, second} {
		suite.Require().NoError(uow.ShipmentRepository().Add(ctx, member))
		suite.Require().NoError(member.AddToManifest(batch.ID()))
		suite.Require().NoError(batch.AddShipment(member.WeightKg()))
		suite.Require().NoError(uow.ShipmentRepository().Update(ctx, member))
	}
	suite.Require().NoError(uow.ManifestRepository().Add(ctx, batch))
	suite.Require().NoError(uow.Commit(ctx))

	handler := commands.NewRemanifestCommandHandler(manifestUoWFactory{suite.factory})

	var wg sync.WaitGroup
	results := make([]error, 2)
	for i, member := range []*shipment.Shipment{first, second} {
		cmd, cmdErr := commands.NewRemanifestCommand(
			batch.ID(), tenant, []kernel.UUID{member.ID()}, "wrong route")
		suite.Require().NoError(cmdErr)

		wg.Add(1)
		go func(slot int, cmd commands.RemanifestCommand) {
			defer wg.Done()
			results[slot] = handler.Handle(ctx, cmd)
		}(i, cmd)
	}
	wg.Wait()

	suite.Require().NoError(results[0])
	suite.Require().NoError(results[1])

	stored, err := suite.factory.Create().ManifestRepository().Get(ctx, tenant, batch.ID())
	suite.Require().NoError(err)
	suite.Equal(0, stored.TotalShipments())
	suite.InDelta(0, stored.TotalWeightKg(), 0.001)

	for _, member := range []*shipment.Shipment{first, second} {
		detached, getErr := suite.factory.Create().ShipmentRepository().Get(ctx, tenant, member.ID())
		suite.Require().NoError(getErr)
		suite.Nil(detached.ManifestID())
	}

	var removals int64
	suite.Require().NoError(suite.db.Table("manifest_removals").Count(&removals).Error)
	suite.EqualValues(2, removals)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCompleteRTO_ConcurrentCompletions_OnlyOneSucceeds() {
	ctx := context.Background()
	tenant := suite.newTenant()

	batch, err := rto.NewManifest(
		kernel.NewUUID(), tenant, rto.DeliveryFailed, kernel.NewUUID(), kernel.NewUUID(), "")
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.RTORepository().Add(ctx, batch))
	suite.Require().NoError(uow.Commit(ctx))

	handler := commands.NewCompleteRTOCommandHandler(rtoUoWFactory{suite.factory})

	cmd, err := commands.NewCompleteRTOCommand(batch.ID(), tenant)
	suite.Require().NoError(err)

	var wg sync.WaitGroup
	results := make([]error, 2)
	for i := range results {
		wg.Add(1)
		go func(slot int) {
			defer wg.Done()
			results[slot] = handler.Handle(ctx, cmd)
		}(i)
	}
	wg.Wait()

	succeeded, conflicted := 0, 0
	for _, handleErr := range results {
		switch {
		case handleErr == nil:
			succeeded++
		case errors.Is(handleErr, errs.ErrConflict):
			conflicted++
		default:
			suite.Require().NoError(handleErr)
		}
	}
	suite.Equal(1, succeeded)
	suite.Equal(1, conflicted)

	stored, err := suite.factory.Create().RTORepository().Get(ctx, tenant, batch.ID())
	suite.Require().NoError(err)
	suite.Equal(rto.Returned, stored.Status())
}

type manifestUoWFactory struct{ factory ports.UnitOfWorkFactory }

func (f manifestUoWFactory) Create() commands.ManifestUoW { return f.factory.Create() }

type rtoUoWFactory struct{ factory ports.UnitOfWorkFactory }

func (f rtoUoWFactory) Create() commands.RTOUoW { return f.factory.Create() }

func (suite *UnitOfWorkIntegrationTestSuite) newTenant() kernel.Tenant {
	tenant, err := kernel.NewTenant(kernel.NewUUID())
	suite.Require().NoError(err)
	return tenant
}

func (suite *UnitOfWorkIntegrationTestSuite) newShipment(tenant kernel.Tenant) *shipment.Shipment {
	sender, err := shipment.NewParty(
		"Acme Traders", "9876543210", "14 MG Road", "560001", "Bengaluru", "Karnataka")
	suite.Require().NoError(err)

	receiver, err := shipment.NewParty(
		"Rhea Kapoor", "9123456780", "2 Park Street", "700016", "Kolkata", "West Bengal")
	suite.Require().NoError(err)

	aggregate, err := shipment.NewShipment(
		kernel.NewUUID(),
		tenant,
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

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
