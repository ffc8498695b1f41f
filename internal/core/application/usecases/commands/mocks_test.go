package commands_test

import (
	"context"
	"testing"

	"courierhub/internal/core/application/usecases/commands"
	"courierhub/internal/core/domain/model/exception"
	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/domain/model/manifest"
	"courierhub/internal/core/domain/model/rto"
	"courierhub/internal/core/domain/model/scan"
	"courierhub/internal/core/domain/model/shipment"
	"courierhub/internal/core/ports"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockShipmentRepository struct{ mock.Mock }

func (m *MockShipmentRepository) Add(ctx context.Context, s *shipment.Shipment) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockShipmentRepository) Update(ctx context.Context, s *shipment.Shipment) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockShipmentRepository) Get(ctx context.Context, tenant kernel.Tenant, id kernel.UUID) (*shipment.Shipment, error) {
	args := m.Called(ctx, tenant, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}

func (m *MockShipmentRepository) GetForUpdate(ctx context.Context, tenant kernel.Tenant, id kernel.UUID) (*shipment.Shipment, error) {
	args := m.Called(ctx, tenant, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}

func (m *MockShipmentRepository) GetByCN(ctx context.Context, tenant kernel.Tenant, cn shipment.ConsignmentNumber) (*shipment.Shipment, error) {
	args := m.Called(ctx, tenant, cn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}

func (m *MockShipmentRepository) GetByCNForUpdate(ctx context.Context, tenant kernel.Tenant, cn shipment.ConsignmentNumber) (*shipment.Shipment, error) {
	args := m.Called(ctx, tenant, cn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}

func (m *MockShipmentRepository) GetAllForUpdate(ctx context.Context, tenant kernel.Tenant, ids []kernel.UUID) ([]*shipment.Shipment, error) {
	args := m.Called(ctx, tenant, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*shipment.Shipment), args.Error(1)
}

func (m *MockShipmentRepository) Delete(ctx context.Context, tenant kernel.Tenant, id kernel.UUID) error {
	args := m.Called(ctx, tenant, id)
	return args.Error(0)
}

type MockManifestRepository struct{ mock.Mock }

func (m *MockManifestRepository) Add(ctx context.Context, a *manifest.Manifest) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockManifestRepository) Update(ctx context.Context, a *manifest.Manifest) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockManifestRepository) Get(ctx context.Context, tenant kernel.Tenant, id kernel.UUID) (*manifest.Manifest, error) {
	args := m.Called(ctx, tenant, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*manifest.Manifest), args.Error(1)
}

func (m *MockManifestRepository) GetForUpdate(ctx context.Context, tenant kernel.Tenant, id kernel.UUID) (*manifest.Manifest, error) {
	args := m.Called(ctx, tenant, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*manifest.Manifest), args.Error(1)
}

func (m *MockManifestRepository) AddRemoval(ctx context.Context, r manifest.Removal) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

type MockScanRepository struct{ mock.Mock }

func (m *MockScanRepository) Add(ctx context.Context, e scan.Event) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockScanRepository) Has(ctx context.Context, tenant kernel.Tenant, cn shipment.ConsignmentNumber, hubID kernel.UUID, scanType scan.Type) (bool, error) {
	args := m.Called(ctx, tenant, cn, hubID, scanType)
	return args.Bool(0), args.Error(1)
}

func (m *MockScanRepository) LastOutScan(ctx context.Context, tenant kernel.Tenant, cn shipment.ConsignmentNumber) (scan.Event, error) {
	args := m.Called(ctx, tenant, cn)
	return args.Get(0).(scan.Event), args.Error(1)
}

type MockExceptionRepository struct{ mock.Mock }

func (m *MockExceptionRepository) Add(ctx context.Context, e *exception.Exception) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockExceptionRepository) Update(ctx context.Context, e *exception.Exception) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockExceptionRepository) Get(ctx context.Context, tenant kernel.Tenant, id kernel.UUID) (*exception.Exception, error) {
	args := m.Called(ctx, tenant, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*exception.Exception), args.Error(1)
}

func (m *MockExceptionRepository) GetForUpdate(ctx context.Context, tenant kernel.Tenant, id kernel.UUID) (*exception.Exception, error) {
	args := m.Called(ctx, tenant, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*exception.Exception), args.Error(1)
}

type MockRTORepository struct{ mock.Mock }

func (m *MockRTORepository) Add(ctx context.Context, a *rto.Manifest) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockRTORepository) Update(ctx context.Context, a *rto.Manifest) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockRTORepository) Get(ctx context.Context, tenant kernel.Tenant, id kernel.UUID) (*rto.Manifest, error) {
	args := m.Called(ctx, tenant, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rto.Manifest), args.Error(1)
}

func (m *MockRTORepository) GetForUpdate(ctx context.Context, tenant kernel.Tenant, id kernel.UUID) (*rto.Manifest, error) {
	args := m.Called(ctx, tenant, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rto.Manifest), args.Error(1)
}

func (m *MockRTORepository) AddMember(ctx context.Context, tenant kernel.Tenant, rtoID, shipmentID kernel.UUID) error {
	args := m.Called(ctx, tenant, rtoID, shipmentID)
	return args.Error(0)
}

type MockPublisher struct{ mock.Mock }

func (m *MockPublisher) PublishStatusChanged(ctx context.Context, s *shipment.Shipment) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

// MockUoW satisfies every composed unit of work interface in this package.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) ShipmentRepository() ports.ShipmentRepository {
	args := m.Called()
	return args.Get(0).(ports.ShipmentRepository)
}

func (m *MockUoW) ManifestRepository() ports.ManifestRepository {
	args := m.Called()
	return args.Get(0).(ports.ManifestRepository)
}

func (m *MockUoW) ScanRepository() ports.ScanRepository {
	args := m.Called()
	return args.Get(0).(ports.ScanRepository)
}

func (m *MockUoW) ExceptionRepository() ports.ExceptionRepository {
	args := m.Called()
	return args.Get(0).(ports.ExceptionRepository)
}

func (m *MockUoW) RTORepository() ports.RTORepository {
	args := m.Called()
	return args.Get(0).(ports.RTORepository)
}

type MockShipmentUoWFactory struct{ mock.Mock }

func (m *MockShipmentUoWFactory) Create() commands.ShipmentUoW {
	args := m.Called()
	return args.Get(0).(commands.ShipmentUoW)
}

type MockManifestUoWFactory struct{ mock.Mock }

func (m *MockManifestUoWFactory) Create() commands.ManifestUoW {
	args := m.Called()
	return args.Get(0).(commands.ManifestUoW)
}

type MockScanUoWFactory struct{ mock.Mock }

func (m *MockScanUoWFactory) Create() commands.ScanUoW {
	args := m.Called()
	return args.Get(0).(commands.ScanUoW)
}

type MockExceptionUoWFactory struct{ mock.Mock }

func (m *MockExceptionUoWFactory) Create() commands.ExceptionUoW {
	args := m.Called()
	return args.Get(0).(commands.ExceptionUoW)
}

type MockRTOUoWFactory struct{ mock.Mock }

func (m *MockRTOUoWFactory) Create() commands.RTOUoW {
	args := m.Called()
	return args.Get(0).(commands.RTOUoW)
}

func testTenant(t *testing.T) kernel.Tenant {
	t.Helper()
	tenant, err := kernel.NewTenant(kernel.NewUUID())
	require.NoError(t, err)
	return tenant
}

func testParty(t *testing.T) shipment.Party {
	t.Helper()
	p, err := shipment.NewParty(
		gofakeit.Name(),
		gofakeit.Numerify("##########"),
		gofakeit.Street(),
		gofakeit.Numerify("######"),
		gofakeit.City(),
		gofakeit.State(),
	)
	require.NoError(t, err)
	return p
}

func newCreatedShipment(t *testing.T, tenant kernel.Tenant) *shipment.Shipment {
	t.Helper()
	s, err := shipment.NewShipment(
		kernel.NewUUID(), tenant, testParty(t), testParty(t),
		5.5, shipment.Dimensions{LengthCm: 30, WidthCm: 20, HeightCm: 10},
		1, 1200, shipment.Express, shipment.Manual, 240,
	)
	require.NoError(t, err)
	return s
}
