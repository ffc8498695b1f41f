package commands_test

import (
	"testing"

	"courierhub/internal/core/application/usecases/commands"
	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/domain/model/scan"
	"courierhub/internal/core/domain/model/shipment"
	"courierhub/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newInTransitShipment(t *testing.T, tenant kernel.Tenant) *shipment.Shipment {
	t.Helper()
	s := newManifestedShipment(t, tenant)
	require.NoError(t, s.MarkInTransit())
	return s
}

func TestHubOutScanCommandHandler_Handle_Linehaul(t *testing.T) {
	ctx := t.Context()
	tenant := testTenant(t)
	s := newInTransitShipment(t, tenant)
	hubID := kernel.NewUUID()
	nextHub := kernel.NewUUID()

	cmd, err := commands.NewHubOutScanCommand(tenant, s.CN(), hubID, "dock-2", &nextHub, "RT-9", "TRK-1")
	require.NoError(t, err)

	shipmentRepo := new(MockShipmentRepository)
	scanRepo := new(MockScanRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("GetByCNForUpdate", ctx, tenant, s.CN()).Return(s, nil).Once(),
		uow.On("ScanRepository").Return(scanRepo).Once(),
		scanRepo.On("Has", ctx, tenant, s.CN(), hubID, scan.In).Return(true, nil).Once(),
		scanRepo.On("Has", ctx, tenant, s.CN(), hubID, scan.Out).Return(false, nil).Once(),
		scanRepo.On("Add", ctx, mock.AnythingOfType("scan.Event")).Return(nil).Once(),
		shipmentRepo.On("Update", ctx, s).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockScanUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockPublisher)
	publisher.On("PublishStatusChanged", ctx, s).Return(nil).Once()

	h := commands.NewHubOutScanCommandHandler(factory, publisher)
	require.NoError(t, h.Handle(ctx, cmd))
	// declared next hub keeps the parcel in the hub network
	require.Equal(t, shipment.InTransit, s.Status())
	scanRepo.AssertExpectations(t)
}

func TestHubOutScanCommandHandler_Handle_LastMile(t *testing.T) {
	ctx := t.Context()
	tenant := testTenant(t)
	s := newInTransitShipment(t, tenant)
	hubID := kernel.NewUUID()

	cmd, err := commands.NewHubOutScanCommand(tenant, s.CN(), hubID, "", nil, "", "")
	require.NoError(t, err)

	shipmentRepo := new(MockShipmentRepository)
	scanRepo := new(MockScanRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("GetByCNForUpdate", ctx, tenant, s.CN()).Return(s, nil).Once(),
		uow.On("ScanRepository").Return(scanRepo).Once(),
		scanRepo.On("Has", ctx, tenant, s.CN(), hubID, scan.In).Return(true, nil).Once(),
		scanRepo.On("Has", ctx, tenant, s.CN(), hubID, scan.Out).Return(false, nil).Once(),
		scanRepo.On("Add", ctx, mock.AnythingOfType("scan.Event")).Return(nil).Once(),
		shipmentRepo.On("Update", ctx, s).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockScanUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockPublisher)
	publisher.On("PublishStatusChanged", ctx, s).Return(nil).Once()

	h := commands.NewHubOutScanCommandHandler(factory, publisher)
	require.NoError(t, h.Handle(ctx, cmd))
	require.Equal(t, shipment.OutForDelivery, s.Status())
}

func TestHubOutScanCommandHandler_Handle_NoPriorInScan(t *testing.T) {
	ctx := t.Context()
	tenant := testTenant(t)
	s := newInTransitShipment(t, tenant)
	hubID := kernel.NewUUID()

	cmd, err := commands.NewHubOutScanCommand(tenant, s.CN(), hubID, "", nil, "", "")
	require.NoError(t, err)

	shipmentRepo := new(MockShipmentRepository)
	scanRepo := new(MockScanRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("GetByCNForUpdate", ctx, tenant, s.CN()).Return(s, nil).Once(),
		uow.On("ScanRepository").Return(scanRepo).Once(),
		scanRepo.On("Has", ctx, tenant, s.CN(), hubID, scan.In).Return(false, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockScanUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewHubOutScanCommandHandler(factory, new(MockPublisher))
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrConflict)
	require.Equal(t, shipment.InTransit, s.Status())
}

func TestHubOutScanCommandHandler_Handle_DoubleOutScan(t *testing.T) {
	ctx := t.Context()
	tenant := testTenant(t)
	s := newInTransitShipment(t, tenant)
	hubID := kernel.NewUUID()

	cmd, err := commands.NewHubOutScanCommand(tenant, s.CN(), hubID, "", nil, "", "")
	require.NoError(t, err)

	shipmentRepo := new(MockShipmentRepository)
	scanRepo := new(MockScanRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("GetByCNForUpdate", ctx, tenant, s.CN()).Return(s, nil).Once(),
		uow.On("ScanRepository").Return(scanRepo).Once(),
		scanRepo.On("Has", ctx, tenant, s.CN(), hubID, scan.In).Return(true, nil).Once(),
		scanRepo.On("Has", ctx, tenant, s.CN(), hubID, scan.Out).Return(true, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockScanUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewHubOutScanCommandHandler(factory, new(MockPublisher))
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrConflict)
}
