package commands_test

import (
	"testing"

	"courierhub/internal/core/application/usecases/commands"
	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/domain/model/manifest"
	"courierhub/internal/core/domain/model/shipment"
	"courierhub/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRemanifestCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	tenant := testTenant(t)

	m, err := manifest.NewManifest(kernel.NewUUID(), tenant, kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)

	s := newCreatedShipment(t, tenant)
	require.NoError(t, s.AddToManifest(m.ID()))
	require.NoError(t, m.AddShipment(s.WeightKg()))

	cmd, err := commands.NewRemanifestCommand(m.ID(), tenant, []kernel.UUID{s.ID()}, "wrong courier booked")
	require.NoError(t, err)

	manifestRepo := new(MockManifestRepository)
	shipmentRepo := new(MockShipmentRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ManifestRepository").Return(manifestRepo).Once(),
		manifestRepo.On("GetForUpdate", ctx, tenant, m.ID()).Return(m, nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("GetAllForUpdate", ctx, tenant, cmd.ShipmentIDs()).
			Return([]*shipment.Shipment{s}, nil).Once(),
		manifestRepo.On("AddRemoval", ctx, mock.AnythingOfType("manifest.Removal")).Return(nil).Once(),
		shipmentRepo.On("Update", ctx, s).Return(nil).Once(),
		manifestRepo.On("Update", ctx, m).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockManifestUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRemanifestCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	require.Nil(t, s.ManifestID())
	// detachment is a membership correction, not a lifecycle event
	require.Equal(t, shipment.Manifested, s.Status())
	require.Zero(t, m.TotalShipments())
	require.Zero(t, m.TotalWeightKg())
	manifestRepo.AssertExpectations(t)
	shipmentRepo.AssertExpectations(t)
}

func TestRemanifestCommandHandler_Handle_ClosedManifest(t *testing.T) {
	ctx := t.Context()
	tenant := testTenant(t)

	m, err := manifest.NewManifest(kernel.NewUUID(), tenant, kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, m.Close())

	cmd, err := commands.NewRemanifestCommand(m.ID(), tenant, []kernel.UUID{kernel.NewUUID()}, "late correction")
	require.NoError(t, err)

	manifestRepo := new(MockManifestRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ManifestRepository").Return(manifestRepo).Once(),
		manifestRepo.On("GetForUpdate", ctx, tenant, m.ID()).Return(m, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockManifestUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRemanifestCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrConflict)
}

func TestRemanifestCommandHandler_Handle_ForeignShipment(t *testing.T) {
	ctx := t.Context()
	tenant := testTenant(t)

	m, err := manifest.NewManifest(kernel.NewUUID(), tenant, kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)

	s := newCreatedShipment(t, tenant)
	require.NoError(t, s.AddToManifest(kernel.NewUUID())) // different manifest

	cmd, err := commands.NewRemanifestCommand(m.ID(), tenant, []kernel.UUID{s.ID()}, "mixed up batches")
	require.NoError(t, err)

	manifestRepo := new(MockManifestRepository)
	shipmentRepo := new(MockShipmentRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ManifestRepository").Return(manifestRepo).Once(),
		manifestRepo.On("GetForUpdate", ctx, tenant, m.ID()).Return(m, nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("GetAllForUpdate", ctx, tenant, cmd.ShipmentIDs()).
			Return([]*shipment.Shipment{s}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockManifestUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRemanifestCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrConflict)
}

func TestRemanifestCommand_RequiresReason(t *testing.T) {
	_, err := commands.NewRemanifestCommand(
		kernel.NewUUID(), testTenant(t), []kernel.UUID{kernel.NewUUID()}, "  ",
	)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}
