package commands_test

import (
	"testing"

	"courierhub/internal/core/application/usecases/commands"
	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/domain/model/shipment"
	"courierhub/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateManifestCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	tenant := testTenant(t)
	s1 := newCreatedShipment(t, tenant)
	s2 := newCreatedShipment(t, tenant)

	cmd, err := commands.NewCreateManifestCommand(
		kernel.NewUUID(), tenant, kernel.NewUUID(), kernel.NewUUID(),
		[]kernel.UUID{s1.ID(), s2.ID()},
	)
	require.NoError(t, err)

	shipmentRepo := new(MockShipmentRepository)
	manifestRepo := new(MockManifestRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("GetAllForUpdate", ctx, tenant, cmd.ShipmentIDs()).
			Return([]*shipment.Shipment{s1, s2}, nil).Once(),
		uow.On("ManifestRepository").Return(manifestRepo).Once(),
		manifestRepo.On("Add", ctx, mock.AnythingOfType("*manifest.Manifest")).Return(nil).Once(),
		shipmentRepo.On("Update", ctx, s1).Return(nil).Once(),
		shipmentRepo.On("Update", ctx, s2).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockManifestUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockPublisher)
	publisher.On("PublishStatusChanged", ctx, mock.AnythingOfType("*shipment.Shipment")).Return(nil).Twice()

	h := commands.NewCreateManifestCommandHandler(factory, publisher)
	created, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	require.Equal(t, 2, created.TotalShipments())
	require.InDelta(t, s1.WeightKg()+s2.WeightKg(), created.TotalWeightKg(), 1e-9)
	require.Equal(t, shipment.Manifested, s1.Status())
	require.Equal(t, shipment.Manifested, s2.Status())
	shipmentRepo.AssertExpectations(t)
	manifestRepo.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestCreateManifestCommandHandler_Handle_MemberNotCreated(t *testing.T) {
	ctx := t.Context()
	tenant := testTenant(t)
	s1 := newCreatedShipment(t, tenant)
	s2 := newCreatedShipment(t, tenant)
	require.NoError(t, s2.AddToManifest(kernel.NewUUID())) // already claimed

	cmd, err := commands.NewCreateManifestCommand(
		kernel.NewUUID(), tenant, kernel.NewUUID(), kernel.NewUUID(),
		[]kernel.UUID{s1.ID(), s2.ID()},
	)
	require.NoError(t, err)

	shipmentRepo := new(MockShipmentRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("GetAllForUpdate", ctx, tenant, cmd.ShipmentIDs()).
			Return([]*shipment.Shipment{s1, s2}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockManifestUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateManifestCommandHandler(factory, new(MockPublisher))
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	// the error names the offending shipment
	require.Contains(t, err.Error(), s2.CN().String())
	uow.AssertExpectations(t)
}

func TestCreateManifestCommand_RequiresShipments(t *testing.T) {
	_, err := commands.NewCreateManifestCommand(
		kernel.NewUUID(), testTenant(t), kernel.NewUUID(), kernel.NewUUID(), nil,
	)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}
