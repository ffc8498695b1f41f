package commands_test

import (
	"testing"

	"courierhub/internal/core/application/usecases/commands"
	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/domain/model/rto"
	"courierhub/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newReturnedBatch(t *testing.T, tenant kernel.Tenant) *rto.Manifest {
	t.Helper()
	batch, err := rto.NewManifest(
		kernel.NewUUID(), tenant, rto.DeliveryFailed,
		kernel.NewUUID(), kernel.NewUUID(), "",
	)
	require.NoError(t, err)
	require.NoError(t, batch.Complete())
	return batch
}

func TestResolveRTOCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	tenant := testTenant(t)
	batch := newReturnedBatch(t, tenant)

	cmd, err := commands.NewResolveRTOCommand(batch.ID(), tenant)
	require.NoError(t, err)

	rtoRepo := new(MockRTORepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RTORepository").Return(rtoRepo).Once(),
		rtoRepo.On("GetForUpdate", ctx, tenant, batch.ID()).Return(batch, nil).Once(),
		rtoRepo.On("Update", ctx, batch).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRTOUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewResolveRTOCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	require.Equal(t, rto.Resolved, batch.Status())
	rtoRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestResolveRTOCommandHandler_Handle_NotReturned(t *testing.T) {
	ctx := t.Context()
	tenant := testTenant(t)
	batch, err := rto.NewManifest(
		kernel.NewUUID(), tenant, rto.CustomerRefused,
		kernel.NewUUID(), kernel.NewUUID(), "",
	)
	require.NoError(t, err)

	cmd, err := commands.NewResolveRTOCommand(batch.ID(), tenant)
	require.NoError(t, err)

	rtoRepo := new(MockRTORepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RTORepository").Return(rtoRepo).Once(),
		rtoRepo.On("GetForUpdate", ctx, tenant, batch.ID()).Return(batch, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRTOUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewResolveRTOCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrConflict)
	require.Equal(t, rto.Initiated, batch.Status())
	uow.AssertExpectations(t)
}

func TestResolveRTOCommandHandler_Handle_NotConstructed(t *testing.T) {
	h := commands.NewResolveRTOCommandHandler(new(MockRTOUoWFactory))
	err := h.Handle(t.Context(), commands.ResolveRTOCommand{})
	require.ErrorIs(t, err, commands.ErrResolveRTOCommandIsNotConstructed)
}
