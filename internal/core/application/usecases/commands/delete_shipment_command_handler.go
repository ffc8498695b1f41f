package commands

import (
	"context"
	"fmt"

	"courierhub/internal/pkg/errs"
)

// DeleteShipmentCommandHandler removes shipments that are still in CREATED
// status. Anything further along has manifests or scans referencing it and
// must stay.
type DeleteShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewDeleteShipmentCommandHandler creates a handler for shipment deletion.
func NewDeleteShipmentCommandHandler(uowFactory ShipmentUoWFactory) DeleteShipmentCommandHandler {
	return DeleteShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle deletes the shipment if it is still deletable.
func (h *DeleteShipmentCommandHandler) Handle(ctx context.Context, cmd DeleteShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipmentRepo := uow.ShipmentRepository()
	aggregate, err := shipmentRepo.GetForUpdate(ctx, cmd.Tenant(), cmd.ShipmentID())
	if err != nil {
		return err
	}

	if !aggregate.IsDeletable() {
		return errs.NewConflictError(fmt.Sprintf(
			"cannot delete shipment %s: already in the pipeline (%s)",
			aggregate.CN().String(), aggregate.Status()))
	}

	if err = shipmentRepo.Delete(ctx, cmd.Tenant(), cmd.ShipmentID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
