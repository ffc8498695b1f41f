package commands

import (
	"context"

	"courierhub/internal/core/ports"
)

// UpdateShipmentStatusCommandHandler handles administrative status overrides.
// The transition is validated against the central lifecycle table, so an
// operator cannot move a shipment along an edge a scan never could.
type UpdateShipmentStatusCommandHandler struct {
	uowFactory ShipmentUoWFactory
	publisher  ports.ShipmentEventPublisher
}

// NewUpdateShipmentStatusCommandHandler creates a handler for status overrides.
func NewUpdateShipmentStatusCommandHandler(
	uowFactory ShipmentUoWFactory,
	publisher ports.ShipmentEventPublisher,
) UpdateShipmentStatusCommandHandler {
	return UpdateShipmentStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle loads the shipment, applies the transition and persists the result.
func (h *UpdateShipmentStatusCommandHandler) Handle(ctx context.Context, cmd UpdateShipmentStatusCommand) error {
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

	if err = aggregate.TransitionTo(cmd.NewStatus()); err != nil {
		return err
	}

	if err = shipmentRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishStatusChanged(ctx, h.publisher, aggregate)
	return nil
}
