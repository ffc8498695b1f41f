package commands

import (
	"context"

	"courierhub/internal/core/domain/model/shipment"
)

// CreateShipmentCommandHandler handles the business logic for booking a
// single shipment. A consignment number is generated inside the aggregate
// constructor and the shipment starts in CREATED status.
type CreateShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewCreateShipmentCommandHandler creates a handler for shipment booking.
func NewCreateShipmentCommandHandler(uowFactory ShipmentUoWFactory) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the booking command and returns the created aggregate so
// the boundary can report the generated consignment number.
func (h *CreateShipmentCommandHandler) Handle(ctx context.Context, cmd CreateShipmentCommand) (*shipment.Shipment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := shipment.NewShipment(
		cmd.ShipmentID(),
		cmd.Tenant(),
		cmd.Sender(),
		cmd.Receiver(),
		cmd.WeightKg(),
		cmd.Dimensions(),
		cmd.Pieces(),
		cmd.DeclaredValue(),
		cmd.ServiceType(),
		cmd.Source(),
		cmd.TotalCharge(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ShipmentRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
