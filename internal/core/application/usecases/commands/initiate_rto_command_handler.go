package commands

import (
	"context"
	"fmt"

	"courierhub/internal/core/domain/model/rto"
	"courierhub/internal/core/domain/model/shipment"
	"courierhub/internal/core/ports"
)

// InitiateRTOCommandHandler assembles a return batch from failure-eligible
// shipments. Like manifest creation, member rows are locked for the whole
// transaction and one ineligible shipment rolls everything back.
type InitiateRTOCommandHandler struct {
	uowFactory RTOUoWFactory
	publisher  ports.ShipmentEventPublisher
}

// NewInitiateRTOCommandHandler creates a handler for RTO initiation.
func NewInitiateRTOCommandHandler(
	uowFactory RTOUoWFactory,
	publisher ports.ShipmentEventPublisher,
) InitiateRTOCommandHandler {
	return InitiateRTOCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle creates the batch and returns the aggregate so the boundary can
// report the generated RTO manifest number.
func (h *InitiateRTOCommandHandler) Handle(ctx context.Context, cmd InitiateRTOCommand) (*rto.Manifest, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipmentRepo := uow.ShipmentRepository()
	members, err := shipmentRepo.GetAllForUpdate(ctx, cmd.Tenant(), cmd.ShipmentIDs())
	if err != nil {
		return nil, err
	}

	aggregate, err := rto.NewManifest(
		cmd.RTOID(), cmd.Tenant(), cmd.Reason(),
		cmd.OriginHubID(), cmd.ReturnHubID(), cmd.Notes(),
	)
	if err != nil {
		return nil, err
	}

	rtoRepo := uow.RTORepository()
	if err = rtoRepo.Add(ctx, aggregate); err != nil {
		return nil, err
	}

	for _, member := range members {
		if err = member.StartReturn(); err != nil {
			return nil, err
		}
		if err = aggregate.AddShipment(); err != nil {
			return nil, err
		}
		if err = rtoRepo.AddMember(ctx, cmd.Tenant(), aggregate.ID(), member.ID()); err != nil {
			return nil, err
		}
		if err = shipmentRepo.Update(ctx, member); err != nil {
			return nil, fmt.Errorf("shipment %s: %w", member.CN(), err)
		}
	}

	if err = rtoRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.publishAll(ctx, members)
	return aggregate, nil
}

func (h *InitiateRTOCommandHandler) publishAll(ctx context.Context, members []*shipment.Shipment) {
	for _, member := range members {
		publishStatusChanged(ctx, h.publisher, member)
	}
}
