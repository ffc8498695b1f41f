package commands

import (
	"context"
	"fmt"

	"courierhub/internal/core/domain/model/scan"
	"courierhub/internal/core/ports"
	"courierhub/internal/pkg/errs"
)

// HubOutScanCommandHandler records a departure scan. An OUT at a hub
// requires a prior IN at that hub and no OUT yet; the shipment then either
// stays IN_TRANSIT (linehaul to a declared next hub) or moves to
// OUT_FOR_DELIVERY (no next hub, last mile).
type HubOutScanCommandHandler struct {
	uowFactory ScanUoWFactory
	publisher  ports.ShipmentEventPublisher
}

// NewHubOutScanCommandHandler creates a handler for departure scans.
func NewHubOutScanCommandHandler(
	uowFactory ScanUoWFactory,
	publisher ports.ShipmentEventPublisher,
) HubOutScanCommandHandler {
	return HubOutScanCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the departure scan.
func (h *HubOutScanCommandHandler) Handle(ctx context.Context, cmd HubOutScanCommand) error {
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
	aggregate, err := shipmentRepo.GetByCNForUpdate(ctx, cmd.Tenant(), cmd.ShipmentCN())
	if err != nil {
		return err
	}

	scanRepo := uow.ScanRepository()
	hasIn, err := scanRepo.Has(ctx, cmd.Tenant(), cmd.ShipmentCN(), cmd.HubID(), scan.In)
	if err != nil {
		return err
	}
	if !hasIn {
		return errs.NewConflictError(fmt.Sprintf(
			"shipment %s has no IN scan at hub %s, cannot scan out", cmd.ShipmentCN(), cmd.HubID()))
	}

	hasOut, err := scanRepo.Has(ctx, cmd.Tenant(), cmd.ShipmentCN(), cmd.HubID(), scan.Out)
	if err != nil {
		return err
	}
	if hasOut {
		return errs.NewConflictError(fmt.Sprintf(
			"shipment %s already has an OUT scan at hub %s", cmd.ShipmentCN(), cmd.HubID()))
	}

	event, err := scan.NewOutScan(
		cmd.Tenant(), cmd.ShipmentCN(), cmd.HubID(), cmd.DeviceID(),
		cmd.NextHubID(), cmd.RouteCode(), cmd.VehicleID(),
	)
	if err != nil {
		return err
	}
	if err = scanRepo.Add(ctx, event); err != nil {
		return err
	}

	if cmd.NextHubID() != nil {
		err = aggregate.MarkInTransit()
	} else {
		err = aggregate.MarkOutForDelivery()
	}
	if err != nil {
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
