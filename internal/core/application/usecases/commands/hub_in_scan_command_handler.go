package commands

import (
	"context"
	"errors"
	"fmt"

	"courierhub/internal/core/domain/model/scan"
	"courierhub/internal/core/domain/model/shipment"
	"courierhub/internal/core/ports"
	"courierhub/internal/pkg/errs"
)

// HubInScanCommandHandler records an arrival scan and advances the shipment
// to IN_TRANSIT. The shipment row is locked while the scan is inserted, and
// a unique constraint on (tenant, cn, hub, scan type) rejects replays even
// if two scanners race past the existence check.
type HubInScanCommandHandler struct {
	uowFactory ScanUoWFactory
	publisher  ports.ShipmentEventPublisher
}

// NewHubInScanCommandHandler creates a handler for arrival scans.
func NewHubInScanCommandHandler(
	uowFactory ScanUoWFactory,
	publisher ports.ShipmentEventPublisher,
) HubInScanCommandHandler {
	return HubInScanCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the arrival scan.
func (h *HubInScanCommandHandler) Handle(ctx context.Context, cmd HubInScanCommand) error {
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
	exists, err := scanRepo.Has(ctx, cmd.Tenant(), cmd.ShipmentCN(), cmd.HubID(), scan.In)
	if err != nil {
		return err
	}
	if exists {
		return errs.NewConflictError(fmt.Sprintf(
			"shipment %s already has an IN scan at hub %s", cmd.ShipmentCN(), cmd.HubID()))
	}

	if err = h.checkEligibility(ctx, scanRepo, cmd, aggregate); err != nil {
		return err
	}

	event, err := scan.NewInScan(cmd.Tenant(), cmd.ShipmentCN(), cmd.HubID(), cmd.DeviceID())
	if err != nil {
		return err
	}
	if err = scanRepo.Add(ctx, event); err != nil {
		return err
	}

	if err = aggregate.MarkInTransit(); err != nil {
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

// checkEligibility enforces the network topology: a MANIFESTED shipment may
// arrive anywhere (first leg), a shipment already IN_TRANSIT may only arrive
// at the hub its last OUT scan declared as next.
func (h *HubInScanCommandHandler) checkEligibility(
	ctx context.Context,
	scanRepo ports.ScanRepository,
	cmd HubInScanCommand,
	aggregate *shipment.Shipment,
) error {
	switch aggregate.Status() {
	case shipment.Manifested:
		return nil
	case shipment.InTransit:
		lastOut, err := scanRepo.LastOutScan(ctx, cmd.Tenant(), cmd.ShipmentCN())
		if err != nil {
			if errors.Is(err, errs.ErrObjectNotFound) {
				return errs.NewConflictError(fmt.Sprintf(
					"shipment %s is IN_TRANSIT but has no recorded departure scan", cmd.ShipmentCN()))
			}
			return err
		}
		if lastOut.NextHubID() == nil || !lastOut.NextHubID().IsEqual(cmd.HubID()) {
			return errs.NewConflictError(fmt.Sprintf(
				"shipment %s is not en route to hub %s", cmd.ShipmentCN(), cmd.HubID()))
		}
		return nil
	default:
		return errs.NewInvalidTransitionError(aggregate.Status().String(), shipment.InTransit.String())
	}
}
