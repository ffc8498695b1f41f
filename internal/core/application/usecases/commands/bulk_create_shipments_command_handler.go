package commands

import (
	"context"
	"fmt"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/domain/model/shipment"
)

// BulkCreateShipmentsCommandHandler books shipments row by row. Each row
// runs in its own transaction: a malformed or conflicting row is recorded
// in the report and the batch continues.
type BulkCreateShipmentsCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewBulkCreateShipmentsCommandHandler creates a handler for bulk uploads.
func NewBulkCreateShipmentsCommandHandler(uowFactory ShipmentUoWFactory) BulkCreateShipmentsCommandHandler {
	return BulkCreateShipmentsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes every row and returns the aggregate report. The returned
// error covers command-level problems only; row failures land in the report.
func (h *BulkCreateShipmentsCommandHandler) Handle(ctx context.Context, cmd BulkCreateShipmentsCommand) (BulkCreateReport, error) {
	if err := cmd.Validate(); err != nil {
		return BulkCreateReport{}, err
	}

	report := BulkCreateReport{TotalRows: len(cmd.Rows())}

	for i, row := range cmd.Rows() {
		if err := h.createOne(ctx, cmd.Tenant(), row); err != nil {
			report.ErrorCount++
			report.Errors = append(report.Errors, fmt.Sprintf("row %d: %s", i+1, err))
			continue
		}
		report.SuccessCount++
	}

	return report, nil
}

func (h *BulkCreateShipmentsCommandHandler) createOne(ctx context.Context, tenant kernel.Tenant, row BulkShipmentRow) error {
	sender, err := shipment.NewParty(
		row.SenderName, row.SenderPhone, row.SenderAddress,
		row.SenderPincode, row.SenderCity, row.SenderState,
	)
	if err != nil {
		return fmt.Errorf("sender: %w", err)
	}

	receiver, err := shipment.NewParty(
		row.ReceiverName, row.ReceiverPhone, row.ReceiverAddress,
		row.ReceiverPincode, row.ReceiverCity, row.ReceiverState,
	)
	if err != nil {
		return fmt.Errorf("receiver: %w", err)
	}

	serviceType, err := shipment.ServiceTypeFromString(row.ServiceType)
	if err != nil {
		return err
	}

	aggregate, err := shipment.NewShipment(
		kernel.NewUUID(),
		tenant,
		sender,
		receiver,
		row.WeightKg,
		shipment.Dimensions{LengthCm: row.LengthCm, WidthCm: row.WidthCm, HeightCm: row.HeightCm},
		row.Pieces,
		row.DeclaredValue,
		serviceType,
		shipment.Bulk,
		row.TotalCharge,
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ShipmentRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
