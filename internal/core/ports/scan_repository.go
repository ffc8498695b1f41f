package ports

import (
	"context"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/domain/model/scan"
	"courierhub/internal/core/domain/model/shipment"
)

// ScanRepository defines the persistence contract for the append-only scan
// event log.
type ScanRepository interface {
	// Add persists a scan event. Returns ConflictError when an event with
	// the same (tenant, consignment number, hub, scan type) already exists.
	Add(ctx context.Context, event scan.Event) error

	// Has reports whether a scan of the given type was already recorded
	// for the consignment number at the hub.
	Has(ctx context.Context, tenant kernel.Tenant, cn shipment.ConsignmentNumber, hubID kernel.UUID, scanType scan.Type) (bool, error)

	// LastOutScan returns the most recent OUT scan for the consignment
	// number across all hubs, or ObjectNotFoundError when none exists.
	LastOutScan(ctx context.Context, tenant kernel.Tenant, cn shipment.ConsignmentNumber) (scan.Event, error)
}
