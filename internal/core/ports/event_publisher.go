package ports

import (
	"context"

	"courierhub/internal/core/domain/model/shipment"
)

// ShipmentEventPublisher notifies downstream consumers about shipment status
// changes. Publishing happens after the owning transaction commits and is
// best-effort: a failed publish is logged, never rolled back into the
// business operation.
type ShipmentEventPublisher interface {
	PublishStatusChanged(ctx context.Context, aggregate *shipment.Shipment) error
}
