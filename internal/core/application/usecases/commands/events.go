package commands

import (
	"context"
	"log/slog"

	"courierhub/internal/core/domain/model/shipment"
	"courierhub/internal/core/ports"
)

// publishStatusChanged notifies downstream consumers after a committed status
// change. Failures are logged and swallowed: the business operation already
// committed and must not be reported as failed because of a broker hiccup.
func publishStatusChanged(ctx context.Context, publisher ports.ShipmentEventPublisher, aggregate *shipment.Shipment) {
	if publisher == nil {
		return
	}
	if err := publisher.PublishStatusChanged(ctx, aggregate); err != nil {
		slog.Warn("publishing shipment status change",
			"cn", aggregate.CN().String(),
			"status", aggregate.Status().String(),
			"error", err,
		)
	}
}
