package queries

import (
	"context"

	"courierhub/internal/core/domain/model/manifest"
	"courierhub/internal/core/domain/model/scan"
	"courierhub/internal/core/domain/model/shipment"

	"gorm.io/gorm"
)

// CountStrandedShipmentsQueryHandler counts shipments across all franchises
// that sit in MANIFESTED while their manifest is already closed and no hub
// has recorded an arrival scan. Such shipments left the origin hub on paper
// but never showed up anywhere.
type CountStrandedShipmentsQueryHandler struct {
	db *gorm.DB
}

// NewCountStrandedShipmentsQueryHandler creates a handler for the stranded
// shipment count.
func NewCountStrandedShipmentsQueryHandler(db *gorm.DB) CountStrandedShipmentsQueryHandler {
	return CountStrandedShipmentsQueryHandler{db: db}
}

// Handle executes the count.
func (h CountStrandedShipmentsQueryHandler) Handle(ctx context.Context) (int64, error) {
	var total int64
	err := h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*)
		FROM shipments s
		JOIN manifests m ON m.id = s.manifest_id
		WHERE s.status = ?
		  AND m.status = ?
		  AND NOT EXISTS (
			SELECT 1
			FROM hub_scan_events e
			WHERE e.franchise_id = s.franchise_id
			  AND e.shipment_cn = s.cn
			  AND e.scan_type = ?
		  )
	`, shipment.Manifested.String(), manifest.Closed.String(), scan.In.String()).
		Scan(&total).Error
	if err != nil {
		return 0, err
	}

	return total, nil
}
