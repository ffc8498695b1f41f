package queries

import (
	"context"
	"database/sql"
	"errors"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetShipmentByIDQueryHandler reads a single shipment projection row.
type GetShipmentByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentByIDQueryHandler creates a handler for single-shipment queries.
func NewGetShipmentByIDQueryHandler(db *gorm.DB) GetShipmentByIDQueryHandler {
	return GetShipmentByIDQueryHandler{db: db}
}

// Handle executes the query.
func (h GetShipmentByIDQueryHandler) Handle(ctx context.Context, query GetShipmentByIDQuery) (ShipmentRow, error) {
	if err := query.Validate(); err != nil {
		return ShipmentRow{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			cn,
			receiver_name,
			receiver_phone,
			weight_kg,
			pieces,
			service_type,
			source,
			total_charge,
			status,
			manifest_id
		FROM shipments
		WHERE franchise_id = ? AND id = ?
	`, query.Tenant().FranchiseID().String(), query.ShipmentID().String()).Row()

	var result ShipmentRow
	var id uuid.UUID
	var manifestID uuid.NullUUID

	err := row.Scan(
		&id,
		&result.CN,
		&result.ReceiverName,
		&result.ReceiverPhone,
		&result.WeightKg,
		&result.Pieces,
		&result.ServiceType,
		&result.Source,
		&result.TotalCharge,
		&result.Status,
		&manifestID,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return ShipmentRow{}, errs.NewObjectNotFoundError("shipment_id", query.ShipmentID())
	}
	if err != nil {
		return ShipmentRow{}, err
	}

	shipmentID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return ShipmentRow{}, err
	}
	result.ID = shipmentID

	if manifestID.Valid {
		mid, midErr := kernel.UUIDFromBytes(manifestID.UUID[:])
		if midErr != nil {
			return ShipmentRow{}, midErr
		}
		result.ManifestID = &mid
	}

	return result, nil
}
