package queries

import (
	"context"

	"courierhub/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListShipmentsQueryHandler reads shipment projection rows directly from
// the database.
type ListShipmentsQueryHandler struct {
	db *gorm.DB
}

// NewListShipmentsQueryHandler creates a handler for shipment list queries.
func NewListShipmentsQueryHandler(db *gorm.DB) ListShipmentsQueryHandler {
	return ListShipmentsQueryHandler{db: db}
}

// Handle executes the query. Results are ordered newest first.
func (h ListShipmentsQueryHandler) Handle(ctx context.Context, query ListShipmentsQuery) (ListShipmentsResponse, error) {
	if err := query.Validate(); err != nil {
		return ListShipmentsResponse{}, err
	}

	where := "WHERE franchise_id = ?"
	args := []any{query.Tenant().FranchiseID().String()}

	if query.Status() != nil {
		where += " AND status = ?"
		args = append(args, query.Status().String())
	}
	if query.Source() != nil {
		where += " AND source = ?"
		args = append(args, query.Source().String())
	}
	if query.Search() != "" {
		where += " AND (cn ILIKE ? OR receiver_name ILIKE ? OR receiver_phone ILIKE ?)"
		term := "%" + query.Search() + "%"
		args = append(args, term, term, term)
	}

	var total int64
	if err := h.db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM shipments "+where, args...).
		Scan(&total).Error; err != nil {
		return ListShipmentsResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
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
		`+where+`
		ORDER BY created_at DESC, id
		LIMIT ? OFFSET ?
	`, append(args, query.Pagination().Limit(), query.Pagination().Offset())...).Rows()
	if err != nil {
		return ListShipmentsResponse{}, err
	}
	defer rows.Close()

	shipments := make([]ShipmentRow, 0)
	for rows.Next() {
		var row ShipmentRow
		var id uuid.UUID
		var manifestID uuid.NullUUID

		if err = rows.Scan(
			&id,
			&row.CN,
			&row.ReceiverName,
			&row.ReceiverPhone,
			&row.WeightKg,
			&row.Pieces,
			&row.ServiceType,
			&row.Source,
			&row.TotalCharge,
			&row.Status,
			&manifestID,
		); err != nil {
			return ListShipmentsResponse{}, err
		}

		shipmentID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return ListShipmentsResponse{}, idErr
		}
		row.ID = shipmentID

		if manifestID.Valid {
			mid, midErr := kernel.UUIDFromBytes(manifestID.UUID[:])
			if midErr != nil {
				return ListShipmentsResponse{}, midErr
			}
			row.ManifestID = &mid
		}

		shipments = append(shipments, row)
	}
	if err = rows.Err(); err != nil {
		return ListShipmentsResponse{}, err
	}

	return ListShipmentsResponse{Shipments: shipments, Total: total}, nil
}
