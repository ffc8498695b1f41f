package queries

import (
	"context"
	"database/sql"

	"courierhub/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListExceptionsQueryHandler reads exception projection rows directly from
// the database.
type ListExceptionsQueryHandler struct {
	db *gorm.DB
}

// NewListExceptionsQueryHandler creates a handler for exception list queries.
func NewListExceptionsQueryHandler(db *gorm.DB) ListExceptionsQueryHandler {
	return ListExceptionsQueryHandler{db: db}
}

// Handle executes the query. Results are ordered newest first.
func (h ListExceptionsQueryHandler) Handle(ctx context.Context, query ListExceptionsQuery) (ListExceptionsResponse, error) {
	if err := query.Validate(); err != nil {
		return ListExceptionsResponse{}, err
	}

	where := "WHERE e.franchise_id = ?"
	args := []any{query.Tenant().FranchiseID().String()}

	if query.Status() != nil {
		where += " AND e.status = ?"
		args = append(args, query.Status().String())
	}

	var total int64
	if err := h.db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM shipment_exceptions e "+where, args...).
		Scan(&total).Error; err != nil {
		return ListExceptionsResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			e.id,
			e.shipment_id,
			s.cn,
			e.exception_type,
			e.description,
			e.status,
			e.resolution_notes,
			e.new_shipment_status,
			e.created_at
		FROM shipment_exceptions e
		JOIN shipments s ON s.id = e.shipment_id
		`+where+`
		ORDER BY e.created_at DESC, e.id
		LIMIT ? OFFSET ?
	`, append(args, query.Pagination().Limit(), query.Pagination().Offset())...).Rows()
	if err != nil {
		return ListExceptionsResponse{}, err
	}
	defer rows.Close()

	exceptions := make([]ExceptionRow, 0)
	for rows.Next() {
		var row ExceptionRow
		var id, shipmentID uuid.UUID
		var notes, newStatus sql.NullString

		if err = rows.Scan(
			&id,
			&shipmentID,
			&row.ShipmentCN,
			&row.ExceptionType,
			&row.Description,
			&row.Status,
			&notes,
			&newStatus,
			&row.CreatedAt,
		); err != nil {
			return ListExceptionsResponse{}, err
		}

		if row.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return ListExceptionsResponse{}, err
		}
		if row.ShipmentID, err = kernel.UUIDFromBytes(shipmentID[:]); err != nil {
			return ListExceptionsResponse{}, err
		}
		row.ResolutionNotes = notes.String
		if newStatus.Valid {
			row.NewShipmentStatus = &newStatus.String
		}

		exceptions = append(exceptions, row)
	}
	if err = rows.Err(); err != nil {
		return ListExceptionsResponse{}, err
	}

	return ListExceptionsResponse{Exceptions: exceptions, Total: total}, nil
}
