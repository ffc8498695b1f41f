package queries

import (
	"context"

	"courierhub/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetManifestsQueryHandler reads manifest projection rows directly from the
// database.
type GetManifestsQueryHandler struct {
	db *gorm.DB
}

// NewGetManifestsQueryHandler creates a handler for manifest list queries.
func NewGetManifestsQueryHandler(db *gorm.DB) GetManifestsQueryHandler {
	return GetManifestsQueryHandler{db: db}
}

// Handle executes the query. Results are ordered newest first.
func (h GetManifestsQueryHandler) Handle(ctx context.Context, query GetManifestsQuery) (GetManifestsResponse, error) {
	if err := query.Validate(); err != nil {
		return GetManifestsResponse{}, err
	}

	where := "WHERE franchise_id = ?"
	args := []any{query.Tenant().FranchiseID().String()}

	if query.Status() != nil {
		where += " AND status = ?"
		args = append(args, query.Status().String())
	}
	if query.OriginHubID() != nil {
		where += " AND origin_hub_id = ?"
		args = append(args, query.OriginHubID().String())
	}
	if query.CourierCompanyID() != nil {
		where += " AND courier_company_id = ?"
		args = append(args, query.CourierCompanyID().String())
	}

	var total int64
	if err := h.db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM manifests "+where, args...).
		Scan(&total).Error; err != nil {
		return GetManifestsResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			number,
			courier_company_id,
			origin_hub_id,
			status,
			total_shipments,
			total_weight_kg
		FROM manifests
		`+where+`
		ORDER BY created_at DESC, id
		LIMIT ? OFFSET ?
	`, append(args, query.Pagination().Limit(), query.Pagination().Offset())...).Rows()
	if err != nil {
		return GetManifestsResponse{}, err
	}
	defer rows.Close()

	manifests := make([]ManifestRow, 0)
	for rows.Next() {
		var row ManifestRow
		var id, courierID, hubID uuid.UUID

		if err = rows.Scan(
			&id,
			&row.Number,
			&courierID,
			&hubID,
			&row.Status,
			&row.TotalShipments,
			&row.TotalWeightKg,
		); err != nil {
			return GetManifestsResponse{}, err
		}

		if row.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return GetManifestsResponse{}, err
		}
		if row.CourierCompanyID, err = kernel.UUIDFromBytes(courierID[:]); err != nil {
			return GetManifestsResponse{}, err
		}
		if row.OriginHubID, err = kernel.UUIDFromBytes(hubID[:]); err != nil {
			return GetManifestsResponse{}, err
		}

		manifests = append(manifests, row)
	}
	if err = rows.Err(); err != nil {
		return GetManifestsResponse{}, err
	}

	return GetManifestsResponse{Manifests: manifests, Total: total}, nil
}
