package queries

import (
	"context"
	"database/sql"

	"courierhub/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListRTOManifestsQueryHandler reads return batch projection rows directly
// from the database.
type ListRTOManifestsQueryHandler struct {
	db *gorm.DB
}

// NewListRTOManifestsQueryHandler creates a handler for RTO list queries.
func NewListRTOManifestsQueryHandler(db *gorm.DB) ListRTOManifestsQueryHandler {
	return ListRTOManifestsQueryHandler{db: db}
}

// Handle executes the query. Results are ordered newest first.
func (h ListRTOManifestsQueryHandler) Handle(ctx context.Context, query ListRTOManifestsQuery) (ListRTOManifestsResponse, error) {
	if err := query.Validate(); err != nil {
		return ListRTOManifestsResponse{}, err
	}

	where := "WHERE franchise_id = ?"
	args := []any{query.Tenant().FranchiseID().String()}

	if query.Status() != nil {
		where += " AND status = ?"
		args = append(args, query.Status().String())
	}

	var total int64
	if err := h.db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM rto_manifests "+where, args...).
		Scan(&total).Error; err != nil {
		return ListRTOManifestsResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			number,
			reason,
			origin_hub_id,
			return_hub_id,
			notes,
			status,
			shipments_count
		FROM rto_manifests
		`+where+`
		ORDER BY created_at DESC, id
		LIMIT ? OFFSET ?
	`, append(args, query.Pagination().Limit(), query.Pagination().Offset())...).Rows()
	if err != nil {
		return ListRTOManifestsResponse{}, err
	}
	defer rows.Close()

	manifests := make([]RTOManifestRow, 0)
	for rows.Next() {
		var row RTOManifestRow
		var id, originHubID, returnHubID uuid.UUID
		var notes sql.NullString

		if err = rows.Scan(
			&id,
			&row.Number,
			&row.Reason,
			&originHubID,
			&returnHubID,
			&notes,
			&row.Status,
			&row.ShipmentsCount,
		); err != nil {
			return ListRTOManifestsResponse{}, err
		}

		if row.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return ListRTOManifestsResponse{}, err
		}
		if row.OriginHubID, err = kernel.UUIDFromBytes(originHubID[:]); err != nil {
			return ListRTOManifestsResponse{}, err
		}
		if row.ReturnHubID, err = kernel.UUIDFromBytes(returnHubID[:]); err != nil {
			return ListRTOManifestsResponse{}, err
		}
		row.Notes = notes.String

		manifests = append(manifests, row)
	}
	if err = rows.Err(); err != nil {
		return ListRTOManifestsResponse{}, err
	}

	return ListRTOManifestsResponse{Manifests: manifests, Total: total}, nil
}
