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

// GetManifestByIDQueryHandler reads one manifest and its member shipments.
type GetManifestByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetManifestByIDQueryHandler creates a handler for single-manifest queries.
func NewGetManifestByIDQueryHandler(db *gorm.DB) GetManifestByIDQueryHandler {
	return GetManifestByIDQueryHandler{db: db}
}

// Handle executes the query. Returns ObjectNotFoundError when the manifest
// does not exist in the caller's tenant.
func (h GetManifestByIDQueryHandler) Handle(ctx context.Context, query GetManifestByIDQuery) (GetManifestByIDResponse, error) {
	if err := query.Validate(); err != nil {
		return GetManifestByIDResponse{}, err
	}

	var resp GetManifestByIDResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			number,
			courier_company_id,
			origin_hub_id,
			status,
			total_shipments,
			total_weight_kg
		FROM manifests
		WHERE franchise_id = ? AND id = ?
	`, query.Tenant().FranchiseID().String(), query.ManifestID().String()).Row()

	var id, courierID, hubID uuid.UUID
	err := row.Scan(
		&id,
		&resp.Manifest.Number,
		&courierID,
		&hubID,
		&resp.Manifest.Status,
		&resp.Manifest.TotalShipments,
		&resp.Manifest.TotalWeightKg,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetManifestByIDResponse{}, errs.NewObjectNotFoundError("manifest_id", query.ManifestID().String())
	}
	if err != nil {
		return GetManifestByIDResponse{}, err
	}

	if resp.Manifest.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetManifestByIDResponse{}, err
	}
	if resp.Manifest.CourierCompanyID, err = kernel.UUIDFromBytes(courierID[:]); err != nil {
		return GetManifestByIDResponse{}, err
	}
	if resp.Manifest.OriginHubID, err = kernel.UUIDFromBytes(hubID[:]); err != nil {
		return GetManifestByIDResponse{}, err
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
		WHERE franchise_id = ? AND manifest_id = ?
		ORDER BY cn
	`, query.Tenant().FranchiseID().String(), query.ManifestID().String()).Rows()
	if err != nil {
		return GetManifestByIDResponse{}, err
	}
	defer rows.Close()

	resp.Shipments = make([]ShipmentRow, 0)
	for rows.Next() {
		var member ShipmentRow
		var memberID uuid.UUID
		var manifestID uuid.NullUUID

		if err = rows.Scan(
			&memberID,
			&member.CN,
			&member.ReceiverName,
			&member.ReceiverPhone,
			&member.WeightKg,
			&member.Pieces,
			&member.ServiceType,
			&member.Source,
			&member.TotalCharge,
			&member.Status,
			&manifestID,
		); err != nil {
			return GetManifestByIDResponse{}, err
		}

		if member.ID, err = kernel.UUIDFromBytes(memberID[:]); err != nil {
			return GetManifestByIDResponse{}, err
		}
		if manifestID.Valid {
			mid, midErr := kernel.UUIDFromBytes(manifestID.UUID[:])
			if midErr != nil {
				return GetManifestByIDResponse{}, midErr
			}
			member.ManifestID = &mid
		}

		resp.Shipments = append(resp.Shipments, member)
	}
	if err = rows.Err(); err != nil {
		return GetManifestByIDResponse{}, err
	}

	return resp, nil
}
