// Package manifestrepo provides data transfer objects and mapping functions
// for manifest persistence, including the append-only removal audit trail.
package manifestrepo

import (
	"time"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/domain/model/manifest"

	"github.com/google/uuid"
)

// ManifestDTO represents the database structure for persisting manifest
// aggregates. Member totals are stored denormalized and kept in sync by the
// aggregate inside the owning transaction.
type ManifestDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	FranchiseID      uuid.UUID `gorm:"type:uuid;index"`
	Number           string    `gorm:"uniqueIndex"`
	CourierCompanyID uuid.UUID `gorm:"type:uuid;index"`
	OriginHubID      uuid.UUID `gorm:"type:uuid;index"`
	Status           string    `gorm:"index"`
	TotalShipments   int
	TotalWeightKg    float64 `gorm:"column:total_weight_kg"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName specifies the database table name for manifest entities.
func (ManifestDTO) TableName() string {
	return "manifests"
}

// RemovalDTO represents one audit row written when a shipment is pulled off
// an open manifest. Rows are insert-only.
type RemovalDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	FranchiseID uuid.UUID `gorm:"type:uuid;index"`
	ManifestID  uuid.UUID `gorm:"type:uuid;index"`
	ShipmentID  uuid.UUID `gorm:"type:uuid;index"`
	Reason      string
	RemovedAt   time.Time
}

// TableName specifies the database table name for removal audit rows.
func (RemovalDTO) TableName() string {
	return "manifest_removals"
}

// fromDomain converts a manifest aggregate to its database representation.
func fromDomain(aggregate *manifest.Manifest) ManifestDTO {
	return ManifestDTO{
		ID:               aggregate.ID().Bytes(),
		FranchiseID:      aggregate.Tenant().FranchiseID().Bytes(),
		Number:           aggregate.Number(),
		CourierCompanyID: aggregate.CourierCompanyID().Bytes(),
		OriginHubID:      aggregate.OriginHubID().Bytes(),
		Status:           aggregate.Status().String(),
		TotalShipments:   aggregate.TotalShipments(),
		TotalWeightKg:    aggregate.TotalWeightKg(),
	}
}

// toDomain converts a database DTO to a manifest aggregate via RestoreManifest.
func toDomain(dto ManifestDTO) (*manifest.Manifest, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	franchiseID, err := kernel.UUIDFromBytes(dto.FranchiseID[:])
	if err != nil {
		return nil, err
	}
	tenant, err := kernel.NewTenant(franchiseID)
	if err != nil {
		return nil, err
	}

	courierCompanyID, err := kernel.UUIDFromBytes(dto.CourierCompanyID[:])
	if err != nil {
		return nil, err
	}

	originHubID, err := kernel.UUIDFromBytes(dto.OriginHubID[:])
	if err != nil {
		return nil, err
	}

	status, err := manifest.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return manifest.RestoreManifest(
		id,
		tenant,
		dto.Number,
		courierCompanyID,
		originHubID,
		status,
		dto.TotalShipments,
		dto.TotalWeightKg,
	)
}

// removalFromDomain converts a removal record to its database representation.
func removalFromDomain(record manifest.Removal) RemovalDTO {
	return RemovalDTO{
		ID:          record.ID().Bytes(),
		FranchiseID: record.Tenant().FranchiseID().Bytes(),
		ManifestID:  record.ManifestID().Bytes(),
		ShipmentID:  record.ShipmentID().Bytes(),
		Reason:      record.Reason(),
		RemovedAt:   record.RemovedAt(),
	}
}
