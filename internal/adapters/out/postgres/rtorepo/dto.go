// Package rtorepo provides data transfer objects and mapping functions for
// return-to-origin batch persistence.
package rtorepo

import (
	"time"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/domain/model/rto"

	"github.com/google/uuid"
)

// RTOManifestDTO represents the database structure for persisting
// return-to-origin batch aggregates.
type RTOManifestDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	FranchiseID    uuid.UUID `gorm:"type:uuid;index"`
	Number         string    `gorm:"uniqueIndex"`
	Reason         string
	OriginHubID    uuid.UUID `gorm:"type:uuid;index"`
	ReturnHubID    uuid.UUID `gorm:"type:uuid"`
	Notes          string
	Status         string `gorm:"index"`
	ShipmentsCount int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName specifies the database table name for RTO batch entities.
func (RTOManifestDTO) TableName() string {
	return "rto_manifests"
}

// RTOMemberDTO is one append-only membership row joining a shipment to the
// batch it travels back in.
type RTOMemberDTO struct {
	RTOManifestID uuid.UUID `gorm:"type:uuid;primaryKey;column:rto_manifest_id"`
	ShipmentID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	FranchiseID   uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt     time.Time
}

// TableName specifies the database table name for RTO membership rows.
func (RTOMemberDTO) TableName() string {
	return "rto_manifest_shipments"
}

// fromDomain converts an RTO batch aggregate to its database representation.
func fromDomain(aggregate *rto.Manifest) RTOManifestDTO {
	return RTOManifestDTO{
		ID:             aggregate.ID().Bytes(),
		FranchiseID:    aggregate.Tenant().FranchiseID().Bytes(),
		Number:         aggregate.Number(),
		Reason:         aggregate.Reason().String(),
		OriginHubID:    aggregate.OriginHubID().Bytes(),
		ReturnHubID:    aggregate.ReturnHubID().Bytes(),
		Notes:          aggregate.Notes(),
		Status:         aggregate.Status().String(),
		ShipmentsCount: aggregate.ShipmentsCount(),
	}
}

// toDomain converts a database DTO to an RTO batch aggregate via RestoreManifest.
func toDomain(dto RTOManifestDTO) (*rto.Manifest, error) {
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

	reason, err := rto.ReasonFromString(dto.Reason)
	if err != nil {
		return nil, err
	}

	originHubID, err := kernel.UUIDFromBytes(dto.OriginHubID[:])
	if err != nil {
		return nil, err
	}

	returnHubID, err := kernel.UUIDFromBytes(dto.ReturnHubID[:])
	if err != nil {
		return nil, err
	}

	status, err := rto.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return rto.RestoreManifest(
		id,
		tenant,
		dto.Number,
		reason,
		originHubID,
		returnHubID,
		dto.Notes,
		status,
		dto.ShipmentsCount,
	)
}
