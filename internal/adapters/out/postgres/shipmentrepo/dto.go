// Package shipmentrepo provides data transfer objects and mapping functions for
// shipment persistence. It implements the repository pattern for the shipment
// aggregate, handling conversion between domain entities and database rows.
package shipmentrepo

import (
	"time"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

// ShipmentDTO represents the database structure for persisting shipment
// aggregates. The consignment number is unique within a franchise.
type ShipmentDTO struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	FranchiseID   uuid.UUID  `gorm:"type:uuid;index;uniqueIndex:idx_shipments_franchise_cn"`
	CN            string     `gorm:"column:cn;uniqueIndex:idx_shipments_franchise_cn"`
	Sender        PartyDTO   `gorm:"embedded;embeddedPrefix:sender_"`
	Receiver      PartyDTO   `gorm:"embedded;embeddedPrefix:receiver_"`
	WeightKg      float64    `gorm:"column:weight_kg"`
	LengthCm      float64    `gorm:"column:length_cm"`
	WidthCm       float64    `gorm:"column:width_cm"`
	HeightCm      float64    `gorm:"column:height_cm"`
	Pieces        int
	DeclaredValue float64    `gorm:"column:declared_value"`
	ServiceType   string     `gorm:"column:service_type"`
	Source        string
	TotalCharge   float64    `gorm:"column:total_charge"`
	Status        string     `gorm:"index"`
	ManifestID    *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName specifies the database table name for shipment entities.
func (ShipmentDTO) TableName() string {
	return "shipments"
}

// PartyDTO represents the embedded sender or receiver columns within the
// shipments table.
type PartyDTO struct {
	Name    string
	Phone   string
	Address string
	Pincode string
	City    string
	State   string
}

// fromDomain converts a shipment aggregate to its database representation.
func fromDomain(aggregate *shipment.Shipment) ShipmentDTO {
	var manifestID *uuid.UUID
	if id := aggregate.ManifestID(); id != nil {
		raw := id.Bytes()
		manifestID = &raw
	}

	return ShipmentDTO{
		ID:            aggregate.ID().Bytes(),
		FranchiseID:   aggregate.Tenant().FranchiseID().Bytes(),
		CN:            aggregate.CN().String(),
		Sender:        partyFromDomain(aggregate.Sender()),
		Receiver:      partyFromDomain(aggregate.Receiver()),
		WeightKg:      aggregate.WeightKg(),
		LengthCm:      aggregate.Dimensions().LengthCm,
		WidthCm:       aggregate.Dimensions().WidthCm,
		HeightCm:      aggregate.Dimensions().HeightCm,
		Pieces:        aggregate.Pieces(),
		DeclaredValue: aggregate.DeclaredValue(),
		ServiceType:   aggregate.ServiceType().String(),
		Source:        aggregate.Source().String(),
		TotalCharge:   aggregate.TotalCharge(),
		Status:        aggregate.Status().String(),
		ManifestID:    manifestID,
	}
}

func partyFromDomain(p shipment.Party) PartyDTO {
	return PartyDTO{
		Name:    p.Name(),
		Phone:   p.Phone(),
		Address: p.Address(),
		Pincode: p.Pincode(),
		City:    p.City(),
		State:   p.State(),
	}
}

// toDomain converts a database DTO back into a shipment aggregate using
// RestoreShipment, re-validating every invariant on the way out.
func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
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

	cn, err := shipment.ConsignmentNumberFromString(dto.CN)
	if err != nil {
		return nil, err
	}

	sender, err := partyToDomain(dto.Sender)
	if err != nil {
		return nil, err
	}
	receiver, err := partyToDomain(dto.Receiver)
	if err != nil {
		return nil, err
	}

	serviceType, err := shipment.ServiceTypeFromString(dto.ServiceType)
	if err != nil {
		return nil, err
	}
	source, err := shipment.SourceFromString(dto.Source)
	if err != nil {
		return nil, err
	}
	status, err := shipment.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var manifestID *kernel.UUID
	if dto.ManifestID != nil {
		mID, manifestErr := kernel.UUIDFromBytes((*dto.ManifestID)[:])
		if manifestErr != nil {
			return nil, manifestErr
		}
		manifestID = &mID
	}

	return shipment.RestoreShipment(
		id,
		tenant,
		cn,
		sender,
		receiver,
		dto.WeightKg,
		shipment.Dimensions{LengthCm: dto.LengthCm, WidthCm: dto.WidthCm, HeightCm: dto.HeightCm},
		dto.Pieces,
		dto.DeclaredValue,
		serviceType,
		source,
		dto.TotalCharge,
		status,
		manifestID,
	)
}

func partyToDomain(dto PartyDTO) (shipment.Party, error) {
	return shipment.NewParty(dto.Name, dto.Phone, dto.Address, dto.Pincode, dto.City, dto.State)
}
