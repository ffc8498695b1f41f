// Package scanrepo provides data transfer objects and mapping functions for
// the append-only hub scan event log.
package scanrepo

import (
	"time"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/domain/model/scan"
	"courierhub/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

// ScanEventDTO represents one immutable scan row. The composite unique index
// enforces at most one IN and one OUT per consignment number per hub within
// a franchise, even under concurrent writers.
type ScanEventDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	FranchiseID uuid.UUID  `gorm:"type:uuid;uniqueIndex:idx_scans_dedup"`
	ShipmentCN  string     `gorm:"column:shipment_cn;uniqueIndex:idx_scans_dedup"`
	HubID       uuid.UUID  `gorm:"type:uuid;uniqueIndex:idx_scans_dedup"`
	ScanType    string     `gorm:"column:scan_type;uniqueIndex:idx_scans_dedup"`
	DeviceID    string     `gorm:"column:device_id"`
	NextHubID   *uuid.UUID `gorm:"type:uuid"`
	RouteCode   string     `gorm:"column:route_code"`
	VehicleID   string     `gorm:"column:vehicle_id"`
	OccurredAt  time.Time  `gorm:"index"`
}

// TableName specifies the database table name for scan events.
func (ScanEventDTO) TableName() string {
	return "hub_scan_events"
}

// fromDomain converts a scan event to its database representation.
func fromDomain(event scan.Event) ScanEventDTO {
	var nextHubID *uuid.UUID
	if id := event.NextHubID(); id != nil {
		raw := id.Bytes()
		nextHubID = &raw
	}

	return ScanEventDTO{
		ID:          event.ID().Bytes(),
		FranchiseID: event.Tenant().FranchiseID().Bytes(),
		ShipmentCN:  event.ShipmentCN().String(),
		HubID:       event.HubID().Bytes(),
		ScanType:    event.ScanType().String(),
		DeviceID:    event.DeviceID(),
		NextHubID:   nextHubID,
		RouteCode:   event.RouteCode(),
		VehicleID:   event.VehicleID(),
		OccurredAt:  event.OccurredAt(),
	}
}

// toDomain converts a database DTO back into a scan event via RestoreEvent.
func toDomain(dto ScanEventDTO) (scan.Event, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return scan.Event{}, err
	}

	franchiseID, err := kernel.UUIDFromBytes(dto.FranchiseID[:])
	if err != nil {
		return scan.Event{}, err
	}
	tenant, err := kernel.NewTenant(franchiseID)
	if err != nil {
		return scan.Event{}, err
	}

	cn, err := shipment.ConsignmentNumberFromString(dto.ShipmentCN)
	if err != nil {
		return scan.Event{}, err
	}

	hubID, err := kernel.UUIDFromBytes(dto.HubID[:])
	if err != nil {
		return scan.Event{}, err
	}

	scanType, err := scan.TypeFromString(dto.ScanType)
	if err != nil {
		return scan.Event{}, err
	}

	var nextHubID *kernel.UUID
	if dto.NextHubID != nil {
		nID, nextErr := kernel.UUIDFromBytes((*dto.NextHubID)[:])
		if nextErr != nil {
			return scan.Event{}, nextErr
		}
		nextHubID = &nID
	}

	return scan.RestoreEvent(
		id,
		tenant,
		cn,
		hubID,
		dto.DeviceID,
		scanType,
		nextHubID,
		dto.RouteCode,
		dto.VehicleID,
		dto.OccurredAt,
	)
}
