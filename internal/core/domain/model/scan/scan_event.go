package scan

import (
	"errors"
	"time"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/domain/model/shipment"
	"courierhub/internal/pkg/errs"
)

// Type distinguishes arrival from departure scans.
type Type int

const (
	// TypeUnknown represents an invalid scan type.
	TypeUnknown Type = iota

	// In records physical arrival of a shipment at a hub.
	In

	// Out records physical departure from a hub, either toward another hub
	// (linehaul) or toward final delivery.
	Out
)

// TypeFromString parses the wire representation of a scan type.
func TypeFromString(s string) (Type, error) {
	switch s {
	case "IN":
		return In, nil
	case "OUT":
		return Out, nil
	default:
		return TypeUnknown, errs.NewValueIsInvalidError("scan_type")
	}
}

// String returns the wire representation of the scan type.
func (t Type) String() string {
	switch t {
	case In:
		return "IN"
	case Out:
		return "OUT"
	default:
		return "UNKNOWN"
	}
}

// Validate rejects values other than In and Out.
func (t Type) Validate() error {
	if t != In && t != Out {
		return errs.NewValueIsInvalidError("scan_type")
	}
	return nil
}

// Event is the immutable record of one physical scan. Events are only ever
// inserted; the database enforces at most one IN and one OUT per
// (shipment, hub) through a unique constraint, which is what makes replayed
// scans fail as conflicts instead of double-counting transit legs.
type Event struct {
	id         kernel.UUID
	tenant     kernel.Tenant
	shipmentCN shipment.ConsignmentNumber
	hubID      kernel.UUID
	deviceID   string
	scanType   Type
	nextHubID  *kernel.UUID
	routeCode  string
	vehicleID  string
	occurredAt time.Time
}

// NewInScan creates an arrival event.
func NewInScan(
	tenant kernel.Tenant,
	shipmentCN shipment.ConsignmentNumber,
	hubID kernel.UUID,
	deviceID string,
) (Event, error) {
	e := Event{
		id:         kernel.NewUUID(),
		tenant:     tenant,
		shipmentCN: shipmentCN,
		hubID:      hubID,
		deviceID:   deviceID,
		scanType:   In,
		occurredAt: time.Now().UTC(),
	}
	if err := e.Validate(); err != nil {
		return Event{}, err
	}
	return e, nil
}

// NewOutScan creates a departure event. A nil nextHubID means the shipment
// leaves for final delivery rather than another hub.
func NewOutScan(
	tenant kernel.Tenant,
	shipmentCN shipment.ConsignmentNumber,
	hubID kernel.UUID,
	deviceID string,
	nextHubID *kernel.UUID,
	routeCode string,
	vehicleID string,
) (Event, error) {
	if nextHubID != nil {
		if err := nextHubID.Validate(); err != nil {
			return Event{}, errs.NewValueIsInvalidErrorWithCause("next_hub_id", err)
		}
		if nextHubID.IsEqual(hubID) {
			return Event{}, errs.NewValueIsInvalidErrorWithCause("next_hub_id",
				errors.New("next hub must differ from the scanning hub"))
		}
	}

	e := Event{
		id:         kernel.NewUUID(),
		tenant:     tenant,
		shipmentCN: shipmentCN,
		hubID:      hubID,
		deviceID:   deviceID,
		scanType:   Out,
		nextHubID:  nextHubID,
		routeCode:  routeCode,
		vehicleID:  vehicleID,
		occurredAt: time.Now().UTC(),
	}
	if err := e.Validate(); err != nil {
		return Event{}, err
	}
	return e, nil
}

// RestoreEvent reconstructs a scan event from persistence.
func RestoreEvent(
	id kernel.UUID,
	tenant kernel.Tenant,
	shipmentCN shipment.ConsignmentNumber,
	hubID kernel.UUID,
	deviceID string,
	scanType Type,
	nextHubID *kernel.UUID,
	routeCode string,
	vehicleID string,
	occurredAt time.Time,
) (Event, error) {
	e := Event{
		id:         id,
		tenant:     tenant,
		shipmentCN: shipmentCN,
		hubID:      hubID,
		deviceID:   deviceID,
		scanType:   scanType,
		nextHubID:  nextHubID,
		routeCode:  routeCode,
		vehicleID:  vehicleID,
		occurredAt: occurredAt,
	}
	if err := e.Validate(); err != nil {
		return Event{}, err
	}
	return e, nil
}

// ID returns the event identifier.
func (e Event) ID() kernel.UUID { return e.id }

// Tenant returns the owning franchise context.
func (e Event) Tenant() kernel.Tenant { return e.tenant }

// ShipmentCN returns the scanned consignment number.
func (e Event) ShipmentCN() shipment.ConsignmentNumber { return e.shipmentCN }

// HubID returns the hub where the scan happened.
func (e Event) HubID() kernel.UUID { return e.hubID }

// DeviceID returns the scanning device, possibly empty.
func (e Event) DeviceID() string { return e.deviceID }

// ScanType returns In or Out.
func (e Event) ScanType() Type { return e.scanType }

// NextHubID returns the destination hub of an out-scan; nil means final
// delivery, and always nil for in-scans.
func (e Event) NextHubID() *kernel.UUID { return e.nextHubID }

// RouteCode returns the linehaul route code, possibly empty.
func (e Event) RouteCode() string { return e.routeCode }

// VehicleID returns the linehaul vehicle, possibly empty.
func (e Event) VehicleID() string { return e.vehicleID }

// OccurredAt returns the scan timestamp.
func (e Event) OccurredAt() time.Time { return e.occurredAt }

// IsLinehaul reports whether this is an out-scan toward another hub.
func (e Event) IsLinehaul() bool {
	return e.scanType == Out && e.nextHubID != nil
}

// Validate rejects incomplete events.
func (e Event) Validate() error {
	if err := errors.Join(
		e.id.Validate(),
		e.tenant.Validate(),
		e.shipmentCN.Validate(),
		e.scanType.Validate(),
	); err != nil {
		return err
	}
	if err := e.hubID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("hub_id", err)
	}
	if e.occurredAt.IsZero() {
		return errs.NewValueIsRequiredError("occurred_at")
	}
	return nil
}
