package commands

import (
	"errors"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/domain/model/shipment"
	"courierhub/internal/pkg/errs"
	"courierhub/internal/pkg/guard"
)

var ErrHubOutScanCommandIsNotConstructed = errors.New(
	"HubOutScanCommand must be created via NewHubOutScanCommand constructor",
)

// HubOutScanCommand represents a physical departure scan at a hub. A nil
// next hub means the parcel leaves for final delivery.
type HubOutScanCommand struct { //nolint:recvcheck //using for validation
	tenant     kernel.Tenant
	shipmentCN shipment.ConsignmentNumber
	hubID      kernel.UUID
	deviceID   string
	nextHubID  *kernel.UUID
	routeCode  string
	vehicleID  string

	guard guard.ConstructorGuard
}

// NewHubOutScanCommand creates an out-scan command.
func NewHubOutScanCommand(
	tenant kernel.Tenant,
	shipmentCN shipment.ConsignmentNumber,
	hubID kernel.UUID,
	deviceID string,
	nextHubID *kernel.UUID,
	routeCode string,
	vehicleID string,
) (HubOutScanCommand, error) {
	cmd := HubOutScanCommand{
		deviceID:  deviceID,
		routeCode: routeCode,
		vehicleID: vehicleID,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTenant(tenant),
		cmd.setShipmentCN(shipmentCN),
		cmd.setHubID(hubID),
		cmd.setNextHubID(nextHubID),
	); err != nil {
		return HubOutScanCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command came from the constructor.
func (c HubOutScanCommand) Validate() error {
	return c.guard.Validate(ErrHubOutScanCommandIsNotConstructed)
}

// Tenant returns the franchise context of the caller.
func (c HubOutScanCommand) Tenant() kernel.Tenant { return c.tenant }

// ShipmentCN returns the scanned consignment number.
func (c HubOutScanCommand) ShipmentCN() shipment.ConsignmentNumber { return c.shipmentCN }

// HubID returns the hub the parcel departs from.
func (c HubOutScanCommand) HubID() kernel.UUID { return c.hubID }

// DeviceID returns the scanning device identifier, possibly empty.
func (c HubOutScanCommand) DeviceID() string { return c.deviceID }

// NextHubID returns the declared next hub, or nil for final delivery.
func (c HubOutScanCommand) NextHubID() *kernel.UUID { return c.nextHubID }

// RouteCode returns the linehaul route code, possibly empty.
func (c HubOutScanCommand) RouteCode() string { return c.routeCode }

// VehicleID returns the vehicle identifier, possibly empty.
func (c HubOutScanCommand) VehicleID() string { return c.vehicleID }

func (c *HubOutScanCommand) setTenant(tenant kernel.Tenant) error {
	if err := tenant.Validate(); err != nil {
		return err
	}
	c.tenant = tenant
	return nil
}

func (c *HubOutScanCommand) setShipmentCN(cn shipment.ConsignmentNumber) error {
	if err := cn.Validate(); err != nil {
		return err
	}
	c.shipmentCN = cn
	return nil
}

func (c *HubOutScanCommand) setHubID(hubID kernel.UUID) error {
	if err := hubID.Validate(); err != nil {
		return err
	}
	c.hubID = hubID
	return nil
}

func (c *HubOutScanCommand) setNextHubID(nextHubID *kernel.UUID) error {
	if nextHubID == nil {
		return nil
	}
	if err := nextHubID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("next_hub_id", err)
	}
	c.nextHubID = nextHubID
	return nil
}
