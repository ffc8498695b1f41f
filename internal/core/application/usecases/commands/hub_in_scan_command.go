package commands

import (
	"errors"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/domain/model/shipment"
	"courierhub/internal/pkg/guard"
)

var ErrHubInScanCommandIsNotConstructed = errors.New(
	"HubInScanCommand must be created via NewHubInScanCommand constructor",
)

// HubInScanCommand represents a physical arrival scan at a hub.
type HubInScanCommand struct { //nolint:recvcheck //using for validation
	tenant     kernel.Tenant
	shipmentCN shipment.ConsignmentNumber
	hubID      kernel.UUID
	deviceID   string

	guard guard.ConstructorGuard
}

// NewHubInScanCommand creates an in-scan command.
func NewHubInScanCommand(
	tenant kernel.Tenant,
	shipmentCN shipment.ConsignmentNumber,
	hubID kernel.UUID,
	deviceID string,
) (HubInScanCommand, error) {
	cmd := HubInScanCommand{
		deviceID: deviceID,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTenant(tenant),
		cmd.setShipmentCN(shipmentCN),
		cmd.setHubID(hubID),
	); err != nil {
		return HubInScanCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command came from the constructor.
func (c HubInScanCommand) Validate() error {
	return c.guard.Validate(ErrHubInScanCommandIsNotConstructed)
}

// Tenant returns the franchise context of the caller.
func (c HubInScanCommand) Tenant() kernel.Tenant { return c.tenant }

// ShipmentCN returns the scanned consignment number.
func (c HubInScanCommand) ShipmentCN() shipment.ConsignmentNumber { return c.shipmentCN }

// HubID returns the hub where the scan happened.
func (c HubInScanCommand) HubID() kernel.UUID { return c.hubID }

// DeviceID returns the scanning device identifier, possibly empty.
func (c HubInScanCommand) DeviceID() string { return c.deviceID }

func (c *HubInScanCommand) setTenant(tenant kernel.Tenant) error {
	if err := tenant.Validate(); err != nil {
		return err
	}
	c.tenant = tenant
	return nil
}

func (c *HubInScanCommand) setShipmentCN(cn shipment.ConsignmentNumber) error {
	if err := cn.Validate(); err != nil {
		return err
	}
	c.shipmentCN = cn
	return nil
}

func (c *HubInScanCommand) setHubID(hubID kernel.UUID) error {
	if err := hubID.Validate(); err != nil {
		return err
	}
	c.hubID = hubID
	return nil
}
