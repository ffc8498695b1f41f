package commands

import (
	"errors"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/domain/model/shipment"
	"courierhub/internal/pkg/guard"
)

var ErrUpdateShipmentStatusCommandIsNotConstructed = errors.New(
	"UpdateShipmentStatusCommand must be created via NewUpdateShipmentStatusCommand constructor",
)

// UpdateShipmentStatusCommand represents an administrative status override.
// The target status still has to be reachable through the lifecycle table.
type UpdateShipmentStatusCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	tenant     kernel.Tenant
	newStatus  shipment.Status

	guard guard.ConstructorGuard
}

// NewUpdateShipmentStatusCommand creates a status override command.
func NewUpdateShipmentStatusCommand(
	shipmentID kernel.UUID,
	tenant kernel.Tenant,
	newStatus shipment.Status,
) (UpdateShipmentStatusCommand, error) {
	cmd := UpdateShipmentStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setTenant(tenant),
		cmd.setNewStatus(newStatus),
	); err != nil {
		return UpdateShipmentStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateShipmentStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateShipmentStatusCommandIsNotConstructed)
}

// ShipmentID returns the target shipment identifier.
func (c UpdateShipmentStatusCommand) ShipmentID() kernel.UUID { return c.shipmentID }

// Tenant returns the franchise context of the caller.
func (c UpdateShipmentStatusCommand) Tenant() kernel.Tenant { return c.tenant }

// NewStatus returns the requested target status.
func (c UpdateShipmentStatusCommand) NewStatus() shipment.Status { return c.newStatus }

func (c *UpdateShipmentStatusCommand) setShipmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.shipmentID = id
	return nil
}

func (c *UpdateShipmentStatusCommand) setTenant(tenant kernel.Tenant) error {
	if err := tenant.Validate(); err != nil {
		return err
	}
	c.tenant = tenant
	return nil
}

func (c *UpdateShipmentStatusCommand) setNewStatus(status shipment.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.newStatus = status
	return nil
}
