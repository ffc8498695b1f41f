package commands

import (
	"errors"
	"strings"

	"courierhub/internal/core/domain/model/exception"
	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/pkg/errs"
	"courierhub/internal/pkg/guard"
)

var ErrRaiseExceptionCommandIsNotConstructed = errors.New(
	"RaiseExceptionCommand must be created via NewRaiseExceptionCommand constructor",
)

// RaiseExceptionCommand represents a request to flag a problem on a
// shipment, blocking its normal progression.
type RaiseExceptionCommand struct { //nolint:recvcheck //using for validation
	shipmentID    kernel.UUID
	tenant        kernel.Tenant
	exceptionType exception.Type
	description   string

	guard guard.ConstructorGuard
}

// NewRaiseExceptionCommand creates an exception-raising command.
func NewRaiseExceptionCommand(
	shipmentID kernel.UUID,
	tenant kernel.Tenant,
	exceptionType exception.Type,
	description string,
) (RaiseExceptionCommand, error) {
	cmd := RaiseExceptionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setTenant(tenant),
		cmd.setExceptionType(exceptionType),
		cmd.setDescription(description),
	); err != nil {
		return RaiseExceptionCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command came from the constructor.
func (c RaiseExceptionCommand) Validate() error {
	return c.guard.Validate(ErrRaiseExceptionCommandIsNotConstructed)
}

// ShipmentID returns the affected shipment identifier.
func (c RaiseExceptionCommand) ShipmentID() kernel.UUID { return c.shipmentID }

// Tenant returns the franchise context of the caller.
func (c RaiseExceptionCommand) Tenant() kernel.Tenant { return c.tenant }

// ExceptionType returns the problem classification.
func (c RaiseExceptionCommand) ExceptionType() exception.Type { return c.exceptionType }

// Description returns the operator's problem description.
func (c RaiseExceptionCommand) Description() string { return c.description }

func (c *RaiseExceptionCommand) setShipmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.shipmentID = id
	return nil
}

func (c *RaiseExceptionCommand) setTenant(tenant kernel.Tenant) error {
	if err := tenant.Validate(); err != nil {
		return err
	}
	c.tenant = tenant
	return nil
}

func (c *RaiseExceptionCommand) setExceptionType(t exception.Type) error {
	if err := t.Validate(); err != nil {
		return err
	}
	c.exceptionType = t
	return nil
}

func (c *RaiseExceptionCommand) setDescription(description string) error {
	description = strings.TrimSpace(description)
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}
	c.description = description
	return nil
}
