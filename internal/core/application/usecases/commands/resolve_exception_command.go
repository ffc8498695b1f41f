package commands

import (
	"errors"
	"strings"

	"courierhub/internal/core/domain/model/exception"
	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/domain/model/shipment"
	"courierhub/internal/pkg/errs"
	"courierhub/internal/pkg/guard"
)

var ErrResolveExceptionCommandIsNotConstructed = errors.New(
	"ResolveExceptionCommand must be created via NewResolveExceptionCommand constructor",
)

// ResolveExceptionCommand represents an operator verdict on a PENDING
// exception: RESOLVED with an optional new shipment status (defaulting to
// CREATED, re-entering the pipeline), or ESCALATED with no shipment change.
type ResolveExceptionCommand struct { //nolint:recvcheck //using for validation
	exceptionID     kernel.UUID
	shipmentID      kernel.UUID
	tenant          kernel.Tenant
	verdict         exception.Status
	resolutionNotes string
	newStatus       *shipment.Status

	guard guard.ConstructorGuard
}

// NewResolveExceptionCommand creates a resolution command. Resolution notes
// are mandatory; newStatus is only meaningful with a RESOLVED verdict.
func NewResolveExceptionCommand(
	exceptionID kernel.UUID,
	shipmentID kernel.UUID,
	tenant kernel.Tenant,
	verdict exception.Status,
	resolutionNotes string,
	newStatus *shipment.Status,
) (ResolveExceptionCommand, error) {
	cmd := ResolveExceptionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setExceptionID(exceptionID),
		cmd.setShipmentID(shipmentID),
		cmd.setTenant(tenant),
		cmd.setVerdict(verdict),
		cmd.setResolutionNotes(resolutionNotes),
		cmd.setNewStatus(newStatus),
	); err != nil {
		return ResolveExceptionCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command came from the constructor.
func (c ResolveExceptionCommand) Validate() error {
	return c.guard.Validate(ErrResolveExceptionCommandIsNotConstructed)
}

// ExceptionID returns the exception being resolved.
func (c ResolveExceptionCommand) ExceptionID() kernel.UUID { return c.exceptionID }

// ShipmentID returns the parent shipment identifier.
func (c ResolveExceptionCommand) ShipmentID() kernel.UUID { return c.shipmentID }

// Tenant returns the franchise context of the caller.
func (c ResolveExceptionCommand) Tenant() kernel.Tenant { return c.tenant }

// Verdict returns RESOLVED or ESCALATED.
func (c ResolveExceptionCommand) Verdict() exception.Status { return c.verdict }

// ResolutionNotes returns the mandatory operator notes.
func (c ResolveExceptionCommand) ResolutionNotes() string { return c.resolutionNotes }

// NewStatus returns the requested post-resolution shipment status, or nil
// to use the default.
func (c ResolveExceptionCommand) NewStatus() *shipment.Status { return c.newStatus }

func (c *ResolveExceptionCommand) setExceptionID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.exceptionID = id
	return nil
}

func (c *ResolveExceptionCommand) setShipmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.shipmentID = id
	return nil
}

func (c *ResolveExceptionCommand) setTenant(tenant kernel.Tenant) error {
	if err := tenant.Validate(); err != nil {
		return err
	}
	c.tenant = tenant
	return nil
}

func (c *ResolveExceptionCommand) setVerdict(verdict exception.Status) error {
	if verdict != exception.Resolved && verdict != exception.Escalated {
		return errs.NewValueIsInvalidError("status")
	}
	c.verdict = verdict
	return nil
}

func (c *ResolveExceptionCommand) setResolutionNotes(notes string) error {
	notes = strings.TrimSpace(notes)
	if notes == "" {
		return errs.NewValueIsRequiredError("resolution_notes")
	}
	c.resolutionNotes = notes
	return nil
}

func (c *ResolveExceptionCommand) setNewStatus(status *shipment.Status) error {
	if status == nil {
		return nil
	}
	if err := status.Validate(); err != nil {
		return err
	}
	c.newStatus = status
	return nil
}
