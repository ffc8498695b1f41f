package commands

import (
	"errors"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/domain/model/rto"
	"courierhub/internal/pkg/errs"
	"courierhub/internal/pkg/guard"
)

var ErrInitiateRTOCommandIsNotConstructed = errors.New(
	"InitiateRTOCommand must be created via NewInitiateRTOCommand constructor",
)

// InitiateRTOCommand represents a request to batch failed shipments for the
// trip back to their origin hub.
type InitiateRTOCommand struct { //nolint:recvcheck //using for validation
	rtoID       kernel.UUID
	tenant      kernel.Tenant
	reason      rto.Reason
	originHubID kernel.UUID
	returnHubID kernel.UUID
	notes       string
	shipmentIDs []kernel.UUID

	guard guard.ConstructorGuard
}

// NewInitiateRTOCommand creates an RTO initiation command.
func NewInitiateRTOCommand(
	rtoID kernel.UUID,
	tenant kernel.Tenant,
	reason rto.Reason,
	originHubID kernel.UUID,
	returnHubID kernel.UUID,
	notes string,
	shipmentIDs []kernel.UUID,
) (InitiateRTOCommand, error) {
	cmd := InitiateRTOCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRTOID(rtoID),
		cmd.setTenant(tenant),
		cmd.setReason(reason),
		cmd.setOriginHubID(originHubID),
		cmd.setReturnHubID(returnHubID),
		cmd.setShipmentIDs(shipmentIDs),
	); err != nil {
		return InitiateRTOCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command came from the constructor.
func (c InitiateRTOCommand) Validate() error {
	return c.guard.Validate(ErrInitiateRTOCommandIsNotConstructed)
}

// RTOID returns the identifier assigned to the new batch.
func (c InitiateRTOCommand) RTOID() kernel.UUID { return c.rtoID }

// Tenant returns the franchise context of the caller.
func (c InitiateRTOCommand) Tenant() kernel.Tenant { return c.tenant }

// Reason returns the return reason.
func (c InitiateRTOCommand) Reason() rto.Reason { return c.reason }

// OriginHubID returns the hub the batch returns to.
func (c InitiateRTOCommand) OriginHubID() kernel.UUID { return c.originHubID }

// ReturnHubID returns the hub the batch departs from.
func (c InitiateRTOCommand) ReturnHubID() kernel.UUID { return c.returnHubID }

// Notes returns the optional free-text notes.
func (c InitiateRTOCommand) Notes() string { return c.notes }

// ShipmentIDs returns the member shipment identifiers.
func (c InitiateRTOCommand) ShipmentIDs() []kernel.UUID { return c.shipmentIDs }

func (c *InitiateRTOCommand) setRTOID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.rtoID = id
	return nil
}

func (c *InitiateRTOCommand) setTenant(tenant kernel.Tenant) error {
	if err := tenant.Validate(); err != nil {
		return err
	}
	c.tenant = tenant
	return nil
}

func (c *InitiateRTOCommand) setReason(reason rto.Reason) error {
	if err := reason.Validate(); err != nil {
		return err
	}
	c.reason = reason
	return nil
}

func (c *InitiateRTOCommand) setOriginHubID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("origin_hub_id", err)
	}
	c.originHubID = id
	return nil
}

func (c *InitiateRTOCommand) setReturnHubID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("return_destination_hub_id", err)
	}
	c.returnHubID = id
	return nil
}

func (c *InitiateRTOCommand) setShipmentIDs(ids []kernel.UUID) error {
	if len(ids) == 0 {
		return errs.NewValueIsRequiredError("shipment_ids")
	}
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("shipment_ids", err)
		}
	}
	c.shipmentIDs = ids
	return nil
}
