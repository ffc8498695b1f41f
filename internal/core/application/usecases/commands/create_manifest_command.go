package commands

import (
	"errors"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/pkg/errs"
	"courierhub/internal/pkg/guard"
)

var ErrCreateManifestCommandIsNotConstructed = errors.New(
	"CreateManifestCommand must be created via NewCreateManifestCommand constructor",
)

// CreateManifestCommand represents a request to hand a batch of CREATED
// shipments over to one courier from one origin hub.
type CreateManifestCommand struct { //nolint:recvcheck //using for validation
	manifestID       kernel.UUID
	tenant           kernel.Tenant
	courierCompanyID kernel.UUID
	originHubID      kernel.UUID
	shipmentIDs      []kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateManifestCommand creates a manifest creation command.
// The shipment set must be non-empty.
func NewCreateManifestCommand(
	manifestID kernel.UUID,
	tenant kernel.Tenant,
	courierCompanyID kernel.UUID,
	originHubID kernel.UUID,
	shipmentIDs []kernel.UUID,
) (CreateManifestCommand, error) {
	cmd := CreateManifestCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setManifestID(manifestID),
		cmd.setTenant(tenant),
		cmd.setCourierCompanyID(courierCompanyID),
		cmd.setOriginHubID(originHubID),
		cmd.setShipmentIDs(shipmentIDs),
	); err != nil {
		return CreateManifestCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command came from the constructor.
func (c CreateManifestCommand) Validate() error {
	return c.guard.Validate(ErrCreateManifestCommandIsNotConstructed)
}

// ManifestID returns the identifier assigned to the new manifest.
func (c CreateManifestCommand) ManifestID() kernel.UUID { return c.manifestID }

// Tenant returns the franchise context of the caller.
func (c CreateManifestCommand) Tenant() kernel.Tenant { return c.tenant }

// CourierCompanyID returns the courier receiving the batch.
func (c CreateManifestCommand) CourierCompanyID() kernel.UUID { return c.courierCompanyID }

// OriginHubID returns the hub the batch departs from.
func (c CreateManifestCommand) OriginHubID() kernel.UUID { return c.originHubID }

// ShipmentIDs returns the member shipment identifiers.
func (c CreateManifestCommand) ShipmentIDs() []kernel.UUID { return c.shipmentIDs }

func (c *CreateManifestCommand) setManifestID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.manifestID = id
	return nil
}

func (c *CreateManifestCommand) setTenant(tenant kernel.Tenant) error {
	if err := tenant.Validate(); err != nil {
		return err
	}
	c.tenant = tenant
	return nil
}

func (c *CreateManifestCommand) setCourierCompanyID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("courier_company_id", err)
	}
	c.courierCompanyID = id
	return nil
}

func (c *CreateManifestCommand) setOriginHubID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("origin_hub_id", err)
	}
	c.originHubID = id
	return nil
}

func (c *CreateManifestCommand) setShipmentIDs(ids []kernel.UUID) error {
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
