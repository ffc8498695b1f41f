package commands

import (
	"errors"
	"strings"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/pkg/errs"
	"courierhub/internal/pkg/guard"
)

var ErrRemanifestCommandIsNotConstructed = errors.New(
	"RemanifestCommand must be created via NewRemanifestCommand constructor",
)

// RemanifestCommand represents a correction that detaches shipments from an
// OPEN manifest. Detached shipments keep their status; the operation only
// fixes membership and leaves an audit trail with the supplied reason.
type RemanifestCommand struct { //nolint:recvcheck //using for validation
	manifestID  kernel.UUID
	tenant      kernel.Tenant
	shipmentIDs []kernel.UUID
	reason      string

	guard guard.ConstructorGuard
}

// NewRemanifestCommand creates a remanifest command. Both the shipment set
// and the reason are mandatory.
func NewRemanifestCommand(
	manifestID kernel.UUID,
	tenant kernel.Tenant,
	shipmentIDs []kernel.UUID,
	reason string,
) (RemanifestCommand, error) {
	cmd := RemanifestCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setManifestID(manifestID),
		cmd.setTenant(tenant),
		cmd.setShipmentIDs(shipmentIDs),
		cmd.setReason(reason),
	); err != nil {
		return RemanifestCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command came from the constructor.
func (c RemanifestCommand) Validate() error {
	return c.guard.Validate(ErrRemanifestCommandIsNotConstructed)
}

// ManifestID returns the manifest being corrected.
func (c RemanifestCommand) ManifestID() kernel.UUID { return c.manifestID }

// Tenant returns the franchise context of the caller.
func (c RemanifestCommand) Tenant() kernel.Tenant { return c.tenant }

// ShipmentIDs returns the members being detached.
func (c RemanifestCommand) ShipmentIDs() []kernel.UUID { return c.shipmentIDs }

// Reason returns the audit reason for the correction.
func (c RemanifestCommand) Reason() string { return c.reason }

func (c *RemanifestCommand) setManifestID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.manifestID = id
	return nil
}

func (c *RemanifestCommand) setTenant(tenant kernel.Tenant) error {
	if err := tenant.Validate(); err != nil {
		return err
	}
	c.tenant = tenant
	return nil
}

func (c *RemanifestCommand) setShipmentIDs(ids []kernel.UUID) error {
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

func (c *RemanifestCommand) setReason(reason string) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}
	c.reason = reason
	return nil
}
