package commands

import (
	"errors"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/pkg/guard"
)

var ErrCloseManifestCommandIsNotConstructed = errors.New(
	"CloseManifestCommand must be created via NewCloseManifestCommand constructor",
)

// CloseManifestCommand represents a request to freeze a manifest's paperwork.
type CloseManifestCommand struct { //nolint:recvcheck //using for validation
	manifestID kernel.UUID
	tenant     kernel.Tenant

	guard guard.ConstructorGuard
}

// NewCloseManifestCommand creates a manifest close command.
func NewCloseManifestCommand(manifestID kernel.UUID, tenant kernel.Tenant) (CloseManifestCommand, error) {
	cmd := CloseManifestCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setManifestID(manifestID),
		cmd.setTenant(tenant),
	); err != nil {
		return CloseManifestCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command came from the constructor.
func (c CloseManifestCommand) Validate() error {
	return c.guard.Validate(ErrCloseManifestCommandIsNotConstructed)
}

// ManifestID returns the target manifest identifier.
func (c CloseManifestCommand) ManifestID() kernel.UUID { return c.manifestID }

// Tenant returns the franchise context of the caller.
func (c CloseManifestCommand) Tenant() kernel.Tenant { return c.tenant }

func (c *CloseManifestCommand) setManifestID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.manifestID = id
	return nil
}

func (c *CloseManifestCommand) setTenant(tenant kernel.Tenant) error {
	if err := tenant.Validate(); err != nil {
		return err
	}
	c.tenant = tenant
	return nil
}
