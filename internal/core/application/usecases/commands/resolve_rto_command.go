package commands

import (
	"errors"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/pkg/guard"
)

var ErrResolveRTOCommandIsNotConstructed = errors.New(
	"ResolveRTOCommand must be created via NewResolveRTOCommand constructor",
)

// ResolveRTOCommand closes a returned batch once the redeliver-or-write-off
// decision has been made for its members.
type ResolveRTOCommand struct { //nolint:recvcheck //using for validation
	rtoID  kernel.UUID
	tenant kernel.Tenant

	guard guard.ConstructorGuard
}

// NewResolveRTOCommand creates an RTO resolution command.
func NewResolveRTOCommand(rtoID kernel.UUID, tenant kernel.Tenant) (ResolveRTOCommand, error) {
	cmd := ResolveRTOCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRTOID(rtoID),
		cmd.setTenant(tenant),
	); err != nil {
		return ResolveRTOCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command came from the constructor.
func (c ResolveRTOCommand) Validate() error {
	return c.guard.Validate(ErrResolveRTOCommandIsNotConstructed)
}

// RTOID returns the target batch identifier.
func (c ResolveRTOCommand) RTOID() kernel.UUID { return c.rtoID }

// Tenant returns the franchise context of the caller.
func (c ResolveRTOCommand) Tenant() kernel.Tenant { return c.tenant }

func (c *ResolveRTOCommand) setRTOID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.rtoID = id
	return nil
}

func (c *ResolveRTOCommand) setTenant(tenant kernel.Tenant) error {
	if err := tenant.Validate(); err != nil {
		return err
	}
	c.tenant = tenant
	return nil
}
