package commands

import (
	"errors"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/pkg/guard"
)

var ErrCompleteRTOCommandIsNotConstructed = errors.New(
	"CompleteRTOCommand must be created via NewCompleteRTOCommand constructor",
)

// CompleteRTOCommand represents the manual confirmation that a return batch
// physically arrived back at its origin hub.
type CompleteRTOCommand struct { //nolint:recvcheck //using for validation
	rtoID  kernel.UUID
	tenant kernel.Tenant

	guard guard.ConstructorGuard
}

// NewCompleteRTOCommand creates an RTO completion command.
func NewCompleteRTOCommand(rtoID kernel.UUID, tenant kernel.Tenant) (CompleteRTOCommand, error) {
	cmd := CompleteRTOCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRTOID(rtoID),
		cmd.setTenant(tenant),
	); err != nil {
		return CompleteRTOCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command came from the constructor.
func (c CompleteRTOCommand) Validate() error {
	return c.guard.Validate(ErrCompleteRTOCommandIsNotConstructed)
}

// RTOID returns the target batch identifier.
func (c CompleteRTOCommand) RTOID() kernel.UUID { return c.rtoID }

// Tenant returns the franchise context of the caller.
func (c CompleteRTOCommand) Tenant() kernel.Tenant { return c.tenant }

func (c *CompleteRTOCommand) setRTOID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.rtoID = id
	return nil
}

func (c *CompleteRTOCommand) setTenant(tenant kernel.Tenant) error {
	if err := tenant.Validate(); err != nil {
		return err
	}
	c.tenant = tenant
	return nil
}
