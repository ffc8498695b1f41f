package commands

import (
	"context"
)

// ResolveRTOCommandHandler closes a RETURNED batch. Member shipments keep
// whatever status their own exceptions or manual updates left them with.
type ResolveRTOCommandHandler struct {
	uowFactory RTOUoWFactory
}

// NewResolveRTOCommandHandler creates a handler for RTO resolution.
func NewResolveRTOCommandHandler(uowFactory RTOUoWFactory) ResolveRTOCommandHandler {
	return ResolveRTOCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle records the final disposition of the batch.
func (h *ResolveRTOCommandHandler) Handle(ctx context.Context, cmd ResolveRTOCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	rtoRepo := uow.RTORepository()
	aggregate, err := rtoRepo.GetForUpdate(ctx, cmd.Tenant(), cmd.RTOID())
	if err != nil {
		return err
	}

	if err = aggregate.Resolve(); err != nil {
		return err
	}

	if err = rtoRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
