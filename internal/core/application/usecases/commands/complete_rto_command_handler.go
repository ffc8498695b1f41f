package commands

import (
	"context"
)

// CompleteRTOCommandHandler marks a return batch RETURNED. Member shipment
// statuses are intentionally untouched: the redeliver-or-write-off decision
// is a follow-on exception resolution or manual status update.
type CompleteRTOCommandHandler struct {
	uowFactory RTOUoWFactory
}

// NewCompleteRTOCommandHandler creates a handler for RTO completion.
func NewCompleteRTOCommandHandler(uowFactory RTOUoWFactory) CompleteRTOCommandHandler {
	return CompleteRTOCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle confirms physical arrival of the batch.
func (h *CompleteRTOCommandHandler) Handle(ctx context.Context, cmd CompleteRTOCommand) error {
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

	if err = aggregate.Complete(); err != nil {
		return err
	}

	if err = rtoRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
