package commands

import (
	"context"

	"courierhub/internal/core/domain/model/exception"
	"courierhub/internal/core/ports"
)

// RaiseExceptionCommandHandler flags a problem on a shipment. The shipment
// moves to EXCEPTION and a PENDING exception record is persisted in the
// same transaction.
type RaiseExceptionCommandHandler struct {
	uowFactory ExceptionUoWFactory
	publisher  ports.ShipmentEventPublisher
}

// NewRaiseExceptionCommandHandler creates a handler for raising exceptions.
func NewRaiseExceptionCommandHandler(
	uowFactory ExceptionUoWFactory,
	publisher ports.ShipmentEventPublisher,
) RaiseExceptionCommandHandler {
	return RaiseExceptionCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle raises the exception and returns the created record.
func (h *RaiseExceptionCommandHandler) Handle(ctx context.Context, cmd RaiseExceptionCommand) (*exception.Exception, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipmentRepo := uow.ShipmentRepository()
	aggregate, err := shipmentRepo.GetForUpdate(ctx, cmd.Tenant(), cmd.ShipmentID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.MarkException(); err != nil {
		return nil, err
	}

	record, err := exception.NewException(cmd.Tenant(), cmd.ShipmentID(), cmd.ExceptionType(), cmd.Description())
	if err != nil {
		return nil, err
	}

	if err = uow.ExceptionRepository().Add(ctx, record); err != nil {
		return nil, err
	}
	if err = shipmentRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	publishStatusChanged(ctx, h.publisher, aggregate)
	return record, nil
}
