package commands

import (
	"context"
	"fmt"

	"courierhub/internal/core/domain/model/exception"
	"courierhub/internal/core/domain/model/shipment"
	"courierhub/internal/core/ports"
	"courierhub/internal/pkg/errs"
)

// ResolveExceptionCommandHandler applies an operator verdict to a PENDING
// exception. A RESOLVED verdict re-enters the shipment into the lifecycle
// at the requested status (CREATED by default); ESCALATED leaves the
// shipment in EXCEPTION for a higher tier to deal with.
type ResolveExceptionCommandHandler struct {
	uowFactory ExceptionUoWFactory
	publisher  ports.ShipmentEventPublisher
}

// NewResolveExceptionCommandHandler creates a handler for exception verdicts.
func NewResolveExceptionCommandHandler(
	uowFactory ExceptionUoWFactory,
	publisher ports.ShipmentEventPublisher,
) ResolveExceptionCommandHandler {
	return ResolveExceptionCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle applies the verdict.
func (h *ResolveExceptionCommandHandler) Handle(ctx context.Context, cmd ResolveExceptionCommand) error {
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

	exceptionRepo := uow.ExceptionRepository()
	record, err := exceptionRepo.GetForUpdate(ctx, cmd.Tenant(), cmd.ExceptionID())
	if err != nil {
		return err
	}
	if !record.ShipmentID().IsEqual(cmd.ShipmentID()) {
		return errs.NewObjectNotFoundError("exception_id", cmd.ExceptionID().String())
	}

	if cmd.Verdict() == exception.Escalated {
		if err = record.Escalate(cmd.ResolutionNotes()); err != nil {
			return err
		}
		if err = exceptionRepo.Update(ctx, record); err != nil {
			return err
		}
		return uow.Commit(ctx)
	}

	target := shipment.Created
	if cmd.NewStatus() != nil {
		target = *cmd.NewStatus()
	}

	if err = record.Resolve(cmd.ResolutionNotes(), target); err != nil {
		return err
	}

	shipmentRepo := uow.ShipmentRepository()
	aggregate, err := shipmentRepo.GetForUpdate(ctx, cmd.Tenant(), cmd.ShipmentID())
	if err != nil {
		return err
	}

	if err = aggregate.ResolveExceptionTo(target); err != nil {
		return fmt.Errorf("shipment %s: %w", aggregate.CN(), err)
	}

	if err = exceptionRepo.Update(ctx, record); err != nil {
		return err
	}
	if err = shipmentRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishStatusChanged(ctx, h.publisher, aggregate)
	return nil
}
