package commands

import (
	"context"
	"fmt"

	"courierhub/internal/core/domain/model/manifest"
	"courierhub/internal/pkg/errs"
)

// RemanifestCommandHandler detaches shipments from an OPEN manifest,
// decrementing the manifest aggregates in the same transaction and writing
// one removal audit record per detached shipment.
type RemanifestCommandHandler struct {
	uowFactory ManifestUoWFactory
}

// NewRemanifestCommandHandler creates a handler for remanifest corrections.
func NewRemanifestCommandHandler(uowFactory ManifestUoWFactory) RemanifestCommandHandler {
	return RemanifestCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle detaches the named shipments. Every shipment must currently belong
// to the manifest; a single mismatch rolls the whole correction back.
func (h *RemanifestCommandHandler) Handle(ctx context.Context, cmd RemanifestCommand) error {
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

	manifestRepo := uow.ManifestRepository()
	aggregate, err := manifestRepo.GetForUpdate(ctx, cmd.Tenant(), cmd.ManifestID())
	if err != nil {
		return err
	}

	if !aggregate.IsOpen() {
		return errs.NewConflictError(fmt.Sprintf(
			"manifest %s is %s, members can only be detached while OPEN",
			aggregate.Number(), aggregate.Status()))
	}

	shipmentRepo := uow.ShipmentRepository()
	members, err := shipmentRepo.GetAllForUpdate(ctx, cmd.Tenant(), cmd.ShipmentIDs())
	if err != nil {
		return err
	}

	for _, member := range members {
		if member.ManifestID() == nil || !member.ManifestID().IsEqual(aggregate.ID()) {
			return errs.NewConflictError(fmt.Sprintf(
				"shipment %s is not part of manifest %s", member.CN(), aggregate.Number()))
		}

		if err = member.DetachFromManifest(); err != nil {
			return err
		}
		if err = aggregate.RemoveShipment(member.WeightKg()); err != nil {
			return err
		}

		removal, removalErr := manifest.NewRemoval(cmd.Tenant(), aggregate.ID(), member.ID(), cmd.Reason())
		if removalErr != nil {
			return removalErr
		}
		if err = manifestRepo.AddRemoval(ctx, removal); err != nil {
			return err
		}
		if err = shipmentRepo.Update(ctx, member); err != nil {
			return err
		}
	}

	if err = manifestRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
