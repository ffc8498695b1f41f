package commands

import (
	"context"
	"fmt"

	"courierhub/internal/core/domain/model/manifest"
	"courierhub/internal/core/domain/model/shipment"
	"courierhub/internal/core/ports"
)

// CreateManifestCommandHandler builds a new OPEN manifest from a set of
// CREATED shipments. The member rows are locked for the whole transaction
// so two concurrent manifest creations cannot claim the same shipment; if
// any member fails the CREATED check, nothing is written.
type CreateManifestCommandHandler struct {
	uowFactory ManifestUoWFactory
	publisher  ports.ShipmentEventPublisher
}

// NewCreateManifestCommandHandler creates a handler for manifest creation.
func NewCreateManifestCommandHandler(
	uowFactory ManifestUoWFactory,
	publisher ports.ShipmentEventPublisher,
) CreateManifestCommandHandler {
	return CreateManifestCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle creates the manifest and returns the aggregate so the boundary can
// report the generated manifest number.
func (h *CreateManifestCommandHandler) Handle(ctx context.Context, cmd CreateManifestCommand) (*manifest.Manifest, error) {
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
	members, err := shipmentRepo.GetAllForUpdate(ctx, cmd.Tenant(), cmd.ShipmentIDs())
	if err != nil {
		return nil, err
	}

	aggregate, err := manifest.NewManifest(
		cmd.ManifestID(), cmd.Tenant(), cmd.CourierCompanyID(), cmd.OriginHubID())
	if err != nil {
		return nil, err
	}

	// AddToManifest rejects any member that is not CREATED, naming the
	// offending consignment number; the whole batch rolls back.
	for _, member := range members {
		if err = member.AddToManifest(aggregate.ID()); err != nil {
			return nil, fmt.Errorf("shipment %s: %w", member.CN(), err)
		}
		if err = aggregate.AddShipment(member.WeightKg()); err != nil {
			return nil, err
		}
	}

	if err = uow.ManifestRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	for _, member := range members {
		if err = shipmentRepo.Update(ctx, member); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.publishAll(ctx, members)
	return aggregate, nil
}

func (h *CreateManifestCommandHandler) publishAll(ctx context.Context, members []*shipment.Shipment) {
	for _, member := range members {
		publishStatusChanged(ctx, h.publisher, member)
	}
}
