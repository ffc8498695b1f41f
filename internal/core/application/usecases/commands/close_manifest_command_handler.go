package commands

import (
	"context"
)

// CloseManifestCommandHandler freezes an OPEN manifest. Member shipment
// statuses are untouched: closing is handover paperwork, physical movement
// is recorded by hub scans.
type CloseManifestCommandHandler struct {
	uowFactory ManifestUoWFactory
}

// NewCloseManifestCommandHandler creates a handler for closing manifests.
func NewCloseManifestCommandHandler(uowFactory ManifestUoWFactory) CloseManifestCommandHandler {
	return CloseManifestCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle closes the manifest.
func (h *CloseManifestCommandHandler) Handle(ctx context.Context, cmd CloseManifestCommand) error {
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

	if err = aggregate.Close(); err != nil {
		return err
	}

	if err = manifestRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
