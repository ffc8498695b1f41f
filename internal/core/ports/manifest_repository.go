package ports

import (
	"context"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/domain/model/manifest"
)

// ManifestRepository defines the persistence contract for forward manifest
// aggregates and their removal audit records.
type ManifestRepository interface {
	// Add persists a new manifest aggregate to storage.
	Add(ctx context.Context, aggregate *manifest.Manifest) error

	// Update persists changes to an existing manifest aggregate.
	Update(ctx context.Context, aggregate *manifest.Manifest) error

	// Get retrieves a manifest by its unique identifier within the tenant.
	Get(ctx context.Context, tenant kernel.Tenant, id kernel.UUID) (*manifest.Manifest, error)

	// GetForUpdate retrieves a manifest and row-locks it until the current
	// transaction completes. Status changes and total adjustments read
	// through this lock; the member shipment locks alone cannot serialize
	// two corrections touching disjoint shipments of the same manifest.
	GetForUpdate(ctx context.Context, tenant kernel.Tenant, id kernel.UUID) (*manifest.Manifest, error)

	// AddRemoval appends a remanifest audit record. Removals are
	// append-only, there is no update or delete.
	AddRemoval(ctx context.Context, removal manifest.Removal) error
}
