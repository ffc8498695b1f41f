package ports

import (
	"context"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/domain/model/rto"
)

// RTORepository defines the persistence contract for return-to-origin
// batch aggregates.
type RTORepository interface {
	// Add persists a new RTO manifest aggregate to storage.
	Add(ctx context.Context, aggregate *rto.Manifest) error

	// Update persists changes to an existing RTO manifest aggregate.
	Update(ctx context.Context, aggregate *rto.Manifest) error

	// Get retrieves an RTO manifest by its unique identifier within the tenant.
	Get(ctx context.Context, tenant kernel.Tenant, id kernel.UUID) (*rto.Manifest, error)

	// GetForUpdate retrieves an RTO manifest and row-locks it until the
	// current transaction completes. Completion reads through this lock so
	// only one of two racing completions can observe INITIATED.
	GetForUpdate(ctx context.Context, tenant kernel.Tenant, id kernel.UUID) (*rto.Manifest, error)

	// AddMember records that a shipment travels in the given batch.
	// Membership rows are append-only.
	AddMember(ctx context.Context, tenant kernel.Tenant, rtoID kernel.UUID, shipmentID kernel.UUID) error
}
