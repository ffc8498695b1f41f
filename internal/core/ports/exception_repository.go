package ports

import (
	"context"

	"courierhub/internal/core/domain/model/exception"
	"courierhub/internal/core/domain/model/kernel"
)

// ExceptionRepository defines the persistence contract for exception
// aggregates.
type ExceptionRepository interface {
	// Add persists a new exception aggregate to storage.
	Add(ctx context.Context, aggregate *exception.Exception) error

	// Update persists changes to an existing exception aggregate.
	Update(ctx context.Context, aggregate *exception.Exception) error

	// Get retrieves an exception by its unique identifier within the tenant.
	Get(ctx context.Context, tenant kernel.Tenant, id kernel.UUID) (*exception.Exception, error)

	// GetForUpdate retrieves an exception and row-locks it until the
	// current transaction completes. Verdicts read through this lock so a
	// PENDING record can only be closed once.
	GetForUpdate(ctx context.Context, tenant kernel.Tenant, id kernel.UUID) (*exception.Exception, error)
}
