// Package ports defines repository and publisher interfaces for the hub
// shipment domain. These interfaces establish contracts between the domain
// layer and infrastructure, enabling dependency inversion and testability.
//
// Every read and write is scoped to a tenant; repositories never return
// rows belonging to another franchise.
package ports

import (
	"context"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for shipment aggregates.
type ShipmentRepository interface {
	// Add persists a new shipment aggregate to storage.
	// The shipment must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Update persists changes to an existing shipment aggregate.
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// Get retrieves a shipment by its unique identifier within the tenant.
	Get(ctx context.Context, tenant kernel.Tenant, id kernel.UUID) (*shipment.Shipment, error)

	// GetForUpdate retrieves a shipment by identifier and takes a row lock
	// for the duration of the current transaction. Every read that feeds a
	// status or membership write goes through this, so concurrent writers
	// serialize instead of overwriting each other's committed state.
	GetForUpdate(ctx context.Context, tenant kernel.Tenant, id kernel.UUID) (*shipment.Shipment, error)

	// GetByCN retrieves a shipment by consignment number within the tenant.
	GetByCN(ctx context.Context, tenant kernel.Tenant, cn shipment.ConsignmentNumber) (*shipment.Shipment, error)

	// GetByCNForUpdate retrieves a shipment by consignment number and takes
	// a row lock for the duration of the current transaction. Used by scan
	// processing and membership changes to serialize concurrent writers.
	GetByCNForUpdate(ctx context.Context, tenant kernel.Tenant, cn shipment.ConsignmentNumber) (*shipment.Shipment, error)

	// GetAllForUpdate retrieves and row-locks every shipment in ids.
	// Returns ObjectNotFoundError naming the first missing identifier, so
	// batch operations fail atomically before any membership change.
	GetAllForUpdate(ctx context.Context, tenant kernel.Tenant, ids []kernel.UUID) ([]*shipment.Shipment, error)

	// Delete removes a shipment row. Callers must check IsDeletable first;
	// the repository only guards tenant scope and existence.
	Delete(ctx context.Context, tenant kernel.Tenant, id kernel.UUID) error
}
