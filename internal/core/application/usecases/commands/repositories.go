// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"courierhub/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ShipmentRepoFactory provides access to the shipment repository within a transaction.
	ShipmentRepoFactory interface {
		ShipmentRepository() ports.ShipmentRepository
	}

	// ManifestRepoFactory provides access to the manifest repository within a transaction.
	ManifestRepoFactory interface {
		ManifestRepository() ports.ManifestRepository
	}

	// ScanRepoFactory provides access to the scan repository within a transaction.
	ScanRepoFactory interface {
		ScanRepository() ports.ScanRepository
	}

	// ExceptionRepoFactory provides access to the exception repository within a transaction.
	ExceptionRepoFactory interface {
		ExceptionRepository() ports.ExceptionRepository
	}

	// RTORepoFactory provides access to the RTO repository within a transaction.
	RTORepoFactory interface {
		RTORepository() ports.RTORepository
	}

	// ShipmentUoW manages transactions for shipment-only operations.
	ShipmentUoW interface {
		TxManager
		ShipmentRepoFactory
	}

	// ShipmentUoWFactory creates new shipment unit of work instances.
	ShipmentUoWFactory interface {
		Create() ShipmentUoW
	}

	// ManifestUoW manages transactions spanning manifests and their member
	// shipments. Every membership change touches both aggregates, so the
	// two repositories always share one transaction.
	ManifestUoW interface {
		TxManager
		ManifestRepoFactory
		ShipmentRepoFactory
	}

	// ManifestUoWFactory creates new manifest unit of work instances.
	ManifestUoWFactory interface {
		Create() ManifestUoW
	}

	// ScanUoW manages transactions spanning the scan log and shipments.
	// Scan insert and status update must commit or fail together.
	ScanUoW interface {
		TxManager
		ScanRepoFactory
		ShipmentRepoFactory
	}

	// ScanUoWFactory creates new scan unit of work instances.
	ScanUoWFactory interface {
		Create() ScanUoW
	}

	// ExceptionUoW manages transactions spanning exceptions and shipments.
	ExceptionUoW interface {
		TxManager
		ExceptionRepoFactory
		ShipmentRepoFactory
	}

	// ExceptionUoWFactory creates new exception unit of work instances.
	ExceptionUoWFactory interface {
		Create() ExceptionUoW
	}

	// RTOUoW manages transactions spanning RTO batches and shipments.
	RTOUoW interface {
		TxManager
		RTORepoFactory
		ShipmentRepoFactory
	}

	// RTOUoWFactory creates new RTO unit of work instances.
	RTOUoWFactory interface {
		Create() RTOUoW
	}
)
