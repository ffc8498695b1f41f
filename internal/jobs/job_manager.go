package jobs

import (
	"fmt"
	"log/slog"

	"courierhub/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	manifestReconciliationJob *ManifestReconciliationJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	strandedHandler queries.CountStrandedShipmentsQueryHandler,
	reconciliationSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		manifestReconciliationJob: NewManifestReconciliationJob(
			strandedHandler, reconciliationSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.manifestReconciliationJob.Start(); err != nil {
		return fmt.Errorf("failed to start manifest reconciliation job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.manifestReconciliationJob.Stop()
}
