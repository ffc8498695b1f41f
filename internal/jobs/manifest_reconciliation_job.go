package jobs

import (
	"context"
	"log/slog"

	"courierhub/internal/core/application/usecases/queries"
	"courierhub/internal/metrics"

	"github.com/robfig/cron/v3"
)

// ManifestReconciliationJob periodically looks for shipments that a closed
// manifest claims to have dispatched but that no hub has scanned in. The job
// reports; operators decide what to do with each stranded shipment.
type ManifestReconciliationJob struct {
	handler  queries.CountStrandedShipmentsQueryHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewManifestReconciliationJob creates the reconciliation job. The schedule
// is a standard five-field cron expression.
func NewManifestReconciliationJob(
	handler queries.CountStrandedShipmentsQueryHandler,
	schedule string,
	logger *slog.Logger,
) *ManifestReconciliationJob {
	return &ManifestReconciliationJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(),
		logger:   logger.With("component", "manifest_reconciliation_job"),
	}
}

// Start begins the reconciliation job on its configured schedule.
func (j *ManifestReconciliationJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		stranded, err := j.handler.Handle(ctx)
		if err != nil {
			j.logger.ErrorContext(ctx, "Manifest reconciliation failed", "error", err)
			return
		}

		metrics.StrandedShipments.Set(float64(stranded))

		if stranded > 0 {
			j.logger.WarnContext(ctx, "Stranded shipments detected",
				"count", stranded)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Manifest reconciliation job started",
		"schedule", j.schedule)
	return nil
}

// Stop stops the reconciliation job.
func (j *ManifestReconciliationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Manifest reconciliation job stopped")
}
