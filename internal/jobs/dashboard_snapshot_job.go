package jobs

import (
	"context"
	"log/slog"

	"jikoni/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// DashboardSnapshotJob periodically logs the dashboard numbers. It reads
// through the same query handler the HTTP API uses and never mutates state.
type DashboardSnapshotJob struct {
	handler  queries.GetDashboardStatsQueryHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewDashboardSnapshotJob creates a snapshot job with a standard five-field
// cron schedule, e.g. "*/5 * * * *" for every five minutes.
func NewDashboardSnapshotJob(
	handler queries.GetDashboardStatsQueryHandler,
	schedule string,
	logger *slog.Logger,
) *DashboardSnapshotJob {
	return &DashboardSnapshotJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(),
		logger:   logger.With("component", "dashboard_snapshot_job"),
	}
}

// Start begins the snapshot job on its schedule.
func (j *DashboardSnapshotJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		stats, err := j.handler.Handle(ctx, queries.NewGetDashboardStatsQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Dashboard snapshot failed", "error", err)
			return
		}

		j.logger.InfoContext(ctx, "Dashboard snapshot",
			"totalOrders", stats.TotalOrders,
			"activeOrders", stats.ActiveOrders,
			"totalRevenue", stats.TotalRevenue.String(),
			"availableTables", stats.AvailableTables,
			"occupiedTables", stats.OccupiedTables,
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Dashboard snapshot job started", "schedule", j.schedule)
	return nil
}

// Stop stops the snapshot job.
func (j *DashboardSnapshotJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Dashboard snapshot job stopped")
}
