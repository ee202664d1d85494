package jobs

import (
	"fmt"
	"log/slog"

	"jikoni/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	dashboardSnapshotJob *DashboardSnapshotJob
}

// NewJobManager creates a job manager with all required jobs.
func NewJobManager(
	getDashboardStatsHandler queries.GetDashboardStatsQueryHandler,
	snapshotSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		dashboardSnapshotJob: NewDashboardSnapshotJob(getDashboardStatsHandler, snapshotSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.dashboardSnapshotJob.Start(); err != nil {
		return fmt.Errorf("failed to start dashboard snapshot job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.dashboardSnapshotJob.Stop()
}
