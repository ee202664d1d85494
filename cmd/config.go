package cmd

type Config struct {
	HTTPPort string

	// SnapshotSchedule is the cron schedule for the dashboard snapshot job,
	// standard five-field syntax.
	SnapshotSchedule string

	// SeedDemoData loads the demo menu, tables and staff at startup.
	SeedDemoData bool
}
