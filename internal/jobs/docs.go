// Package jobs provides scheduled background tasks for the freight service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
// Schedules use the six field format with a leading seconds field.
//
// # Available Jobs
//
// FleetAuditJob - logs idle and busy vehicle counts per type. Vehicles are
// only busy inside a fulfillment transaction, so a busy count seen by the
// audit is logged as a warning.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(fleetStatusHandler, "0 * * * * *", logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
package jobs
