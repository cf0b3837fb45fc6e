package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager starts and stops the scheduled jobs of the service as a unit.
type JobManager struct {
	fleetAuditJob *FleetAuditJob
}

// NewJobManager builds every job. An empty auditSchedule selects
// DefaultFleetAuditSchedule.
func NewJobManager(fleetStatus FleetStatusReader, auditSchedule string, logger *slog.Logger) *JobManager {
	return &JobManager{
		fleetAuditJob: NewFleetAuditJob(fleetStatus, auditSchedule, logger),
	}
}

func (jm *JobManager) StartAll() error {
	if err := jm.fleetAuditJob.Start(); err != nil {
		return fmt.Errorf("failed to start fleet audit job: %w", err)
	}
	return nil
}

// StopAll waits for running jobs to finish.
func (jm *JobManager) StopAll() {
	jm.fleetAuditJob.Stop()
}
