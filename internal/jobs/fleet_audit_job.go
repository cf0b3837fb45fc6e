package jobs

import (
	"context"
	"log/slog"
	"time"

	"freight/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// DefaultFleetAuditSchedule runs the audit at the start of every minute.
const DefaultFleetAuditSchedule = "0 * * * * *"

type FleetStatusReader interface {
	Handle(ctx context.Context, query queries.GetFleetStatusQuery) ([]queries.FleetTypeStatus, error)
}

// FleetAuditJob periodically logs how many vehicles of each type are idle or
// busy. A busy vehicle outside of a running fulfillment means a run left the
// fleet inconsistent, so any busy count is reported at warn level.
type FleetAuditJob struct {
	reader   FleetStatusReader
	schedule string
	timeout  time.Duration
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewFleetAuditJob(reader FleetStatusReader, schedule string, logger *slog.Logger) *FleetAuditJob {
	if schedule == "" {
		schedule = DefaultFleetAuditSchedule
	}
	return &FleetAuditJob{
		reader:   reader,
		schedule: schedule,
		timeout:  10 * time.Second,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "fleet_audit_job"),
	}
}

// Start registers the audit with the configured schedule and starts the
// scheduler. An unparsable schedule is returned as an error.
func (j *FleetAuditJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
		defer cancel()
		j.Run(ctx)
	}); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Fleet audit job started", "schedule", j.schedule)
	return nil
}

// Run performs a single audit.
func (j *FleetAuditJob) Run(ctx context.Context) {
	statuses, err := j.reader.Handle(ctx, queries.NewGetFleetStatusQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Fleet audit failed", "error", err)
		return
	}

	for _, st := range statuses {
		attrs := []any{
			"type", st.Type.String(),
			"idle", st.Idle,
			"busy", st.Busy,
			"total_capacity", st.TotalCapacity,
		}
		if st.Busy > 0 {
			j.logger.WarnContext(ctx, "Vehicles left busy", attrs...)
			continue
		}
		j.logger.InfoContext(ctx, "Fleet status", attrs...)
	}
}

// Stop waits for a running audit to finish.
func (j *FleetAuditJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Fleet audit job stopped")
}
