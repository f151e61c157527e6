// Package jobs provides the scheduled background tasks of the order service,
// built on github.com/robfig/cron/v3. Jobs are created and owned by a
// JobManager that the composition root starts at boot and stops on shutdown.
package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	orderReassignmentJob *OrderReassignmentJob
}

// NewJobManager creates a job manager with all required jobs wired.
func NewJobManager(
	orders strandedOrderSource,
	assignHandler pharmacyAssigner,
	reassignmentCronSpec string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		orderReassignmentJob: NewOrderReassignmentJob(orders, assignHandler, reassignmentCronSpec, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.orderReassignmentJob.Start(); err != nil {
		return fmt.Errorf("failed to start order reassignment job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.orderReassignmentJob.Stop()
}
