package jobs

import (
	"context"
	"errors"
	"log/slog"

	"github.com/robfig/cron/v3"

	"mediorder/internal/core/application/usecases/commands"
	"mediorder/internal/core/domain/model/order"
)

// strandedOrderSource lists the orders still waiting on a pharmacy. The order
// repository satisfies it.
type strandedOrderSource interface {
	GetAllInPendingStatus(ctx context.Context) ([]*order.Order, error)
	GetAllInRejectedStatus(ctx context.Context) ([]*order.Order, error)
}

// pharmacyAssigner runs one assignment attempt for an order.
type pharmacyAssigner interface {
	Handle(ctx context.Context, cmd commands.AssignPharmacyCommand) error
}

// OrderReassignmentJob periodically retries pharmacy assignment for orders
// that are still pending or whose last assignment was rejected. The rejection
// flow already makes one synchronous reassignment attempt; this job is the
// durable retry behind it, so a rejected order is not stranded when no
// pharmacy was available at rejection time.
type OrderReassignmentJob struct {
	orders        strandedOrderSource
	assignHandler pharmacyAssigner
	cronSpec      string
	cron          *cron.Cron
	logger        *slog.Logger
}

// NewOrderReassignmentJob creates the reassignment job. The cron spec uses
// the six-field syntax with seconds, e.g. "0 * * * * *" for once a minute.
func NewOrderReassignmentJob(
	orders strandedOrderSource,
	assignHandler pharmacyAssigner,
	cronSpec string,
	logger *slog.Logger,
) *OrderReassignmentJob {
	return &OrderReassignmentJob{
		orders:        orders,
		assignHandler: assignHandler,
		cronSpec:      cronSpec,
		cron:          cron.New(cron.WithSeconds()),
		logger:        logger.With("component", "order_reassignment_job"),
	}
}

// Start schedules the job with its cron spec.
func (j *OrderReassignmentJob) Start() error {
	_, err := j.cron.AddFunc(j.cronSpec, j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order reassignment job started", "cron", j.cronSpec)
	return nil
}

// Stop stops the reassignment job.
func (j *OrderReassignmentJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order reassignment job stopped")
}

func (j *OrderReassignmentJob) run() {
	ctx := context.Background()

	stranded, err := j.loadStrandedOrders(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Failed to load orders awaiting a pharmacy", "error", err)
		return
	}

	for _, o := range stranded {
		cmd, cmdErr := commands.NewAssignPharmacyCommand(o.ID())
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Failed to build assignment command", "order_id", o.ID(), "error", cmdErr)
			continue
		}

		if assignErr := j.assignHandler.Handle(ctx, cmd); assignErr != nil {
			// An empty pharmacy directory is an expected condition, not a failure.
			if errors.Is(assignErr, commands.ErrNoPharmacyAvailable) {
				continue
			}
			j.logger.ErrorContext(ctx, "Order reassignment failed", "order_id", o.ID(), "error", assignErr)
		}
	}
}

func (j *OrderReassignmentJob) loadStrandedOrders(ctx context.Context) ([]*order.Order, error) {
	pending, err := j.orders.GetAllInPendingStatus(ctx)
	if err != nil {
		return nil, err
	}

	rejected, err := j.orders.GetAllInRejectedStatus(ctx)
	if err != nil {
		return nil, err
	}

	return append(pending, rejected...), nil
}
