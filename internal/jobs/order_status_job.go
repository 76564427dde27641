package jobs

import (
	"context"
	"log/slog"

	"pizzeria/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// orderStatusSchedule runs the lifecycle tick every 40 seconds.
const orderStatusSchedule = "*/40 * * * * *"

// OrderStatusJob manages the scheduled advancement of order statuses.
// Runs every 40 seconds to move in-flight orders through the fulfillment
// lifecycle.
type OrderStatusJob struct {
	handler commands.AdvanceOrdersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOrderStatusJob creates a new job for advancing order statuses.
// Uses AdvanceOrdersCommandHandler to evaluate all in-flight orders on
// every trigger.
func NewOrderStatusJob(handler commands.AdvanceOrdersCommandHandler, logger *slog.Logger) *OrderStatusJob {
	return &OrderStatusJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "order_status_job"),
	}
}

// Start begins the order status job on its 40-second schedule.
func (j *OrderStatusJob) Start() error {
	_, err := j.cron.AddFunc(orderStatusSchedule, func() {
		ctx := context.Background()
		cmd := commands.NewAdvanceOrdersCommand()

		result, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Order status job failed", "error", handleErr)
			return
		}

		j.logger.InfoContext(ctx, "Order status updates",
			"evaluated", result.Evaluated,
			"updated", result.Updated,
			"failed", result.Failed,
			"elapsed", result.Elapsed,
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order status job started (running every 40 seconds)")
	return nil
}

// Stop stops the order status job.
func (j *OrderStatusJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order status job stopped")
}
