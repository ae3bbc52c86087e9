package jobs

import (
	"context"
	"log/slog"
	"time"

	"canteen/internal/core/domain/model/order"
	"canteen/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// OrderExpiryJob purges orders older than the retention window.
// Runs every ten minutes so expired orders vanish from dashboards and
// lookups shortly after they age out.
type OrderExpiryJob struct {
	uowFactory ports.UnitOfWorkFactory
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewOrderExpiryJob creates a new job for purging expired orders.
func NewOrderExpiryJob(uowFactory ports.UnitOfWorkFactory, logger *slog.Logger) *OrderExpiryJob {
	return &OrderExpiryJob{
		uowFactory: uowFactory,
		cron:       cron.New(),
		logger:     logger.With("component", "order_expiry_job"),
	}
}

// Start begins the expiry job on a ten minute schedule.
func (j *OrderExpiryJob) Start() error {
	_, err := j.cron.AddFunc("*/10 * * * *", j.runOnce)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order expiry job started (running every 10 minutes)")
	return nil
}

// Stop stops the expiry job.
func (j *OrderExpiryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order expiry job stopped")
}

func (j *OrderExpiryJob) runOnce() {
	ctx := context.Background()
	cutoff := time.Now().Add(-order.RetentionWindow)

	uow := j.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		j.logger.ErrorContext(ctx, "Order expiry job failed to begin transaction", "error", err)
		return
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	removed, err := uow.OrderRepository().DeleteOlderThan(ctx, cutoff)
	if err != nil {
		j.logger.ErrorContext(ctx, "Order expiry job failed", "error", err)
		return
	}

	if err := uow.Commit(ctx); err != nil {
		j.logger.ErrorContext(ctx, "Order expiry job failed to commit", "error", err)
		return
	}

	if removed > 0 {
		j.logger.InfoContext(ctx, "Purged expired orders", "count", removed)
	}
}
