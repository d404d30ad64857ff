package jobs

import (
	"context"
	"log/slog"
	"time"

	"fulfillment/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// ReviewBacklogJob periodically measures the call-center review backlog and
// logs its size and the age of its oldest order. The job is read-only; it
// exists so operators notice a stalling call center before customers do.
type ReviewBacklogJob struct {
	handler queries.GetReviewBacklogQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewReviewBacklogJob creates a new job for monitoring the review backlog.
// Uses GetReviewBacklogQueryHandler to probe the backlog every minute.
func NewReviewBacklogJob(handler queries.GetReviewBacklogQueryHandler, logger *slog.Logger) *ReviewBacklogJob {
	return &ReviewBacklogJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "review_backlog_job"),
	}
}

// Start begins the review backlog job to run every minute.
func (j *ReviewBacklogJob) Start() error {
	_, err := j.cron.AddFunc("@every 1m", func() {
		ctx := context.Background()

		backlog, err := j.handler.Handle(ctx)
		if err != nil {
			j.logger.ErrorContext(ctx, "Review backlog probe failed", "error", err)
			return
		}

		if backlog.PendingCount == 0 {
			j.logger.InfoContext(ctx, "Review backlog is empty")
			return
		}

		oldestAge := time.Duration(0)
		if backlog.OldestCreatedAt != nil {
			oldestAge = time.Since(*backlog.OldestCreatedAt)
		}

		j.logger.InfoContext(ctx, "Review backlog",
			"pending_count", backlog.PendingCount,
			"oldest_age", oldestAge.Round(time.Second).String(),
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Review backlog job started (running every minute)")
	return nil
}

// Stop stops the review backlog job.
func (j *ReviewBacklogJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Review backlog job stopped")
}
