package queries

import (
	"context"
	"time"

	"gorm.io/gorm"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
)

// ReviewBacklogResponse summarizes the call-center workload: how many orders
// await review and how long the oldest one has been waiting. OldestCreatedAt
// is nil when the backlog is empty.
type ReviewBacklogResponse struct {
	PendingCount    int64
	OldestCreatedAt *time.Time
}

// GetReviewBacklogQueryHandler measures the PENDING_REVIEW backlog. It is a
// read-only probe with no principal: the periodic job is its only caller.
type GetReviewBacklogQueryHandler struct {
	db *gorm.DB
}

// NewGetReviewBacklogQueryHandler creates a backlog handler backed by the given DB.
func NewGetReviewBacklogQueryHandler(db *gorm.DB) (GetReviewBacklogQueryHandler, error) {
	if db == nil {
		return GetReviewBacklogQueryHandler{}, errs.NewValueIsRequiredErrorWithCause("db", ErrGormDbIsNil)
	}

	return GetReviewBacklogQueryHandler{db: db}, nil
}

// Handle returns the current backlog size and the age marker of its oldest order.
func (h GetReviewBacklogQueryHandler) Handle(ctx context.Context) (ReviewBacklogResponse, error) {
	row := h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*), MIN(created_at)
		FROM orders
		WHERE status = ?`, order.PendingReview.String()).Row()

	var response ReviewBacklogResponse
	if err := row.Scan(&response.PendingCount, &response.OldestCreatedAt); err != nil {
		return ReviewBacklogResponse{}, err
	}

	return response, nil
}
