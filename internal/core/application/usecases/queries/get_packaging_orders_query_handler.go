package queries

import (
	"context"

	"gorm.io/gorm"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/principal"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"
)

// GetPackagingOrdersQueryHandler serves the packaging work queue.
type GetPackagingOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetPackagingOrdersQueryHandler creates a work-queue handler backed by the given DB.
func NewGetPackagingOrdersQueryHandler(db *gorm.DB) (GetPackagingOrdersQueryHandler, error) {
	if db == nil {
		return GetPackagingOrdersQueryHandler{}, errs.NewValueIsRequiredErrorWithCause("db", ErrGormDbIsNil)
	}

	return GetPackagingOrdersQueryHandler{db: db}, nil
}

// Handle returns every CONFIRMED order ordered by creation time ascending.
// Principals other than packaging agents get an AccessDeniedError.
func (h GetPackagingOrdersQueryHandler) Handle(
	ctx context.Context, query GetPackagingOrdersQuery,
) ([]OrderSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if query.Principal().Role() != principal.PackagingAgent {
		return nil, services.NewAccessDeniedError("Only packaging agents may access the packaging queue.")
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT o.id, o.order_number, o.seller_id, o.customer_name, o.status, o.total_amount, o.created_at
		FROM orders o
		JOIN sellers s ON s.id = o.seller_id
		WHERE o.status = ?
		ORDER BY o.created_at ASC`, order.Confirmed.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := []OrderSummaryResponse{}
	for rows.Next() {
		summary, err := scanOrderSummary(rows.Scan)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return summaries, nil
}
