package queries

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"
)

var ErrGormDbIsNil = errors.New("gorm db is nil")

// GetOrdersQueryHandler lists orders visible to a principal, newest first.
type GetOrdersQueryHandler struct {
	db     *gorm.DB
	scoper services.VisibilityScoper
}

// NewGetOrdersQueryHandler creates a listing handler backed by the given DB.
func NewGetOrdersQueryHandler(db *gorm.DB) (GetOrdersQueryHandler, error) {
	if db == nil {
		return GetOrdersQueryHandler{}, errs.NewValueIsRequiredErrorWithCause("db", ErrGormDbIsNil)
	}

	return GetOrdersQueryHandler{db: db, scoper: services.NewVisibilityScoper()}, nil
}

// Handle returns the order summaries inside the caller's visibility scope.
// Principals whose scope matches nothing get an empty slice, not an error.
func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) ([]OrderSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	scope, err := h.scoper.ScopeFor(query.Principal())
	if err != nil {
		return nil, err
	}
	if filter := query.StatusFilter(); filter != nil {
		scope = scope.WithStatus(*filter)
	}
	if scope.MatchesNothing() {
		return []OrderSummaryResponse{}, nil
	}

	conds, args := scopeConditions(scope)
	sql := `
		SELECT o.id, o.order_number, o.seller_id, o.customer_name, o.status, o.total_amount, o.created_at
		FROM orders o
		JOIN sellers s ON s.id = o.seller_id
		WHERE 1 = 1` + conds + `
		ORDER BY o.created_at DESC`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
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

func scanOrderSummary(scan func(dest ...any) error) (OrderSummaryResponse, error) {
	var (
		summary   OrderSummaryResponse
		id        uuid.UUID
		sellerID  uuid.UUID
		statusStr string
	)

	err := scan(&id, &summary.OrderNumber, &sellerID, &summary.CustomerName,
		&statusStr, &summary.TotalAmount, &summary.CreatedAt)
	if err != nil {
		return OrderSummaryResponse{}, err
	}

	if summary.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return OrderSummaryResponse{}, err
	}
	if summary.SellerID, err = kernel.UUIDFromBytes(sellerID[:]); err != nil {
		return OrderSummaryResponse{}, err
	}
	if summary.Status, err = order.StatusFromString(statusStr); err != nil {
		return OrderSummaryResponse{}, err
	}

	return summary, nil
}
