// Package queries contains read-only operations in the CQRS architecture.
// Query handlers bypass the aggregate layer and read projections straight
// from the database with raw SQL, scoped by the caller's visibility filter.
package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/principal"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrGetOrdersQueryIsNotConstructed = errors.New(
		"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
	)
)

// GetOrdersQuery retrieves the order summaries visible to a principal,
// newest first. An optional status equality filter composes with the
// role-derived scope; the role's own status constraint is authoritative and
// cannot be widened.
//
// Example:
//
//	query, _ := queries.NewGetOrdersQuery(p)
//	orders, err := handler.Handle(ctx, query)
type GetOrdersQuery struct { //nolint:recvcheck //using for validation
	principal    principal.Principal
	statusFilter *order.Status

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a listing query for the given principal.
func NewGetOrdersQuery(p principal.Principal) (GetOrdersQuery, error) {
	if err := p.Validate(); err != nil {
		return GetOrdersQuery{}, err
	}

	return GetOrdersQuery{
		principal: p,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// WithStatusFilter returns a copy of the query restricted to one status.
func (q GetOrdersQuery) WithStatusFilter(status order.Status) (GetOrdersQuery, error) {
	if err := status.Validate(); err != nil {
		return GetOrdersQuery{}, err
	}
	q.statusFilter = &status
	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Principal returns the caller identity the listing is scoped to.
func (q GetOrdersQuery) Principal() principal.Principal {
	return q.principal
}

// StatusFilter returns the caller-supplied status filter, or nil.
func (q GetOrdersQuery) StatusFilter() *order.Status {
	return q.statusFilter
}

// OrderSummaryResponse is one row of a listing: enough to render an order
// table without loading items.
type OrderSummaryResponse struct {
	ID           kernel.UUID
	OrderNumber  string
	SellerID     kernel.UUID
	CustomerName string
	Status       order.Status
	TotalAmount  float64
	CreatedAt    time.Time
}
