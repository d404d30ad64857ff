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
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves one order in full, items included. The handler
// distinguishes an order that does not exist from one the caller is not
// allowed to see.
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	principal principal.Principal
	orderID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a single-order query for the given principal.
func NewGetOrderQuery(p principal.Principal, orderID kernel.UUID) (GetOrderQuery, error) {
	err := errors.Join(p.Validate(), orderID.Validate())
	if err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		principal: p,
		orderID:   orderID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// Principal returns the caller identity.
func (q GetOrderQuery) Principal() principal.Principal {
	return q.principal
}

// OrderID returns the identifier of the requested order.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// OrderItemResponse is one line of an order in a detail view.
type OrderItemResponse struct {
	ProductID    kernel.UUID
	ProductName  string
	VariantLabel string
	Quantity     int
	UnitPrice    float64
}

// OrderResponse is the full detail view of one order.
type OrderResponse struct {
	ID              kernel.UUID
	OrderNumber     string
	SellerID        kernel.UUID
	CustomerName    string
	CustomerPhone   string
	ShippingAddress string
	Notes           string
	InternalNotes   string
	TotalAmount     float64
	Status          order.Status
	CreatedAt       time.Time
	Items           []OrderItemResponse
}
