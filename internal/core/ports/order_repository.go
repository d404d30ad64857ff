package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// It provides durable CRUD primitives with no business logic; callers above
// this layer are responsible for authorization.
type OrderRepository interface {
	// Add persists a new order aggregate and its items as one atomic unit.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier, items
	// included. Returns an ObjectNotFoundError if the id is absent.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// UpdateStatus moves an order from the observed prior status to the next
	// one as a single compare-and-swap. Returns an ObjectNotFoundError if the
	// id is absent, and a VersionIsInvalidError if the order exists but its
	// status no longer equals from (a concurrent transition won the race).
	UpdateStatus(ctx context.Context, id kernel.UUID, from, to order.Status) error
}
