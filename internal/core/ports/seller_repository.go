package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/seller"
)

// SellerRepository defines the persistence contract for seller aggregates.
// The core reads sellers to resolve a SELLER principal's own profile and to
// walk the order -> seller -> admin tenant edge.
type SellerRepository interface {
	// Add persists a new seller aggregate.
	Add(ctx context.Context, aggregate *seller.Seller) error

	// Get retrieves a seller by its unique identifier.
	// Returns an ObjectNotFoundError if the id is absent.
	Get(ctx context.Context, id kernel.UUID) (*seller.Seller, error)

	// GetByUserID retrieves the seller profile backed by the given login
	// identity. Returns an ObjectNotFoundError when the user has no seller
	// profile.
	GetByUserID(ctx context.Context, userID kernel.UUID) (*seller.Seller, error)
}
