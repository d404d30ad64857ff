package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/principal"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrGetPackagingOrdersQueryIsNotConstructed = errors.New(
		"GetPackagingOrdersQuery must be created via NewGetPackagingOrdersQuery constructor",
	)
)

// GetPackagingOrdersQuery retrieves the packaging work queue: every CONFIRMED
// order across all sellers, oldest first so the longest-waiting order is
// packed next. Only packaging agents may run it.
type GetPackagingOrdersQuery struct { //nolint:recvcheck //using for validation
	principal principal.Principal

	guard guard.ConstructorGuard
}

// NewGetPackagingOrdersQuery creates a work-queue query for the given principal.
func NewGetPackagingOrdersQuery(p principal.Principal) (GetPackagingOrdersQuery, error) {
	if err := p.Validate(); err != nil {
		return GetPackagingOrdersQuery{}, err
	}

	return GetPackagingOrdersQuery{
		principal: p,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPackagingOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetPackagingOrdersQueryIsNotConstructed)
}

// Principal returns the caller identity.
func (q GetPackagingOrdersQuery) Principal() principal.Principal {
	return q.principal
}
