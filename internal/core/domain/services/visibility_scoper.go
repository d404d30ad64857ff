package services

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/principal"
)

// ErrAccessDenied classifies visibility violations: the caller is
// authenticated but not entitled to the requested view.
var ErrAccessDenied = errors.New("access is denied")

// AccessDeniedError is returned when a caller's scope does not cover the
// requested order or operation. Reason is safe to show to the operator.
type AccessDeniedError struct {
	Reason string
}

func (e *AccessDeniedError) Error() string {
	return e.Reason
}

func (e *AccessDeniedError) Unwrap() error {
	return ErrAccessDenied
}

// NewAccessDeniedError creates an access denial with the given reason.
func NewAccessDeniedError(reason string) *AccessDeniedError {
	return &AccessDeniedError{Reason: reason}
}

// OrderScope is the query filter restricting which orders a principal may
// list or read. Exactly one producer exists (VisibilityScoper.ScopeFor);
// repositories translate it into SQL and the single-order read path checks
// candidates against it with Matches.
//
// A scope is one of:
//   - unrestricted (all orders)
//   - restricted by seller id, seller user id, tenant admin id, and/or a
//     pinned status
//   - match-nothing (empty result, used for sellers without a profile and
//     for incompatible status filter combinations)
type OrderScope struct {
	matchNone    bool
	sellerID     *kernel.UUID
	sellerUserID *kernel.UUID
	adminID      *kernel.UUID
	status       *order.Status
}

// MatchesNothing reports whether the scope can never match any order.
func (s OrderScope) MatchesNothing() bool {
	return s.matchNone
}

// SellerID returns the seller restriction, or nil.
func (s OrderScope) SellerID() *kernel.UUID {
	return s.sellerID
}

// SellerUserID returns the seller-profile-by-user restriction, or nil.
// It is set for SELLER principals whose profile id was not embedded; the
// store resolves it through the seller record.
func (s OrderScope) SellerUserID() *kernel.UUID {
	return s.sellerUserID
}

// AdminID returns the tenant restriction, or nil.
func (s OrderScope) AdminID() *kernel.UUID {
	return s.adminID
}

// Status returns the status restriction, or nil.
func (s OrderScope) Status() *order.Status {
	return s.status
}

// WithStatus composes a caller-supplied status equality filter into the
// scope. A role-pinned status is authoritative: requesting the same status
// is a no-op, requesting a different one yields a match-nothing scope
// instead of widening the caller's view.
func (s OrderScope) WithStatus(requested order.Status) OrderScope {
	if s.matchNone {
		return s
	}
	if s.status != nil {
		if *s.status != requested {
			return OrderScope{matchNone: true}
		}
		return s
	}

	s.status = &requested
	return s
}

// OrderVisibility is the minimal projection of an order needed to decide
// whether it falls inside a scope.
type OrderVisibility struct {
	SellerID      kernel.UUID
	SellerUserID  kernel.UUID
	SellerAdminID kernel.UUID
	Status        order.Status
}

// Matches reports whether the given order projection falls inside the scope.
// Used on the single-order read path, where an out-of-scope hit must surface
// as access denied rather than not found.
func (s OrderScope) Matches(v OrderVisibility) bool {
	if s.matchNone {
		return false
	}
	if s.sellerID != nil && !s.sellerID.IsEqual(v.SellerID) {
		return false
	}
	if s.sellerUserID != nil && !s.sellerUserID.IsEqual(v.SellerUserID) {
		return false
	}
	if s.adminID != nil && !s.adminID.IsEqual(v.SellerAdminID) {
		return false
	}
	if s.status != nil && *s.status != v.Status {
		return false
	}
	return true
}

// VisibilityScoper is the domain service computing which orders a principal
// may see. It is a pure function of the principal: total over every valid
// role, deterministic, and free of side effects.
//
// Role filters:
//
//	SELLER                  own orders (by embedded seller id, or by the
//	                        seller profile's user id when not embedded; a
//	                        missing profile yields an empty result)
//	CALL_CENTER_*           orders in PENDING_REVIEW
//	PACKAGING_AGENT         orders in CONFIRMED
//	DELIVERY_AGENT          orders in PACKED
//	STOCK_KEEPER            all orders
//	ADMIN                   orders of sellers this admin created
//	SUPER_ADMIN             all orders
type VisibilityScoper struct{}

// NewVisibilityScoper creates a new VisibilityScoper instance.
func NewVisibilityScoper() VisibilityScoper {
	return VisibilityScoper{}
}

// ScopeFor computes the order filter for the given principal.
// An unrecognized role produces an AccessDeniedError; every valid role
// produces a scope, never an error.
func (v VisibilityScoper) ScopeFor(p principal.Principal) (OrderScope, error) {
	if err := p.Validate(); err != nil {
		return OrderScope{}, err
	}

	switch role := p.Role(); role {
	case principal.Seller:
		if sellerID := p.SellerID(); sellerID != nil {
			return OrderScope{sellerID: sellerID}, nil
		}
		userID := p.UserID()
		return OrderScope{sellerUserID: &userID}, nil

	case principal.CallCenterAgent, principal.CallCenterManager:
		return statusScope(order.PendingReview), nil

	case principal.PackagingAgent:
		return statusScope(order.Confirmed), nil

	case principal.DeliveryAgent:
		return statusScope(order.Packed), nil

	case principal.StockKeeper, principal.SuperAdmin:
		return OrderScope{}, nil

	case principal.Admin:
		adminID := p.UserID()
		return OrderScope{adminID: &adminID}, nil

	default:
		return OrderScope{}, NewAccessDeniedError("role " + role.String() + " may not list orders")
	}
}

func statusScope(status order.Status) OrderScope {
	return OrderScope{status: &status}
}
