// Package principal models the authenticated caller identity.
//
// A Principal is produced by an external authentication collaborator (the
// gateway) and passed explicitly into every core operation; the core never
// reads ambient session state. The role is validated once at the boundary
// via RoleFromString and carried as a closed enumeration afterwards.
package principal

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
)

// ErrPrincipalIsNotConstructed is returned when a Principal instance was not
// created through the NewPrincipal factory method.
var ErrPrincipalIsNotConstructed = errors.New("Principal must be created via NewPrincipal constructor")

// Principal is the authenticated caller identity: a role, the caller's user
// id, and, for sellers whose profile was already resolved, the seller id.
// It is ephemeral and never persisted by the core.
type Principal struct {
	role     Role
	userID   kernel.UUID
	sellerID *kernel.UUID

	isConstructed bool
}

// NewPrincipal creates a validated principal.
// The role must be a member of the closed role enumeration and the user id
// must be a constructed UUID.
func NewPrincipal(role Role, userID kernel.UUID) (Principal, error) {
	if err := role.Validate(); err != nil {
		return Principal{}, err
	}
	if err := userID.Validate(); err != nil {
		return Principal{}, err
	}

	return Principal{
		role:          role,
		userID:        userID,
		isConstructed: true,
	}, nil
}

// NewSellerPrincipal creates a SELLER principal with an already resolved
// seller profile id embedded. Listing and creation then skip the
// profile lookup.
func NewSellerPrincipal(userID, sellerID kernel.UUID) (Principal, error) {
	p, err := NewPrincipal(Seller, userID)
	if err != nil {
		return Principal{}, err
	}
	if err = sellerID.Validate(); err != nil {
		return Principal{}, err
	}

	p.sellerID = &sellerID
	return p, nil
}

// Validate ensures the principal was created through a constructor.
func (p Principal) Validate() error {
	if !p.isConstructed {
		return ErrPrincipalIsNotConstructed
	}
	return nil
}

// Role returns the caller's role.
func (p Principal) Role() Role {
	return p.role
}

// UserID returns the caller's user identifier.
func (p Principal) UserID() kernel.UUID {
	return p.userID
}

// SellerID returns the resolved seller profile id for SELLER principals,
// or nil when the profile was not resolved (or the role is not SELLER).
func (p Principal) SellerID() *kernel.UUID {
	return p.sellerID
}
