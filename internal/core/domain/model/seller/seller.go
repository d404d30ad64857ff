// Package seller contains the seller aggregate.
//
// Sellers are the tenant edge of the model: every seller is created by
// exactly one admin, and an order's tenant is its seller's admin. The core
// reads sellers to resolve a SELLER principal's own profile and to enforce
// tenant isolation for ADMIN listings; seller management itself (signup,
// profile editing) belongs to the excluded outer surface.
package seller

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ErrSellerIsNotConstructed is returned when a Seller instance was not created
// through the NewSeller or RestoreSeller factory methods.
var ErrSellerIsNotConstructed = errors.New("Seller must be created via NewSeller or RestoreSeller constructor")

// Seller is an aggregate linking a login identity (userID) to the admin
// (tenant) that created it. Orders reference sellers by id; the admin edge
// must be resolvable in O(1) from the seller record.
type Seller struct {
	id      kernel.UUID
	userID  kernel.UUID
	adminID kernel.UUID
	name    string

	isConstructed bool
}

// NewSeller creates a validated seller.
func NewSeller(id, userID, adminID kernel.UUID, name string) (*Seller, error) {
	seller := &Seller{isConstructed: true}

	if err := errors.Join(
		seller.setID(id),
		seller.setUserID(userID),
		seller.setAdminID(adminID),
		seller.setName(name),
	); err != nil {
		return nil, err
	}

	return seller, nil
}

// RestoreSeller reconstructs a seller from persistence.
// Same invariants as NewSeller.
func RestoreSeller(id, userID, adminID kernel.UUID, name string) (*Seller, error) {
	return NewSeller(id, userID, adminID, name)
}

// Validate ensures the seller was created through a constructor.
func (s *Seller) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrSellerIsNotConstructed
	}
	return nil
}

// IsEqual compares two sellers by their unique identifiers.
func (s *Seller) IsEqual(other *Seller) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the seller's unique identifier.
func (s *Seller) ID() kernel.UUID {
	return s.id
}

// UserID returns the login identity backing this seller profile.
func (s *Seller) UserID() kernel.UUID {
	return s.userID
}

// AdminID returns the admin (tenant) that created this seller.
func (s *Seller) AdminID() kernel.UUID {
	return s.adminID
}

// Name returns the seller's display name.
func (s *Seller) Name() string {
	return s.name
}

func (s *Seller) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Seller) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	s.userID = userID
	return nil
}

func (s *Seller) setAdminID(adminID kernel.UUID) error {
	if err := adminID.Validate(); err != nil {
		return err
	}
	s.adminID = adminID
	return nil
}

func (s *Seller) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	s.name = name
	return nil
}
