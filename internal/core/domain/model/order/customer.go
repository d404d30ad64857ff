package order

import (
	"errors"

	"fulfillment/internal/pkg/errs"
)

// ErrCustomerDetailsAreNotConstructed is returned when CustomerDetails were not
// created through the NewCustomerDetails factory method.
var ErrCustomerDetailsAreNotConstructed = errors.New(
	"CustomerDetails must be created via NewCustomerDetails constructor",
)

// CustomerDetails is a value object holding the recipient information of an
// order. Name and phone are required; shipping address and notes are plain
// attributes with no invariant.
type CustomerDetails struct {
	name            string
	phone           string
	shippingAddress string
	notes           string

	isConstructed bool
}

// NewCustomerDetails creates validated customer details.
// Returns a ValueIsRequiredError if name or phone is empty.
func NewCustomerDetails(name, phone, shippingAddress, notes string) (CustomerDetails, error) {
	if name == "" {
		return CustomerDetails{}, errs.NewValueIsRequiredError("customerName")
	}
	if phone == "" {
		return CustomerDetails{}, errs.NewValueIsRequiredError("customerPhone")
	}

	return CustomerDetails{
		name:            name,
		phone:           phone,
		shippingAddress: shippingAddress,
		notes:           notes,
		isConstructed:   true,
	}, nil
}

// Validate ensures the value was created through NewCustomerDetails.
func (c CustomerDetails) Validate() error {
	if !c.isConstructed {
		return ErrCustomerDetailsAreNotConstructed
	}
	return nil
}

// Name returns the customer's name.
func (c CustomerDetails) Name() string {
	return c.name
}

// Phone returns the customer's phone number.
func (c CustomerDetails) Phone() string {
	return c.phone
}

// ShippingAddress returns the free-form shipping address.
func (c CustomerDetails) ShippingAddress() string {
	return c.shippingAddress
}

// Notes returns customer-visible notes attached to the order.
func (c CustomerDetails) Notes() string {
	return c.notes
}
