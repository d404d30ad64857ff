package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/principal"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a request to register a new customer order.
// It carries the acting principal, the generated identifiers, the customer
// details and the item lines. The seller context is either embedded
// (privileged creators name a seller explicitly) or resolved by the handler
// from the principal's own seller profile.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	customer, _ := order.NewCustomerDetails("Test", "9000000000", "12 Main St", "")
//	cmd, err := commands.NewCreateOrderCommand(
//	    p, orderID, order.NewOrderNumber(), customer, "", 149.90, items)
//	if err != nil {
//	    return fmt.Errorf("invalid order draft: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	principal     principal.Principal
	orderID       kernel.UUID
	orderNumber   string
	sellerID      *kernel.UUID
	customer      order.CustomerDetails
	internalNotes string
	totalAmount   float64
	items         []order.Item
	initialStatus *order.Status

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates the principal, the identifiers, the customer details and that at
// least one item is present. Returns an error if any validation fails.
func NewCreateOrderCommand(
	p principal.Principal,
	orderID kernel.UUID,
	orderNumber string,
	customer order.CustomerDetails,
	internalNotes string,
	totalAmount float64,
	items []order.Item,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		internalNotes: internalNotes,
		totalAmount:   totalAmount,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPrincipal(p),
		cmd.setOrderID(orderID),
		cmd.setOrderNumber(orderNumber),
		cmd.setCustomer(customer),
		cmd.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// WithSellerID returns a copy of the command naming the seller explicitly.
// Used by privileged creators (ADMIN, SUPER_ADMIN) who act on a seller's
// behalf instead of owning a seller profile.
func (c CreateOrderCommand) WithSellerID(sellerID kernel.UUID) (CreateOrderCommand, error) {
	if err := sellerID.Validate(); err != nil {
		return CreateOrderCommand{}, err
	}
	c.sellerID = &sellerID
	return c, nil
}

// WithInitialStatus returns a copy of the command requesting a non-default
// starting status. Whether the acting role may do so is the CreationPolicy's
// decision, enforced by the handler.
func (c CreateOrderCommand) WithInitialStatus(status order.Status) (CreateOrderCommand, error) {
	if err := status.Validate(); err != nil {
		return CreateOrderCommand{}, err
	}
	c.initialStatus = &status
	return c, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Principal returns the acting caller identity.
func (c CreateOrderCommand) Principal() principal.Principal {
	return c.principal
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// OrderNumber returns the human-readable order code.
func (c CreateOrderCommand) OrderNumber() string {
	return c.orderNumber
}

// SellerID returns the explicitly named seller, or nil when the seller is to
// be resolved from the principal's own profile.
func (c CreateOrderCommand) SellerID() *kernel.UUID {
	return c.sellerID
}

// Customer returns the recipient details.
func (c CreateOrderCommand) Customer() order.CustomerDetails {
	return c.customer
}

// InternalNotes returns operator-facing notes.
func (c CreateOrderCommand) InternalNotes() string {
	return c.internalNotes
}

// TotalAmount returns the order total supplied by the creator.
func (c CreateOrderCommand) TotalAmount() float64 {
	return c.totalAmount
}

// Items returns the order lines.
func (c CreateOrderCommand) Items() []order.Item {
	return c.items
}

// InitialStatus returns the requested starting status, or nil for the
// default (PENDING_REVIEW).
func (c CreateOrderCommand) InitialStatus() *order.Status {
	return c.initialStatus
}

func (c *CreateOrderCommand) setPrincipal(p principal.Principal) error {
	if err := p.Validate(); err != nil {
		return err
	}
	c.principal = p
	return nil
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setOrderNumber(orderNumber string) error {
	if orderNumber == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}
	c.orderNumber = orderNumber
	return nil
}

func (c *CreateOrderCommand) setCustomer(customer order.CustomerDetails) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	c.customer = customer
	return nil
}

func (c *CreateOrderCommand) setItems(items []order.Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	c.items = items
	return nil
}
