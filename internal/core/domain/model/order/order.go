package order

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
)

// Order represents a customer order in the fulfillment system. It is the
// aggregate root that manages the lifecycle from creation through review,
// packaging and cancellation.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and a non-empty order number
//   - Belongs to exactly one seller; seller reassignment is not supported
//   - Must carry customer name and phone
//   - Must have at least one item; the item set is immutable after creation
//   - Total amount is never negative
//   - Status changes only through ChangeStatus, after the transition
//     authorizer approved the move
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// orderNumber is the human-readable unique code assigned at creation
	orderNumber string

	// sellerID references the owning seller; immutable after creation
	sellerID kernel.UUID

	// customer holds recipient details (name and phone are required)
	customer CustomerDetails

	// internalNotes are operator-facing notes never shown to the customer
	internalNotes string

	// totalAmount is the order total; never negative, defaults to 0
	totalAmount float64

	// items is the ordered, immutable collection of order lines
	items []Item

	// status represents the current state in the order lifecycle
	status Status

	// createdAt is set once at creation; listings sort by this field
	createdAt time.Time

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order instance with validation. This is the only way
// to create a valid new Order, ensuring all business invariants are maintained.
//
// Parameters:
//   - id: Unique identifier for the order (must be a constructed UUID)
//   - orderNumber: Human-readable unique code (use NewOrderNumber)
//   - sellerID: The owning seller's identifier
//   - customer: Validated customer details
//   - internalNotes: Operator-facing notes (may be empty)
//   - totalAmount: Order total (must not be negative; 0 when unset)
//   - items: At least one validated order line
//   - initial: The starting status; PendingReview unless a privileged
//     creation policy allows otherwise
//
// The constructor validates all inputs and stamps createdAt with the current
// UTC time.
func NewOrder(
	id kernel.UUID,
	orderNumber string,
	sellerID kernel.UUID,
	customer CustomerDetails,
	internalNotes string,
	totalAmount float64,
	items []Item,
	initial Status,
) (*Order, error) {
	order := &Order{
		internalNotes: internalNotes,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setOrderNumber(orderNumber),
		order.setSellerID(sellerID),
		order.setCustomer(customer),
		order.setTotalAmount(totalAmount),
		order.setItems(items),
		order.setStatus(initial),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persistence without re-stamping
// createdAt. All the same invariants as NewOrder apply; data that fails them
// indicates storage corruption and is rejected.
func RestoreOrder(
	id kernel.UUID,
	orderNumber string,
	sellerID kernel.UUID,
	customer CustomerDetails,
	internalNotes string,
	totalAmount float64,
	items []Item,
	status Status,
	createdAt time.Time,
) (*Order, error) {
	order, err := NewOrder(id, orderNumber, sellerID, customer, internalNotes, totalAmount, items, status)
	if err != nil {
		return nil, err
	}

	order.createdAt = createdAt
	return order, nil
}

// NewOrderNumber generates a human-readable order code of the form
// ORD-<unix-millis>-<0..999>. Uniqueness is enforced by the store.
func NewOrderNumber() string {
	return fmt.Sprintf("ORD-%d-%d", time.Now().UnixMilli(), rand.IntN(1000))
}

// Validate ensures the Order instance was properly constructed through a
// constructor. This prevents bypassing validation by directly instantiating
// the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
// Orders are considered equal if they have the same ID.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OrderNumber returns the human-readable order code.
func (o *Order) OrderNumber() string {
	return o.orderNumber
}

// SellerID returns the owning seller's identifier.
func (o *Order) SellerID() kernel.UUID {
	return o.sellerID
}

// Customer returns the recipient details.
func (o *Order) Customer() CustomerDetails {
	return o.customer
}

// InternalNotes returns operator-facing notes.
func (o *Order) InternalNotes() string {
	return o.internalNotes
}

// TotalAmount returns the order total.
func (o *Order) TotalAmount() float64 {
	return o.totalAmount
}

// Items returns a copy of the order lines in their original order.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// ChangeStatus moves the order to the given status.
//
// The method validates that next is a well-formed status value; WHO may
// perform WHICH move is the transition authorizer's decision and must have
// been taken before calling this. There is no other mutation path for status.
func (o *Order) ChangeStatus(next Status) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := next.Validate(); err != nil {
		return err
	}

	o.status = next
	return nil
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOrderNumber(orderNumber string) error {
	if orderNumber == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}
	o.orderNumber = orderNumber
	return nil
}

func (o *Order) setSellerID(sellerID kernel.UUID) error {
	if err := sellerID.Validate(); err != nil {
		return err
	}
	o.sellerID = sellerID
	return nil
}

func (o *Order) setCustomer(customer CustomerDetails) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	o.customer = customer
	return nil
}

func (o *Order) setTotalAmount(totalAmount float64) error {
	if totalAmount < 0 {
		return errs.NewValueIsInvalidErrorWithCause("totalAmount",
			fmt.Errorf("%v is not greater than or equal to 0", totalAmount))
	}
	o.totalAmount = totalAmount
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
