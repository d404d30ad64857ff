package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/principal"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
		"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
	)
)

// ChangeOrderStatusCommand represents a request to move an order to a new
// lifecycle status on behalf of an operator. Whether the move is allowed is
// the transition authorizer's decision, taken by the handler against the
// order's current status.
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	principal principal.Principal
	orderID   kernel.UUID
	requested order.Status

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand creates a command to change an order's status.
// Validates the principal, the order id and that the requested status is a
// well-formed status value. Whether it is a permitted target is decided
// later, so that the denial carries a proper reason instead of a parse error.
func NewChangeOrderStatusCommand(
	p principal.Principal,
	orderID kernel.UUID,
	requested order.Status,
) (ChangeOrderStatusCommand, error) {
	cmd := ChangeOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPrincipal(p),
		cmd.setOrderID(orderID),
		cmd.setRequested(requested),
	); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrChangeOrderStatusCommandIsNotConstructed if validation fails.
func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

// Principal returns the acting caller identity.
func (c ChangeOrderStatusCommand) Principal() principal.Principal {
	return c.principal
}

// OrderID returns the target order's identifier.
func (c ChangeOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Requested returns the requested next status.
func (c ChangeOrderStatusCommand) Requested() order.Status {
	return c.requested
}

func (c *ChangeOrderStatusCommand) setPrincipal(p principal.Principal) error {
	if err := p.Validate(); err != nil {
		return err
	}
	c.principal = p
	return nil
}

func (c *ChangeOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *ChangeOrderStatusCommand) setRequested(requested order.Status) error {
	if err := requested.Validate(); err != nil {
		return err
	}
	c.requested = requested
	return nil
}
