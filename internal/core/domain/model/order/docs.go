// Package order contains the order aggregate and its value objects.
//
// The aggregate root is Order, which owns the order number, the owning
// seller reference, the customer details, the immutable item collection and
// the lifecycle status. Status implements the lifecycle state machine; the
// role-keyed decision about WHO may move an order between states lives in
// the services package (TransitionAuthorizer), keeping the aggregate free of
// authorization concerns.
package order
