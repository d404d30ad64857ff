package services

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/principal"
)

var (
	// ErrTransitionDenied classifies all status-transition denials.
	// The concrete TransitionDeniedError carries the human-readable reason,
	// which must reach the caller unchanged.
	ErrTransitionDenied = errors.New("status transition denied")

	// ErrRoleNotPermitted classifies denials where the acting role has no
	// authority over order status at all, regardless of states involved.
	ErrRoleNotPermitted = errors.New("role is not permitted to update order status")
)

// TransitionDeniedError is returned when a requested status transition is not
// allowed. Reason is displayed to the operator verbatim.
type TransitionDeniedError struct {
	Reason string
}

func (e *TransitionDeniedError) Error() string {
	return e.Reason
}

func (e *TransitionDeniedError) Unwrap() error {
	return ErrTransitionDenied
}

// NewTransitionDeniedError creates a denial with the given reason.
func NewTransitionDeniedError(reason string) *TransitionDeniedError {
	return &TransitionDeniedError{Reason: reason}
}

// RoleNotPermittedError is returned when the acting role may never update
// order status, whatever the current and requested states are.
type RoleNotPermittedError struct {
	Role principal.Role
}

func (e *RoleNotPermittedError) Error() string {
	return fmt.Sprintf("%s is not permitted to update order status", e.Role)
}

func (e *RoleNotPermittedError) Unwrap() error {
	return ErrRoleNotPermitted
}

// transitionRule describes one row of the authority table: a role may move
// orders out of exactly one source status into a fixed set of targets.
type transitionRule struct {
	source  order.Status
	targets []order.Status

	// denial texts shown when the rule rejects a request
	wrongTarget string
	wrongSource string
}

// TransitionAuthorizer is the domain service deciding whether a role may move
// an order from its current status to a requested one.
//
// The authority table is closed-world: two hops are modeled
// (PENDING_REVIEW -> CONFIRMED/CANCELLED by the call center,
// CONFIRMED -> PACKED by packaging) and everything else is denied. Delivery
// handoff states (OUT_FOR_DELIVERY, DELIVERED) intentionally have no rows.
//
// Decision order:
//  1. Requested status outside the global target set -> deny.
//  2. Role without a row -> deny (RoleNotPermittedError).
//  3. Requested status outside the role's targets -> deny with the
//     role-specific reason.
//  4. Current status not the role's source -> deny with the role-specific
//     reason.
//  5. Allow.
type TransitionAuthorizer struct{}

// NewTransitionAuthorizer creates a new TransitionAuthorizer instance.
func NewTransitionAuthorizer() TransitionAuthorizer {
	return TransitionAuthorizer{}
}

func rules() map[principal.Role]transitionRule {
	callCenter := transitionRule{
		source:      order.PendingReview,
		targets:     []order.Status{order.Confirmed, order.Cancelled},
		wrongTarget: "Call Center can only CONFIRM or CANCEL.",
		wrongSource: "Call Center can only update orders in PENDING_REVIEW.",
	}

	return map[principal.Role]transitionRule{
		principal.CallCenterAgent:   callCenter,
		principal.CallCenterManager: callCenter,
		principal.PackagingAgent: {
			source:      order.Confirmed,
			targets:     []order.Status{order.Packed},
			wrongTarget: "Packaging can only mark orders as PACKED.",
			wrongSource: "Packaging can only pack orders in CONFIRMED.",
		},
	}
}

// Authorize decides whether role may move an order from current to requested.
// Returns nil on allow; on deny the error is a *RoleNotPermittedError or a
// *TransitionDeniedError whose reason is safe to surface to the operator.
func (a TransitionAuthorizer) Authorize(role principal.Role, current, requested order.Status) error {
	if !requested.IsWritableTarget() {
		return NewTransitionDeniedError(fmt.Sprintf(
			"Invalid status requested: %s. Allowed: CONFIRMED, CANCELLED, PACKED.", requested))
	}

	rule, ok := rules()[role]
	if !ok {
		return &RoleNotPermittedError{Role: role}
	}

	allowed := false
	for _, target := range rule.targets {
		if requested == target {
			allowed = true
			break
		}
	}
	if !allowed {
		return NewTransitionDeniedError(rule.wrongTarget)
	}

	if current != rule.source {
		return NewTransitionDeniedError(rule.wrongSource)
	}

	return nil
}
