package order

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct fulfillment workflow.
//
// State transitions managed by this core:
//
//	PendingReview ──┬──> Confirmed ──> Packed
//	                │
//	                └──> Cancelled
//
// OutForDelivery and Delivered exist as read-only labels: they are valid
// for parsing, persistence, and display, but no transition in this core
// produces them. Cancelled and Packed have no outgoing transitions.
//
// Status is a value object that validates state values and provides the
// wire/persistence representation used by the API and the database.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// PendingReview is the initial status when an order is first created.
	// Orders in this status are waiting for a call-center decision.
	PendingReview

	// Confirmed indicates the call center approved the order.
	// Confirmed orders form the packaging work queue.
	Confirmed

	// Cancelled indicates the call center rejected the order.
	// This is a final state with no further transitions allowed.
	Cancelled

	// Packed indicates the packaging team prepared the order for handoff.
	// No further transitions are managed by this core past Packed.
	Packed

	// OutForDelivery is a read-only label; the delivery handoff transition
	// is outside this core's authority table.
	OutForDelivery

	// Delivered is a read-only label; the delivery completion transition
	// is outside this core's authority table.
	Delivered
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "UNKNOWN",
		PendingReview:  "PENDING_REVIEW",
		Confirmed:      "CONFIRMED",
		Cancelled:      "CANCELLED",
		Packed:         "PACKED",
		OutForDelivery: "OUT_FOR_DELIVERY",
		Delivered:      "DELIVERED",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		PendingReview:  "PENDING_REVIEW",
		Confirmed:      "CONFIRMED",
		Cancelled:      "CANCELLED",
		Packed:         "PACKED",
		OutForDelivery: "OUT_FOR_DELIVERY",
		Delivered:      "DELIVERED",
	}
}

// StatusFromString parses the wire representation of a status
// (e.g. "PENDING_REVIEW"). Returns an error for any string that is not a
// member of the valid status set; role enumerations are never re-mapped
// downstream, so this is the single point where status strings enter the
// domain.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: PendingReview, Confirmed, Cancelled, Packed,
// OutForDelivery, Delivered. Unknown (0) and any other values are invalid.
//
// This method is used to ensure Status values from external sources
// (e.g., database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire representation of the status
// ("PENDING_REVIEW", "CONFIRMED", ...), or "UNKNOWN" for invalid values.
// Implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsWritableTarget reports whether the status is a member of the global
// allowed-target set for status updates. Only Confirmed, Cancelled and
// Packed may ever be requested as the next status; everything else is
// rejected before any role rule is consulted.
func (s Status) IsWritableTarget() bool {
	return s == Confirmed || s == Cancelled || s == Packed
}

// IsTerminal reports whether the status has no outgoing transitions in
// this core. Cancelled and Packed are terminal for the scoped lifecycle.
func (s Status) IsTerminal() bool {
	return s == Cancelled || s == Packed
}
