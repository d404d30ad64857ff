// Package services contains stateless domain services that implement business
// rules spanning a single aggregate and the caller's identity.
//
// TransitionAuthorizer decides whether a role may move an order between two
// lifecycle statuses; VisibilityScoper computes which orders a principal may
// see. Both are pure decision logic with no I/O; application handlers own
// orchestration and persistence.
package services
