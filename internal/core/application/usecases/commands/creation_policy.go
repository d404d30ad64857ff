package commands

import (
	"fulfillment/internal/core/domain/model/principal"
)

// CreationPolicy states which roles may choose an order's initial status.
// Everyone else's orders start in PENDING_REVIEW, full stop. The policy is
// explicit configuration rather than implicit trust in caller-supplied
// status values.
type CreationPolicy struct {
	privilegedRoles map[principal.Role]bool
}

// NewCreationPolicy creates a policy allowing the given roles to choose an
// initial status on creation.
func NewCreationPolicy(privileged ...principal.Role) CreationPolicy {
	roles := make(map[principal.Role]bool, len(privileged))
	for _, role := range privileged {
		roles[role] = true
	}
	return CreationPolicy{privilegedRoles: roles}
}

// NewDefaultCreationPolicy creates the standard policy: only ADMIN and
// SUPER_ADMIN may choose an initial status.
func NewDefaultCreationPolicy() CreationPolicy {
	return NewCreationPolicy(principal.Admin, principal.SuperAdmin)
}

// MayChooseInitialStatus reports whether the role may supply an initial
// status different from PENDING_REVIEW.
func (p CreationPolicy) MayChooseInitialStatus(role principal.Role) bool {
	return p.privilegedRoles[role]
}
