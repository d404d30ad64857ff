package queries

import (
	"strings"

	"fulfillment/internal/core/domain/services"
)

// scopeConditions translates a visibility scope into SQL predicates over the
// orders table (aliased o) joined with sellers (aliased s). The caller is
// expected to have short-circuited scope.MatchesNothing() already.
func scopeConditions(scope services.OrderScope) (string, []any) {
	var conds []string
	var args []any

	if sellerID := scope.SellerID(); sellerID != nil {
		conds = append(conds, "o.seller_id = ?")
		args = append(args, sellerID.Bytes())
	}

	if sellerUserID := scope.SellerUserID(); sellerUserID != nil {
		conds = append(conds, "s.user_id = ?")
		args = append(args, sellerUserID.Bytes())
	}

	if adminID := scope.AdminID(); adminID != nil {
		conds = append(conds, "s.admin_id = ?")
		args = append(args, adminID.Bytes())
	}

	if status := scope.Status(); status != nil {
		conds = append(conds, "o.status = ?")
		args = append(args, status.String())
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " AND " + strings.Join(conds, " AND "), args
}
