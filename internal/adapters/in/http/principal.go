package http

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/principal"
	"fulfillment/internal/generated/servers"
)

// Identity headers populated by the edge gateway. The service trusts them
// as-is; authentication happens upstream.
const (
	HeaderUserID   = "X-User-Id"
	HeaderUserRole = "X-User-Role"
	HeaderSellerID = "X-Seller-Id"
)

const principalContextKey = "fulfillment.principal"

// PrincipalMiddleware resolves the caller identity from the gateway headers
// and stores it in the request context. Requests outside /api are passed
// through untouched so health and schema endpoints stay anonymous.
//
// Missing identity headers yield 401; a role string the service does not
// know yields 403.
func PrincipalMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			if !strings.HasPrefix(ctx.Path(), "/api/") {
				return next(ctx)
			}

			userIDHeader := ctx.Request().Header.Get(HeaderUserID)
			roleHeader := ctx.Request().Header.Get(HeaderUserRole)
			if userIDHeader == "" || roleHeader == "" {
				return ctx.JSON(http.StatusUnauthorized, servers.Error{
					Message: "Missing identity headers",
				})
			}

			userID, err := kernel.UUIDFromString(userIDHeader)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, servers.Error{
					Message: "Invalid " + HeaderUserID + " header",
				})
			}

			role, err := principal.RoleFromString(roleHeader)
			if err != nil {
				return ctx.JSON(http.StatusForbidden, servers.Error{
					Message: "Unknown role: " + roleHeader,
				})
			}

			p, err := resolvePrincipal(ctx, role, userID)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, servers.Error{
					Message: "Invalid identity headers",
				})
			}

			ctx.Set(principalContextKey, p)
			return next(ctx)
		}
	}
}

// resolvePrincipal attaches the optional seller profile reference for seller
// callers; every other role carries only the user id.
func resolvePrincipal(ctx echo.Context, role principal.Role, userID kernel.UUID) (principal.Principal, error) {
	sellerIDHeader := ctx.Request().Header.Get(HeaderSellerID)
	if role == principal.Seller && sellerIDHeader != "" {
		sellerID, err := kernel.UUIDFromString(sellerIDHeader)
		if err != nil {
			return principal.Principal{}, err
		}
		return principal.NewSellerPrincipal(userID, sellerID)
	}

	return principal.NewPrincipal(role, userID)
}

// principalFrom extracts the caller identity placed by PrincipalMiddleware.
func principalFrom(ctx echo.Context) (principal.Principal, bool) {
	p, ok := ctx.Get(principalContextKey).(principal.Principal)
	return p, ok
}
