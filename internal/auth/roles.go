package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/eltonkaiton/mombasa-admin/internal/domain"
	apperrors "github.com/eltonkaiton/mombasa-admin/pkg/util/errorutil"
)

// RequireAdmin ensures the dashboard is only served to admins.
func RequireAdmin() fiber.Handler {
	return RequireRole(domain.RoleAdmin)
}

// RequireRole ensures the principal has one of the allowed roles.
func RequireRole(allowed ...domain.Role) fiber.Handler {
	allowedSet := make(map[domain.Role]struct{}, len(allowed))
	for _, role := range allowed {
		allowedSet[role] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return apperrors.NewUnauthorized("login required")
		}
		if len(allowedSet) == 0 {
			return c.Next()
		}
		if _, exists := allowedSet[principal.Role]; !exists {
			return apperrors.NewForbidden("insufficient role")
		}
		return c.Next()
	}
}

// RequireSelfOrAdmin lets staff see only the record named by param.
func RequireSelfOrAdmin(param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return apperrors.NewUnauthorized("login required")
		}
		if principal.IsAdmin() || (principal.ID != "" && principal.ID == c.Params(param)) {
			return c.Next()
		}
		return apperrors.NewForbidden("not your record")
	}
}
