// file: internals/middlewares/operator_middleware.go
package middlewares

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"srcs_backend/internals/constants"
)

type OperatorJWTOpts struct {
	Secret       string
	AllowedRoles []string // empty = any authenticated operator
}

// OperatorJWT guards the admin/cashier group. It verifies a bearer
// token issued by the school's identity provider and stashes the
// operator name/role in locals: payment records carry processed_by
// from here. It does not implement login or user management.
func OperatorJWT(o OperatorJWTOpts) fiber.Handler {
	secret := strings.TrimSpace(o.Secret)
	if secret == "" {
		// no configured secret means no token can ever verify
		return func(c *fiber.Ctx) error {
			return fiber.NewError(fiber.StatusUnauthorized, "Operator authentication is not configured")
		}
	}

	allowed := make(map[string]bool, len(o.AllowedRoles))
	for _, r := range o.AllowedRoles {
		allowed[r] = true
	}

	return func(c *fiber.Ctx) error {
		raw := ""
		if authz := strings.TrimSpace(c.Get(fiber.HeaderAuthorization)); strings.HasPrefix(strings.ToLower(authz), "bearer ") {
			raw = strings.TrimSpace(authz[7:])
		}
		if raw == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
		}

		tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
			}
			return []byte(secret), nil
		})
		if err != nil || !tok.Valid {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
		}

		claims, ok := tok.Claims.(jwt.MapClaims)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token claims")
		}

		name := strClaim(claims, "name")
		if name == "" {
			name = strClaim(claims, "sub")
		}
		if name == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Token carries no operator identity")
		}
		role := strClaim(claims, "role")

		if len(allowed) > 0 && !allowed[role] {
			return fiber.NewError(fiber.StatusForbidden, constants.RoleErrorCashier("cashiering"))
		}

		c.Locals("jwt_claims", claims)
		c.Locals("operator_name", name)
		c.Locals("operator_role", role)
		return c.Next()
	}
}

func strClaim(claims jwt.MapClaims, key string) string {
	if v, ok := claims[key].(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}
