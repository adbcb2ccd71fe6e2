// file: internals/helpers/operator.go
package helper

import "github.com/gofiber/fiber/v2"

// OperatorName returns the operator identity the auth guard stashed in
// request locals. Money-affecting records always carry this.
func OperatorName(c *fiber.Ctx) string {
	if v, ok := c.Locals("operator_name").(string); ok && v != "" {
		return v
	}
	return "unknown"
}

// OperatorRole returns the operator's role claim, empty when absent.
func OperatorRole(c *fiber.Ctx) string {
	if v, ok := c.Locals("operator_role").(string); ok {
		return v
	}
	return ""
}
