package constants

import "fmt"

// Operator roles carried in the identity token.
const (
	RoleAdmin   = "admin"
	RoleCashier = "cashier"
)

// Role error message templates
const (
	ErrOnlyCashiersCanAccess = "Only cashier or admin operators may access %s."
	ErrOnlyAdminsCanAccess   = "Only admin operators may access %s."
)

func RoleErrorCashier(feature string) string {
	return fmt.Sprintf(ErrOnlyCashiersCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

// ==========================
// Grouped Role Slices
// ==========================
var (
	AllOperatorRoles = []string{
		RoleAdmin,
		RoleCashier,
	}

	AdminOnly = []string{
		RoleAdmin,
	}
)
