// file: internals/route/details/finance_routes.go
package details

import (
	PaymentRoute "srcs_backend/internals/features/finance/payments/route"
	ReportRoute "srcs_backend/internals/features/finance/reports/route"
	SoaRoute "srcs_backend/internals/features/finance/soa/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func FinanceAdminRoutes(r fiber.Router, db *gorm.DB) {
	SoaRoute.StudentSoaAdminRoutes(r, db)
	PaymentRoute.PaymentAdminRoutes(r, db)
	ReportRoute.ReportAdminRoutes(r, db)
}
