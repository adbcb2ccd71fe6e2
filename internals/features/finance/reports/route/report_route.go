// file: internals/features/finance/reports/route/report_route.go
package route

import (
	reportController "srcs_backend/internals/features/finance/reports/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func ReportAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := reportController.NewReportController(db)

	r.Get("/reports/collections", ctl.Collections)
	r.Get("/payments/:id/receipt", ctl.Receipt)
}
