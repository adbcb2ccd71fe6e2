// file: internals/features/finance/soa/route/student_soa_route.go
package route

import (
	soaController "srcs_backend/internals/features/finance/soa/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func StudentSoaAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := soaController.NewStudentSoaController(db)

	r.Get("/soas/:id", ctl.Detail)
	r.Put("/soas/:id/subsidy", ctl.ApplySubsidy)
	r.Get("/enrollments/:id/soa", ctl.ByEnrollment)
}
