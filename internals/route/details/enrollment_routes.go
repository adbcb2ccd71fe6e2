// file: internals/route/details/enrollment_routes.go
package details

import (
	EnrollmentRoute "srcs_backend/internals/features/enrollment/enrollments/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func EnrollmentPublicRoutes(r fiber.Router, db *gorm.DB) {
	EnrollmentRoute.EnrollmentPublicRoutes(r, db)
}

func EnrollmentAdminRoutes(r fiber.Router, db *gorm.DB) {
	EnrollmentRoute.EnrollmentAdminRoutes(r, db)
}
