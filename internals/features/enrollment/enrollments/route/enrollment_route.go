// file: internals/features/enrollment/enrollments/route/enrollment_route.go
package route

import (
	enrollmentController "srcs_backend/internals/features/enrollment/enrollments/controller"
	"srcs_backend/internals/middlewares"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Public side: submission + tracking, both rate limited.
func EnrollmentPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := enrollmentController.NewEnrollmentController(db)

	r.Post("/enrollments", middlewares.EnrollmentSubmitRateLimiter(), ctl.Submit)
	r.Get("/enrollments/track/:reference", middlewares.TrackerRateLimiter(), ctl.Track)
}

func EnrollmentAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := enrollmentController.NewEnrollmentController(db)

	enr := r.Group("/enrollments")
	enr.Get("/", ctl.List)
	enr.Get("/:id", ctl.Detail)
	enr.Patch("/:id/status", ctl.UpdateStatus)
}
