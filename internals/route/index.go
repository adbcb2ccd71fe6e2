// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"srcs_backend/internals/configs"
	"srcs_backend/internals/constants"
	"srcs_backend/internals/middlewares"
	routeDetails "srcs_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// ===================== PUBLIC =====================
	// Parents submit enrollments and track them by reference number.
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")

	// ===================== ADMIN / CASHIER =====================
	log.Println("[INFO] Setting up OPERATOR group (JWT guard)...")
	admin := app.Group("/api/a",
		middlewares.OperatorJWT(middlewares.OperatorJWTOpts{
			Secret:       configs.JWTSecret,
			AllowedRoles: constants.AllOperatorRoles,
		}),
	)

	// ===================== MOUNT ROUTES =====================

	log.Println("[INFO] Mounting Enrollment routes...")
	routeDetails.EnrollmentPublicRoutes(public, db)
	routeDetails.EnrollmentAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Finance routes...")
	routeDetails.FinanceAdminRoutes(admin, db)
}
