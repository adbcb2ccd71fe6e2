// file: internals/middlewares/setup.go
package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"srcs_backend/internals/middlewares/logger"
)

// SetupMiddlewares installs the base stack in order: recovery first so
// a panic anywhere below still returns JSON, then logging, CORS, and
// the global rate limiter.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(CorsMiddleware())
	app.Use(GlobalRateLimiter())
}
