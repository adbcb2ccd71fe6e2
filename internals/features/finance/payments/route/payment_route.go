// file: internals/features/finance/payments/route/payment_route.go
package route

import (
	paymentController "srcs_backend/internals/features/finance/payments/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

/*
Operator routes: payment ledger per SOA.
Mount: PaymentAdminRoutes(app.Group("/api/a"), db)
Final paths:
- GET  /api/a/soas/:soa_id/payments
- POST /api/a/soas/:soa_id/payments
- PUT  /api/a/soas/:soa_id/payments/:id
- POST /api/a/soas/:soa_id/payments/:id/void
*/
func PaymentAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := paymentController.NewPaymentController(db)

	pay := r.Group("/soas/:soa_id/payments")
	pay.Get("/", ctl.List)
	pay.Post("/", ctl.Create)
	pay.Put("/:id", ctl.Update)
	pay.Post("/:id/void", ctl.Void)
}
