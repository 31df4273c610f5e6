// file: internals/features/finance/payments/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"vidyalaya_backend/internals/features/finance/payments/controller"
)

// Admin routes: cashier actions + receipt lookup.
func PaymentsAdminRoutes(admin fiber.Router, db *gorm.DB) {
	pay := &controller.PaymentHandler{DB: db}
	rcp := &controller.FeeReceiptHandler{DB: db}

	admin.Post("/payments", pay.ApplyPayment)
	admin.Get("/payments", pay.ListByInstallment)

	grp := admin.Group("/receipts")
	{
		grp.Get("/", rcp.List)
		grp.Get("/:id", rcp.GetByID)
	}
}
