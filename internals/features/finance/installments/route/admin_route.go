// file: internals/features/finance/installments/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"vidyalaya_backend/internals/features/finance/installments/controller"
)

// Admin routes: ledger views, dunning hooks, reconciliation.
func InstallmentsAdminRoutes(admin fiber.Router, db *gorm.DB) {
	h := &controller.FeeInstallmentHandler{DB: db}

	grp := admin.Group("/fee-installments")
	{
		grp.Get("/", h.ListByStructure)
		grp.Get("/pending", h.ListPending)
		grp.Get("/next-due", h.NextDue)
		grp.Get("/summary", h.Summary)
		grp.Post("/:id/reminder", h.TouchReminder)
		grp.Patch("/:id/payment-link", h.SetPaymentLinkStatus)
		grp.Post("/:id/reconcile", h.Reconcile)
	}
}
