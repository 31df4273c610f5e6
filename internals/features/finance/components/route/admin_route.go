// file: internals/features/finance/components/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"vidyalaya_backend/internals/features/finance/components/controller"
)

// Admin routes: component registry CRUD (no hard delete by design).
func FeeComponentAdminRoutes(admin fiber.Router, db *gorm.DB) {
	h := &controller.FeeComponentHandler{DB: db}

	grp := admin.Group("/fee-components")
	{
		grp.Post("/", h.Create)
		grp.Get("/", h.List)
		grp.Get("/:id", h.GetByID)
		grp.Patch("/:id", h.Update)
		grp.Post("/:id/set-active", h.SetActive)
	}
}
