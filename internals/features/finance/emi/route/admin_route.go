// file: internals/features/finance/emi/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"vidyalaya_backend/internals/features/finance/emi/controller"
)

// Admin routes: template CRUD + schedule generation.
func EMIAdminRoutes(admin fiber.Router, db *gorm.DB) {
	tpl := &controller.EMIPlanTemplateHandler{DB: db}
	gen := &controller.ScheduleGenerateHandler{DB: db}

	grp := admin.Group("/emi-templates")
	{
		grp.Post("/", tpl.Create)
		grp.Get("/", tpl.List)
		grp.Get("/:id", tpl.GetByID)
		grp.Patch("/:id", tpl.Update)
		grp.Post("/:id/set-default", tpl.SetDefault)
	}

	admin.Post("/emi-schedules/generate", gen.Generate)
}
