// file: internals/features/finance/structures/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"vidyalaya_backend/internals/features/finance/structures/controller"
)

// Admin routes: batch templates + student structures.
func StructuresAdminRoutes(admin fiber.Router, db *gorm.DB) {
	batch := &controller.BatchFeeStructureHandler{DB: db}
	student := &controller.StudentFeeStructureHandler{DB: db}

	bg := admin.Group("/batch-fee-structures")
	{
		bg.Post("/", batch.Create)
		bg.Get("/", batch.List)
		bg.Get("/:id", batch.GetByID)
		bg.Post("/:id/supersede", batch.Supersede)
	}

	sg := admin.Group("/student-fee-structures")
	{
		sg.Post("/", student.Create)
		sg.Get("/", student.List)
		sg.Get("/:id", student.GetByID)
		sg.Post("/:id/line-items/:lineId/waive", student.WaiveLineItem)
	}
}
