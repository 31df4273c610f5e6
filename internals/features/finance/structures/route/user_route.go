// file: internals/features/finance/structures/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"vidyalaya_backend/internals/features/finance/structures/controller"
)

// User routes: the parent/student portal, read only.
func StructuresUserRoutes(user fiber.Router, db *gorm.DB) {
	portal := &controller.StudentFeePortalHandler{DB: db}

	user.Get("/my-fees", portal.MyFeeSummary)
}
