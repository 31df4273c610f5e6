// file: internals/route/base_routes.go
package route

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func BaseRoutes(app *fiber.App, db *gorm.DB) {
	app.Get("/health", func(c *fiber.Ctx) error {
		status := "ok"
		if sqlDB, err := db.DB(); err != nil || sqlDB.Ping() != nil {
			status = "degraded"
			c.Status(fiber.StatusServiceUnavailable)
		}
		return c.JSON(fiber.Map{
			"status": status,
			"time":   time.Now().UTC(),
		})
	})
}
