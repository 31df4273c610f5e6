// file: internals/route/index.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"vidyalaya_backend/internals/configs"
	middlewares "vidyalaya_backend/internals/middlewares"
	authmw "vidyalaya_backend/internals/middlewares/auth"
	"vidyalaya_backend/internals/route/details"
)

/* ==============================
   ROUTE COMPOSITION
   /api/p — public, no token
   /api/u — any authenticated user (parent/student portal)
   /api/a — fee-admin only, write limited
============================== */

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	BaseRoutes(app, db)

	api := app.Group("/api")

	public := api.Group("/p")
	details.FinancePublicRoutes(public, db)

	user := api.Group("/u",
		authmw.AuthJWT(authmw.AuthJWTOpts{Secret: configs.JWTSecret, AllowCookieFallback: true}),
	)
	details.FinanceUserRoutes(user, db)

	admin := api.Group("/a",
		authmw.AuthJWT(authmw.AuthJWTOpts{Secret: configs.JWTSecret}),
		authmw.IsFeeAdmin(),
		writeGuard(),
	)
	details.FinanceAdminRoutes(admin, db)
}

// writeGuard applies the stricter limiter to mutating verbs only; admin
// list/detail reads stay on the global limit.
func writeGuard() fiber.Handler {
	limited := middlewares.WriteRateLimiter()
	return func(c *fiber.Ctx) error {
		switch c.Method() {
		case fiber.MethodPost, fiber.MethodPatch, fiber.MethodPut, fiber.MethodDelete:
			return limited(c)
		default:
			return c.Next()
		}
	}
}
