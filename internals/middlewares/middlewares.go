package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"vidyalaya_backend/internals/middlewares/logger"
)

// SetupMiddlewares wires the app-wide middleware chain.
// Order matters: recovery first, then CORS, logger, rate limiter.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
