package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// CORS - middleware для настройки Cross-Origin Resource Sharing.
// Сервис только читает данные, поэтому разрешены GET, POST и OPTIONS.
func CORS(allowOrigins string) fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     "GET,POST,OPTIONS",
		AllowHeaders:     "Content-Type,Accept,Accept-Language,X-Request-ID",
		ExposeHeaders:    fiber.HeaderXRequestID,
		AllowCredentials: allowOrigins != "*",
	})
}
