package middlewares

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// RecoveryMiddleware ubah panic jadi respons 500, bukan proses mati.
// Panic dicatat dengan route yang memicunya supaya gampang dilacak.
func RecoveryMiddleware() fiber.Handler {
	return recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e interface{}) {
			log.Printf("🔥 panic di %s %s: %v", c.Method(), c.Path(), e)
		},
	})
}
