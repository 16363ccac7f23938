// file: internals/middlewares/features/session_resolver.go
package features

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	sessionService "sportku_backend/internals/features/sessions/service"
)

// ResolveSession menentukan session efektif untuk request:
// query param ?session_id= kalau ada, kalau tidak pakai session aktif.
// Hasil disimpan di c.Locals("session_id") sebagai uuid.UUID.
func ResolveSession(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if raw := c.Query("session_id"); raw != "" {
			id, err := uuid.Parse(raw)
			if err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"message": "session_id tidak valid",
				})
			}
			c.Locals("session_id", id)
			return c.Next()
		}

		active, err := sessionService.GetActive(db)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Tidak ada session aktif",
			})
		}
		c.Locals("session_id", active.ID)
		return c.Next()
	}
}

// GetSessionID ambil session id hasil resolver dari locals.
func GetSessionID(c *fiber.Ctx) (uuid.UUID, error) {
	id, ok := c.Locals("session_id").(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Session belum ter-resolve")
	}
	return id, nil
}
