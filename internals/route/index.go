// file: internals/route/index.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sportku_backend/internals/route/details"
)

// SetupRoutes daftarkan seluruh route aplikasi di bawah /api.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	details.AuthRoutes(api, db)
	details.SessionRoutes(api, db)
	details.StudentRoutes(api, db)
	details.CaptainRoutes(api, db)
	details.AdminRoutes(api, db)
	details.AttendanceRoutes(api, db)
}
