// file: internals/route/details/session_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sportku_backend/internals/constants"
	sessionController "sportku_backend/internals/features/sessions/controller"
	authMw "sportku_backend/internals/middlewares/auth"
)

func SessionRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := sessionController.NewSessionController(db)

	session := api.Group("/session")

	// Public read
	session.Get("/", ctrl.GetAll)
	session.Get("/active", ctrl.GetActive)

	// Mutasi khusus admin
	adminOnly := authMw.OnlyRoles(constants.RoleErrorAdmin("kelola session"), constants.RoleAdmin)
	session.Post("/create", authMw.AuthMiddleware(), adminOnly, ctrl.Create)
	session.Put("/set-active/:id", authMw.AuthMiddleware(), adminOnly, ctrl.SetActive)
	session.Delete("/:id", authMw.AuthMiddleware(), adminOnly, ctrl.Delete)
}
