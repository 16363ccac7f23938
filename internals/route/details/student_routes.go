// file: internals/route/details/student_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sportku_backend/internals/constants"
	profileController "sportku_backend/internals/features/students/profile/controller"
	authMw "sportku_backend/internals/middlewares/auth"
	featureMw "sportku_backend/internals/middlewares/features"
)

func StudentRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := profileController.NewProfileController(db)

	studentOnly := authMw.OnlyRoles(constants.RoleErrorStudent("profil student"), constants.RoleStudent)

	student := api.Group("/student",
		authMw.AuthMiddleware(),
		studentOnly,
	)

	// Session-scoped (query ?session_id= atau session aktif)
	scoped := student.Group("", featureMw.ResolveSession(db))
	scoped.Get("/profile", ctrl.GetMyProfile)
	scoped.Put("/profile", ctrl.UpdateMyProfile)
	scoped.Post("/submit-profile", ctrl.SubmitMyProfile)
	scoped.Post("/profile/photo", ctrl.UploadPhoto)

	// Lintas session
	student.Get("/sessions", ctrl.MySessions)
	student.Get("/notifications", ctrl.GetNotifications)
	student.Post("/notifications/read", ctrl.MarkNotificationsRead)
}
