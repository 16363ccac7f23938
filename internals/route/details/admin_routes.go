// file: internals/route/details/admin_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sportku_backend/internals/constants"
	adminController "sportku_backend/internals/features/admin/controller"
	certController "sportku_backend/internals/features/certificates/controller"
	gymSwimController "sportku_backend/internals/features/students/gymswim/controller"
	teamController "sportku_backend/internals/features/teams/controller"
	authMw "sportku_backend/internals/middlewares/auth"
)

func AdminRoutes(api fiber.Router, db *gorm.DB) {
	admCtrl := adminController.NewAdminController(db)
	teamCtrl := teamController.NewTeamController(db)
	certCtrl := certController.NewCertificateController(db)
	gymCtrl := gymSwimController.NewGymSwimController(db)

	admin := api.Group("/admin",
		authMw.AuthMiddleware(),
		authMw.OnlyRoles(constants.RoleErrorAdmin("panel admin"), constants.RoleAdmin),
	)

	// Provisioning & listing user
	admin.Post("/create-user", admCtrl.CreateUser)
	admin.Get("/users", admCtrl.GetUsers)

	// Review profil student
	admin.Get("/pending-profiles", admCtrl.GetPendingProfiles)
	admin.Put("/student/:id/approve", admCtrl.ApproveStudentProfile)
	admin.Delete("/student/:id/reject", admCtrl.RejectStudentProfile)
	admin.Put("/student/:id/positions", admCtrl.SetProfilePositions)

	// Review & kelola roster
	admin.Get("/pending-teams", teamCtrl.GetPendingTeams)
	admin.Put("/team/:teamId/status", teamCtrl.SetTeamStatus)
	admin.Delete("/team/:teamId/members/:index", teamCtrl.RemoveTeamMember)
	admin.Get("/captains", teamCtrl.GetCaptains)
	admin.Put("/captains/:id", teamCtrl.UpdateCaptain)
	admin.Delete("/captains/:id", teamCtrl.DeleteCaptain)

	// Sertifikat (route statis dulu, baru yang ber-param)
	admin.Get("/certificates/eligible", certCtrl.GetEligible)
	admin.Get("/certificates/sent", certCtrl.GetSent)
	admin.Post("/certificates/:captainId/generate", certCtrl.Generate)
	admin.Put("/certificates/:captainId/send", certCtrl.MarkSent)
	admin.Get("/certificates/:captainId", certCtrl.GetForCaptain)

	// Student gym/renang (input manual)
	admin.Post("/gym-swim", gymCtrl.Create)
	admin.Get("/gym-swim", gymCtrl.GetAll)
	admin.Put("/gym-swim/:id", gymCtrl.Update)
	admin.Delete("/gym-swim/:id", gymCtrl.Delete)

	// Export & riwayat
	admin.Get("/export/students", admCtrl.ExportStudents)
	admin.Get("/export/unique-students", admCtrl.ExportUniqueStudents)
	admin.Get("/history/:urn", admCtrl.GetHistoryByURN)
}
