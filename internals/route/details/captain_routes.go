// file: internals/route/details/captain_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sportku_backend/internals/constants"
	teamController "sportku_backend/internals/features/teams/controller"
	authMw "sportku_backend/internals/middlewares/auth"
	featureMw "sportku_backend/internals/middlewares/features"
)

func CaptainRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := teamController.NewTeamController(db)

	captain := api.Group("/captain",
		authMw.AuthMiddleware(),
		authMw.OnlyRoles(constants.RoleErrorCaptain("registrasi tim"), constants.RoleCaptain),
		featureMw.ResolveSession(db),
	)

	captain.Get("/profile", ctrl.GetCaptainProfile)
	captain.Post("/profile", ctrl.CompleteCaptainProfile)

	captain.Get("/my-team", ctrl.GetMyTeam)
	captain.Post("/my-team", ctrl.CreateMyTeam)
	captain.Put("/my-team", ctrl.UpdateMyTeam)
	captain.Delete("/my-team", ctrl.DeleteMyTeam)
	captain.Post("/my-team/members", ctrl.AddMember)
}
