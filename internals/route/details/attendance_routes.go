// file: internals/route/details/attendance_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sportku_backend/internals/constants"
	attendanceController "sportku_backend/internals/features/attendance/controller"
	authMw "sportku_backend/internals/middlewares/auth"
)

func AttendanceRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := attendanceController.NewAttendanceController(db)

	attendance := api.Group("/attendance",
		authMw.AuthMiddleware(),
		authMw.OnlyRoles(constants.RoleErrorStaff("absensi"), constants.Staff...),
	)

	attendance.Post("/mark", ctrl.Mark)
	attendance.Get("/:date", ctrl.GetByDate)
}
