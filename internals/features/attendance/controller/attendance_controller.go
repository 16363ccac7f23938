package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sportku_backend/internals/features/attendance/dto"
	"sportku_backend/internals/features/attendance/service"
	helper "sportku_backend/internals/helpers"
)

type AttendanceController struct {
	DB *gorm.DB
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{DB: db}
}

// POST /api/attendance/mark  (admin | teacher)
func (ctrl *AttendanceController) Mark(c *fiber.Ctx) error {
	markedBy, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.MarkAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		return helper.ValidationError(c, err)
	}

	studentID, err := uuid.Parse(req.StudentID)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "student_id tidak valid")
	}

	rec, err := service.Mark(ctrl.DB, studentID, req.Date, req.Status, markedBy)
	if err != nil {
		return helper.ServiceError(c, err)
	}
	return helper.Success(c, "Absensi tercatat", rec)
}

// GET /api/attendance/:date  (admin | teacher)
func (ctrl *AttendanceController) GetByDate(c *fiber.Ctx) error {
	records, err := service.ByDate(ctrl.DB, c.Params("date"))
	if err != nil {
		return helper.ServiceError(c, err)
	}
	return helper.Success(c, "Absensi per tanggal", records)
}
