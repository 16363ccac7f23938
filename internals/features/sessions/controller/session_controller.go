package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sportku_backend/internals/features/sessions/dto"
	"sportku_backend/internals/features/sessions/service"
	helper "sportku_backend/internals/helpers"
)

type SessionController struct {
	DB *gorm.DB
}

func NewSessionController(db *gorm.DB) *SessionController {
	return &SessionController{DB: db}
}

// POST /api/session/create  (admin)
func (ctrl *SessionController) Create(c *fiber.Ctx) error {
	var req dto.CreateSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		return helper.ValidationError(c, err)
	}

	session, err := service.CreateSession(ctrl.DB, req.StartMonth, req.Year)
	if err != nil {
		return helper.ServiceError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Session dibuat dan diaktifkan", session)
}

// GET /api/session/  (public)
func (ctrl *SessionController) GetAll(c *fiber.Ctx) error {
	sessions, err := service.List(ctrl.DB)
	if err != nil {
		return helper.ServiceError(c, err)
	}
	return helper.Success(c, "Daftar session", sessions)
}

// GET /api/session/active  (public)
func (ctrl *SessionController) GetActive(c *fiber.Ctx) error {
	session, err := service.GetActive(ctrl.DB)
	if err != nil {
		return helper.ServiceError(c, err)
	}
	return helper.Success(c, "Session aktif", session)
}

// PUT /api/session/set-active/:id  (admin)
func (ctrl *SessionController) SetActive(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID session tidak valid")
	}

	session, err := service.SetActive(ctrl.DB, id)
	if err != nil {
		return helper.ServiceError(c, err)
	}
	return helper.Success(c, "Session diaktifkan", session)
}

// DELETE /api/session/:id  (admin)
func (ctrl *SessionController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID session tidak valid")
	}

	if err := service.Delete(ctrl.DB, id); err != nil {
		return helper.ServiceError(c, err)
	}
	return helper.Success(c, "Session dihapus", nil)
}
