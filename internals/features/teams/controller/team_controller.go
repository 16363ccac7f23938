package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sportku_backend/internals/features/teams/dto"
	"sportku_backend/internals/features/teams/service"
	helper "sportku_backend/internals/helpers"
	sessionMw "sportku_backend/internals/middlewares/features"
)

type TeamController struct {
	DB *gorm.DB
}

func NewTeamController(db *gorm.DB) *TeamController {
	return &TeamController{DB: db}
}

/* ==========================
   CAPTAIN (self-service)
========================== */

// GET /api/captain/profile
func (ctrl *TeamController) GetCaptainProfile(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	sessionID, err := sessionMw.GetSessionID(c)
	if err != nil {
		return err
	}

	captain, err := service.CaptainForUser(ctrl.DB, userID, sessionID)
	if err != nil {
		return helper.ServiceError(c, err)
	}
	return helper.Success(c, "Profil kapten", captain)
}

// POST /api/captain/profile — lengkapi nomor HP di login pertama
func (ctrl *TeamController) CompleteCaptainProfile(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	sessionID, err := sessionMw.GetSessionID(c)
	if err != nil {
		return err
	}

	var req dto.CompleteCaptainProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		return helper.ValidationError(c, err)
	}

	captain, err := service.CompleteCaptainProfile(ctrl.DB, userID, sessionID, &req)
	if err != nil {
		return helper.ServiceError(c, err)
	}
	return helper.Success(c, "Profil kapten dilengkapi", captain)
}

// GET /api/captain/my-team
func (ctrl *TeamController) GetMyTeam(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	sessionID, err := sessionMw.GetSessionID(c)
	if err != nil {
		return err
	}

	captain, err := service.CaptainForUser(ctrl.DB, userID, sessionID)
	if err != nil {
		return helper.ServiceError(c, err)
	}

	team, err := service.GetTeam(ctrl.DB, captain.CaptainID, sessionID)
	if err != nil {
		return helper.ServiceError(c, err)
	}
	if team == nil {
		// first-time: roster belum dibuat, bukan error
		return helper.Success(c, "Roster belum dibuat", fiber.Map{
			"first_time": true,
			"team":       nil,
		})
	}
	return helper.Success(c, "Roster tim", fiber.Map{
		"first_time": false,
		"team":       team,
	})
}

// POST /api/captain/my-team
func (ctrl *TeamController) CreateMyTeam(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	sessionID, err := sessionMw.GetSessionID(c)
	if err != nil {
		return err
	}

	var req dto.CreateTeamRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		return helper.ValidationError(c, err)
	}

	team, err := service.CreateTeam(ctrl.DB, userID, sessionID, &req)
	if err != nil {
		return helper.ServiceError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Roster tim dibuat", team)
}

// POST /api/captain/my-team/members
func (ctrl *TeamController) AddMember(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	sessionID, err := sessionMw.GetSessionID(c)
	if err != nil {
		return err
	}

	var req dto.MemberInput
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		return helper.ValidationError(c, err)
	}

	team, err := service.AddMember(ctrl.DB, userID, sessionID, &req)
	if err != nil {
		return helper.ServiceError(c, err)
	}
	return helper.Success(c, "Anggota ditambahkan", team)
}

// PUT /api/captain/my-team
func (ctrl *TeamController) UpdateMyTeam(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	sessionID, err := sessionMw.GetSessionID(c)
	if err != nil {
		return err
	}

	var req dto.UpdateTeamRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		return helper.ValidationError(c, err)
	}

	team, err := service.UpdateTeam(ctrl.DB, userID, sessionID, &req)
	if err != nil {
		return helper.ServiceError(c, err)
	}
	return helper.Success(c, "Roster diperbarui", team)
}

// DELETE /api/captain/my-team
func (ctrl *TeamController) DeleteMyTeam(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	sessionID, err := sessionMw.GetSessionID(c)
	if err != nil {
		return err
	}

	if err := service.DeleteTeam(ctrl.DB, userID, sessionID); err != nil {
		return helper.ServiceError(c, err)
	}
	return helper.Success(c, "Roster dihapus", nil)
}

/* ==========================
   ADMIN
========================== */

// GET /api/admin/pending-teams
func (ctrl *TeamController) GetPendingTeams(c *fiber.Ctx) error {
	teams, err := service.PendingTeams(ctrl.DB)
	if err != nil {
		return helper.ServiceError(c, err)
	}
	return helper.Success(c, "Roster pending", teams)
}

// PUT /api/admin/team/:teamId/status
func (ctrl *TeamController) SetTeamStatus(c *fiber.Ctx) error {
	teamID, err := uuid.Parse(c.Params("teamId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID roster tidak valid")
	}

	var req dto.SetTeamStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		return helper.ValidationError(c, err)
	}

	team, err := service.SetTeamStatus(ctrl.DB, teamID, req.Status)
	if err != nil {
		return helper.ServiceError(c, err)
	}
	return helper.Success(c, "Status roster diperbarui", team)
}

// GET /api/admin/captains?session_id=
func (ctrl *TeamController) GetCaptains(c *fiber.Ctx) error {
	var sessionID *uuid.UUID
	if raw := c.Query("session_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "session_id tidak valid")
		}
		sessionID = &id
	}

	list, err := service.CaptainsWithTeams(ctrl.DB, sessionID)
	if err != nil {
		return helper.ServiceError(c, err)
	}
	return helper.Success(c, "Daftar kapten", list)
}

// PUT /api/admin/captains/:id
func (ctrl *TeamController) UpdateCaptain(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID kapten tidak valid")
	}

	var req dto.UpdateCaptainRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := req.Validate(); err != nil {
		return helper.ValidationError(c, err)
	}

	captain, err := service.UpdateCaptain(ctrl.DB, id, &req)
	if err != nil {
		return helper.ServiceError(c, err)
	}
	return helper.Success(c, "Kapten diperbarui", captain)
}

// DELETE /api/admin/captains/:id
func (ctrl *TeamController) DeleteCaptain(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID kapten tidak valid")
	}

	if err := service.DeleteCaptain(ctrl.DB, id); err != nil {
		return helper.ServiceError(c, err)
	}
	return helper.Success(c, "Kapten dihapus", nil)
}

// DELETE /api/admin/team/:teamId/members/:index
func (ctrl *TeamController) RemoveTeamMember(c *fiber.Ctx) error {
	teamID, err := uuid.Parse(c.Params("teamId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID roster tidak valid")
	}
	index, err := c.ParamsInt("index")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Index anggota tidak valid")
	}

	team, err := service.RemoveMemberAt(ctrl.DB, teamID, index)
	if err != nil {
		return helper.ServiceError(c, err)
	}
	return helper.Success(c, "Anggota dihapus dari roster", team)
}
