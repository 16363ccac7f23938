package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	adminService "sportku_backend/internals/features/admin/service"
	profileDTO "sportku_backend/internals/features/students/profile/dto"
	profileModel "sportku_backend/internals/features/students/profile/model"
	profileService "sportku_backend/internals/features/students/profile/service"
	userDTO "sportku_backend/internals/features/users/user/dto"
	helper "sportku_backend/internals/helpers"
)

type AdminController struct {
	DB *gorm.DB
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{DB: db}
}

// POST /api/admin/create-user
// Provisioning user + record role-specific (kapten / profil student).
func (ctrl *AdminController) CreateUser(c *fiber.Ctx) error {
	var req userDTO.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		return helper.ValidationError(c, err)
	}

	user, err := adminService.CreateUser(ctrl.DB, &req)
	if err != nil {
		return helper.ServiceError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "User berhasil dibuat", userDTO.ToUserLite(user))
}

// GET /api/admin/users?role=&page=&per_page=
func (ctrl *AdminController) GetUsers(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	users, total, err := adminService.ListUsers(ctrl.DB, c.Query("role"), paging.Offset, paging.Limit)
	if err != nil {
		return helper.ServiceError(c, err)
	}

	out := make([]userDTO.UserLite, 0, len(users))
	for i := range users {
		out = append(out, userDTO.ToUserLite(&users[i]))
	}
	return helper.Success(c, "Daftar user", fiber.Map{
		"users":      out,
		"pagination": helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage),
	})
}

// GET /api/admin/pending-profiles
func (ctrl *AdminController) GetPendingProfiles(c *fiber.Ctx) error {
	profiles, err := profileService.PendingProfiles(ctrl.DB)
	if err != nil {
		return helper.ServiceError(c, err)
	}
	return helper.Success(c, "Profil pending", profiles)
}

// PUT /api/admin/student/:id/approve
func (ctrl *AdminController) ApproveStudentProfile(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID profil tidak valid")
	}

	profile, err := profileService.ApproveProfile(ctrl.DB, id)
	if err != nil {
		return helper.ServiceError(c, err)
	}
	return helper.Success(c, "Profil disetujui", profile)
}

// DELETE /api/admin/student/:id/reject
// Reset state + field editable, profil tetap ada, notifikasi ditambahkan.
func (ctrl *AdminController) RejectStudentProfile(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID profil tidak valid")
	}

	var req profileDTO.RejectProfileRequest
	_ = c.BodyParser(&req) // body opsional, pesan default dipakai kalau kosong

	profile, err := profileService.RejectProfile(ctrl.DB, id, req.Message)
	if err != nil {
		return helper.ServiceError(c, err)
	}
	return helper.Success(c, "Profil ditolak dan direset", profile)
}

// PUT /api/admin/student/:id/positions
func (ctrl *AdminController) SetProfilePositions(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID profil tidak valid")
	}

	var req struct {
		Positions []profileModel.SportPosition `json:"positions"`
	}
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	profile, err := adminService.SetProfilePositions(ctrl.DB, id, req.Positions)
	if err != nil {
		return helper.ServiceError(c, err)
	}
	return helper.Success(c, "Posisi ditetapkan", profile)
}

// GET /api/admin/export/students?session_id=&sport=
func (ctrl *AdminController) ExportStudents(c *fiber.Ctx) error {
	sessionID, err := optionalSessionID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "session_id tidak valid")
	}

	profiles, err := adminService.AllStudentProfiles(ctrl.DB, sessionID, c.Query("sport"))
	if err != nil {
		return helper.ServiceError(c, err)
	}
	return helper.Success(c, "Export profil student", profiles)
}

// GET /api/admin/export/unique-students?session_id=
// Merge student unik lintas profil/roster/kapten/gym-renang.
func (ctrl *AdminController) ExportUniqueStudents(c *fiber.Ctx) error {
	sessionID, err := optionalSessionID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "session_id tidak valid")
	}

	students, err := adminService.UniqueStudents(ctrl.DB, sessionID)
	if err != nil {
		return helper.ServiceError(c, err)
	}
	return helper.Success(c, "Export student unik", students)
}

// GET /api/admin/history/:urn
func (ctrl *AdminController) GetHistoryByURN(c *fiber.Ctx) error {
	history, err := adminService.HistoryByURN(ctrl.DB, c.Params("urn"))
	if err != nil {
		return helper.ServiceError(c, err)
	}
	return helper.Success(c, "Riwayat student", history)
}

func optionalSessionID(c *fiber.Ctx) (*uuid.UUID, error) {
	raw := c.Query("session_id")
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
