package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sportku_backend/internals/features/students/gymswim/dto"
	"sportku_backend/internals/features/students/gymswim/model"
	helper "sportku_backend/internals/helpers"
)

type GymSwimController struct {
	DB *gorm.DB
}

func NewGymSwimController(db *gorm.DB) *GymSwimController {
	return &GymSwimController{DB: db}
}

// POST /api/admin/gym-swim
func (ctrl *GymSwimController) Create(c *fiber.Ctx) error {
	adminID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateGymSwimRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		return helper.ValidationError(c, err)
	}

	student := model.GymSwimStudentModel{
		Name:      req.Name,
		URN:       req.URN,
		CRN:       req.CRN,
		Branch:    req.Branch,
		Year:      req.Year,
		Sport:     req.Sport,
		Email:     req.Email,
		Phone:     req.Phone,
		CreatedBy: adminID,
	}
	if req.SessionID != "" {
		if sid, err := uuid.Parse(req.SessionID); err == nil {
			student.SessionID = &sid
		}
	}

	if err := ctrl.DB.Create(&student).Error; err != nil {
		return helper.ServiceError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Student gym/renang ditambahkan", student)
}

// GET /api/admin/gym-swim?sport=Gym&session_id=
func (ctrl *GymSwimController) GetAll(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&model.GymSwimStudentModel{}).Order("created_at DESC")
	if sport := c.Query("sport"); sport != "" {
		q = q.Where("sport = ?", sport)
	}
	if raw := c.Query("session_id"); raw != "" {
		sid, err := uuid.Parse(raw)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "session_id tidak valid")
		}
		q = q.Where("session_id = ?", sid)
	}

	var students []model.GymSwimStudentModel
	if err := q.Find(&students).Error; err != nil {
		return helper.ServiceError(c, err)
	}
	return helper.Success(c, "Daftar student gym/renang", students)
}

// PUT /api/admin/gym-swim/:id
func (ctrl *GymSwimController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.UpdateGymSwimRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := req.Validate(); err != nil {
		return helper.ValidationError(c, err)
	}

	var student model.GymSwimStudentModel
	if err := ctrl.DB.First(&student, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Student tidak ditemukan")
		}
		return helper.ServiceError(c, err)
	}

	if req.Name != nil {
		student.Name = *req.Name
	}
	if req.CRN != nil {
		student.CRN = *req.CRN
	}
	if req.Branch != nil {
		student.Branch = *req.Branch
	}
	if req.Year != nil {
		student.Year = *req.Year
	}
	if req.Sport != nil {
		student.Sport = *req.Sport
	}
	if req.Email != nil {
		student.Email = *req.Email
	}
	if req.Phone != nil {
		student.Phone = *req.Phone
	}

	if err := ctrl.DB.Save(&student).Error; err != nil {
		return helper.ServiceError(c, err)
	}
	return helper.Success(c, "Student diperbarui", student)
}

// DELETE /api/admin/gym-swim/:id
func (ctrl *GymSwimController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	res := ctrl.DB.Delete(&model.GymSwimStudentModel{}, "id = ?", id)
	if res.Error != nil {
		return helper.ServiceError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Student tidak ditemukan")
	}
	return helper.Success(c, "Student dihapus", nil)
}
