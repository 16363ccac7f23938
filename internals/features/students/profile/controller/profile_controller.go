package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	sessionMw "sportku_backend/internals/middlewares/features"

	"sportku_backend/internals/features/students/profile/dto"
	"sportku_backend/internals/features/students/profile/model"
	"sportku_backend/internals/features/students/profile/service"
	helper "sportku_backend/internals/helpers"
	imagehelper "sportku_backend/internals/helpers/image"
)

type ProfileController struct {
	DB *gorm.DB
}

func NewProfileController(db *gorm.DB) *ProfileController {
	return &ProfileController{DB: db}
}

// GET /api/student/profile
// Profil user untuk session terpilih; dibuat (clone/seed) kalau belum ada.
func (ctrl *ProfileController) GetMyProfile(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	sessionID, err := sessionMw.GetSessionID(c)
	if err != nil {
		return err
	}

	profile, err := service.ResolveProfile(ctrl.DB, userID, sessionID)
	if err != nil {
		return helper.ServiceError(c, err)
	}
	return helper.Success(c, "Profil student", profile)
}

// PUT /api/student/profile
func (ctrl *ProfileController) UpdateMyProfile(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	sessionID, err := sessionMw.GetSessionID(c)
	if err != nil {
		return err
	}

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		return helper.ValidationError(c, err)
	}

	profile, err := service.UpdateProfile(ctrl.DB, userID, sessionID, &req)
	if err != nil {
		return helper.ServiceError(c, err)
	}
	return helper.Success(c, "Profil berhasil diperbarui", profile)
}

// POST /api/student/submit-profile
func (ctrl *ProfileController) SubmitMyProfile(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	sessionID, err := sessionMw.GetSessionID(c)
	if err != nil {
		return err
	}

	var req dto.SubmitProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()

	profile, err := service.SubmitProfile(ctrl.DB, userID, sessionID, req.Sports)
	if err != nil {
		return helper.ServiceError(c, err)
	}
	return helper.Success(c, "Profil dikirim untuk review admin", profile)
}

// POST /api/student/profile/photo  (multipart: photo, signature_photo)
func (ctrl *ProfileController) UploadPhoto(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	sessionID, err := sessionMw.GetSessionID(c)
	if err != nil {
		return err
	}

	profile, err := service.ResolveProfile(ctrl.DB, userID, sessionID)
	if err != nil {
		return helper.ServiceError(c, err)
	}
	if profile.LockedForUpdate {
		return helper.Error(c, fiber.StatusConflict, "Profil sedang menunggu review admin")
	}

	updated := false
	if fh, err := c.FormFile("photo"); err == nil && fh != nil {
		path, err := imagehelper.SaveAsWebP("uploads", "profile-photos", fh)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Foto gagal diproses: "+err.Error())
		}
		profile.Photo = path
		updated = true
	}
	if fh, err := c.FormFile("signature_photo"); err == nil && fh != nil {
		path, err := imagehelper.SaveAsWebP("uploads", "signatures", fh)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Tanda tangan gagal diproses: "+err.Error())
		}
		profile.SignaturePhoto = path
		updated = true
	}
	if !updated {
		return helper.Error(c, fiber.StatusBadRequest, "Tidak ada file yang diunggah")
	}

	if err := ctrl.DB.Save(profile).Error; err != nil {
		return helper.ServiceError(c, err)
	}
	return helper.Success(c, "Foto profil tersimpan", fiber.Map{
		"photo":           profile.Photo,
		"signature_photo": profile.SignaturePhoto,
	})
}

// GET /api/student/sessions — session yang punya profil milik user
func (ctrl *ProfileController) MySessions(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	sessions, err := service.MySessions(ctrl.DB, userID)
	if err != nil {
		return helper.ServiceError(c, err)
	}
	return helper.Success(c, "Daftar session", sessions)
}

// GET /api/student/notifications
func (ctrl *ProfileController) GetNotifications(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var profiles []model.StudentProfileModel
	if err := ctrl.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&profiles).Error; err != nil {
		return helper.ServiceError(c, err)
	}

	notifs := make([]model.Notification, 0)
	for _, p := range profiles {
		notifs = append(notifs, p.Notifications...)
	}
	return helper.Success(c, "Notifikasi", notifs)
}

// POST /api/student/notifications/read
func (ctrl *ProfileController) MarkNotificationsRead(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.MarkNotificationsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := req.Validate(); err != nil {
		return helper.ValidationError(c, err)
	}

	ids := make([]uuid.UUID, 0, len(req.IDs))
	for _, raw := range req.IDs {
		if id, err := uuid.Parse(raw); err == nil {
			ids = append(ids, id)
		}
	}

	if err := service.MarkNotificationsRead(ctrl.DB, userID, ids); err != nil {
		return helper.ServiceError(c, err)
	}
	return helper.Success(c, "Notifikasi ditandai terbaca", nil)
}
