package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sportku_backend/internals/features/certificates/service"
	helper "sportku_backend/internals/helpers"
)

type CertificateController struct {
	DB *gorm.DB
}

func NewCertificateController(db *gorm.DB) *CertificateController {
	return &CertificateController{DB: db}
}

// POST /api/admin/certificates/:captainId/generate
// Idempotent: dipanggil ulang mengembalikan set yang sama.
func (ctrl *CertificateController) Generate(c *fiber.Ctx) error {
	captainID, err := uuid.Parse(c.Params("captainId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID kapten tidak valid")
	}

	certs, err := service.GenerateForCaptain(ctrl.DB, captainID)
	if err != nil {
		return helper.ServiceError(c, err)
	}
	return helper.Success(c, "Sertifikat tersedia", certs)
}

// GET /api/admin/certificates/:captainId
func (ctrl *CertificateController) GetForCaptain(c *fiber.Ctx) error {
	captainID, err := uuid.Parse(c.Params("captainId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID kapten tidak valid")
	}

	certs, err := service.CertificatesForCaptain(ctrl.DB, captainID)
	if err != nil {
		return helper.ServiceError(c, err)
	}
	return helper.Success(c, "Daftar sertifikat", certs)
}

// PUT /api/admin/certificates/:captainId/send
func (ctrl *CertificateController) MarkSent(c *fiber.Ctx) error {
	captainID, err := uuid.Parse(c.Params("captainId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID kapten tidak valid")
	}

	if err := service.MarkSent(ctrl.DB, captainID); err != nil {
		return helper.ServiceError(c, err)
	}
	return helper.Success(c, "Sertifikat ditandai terkirim", nil)
}

// GET /api/admin/certificates/eligible
func (ctrl *CertificateController) GetEligible(c *fiber.Ctx) error {
	captains, err := service.EligibleCaptains(ctrl.DB)
	if err != nil {
		return helper.ServiceError(c, err)
	}
	return helper.Success(c, "Kapten siap terima sertifikat", captains)
}

// GET /api/admin/certificates/sent
func (ctrl *CertificateController) GetSent(c *fiber.Ctx) error {
	captains, err := service.SentCaptains(ctrl.DB)
	if err != nil {
		return helper.ServiceError(c, err)
	}
	return helper.Success(c, "Kapten dengan sertifikat terkirim", captains)
}
