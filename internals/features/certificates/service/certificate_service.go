// file: internals/features/certificates/service/certificate_service.go
package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"sportku_backend/internals/features/certificates/model"
	teamModel "sportku_backend/internals/features/teams/model"
	teamService "sportku_backend/internals/features/teams/service"
	"sportku_backend/internals/helpers/errs"
)

const defaultPosition = "Participant"

// GenerateForCaptain materialisasi sertifikat untuk satu kapten + seluruh
// anggota rosternya di session kapten tsb. Idempotent: kalau sudah pernah
// digenerate untuk (captain_id, session), set yang ada dikembalikan apa adanya.
func GenerateForCaptain(db *gorm.DB, captainRecordID uuid.UUID) ([]model.CertificateModel, error) {
	var captain teamModel.CaptainModel
	if err := db.First(&captain, "id = ?", captainRecordID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: kapten tidak ditemukan", errs.ErrNotFound)
		}
		return nil, err
	}
	if captain.SessionID == nil {
		return nil, fmt.Errorf("%w: kapten tidak terikat session", errs.ErrState)
	}

	existing, err := certsFor(db, captain.CaptainID, *captain.SessionID)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return existing, nil
	}

	team, err := teamService.GetTeam(db, captain.CaptainID, *captain.SessionID)
	if err != nil {
		return nil, err
	}
	if team == nil {
		return nil, fmt.Errorf("%w: roster tim belum dibuat", errs.ErrNotFound)
	}

	certs := buildCertificates(&captain, team)
	if err := db.Create(&certs).Error; err != nil {
		return nil, err
	}
	return certs, nil
}

func buildCertificates(captain *teamModel.CaptainModel, team *teamModel.TeamModel) []model.CertificateModel {
	certs := make([]model.CertificateModel, 0, 1+len(team.Members))

	certs = append(certs, model.CertificateModel{
		RecipientType: model.RecipientCaptain,
		CaptainID:     captain.CaptainID,
		SessionID:     captain.SessionID,
		Sport:         captain.Sport,
		Position:      positionOrDefault(captain.Position),
		Recipient: datatypes.NewJSONType(model.CertificateRecipient{
			Name:   captain.Name,
			Email:  captain.Email,
			Branch: captain.Branch,
		}),
	})

	for _, m := range team.Members {
		certs = append(certs, model.CertificateModel{
			RecipientType: model.RecipientMember,
			CaptainID:     captain.CaptainID,
			SessionID:     captain.SessionID,
			Sport:         firstNonEmpty(m.Sport, captain.Sport),
			Position:      positionOrDefault(m.Position),
			Recipient: datatypes.NewJSONType(model.CertificateRecipient{
				Name:   m.Name,
				Email:  m.Email,
				URN:    m.URN,
				Branch: m.Branch,
				Year:   m.Year,
			}),
		})
	}
	return certs
}

// MarkSent tandai seluruh sertifikat kapten terkirim dan buka flag
// certificate_available di record kaptennya.
func MarkSent(db *gorm.DB, captainRecordID uuid.UUID) error {
	var captain teamModel.CaptainModel
	if err := db.First(&captain, "id = ?", captainRecordID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: kapten tidak ditemukan", errs.ErrNotFound)
		}
		return err
	}
	if captain.SessionID == nil {
		return fmt.Errorf("%w: kapten tidak terikat session", errs.ErrState)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.CertificateModel{}).
			Where("captain_id = ? AND session_id = ?", captain.CaptainID, *captain.SessionID).
			Update("is_sent", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%w: belum ada sertifikat untuk kapten ini", errs.ErrNotFound)
		}
		return tx.Model(&captain).Update("certificate_available", true).Error
	})
}

// EligibleCaptains: kapten session aktif yang posisinya sudah diisi admin
// dan sertifikatnya belum dikirim.
func EligibleCaptains(db *gorm.DB) ([]teamModel.CaptainModel, error) {
	var captains []teamModel.CaptainModel
	err := db.
		Joins("JOIN sessions ON sessions.id = captains.session_id AND sessions.is_active = ?", true).
		Where("captains.position <> '' AND captains.certificate_available = ?", false).
		Order("captains.created_at ASC").
		Find(&captains).Error
	if err != nil {
		return nil, err
	}
	return captains, nil
}

// SentCaptains: kapten yang sertifikatnya sudah dikirim.
func SentCaptains(db *gorm.DB) ([]teamModel.CaptainModel, error) {
	var captains []teamModel.CaptainModel
	if err := db.Where("certificate_available = ?", true).
		Order("updated_at DESC").
		Find(&captains).Error; err != nil {
		return nil, err
	}
	return captains, nil
}

// CertificatesForCaptain list sertifikat satu kapten (by record id).
func CertificatesForCaptain(db *gorm.DB, captainRecordID uuid.UUID) ([]model.CertificateModel, error) {
	var captain teamModel.CaptainModel
	if err := db.First(&captain, "id = ?", captainRecordID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: kapten tidak ditemukan", errs.ErrNotFound)
		}
		return nil, err
	}
	if captain.SessionID == nil {
		return []model.CertificateModel{}, nil
	}
	return certsFor(db, captain.CaptainID, *captain.SessionID)
}

func certsFor(db *gorm.DB, captainID string, sessionID uuid.UUID) ([]model.CertificateModel, error) {
	var certs []model.CertificateModel
	if err := db.Where("captain_id = ? AND session_id = ?", captainID, sessionID).
		Order("created_at ASC").
		Find(&certs).Error; err != nil {
		return nil, err
	}
	return certs, nil
}

func positionOrDefault(pos string) string {
	if strings.TrimSpace(pos) == "" {
		return defaultPosition
	}
	return pos
}

func firstNonEmpty(a, b string) string {
	if strings.TrimSpace(a) != "" {
		return a
	}
	return b
}
