// file: internals/features/sessions/service/session_service.go
package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sportku_backend/internals/features/sessions/model"
	"sportku_backend/internals/helpers/errs"
)

// CreateSession hitung label + rentang tanggal deterministik lalu simpan
// sebagai session aktif. Deactivate-all + insert dibungkus satu transaksi
// supaya tidak ada jendela "nol session aktif" yang bisa terbaca.
func CreateSession(db *gorm.DB, startMonth string, year int) (*model.SessionModel, error) {
	name, start, end, err := computeRange(startMonth, year)
	if err != nil {
		return nil, err
	}

	session := &model.SessionModel{
		Name:      name,
		StartDate: start,
		EndDate:   end,
		IsActive:  true,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.SessionModel{}).
			Where("is_active = ?", true).
			Update("is_active", false).Error; err != nil {
			return err
		}
		return tx.Create(session).Error
	})
	if err != nil {
		return nil, err
	}
	return session, nil
}

func computeRange(startMonth string, year int) (string, time.Time, time.Time, error) {
	if year < 2000 || year > 2100 {
		return "", time.Time{}, time.Time{}, fmt.Errorf("%w: tahun di luar jangkauan", errs.ErrValidation)
	}
	switch startMonth {
	case "Jan":
		return fmt.Sprintf("Jan–July %d", year),
			time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
			time.Date(year, time.July, 31, 0, 0, 0, 0, time.UTC),
			nil
	case "July":
		return fmt.Sprintf("July–Dec %d", year),
			time.Date(year, time.July, 1, 0, 0, 0, 0, time.UTC),
			time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC),
			nil
	default:
		return "", time.Time{}, time.Time{}, fmt.Errorf("%w: start_month harus Jan atau July", errs.ErrValidation)
	}
}

// SetActive aktifkan satu session, nonaktifkan sisanya (satu transaksi).
func SetActive(db *gorm.DB, id uuid.UUID) (*model.SessionModel, error) {
	var session model.SessionModel
	if err := db.First(&session, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: session tidak ditemukan", errs.ErrNotFound)
		}
		return nil, err
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.SessionModel{}).
			Where("is_active = ?", true).
			Update("is_active", false).Error; err != nil {
			return err
		}
		return tx.Model(&session).Update("is_active", true).Error
	})
	if err != nil {
		return nil, err
	}
	session.IsActive = true
	return &session, nil
}

// GetActive session aktif saat ini. Tidak ada session aktif itu state
// transient yang sah (habis delete) → ErrNotFound, bukan error server.
func GetActive(db *gorm.DB) (*model.SessionModel, error) {
	var session model.SessionModel
	if err := db.Where("is_active = ?", true).First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: tidak ada session aktif", errs.ErrNotFound)
		}
		return nil, err
	}
	return &session, nil
}

// GetByID lookup satu session.
func GetByID(db *gorm.DB, id uuid.UUID) (*model.SessionModel, error) {
	var session model.SessionModel
	if err := db.First(&session, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: session tidak ditemukan", errs.ErrNotFound)
		}
		return nil, err
	}
	return &session, nil
}

// List semua session, terbaru dulu.
func List(db *gorm.DB) ([]model.SessionModel, error) {
	var sessions []model.SessionModel
	if err := db.Order("created_at DESC").Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

// Delete hapus session TANPA cascade — referensi session di profil/roster
// lama dibiarkan menggantung (kompatibilitas output lama).
func Delete(db *gorm.DB, id uuid.UUID) error {
	res := db.Delete(&model.SessionModel{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: session tidak ditemukan", errs.ErrNotFound)
	}
	return nil
}

// IsActiveSession cek apakah id tsb session yang sedang aktif.
// Session tidak ada ≠ error di sini; cukup false.
func IsActiveSession(db *gorm.DB, id uuid.UUID) (bool, error) {
	var session model.SessionModel
	if err := db.First(&session, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return session.IsActive, nil
}
