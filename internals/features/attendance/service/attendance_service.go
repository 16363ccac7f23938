// file: internals/features/attendance/service/attendance_service.go
package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sportku_backend/internals/features/attendance/model"
	"sportku_backend/internals/helpers/errs"
)

// Mark absensi satu student di satu hari. Re-mark di hari yang sama
// meng-update status + marked_by (upsert per student+tanggal).
func Mark(db *gorm.DB, studentID uuid.UUID, date, status string, markedBy uuid.UUID) (*model.AttendanceModel, error) {
	if !model.IsValidStatus(status) {
		return nil, fmt.Errorf("%w: status harus present atau absent", errs.ErrValidation)
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, fmt.Errorf("%w: format tanggal harus YYYY-MM-DD", errs.ErrValidation)
	}

	var existing model.AttendanceModel
	err := db.Where("student_id = ? AND date = ?", studentID, date).First(&existing).Error
	if err == nil {
		existing.Status = status
		existing.MarkedBy = markedBy
		if err := db.Save(&existing).Error; err != nil {
			return nil, err
		}
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	rec := &model.AttendanceModel{
		StudentID: studentID,
		Date:      date,
		Status:    status,
		MarkedBy:  markedBy,
	}
	if err := db.Create(rec).Error; err != nil {
		return nil, err
	}
	return rec, nil
}

// ByDate seluruh absensi di satu tanggal.
func ByDate(db *gorm.DB, date string) ([]model.AttendanceModel, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, fmt.Errorf("%w: format tanggal harus YYYY-MM-DD", errs.ErrValidation)
	}

	var records []model.AttendanceModel
	if err := db.Where("date = ?", date).Order("created_at ASC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
