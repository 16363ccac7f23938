// file: internals/features/attendance/model/attendance_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusPresent = "present"
	StatusAbsent  = "absent"
)

// AttendanceModel satu record per (student, hari). Tanggal disimpan string
// "YYYY-MM-DD" supaya unik per hari tanpa urusan jam/zona waktu.
type AttendanceModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	StudentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_attendance_student_date" json:"student_id"`
	Date      string    `gorm:"size:10;not null;uniqueIndex:idx_attendance_student_date;index" json:"date"`

	Status   string    `gorm:"size:10;not null" json:"status"` // present | absent
	MarkedBy uuid.UUID `gorm:"type:uuid;not null" json:"marked_by"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (AttendanceModel) TableName() string {
	return "attendances"
}

func (m *AttendanceModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

func IsValidStatus(s string) bool {
	return s == StatusPresent || s == StatusAbsent
}
