package dto

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// MarkAttendanceRequest dari admin/teacher. Satu student per panggilan,
// tanggal default hari ini kalau kosong.
type MarkAttendanceRequest struct {
	StudentID string `json:"student_id" validate:"required,uuid"`
	Date      string `json:"date,omitempty"` // "2006-01-02"
	Status    string `json:"status" validate:"required,oneof=present absent"`
}

func (r *MarkAttendanceRequest) Normalize() {
	r.Status = strings.TrimSpace(strings.ToLower(r.Status))
	r.Date = strings.TrimSpace(r.Date)
	if r.Date == "" {
		r.Date = time.Now().Format("2006-01-02")
	}
}

func (r *MarkAttendanceRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return err
	}
	_, err := time.Parse("2006-01-02", r.Date)
	return err
}
