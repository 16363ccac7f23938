package dto

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// UpdateProfileRequest — patch parsial dari student (hanya saat unlocked).
// Pointer supaya bisa bedakan field tidak dikirim vs dikosongkan.
type UpdateProfileRequest struct {
	Name       *string `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Branch     *string `json:"branch,omitempty" validate:"omitempty,max=100"`
	Year       *int    `json:"year,omitempty" validate:"omitempty,min=1,max=6"`
	CRN        *string `json:"crn,omitempty" validate:"omitempty,max=50"`
	DOB        *string `json:"dob,omitempty"` // "2006-01-02"
	Gender     *string `json:"gender,omitempty" validate:"omitempty,oneof=male female other"`
	Contact    *string `json:"contact,omitempty" validate:"omitempty,max=30"`
	Address    *string `json:"address,omitempty" validate:"omitempty,max=255"`
	FatherName *string `json:"father_name,omitempty" validate:"omitempty,max=100"`

	YearOfPassingMatric  *int    `json:"year_of_passing_matric,omitempty"`
	YearOfPassingPlusTwo *int    `json:"year_of_passing_plus_two,omitempty"`
	FirstAdmissionDate   *string `json:"first_admission_date,omitempty"`
	LastExamName         *string `json:"last_exam_name,omitempty"`
	LastExamYear         *int    `json:"last_exam_year,omitempty"`
	YearsOfParticipation *int    `json:"years_of_participation,omitempty"`

	InterCollegeGraduateCourse *int `json:"inter_college_graduate_course,omitempty"`
	InterCollegePgCourse       *int `json:"inter_college_pg_course,omitempty"`

	Sports []string `json:"sports,omitempty"`
}

func (r *UpdateProfileRequest) Normalize() {
	trim := func(p **string) {
		if *p != nil {
			v := strings.TrimSpace(**p)
			*p = &v
		}
	}
	trim(&r.Name)
	trim(&r.Branch)
	trim(&r.CRN)
	trim(&r.Gender)
	trim(&r.Contact)
	trim(&r.Address)
	trim(&r.FatherName)
	trim(&r.FirstAdmissionDate)
	trim(&r.LastExamName)

	cleaned := make([]string, 0, len(r.Sports))
	for _, s := range r.Sports {
		if s = strings.TrimSpace(s); s != "" {
			cleaned = append(cleaned, s)
		}
	}
	r.Sports = cleaned
}

func (r *UpdateProfileRequest) Validate() error {
	return validate.Struct(r)
}

// ParseDOB "2006-01-02" → *time.Time (nil kalau tidak dikirim)
func (r *UpdateProfileRequest) ParseDOB() (*time.Time, error) {
	if r.DOB == nil || *r.DOB == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", *r.DOB)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// SubmitProfileRequest — submit untuk approval, sports digabung (union).
type SubmitProfileRequest struct {
	Sports []string `json:"sports,omitempty"`
}

func (r *SubmitProfileRequest) Normalize() {
	cleaned := make([]string, 0, len(r.Sports))
	for _, s := range r.Sports {
		if s = strings.TrimSpace(s); s != "" {
			cleaned = append(cleaned, s)
		}
	}
	r.Sports = cleaned
}

// RejectProfileRequest — pesan penolakan dari admin (opsional).
type RejectProfileRequest struct {
	Message string `json:"message,omitempty"`
}

// MarkNotificationsRequest — id notifikasi yang ditandai terbaca.
type MarkNotificationsRequest struct {
	IDs []string `json:"ids" validate:"required,min=1,dive,uuid"`
}

func (r *MarkNotificationsRequest) Validate() error {
	return validate.Struct(r)
}
