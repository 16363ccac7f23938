// file: internals/features/students/profile/model/student_profile_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Notification entri pemberitahuan milik profil (disimpan jsonb).
type Notification struct {
	ID        uuid.UUID `json:"id"`
	Type      string    `json:"type,omitempty"` // contoh: "rejection"
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// SportPosition posisi yang ditetapkan admin per sport.
type SportPosition struct {
	Sport    string `json:"sport"`
	Position string `json:"position"`
}

// ProfileSnapshot snapshot field editable untuk pending update request.
// Record ber-field tetap, bukan map bebas.
type ProfileSnapshot struct {
	Name    string   `json:"name,omitempty"`
	Branch  string   `json:"branch,omitempty"`
	Year    int      `json:"year,omitempty"`
	Contact string   `json:"contact,omitempty"`
	Address string   `json:"address,omitempty"`
	Sports  []string `json:"sports,omitempty"`
}

// PendingUpdateRequest pasangan snapshot sebelum/sesudah.
type PendingUpdateRequest struct {
	PreviousData *ProfileSnapshot `json:"previous_data,omitempty"`
	UpdatedData  *ProfileSnapshot `json:"updated_data,omitempty"`
}

// StudentProfileModel: satu profil per (user_id, session_id).
// State machine: UNSUBMITTED → PENDING (locked_for_update) → REGISTERED,
// reject mengembalikan ke UNSUBMITTED.
type StudentProfileModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;index;uniqueIndex:idx_profile_user_session" json:"user_id"`
	SessionID *uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_profile_user_session" json:"session_id"`

	// Data identitas (statis antar session, ikut di-clone)
	Name   string `gorm:"size:100" json:"name"`
	URN    string `gorm:"size:50;index" json:"urn"`
	CRN    string `gorm:"size:50" json:"crn,omitempty"`
	Branch string `gorm:"size:100" json:"branch"`
	Year   int    `json:"year"`

	DOB        *time.Time `json:"dob,omitempty"`
	Gender     string     `gorm:"size:20" json:"gender,omitempty"`
	Contact    string     `gorm:"size:30" json:"contact,omitempty"`
	Address    string     `gorm:"size:255" json:"address,omitempty"`
	FatherName string     `gorm:"size:100" json:"father_name,omitempty"`

	// Riwayat akademik (ikut di-clone antar session)
	YearOfPassingMatric  int    `json:"year_of_passing_matric,omitempty"`
	YearOfPassingPlusTwo int    `json:"year_of_passing_plus_two,omitempty"`
	FirstAdmissionDate   string `gorm:"size:20" json:"first_admission_date,omitempty"`
	LastExamName         string `gorm:"size:100" json:"last_exam_name,omitempty"`
	LastExamYear         int    `json:"last_exam_year,omitempty"`
	YearsOfParticipation int    `json:"years_of_participation,omitempty"`

	// Jumlah keikutsertaan inter-college (graduate / PG)
	InterCollegeGraduateCourse int `json:"inter_college_graduate_course,omitempty"`
	InterCollegePgCourse       int `json:"inter_college_pg_course,omitempty"`

	Photo          string `gorm:"size:255" json:"photo,omitempty"`
	SignaturePhoto string `gorm:"size:255" json:"signature_photo,omitempty"`

	// Data per-session (di-reset saat clone / reject)
	Sports    datatypes.JSONSlice[string]        `gorm:"type:jsonb" json:"sports"`
	Positions datatypes.JSONSlice[SportPosition] `gorm:"type:jsonb" json:"positions"`

	IsRegistered    bool `gorm:"not null;default:false" json:"is_registered"`
	LockedForUpdate bool `gorm:"not null;default:false" json:"locked_for_update"`
	IsCloned        bool `gorm:"not null;default:false" json:"is_cloned"`

	PendingUpdateRequest *datatypes.JSONType[PendingUpdateRequest] `gorm:"type:jsonb" json:"pending_update_request,omitempty"`

	Notifications datatypes.JSONSlice[Notification] `gorm:"type:jsonb" json:"notifications"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (StudentProfileModel) TableName() string {
	return "student_profiles"
}

func (p *StudentProfileModel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
