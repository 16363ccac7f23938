// file: internals/features/students/gymswim/model/gym_swim_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	SportGym      = "Gym"
	SportSwimming = "Swimming"
)

// GymSwimStudentModel student gym/renang yang diinput manual oleh admin
// (jalurnya di luar registrasi profil biasa).
type GymSwimStudentModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	SessionID *uuid.UUID `gorm:"type:uuid;index" json:"session_id"`

	Name   string `gorm:"size:100;not null" json:"name"`
	URN    string `gorm:"size:50;not null;uniqueIndex" json:"urn"`
	CRN    string `gorm:"size:50" json:"crn,omitempty"`
	Branch string `gorm:"size:100" json:"branch,omitempty"`
	Year   int    `json:"year,omitempty"`
	Sport  string `gorm:"size:20;not null" json:"sport"` // Gym | Swimming
	Email  string `gorm:"size:100" json:"email,omitempty"`
	Phone  string `gorm:"size:30" json:"phone,omitempty"`

	CreatedBy uuid.UUID `gorm:"type:uuid" json:"created_by"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (GymSwimStudentModel) TableName() string {
	return "gym_swim_students"
}

func (m *GymSwimStudentModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
