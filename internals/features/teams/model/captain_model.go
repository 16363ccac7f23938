// file: internals/features/teams/model/captain_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CaptainModel: satu record kapten per (captain_id, session).
// Dibuat admin bareng record User saat role=captain; nomor HP dilengkapi
// kapten sendiri di login pertama.
type CaptainModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	CaptainID string     `gorm:"size:30;not null;uniqueIndex:idx_captain_session" json:"captain_id"` // format CAPT<tahun>-<urut>
	SessionID *uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_captain_session" json:"session_id"`

	Name   string `gorm:"size:100" json:"name"`
	Email  string `gorm:"size:100" json:"email,omitempty"`
	Phone  string `gorm:"size:30" json:"phone,omitempty"`
	Branch string `gorm:"size:100" json:"branch,omitempty"`

	Sport    string `gorm:"size:50" json:"sport"`
	TeamName string `gorm:"size:100" json:"team_name,omitempty"`
	Position string `gorm:"size:50" json:"position,omitempty"` // diisi admin, dipakai sertifikat

	TeamMemberCount      int  `gorm:"not null;default:0" json:"team_member_count"` // kuota anggota roster
	CertificateAvailable bool `gorm:"not null;default:false" json:"certificate_available"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (CaptainModel) TableName() string {
	return "captains"
}

func (m *CaptainModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
