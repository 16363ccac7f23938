// file: internals/features/teams/model/team_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	TeamStatusPending  = "pending"
	TeamStatusApproved = "approved"
	TeamStatusRejected = "rejected"
)

// TeamMember entri anggota roster (disimpan jsonb, urutan dipertahankan).
type TeamMember struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	URN      string `json:"urn,omitempty"`
	Branch   string `json:"branch,omitempty"`
	Year     int    `json:"year,omitempty"`
	Sport    string `json:"sport,omitempty"`
	Position string `json:"position,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

// TeamModel: satu roster per (captain_id, session).
// Status pending → approved / rejected; dua-duanya terminal dalam session
// yang sama (session baru = roster baru, bukan reset).
type TeamModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	CaptainID string     `gorm:"size:30;not null;uniqueIndex:idx_team_captain_session" json:"captain_id"`
	SessionID *uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_team_captain_session" json:"session_id"`

	TeamName string `gorm:"size:100" json:"team_name,omitempty"`
	Sport    string `gorm:"size:50" json:"sport,omitempty"`

	Members datatypes.JSONSlice[TeamMember] `gorm:"type:jsonb" json:"members"`

	Status string `gorm:"size:20;not null;default:'pending'" json:"status"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (TeamModel) TableName() string {
	return "teams"
}

func (m *TeamModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

func IsValidTeamStatus(s string) bool {
	return s == TeamStatusApproved || s == TeamStatusRejected
}
