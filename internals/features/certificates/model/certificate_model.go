// file: internals/features/certificates/model/certificate_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	RecipientCaptain = "captain"
	RecipientMember  = "member"
)

// CertificateRecipient data penerima yang dibekukan saat generate
// (roster bisa berubah, sertifikat tidak ikut berubah).
type CertificateRecipient struct {
	Name   string `json:"name"`
	Email  string `json:"email,omitempty"`
	URN    string `json:"urn,omitempty"`
	Branch string `json:"branch,omitempty"`
	Year   int    `json:"year,omitempty"`
}

// CertificateModel record sertifikat turunan dari roster + data kapten.
// Render PDF di luar sistem; di sini record-nya saja.
type CertificateModel struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	RecipientType string     `gorm:"size:20;not null" json:"recipient_type"` // captain | member
	CaptainID     string     `gorm:"size:30;not null;index:idx_cert_captain_session" json:"captain_id"`
	SessionID     *uuid.UUID `gorm:"type:uuid;index:idx_cert_captain_session" json:"session_id"`

	Sport    string `gorm:"size:50" json:"sport,omitempty"`
	Position string `gorm:"size:50;not null;default:'Participant'" json:"position"`

	Recipient datatypes.JSONType[CertificateRecipient] `gorm:"type:jsonb" json:"recipient"`

	IsSent bool `gorm:"not null;default:false" json:"is_sent"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (CertificateModel) TableName() string {
	return "certificates"
}

func (m *CertificateModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
