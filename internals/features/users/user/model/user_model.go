package model

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Validator instance
var validate = validator.New()

// UserModel merepresentasikan tabel users di database.
// Role bersifat immutable setelah dibuat (tidak ada endpoint ubah role).
type UserModel struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name     string    `gorm:"size:100;not null" json:"name" validate:"required,min=2,max=100"`
	Email    string    `gorm:"size:255;unique;not null" json:"email" validate:"required,email"`
	Password string    `gorm:"not null" json:"-" validate:"required,min=6"`
	Role     string    `gorm:"type:varchar(20);not null" json:"role" validate:"required,oneof=admin teacher student captain"`

	// Field tambahan yang diisi admin saat create-user
	Branch string `gorm:"size:100" json:"branch,omitempty"`
	URN    string `gorm:"size:50" json:"urn,omitempty"`
	Year   int    `json:"year,omitempty"`

	// Linkage khusus role captain
	CaptainID       *string `gorm:"size:30;unique" json:"captain_id,omitempty"`
	TeamMemberCount int     `gorm:"default:0" json:"team_member_count,omitempty"`

	// Daftar sport agregat (jsonb)
	Sports datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"sports,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName memastikan nama tabel sesuai dengan skema database
func (UserModel) TableName() string {
	return "users"
}

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// Validate memeriksa apakah input sesuai aturan yang telah didefinisikan
func (u *UserModel) Validate() error {
	if err := validate.Struct(u); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// formatValidationError mengubah error validasi menjadi format yang lebih jelas
func formatValidationError(err error) error {
	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		msg := ""
		for _, fieldErr := range validationErrs {
			switch fieldErr.Tag() {
			case "required":
				msg += fieldErr.Field() + ": wajib diisi. "
			case "email":
				msg += fieldErr.Field() + ": format email tidak valid. "
			case "min":
				msg += fieldErr.Field() + ": minimal " + fieldErr.Param() + " karakter. "
			case "oneof":
				msg += fieldErr.Field() + ": harus salah satu dari " + fieldErr.Param() + ". "
			default:
				msg += fieldErr.Field() + ": format tidak valid. "
			}
		}
		return errors.New(msg)
	}
	return err
}
