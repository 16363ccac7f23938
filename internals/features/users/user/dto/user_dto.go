package dto

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	uModel "sportku_backend/internals/features/users/user/model"
)

var validate = validator.New()

/* =======================================================
   REQUEST DTOs
   ======================================================= */

// CreateUserRequest — dipakai admin di /admin/create-user.
// Satu endpoint untuk semua role; field role-specific opsional.
type CreateUserRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"omitempty,min=6"`
	Role     string `json:"role" validate:"required,oneof=admin teacher student captain"`

	// Student / captain data (diisi admin)
	Branch string `json:"branch,omitempty"`
	URN    string `json:"urn,omitempty"`
	Year   int    `json:"year,omitempty"`

	// sport lama (single) + sports baru (multi); dinormalisasi jadi satu list
	Sport  string   `json:"sport,omitempty"`
	Sports []string `json:"sports,omitempty"`

	TeamMemberCount int    `json:"teamMemberCount,omitempty" validate:"omitempty,min=0,max=50"`
	SessionID       string `json:"sessionId,omitempty" validate:"omitempty,uuid"`

	// alias lama dari frontend admin
	RollNumber string `json:"rollNumber,omitempty"`
	Course     string `json:"course,omitempty"`
}

// Normalize: trim + gabungkan sport/sports jadi satu list bersih
func (r *CreateUserRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(strings.ToLower(r.Email))
	r.Role = strings.TrimSpace(r.Role)
	r.Branch = strings.TrimSpace(r.Branch)
	r.URN = strings.TrimSpace(r.URN)

	merged := make([]string, 0, len(r.Sports)+1)
	if s := strings.TrimSpace(r.Sport); s != "" {
		merged = append(merged, s)
	}
	for _, s := range r.Sports {
		if s = strings.TrimSpace(s); s != "" {
			merged = append(merged, s)
		}
	}
	r.Sports = dedupe(merged)
	r.Sport = ""
}

func (r *CreateUserRequest) Validate() error {
	return validate.Struct(r)
}

// SessionUUID parse sessionId kalau ada (uuid.Nil kalau kosong)
func (r *CreateUserRequest) SessionUUID() uuid.UUID {
	if r.SessionID == "" {
		return uuid.Nil
	}
	id, err := uuid.Parse(r.SessionID)
	if err != nil {
		return uuid.Nil
	}
	return id
}

func dedupe(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

/* =======================================================
   RESPONSE DTOs
   ======================================================= */

// UserLite untuk listing admin (tanpa field sensitif)
type UserLite struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Role  string    `json:"role"`
}

func ToUserLite(u *uModel.UserModel) UserLite {
	return UserLite{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
}
