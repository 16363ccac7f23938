package dto

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"sportku_backend/internals/features/teams/model"
)

var validate = validator.New()

// MemberInput satu anggota roster dari kapten.
type MemberInput struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	URN      string `json:"urn,omitempty" validate:"omitempty,max=50"`
	Branch   string `json:"branch,omitempty" validate:"omitempty,max=100"`
	Year     int    `json:"year,omitempty" validate:"omitempty,min=1,max=6"`
	Sport    string `json:"sport,omitempty" validate:"omitempty,max=50"`
	Position string `json:"position,omitempty" validate:"omitempty,max=50"`
	Phone    string `json:"phone,omitempty" validate:"omitempty,max=30"`
}

func (m *MemberInput) Normalize() {
	m.Name = strings.TrimSpace(m.Name)
	m.Email = strings.TrimSpace(strings.ToLower(m.Email))
	m.URN = strings.TrimSpace(m.URN)
	m.Branch = strings.TrimSpace(m.Branch)
	m.Sport = strings.TrimSpace(m.Sport)
	m.Position = strings.TrimSpace(m.Position)
	m.Phone = strings.TrimSpace(m.Phone)
}

func (m *MemberInput) Validate() error {
	return validate.Struct(m)
}

func (m *MemberInput) ToModel() model.TeamMember {
	return model.TeamMember{
		Name:     m.Name,
		Email:    m.Email,
		URN:      m.URN,
		Branch:   m.Branch,
		Year:     m.Year,
		Sport:    m.Sport,
		Position: m.Position,
		Phone:    m.Phone,
	}
}

// CreateTeamRequest roster awal dari kapten.
type CreateTeamRequest struct {
	TeamName string        `json:"team_name,omitempty" validate:"omitempty,max=100"`
	Sport    string        `json:"sport,omitempty" validate:"omitempty,max=50"`
	Members  []MemberInput `json:"members" validate:"dive"`
}

func (r *CreateTeamRequest) Normalize() {
	r.TeamName = strings.TrimSpace(r.TeamName)
	r.Sport = strings.TrimSpace(r.Sport)
	for i := range r.Members {
		r.Members[i].Normalize()
	}
}

func (r *CreateTeamRequest) Validate() error {
	return validate.Struct(r)
}

// UpdateTeamRequest ganti roster penuh (hanya saat pending + session aktif).
type UpdateTeamRequest struct {
	TeamName *string       `json:"team_name,omitempty" validate:"omitempty,max=100"`
	Members  []MemberInput `json:"members" validate:"dive"`
}

func (r *UpdateTeamRequest) Normalize() {
	if r.TeamName != nil {
		v := strings.TrimSpace(*r.TeamName)
		r.TeamName = &v
	}
	for i := range r.Members {
		r.Members[i].Normalize()
	}
}

func (r *UpdateTeamRequest) Validate() error {
	return validate.Struct(r)
}

// SetTeamStatusRequest keputusan admin atas roster.
type SetTeamStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=approved rejected"`
}

func (r *SetTeamStatusRequest) Normalize() {
	r.Status = strings.TrimSpace(strings.ToLower(r.Status))
}

func (r *SetTeamStatusRequest) Validate() error {
	return validate.Struct(r)
}

// CompleteCaptainProfileRequest dilengkapi kapten di login pertama.
type CompleteCaptainProfileRequest struct {
	Phone    string `json:"phone" validate:"required,min=6,max=30"`
	TeamName string `json:"team_name,omitempty" validate:"omitempty,max=100"`
	Branch   string `json:"branch,omitempty" validate:"omitempty,max=100"`
}

func (r *CompleteCaptainProfileRequest) Normalize() {
	r.Phone = strings.TrimSpace(r.Phone)
	r.TeamName = strings.TrimSpace(r.TeamName)
	r.Branch = strings.TrimSpace(r.Branch)
}

func (r *CompleteCaptainProfileRequest) Validate() error {
	return validate.Struct(r)
}

// UpdateCaptainRequest patch dari admin (posisi, kuota, dst).
type UpdateCaptainRequest struct {
	Name            *string `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Phone           *string `json:"phone,omitempty" validate:"omitempty,max=30"`
	Sport           *string `json:"sport,omitempty" validate:"omitempty,max=50"`
	TeamName        *string `json:"team_name,omitempty" validate:"omitempty,max=100"`
	Position        *string `json:"position,omitempty" validate:"omitempty,max=50"`
	TeamMemberCount *int    `json:"team_member_count,omitempty" validate:"omitempty,min=0,max=100"`
}

func (r *UpdateCaptainRequest) Validate() error {
	return validate.Struct(r)
}
