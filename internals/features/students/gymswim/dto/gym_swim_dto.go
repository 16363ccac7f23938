package dto

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// CreateGymSwimRequest input admin untuk student gym/renang.
type CreateGymSwimRequest struct {
	Name      string `json:"name" validate:"required,min=2,max=100"`
	URN       string `json:"urn" validate:"required,max=50"`
	CRN       string `json:"crn,omitempty" validate:"omitempty,max=50"`
	Branch    string `json:"branch,omitempty" validate:"omitempty,max=100"`
	Year      int    `json:"year,omitempty" validate:"omitempty,min=1,max=6"`
	Sport     string `json:"sport" validate:"required,oneof=Gym Swimming"`
	Email     string `json:"email,omitempty" validate:"omitempty,email"`
	Phone     string `json:"phone,omitempty" validate:"omitempty,max=30"`
	SessionID string `json:"session_id,omitempty" validate:"omitempty,uuid"`
}

func (r *CreateGymSwimRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.URN = strings.TrimSpace(r.URN)
	r.CRN = strings.TrimSpace(r.CRN)
	r.Branch = strings.TrimSpace(r.Branch)
	r.Sport = strings.TrimSpace(r.Sport)
	r.Email = strings.TrimSpace(strings.ToLower(r.Email))
	r.Phone = strings.TrimSpace(r.Phone)
}

func (r *CreateGymSwimRequest) Validate() error {
	return validate.Struct(r)
}

// UpdateGymSwimRequest patch admin.
type UpdateGymSwimRequest struct {
	Name   *string `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	CRN    *string `json:"crn,omitempty" validate:"omitempty,max=50"`
	Branch *string `json:"branch,omitempty" validate:"omitempty,max=100"`
	Year   *int    `json:"year,omitempty" validate:"omitempty,min=1,max=6"`
	Sport  *string `json:"sport,omitempty" validate:"omitempty,oneof=Gym Swimming"`
	Email  *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone  *string `json:"phone,omitempty" validate:"omitempty,max=30"`
}

func (r *UpdateGymSwimRequest) Validate() error {
	return validate.Struct(r)
}
