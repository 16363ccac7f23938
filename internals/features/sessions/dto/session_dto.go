package dto

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// CreateSessionRequest session baru dari admin.
// StartMonth menentukan paruh tahun: Jan (Jan–July) atau July (July–Dec).
type CreateSessionRequest struct {
	StartMonth string `json:"start_month" validate:"required,oneof=Jan July"`
	Year       int    `json:"year" validate:"required,min=2000,max=2100"`
}

func (r *CreateSessionRequest) Normalize() {
	r.StartMonth = strings.TrimSpace(r.StartMonth)
}

func (r *CreateSessionRequest) Validate() error {
	return validate.Struct(r)
}
