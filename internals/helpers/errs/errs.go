// file: internals/helpers/errs/errs.go
package errs

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// Sentinel error untuk guard lifecycle. Service membungkus dengan
// fmt.Errorf("%w: detail") dan controller menerjemahkan lewat HTTPStatus.
var (
	ErrValidation        = errors.New("validation error")
	ErrNotFound          = errors.New("not found")
	ErrLocked            = errors.New("profile locked for update")
	ErrState             = errors.New("invalid lifecycle state")
	ErrInactiveSession   = errors.New("session is not active")
	ErrCapacity          = errors.New("team capacity exceeded")
	ErrDuplicate         = errors.New("record already exists")
	ErrIncompleteProfile = errors.New("profile incomplete")
	ErrForbidden         = errors.New("forbidden")
)

// HTTPStatus memetakan taxonomy error ke status HTTP:
// validasi & pelanggaran guard → 400, not found → 404, forbidden → 403,
// selain itu → 500 (pesan generik, detail hanya di log server).
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrValidation),
		errors.Is(err, ErrLocked),
		errors.Is(err, ErrState),
		errors.Is(err, ErrInactiveSession),
		errors.Is(err, ErrCapacity),
		errors.Is(err, ErrDuplicate),
		errors.Is(err, ErrIncompleteProfile):
		return fiber.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, ErrForbidden):
		return fiber.StatusForbidden
	default:
		return fiber.StatusInternalServerError
	}
}

// IsLifecycle true kalau error termasuk taxonomy yang boleh tampil ke user.
func IsLifecycle(err error) bool {
	return HTTPStatus(err) != fiber.StatusInternalServerError
}
