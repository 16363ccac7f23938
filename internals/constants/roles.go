package constants

import "fmt"

// Daftar role yang dikenal sistem (closed enum, tidak ada role lain)
const (
	RoleAdmin   = "admin"
	RoleTeacher = "teacher"
	RoleStudent = "student"
	RoleCaptain = "captain"
)

// Template pesan error role
const (
	ErrOnlyAdminsCanAccess   = "❌ Hanya admin yang boleh mengakses fitur %s."
	ErrOnlyStudentsCanAccess = "❌ Hanya student yang boleh mengakses fitur %s."
	ErrOnlyCaptainsCanAccess = "❌ Hanya captain yang boleh mengakses fitur %s."
	ErrOnlyStaffCanAccess    = "❌ Hanya admin atau teacher yang boleh mengakses fitur %s."
)

// Fungsi helper untuk menghasilkan pesan error dinamis
func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorStudent(feature string) string {
	return fmt.Sprintf(ErrOnlyStudentsCanAccess, feature)
}

func RoleErrorCaptain(feature string) string {
	return fmt.Sprintf(ErrOnlyCaptainsCanAccess, feature)
}

func RoleErrorStaff(feature string) string {
	return fmt.Sprintf(ErrOnlyStaffCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleAdmin,
		RoleTeacher,
		RoleStudent,
		RoleCaptain,
	}

	AdminOnly = []string{
		RoleAdmin,
	}

	StudentOnly = []string{
		RoleStudent,
	}

	CaptainOnly = []string{
		RoleCaptain,
	}

	// admin + teacher (absensi)
	Staff = []string{
		RoleAdmin,
		RoleTeacher,
	}
)

// IsValidRole memastikan role termasuk enum yang dikenal
func IsValidRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}
