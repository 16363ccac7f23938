// file: internals/databases/migrate.go
package database

import (
	"log"

	attendanceModel "sportku_backend/internals/features/attendance/model"
	certModel "sportku_backend/internals/features/certificates/model"
	sessionModel "sportku_backend/internals/features/sessions/model"
	gymSwimModel "sportku_backend/internals/features/students/gymswim/model"
	profileModel "sportku_backend/internals/features/students/profile/model"
	teamModel "sportku_backend/internals/features/teams/model"
	userModel "sportku_backend/internals/features/users/user/model"
)

// MigrateAll jalankan AutoMigrate untuk seluruh tabel aplikasi.
func MigrateAll() {
	err := DB.AutoMigrate(
		&sessionModel.SessionModel{},
		&userModel.UserModel{},
		&profileModel.StudentProfileModel{},
		&teamModel.CaptainModel{},
		&teamModel.TeamModel{},
		&certModel.CertificateModel{},
		&attendanceModel.AttendanceModel{},
		&gymSwimModel.GymSwimStudentModel{},
	)
	if err != nil {
		log.Fatalf("❌ Gagal migrasi database: %v", err)
	}
	log.Println("✅ Migrasi database selesai")
}
