// file: internals/seeds/users/seed_admin.go
package users

import (
	"errors"
	"log"

	"gorm.io/gorm"

	"sportku_backend/internals/configs"
	"sportku_backend/internals/constants"
	authHelper "sportku_backend/internals/features/users/auth/helper"
	userModel "sportku_backend/internals/features/users/user/model"
)

// EnsureDefaultAdmin bikin akun admin default saat startup kalau belum ada.
// Kredensial dari env ADMIN_EMAIL / ADMIN_PASSWORD (ada default dev).
func EnsureDefaultAdmin(db *gorm.DB) {
	email := configs.GetEnv("ADMIN_EMAIL", "admin@sportku.local")
	password := configs.GetEnv("ADMIN_PASSWORD", "admin123")

	var existing userModel.UserModel
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return // sudah ada
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("⚠️ Gagal cek admin default: %v", err)
		return
	}

	hashed, err := authHelper.HashPassword(password)
	if err != nil {
		log.Printf("⚠️ Gagal hash password admin default: %v", err)
		return
	}

	admin := userModel.UserModel{
		Name:     "Administrator",
		Email:    email,
		Password: hashed,
		Role:     constants.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("⚠️ Gagal membuat admin default: %v", err)
		return
	}
	log.Printf("👑 Admin default dibuat: %s", email)
}
