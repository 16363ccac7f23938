// file: internals/features/users/auth/service/auth_service.go
package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"sportku_backend/internals/configs"
	"sportku_backend/internals/constants"
	authHelper "sportku_backend/internals/features/users/auth/helper"
	userModel "sportku_backend/internals/features/users/user/model"
	"sportku_backend/internals/helpers/errs"
)

const (
	TokenCookieName = "token"
	tokenTTL        = 24 * time.Hour // sesuai kontrak cookie 1 hari
)

// Login verifikasi email+password, mint JWT {id, role}, pasang cookie.
func Login(db *gorm.DB, c *fiber.Ctx, email, password string) (*userModel.UserModel, string, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return nil, "", fmt.Errorf("%w: email dan password wajib diisi", errs.ErrValidation)
	}

	var user userModel.UserModel
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", fmt.Errorf("%w: user tidak ditemukan", errs.ErrNotFound)
		}
		return nil, "", err
	}

	if !authHelper.ComparePassword(user.Password, password) {
		return nil, "", fmt.Errorf("%w: kredensial tidak valid", errs.ErrValidation)
	}

	token, err := MintToken(user.ID.String(), user.Role)
	if err != nil {
		return nil, "", err
	}

	SetAuthCookie(c, token)
	return &user, token, nil
}

// LoginGoogle login via Google ID token. User harus sudah diprovision admin
// (tidak ada self-register di sistem ini) — dicocokkan by email.
func LoginGoogle(db *gorm.DB, c *fiber.Ctx, idToken string) (*userModel.UserModel, string, error) {
	if strings.TrimSpace(idToken) == "" {
		return nil, "", fmt.Errorf("%w: id_token wajib diisi", errs.ErrValidation)
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(idToken, []string{configs.GoogleClientID}); err != nil {
		return nil, "", fmt.Errorf("%w: Google ID token tidak valid", errs.ErrForbidden)
	}

	claimSet, err := googleAuthIDTokenVerifier.Decode(idToken)
	if err != nil {
		return nil, "", err
	}

	var user userModel.UserModel
	if err := db.Where("email = ?", strings.ToLower(claimSet.Email)).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", fmt.Errorf("%w: akun belum terdaftar, hubungi admin", errs.ErrNotFound)
		}
		return nil, "", err
	}

	token, err := MintToken(user.ID.String(), user.Role)
	if err != nil {
		return nil, "", err
	}
	SetAuthCookie(c, token)
	return &user, token, nil
}

// MintToken buat JWT HS256 {id, role} dengan exp 1 hari.
func MintToken(userID, role string) (string, error) {
	if !constants.IsValidRole(role) {
		return "", fmt.Errorf("%w: role tidak dikenal", errs.ErrValidation)
	}
	secret := configs.JWTSecret
	if secret == "" {
		return "", errors.New("JWT_SECRET belum diset")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"id":   userID,
		"role": role,
		"iat":  now.Unix(),
		"exp":  now.Add(tokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// SetAuthCookie pasang cookie token (httpOnly, secure, SameSite=Lax, 1 hari)
func SetAuthCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     TokenCookieName,
		Value:    token,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Lax",
		Path:     "/",
		Expires:  time.Now().Add(tokenTTL),
	})
}

// ClearAuthCookie untuk logout
func ClearAuthCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     TokenCookieName,
		Value:    "",
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Lax",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
	})
}
