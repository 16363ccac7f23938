package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"sportku_backend/internals/configs"
)

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func newApp() *fiber.App {
	app := fiber.New()
	app.Get("/protected", AuthMiddleware(), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id": c.Locals("user_id"),
			"role":    c.Locals("userRole"),
		})
	})
	return app
}

func TestAuthMiddlewareCookieRoundTrip(t *testing.T) {
	configs.JWTSecret = "test-secret"
	app := newApp()

	token := signToken(t, "test-secret", jwt.MapClaims{
		"id":   "abc-123",
		"role": "student",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: TokenCookieName, Value: token})

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
}

func TestAuthMiddlewareBearerFallback(t *testing.T) {
	configs.JWTSecret = "test-secret"
	app := newApp()

	token := signToken(t, "test-secret", jwt.MapClaims{
		"id":   "abc-123",
		"role": "admin",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
}

func TestAuthMiddlewareRejections(t *testing.T) {
	configs.JWTSecret = "test-secret"
	app := newApp()

	cases := []struct {
		name       string
		token      string
		wantStatus int
	}{
		{
			name:       "tanpa token",
			token:      "",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "token expired",
			token: signToken(t, "test-secret", jwt.MapClaims{
				"id":   "abc-123",
				"role": "student",
				"exp":  time.Now().Add(-time.Hour).Unix(),
			}),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "secret salah",
			token: signToken(t, "secret-lain", jwt.MapClaims{
				"id":   "abc-123",
				"role": "student",
				"exp":  time.Now().Add(time.Hour).Unix(),
			}),
			wantStatus: http.StatusForbidden,
		},
		{
			name: "claims tidak lengkap",
			token: signToken(t, "test-secret", jwt.MapClaims{
				"exp": time.Now().Add(time.Hour).Unix(),
			}),
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tc.token != "" {
				req.AddCookie(&http.Cookie{Name: TokenCookieName, Value: tc.token})
			}
			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("app.Test: %v", err)
			}
			if resp.StatusCode != tc.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tc.wantStatus)
			}
		})
	}
}

func TestRoleMiddleware(t *testing.T) {
	configs.JWTSecret = "test-secret"

	app := fiber.New()
	app.Get("/admin-only",
		AuthMiddleware(),
		OnlyRoles("khusus admin", "admin"),
		func(c *fiber.Ctx) error { return c.SendString("ok") },
	)

	mkReq := func(role string) *http.Request {
		token := signToken(t, "test-secret", jwt.MapClaims{
			"id":   "abc-123",
			"role": role,
			"exp":  time.Now().Add(time.Hour).Unix(),
		})
		req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
		req.AddCookie(&http.Cookie{Name: TokenCookieName, Value: token})
		return req
	}

	if resp, _ := app.Test(mkReq("admin")); resp.StatusCode != http.StatusOK {
		t.Errorf("admin harus lolos, status=%d", resp.StatusCode)
	}
	if resp, _ := app.Test(mkReq("student")); resp.StatusCode != http.StatusForbidden {
		t.Errorf("student harus 403, status=%d", resp.StatusCode)
	}
}
