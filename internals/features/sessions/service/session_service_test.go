package service

import (
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"sportku_backend/internals/features/sessions/model"
	"sportku_backend/internals/helpers/errs"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&model.SessionModel{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestCreateSessionLabelAndRange(t *testing.T) {
	cases := []struct {
		startMonth string
		year       int
		wantName   string
		wantStart  string
		wantEnd    string
	}{
		{"Jan", 2026, "Jan–July 2026", "2026-01-01", "2026-07-31"},
		{"July", 2026, "July–Dec 2026", "2026-07-01", "2026-12-31"},
		{"Jan", 2030, "Jan–July 2030", "2030-01-01", "2030-07-31"},
	}

	for _, tc := range cases {
		t.Run(tc.wantName, func(t *testing.T) {
			db := newTestDB(t)
			s, err := CreateSession(db, tc.startMonth, tc.year)
			if err != nil {
				t.Fatalf("CreateSession: %v", err)
			}
			if s.Name != tc.wantName {
				t.Errorf("name = %q, want %q", s.Name, tc.wantName)
			}
			if got := s.StartDate.Format("2006-01-02"); got != tc.wantStart {
				t.Errorf("start = %s, want %s", got, tc.wantStart)
			}
			if got := s.EndDate.Format("2006-01-02"); got != tc.wantEnd {
				t.Errorf("end = %s, want %s", got, tc.wantEnd)
			}
			if !s.IsActive {
				t.Error("session baru harus aktif")
			}
		})
	}
}

func TestCreateSessionValidation(t *testing.T) {
	db := newTestDB(t)

	if _, err := CreateSession(db, "March", 2026); !errors.Is(err, errs.ErrValidation) {
		t.Errorf("bulan tidak valid harus ErrValidation, dapat %v", err)
	}
	if _, err := CreateSession(db, "Jan", 1990); !errors.Is(err, errs.ErrValidation) {
		t.Errorf("tahun di luar jangkauan harus ErrValidation, dapat %v", err)
	}
}

func TestSingleActiveInvariant(t *testing.T) {
	db := newTestDB(t)

	first, err := CreateSession(db, "Jan", 2025)
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	second, err := CreateSession(db, "July", 2025)
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}

	var activeCount int64
	db.Model(&model.SessionModel{}).Where("is_active = ?", true).Count(&activeCount)
	if activeCount != 1 {
		t.Fatalf("active count = %d, want 1", activeCount)
	}

	active, err := GetActive(db)
	if err != nil {
		t.Fatalf("GetActive: %v", err)
	}
	if active.ID != second.ID {
		t.Errorf("session aktif harus yang terbaru")
	}

	// aktifkan kembali yang lama
	if _, err := SetActive(db, first.ID); err != nil {
		t.Fatalf("SetActive: %v", err)
	}
	db.Model(&model.SessionModel{}).Where("is_active = ?", true).Count(&activeCount)
	if activeCount != 1 {
		t.Fatalf("active count setelah SetActive = %d, want 1", activeCount)
	}
	active, _ = GetActive(db)
	if active.ID != first.ID {
		t.Errorf("SetActive tidak memindahkan flag aktif")
	}
}

func TestDeleteSession(t *testing.T) {
	db := newTestDB(t)

	s, _ := CreateSession(db, "Jan", 2026)
	if err := Delete(db, s.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	// habis delete boleh tidak ada session aktif (state transient sah)
	if _, err := GetActive(db); err == nil {
		t.Error("GetActive setelah delete harus ErrNotFound")
	}

	if err := Delete(db, s.ID); err == nil {
		t.Error("delete kedua kali harus ErrNotFound")
	}
}

func TestIsActiveSession(t *testing.T) {
	db := newTestDB(t)

	old, _ := CreateSession(db, "Jan", 2025)
	current, _ := CreateSession(db, "July", 2025)

	if ok, _ := IsActiveSession(db, current.ID); !ok {
		t.Error("session terbaru harus aktif")
	}
	if ok, _ := IsActiveSession(db, old.ID); ok {
		t.Error("session lama tidak boleh aktif")
	}

	_ = Delete(db, old.ID)
	if ok, err := IsActiveSession(db, old.ID); err != nil || ok {
		t.Errorf("session terhapus: ok=%v err=%v, want false,nil", ok, err)
	}
}
