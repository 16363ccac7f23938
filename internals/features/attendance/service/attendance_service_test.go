package service

import (
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"sportku_backend/internals/features/attendance/model"
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
	if err := db.AutoMigrate(&model.AttendanceModel{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestMarkSameDayUpserts(t *testing.T) {
	db := newTestDB(t)
	student := uuid.New()
	teacher := uuid.New()
	admin := uuid.New()

	first, err := Mark(db, student, "2026-03-10", model.StatusPresent, teacher)
	if err != nil {
		t.Fatalf("mark pertama: %v", err)
	}

	// re-mark hari yang sama → update status + marked_by, bukan record baru
	second, err := Mark(db, student, "2026-03-10", model.StatusAbsent, admin)
	if err != nil {
		t.Fatalf("mark kedua: %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("re-mark harus record yang sama: %s vs %s", first.ID, second.ID)
	}
	if second.Status != model.StatusAbsent || second.MarkedBy != admin {
		t.Errorf("re-mark tidak meng-update: %+v", second)
	}

	var count int64
	db.Model(&model.AttendanceModel{}).Count(&count)
	if count != 1 {
		t.Errorf("jumlah record = %d, want 1", count)
	}

	// hari berbeda → record baru
	if _, err := Mark(db, student, "2026-03-11", model.StatusPresent, teacher); err != nil {
		t.Fatalf("mark hari lain: %v", err)
	}
	db.Model(&model.AttendanceModel{}).Count(&count)
	if count != 2 {
		t.Errorf("jumlah record setelah hari kedua = %d, want 2", count)
	}
}

func TestMarkValidation(t *testing.T) {
	db := newTestDB(t)
	student := uuid.New()

	if _, err := Mark(db, student, "2026-03-10", "late", student); !errors.Is(err, errs.ErrValidation) {
		t.Errorf("status di luar enum harus ErrValidation, dapat %v", err)
	}
	if _, err := Mark(db, student, "10-03-2026", model.StatusPresent, student); !errors.Is(err, errs.ErrValidation) {
		t.Errorf("format tanggal salah harus ErrValidation, dapat %v", err)
	}
}

func TestByDate(t *testing.T) {
	db := newTestDB(t)
	marker := uuid.New()

	_, _ = Mark(db, uuid.New(), "2026-03-10", model.StatusPresent, marker)
	_, _ = Mark(db, uuid.New(), "2026-03-10", model.StatusAbsent, marker)
	_, _ = Mark(db, uuid.New(), "2026-03-11", model.StatusPresent, marker)

	records, err := ByDate(db, "2026-03-10")
	if err != nil {
		t.Fatalf("ByDate: %v", err)
	}
	if len(records) != 2 {
		t.Errorf("record tanggal 10 = %d, want 2", len(records))
	}

	if _, err := ByDate(db, "bukan-tanggal"); !errors.Is(err, errs.ErrValidation) {
		t.Errorf("tanggal tidak valid harus ErrValidation, dapat %v", err)
	}
}
