package service

import (
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"sportku_backend/internals/features/certificates/model"
	sessionModel "sportku_backend/internals/features/sessions/model"
	sessionService "sportku_backend/internals/features/sessions/service"
	teamModel "sportku_backend/internals/features/teams/model"
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
	if err := db.AutoMigrate(
		&sessionModel.SessionModel{},
		&teamModel.CaptainModel{},
		&teamModel.TeamModel{},
		&model.CertificateModel{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedCaptainWithTeam(t *testing.T, db *gorm.DB, position string, members []teamModel.TeamMember) *teamModel.CaptainModel {
	t.Helper()

	session, err := sessionService.CreateSession(db, "Jan", 2026)
	if err != nil {
		t.Fatalf("seed session: %v", err)
	}

	sid := session.ID
	captain := &teamModel.CaptainModel{
		CaptainID: "CAPT2026-001",
		SessionID: &sid,
		Name:      "Citra Dewi",
		Sport:     "Football",
		Position:  position,
	}
	if err := db.Create(captain).Error; err != nil {
		t.Fatalf("seed captain: %v", err)
	}

	team := &teamModel.TeamModel{
		CaptainID: captain.CaptainID,
		SessionID: &sid,
		Sport:     "Football",
		Members:   members,
		Status:    teamModel.TeamStatusApproved,
	}
	if err := db.Create(team).Error; err != nil {
		t.Fatalf("seed team: %v", err)
	}
	return captain
}

func TestGenerateForCaptain(t *testing.T) {
	db := newTestDB(t)
	captain := seedCaptainWithTeam(t, db, "Captain", []teamModel.TeamMember{
		{Name: "Anggota 1", Email: "a1@kampus.ac.id", Position: "Goalkeeper"},
		{Name: "Anggota 2", Email: "a2@kampus.ac.id"}, // posisi kosong → default
	})

	certs, err := GenerateForCaptain(db, captain.ID)
	if err != nil {
		t.Fatalf("GenerateForCaptain: %v", err)
	}
	if len(certs) != 3 {
		t.Fatalf("jumlah sertifikat = %d, want 3 (1 kapten + 2 anggota)", len(certs))
	}

	byType := map[string]int{}
	for _, c := range certs {
		byType[c.RecipientType]++
	}
	if byType[model.RecipientCaptain] != 1 || byType[model.RecipientMember] != 2 {
		t.Errorf("komposisi penerima salah: %v", byType)
	}

	for _, c := range certs {
		if c.RecipientType == model.RecipientMember && c.Recipient.Data().Name == "Anggota 2" {
			if c.Position != "Participant" {
				t.Errorf("posisi kosong harus default Participant, dapat %q", c.Position)
			}
		}
	}
}

func TestGenerateRequiresRoster(t *testing.T) {
	db := newTestDB(t)

	session, err := sessionService.CreateSession(db, "Jan", 2026)
	if err != nil {
		t.Fatalf("seed session: %v", err)
	}
	sid := session.ID
	captain := &teamModel.CaptainModel{
		CaptainID: "CAPT2026-001",
		SessionID: &sid,
		Name:      "Citra Dewi",
		Sport:     "Football",
	}
	if err := db.Create(captain).Error; err != nil {
		t.Fatalf("seed captain: %v", err)
	}

	// kapten tanpa roster → tidak ada yang digenerate
	if _, err := GenerateForCaptain(db, captain.ID); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("generate tanpa roster harus ErrNotFound, dapat %v", err)
	}

	var count int64
	if err := db.Model(&model.CertificateModel{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Errorf("tidak boleh ada sertifikat tersimpan, dapat %d", count)
	}
}

func TestGenerateIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	captain := seedCaptainWithTeam(t, db, "Captain", []teamModel.TeamMember{
		{Name: "Anggota 1", Email: "a1@kampus.ac.id"},
	})

	first, err := GenerateForCaptain(db, captain.ID)
	if err != nil {
		t.Fatalf("generate pertama: %v", err)
	}
	second, err := GenerateForCaptain(db, captain.ID)
	if err != nil {
		t.Fatalf("generate kedua: %v", err)
	}
	if len(first) != len(second) {
		t.Errorf("generate kedua mengubah jumlah: %d vs %d", len(first), len(second))
	}

	var count int64
	db.Model(&model.CertificateModel{}).Count(&count)
	if int(count) != len(first) {
		t.Errorf("total sertifikat = %d, want %d (tanpa duplikat)", count, len(first))
	}
}

func TestMarkSent(t *testing.T) {
	db := newTestDB(t)
	captain := seedCaptainWithTeam(t, db, "Captain", nil)

	// belum digenerate → not found
	if err := MarkSent(db, captain.ID); !errors.Is(err, errs.ErrNotFound) {
		t.Errorf("mark sent tanpa sertifikat harus ErrNotFound, dapat %v", err)
	}

	if _, err := GenerateForCaptain(db, captain.ID); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if err := MarkSent(db, captain.ID); err != nil {
		t.Fatalf("MarkSent: %v", err)
	}

	var certs []model.CertificateModel
	db.Find(&certs)
	for _, c := range certs {
		if !c.IsSent {
			t.Error("semua sertifikat harus is_sent=true")
		}
	}

	var reloaded teamModel.CaptainModel
	db.First(&reloaded, "id = ?", captain.ID)
	if !reloaded.CertificateAvailable {
		t.Error("certificate_available kapten harus true")
	}
}

func TestEligibleAndSentQueues(t *testing.T) {
	db := newTestDB(t)
	captain := seedCaptainWithTeam(t, db, "Captain", nil)

	eligible, err := EligibleCaptains(db)
	if err != nil {
		t.Fatalf("EligibleCaptains: %v", err)
	}
	if len(eligible) != 1 || eligible[0].ID != captain.ID {
		t.Fatalf("kapten berposisi di session aktif harus eligible, dapat %d", len(eligible))
	}

	if _, err := GenerateForCaptain(db, captain.ID); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if err := MarkSent(db, captain.ID); err != nil {
		t.Fatalf("mark sent: %v", err)
	}

	eligible, _ = EligibleCaptains(db)
	if len(eligible) != 0 {
		t.Errorf("setelah terkirim tidak boleh eligible lagi, dapat %d", len(eligible))
	}

	sent, err := SentCaptains(db)
	if err != nil {
		t.Fatalf("SentCaptains: %v", err)
	}
	if len(sent) != 1 {
		t.Errorf("antrian sent = %d, want 1", len(sent))
	}
}
