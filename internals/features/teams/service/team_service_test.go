package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	sessionModel "sportku_backend/internals/features/sessions/model"
	sessionService "sportku_backend/internals/features/sessions/service"
	"sportku_backend/internals/features/teams/dto"
	"sportku_backend/internals/features/teams/model"
	userModel "sportku_backend/internals/features/users/user/model"
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
		&userModel.UserModel{},
		&model.CaptainModel{},
		&model.TeamModel{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

type fixture struct {
	db      *gorm.DB
	session *sessionModel.SessionModel
	user    *userModel.UserModel
	captain *model.CaptainModel
}

func newFixture(t *testing.T, quota int, phone string) *fixture {
	t.Helper()
	db := newTestDB(t)

	session, err := sessionService.CreateSession(db, "Jan", 2026)
	if err != nil {
		t.Fatalf("seed session: %v", err)
	}

	captainID := "CAPT2026-001"
	user := &userModel.UserModel{
		Name:      "Citra Dewi",
		Email:     "citra@kampus.ac.id",
		Password:  "hashed",
		Role:      "captain",
		CaptainID: &captainID,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}

	sid := session.ID
	captain := &model.CaptainModel{
		UserID:          user.ID,
		CaptainID:       captainID,
		SessionID:       &sid,
		Name:            user.Name,
		Email:           user.Email,
		Phone:           phone,
		Sport:           "Football",
		TeamMemberCount: quota,
	}
	if err := db.Create(captain).Error; err != nil {
		t.Fatalf("seed captain: %v", err)
	}

	return &fixture{db: db, session: session, user: user, captain: captain}
}

func member(i int) *dto.MemberInput {
	return &dto.MemberInput{
		Name:  fmt.Sprintf("Anggota %d", i),
		Email: fmt.Sprintf("anggota%d@kampus.ac.id", i),
		Sport: "Football",
	}
}

func TestGetTeamFirstTimeSentinel(t *testing.T) {
	f := newFixture(t, 3, "0811111111")

	team, err := GetTeam(f.db, f.captain.CaptainID, f.session.ID)
	if err != nil {
		t.Fatalf("GetTeam: %v", err)
	}
	if team != nil {
		t.Error("roster yang belum dibuat harus nil (sentinel first-time)")
	}
}

func TestCreateTeamRequiresPhone(t *testing.T) {
	f := newFixture(t, 3, "")

	_, err := CreateTeam(f.db, f.user.ID, f.session.ID, &dto.CreateTeamRequest{})
	if !errors.Is(err, errs.ErrIncompleteProfile) {
		t.Errorf("create tanpa nomor HP harus ErrIncompleteProfile, dapat %v", err)
	}
}

func TestCreateTeamDuplicate(t *testing.T) {
	f := newFixture(t, 3, "0811111111")

	if _, err := CreateTeam(f.db, f.user.ID, f.session.ID, &dto.CreateTeamRequest{}); err != nil {
		t.Fatalf("create pertama: %v", err)
	}
	_, err := CreateTeam(f.db, f.user.ID, f.session.ID, &dto.CreateTeamRequest{})
	if !errors.Is(err, errs.ErrDuplicate) {
		t.Errorf("create kedua harus ErrDuplicate, dapat %v", err)
	}
}

func TestCreateTeamInactiveSessionPersistsNothing(t *testing.T) {
	f := newFixture(t, 3, "0811111111")

	// session lain jadi aktif → session fixture nonaktif
	if _, err := sessionService.CreateSession(f.db, "July", 2026); err != nil {
		t.Fatalf("seed session kedua: %v", err)
	}

	_, err := CreateTeam(f.db, f.user.ID, f.session.ID, &dto.CreateTeamRequest{
		Members: []dto.MemberInput{*member(1)},
	})
	if !errors.Is(err, errs.ErrInactiveSession) {
		t.Fatalf("create di session nonaktif harus ErrInactiveSession, dapat %v", err)
	}

	var count int64
	f.db.Model(&model.TeamModel{}).Count(&count)
	if count != 0 {
		t.Errorf("tidak boleh ada roster tersimpan, count=%d", count)
	}
}

func TestAddMemberCapacity(t *testing.T) {
	f := newFixture(t, 3, "0811111111")

	for i := 1; i <= 3; i++ {
		if _, err := AddMember(f.db, f.user.ID, f.session.ID, member(i)); err != nil {
			t.Fatalf("add member %d: %v", i, err)
		}
	}

	_, err := AddMember(f.db, f.user.ID, f.session.ID, member(4))
	if !errors.Is(err, errs.ErrCapacity) {
		t.Errorf("anggota ke-4 dengan kuota 3 harus ErrCapacity, dapat %v", err)
	}

	team, _ := GetTeam(f.db, f.captain.CaptainID, f.session.ID)
	if len(team.Members) != 3 {
		t.Errorf("jumlah anggota = %d, want 3", len(team.Members))
	}
}

func TestAddMemberCreatesRosterOnFirstCall(t *testing.T) {
	f := newFixture(t, 3, "0811111111")

	team, err := AddMember(f.db, f.user.ID, f.session.ID, member(1))
	if err != nil {
		t.Fatalf("AddMember: %v", err)
	}
	if team.Status != model.TeamStatusPending {
		t.Errorf("roster baru harus pending, dapat %s", team.Status)
	}
	if len(team.Members) != 1 {
		t.Errorf("anggota = %d, want 1", len(team.Members))
	}
}

func TestAddMemberRequiresNameAndEmail(t *testing.T) {
	f := newFixture(t, 3, "0811111111")

	_, err := AddMember(f.db, f.user.ID, f.session.ID, &dto.MemberInput{Name: "Tanpa Email"})
	if !errors.Is(err, errs.ErrValidation) {
		t.Errorf("anggota tanpa email harus ErrValidation, dapat %v", err)
	}
}

func TestMutationBlockedAfterDecision(t *testing.T) {
	f := newFixture(t, 3, "0811111111")

	team, err := CreateTeam(f.db, f.user.ID, f.session.ID, &dto.CreateTeamRequest{
		Members: []dto.MemberInput{*member(1)},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := SetTeamStatus(f.db, team.ID, model.TeamStatusApproved); err != nil {
		t.Fatalf("SetTeamStatus: %v", err)
	}

	if _, err := UpdateTeam(f.db, f.user.ID, f.session.ID, &dto.UpdateTeamRequest{}); !errors.Is(err, errs.ErrState) {
		t.Errorf("update setelah approved harus ErrState, dapat %v", err)
	}
	if err := DeleteTeam(f.db, f.user.ID, f.session.ID); !errors.Is(err, errs.ErrState) {
		t.Errorf("delete setelah approved harus ErrState, dapat %v", err)
	}
	if _, err := AddMember(f.db, f.user.ID, f.session.ID, member(2)); !errors.Is(err, errs.ErrState) {
		t.Errorf("add member setelah approved harus ErrState, dapat %v", err)
	}
}

func TestSetTeamStatusValidatesEnum(t *testing.T) {
	f := newFixture(t, 3, "0811111111")

	team, _ := CreateTeam(f.db, f.user.ID, f.session.ID, &dto.CreateTeamRequest{})

	if _, err := SetTeamStatus(f.db, team.ID, "banned"); !errors.Is(err, errs.ErrValidation) {
		t.Errorf("status di luar enum harus ErrValidation, dapat %v", err)
	}
	if _, err := SetTeamStatus(f.db, uuid.New(), model.TeamStatusApproved); !errors.Is(err, errs.ErrNotFound) {
		t.Errorf("roster tidak ada harus ErrNotFound, dapat %v", err)
	}
}

func TestNextCaptainID(t *testing.T) {
	f := newFixture(t, 3, "0811111111")

	id, err := NextCaptainID(f.db, 2026)
	if err != nil {
		t.Fatalf("NextCaptainID: %v", err)
	}
	// fixture sudah punya CAPT2026-001
	if id != "CAPT2026-002" {
		t.Errorf("id = %s, want CAPT2026-002", id)
	}

	other, _ := NextCaptainID(f.db, 2027)
	if other != "CAPT2027-001" {
		t.Errorf("tahun lain mulai dari 001, dapat %s", other)
	}
}
