package service

import (
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	sessionModel "sportku_backend/internals/features/sessions/model"
	sessionService "sportku_backend/internals/features/sessions/service"
	"sportku_backend/internals/features/students/profile/dto"
	"sportku_backend/internals/features/students/profile/model"
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
		&model.StudentProfileModel{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedStudent(t *testing.T, db *gorm.DB) *userModel.UserModel {
	t.Helper()
	user := &userModel.UserModel{
		Name:     "Budi Santoso",
		Email:    "budi@kampus.ac.id",
		Password: "hashed",
		Role:     "student",
		Branch:   "CSE",
		URN:      "URN-001",
		Year:     3,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func seedSession(t *testing.T, db *gorm.DB, startMonth string, year int) *sessionModel.SessionModel {
	t.Helper()
	s, err := sessionService.CreateSession(db, startMonth, year)
	if err != nil {
		t.Fatalf("seed session: %v", err)
	}
	return s
}

func TestResolveProfileSeedsFromUser(t *testing.T) {
	db := newTestDB(t)
	user := seedStudent(t, db)
	session := seedSession(t, db, "Jan", 2026)

	profile, err := ResolveProfile(db, user.ID, session.ID)
	if err != nil {
		t.Fatalf("ResolveProfile: %v", err)
	}
	if profile.Name != user.Name || profile.URN != user.URN || profile.Branch != "CSE" {
		t.Errorf("seed minimal dari user tidak cocok: %+v", profile)
	}
	if profile.IsCloned {
		t.Error("profil pertama tidak boleh is_cloned")
	}
	if profile.IsRegistered || profile.LockedForUpdate {
		t.Error("profil baru harus unsubmitted")
	}
}

func TestResolveProfileIdempotent(t *testing.T) {
	db := newTestDB(t)
	user := seedStudent(t, db)
	session := seedSession(t, db, "Jan", 2026)

	first, err := ResolveProfile(db, user.ID, session.ID)
	if err != nil {
		t.Fatalf("resolve pertama: %v", err)
	}
	second, err := ResolveProfile(db, user.ID, session.ID)
	if err != nil {
		t.Fatalf("resolve kedua: %v", err)
	}
	if first.ID != second.ID {
		t.Errorf("resolve kedua harus record yang sama: %s vs %s", first.ID, second.ID)
	}

	var count int64
	db.Model(&model.StudentProfileModel{}).
		Where("user_id = ? AND session_id = ?", user.ID, session.ID).
		Count(&count)
	if count != 1 {
		t.Errorf("jumlah profil = %d, want 1", count)
	}
}

func TestResolveProfileClonesFromPriorSession(t *testing.T) {
	db := newTestDB(t)
	user := seedStudent(t, db)
	oldSession := seedSession(t, db, "Jan", 2025)

	old, err := ResolveProfile(db, user.ID, oldSession.ID)
	if err != nil {
		t.Fatalf("resolve session lama: %v", err)
	}

	// lengkapi profil lama lalu approve
	contact := "081234567890"
	if _, err := UpdateProfile(db, user.ID, oldSession.ID, &dto.UpdateProfileRequest{
		Contact: &contact,
		Sports:  []string{"Chess", "Football"},
	}); err != nil {
		t.Fatalf("update profil lama: %v", err)
	}
	if _, err := SubmitProfile(db, user.ID, oldSession.ID, nil); err != nil {
		t.Fatalf("submit profil lama: %v", err)
	}
	if _, err := ApproveProfile(db, old.ID); err != nil {
		t.Fatalf("approve profil lama: %v", err)
	}

	newSession := seedSession(t, db, "July", 2025)
	cloned, err := ResolveProfile(db, user.ID, newSession.ID)
	if err != nil {
		t.Fatalf("resolve session baru: %v", err)
	}

	if cloned.Branch != "CSE" || cloned.Year != 3 {
		t.Errorf("field statis harus ikut di-clone: branch=%q year=%d", cloned.Branch, cloned.Year)
	}
	if cloned.Contact != contact {
		t.Errorf("kontak harus ikut di-clone, dapat %q", cloned.Contact)
	}
	if len(cloned.Sports) != 0 {
		t.Errorf("sports harus di-reset, dapat %v", cloned.Sports)
	}
	if cloned.IsRegistered || cloned.LockedForUpdate {
		t.Error("state harus kembali unsubmitted")
	}
	if !cloned.IsCloned {
		t.Error("profil hasil clone harus is_cloned=true")
	}
}

func TestUpdateProfileLockedGuard(t *testing.T) {
	db := newTestDB(t)
	user := seedStudent(t, db)
	session := seedSession(t, db, "Jan", 2026)

	if _, err := SubmitProfile(db, user.ID, session.ID, []string{"Chess"}); err != nil {
		t.Fatalf("submit: %v", err)
	}

	name := "Nama Baru"
	_, err := UpdateProfile(db, user.ID, session.ID, &dto.UpdateProfileRequest{Name: &name})
	if !errors.Is(err, errs.ErrLocked) {
		t.Errorf("update saat pending harus ErrLocked, dapat %v", err)
	}
}

func TestUpdateProfileRecordsPendingUpdateRequest(t *testing.T) {
	db := newTestDB(t)
	user := seedStudent(t, db)
	session := seedSession(t, db, "Jan", 2026)

	contact := "081234567890"
	updated, err := UpdateProfile(db, user.ID, session.ID, &dto.UpdateProfileRequest{
		Contact: &contact,
		Sports:  []string{"Chess"},
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.PendingUpdateRequest == nil {
		t.Fatal("update harus menyimpan pending_update_request")
	}
	req := updated.PendingUpdateRequest.Data()
	if req.PreviousData == nil || req.UpdatedData == nil {
		t.Fatal("snapshot sebelum/sesudah harus terisi")
	}
	if req.PreviousData.Contact != "" || req.UpdatedData.Contact != contact {
		t.Errorf("snapshot contact: sebelum=%q sesudah=%q", req.PreviousData.Contact, req.UpdatedData.Contact)
	}

	// approve membersihkan snapshot
	if _, err := SubmitProfile(db, user.ID, session.ID, nil); err != nil {
		t.Fatalf("submit: %v", err)
	}
	approved, err := ApproveProfile(db, updated.ID)
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	if approved.PendingUpdateRequest != nil {
		t.Error("approve harus menghapus pending_update_request")
	}
}

func TestSubmitRejectResubmitRoundTrip(t *testing.T) {
	db := newTestDB(t)
	user := seedStudent(t, db)
	session := seedSession(t, db, "Jan", 2026)

	profile, err := SubmitProfile(db, user.ID, session.ID, []string{"Chess"})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !profile.LockedForUpdate {
		t.Fatal("submit harus mengunci profil")
	}
	if len(profile.Sports) != 1 || profile.Sports[0] != "Chess" {
		t.Fatalf("sports = %v, want [Chess]", profile.Sports)
	}

	rejected, err := RejectProfile(db, profile.ID, "Data kurang lengkap")
	if err != nil {
		t.Fatalf("reject: %v", err)
	}
	if len(rejected.Sports) != 0 {
		t.Errorf("reject harus mengosongkan sports, dapat %v", rejected.Sports)
	}
	if rejected.LockedForUpdate || rejected.IsRegistered {
		t.Error("reject harus mengembalikan state ke unsubmitted")
	}
	if len(rejected.Notifications) != 1 {
		t.Fatalf("notifikasi = %d, want tepat 1", len(rejected.Notifications))
	}
	if rejected.Notifications[0].Message != "Data kurang lengkap" {
		t.Errorf("pesan notifikasi = %q", rejected.Notifications[0].Message)
	}

	resubmitted, err := SubmitProfile(db, user.ID, session.ID, []string{"Football"})
	if err != nil {
		t.Fatalf("resubmit: %v", err)
	}
	if len(resubmitted.Sports) != 1 || resubmitted.Sports[0] != "Football" {
		t.Errorf("sports setelah resubmit = %v, want [Football]", resubmitted.Sports)
	}
	if !resubmitted.LockedForUpdate {
		t.Error("resubmit harus mengunci lagi")
	}
}

func TestRejectUsesDefaultMessage(t *testing.T) {
	db := newTestDB(t)
	user := seedStudent(t, db)
	session := seedSession(t, db, "Jan", 2026)

	profile, _ := SubmitProfile(db, user.ID, session.ID, []string{"Chess"})
	rejected, err := RejectProfile(db, profile.ID, "")
	if err != nil {
		t.Fatalf("reject: %v", err)
	}
	if rejected.Notifications[0].Message != defaultRejectionMessage {
		t.Errorf("pesan default tidak dipakai: %q", rejected.Notifications[0].Message)
	}
}

func TestApproveRequiresPending(t *testing.T) {
	db := newTestDB(t)
	user := seedStudent(t, db)
	session := seedSession(t, db, "Jan", 2026)

	profile, _ := ResolveProfile(db, user.ID, session.ID)

	// belum submit → tidak boleh langsung registered
	if _, err := ApproveProfile(db, profile.ID); !errors.Is(err, errs.ErrState) {
		t.Errorf("approve tanpa submit harus ErrState, dapat %v", err)
	}

	if _, err := SubmitProfile(db, user.ID, session.ID, []string{"Chess"}); err != nil {
		t.Fatalf("submit: %v", err)
	}
	approved, err := ApproveProfile(db, profile.ID)
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	if !approved.IsRegistered || approved.LockedForUpdate {
		t.Errorf("approve harus registered+unlocked: %+v", approved)
	}

	// approve ulang idempotent
	if _, err := ApproveProfile(db, profile.ID); err != nil {
		t.Errorf("approve ulang harus no-op, dapat %v", err)
	}
}

func TestMarkNotificationsReadIgnoresForeignIDs(t *testing.T) {
	db := newTestDB(t)
	user := seedStudent(t, db)
	session := seedSession(t, db, "Jan", 2026)

	profile, _ := SubmitProfile(db, user.ID, session.ID, []string{"Chess"})
	rejected, _ := RejectProfile(db, profile.ID, "")
	notifID := rejected.Notifications[0].ID

	// id asing di-skip diam-diam, id milik sendiri ditandai
	err := MarkNotificationsRead(db, user.ID, []uuid.UUID{uuid.New(), notifID})
	if err != nil {
		t.Fatalf("MarkNotificationsRead: %v", err)
	}

	var reloaded model.StudentProfileModel
	db.First(&reloaded, "id = ?", profile.ID)
	if !reloaded.Notifications[0].Read {
		t.Error("notifikasi milik user harus read=true")
	}
}

func TestMySessionsEnsuresActiveProfile(t *testing.T) {
	db := newTestDB(t)
	user := seedStudent(t, db)
	session := seedSession(t, db, "Jan", 2026)

	sessions, err := MySessions(db, user.ID)
	if err != nil {
		t.Fatalf("MySessions: %v", err)
	}
	if len(sessions) != 1 || sessions[0].ID != session.ID {
		t.Fatalf("MySessions harus memuat session aktif, dapat %d entri", len(sessions))
	}

	var count int64
	db.Model(&model.StudentProfileModel{}).
		Where("user_id = ? AND session_id = ?", user.ID, session.ID).
		Count(&count)
	if count != 1 {
		t.Errorf("MySessions harus membuat profil session aktif, count=%d", count)
	}
}
