// file: internals/features/students/profile/service/profile_service.go
package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	sessionModel "sportku_backend/internals/features/sessions/model"
	"sportku_backend/internals/features/students/profile/dto"
	"sportku_backend/internals/features/students/profile/model"
	userModel "sportku_backend/internals/features/users/user/model"
	"sportku_backend/internals/helpers/errs"
)

const defaultRejectionMessage = "Your profile submission was rejected. Please refill the details correctly."

/* ==========================
   RESOLVE (find-or-create + clone)
========================== */

// ResolveProfile mengembalikan profil (user, session); kalau belum ada, dibuat:
// di-clone dari profil terakhir user di session sebelumnya (field statis ikut,
// sports/positions/state di-reset), atau seed minimal dari record User.
//
// Find-then-create ini check-then-act; unique index (user_id, session_id)
// jadi penjaga terakhir — kalau insert kalah balapan, baca ulang pemenangnya.
func ResolveProfile(db *gorm.DB, userID, sessionID uuid.UUID) (*model.StudentProfileModel, error) {
	var existing model.StudentProfileModel
	err := db.Where("user_id = ? AND session_id = ?", userID, sessionID).First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	fresh, err := buildProfile(db, userID, sessionID)
	if err != nil {
		return nil, err
	}

	if err := db.Create(fresh).Error; err != nil {
		if isDuplicateKey(err) {
			// kalah balapan first-access; profil pemenang yang dipakai
			var winner model.StudentProfileModel
			if err2 := db.Where("user_id = ? AND session_id = ?", userID, sessionID).First(&winner).Error; err2 != nil {
				return nil, err2
			}
			return &winner, nil
		}
		return nil, err
	}
	return fresh, nil
}

func buildProfile(db *gorm.DB, userID, sessionID uuid.UUID) (*model.StudentProfileModel, error) {
	// profil terakhir user di session manapun (by created_at)
	var last model.StudentProfileModel
	err := db.Where("user_id = ?", userID).Order("created_at DESC").First(&last).Error
	if err == nil {
		return cloneProfile(&last, sessionID), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	// fallback → seed minimal dari User
	var user userModel.UserModel
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user tidak ditemukan", errs.ErrNotFound)
		}
		return nil, err
	}

	sid := sessionID
	return &model.StudentProfileModel{
		UserID:    userID,
		SessionID: &sid,
		Name:      user.Name,
		URN:       user.URN,
		Branch:    user.Branch,
		Year:      user.Year,
		Sports:    []string{},
		Positions: []model.SportPosition{},
		IsCloned:  false,
	}, nil
}

// cloneProfile salin field statis saja; sports/positions/state kembali ke awal.
func cloneProfile(last *model.StudentProfileModel, sessionID uuid.UUID) *model.StudentProfileModel {
	sid := sessionID
	return &model.StudentProfileModel{
		UserID:    last.UserID,
		SessionID: &sid,

		Name:       last.Name,
		URN:        last.URN,
		CRN:        last.CRN,
		Branch:     last.Branch,
		Year:       last.Year,
		DOB:        last.DOB,
		Gender:     last.Gender,
		Contact:    last.Contact,
		Address:    last.Address,
		FatherName: last.FatherName,

		YearOfPassingMatric:  last.YearOfPassingMatric,
		YearOfPassingPlusTwo: last.YearOfPassingPlusTwo,
		FirstAdmissionDate:   last.FirstAdmissionDate,
		LastExamName:         last.LastExamName,
		LastExamYear:         last.LastExamYear,
		YearsOfParticipation: last.YearsOfParticipation,

		InterCollegeGraduateCourse: last.InterCollegeGraduateCourse,
		InterCollegePgCourse:       last.InterCollegePgCourse,

		Photo:          last.Photo,
		SignaturePhoto: last.SignaturePhoto,

		Sports:          []string{},
		Positions:       []model.SportPosition{},
		IsRegistered:    false,
		LockedForUpdate: false,
		IsCloned:        true,
	}
}

func isDuplicateKey(err error) bool {
	low := strings.ToLower(err.Error())
	return strings.Contains(low, "duplicate key") || strings.Contains(low, "unique")
}

/* ==========================
   UPDATE / SUBMIT
========================== */

// UpdateProfile terapkan patch dari student. Ditolak kalau profil sedang
// terkunci menunggu review (locked_for_update).
func UpdateProfile(db *gorm.DB, userID, sessionID uuid.UUID, req *dto.UpdateProfileRequest) (*model.StudentProfileModel, error) {
	profile, err := ResolveProfile(db, userID, sessionID)
	if err != nil {
		return nil, err
	}
	if profile.LockedForUpdate {
		return nil, fmt.Errorf("%w: profil sedang menunggu review admin", errs.ErrLocked)
	}

	dob, err := req.ParseDOB()
	if err != nil {
		return nil, fmt.Errorf("%w: format tanggal lahir harus YYYY-MM-DD", errs.ErrValidation)
	}

	before := snapshotOf(profile)
	applyPatch(profile, req, dob)
	after := snapshotOf(profile)

	// Simpan pasangan sebelum/sesudah supaya admin lihat apa yang berubah
	// saat review. Dihapus lagi saat approve/reject.
	pending := datatypes.NewJSONType(model.PendingUpdateRequest{
		PreviousData: &before,
		UpdatedData:  &after,
	})
	profile.PendingUpdateRequest = &pending

	if err := db.Save(profile).Error; err != nil {
		return nil, err
	}
	return profile, nil
}

func snapshotOf(p *model.StudentProfileModel) model.ProfileSnapshot {
	return model.ProfileSnapshot{
		Name:    p.Name,
		Branch:  p.Branch,
		Year:    p.Year,
		Contact: p.Contact,
		Address: p.Address,
		Sports:  append([]string(nil), p.Sports...),
	}
}

func applyPatch(p *model.StudentProfileModel, r *dto.UpdateProfileRequest, dob *time.Time) {
	if r.Name != nil {
		p.Name = *r.Name
	}
	if r.Branch != nil {
		p.Branch = *r.Branch
	}
	if r.Year != nil {
		p.Year = *r.Year
	}
	if r.CRN != nil {
		p.CRN = *r.CRN
	}
	if dob != nil {
		p.DOB = dob
	}
	if r.Gender != nil {
		p.Gender = *r.Gender
	}
	if r.Contact != nil {
		p.Contact = *r.Contact
	}
	if r.Address != nil {
		p.Address = *r.Address
	}
	if r.FatherName != nil {
		p.FatherName = *r.FatherName
	}
	if r.YearOfPassingMatric != nil {
		p.YearOfPassingMatric = *r.YearOfPassingMatric
	}
	if r.YearOfPassingPlusTwo != nil {
		p.YearOfPassingPlusTwo = *r.YearOfPassingPlusTwo
	}
	if r.FirstAdmissionDate != nil {
		p.FirstAdmissionDate = *r.FirstAdmissionDate
	}
	if r.LastExamName != nil {
		p.LastExamName = *r.LastExamName
	}
	if r.LastExamYear != nil {
		p.LastExamYear = *r.LastExamYear
	}
	if r.YearsOfParticipation != nil {
		p.YearsOfParticipation = *r.YearsOfParticipation
	}
	if r.InterCollegeGraduateCourse != nil {
		p.InterCollegeGraduateCourse = *r.InterCollegeGraduateCourse
	}
	if r.InterCollegePgCourse != nil {
		p.InterCollegePgCourse = *r.InterCollegePgCourse
	}
	if r.Sports != nil {
		p.Sports = r.Sports
	}
}

// SubmitProfile union sports yang dikirim ke list existing lalu kunci profil
// (UNSUBMITTED → PENDING). Submit ulang saat sudah PENDING hanya mengunci lagi.
func SubmitProfile(db *gorm.DB, userID, sessionID uuid.UUID, sports []string) (*model.StudentProfileModel, error) {
	profile, err := ResolveProfile(db, userID, sessionID)
	if err != nil {
		return nil, err
	}
	if profile.IsRegistered {
		return nil, fmt.Errorf("%w: profil sudah disetujui", errs.ErrState)
	}

	profile.Sports = unionSports(profile.Sports, sports)
	profile.LockedForUpdate = true

	if err := db.Save(profile).Error; err != nil {
		return nil, err
	}
	return profile, nil
}

func unionSports(existing []string, incoming []string) []string {
	seen := make(map[string]struct{}, len(existing)+len(incoming))
	out := make([]string, 0, len(existing)+len(incoming))
	for _, s := range existing {
		if _, ok := seen[s]; !ok {
			seen[s] = struct{}{}
			out = append(out, s)
		}
	}
	for _, s := range incoming {
		if _, ok := seen[s]; !ok {
			seen[s] = struct{}{}
			out = append(out, s)
		}
	}
	return out
}

/* ==========================
   APPROVE / REJECT (admin)
========================== */

// ApproveProfile PENDING → REGISTERED. Profil yang belum disubmit tidak
// boleh langsung registered.
func ApproveProfile(db *gorm.DB, profileID uuid.UUID) (*model.StudentProfileModel, error) {
	var profile model.StudentProfileModel
	if err := db.First(&profile, "id = ?", profileID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: profil student tidak ditemukan", errs.ErrNotFound)
		}
		return nil, err
	}
	if profile.IsRegistered {
		return &profile, nil // sudah approved, idempotent
	}
	if !profile.LockedForUpdate {
		return nil, fmt.Errorf("%w: profil belum disubmit untuk review", errs.ErrState)
	}

	profile.IsRegistered = true
	profile.LockedForUpdate = false
	profile.PendingUpdateRequest = nil
	if err := db.Save(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// RejectProfile PENDING → UNSUBMITTED: reset field editable + state, lalu
// tambah notifikasi penolakan. Record profil TIDAK dihapus.
func RejectProfile(db *gorm.DB, profileID uuid.UUID, message string) (*model.StudentProfileModel, error) {
	var profile model.StudentProfileModel
	if err := db.First(&profile, "id = ?", profileID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: profil student tidak ditemukan", errs.ErrNotFound)
		}
		return nil, err
	}
	if !profile.LockedForUpdate || profile.IsRegistered {
		return nil, fmt.Errorf("%w: hanya profil pending yang bisa ditolak", errs.ErrState)
	}

	if strings.TrimSpace(message) == "" {
		message = defaultRejectionMessage
	}

	// Reset field editable
	profile.DOB = nil
	profile.Gender = ""
	profile.Contact = ""
	profile.Address = ""
	profile.Sports = []string{}
	profile.IsRegistered = false
	profile.LockedForUpdate = false
	profile.PendingUpdateRequest = nil

	profile.Notifications = append(profile.Notifications, model.Notification{
		ID:        uuid.New(),
		Type:      "rejection",
		Message:   message,
		Read:      false,
		CreatedAt: time.Now(),
	})

	if err := db.Save(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// PendingProfiles: antrian review admin (locked & belum registered).
func PendingProfiles(db *gorm.DB) ([]model.StudentProfileModel, error) {
	var profiles []model.StudentProfileModel
	if err := db.
		Where("locked_for_update = ? AND is_registered = ?", true, false).
		Order("updated_at ASC").
		Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

/* ==========================
   NOTIFICATIONS
========================== */

// MarkNotificationsRead set read=true untuk id yang disebut. ID yang bukan
// milik profil user di-skip diam-diam (no-op).
func MarkNotificationsRead(db *gorm.DB, userID uuid.UUID, ids []uuid.UUID) error {
	idSet := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		idSet[id] = struct{}{}
	}

	var profiles []model.StudentProfileModel
	if err := db.Where("user_id = ?", userID).Find(&profiles).Error; err != nil {
		return err
	}

	for i := range profiles {
		changed := false
		notifs := profiles[i].Notifications
		for j := range notifs {
			if _, ok := idSet[notifs[j].ID]; ok && !notifs[j].Read {
				notifs[j].Read = true
				changed = true
			}
		}
		if changed {
			profiles[i].Notifications = notifs
			if err := db.Save(&profiles[i]).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

/* ==========================
   MY SESSIONS
========================== */

// MySessions: daftar session yang punya profil milik user. Profil untuk
// session aktif dipastikan ada lebih dulu (entry point resolve/clone).
func MySessions(db *gorm.DB, userID uuid.UUID) ([]sessionModel.SessionModel, error) {
	var active sessionModel.SessionModel
	if err := db.Where("is_active = ?", true).First(&active).Error; err == nil {
		if _, err := ResolveProfile(db, userID, active.ID); err != nil {
			return nil, err
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var profiles []model.StudentProfileModel
	if err := db.Select("session_id").Where("user_id = ?", userID).Find(&profiles).Error; err != nil {
		return nil, err
	}

	sessionIDs := make([]uuid.UUID, 0, len(profiles))
	for _, p := range profiles {
		if p.SessionID != nil {
			sessionIDs = append(sessionIDs, *p.SessionID)
		}
	}
	if len(sessionIDs) == 0 {
		return []sessionModel.SessionModel{}, nil
	}

	var sessions []sessionModel.SessionModel
	if err := db.Where("id IN ?", sessionIDs).Order("created_at DESC").Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}
