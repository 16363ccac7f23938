// file: internals/features/admin/service/admin_service.go
package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	sessionService "sportku_backend/internals/features/sessions/service"
	profileModel "sportku_backend/internals/features/students/profile/model"
	teamModel "sportku_backend/internals/features/teams/model"
	teamService "sportku_backend/internals/features/teams/service"
	authHelper "sportku_backend/internals/features/users/auth/helper"
	userDTO "sportku_backend/internals/features/users/user/dto"
	userModel "sportku_backend/internals/features/users/user/model"
	"sportku_backend/internals/helpers/errs"
)

/* ==========================
   CREATE USER (provisioning)
========================== */

// CreateUser provisioning satu endpoint untuk semua role:
//   - user baru → buat User (password di-hash) + record role-specific
//     (Captain dengan id CAPT<tahun>-<urut>, atau StudentProfile di session).
//   - user lama role student → merge sports ke User + profil session
//     (tidak bikin akun dobel per sport, perilaku lama dipertahankan).
func CreateUser(db *gorm.DB, req *userDTO.CreateUserRequest) (*userModel.UserModel, error) {
	sessionID := req.SessionUUID()
	if sessionID == uuid.Nil {
		if active, err := sessionService.GetActive(db); err == nil {
			sessionID = active.ID
		} else if !errors.Is(err, errs.ErrNotFound) && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	var existing userModel.UserModel
	err := db.Where("email = ?", req.Email).First(&existing).Error
	if err == nil {
		return mergeExistingUser(db, &existing, req, sessionID)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if strings.TrimSpace(req.Password) == "" {
		return nil, fmt.Errorf("%w: password wajib diisi untuk user baru", errs.ErrValidation)
	}
	hashed, err := authHelper.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := userModel.UserModel{
		Name:            req.Name,
		Email:           req.Email,
		Password:        hashed,
		Role:            req.Role,
		Branch:          req.Branch,
		URN:             req.URN,
		Year:            req.Year,
		Sports:          req.Sports,
		TeamMemberCount: req.TeamMemberCount,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if user.Role == "captain" {
			captainID, err := teamService.NextCaptainID(tx, sessionYear(tx, sessionID))
			if err != nil {
				return err
			}
			user.CaptainID = &captainID
		}

		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		switch user.Role {
		case "captain":
			var sid *uuid.UUID
			if sessionID != uuid.Nil {
				s := sessionID
				sid = &s
			}
			sport := ""
			if len(req.Sports) > 0 {
				sport = req.Sports[0]
			}
			captain := teamModel.CaptainModel{
				UserID:          user.ID,
				CaptainID:       *user.CaptainID,
				SessionID:       sid,
				Name:            user.Name,
				Email:           user.Email,
				Branch:          user.Branch,
				Sport:           sport,
				TeamMemberCount: req.TeamMemberCount,
			}
			if err := tx.Create(&captain).Error; err != nil {
				return err
			}

		case "student":
			if sessionID != uuid.Nil {
				sid := sessionID
				profile := profileModel.StudentProfileModel{
					UserID:    user.ID,
					SessionID: &sid,
					Name:      user.Name,
					URN:       user.URN,
					Branch:    user.Branch,
					Year:      user.Year,
					Sports:    req.Sports,
					Positions: []profileModel.SportPosition{},
				}
				if err := tx.Create(&profile).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		if low := strings.ToLower(err.Error()); strings.Contains(low, "duplicate") || strings.Contains(low, "unique") {
			return nil, fmt.Errorf("%w: email atau URN sudah terdaftar", errs.ErrDuplicate)
		}
		return nil, err
	}
	return &user, nil
}

// mergeExistingUser: student yang sudah ada cukup di-merge sport barunya.
func mergeExistingUser(db *gorm.DB, user *userModel.UserModel, req *userDTO.CreateUserRequest, sessionID uuid.UUID) (*userModel.UserModel, error) {
	if user.Role != "student" || req.Role != "student" {
		return nil, fmt.Errorf("%w: email sudah terdaftar", errs.ErrDuplicate)
	}

	user.Sports = union(user.Sports, req.Sports)
	if err := db.Save(user).Error; err != nil {
		return nil, err
	}

	if sessionID != uuid.Nil {
		var profile profileModel.StudentProfileModel
		err := db.Where("user_id = ? AND session_id = ?", user.ID, sessionID).First(&profile).Error
		if err == nil {
			profile.Sports = union(profile.Sports, req.Sports)
			if err := db.Save(&profile).Error; err != nil {
				return nil, err
			}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}
	return user, nil
}

func sessionYear(db *gorm.DB, sessionID uuid.UUID) int {
	if sessionID != uuid.Nil {
		if s, err := sessionService.GetByID(db, sessionID); err == nil {
			return s.StartDate.Year()
		}
	}
	if active, err := sessionService.GetActive(db); err == nil {
		return active.StartDate.Year()
	}
	return 0
}

func union(existing []string, incoming []string) []string {
	seen := make(map[string]struct{}, len(existing)+len(incoming))
	out := make([]string, 0, len(existing)+len(incoming))
	for _, s := range append(append([]string{}, existing...), incoming...) {
		if s = strings.TrimSpace(s); s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

/* ==========================
   LISTING / EXPORT
========================== */

// ListUsers untuk listing admin, opsional filter role, paginated.
func ListUsers(db *gorm.DB, role string, offset, limit int) ([]userModel.UserModel, int64, error) {
	q := db.Model(&userModel.UserModel{})
	if role != "" {
		q = q.Where("role = ?", role)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []userModel.UserModel
	if err := q.Order("created_at DESC").Offset(offset).Limit(limit).Find(&users).Error; err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

// AllStudentProfiles export seluruh profil (opsional filter session/sport).
func AllStudentProfiles(db *gorm.DB, sessionID *uuid.UUID, sport string) ([]profileModel.StudentProfileModel, error) {
	q := db.Model(&profileModel.StudentProfileModel{}).Order("name ASC")
	if sessionID != nil {
		q = q.Where("session_id = ?", *sessionID)
	}
	var profiles []profileModel.StudentProfileModel
	if err := q.Find(&profiles).Error; err != nil {
		return nil, err
	}
	if sport == "" {
		return profiles, nil
	}

	// filter sport di memory — sports disimpan jsonb
	filtered := profiles[:0]
	for _, p := range profiles {
		for _, s := range p.Sports {
			if strings.EqualFold(s, sport) {
				filtered = append(filtered, p)
				break
			}
		}
	}
	return filtered, nil
}

// UniqueStudent satu baris export hasil merge lintas sumber.
type UniqueStudent struct {
	Name   string   `json:"name"`
	URN    string   `json:"urn"`
	Branch string   `json:"branch,omitempty"`
	Year   int      `json:"year,omitempty"`
	Email  string   `json:"email,omitempty"`
	Sports []string `json:"sports"`
	Source []string `json:"source"` // profile | roster | captain | gym-swim
}

// UniqueStudents merge student unik (key URN, fallback email) dari profil,
// anggota roster, kapten, dan daftar gym/renang.
func UniqueStudents(db *gorm.DB, sessionID *uuid.UUID) ([]UniqueStudent, error) {
	byKey := map[string]*UniqueStudent{}

	upsert := func(key, name, urn, branch string, year int, email, source string, sports ...string) {
		if key == "" {
			return
		}
		entry, ok := byKey[key]
		if !ok {
			entry = &UniqueStudent{Name: name, URN: urn, Branch: branch, Year: year, Email: email}
			byKey[key] = entry
		}
		if entry.Branch == "" {
			entry.Branch = branch
		}
		if entry.Email == "" {
			entry.Email = email
		}
		entry.Sports = union(entry.Sports, sports)
		entry.Source = union(entry.Source, []string{source})
	}

	keyOf := func(urn, email string) string {
		if urn != "" {
			return "urn:" + strings.ToLower(urn)
		}
		if email != "" {
			return "email:" + strings.ToLower(email)
		}
		return ""
	}

	profiles, err := AllStudentProfiles(db, sessionID, "")
	if err != nil {
		return nil, err
	}
	for _, p := range profiles {
		upsert(keyOf(p.URN, ""), p.Name, p.URN, p.Branch, p.Year, "", "profile", p.Sports...)
	}

	teamQ := db.Model(&teamModel.TeamModel{})
	if sessionID != nil {
		teamQ = teamQ.Where("session_id = ?", *sessionID)
	}
	var teams []teamModel.TeamModel
	if err := teamQ.Find(&teams).Error; err != nil {
		return nil, err
	}
	for _, t := range teams {
		for _, m := range t.Members {
			upsert(keyOf(m.URN, m.Email), m.Name, m.URN, m.Branch, m.Year, m.Email, "roster", m.Sport)
		}
	}

	capQ := db.Model(&teamModel.CaptainModel{})
	if sessionID != nil {
		capQ = capQ.Where("session_id = ?", *sessionID)
	}
	var captains []teamModel.CaptainModel
	if err := capQ.Find(&captains).Error; err != nil {
		return nil, err
	}
	for _, cp := range captains {
		upsert(keyOf("", cp.Email), cp.Name, "", cp.Branch, 0, cp.Email, "captain", cp.Sport)
	}

	var gymSwim []gymSwimRow
	gsQ := db.Table("gym_swim_students")
	if sessionID != nil {
		gsQ = gsQ.Where("session_id = ?", *sessionID)
	}
	if err := gsQ.Find(&gymSwim).Error; err != nil {
		return nil, err
	}
	for _, g := range gymSwim {
		upsert(keyOf(g.URN, g.Email), g.Name, g.URN, g.Branch, g.Year, g.Email, "gym-swim", g.Sport)
	}

	out := make([]UniqueStudent, 0, len(byKey))
	for _, v := range byKey {
		out = append(out, *v)
	}
	return out, nil
}

// gymSwimRow baca langsung dari tabel gym_swim_students tanpa import model
// (hindari siklus fitur; kolomnya stabil).
type gymSwimRow struct {
	Name   string `gorm:"column:name"`
	URN    string `gorm:"column:urn"`
	Branch string `gorm:"column:branch"`
	Year   int    `gorm:"column:year"`
	Email  string `gorm:"column:email"`
	Sport  string `gorm:"column:sport"`
}

/* ==========================
   HISTORY
========================== */

// StudentHistory riwayat satu student lintas session (by URN).
type StudentHistory struct {
	Profiles    []profileModel.StudentProfileModel `json:"profiles"`
	Captaincies []teamModel.CaptainModel           `json:"captaincies"`
	Memberships []MembershipRecord                 `json:"memberships"`
}

// MembershipRecord keanggotaan roster yang cocok dengan URN student.
type MembershipRecord struct {
	TeamID    uuid.UUID            `json:"team_id"`
	CaptainID string               `json:"captain_id"`
	SessionID *uuid.UUID           `json:"session_id,omitempty"`
	Status    string               `json:"status"`
	Member    teamModel.TeamMember `json:"member"`
}

// HistoryByURN kumpulkan profil + kekaptenan + keanggotaan roster.
func HistoryByURN(db *gorm.DB, urn string) (*StudentHistory, error) {
	urn = strings.TrimSpace(urn)
	if urn == "" {
		return nil, fmt.Errorf("%w: urn wajib diisi", errs.ErrValidation)
	}

	history := &StudentHistory{Memberships: []MembershipRecord{}}

	if err := db.Where("urn = ?", urn).Order("created_at DESC").
		Find(&history.Profiles).Error; err != nil {
		return nil, err
	}

	var users []userModel.UserModel
	if err := db.Where("urn = ? AND captain_id IS NOT NULL", urn).Find(&users).Error; err != nil {
		return nil, err
	}
	for _, u := range users {
		var caps []teamModel.CaptainModel
		if err := db.Where("captain_id = ?", *u.CaptainID).Find(&caps).Error; err != nil {
			return nil, err
		}
		history.Captaincies = append(history.Captaincies, caps...)
	}

	var teams []teamModel.TeamModel
	if err := db.Find(&teams).Error; err != nil {
		return nil, err
	}
	for _, t := range teams {
		for _, m := range t.Members {
			if strings.EqualFold(m.URN, urn) {
				history.Memberships = append(history.Memberships, MembershipRecord{
					TeamID:    t.ID,
					CaptainID: t.CaptainID,
					SessionID: t.SessionID,
					Status:    t.Status,
					Member:    m,
				})
			}
		}
	}

	if len(history.Profiles) == 0 && len(history.Captaincies) == 0 && len(history.Memberships) == 0 {
		return nil, fmt.Errorf("%w: tidak ada riwayat untuk URN %s", errs.ErrNotFound, urn)
	}
	return history, nil
}

/* ==========================
   POSITIONS
========================== */

// SetProfilePositions admin menetapkan posisi per sport di satu profil.
func SetProfilePositions(db *gorm.DB, profileID uuid.UUID, positions []profileModel.SportPosition) (*profileModel.StudentProfileModel, error) {
	var profile profileModel.StudentProfileModel
	if err := db.First(&profile, "id = ?", profileID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: profil tidak ditemukan", errs.ErrNotFound)
		}
		return nil, err
	}

	profile.Positions = positions
	if err := db.Save(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}
