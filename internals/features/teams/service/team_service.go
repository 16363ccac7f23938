// file: internals/features/teams/service/team_service.go
package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	sessionService "sportku_backend/internals/features/sessions/service"
	"sportku_backend/internals/features/teams/dto"
	"sportku_backend/internals/features/teams/model"
	userModel "sportku_backend/internals/features/users/user/model"
	"sportku_backend/internals/helpers/errs"
)

/* ==========================
   CAPTAIN PROFILE
========================== */

// CaptainForUser ambil record kapten milik user untuk session tsb.
func CaptainForUser(db *gorm.DB, userID, sessionID uuid.UUID) (*model.CaptainModel, error) {
	var user userModel.UserModel
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user tidak ditemukan", errs.ErrNotFound)
		}
		return nil, err
	}
	if user.CaptainID == nil || *user.CaptainID == "" {
		return nil, fmt.Errorf("%w: user ini bukan kapten", errs.ErrForbidden)
	}

	var captain model.CaptainModel
	err := db.Where("captain_id = ? AND session_id = ?", *user.CaptainID, sessionID).First(&captain).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: profil kapten untuk session ini tidak ditemukan", errs.ErrNotFound)
		}
		return nil, err
	}
	return &captain, nil
}

// CompleteCaptainProfile lengkapi nomor HP (dan opsional team name/branch)
// di login pertama kapten.
func CompleteCaptainProfile(db *gorm.DB, userID, sessionID uuid.UUID, req *dto.CompleteCaptainProfileRequest) (*model.CaptainModel, error) {
	captain, err := CaptainForUser(db, userID, sessionID)
	if err != nil {
		return nil, err
	}

	captain.Phone = req.Phone
	if req.TeamName != "" {
		captain.TeamName = req.TeamName
	}
	if req.Branch != "" {
		captain.Branch = req.Branch
	}

	if err := db.Save(captain).Error; err != nil {
		return nil, err
	}
	return captain, nil
}

// NextCaptainID bikin id CAPT<tahun>-<urut 3 digit> berdasarkan jumlah
// kapten yang sudah ada di tahun tsb.
func NextCaptainID(db *gorm.DB, year int) (string, error) {
	prefix := fmt.Sprintf("CAPT%d-", year)
	var count int64
	if err := db.Model(&model.CaptainModel{}).
		Where("captain_id LIKE ?", prefix+"%").
		Count(&count).Error; err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%03d", prefix, count+1), nil
}

/* ==========================
   ROSTER (team)
========================== */

// GetTeam roster kapten untuk session ini. (nil, nil) = belum pernah dibuat
// (sentinel first-time) — roster TIDAK dibuat otomatis, beda dengan profil.
func GetTeam(db *gorm.DB, captainID string, sessionID uuid.UUID) (*model.TeamModel, error) {
	var team model.TeamModel
	err := db.Where("captain_id = ? AND session_id = ?", captainID, sessionID).First(&team).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &team, nil
}

// CreateTeam buat roster pertama (status pending).
// Guard: session harus aktif, belum ada roster, nomor HP kapten sudah diisi.
func CreateTeam(db *gorm.DB, userID, sessionID uuid.UUID, req *dto.CreateTeamRequest) (*model.TeamModel, error) {
	active, err := sessionService.IsActiveSession(db, sessionID)
	if err != nil {
		return nil, err
	}
	if !active {
		return nil, fmt.Errorf("%w: pendaftaran tim hanya untuk session aktif", errs.ErrInactiveSession)
	}

	captain, err := CaptainForUser(db, userID, sessionID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(captain.Phone) == "" {
		return nil, fmt.Errorf("%w: lengkapi nomor HP kapten dulu", errs.ErrIncompleteProfile)
	}

	existing, err := GetTeam(db, captain.CaptainID, sessionID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: roster untuk session ini sudah ada", errs.ErrDuplicate)
	}

	members := make([]model.TeamMember, 0, len(req.Members))
	for i := range req.Members {
		members = append(members, req.Members[i].ToModel())
	}
	if len(members) > captain.TeamMemberCount {
		return nil, fmt.Errorf("%w: jumlah anggota melebihi kuota %d", errs.ErrCapacity, captain.TeamMemberCount)
	}

	sid := sessionID
	team := &model.TeamModel{
		CaptainID: captain.CaptainID,
		SessionID: &sid,
		TeamName:  firstNonEmpty(req.TeamName, captain.TeamName),
		Sport:     firstNonEmpty(req.Sport, captain.Sport),
		Members:   members,
		Status:    model.TeamStatusPending,
	}
	if err := db.Create(team).Error; err != nil {
		if low := strings.ToLower(err.Error()); strings.Contains(low, "duplicate") || strings.Contains(low, "unique") {
			return nil, fmt.Errorf("%w: roster untuk session ini sudah ada", errs.ErrDuplicate)
		}
		return nil, err
	}
	return team, nil
}

// AddMember tambah satu anggota. Roster dibuat dulu kalau belum ada.
// Guard kapasitas terhadap kuota team_member_count kapten.
func AddMember(db *gorm.DB, userID, sessionID uuid.UUID, member *dto.MemberInput) (*model.TeamModel, error) {
	active, err := sessionService.IsActiveSession(db, sessionID)
	if err != nil {
		return nil, err
	}
	if !active {
		return nil, fmt.Errorf("%w: pendaftaran tim hanya untuk session aktif", errs.ErrInactiveSession)
	}

	if strings.TrimSpace(member.Name) == "" || strings.TrimSpace(member.Email) == "" {
		return nil, fmt.Errorf("%w: nama dan email anggota wajib diisi", errs.ErrValidation)
	}

	captain, err := CaptainForUser(db, userID, sessionID)
	if err != nil {
		return nil, err
	}

	team, err := GetTeam(db, captain.CaptainID, sessionID)
	if err != nil {
		return nil, err
	}
	if team == nil {
		sid := sessionID
		team = &model.TeamModel{
			CaptainID: captain.CaptainID,
			SessionID: &sid,
			TeamName:  captain.TeamName,
			Sport:     captain.Sport,
			Members:   []model.TeamMember{},
			Status:    model.TeamStatusPending,
		}
		if err := db.Create(team).Error; err != nil {
			return nil, err
		}
	}

	if team.Status != model.TeamStatusPending {
		return nil, fmt.Errorf("%w: roster sudah %s, tidak bisa diubah", errs.ErrState, team.Status)
	}
	if len(team.Members)+1 > captain.TeamMemberCount {
		return nil, fmt.Errorf("%w: kuota anggota (%d) sudah penuh", errs.ErrCapacity, captain.TeamMemberCount)
	}

	team.Members = append(team.Members, member.ToModel())
	if err := db.Save(team).Error; err != nil {
		return nil, err
	}
	return team, nil
}

// UpdateTeam ganti roster — hanya saat session aktif dan status pending.
func UpdateTeam(db *gorm.DB, userID, sessionID uuid.UUID, req *dto.UpdateTeamRequest) (*model.TeamModel, error) {
	captain, team, err := mutableTeam(db, userID, sessionID)
	if err != nil {
		return nil, err
	}

	members := make([]model.TeamMember, 0, len(req.Members))
	for i := range req.Members {
		members = append(members, req.Members[i].ToModel())
	}
	if len(members) > captain.TeamMemberCount {
		return nil, fmt.Errorf("%w: jumlah anggota melebihi kuota %d", errs.ErrCapacity, captain.TeamMemberCount)
	}

	team.Members = members
	if req.TeamName != nil {
		team.TeamName = *req.TeamName
	}
	if err := db.Save(team).Error; err != nil {
		return nil, err
	}
	return team, nil
}

// DeleteTeam hapus roster — hanya saat session aktif dan status pending.
func DeleteTeam(db *gorm.DB, userID, sessionID uuid.UUID) error {
	_, team, err := mutableTeam(db, userID, sessionID)
	if err != nil {
		return err
	}
	return db.Delete(team).Error
}

// mutableTeam guard bersama update/delete: session aktif + roster pending.
func mutableTeam(db *gorm.DB, userID, sessionID uuid.UUID) (*model.CaptainModel, *model.TeamModel, error) {
	active, err := sessionService.IsActiveSession(db, sessionID)
	if err != nil {
		return nil, nil, err
	}
	if !active {
		return nil, nil, fmt.Errorf("%w: roster hanya bisa diubah di session aktif", errs.ErrInactiveSession)
	}

	captain, err := CaptainForUser(db, userID, sessionID)
	if err != nil {
		return nil, nil, err
	}

	team, err := GetTeam(db, captain.CaptainID, sessionID)
	if err != nil {
		return nil, nil, err
	}
	if team == nil {
		return nil, nil, fmt.Errorf("%w: roster belum dibuat", errs.ErrNotFound)
	}
	if team.Status != model.TeamStatusPending {
		return nil, nil, fmt.Errorf("%w: roster sudah %s, tidak bisa diubah", errs.ErrState, team.Status)
	}
	return captain, team, nil
}

/* ==========================
   ADMIN
========================== */

// SetTeamStatus keputusan admin: approved / rejected (terminal dalam session).
func SetTeamStatus(db *gorm.DB, teamID uuid.UUID, status string) (*model.TeamModel, error) {
	if !model.IsValidTeamStatus(status) {
		return nil, fmt.Errorf("%w: status harus approved atau rejected", errs.ErrValidation)
	}

	var team model.TeamModel
	if err := db.First(&team, "id = ?", teamID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: roster tidak ditemukan", errs.ErrNotFound)
		}
		return nil, err
	}

	team.Status = status
	if err := db.Save(&team).Error; err != nil {
		return nil, err
	}
	return &team, nil
}

// PendingTeams antrian review roster.
func PendingTeams(db *gorm.DB) ([]model.TeamModel, error) {
	var teams []model.TeamModel
	if err := db.Where("status = ?", model.TeamStatusPending).
		Order("updated_at ASC").
		Find(&teams).Error; err != nil {
		return nil, err
	}
	return teams, nil
}

// CaptainWithTeam untuk listing manajemen admin.
type CaptainWithTeam struct {
	Captain model.CaptainModel `json:"captain"`
	Team    *model.TeamModel   `json:"team,omitempty"`
}

// CaptainsWithTeams daftar kapten (opsional difilter session) plus rosternya.
func CaptainsWithTeams(db *gorm.DB, sessionID *uuid.UUID) ([]CaptainWithTeam, error) {
	q := db.Model(&model.CaptainModel{}).Order("created_at DESC")
	if sessionID != nil {
		q = q.Where("session_id = ?", *sessionID)
	}

	var captains []model.CaptainModel
	if err := q.Find(&captains).Error; err != nil {
		return nil, err
	}

	out := make([]CaptainWithTeam, 0, len(captains))
	for i := range captains {
		entry := CaptainWithTeam{Captain: captains[i]}
		if captains[i].SessionID != nil {
			team, err := GetTeam(db, captains[i].CaptainID, *captains[i].SessionID)
			if err != nil {
				return nil, err
			}
			entry.Team = team
		}
		out = append(out, entry)
	}
	return out, nil
}

// UpdateCaptain patch admin (posisi, kuota, dsb).
func UpdateCaptain(db *gorm.DB, captainRecordID uuid.UUID, req *dto.UpdateCaptainRequest) (*model.CaptainModel, error) {
	var captain model.CaptainModel
	if err := db.First(&captain, "id = ?", captainRecordID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: kapten tidak ditemukan", errs.ErrNotFound)
		}
		return nil, err
	}

	if req.Name != nil {
		captain.Name = *req.Name
	}
	if req.Phone != nil {
		captain.Phone = *req.Phone
	}
	if req.Sport != nil {
		captain.Sport = *req.Sport
	}
	if req.TeamName != nil {
		captain.TeamName = *req.TeamName
	}
	if req.Position != nil {
		captain.Position = *req.Position
	}
	if req.TeamMemberCount != nil {
		captain.TeamMemberCount = *req.TeamMemberCount
	}

	if err := db.Save(&captain).Error; err != nil {
		return nil, err
	}
	return &captain, nil
}

// DeleteCaptain hapus record kapten beserta rosternya di session tsb.
func DeleteCaptain(db *gorm.DB, captainRecordID uuid.UUID) error {
	var captain model.CaptainModel
	if err := db.First(&captain, "id = ?", captainRecordID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: kapten tidak ditemukan", errs.ErrNotFound)
		}
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if captain.SessionID != nil {
			if err := tx.Where("captain_id = ? AND session_id = ?", captain.CaptainID, *captain.SessionID).
				Delete(&model.TeamModel{}).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&captain).Error
	})
}

// RemoveMemberAt hapus anggota roster berdasarkan index (admin).
func RemoveMemberAt(db *gorm.DB, teamID uuid.UUID, index int) (*model.TeamModel, error) {
	var team model.TeamModel
	if err := db.First(&team, "id = ?", teamID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: roster tidak ditemukan", errs.ErrNotFound)
		}
		return nil, err
	}
	if index < 0 || index >= len(team.Members) {
		return nil, fmt.Errorf("%w: index anggota di luar jangkauan", errs.ErrValidation)
	}

	team.Members = append(team.Members[:index], team.Members[index+1:]...)
	if err := db.Save(&team).Error; err != nil {
		return nil, err
	}
	return &team, nil
}

func firstNonEmpty(a, b string) string {
	if strings.TrimSpace(a) != "" {
		return a
	}
	return b
}
