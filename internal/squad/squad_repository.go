package squad

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/DhavalSuthar-24/squadhub/internal/database"
	"github.com/DhavalSuthar-24/squadhub/internal/models"
	"github.com/DhavalSuthar-24/squadhub/internal/player"
	"gorm.io/gorm"
)

// Repository is the membership store. Inside WithTransaction every call goes
// through the transaction handle.
type Repository interface {
	WithContext(ctx context.Context) Repository
	WithTransaction(ctx context.Context, opts *sql.TxOptions, txFunc func(Repository) error) error

	// Player profiles
	GetProfile(userID uint) (*player.Profile, error)
	AttachPlayer(profile *player.Profile, squadID uint) error
	DetachPlayer(profile *player.Profile, entry models.SquadHistoryEntry) error

	// Squads
	CreateSquad(s *Squad) error
	GetSquad(id uint) (*Squad, error)
	GetSquadByName(name string) (*Squad, error)
	ListSquads(filter ListFilter, page, limit int) ([]Squad, int64, error)
	SaveSquad(s *Squad, updates map[string]interface{}) error

	// Members
	AddMember(m *Member) error
	RemoveMember(squadID, playerID uint) error
	RemoveAllMembers(squadID uint) error
	SetIGL(squadID, playerID uint, isIGL bool) error

	// Requests
	CreateInvite(inv *Invite) error
	GetInvite(id uint) (*Invite, error)
	CreateJoinRequest(req *JoinRequest) error
	GetJoinRequest(id uint) (*JoinRequest, error)
	CreateLeaveRequest(req *LeaveRequest) error
	GetLeaveRequest(id uint) (*LeaveRequest, error)
	HasPending(kind RequestKind, squadID, playerID uint) (bool, error)
	ResolveRequest(kind RequestKind, id uint, to RequestStatus, at time.Time) error
	ResolvePending(kind RequestKind, squadID uint, playerID *uint, to RequestStatus, at time.Time) (int64, error)

	ListInvites(squadID, playerID uint, status RequestStatus, page, limit int) ([]Invite, int64, error)
	ListJoinRequests(squadID, playerID uint, status RequestStatus, page, limit int) ([]JoinRequest, int64, error)
	ListLeaveRequests(squadID uint, status RequestStatus, page, limit int) ([]LeaveRequest, int64, error)
}

type squadRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &squadRepository{db: db}
}

func (r *squadRepository) WithContext(ctx context.Context) Repository {
	return &squadRepository{db: r.db.WithContext(ctx)}
}

func (r *squadRepository) WithTransaction(ctx context.Context, opts *sql.TxOptions, txFunc func(Repository) error) error {
	fn := func(tx *gorm.DB) error {
		return txFunc(&squadRepository{db: tx})
	}
	if opts != nil {
		return r.db.WithContext(ctx).Transaction(fn, opts)
	}
	return r.db.WithContext(ctx).Transaction(fn)
}

// --- Player profiles ---

func (r *squadRepository) GetProfile(userID uint) (*player.Profile, error) {
	var p player.Profile
	if err := r.db.Where("user_id = ?", userID).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// AttachPlayer sets the current squad, failing if another write got there first.
func (r *squadRepository) AttachPlayer(profile *player.Profile, squadID uint) error {
	res := r.db.Model(&player.Profile{}).
		Where("id = ? AND current_squad_id IS NULL", profile.ID).
		Update("current_squad_id", squadID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return database.ErrConcurrentUpdate
	}
	profile.CurrentSquadID = &squadID
	return nil
}

// DetachPlayer clears the current squad and appends the history entry.
func (r *squadRepository) DetachPlayer(profile *player.Profile, entry models.SquadHistoryEntry) error {
	history := append(models.SquadHistory{}, profile.PreviousSquads...)
	history = append(history, entry)
	err := r.db.Model(&player.Profile{}).Where("id = ?", profile.ID).Updates(map[string]interface{}{
		"current_squad_id": nil,
		"previous_squads":  history,
	}).Error
	if err != nil {
		return err
	}
	profile.CurrentSquadID = nil
	profile.PreviousSquads = history
	return nil
}

// --- Squads ---

func (r *squadRepository) CreateSquad(s *Squad) error {
	return r.db.Omit("Members").Create(s).Error
}

func (r *squadRepository) preloadMembers() *gorm.DB {
	return r.db.Preload("Members", func(db *gorm.DB) *gorm.DB {
		return db.Order("squad_members.id ASC")
	})
}

func (r *squadRepository) GetSquad(id uint) (*Squad, error) {
	var s Squad
	if err := r.preloadMembers().First(&s, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *squadRepository) GetSquadByName(name string) (*Squad, error) {
	var s Squad
	if err := r.db.Where("squad_name = ?", name).First(&s).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *squadRepository) ListSquads(filter ListFilter, page, limit int) ([]Squad, int64, error) {
	var squads []Squad
	var total int64

	query := r.db.Model(&Squad{})
	if search := strings.TrimSpace(filter.Search); search != "" {
		query = query.Where("LOWER(squad_name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}
	if filter.Game != "" {
		query = query.Where("game = ?", filter.Game)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	} else {
		query = query.Where("status <> ?", StatusDisbanded)
	}
	query = query.Session(&gorm.Session{})

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	err := query.Preload("Members", func(db *gorm.DB) *gorm.DB {
		return db.Order("squad_members.id ASC")
	}).Offset(offset).Limit(limit).Order("created_at desc").Find(&squads).Error
	if err != nil {
		return nil, 0, err
	}
	return squads, total, nil
}

// SaveSquad applies the updates and bumps the version in one conditional
// UPDATE. Zero affected rows means another transaction changed the squad
// after it was read.
func (r *squadRepository) SaveSquad(s *Squad, updates map[string]interface{}) error {
	values := map[string]interface{}{"version": gorm.Expr("version + 1")}
	for k, v := range updates {
		values[k] = v
	}
	res := r.db.Model(&Squad{}).Where("id = ? AND version = ?", s.ID, s.Version).Updates(values)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return database.ErrConcurrentUpdate
	}
	s.Version++
	return nil
}

// --- Members ---

func (r *squadRepository) AddMember(m *Member) error {
	return r.db.Create(m).Error
}

func (r *squadRepository) RemoveMember(squadID, playerID uint) error {
	res := r.db.Where("squad_id = ? AND player_id = ?", squadID, playerID).Delete(&Member{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return database.ErrConcurrentUpdate
	}
	return nil
}

func (r *squadRepository) RemoveAllMembers(squadID uint) error {
	return r.db.Where("squad_id = ?", squadID).Delete(&Member{}).Error
}

func (r *squadRepository) SetIGL(squadID, playerID uint, isIGL bool) error {
	res := r.db.Model(&Member{}).
		Where("squad_id = ? AND player_id = ?", squadID, playerID).
		Update("is_igl", isIGL)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return database.ErrConcurrentUpdate
	}
	return nil
}

// --- Requests ---

func requestModel(kind RequestKind) interface{} {
	switch kind {
	case KindInvite:
		return &Invite{}
	case KindJoin:
		return &JoinRequest{}
	default:
		return &LeaveRequest{}
	}
}

func (r *squadRepository) CreateInvite(inv *Invite) error {
	return r.db.Create(inv).Error
}

func (r *squadRepository) GetInvite(id uint) (*Invite, error) {
	var inv Invite
	if err := r.db.First(&inv, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &inv, nil
}

func (r *squadRepository) CreateJoinRequest(req *JoinRequest) error {
	return r.db.Create(req).Error
}

func (r *squadRepository) GetJoinRequest(id uint) (*JoinRequest, error) {
	var req JoinRequest
	if err := r.db.First(&req, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &req, nil
}

func (r *squadRepository) CreateLeaveRequest(req *LeaveRequest) error {
	return r.db.Create(req).Error
}

func (r *squadRepository) GetLeaveRequest(id uint) (*LeaveRequest, error) {
	var req LeaveRequest
	if err := r.db.First(&req, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &req, nil
}

func (r *squadRepository) HasPending(kind RequestKind, squadID, playerID uint) (bool, error) {
	var count int64
	err := r.db.Model(requestModel(kind)).
		Where("squad_id = ? AND player_id = ? AND status = ?", squadID, playerID, RequestPending).
		Count(&count).Error
	return count > 0, err
}

// ResolveRequest moves one PENDING record to a terminal status.
func (r *squadRepository) ResolveRequest(kind RequestKind, id uint, to RequestStatus, at time.Time) error {
	res := r.db.Model(requestModel(kind)).
		Where("id = ? AND status = ?", id, RequestPending).
		Updates(map[string]interface{}{"status": to, "resolved_at": at})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return database.ErrConcurrentUpdate
	}
	return nil
}

// ResolvePending moves every PENDING record of a squad, optionally only the
// one player's, to a terminal status and returns how many changed.
func (r *squadRepository) ResolvePending(kind RequestKind, squadID uint, playerID *uint, to RequestStatus, at time.Time) (int64, error) {
	query := r.db.Model(requestModel(kind)).Where("squad_id = ? AND status = ?", squadID, RequestPending)
	if playerID != nil {
		query = query.Where("player_id = ?", *playerID)
	}
	res := query.Updates(map[string]interface{}{"status": to, "resolved_at": at})
	return res.RowsAffected, res.Error
}

func (r *squadRepository) requestQuery(kind RequestKind, squadID, playerID uint, status RequestStatus) *gorm.DB {
	query := r.db.Model(requestModel(kind))
	if squadID != 0 {
		query = query.Where("squad_id = ?", squadID)
	}
	if playerID != 0 {
		query = query.Where("player_id = ?", playerID)
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}
	return query.Session(&gorm.Session{})
}

func (r *squadRepository) ListInvites(squadID, playerID uint, status RequestStatus, page, limit int) ([]Invite, int64, error) {
	var invites []Invite
	var total int64
	query := r.requestQuery(KindInvite, squadID, playerID, status)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	if err := query.Offset(offset).Limit(limit).Order("created_at desc").Find(&invites).Error; err != nil {
		return nil, 0, err
	}
	return invites, total, nil
}

func (r *squadRepository) ListJoinRequests(squadID, playerID uint, status RequestStatus, page, limit int) ([]JoinRequest, int64, error) {
	var requests []JoinRequest
	var total int64
	query := r.requestQuery(KindJoin, squadID, playerID, status)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	if err := query.Offset(offset).Limit(limit).Order("created_at desc").Find(&requests).Error; err != nil {
		return nil, 0, err
	}
	return requests, total, nil
}

func (r *squadRepository) ListLeaveRequests(squadID uint, status RequestStatus, page, limit int) ([]LeaveRequest, int64, error) {
	var requests []LeaveRequest
	var total int64
	query := r.requestQuery(KindLeave, squadID, 0, status)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	if err := query.Offset(offset).Limit(limit).Order("created_at desc").Find(&requests).Error; err != nil {
		return nil, 0, err
	}
	return requests, total, nil
}
