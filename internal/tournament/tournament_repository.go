package tournament

import (
	"context"
	"database/sql"
	"errors"

	"github.com/DhavalSuthar-24/squadhub/internal/database"
	"github.com/DhavalSuthar-24/squadhub/internal/user"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	WithContext(ctx context.Context) Repository
	WithTransaction(ctx context.Context, opts *sql.TxOptions, txFunc func(Repository) error) error

	// Organizers
	CreateOrganizer(o *OrganizerProfile) error
	GetOrganizer(id uint) (*OrganizerProfile, error)
	GetOrganizerByOwner(ownerID uint) (*OrganizerProfile, error)
	SetOrganizerStatus(id uint, status OrganizerStatus) error
	SetUserRole(userID uint, role user.Role) error

	// Tournaments
	CreateTournament(t *Tournament) error
	GetTournament(id uint) (*Tournament, error)
	LockTournament(id uint) (*Tournament, error)
	ListByOrganizer(organizerID uint, page, limit int) ([]Tournament, int64, error)
	UpdateLifecycle(t *Tournament, to LifecycleStatus) error
}

type tournamentRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &tournamentRepository{db: db}
}

func (r *tournamentRepository) WithContext(ctx context.Context) Repository {
	return &tournamentRepository{db: r.db.WithContext(ctx)}
}

func (r *tournamentRepository) WithTransaction(ctx context.Context, opts *sql.TxOptions, txFunc func(Repository) error) error {
	fn := func(tx *gorm.DB) error {
		return txFunc(&tournamentRepository{db: tx})
	}
	if opts != nil {
		return r.db.WithContext(ctx).Transaction(fn, opts)
	}
	return r.db.WithContext(ctx).Transaction(fn)
}

func (r *tournamentRepository) CreateOrganizer(o *OrganizerProfile) error {
	return r.db.Create(o).Error
}

func (r *tournamentRepository) GetOrganizer(id uint) (*OrganizerProfile, error) {
	var o OrganizerProfile
	if err := r.db.First(&o, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &o, nil
}

func (r *tournamentRepository) GetOrganizerByOwner(ownerID uint) (*OrganizerProfile, error) {
	var o OrganizerProfile
	if err := r.db.Where("owner_id = ?", ownerID).First(&o).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &o, nil
}

func (r *tournamentRepository) SetOrganizerStatus(id uint, status OrganizerStatus) error {
	return r.db.Model(&OrganizerProfile{}).Where("id = ?", id).Update("status", status).Error
}

// SetUserRole never touches admin accounts.
func (r *tournamentRepository) SetUserRole(userID uint, role user.Role) error {
	return r.db.Model(&user.User{}).
		Where("id = ? AND role <> ?", userID, user.RoleAdmin).
		Update("role", role).Error
}

func (r *tournamentRepository) CreateTournament(t *Tournament) error {
	return r.db.Create(t).Error
}

func (r *tournamentRepository) GetTournament(id uint) (*Tournament, error) {
	var t Tournament
	if err := r.db.First(&t, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

// LockTournament reads the row with FOR UPDATE where the dialect supports it.
func (r *tournamentRepository) LockTournament(id uint) (*Tournament, error) {
	var t Tournament
	if err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&t, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *tournamentRepository) ListByOrganizer(organizerID uint, page, limit int) ([]Tournament, int64, error) {
	var tournaments []Tournament
	var total int64

	query := r.db.Model(&Tournament{}).Where("organizer_profile_id = ?", organizerID).Session(&gorm.Session{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	if err := query.Offset(offset).Limit(limit).Order("start_date desc").Find(&tournaments).Error; err != nil {
		return nil, 0, err
	}
	return tournaments, total, nil
}

// UpdateLifecycle moves the tournament only if its status is still the one
// that was read.
func (r *tournamentRepository) UpdateLifecycle(t *Tournament, to LifecycleStatus) error {
	res := r.db.Model(&Tournament{}).
		Where("id = ? AND lifecycle_status = ?", t.ID, t.LifecycleStatus).
		Update("lifecycle_status", to)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return database.ErrConcurrentUpdate
	}
	t.LifecycleStatus = to
	return nil
}
