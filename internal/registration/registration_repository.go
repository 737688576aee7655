package registration

import (
	"context"
	"database/sql"
	"errors"

	"github.com/DhavalSuthar-24/squadhub/internal/database"
	"github.com/DhavalSuthar-24/squadhub/internal/squad"
	"github.com/DhavalSuthar-24/squadhub/internal/tournament"
	"gorm.io/gorm"
)

// Repository stores registrations. Squads and Tournaments expose the other
// stores bound to the same handle, so reads inside WithTransaction share
// the transaction.
type Repository interface {
	WithContext(ctx context.Context) Repository
	WithTransaction(ctx context.Context, opts *sql.TxOptions, txFunc func(Repository) error) error

	Squads() squad.Repository
	Tournaments() tournament.Repository

	Create(reg *Registration) error
	Get(id uint) (*Registration, error)
	GetBySquad(tournamentID, squadID uint) (*Registration, error)
	SlotHolders(tournamentID uint, playerIDs []uint) ([]uint, error)
	UpdateStatus(reg *Registration, to Status, audit map[string]interface{}) error
	ApproveAllRequested(tournamentID uint) (int64, error)
	List(tournamentID uint, status Status, page, limit int) ([]Registration, int64, error)
}

type registrationRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &registrationRepository{db: db}
}

func (r *registrationRepository) WithContext(ctx context.Context) Repository {
	return &registrationRepository{db: r.db.WithContext(ctx)}
}

func (r *registrationRepository) WithTransaction(ctx context.Context, opts *sql.TxOptions, txFunc func(Repository) error) error {
	fn := func(tx *gorm.DB) error {
		return txFunc(&registrationRepository{db: tx})
	}
	if opts != nil {
		return r.db.WithContext(ctx).Transaction(fn, opts)
	}
	return r.db.WithContext(ctx).Transaction(fn)
}

func (r *registrationRepository) Squads() squad.Repository {
	return squad.NewRepository(r.db)
}

func (r *registrationRepository) Tournaments() tournament.Repository {
	return tournament.NewRepository(r.db)
}

// Create inserts the registration and its roster entries.
func (r *registrationRepository) Create(reg *Registration) error {
	return r.db.Create(reg).Error
}

func (r *registrationRepository) withRoster() *gorm.DB {
	return r.db.Preload("Roster", func(db *gorm.DB) *gorm.DB {
		return db.Order("roster_entries.id ASC")
	})
}

func (r *registrationRepository) Get(id uint) (*Registration, error) {
	var reg Registration
	if err := r.withRoster().First(&reg, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &reg, nil
}

func (r *registrationRepository) GetBySquad(tournamentID, squadID uint) (*Registration, error) {
	var reg Registration
	err := r.db.Where("tournament_id = ? AND squad_id = ?", tournamentID, squadID).First(&reg).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &reg, nil
}

// SlotHolders returns which of the players already hold a roster slot in
// the tournament.
func (r *registrationRepository) SlotHolders(tournamentID uint, playerIDs []uint) ([]uint, error) {
	var taken []uint
	err := r.db.Model(&RosterEntry{}).
		Where("tournament_id = ? AND holds_slot = ? AND player_id IN ?", tournamentID, true, playerIDs).
		Distinct().Pluck("player_id", &taken).Error
	return taken, err
}

// UpdateStatus moves the registration from the status it was read with.
// Leaving REQUESTED or APPROVED frees the roster slots in the same call.
func (r *registrationRepository) UpdateStatus(reg *Registration, to Status, audit map[string]interface{}) error {
	values := map[string]interface{}{"status": to}
	for k, v := range audit {
		values[k] = v
	}
	res := r.db.Model(&Registration{}).Where("id = ? AND status = ?", reg.ID, reg.Status).Updates(values)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return database.ErrConcurrentUpdate
	}
	if reg.Status.HoldsSlots() && !to.HoldsSlots() {
		err := r.db.Model(&RosterEntry{}).
			Where("registration_id = ?", reg.ID).
			Update("holds_slot", false).Error
		if err != nil {
			return err
		}
	}
	reg.Status = to
	return nil
}

// ApproveAllRequested flips every REQUESTED registration of the tournament.
// Slots stay held, so no roster rows change.
func (r *registrationRepository) ApproveAllRequested(tournamentID uint) (int64, error) {
	res := r.db.Model(&Registration{}).
		Where("tournament_id = ? AND status = ?", tournamentID, StatusRequested).
		Update("status", StatusApproved)
	return res.RowsAffected, res.Error
}

func (r *registrationRepository) List(tournamentID uint, status Status, page, limit int) ([]Registration, int64, error) {
	var regs []Registration
	var total int64

	query := r.db.Model(&Registration{}).Where("tournament_id = ?", tournamentID)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	query = query.Session(&gorm.Session{})

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	err := query.Preload("Roster", func(db *gorm.DB) *gorm.DB {
		return db.Order("roster_entries.id ASC")
	}).Offset(offset).Limit(limit).Order("created_at asc").Find(&regs).Error
	if err != nil {
		return nil, 0, err
	}
	return regs, total, nil
}
