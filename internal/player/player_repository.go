package player

import (
	"context"
	"errors"
	"strings"

	"github.com/DhavalSuthar-24/squadhub/internal/user"
	"gorm.io/gorm"
)

// VerifierFactory binds a VerificationResetter to a database handle, so the
// reset commits or rolls back with the profile update.
type VerifierFactory func(db *gorm.DB) VerificationResetter

// UserVerifier resets verification on the users table.
func UserVerifier(db *gorm.DB) VerificationResetter {
	return user.NewRepository(db)
}

type Repository interface {
	WithContext(ctx context.Context) Repository
	WithTransaction(ctx context.Context, txFunc func(Repository) error) error
	// Verifier is nil when no reset hook is configured.
	Verifier() VerificationResetter
	Create(p *Profile) error
	GetByUserID(userID uint) (*Profile, error)
	UpdateFields(p *Profile, fields map[string]interface{}) error
	Search(query string, freeAgentsOnly bool, page, limit int) ([]SearchResult, int64, error)
}

type repository struct {
	db       *gorm.DB
	verifier VerifierFactory
}

func NewRepository(db *gorm.DB, verifier VerifierFactory) Repository {
	return &repository{db: db, verifier: verifier}
}

func (r *repository) WithContext(ctx context.Context) Repository {
	return &repository{db: r.db.WithContext(ctx), verifier: r.verifier}
}

func (r *repository) WithTransaction(ctx context.Context, txFunc func(Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return txFunc(&repository{db: tx, verifier: r.verifier})
	})
}

func (r *repository) Verifier() VerificationResetter {
	if r.verifier == nil {
		return nil
	}
	return r.verifier(r.db)
}

func (r *repository) Create(p *Profile) error {
	return r.db.Create(p).Error
}

func (r *repository) GetByUserID(userID uint) (*Profile, error) {
	var p Profile
	if err := r.db.Where("user_id = ?", userID).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// UpdateFields writes only the named columns and reloads the profile.
func (r *repository) UpdateFields(p *Profile, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	if err := r.db.Model(&Profile{}).Where("id = ?", p.ID).Updates(fields).Error; err != nil {
		return err
	}
	return r.db.First(p, p.ID).Error
}

func (r *repository) Search(query string, freeAgentsOnly bool, page, limit int) ([]SearchResult, int64, error) {
	var results []SearchResult
	var total int64

	q := r.db.Table("player_profiles").
		Joins("JOIN users ON users.id = player_profiles.user_id AND users.deleted_at IS NULL").
		Where("player_profiles.deleted_at IS NULL")

	if query = strings.TrimSpace(query); query != "" {
		pattern := "%" + strings.ToLower(query) + "%"
		q = q.Where("LOWER(users.username) LIKE ? OR LOWER(player_profiles.in_game_name) LIKE ?", pattern, pattern)
	}
	if freeAgentsOnly {
		q = q.Where("player_profiles.current_squad_id IS NULL")
	}
	q = q.Session(&gorm.Session{})

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	err := q.Select("player_profiles.user_id, users.username, player_profiles.in_game_name, player_profiles.roles, player_profiles.current_squad_id, player_profiles.player_status").
		Order("player_profiles.in_game_name ASC").
		Offset(offset).Limit(limit).
		Scan(&results).Error
	if err != nil {
		return nil, 0, err
	}
	return results, total, nil
}
