package user

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
)

type Repository interface {
	WithContext(ctx context.Context) Repository
	Create(u *User) error
	GetByID(id uint) (*User, error)
	GetByLoginIdentifier(identifier string) (*User, error)
	Exists(email, username, phone string) (bool, error)
	SetAccountStatus(id uint, status AccountStatus) error
	ResetVerification(ctx context.Context, userID uint) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithContext(ctx context.Context) Repository {
	return &repository{db: r.db.WithContext(ctx)}
}

func (r *repository) Create(u *User) error {
	return r.db.Create(u).Error
}

func (r *repository) GetByID(id uint) (*User, error) {
	var u User
	if err := r.db.First(&u, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

// GetByLoginIdentifier looks a user up by email or username.
func (r *repository) GetByLoginIdentifier(identifier string) (*User, error) {
	var u User
	ident := strings.TrimSpace(identifier)
	err := r.db.Where("email = ? OR username = ?", strings.ToLower(ident), ident).First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *repository) Exists(email, username, phone string) (bool, error) {
	var count int64
	err := r.db.Model(&User{}).
		Where("email = ? OR username = ? OR phone = ?", strings.ToLower(email), username, phone).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) SetAccountStatus(id uint, status AccountStatus) error {
	return r.db.Model(&User{}).Where("id = ?", id).Update("account_status", status).Error
}

// ResetVerification moves a VERIFIED account back to UNVERIFIED. Other
// statuses are left alone so a disabled account stays disabled.
func (r *repository) ResetVerification(ctx context.Context, userID uint) error {
	return r.db.WithContext(ctx).Model(&User{}).
		Where("id = ? AND account_status = ?", userID, AccountVerified).
		Update("account_status", AccountUnverified).Error
}
