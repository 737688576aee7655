package user

import "gorm.io/gorm"

// AccountStatus is the verification state of an account.
type AccountStatus string

const (
	AccountUnverified AccountStatus = "UNVERIFIED"
	AccountVerified   AccountStatus = "VERIFIED"
	AccountDisabled   AccountStatus = "DISABLED"
)

// Role is the platform-wide role of an account.
type Role string

const (
	RolePlayer    Role = "PLAYER"
	RoleOrganizer Role = "ORGANIZER"
	RoleAdmin     Role = "ADMIN"
)

func (r Role) Valid() bool {
	switch r {
	case RolePlayer, RoleOrganizer, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	gorm.Model
	Name          string        `json:"name"`
	Username      string        `gorm:"uniqueIndex;not null" json:"username"`
	Email         string        `gorm:"uniqueIndex;not null" json:"email"`
	Phone         string        `gorm:"uniqueIndex;not null" json:"phone"`
	Password      string        `json:"-"`
	AccountStatus AccountStatus `gorm:"type:varchar(20);not null;default:'UNVERIFIED'" json:"account_status"`
	Role          Role          `gorm:"type:varchar(20);not null;default:'PLAYER'" json:"role"`
}

// UserResponse is the public view of an account.
type UserResponse struct {
	ID            uint          `json:"id"`
	Name          string        `json:"name"`
	Username      string        `json:"username"`
	Email         string        `json:"email"`
	Phone         string        `json:"phone"`
	AccountStatus AccountStatus `json:"account_status"`
	Role          Role          `json:"role"`
}

func FilterUserRecord(u *User) UserResponse {
	return UserResponse{
		ID:            u.ID,
		Name:          u.Name,
		Username:      u.Username,
		Email:         u.Email,
		Phone:         u.Phone,
		AccountStatus: u.AccountStatus,
		Role:          u.Role,
	}
}
