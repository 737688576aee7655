package player

import (
	"github.com/DhavalSuthar-24/squadhub/internal/models"
	"gorm.io/gorm"
)

// Status is the availability of a player. The squad workflow reads it to
// decide whether a leader can still answer leave requests.
type Status string

const (
	StatusActive    Status = "ACTIVE"
	StatusInactive  Status = "INACTIVE"
	StatusSuspended Status = "SUSPENDED"
	StatusFreeAgent Status = "FREE_AGENT"
)

func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusSuspended, StatusFreeAgent:
		return true
	}
	return false
}

// Profile is the gaming identity of a user. CurrentSquadID and
// PreviousSquads are owned by the squad workflow and never written here.
type Profile struct {
	gorm.Model
	UserID         uint                `gorm:"uniqueIndex;not null" json:"user_id"`
	State          string              `json:"state"`
	GameUID        string              `gorm:"index" json:"game_uid"`
	InGameName     string              `gorm:"index" json:"in_game_name"`
	ProfilePhoto   string              `json:"profile_photo"`
	Roles          models.StringSlice  `json:"roles"`
	CurrentSquadID *uint               `gorm:"index" json:"current_squad_id"`
	PreviousSquads models.SquadHistory `json:"previous_squads"`
	PlayerStatus   Status              `gorm:"type:varchar(20);not null;default:'ACTIVE'" json:"player_status"`
}

func (Profile) TableName() string {
	return "player_profiles"
}

// InSquad reports whether the player currently belongs to a squad.
func (p *Profile) InSquad() bool {
	return p.CurrentSquadID != nil
}

type CreateProfileRequest struct {
	State        string   `json:"state" example:"Maharashtra"`
	GameUID      string   `json:"game_uid" binding:"required,max=64" example:"5123456789"`
	InGameName   string   `json:"in_game_name" binding:"required,min=2,max=32" example:"ShadowAce"`
	ProfilePhoto string   `json:"profile_photo" binding:"omitempty,url"`
	Roles        []string `json:"roles" example:"SNIPER,PRIMARY"`
}

type UpdateProfileRequest struct {
	State        *string   `json:"state,omitempty"`
	GameUID      *string   `json:"game_uid,omitempty" binding:"omitempty,max=64"`
	InGameName   *string   `json:"in_game_name,omitempty" binding:"omitempty,min=2,max=32"`
	ProfilePhoto *string   `json:"profile_photo,omitempty" binding:"omitempty,url"`
	Roles        *[]string `json:"roles,omitempty"`
	PlayerStatus *string   `json:"player_status,omitempty" binding:"omitempty,oneof=ACTIVE INACTIVE FREE_AGENT"`
}

// SearchResult is a public row of the player search.
type SearchResult struct {
	UserID         uint               `json:"user_id"`
	Username       string             `json:"username"`
	InGameName     string             `json:"in_game_name"`
	Roles          models.StringSlice `json:"roles"`
	CurrentSquadID *uint              `json:"current_squad_id"`
	PlayerStatus   Status             `json:"player_status"`
}
