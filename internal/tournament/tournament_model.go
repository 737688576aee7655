package tournament

import (
	"time"

	"gorm.io/gorm"
)

// OrganizerStatus is set by an admin. Only VERIFIED organizers may create
// tournaments.
type OrganizerStatus string

const (
	OrganizerUnverified OrganizerStatus = "UNVERIFIED"
	OrganizerVerified   OrganizerStatus = "VERIFIED"
	OrganizerSuspended  OrganizerStatus = "SUSPENDED"
)

func (s OrganizerStatus) Valid() bool {
	switch s {
	case OrganizerUnverified, OrganizerVerified, OrganizerSuspended:
		return true
	}
	return false
}

type OrganizerProfile struct {
	gorm.Model
	OwnerID      uint            `gorm:"uniqueIndex;not null" json:"owner_id"`
	Name         string          `gorm:"not null" json:"name"`
	Type         string          `gorm:"type:varchar(20);not null" json:"type"`
	ContactEmail string          `json:"contact_email"`
	ContactPhone string          `json:"contact_phone"`
	Status       OrganizerStatus `gorm:"type:varchar(20);not null;default:'UNVERIFIED'" json:"status"`
}

// Tournament holds the fields registration reads: lifecycle, eligibility
// and the owning organizer.
type Tournament struct {
	gorm.Model
	Name                  string          `gorm:"not null" json:"name"`
	Game                  string          `gorm:"index;not null" json:"game"`
	OrganizerProfileID    uint            `gorm:"index;not null" json:"organizer_profile_id"`
	CreatedByUserID       uint            `gorm:"index;not null" json:"created_by_user_id"`
	LifecycleStatus       LifecycleStatus `gorm:"type:varchar(30);not null;default:'DRAFT';index" json:"lifecycle_status"`
	MinSquadSize          int             `gorm:"not null" json:"min_squad_size"`
	MaxSquadSize          int             `gorm:"not null" json:"max_squad_size"`
	AllowedSubstitutes    int             `json:"allowed_substitutes"`
	Region                string          `json:"region"`
	RegistrationStartDate time.Time       `json:"registration_start_date"`
	RegistrationEndDate   time.Time       `json:"registration_end_date"`
	StartDate             time.Time       `json:"start_date"`
	EndDate               *time.Time      `json:"end_date"`
	ExternalCommsLink     string          `json:"external_comms_link"`
}

// --- DTOs ---

type CreateOrganizerRequest struct {
	Name         string `json:"name" binding:"required,min=2,max=100" example:"Dust2 Esports"`
	Type         string `json:"type" binding:"required,oneof=INDIVIDUAL ORGANIZATION" example:"ORGANIZATION"`
	ContactEmail string `json:"contact_email" binding:"omitempty,email"`
	ContactPhone string `json:"contact_phone" binding:"omitempty,max=20"`
}

type CreateTournamentRequest struct {
	Name                  string     `json:"name" binding:"required,min=3,max=100" example:"Monsoon Cup"`
	Game                  string     `json:"game" binding:"required,max=50" example:"BGMI"`
	MinSquadSize          *int       `json:"min_squad_size,omitempty" binding:"omitempty,gte=1"`
	MaxSquadSize          *int       `json:"max_squad_size,omitempty" binding:"omitempty,gte=1"`
	AllowedSubstitutes    int        `json:"allowed_substitutes" binding:"gte=0"`
	Region                string     `json:"region"`
	RegistrationStartDate time.Time  `json:"registration_start_date" binding:"required"`
	RegistrationEndDate   time.Time  `json:"registration_end_date" binding:"required"`
	StartDate             time.Time  `json:"start_date" binding:"required"`
	EndDate               *time.Time `json:"end_date,omitempty"`
	ExternalCommsLink     string     `json:"external_comms_link" binding:"omitempty,url"`
}

type TransitionRequest struct {
	Action string `json:"action" binding:"required" example:"open-registration"`
}

type UpdateOrganizerStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=UNVERIFIED VERIFIED SUSPENDED"`
}
