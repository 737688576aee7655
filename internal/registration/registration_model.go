package registration

import (
	"time"

	"github.com/DhavalSuthar-24/squadhub/internal/models"
	"gorm.io/gorm"
)

// Status is the state of a squad's registration in a tournament.
type Status string

const (
	StatusRequested    Status = "REQUESTED"
	StatusApproved     Status = "APPROVED"
	StatusRejected     Status = "REJECTED"
	StatusDisqualified Status = "DISQUALIFIED"
)

var statusTransitions = map[Status][]Status{
	StatusRequested: {StatusApproved, StatusRejected},
	StatusApproved:  {StatusDisqualified},
}

func (s Status) Valid() bool {
	switch s {
	case StatusRequested, StatusApproved, StatusRejected, StatusDisqualified:
		return true
	}
	return false
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// HoldsSlots reports whether roster players of a registration in this
// status are reserved for the tournament.
func (s Status) HoldsSlots() bool {
	return s == StatusRequested || s == StatusApproved
}

// Registration ties one squad to one tournament. The roster is locked on
// creation and never edited afterwards.
type Registration struct {
	gorm.Model
	TournamentID   uint   `gorm:"not null;uniqueIndex:idx_registrations_tournament_squad" json:"tournament_id"`
	SquadID        uint   `gorm:"not null;index;uniqueIndex:idx_registrations_tournament_squad" json:"squad_id"`
	RegisteredByID uint   `gorm:"not null" json:"registered_by_id"`
	Status         Status `gorm:"type:varchar(20);not null;default:'REQUESTED';index" json:"status"`
	IsRosterLocked bool   `gorm:"not null" json:"is_roster_locked"`

	RejectionReason string     `json:"rejection_reason,omitempty"`
	RejectedByID    *uint      `json:"rejected_by_id,omitempty"`
	RejectedAt      *time.Time `json:"rejected_at,omitempty"`

	DisqualificationReason   string     `json:"disqualification_reason,omitempty"`
	DisqualificationProofURL string     `json:"disqualification_proof_url,omitempty"`
	DisqualifiedByID         *uint      `json:"disqualified_by_id,omitempty"`
	DisqualifiedAt           *time.Time `json:"disqualified_at,omitempty"`

	Roster []RosterEntry `gorm:"foreignKey:RegistrationID" json:"roster"`
}

func (Registration) TableName() string {
	return "tournament_registrations"
}

// RosterEntry is one player locked into a registration. HoldsSlot is true
// while the registration is REQUESTED or APPROVED, and the partial unique
// index keeps a player in at most one such roster per tournament.
type RosterEntry struct {
	ID             uint                 `gorm:"primarykey" json:"id"`
	RegistrationID uint                 `gorm:"not null;index" json:"registration_id"`
	TournamentID   uint                 `gorm:"not null;uniqueIndex:idx_roster_entries_slot,where:holds_slot = true" json:"tournament_id"`
	PlayerID       uint                 `gorm:"not null;index;uniqueIndex:idx_roster_entries_slot,where:holds_slot = true" json:"player_id"`
	PlaystyleRole  models.PlaystyleRole `gorm:"type:varchar(20);not null" json:"playstyle_role"`
	HoldsSlot      bool                 `gorm:"not null" json:"holds_slot"`
}

// --- DTOs ---

type RosterItem struct {
	PlayerID uint   `json:"player_id" binding:"required"`
	Role     string `json:"role" example:"SNIPER"`
}

type RegisterSquadRequest struct {
	Roster []RosterItem `json:"roster" binding:"dive"`
}

type RejectRequest struct {
	Reason string `json:"reason" binding:"omitempty,max=500"`
}

type DisqualifyRequest struct {
	Reason   string `json:"reason" binding:"required,max=500"`
	ProofURL string `json:"proof_url" binding:"omitempty,url"`
}

type ApproveAllResult struct {
	Approved int64 `json:"approved"`
}
