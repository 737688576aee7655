// squad/squad_model.go
package squad

import (
	"time"

	"github.com/DhavalSuthar-24/squadhub/internal/models"
	"gorm.io/gorm"
)

// Squad is a team of players led by exactly one IGL while it has members.
type Squad struct {
	gorm.Model
	SquadName   string   `gorm:"uniqueIndex;not null" json:"squad_name"`
	Game        string   `gorm:"index;not null" json:"game"`
	Logo        string   `json:"logo"`
	LogoAssetID string   `json:"-"`
	Status      Status   `gorm:"type:varchar(20);not null;default:'ACTIVE';index" json:"status"`
	MinSize     int      `gorm:"not null" json:"min_size"`
	MaxSize     int      `gorm:"not null" json:"max_size"`
	CreatedByID uint     `gorm:"index" json:"created_by_id"`
	Version     int      `gorm:"not null;default:1" json:"version"`
	Members     []Member `gorm:"foreignKey:SquadID" json:"members"`
}

// Member is one seat in a squad. PlayerID is unique across all squads, and
// at most one row per squad has IsIGL set.
type Member struct {
	ID            uint                 `gorm:"primarykey" json:"id"`
	SquadID       uint                 `gorm:"not null;index;uniqueIndex:idx_squad_members_igl,where:is_igl = true" json:"squad_id"`
	PlayerID      uint                 `gorm:"not null;uniqueIndex" json:"player_id"`
	IsIGL         bool                 `gorm:"not null;default:false" json:"is_igl"`
	PlaystyleRole models.PlaystyleRole `gorm:"type:varchar(20);not null" json:"playstyle_role"`
	JoinedAt      time.Time            `json:"joined_at"`
}

func (Member) TableName() string {
	return "squad_members"
}

// Member returns the seat held by the player, or nil.
func (s *Squad) Member(playerID uint) *Member {
	for i := range s.Members {
		if s.Members[i].PlayerID == playerID {
			return &s.Members[i]
		}
	}
	return nil
}

// IGL returns the leader's seat, or nil for an empty squad.
func (s *Squad) IGL() *Member {
	for i := range s.Members {
		if s.Members[i].IsIGL {
			return &s.Members[i]
		}
	}
	return nil
}

func (s *Squad) IsFull() bool {
	return len(s.Members) >= s.MaxSize
}

// Invite is sent by an IGL to a player without a squad.
type Invite struct {
	gorm.Model
	SquadID     uint          `gorm:"not null;index;uniqueIndex:idx_squad_invites_pending,where:status = 'PENDING'" json:"squad_id"`
	PlayerID    uint          `gorm:"not null;index;uniqueIndex:idx_squad_invites_pending,where:status = 'PENDING'" json:"player_id"`
	InvitedByID uint          `json:"invited_by_id"`
	Status      RequestStatus `gorm:"type:varchar(20);not null;default:'PENDING'" json:"status"`
	ResolvedAt  *time.Time    `json:"resolved_at"`
}

func (Invite) TableName() string {
	return "squad_invites"
}

// JoinRequest is sent by a player without a squad to a squad's IGL.
type JoinRequest struct {
	gorm.Model
	SquadID    uint          `gorm:"not null;index;uniqueIndex:idx_join_requests_pending,where:status = 'PENDING'" json:"squad_id"`
	PlayerID   uint          `gorm:"not null;index;uniqueIndex:idx_join_requests_pending,where:status = 'PENDING'" json:"player_id"`
	Status     RequestStatus `gorm:"type:varchar(20);not null;default:'PENDING'" json:"status"`
	ResolvedAt *time.Time    `json:"resolved_at"`
}

// LeaveRequest is raised by a member when the IGL has to approve the exit.
type LeaveRequest struct {
	gorm.Model
	SquadID    uint          `gorm:"not null;index;uniqueIndex:idx_leave_requests_pending,where:status = 'PENDING'" json:"squad_id"`
	PlayerID   uint          `gorm:"not null;index;uniqueIndex:idx_leave_requests_pending,where:status = 'PENDING'" json:"player_id"`
	Status     RequestStatus `gorm:"type:varchar(20);not null;default:'PENDING'" json:"status"`
	ResolvedAt *time.Time    `json:"resolved_at"`
}

// LeaveOutcome tells the caller which branch RequestLeave took.
type LeaveOutcome string

const (
	LeaveDisbanded LeaveOutcome = "DISBANDED"
	LeaveLeft      LeaveOutcome = "LEFT"
	LeaveRequested LeaveOutcome = "REQUESTED"
)

type LeaveResult struct {
	Outcome LeaveOutcome  `json:"outcome"`
	SquadID uint          `json:"squad_id"`
	Request *LeaveRequest `json:"request,omitempty"`
}

// ListFilter narrows the public squad listing.
type ListFilter struct {
	Search string
	Game   string
	Status Status
}

// --- DTOs ---

type CreateSquadRequest struct {
	SquadName string `json:"squad_name" binding:"required,min=3,max=50" example:"Alpha"`
	Game      string `json:"game" binding:"required,max=50" example:"BGMI"`
	Role      string `json:"role" binding:"omitempty,oneof=PRIMARY SECONDARY SNIPER NADER primary secondary sniper nader" example:"PRIMARY"`
	MinSize   *int   `json:"min_size,omitempty" binding:"omitempty,gte=1"`
	MaxSize   *int   `json:"max_size,omitempty" binding:"omitempty,gte=1"`
}

type TransferIGLRequest struct {
	NewIGLID uint `json:"new_igl_id" binding:"required"`
}

type InviteRequest struct {
	PlayerID uint `json:"player_id" binding:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=ACTIVE INACTIVE"`
}
