package squad

import (
	"context"
	"time"

	"github.com/DhavalSuthar-24/squadhub/internal/apperrors"
	"github.com/DhavalSuthar-24/squadhub/internal/database"
	"github.com/DhavalSuthar-24/squadhub/internal/models"
	"github.com/DhavalSuthar-24/squadhub/internal/player"
)

// An invite blocks a join request for the same pair and vice versa.
var requestConflicts = map[RequestKind]struct {
	opposing  RequestKind
	duplicate string
	blocked   string
}{
	KindInvite: {KindJoin, "Invite already pending for this player", "Player has already requested to join this squad"},
	KindJoin:   {KindInvite, "Join request already pending", "Squad has already invited you"},
}

// checkNewRequest guards invite and join request creation.
func checkNewRequest(repo Repository, sq *Squad, playerID uint, kind RequestKind) error {
	if sq.Status != StatusActive {
		return apperrors.InvalidState("Squad not active")
	}
	if sq.IsFull() {
		return apperrors.Conflict("Squad is full")
	}
	profile, err := repo.GetProfile(playerID)
	if err != nil {
		return err
	}
	if profile == nil {
		return apperrors.NotFound("Player profile not found")
	}
	if profile.InSquad() {
		return apperrors.Conflict("Player already in another squad")
	}

	rule := requestConflicts[kind]
	pending, err := repo.HasPending(kind, sq.ID, playerID)
	if err != nil {
		return err
	}
	if pending {
		return apperrors.Conflict(rule.duplicate)
	}
	opposing, err := repo.HasPending(rule.opposing, sq.ID, playerID)
	if err != nil {
		return err
	}
	if opposing {
		return apperrors.Conflict(rule.blocked)
	}
	return nil
}

// checkAdmission re-validates capacity and membership right before a
// player is added.
func checkAdmission(repo Repository, sq *Squad, playerID uint) (*player.Profile, error) {
	if sq.Status != StatusActive {
		return nil, apperrors.InvalidState("Squad not active")
	}
	if sq.IsFull() {
		return nil, apperrors.Conflict("Squad is full")
	}
	profile, err := repo.GetProfile(playerID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, apperrors.NotFound("Player profile not found")
	}
	if profile.InSquad() {
		return nil, apperrors.Conflict("Player already in another squad")
	}
	if sq.Member(playerID) != nil {
		return nil, apperrors.Conflict("Player already in squad")
	}
	return profile, nil
}

// admit seats the player. When the squad fills up, the remaining pending
// invites expire and pending join requests are rejected.
func admit(repo Repository, sq *Squad, profile *player.Profile, at time.Time) error {
	member := Member{
		SquadID:       sq.ID,
		PlayerID:      profile.UserID,
		PlaystyleRole: models.PreferredRole(profile.Roles),
		JoinedAt:      at,
	}
	if err := repo.AddMember(&member); err != nil {
		return err
	}
	if err := repo.AttachPlayer(profile, sq.ID); err != nil {
		return err
	}
	sq.Members = append(sq.Members, member)

	if sq.IsFull() {
		if _, err := repo.ResolvePending(KindInvite, sq.ID, nil, RequestExpired, at); err != nil {
			return err
		}
		if _, err := repo.ResolvePending(KindJoin, sq.ID, nil, RequestRejected, at); err != nil {
			return err
		}
	}
	return repo.SaveSquad(sq, nil)
}

// --- Invites ---

// SendInvite invites a player without a squad to the caller's squad.
func (s *Service) SendInvite(ctx context.Context, userID, playerID uint) (*Invite, error) {
	var invite *Invite
	err := s.inTx(ctx, "send_invite", func(repo Repository) error {
		sq, err := loadLedSquad(repo, userID, "Only IGL can send invites")
		if err != nil {
			return err
		}
		if playerID == userID {
			return apperrors.Validation("You cannot invite yourself")
		}
		if err := checkNewRequest(repo, sq, playerID, KindInvite); err != nil {
			return err
		}
		invite = &Invite{SquadID: sq.ID, PlayerID: playerID, InvitedByID: userID, Status: RequestPending}
		if err := repo.CreateInvite(invite); err != nil {
			return err
		}
		// Bumping the version makes a concurrent admission that fills the
		// squad conflict with this insert at any isolation level.
		return repo.SaveSquad(sq, nil)
	})
	if err != nil {
		return nil, err
	}
	return invite, nil
}

func loadInvite(repo Repository, inviteID uint) (*Invite, error) {
	inv, err := repo.GetInvite(inviteID)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, apperrors.NotFound("Invite not found")
	}
	return inv, nil
}

// AcceptInvite joins the addressed player to the inviting squad.
func (s *Service) AcceptInvite(ctx context.Context, userID, inviteID uint) (*Squad, error) {
	var squadID uint
	err := s.inTx(ctx, "accept_invite", func(repo Repository) error {
		inv, err := loadInvite(repo, inviteID)
		if err != nil {
			return err
		}
		if inv.PlayerID != userID {
			return apperrors.Forbidden("Invite is not addressed to you")
		}
		if err := CheckRequestTransition(KindInvite, inv.Status, RequestAccepted); err != nil {
			return err
		}
		sq, err := repo.GetSquad(inv.SquadID)
		if err != nil {
			return err
		}
		if sq == nil {
			return apperrors.NotFound("Squad not found")
		}
		profile, err := checkAdmission(repo, sq, userID)
		if err != nil {
			return err
		}

		now := s.now()
		if err := repo.ResolveRequest(KindInvite, inv.ID, RequestAccepted, now); err != nil {
			return err
		}
		squadID = sq.ID
		return admit(repo, sq, profile, now)
	})
	if err != nil {
		return nil, err
	}
	return s.GetSquad(ctx, squadID)
}

// RejectInvite is the addressed player declining. Join requests for the
// same pair are left alone: the opposing-kind guard keeps them from
// coexisting with a pending invite.
func (s *Service) RejectInvite(ctx context.Context, userID, inviteID uint) (*Invite, error) {
	return s.resolveInvite(ctx, "reject_invite", inviteID, RequestRejected, func(repo Repository, inv *Invite) error {
		if inv.PlayerID != userID {
			return apperrors.Forbidden("Invite is not addressed to you")
		}
		return nil
	})
}

// CancelInvite is the squad's IGL withdrawing an invite.
func (s *Service) CancelInvite(ctx context.Context, userID, inviteID uint) (*Invite, error) {
	return s.resolveInvite(ctx, "cancel_invite", inviteID, RequestCancelled, func(repo Repository, inv *Invite) error {
		return requireIGLOf(repo, inv.SquadID, userID, "Only IGL can cancel invites")
	})
}

func (s *Service) resolveInvite(ctx context.Context, op string, inviteID uint, to RequestStatus, authorize func(Repository, *Invite) error) (*Invite, error) {
	var resolved *Invite
	err := s.inTx(ctx, op, func(repo Repository) error {
		inv, err := loadInvite(repo, inviteID)
		if err != nil {
			return err
		}
		if err := authorize(repo, inv); err != nil {
			return err
		}
		if err := CheckRequestTransition(KindInvite, inv.Status, to); err != nil {
			return err
		}
		now := s.now()
		if err := repo.ResolveRequest(KindInvite, inv.ID, to, now); err != nil {
			return err
		}
		inv.Status, inv.ResolvedAt = to, &now
		resolved = inv
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resolved, nil
}

// requireIGLOf re-reads the squad and checks the caller leads it.
func requireIGLOf(repo Repository, squadID, userID uint, forbidden string) error {
	sq, err := repo.GetSquad(squadID)
	if err != nil {
		return err
	}
	if sq == nil {
		return apperrors.NotFound("Squad not found")
	}
	if m := sq.Member(userID); m == nil || !m.IsIGL {
		return apperrors.Forbidden(forbidden)
	}
	return nil
}

// --- Join requests ---

// SendJoinRequest asks to join a squad.
func (s *Service) SendJoinRequest(ctx context.Context, userID, squadID uint) (*JoinRequest, error) {
	var request *JoinRequest
	err := s.inTx(ctx, "send_join_request", func(repo Repository) error {
		sq, err := repo.GetSquad(squadID)
		if err != nil {
			return err
		}
		if sq == nil {
			return apperrors.NotFound("Squad not found")
		}
		if err := checkNewRequest(repo, sq, userID, KindJoin); err != nil {
			return err
		}
		request = &JoinRequest{SquadID: sq.ID, PlayerID: userID, Status: RequestPending}
		if err := repo.CreateJoinRequest(request); err != nil {
			return err
		}
		return repo.SaveSquad(sq, nil)
	})
	if err != nil {
		return nil, err
	}
	return request, nil
}

func loadJoinRequest(repo Repository, requestID uint) (*JoinRequest, error) {
	req, err := repo.GetJoinRequest(requestID)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, apperrors.NotFound("Join request not found")
	}
	return req, nil
}

// ApproveJoinRequest admits the requester into the caller's squad.
func (s *Service) ApproveJoinRequest(ctx context.Context, userID, requestID uint) (*Squad, error) {
	var squadID uint
	err := s.inTx(ctx, "approve_join_request", func(repo Repository) error {
		req, err := loadJoinRequest(repo, requestID)
		if err != nil {
			return err
		}
		sq, err := repo.GetSquad(req.SquadID)
		if err != nil {
			return err
		}
		if sq == nil {
			return apperrors.NotFound("Squad not found")
		}
		if m := sq.Member(userID); m == nil || !m.IsIGL {
			return apperrors.Forbidden("Only IGL can approve join requests")
		}
		if err := CheckRequestTransition(KindJoin, req.Status, RequestApproved); err != nil {
			return err
		}
		profile, err := checkAdmission(repo, sq, req.PlayerID)
		if err != nil {
			return err
		}

		now := s.now()
		if err := repo.ResolveRequest(KindJoin, req.ID, RequestApproved, now); err != nil {
			return err
		}
		squadID = sq.ID
		return admit(repo, sq, profile, now)
	})
	if err != nil {
		return nil, err
	}
	return s.GetSquad(ctx, squadID)
}

// RejectJoinRequest is the IGL declining a join request.
func (s *Service) RejectJoinRequest(ctx context.Context, userID, requestID uint) (*JoinRequest, error) {
	return s.resolveJoinRequest(ctx, "reject_join_request", requestID, RequestRejected, func(repo Repository, req *JoinRequest) error {
		return requireIGLOf(repo, req.SquadID, userID, "Only IGL can reject join requests")
	})
}

// CancelJoinRequest is the requester withdrawing.
func (s *Service) CancelJoinRequest(ctx context.Context, userID, requestID uint) (*JoinRequest, error) {
	return s.resolveJoinRequest(ctx, "cancel_join_request", requestID, RequestCancelled, func(_ Repository, req *JoinRequest) error {
		if req.PlayerID != userID {
			return apperrors.Forbidden("Only the requester can cancel this join request")
		}
		return nil
	})
}

func (s *Service) resolveJoinRequest(ctx context.Context, op string, requestID uint, to RequestStatus, authorize func(Repository, *JoinRequest) error) (*JoinRequest, error) {
	var resolved *JoinRequest
	err := s.inTx(ctx, op, func(repo Repository) error {
		req, err := loadJoinRequest(repo, requestID)
		if err != nil {
			return err
		}
		if err := authorize(repo, req); err != nil {
			return err
		}
		if err := CheckRequestTransition(KindJoin, req.Status, to); err != nil {
			return err
		}
		now := s.now()
		if err := repo.ResolveRequest(KindJoin, req.ID, to, now); err != nil {
			return err
		}
		req.Status, req.ResolvedAt = to, &now
		resolved = req
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resolved, nil
}

// --- Request listings ---

func (s *Service) ledSquadID(ctx context.Context, userID uint, forbidden string) (uint, error) {
	sq, err := loadLedSquad(s.repo.WithContext(ctx), userID, forbidden)
	if err != nil {
		return 0, database.FromDB(err, "Failed to load squad")
	}
	return sq.ID, nil
}

func (s *Service) ListSquadInvites(ctx context.Context, userID uint, status string, page, limit int) ([]Invite, int64, error) {
	st, err := ParseRequestStatus(status)
	if err != nil {
		return nil, 0, err
	}
	squadID, err := s.ledSquadID(ctx, userID, "Only IGL can view squad invites")
	if err != nil {
		return nil, 0, err
	}
	invites, total, err := s.repo.WithContext(ctx).ListInvites(squadID, 0, st, page, limit)
	if err != nil {
		return nil, 0, database.FromDB(err, "Failed to list invites")
	}
	return invites, total, nil
}

func (s *Service) ListSquadJoinRequests(ctx context.Context, userID uint, status string, page, limit int) ([]JoinRequest, int64, error) {
	st, err := ParseRequestStatus(status)
	if err != nil {
		return nil, 0, err
	}
	squadID, err := s.ledSquadID(ctx, userID, "Only IGL can view join requests")
	if err != nil {
		return nil, 0, err
	}
	requests, total, err := s.repo.WithContext(ctx).ListJoinRequests(squadID, 0, st, page, limit)
	if err != nil {
		return nil, 0, database.FromDB(err, "Failed to list join requests")
	}
	return requests, total, nil
}

func (s *Service) ListSquadLeaveRequests(ctx context.Context, userID uint, status string, page, limit int) ([]LeaveRequest, int64, error) {
	st, err := ParseRequestStatus(status)
	if err != nil {
		return nil, 0, err
	}
	squadID, err := s.ledSquadID(ctx, userID, "Only IGL can view leave requests")
	if err != nil {
		return nil, 0, err
	}
	requests, total, err := s.repo.WithContext(ctx).ListLeaveRequests(squadID, st, page, limit)
	if err != nil {
		return nil, 0, database.FromDB(err, "Failed to list leave requests")
	}
	return requests, total, nil
}

// ListMyInvites returns invites addressed to the caller.
func (s *Service) ListMyInvites(ctx context.Context, userID uint, status string, page, limit int) ([]Invite, int64, error) {
	st, err := ParseRequestStatus(status)
	if err != nil {
		return nil, 0, err
	}
	invites, total, err := s.repo.WithContext(ctx).ListInvites(0, userID, st, page, limit)
	if err != nil {
		return nil, 0, database.FromDB(err, "Failed to list invites")
	}
	return invites, total, nil
}

// ListMyJoinRequests returns join requests sent by the caller.
func (s *Service) ListMyJoinRequests(ctx context.Context, userID uint, status string, page, limit int) ([]JoinRequest, int64, error) {
	st, err := ParseRequestStatus(status)
	if err != nil {
		return nil, 0, err
	}
	requests, total, err := s.repo.WithContext(ctx).ListJoinRequests(0, userID, st, page, limit)
	if err != nil {
		return nil, 0, database.FromDB(err, "Failed to list join requests")
	}
	return requests, total, nil
}
