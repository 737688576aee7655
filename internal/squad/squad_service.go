package squad

import (
	"context"
	"database/sql"
	"log/slog"
	"strings"
	"time"

	"github.com/DhavalSuthar-24/squadhub/internal/apperrors"
	"github.com/DhavalSuthar-24/squadhub/internal/database"
	"github.com/DhavalSuthar-24/squadhub/internal/models"
	"github.com/DhavalSuthar-24/squadhub/internal/player"
	"github.com/DhavalSuthar-24/squadhub/internal/storage"
)

const logoCategory = "squad logos"

type Options struct {
	// TxOptions is used for every mutating transaction. nil keeps the
	// driver default.
	TxOptions      *sql.TxOptions
	DefaultMinSize int
	DefaultMaxSize int
	MaxCapacity    int
	Logger         *slog.Logger
}

// Service runs every membership change as one transaction: all
// preconditions are read inside it before the first write, and the squad
// version bump at the end rejects interleaved writers.
type Service struct {
	repo   Repository
	assets storage.AssetStore
	opts   Options
	logger *slog.Logger
	now    func() time.Time
}

func NewService(repo Repository, assets storage.AssetStore, opts Options) *Service {
	if opts.DefaultMinSize <= 0 {
		opts.DefaultMinSize = 4
	}
	if opts.DefaultMaxSize <= 0 {
		opts.DefaultMaxSize = 6
	}
	if opts.MaxCapacity < opts.DefaultMaxSize {
		opts.MaxCapacity = opts.DefaultMaxSize
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if assets == nil {
		assets = storage.Disabled{}
	}
	return &Service{
		repo:   repo,
		assets: assets,
		opts:   opts,
		logger: logger.With("component", "squad"),
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) inTx(ctx context.Context, op string, fn func(Repository) error) error {
	err := s.repo.WithTransaction(ctx, s.opts.TxOptions, fn)
	if err == nil {
		return nil
	}
	err = database.FromDB(err, "Failed to save squad changes")
	if database.ShouldWarn(err) {
		s.logger.Warn("transaction rejected", "op", op, "kind", apperrors.KindOf(err), "error", err)
	}
	return err
}

// loadCallerSquad resolves the caller's profile, squad and seat.
func loadCallerSquad(repo Repository, userID uint) (*player.Profile, *Squad, *Member, error) {
	profile, err := repo.GetProfile(userID)
	if err != nil {
		return nil, nil, nil, err
	}
	if profile == nil {
		return nil, nil, nil, apperrors.NotFound("Player profile not found")
	}
	if !profile.InSquad() {
		return nil, nil, nil, apperrors.NotFound("You are not in a squad")
	}
	sq, err := repo.GetSquad(*profile.CurrentSquadID)
	if err != nil {
		return nil, nil, nil, err
	}
	if sq == nil {
		return nil, nil, nil, apperrors.NotFound("Squad not found")
	}
	member := sq.Member(userID)
	if member == nil {
		return nil, nil, nil, apperrors.NotFound("You are not in a squad")
	}
	return profile, sq, member, nil
}

// loadLedSquad is loadCallerSquad for operations reserved to the IGL.
func loadLedSquad(repo Repository, userID uint, forbidden string) (*Squad, error) {
	_, sq, member, err := loadCallerSquad(repo, userID)
	if err != nil {
		return nil, err
	}
	if !member.IsIGL {
		return nil, apperrors.Forbidden(forbidden)
	}
	return sq, nil
}

func historyEntry(sq *Squad, at time.Time) models.SquadHistoryEntry {
	return models.SquadHistoryEntry{SquadID: sq.ID, SquadName: sq.SquadName, LeftAt: at}
}

// removeMember drops the seat, detaches the profile and cancels the
// player's own pending leave request.
func removeMember(repo Repository, sq *Squad, playerID uint, at time.Time) error {
	if err := repo.RemoveMember(sq.ID, playerID); err != nil {
		return err
	}
	profile, err := repo.GetProfile(playerID)
	if err != nil {
		return err
	}
	if profile != nil {
		if err := repo.DetachPlayer(profile, historyEntry(sq, at)); err != nil {
			return err
		}
	}
	pid := playerID
	if _, err := repo.ResolvePending(KindLeave, sq.ID, &pid, RequestCancelled, at); err != nil {
		return err
	}

	remaining := sq.Members[:0:0]
	for _, m := range sq.Members {
		if m.PlayerID != playerID {
			remaining = append(remaining, m)
		}
	}
	sq.Members = remaining
	return nil
}

// disband dissolves the squad. Callers check the status transition first.
func disband(repo Repository, sq *Squad, at time.Time) error {
	for _, m := range sq.Members {
		profile, err := repo.GetProfile(m.PlayerID)
		if err != nil {
			return err
		}
		if profile != nil {
			if err := repo.DetachPlayer(profile, historyEntry(sq, at)); err != nil {
				return err
			}
		}
	}
	if err := repo.RemoveAllMembers(sq.ID); err != nil {
		return err
	}
	if _, err := repo.ResolvePending(KindInvite, sq.ID, nil, RequestExpired, at); err != nil {
		return err
	}
	if _, err := repo.ResolvePending(KindJoin, sq.ID, nil, RequestRejected, at); err != nil {
		return err
	}
	if _, err := repo.ResolvePending(KindLeave, sq.ID, nil, RequestRejected, at); err != nil {
		return err
	}
	if err := repo.SaveSquad(sq, map[string]interface{}{"status": StatusDisbanded}); err != nil {
		return err
	}
	sq.Status = StatusDisbanded
	sq.Members = nil
	return nil
}

// CreateSquad makes the caller the sole IGL of a new squad.
func (s *Service) CreateSquad(ctx context.Context, userID uint, req CreateSquadRequest) (*Squad, error) {
	name := strings.TrimSpace(req.SquadName)
	game := strings.TrimSpace(req.Game)
	if name == "" {
		return nil, apperrors.Validation("Squad name is required")
	}
	if game == "" {
		return nil, apperrors.Validation("Game is required")
	}
	var role models.PlaystyleRole
	if req.Role != "" {
		r, ok := models.ParsePlaystyleRole(req.Role)
		if !ok {
			return nil, apperrors.Validation("Invalid playstyle role")
		}
		role = r
	}
	minSize, maxSize := s.opts.DefaultMinSize, s.opts.DefaultMaxSize
	if req.MinSize != nil {
		minSize = *req.MinSize
	}
	if req.MaxSize != nil {
		maxSize = *req.MaxSize
	}
	if minSize < 1 || maxSize < minSize || maxSize > s.opts.MaxCapacity {
		return nil, apperrors.Validation("Squad size out of range")
	}

	var created *Squad
	err := s.inTx(ctx, "create_squad", func(repo Repository) error {
		profile, err := repo.GetProfile(userID)
		if err != nil {
			return err
		}
		if profile == nil {
			return apperrors.NotFound("Player profile not found")
		}
		if profile.InSquad() {
			return apperrors.Conflict("Player already in another squad")
		}
		existing, err := repo.GetSquadByName(name)
		if err != nil {
			return err
		}
		if existing != nil {
			return apperrors.Conflict("Squad name taken")
		}
		if role == "" {
			role = models.PreferredRole(profile.Roles)
		}

		now := s.now()
		sq := &Squad{
			SquadName:   name,
			Game:        game,
			Status:      StatusActive,
			MinSize:     minSize,
			MaxSize:     maxSize,
			CreatedByID: userID,
			Version:     1,
		}
		if err := repo.CreateSquad(sq); err != nil {
			return err
		}
		if err := repo.AddMember(&Member{SquadID: sq.ID, PlayerID: userID, IsIGL: true, PlaystyleRole: role, JoinedAt: now}); err != nil {
			return err
		}
		if err := repo.AttachPlayer(profile, sq.ID); err != nil {
			return err
		}
		created = sq
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.GetSquad(ctx, created.ID)
}

// TransferIGL hands leadership to another member of the caller's squad.
func (s *Service) TransferIGL(ctx context.Context, userID, newIGLID uint) (*Squad, error) {
	var squadID uint
	err := s.inTx(ctx, "transfer_igl", func(repo Repository) error {
		sq, err := loadLedSquad(repo, userID, "Only IGL can transfer leadership")
		if err != nil {
			return err
		}
		if sq.Status != StatusActive {
			return apperrors.InvalidState("Squad not active")
		}
		if newIGLID == userID {
			return apperrors.Validation("You are already the IGL")
		}
		target := sq.Member(newIGLID)
		if target == nil {
			return apperrors.NotFound("Player not in squad")
		}
		if target.IsIGL {
			return apperrors.Conflict("Player is already IGL")
		}

		// Clear the old flag first so the one-IGL index holds at every step.
		if err := repo.SetIGL(sq.ID, userID, false); err != nil {
			return err
		}
		if err := repo.SetIGL(sq.ID, newIGLID, true); err != nil {
			return err
		}
		squadID = sq.ID
		return repo.SaveSquad(sq, nil)
	})
	if err != nil {
		return nil, err
	}
	return s.GetSquad(ctx, squadID)
}

// KickPlayer removes a non-IGL member from the caller's squad.
func (s *Service) KickPlayer(ctx context.Context, userID, targetID uint) (*Squad, error) {
	var squadID uint
	err := s.inTx(ctx, "kick_player", func(repo Repository) error {
		sq, err := loadLedSquad(repo, userID, "Only IGL can kick players")
		if err != nil {
			return err
		}
		if targetID == userID {
			return apperrors.Validation("You cannot kick yourself")
		}
		if sq.Member(targetID) == nil {
			return apperrors.NotFound("Player not in squad")
		}

		if err := removeMember(repo, sq, targetID, s.now()); err != nil {
			return err
		}
		squadID = sq.ID
		return repo.SaveSquad(sq, nil)
	})
	if err != nil {
		return nil, err
	}
	return s.GetSquad(ctx, squadID)
}

// DisbandSquad dissolves the caller's squad.
func (s *Service) DisbandSquad(ctx context.Context, userID uint) (*Squad, error) {
	var squadID uint
	err := s.inTx(ctx, "disband_squad", func(repo Repository) error {
		sq, err := loadLedSquad(repo, userID, "Only IGL can disband squad")
		if err != nil {
			return err
		}
		if sq.Status != StatusActive {
			return apperrors.InvalidState("Squad not active")
		}
		squadID = sq.ID
		return disband(repo, sq, s.now())
	})
	if err != nil {
		return nil, err
	}
	return s.GetSquad(ctx, squadID)
}

// SetSquadStatus toggles the caller's squad between ACTIVE and INACTIVE.
func (s *Service) SetSquadStatus(ctx context.Context, userID uint, raw string) (*Squad, error) {
	next, ok := ParseStatus(raw)
	if !ok {
		return nil, apperrors.Validation("Invalid squad status")
	}
	if next == StatusDisbanded {
		return nil, apperrors.Validation("Use disband to dissolve a squad")
	}

	var squadID uint
	err := s.inTx(ctx, "set_squad_status", func(repo Repository) error {
		sq, err := loadLedSquad(repo, userID, "Only IGL can change squad status")
		if err != nil {
			return err
		}
		if !sq.Status.CanTransitionTo(next) {
			return apperrors.InvalidState("Squad is already " + strings.ToLower(string(sq.Status)))
		}
		squadID = sq.ID
		return repo.SaveSquad(sq, map[string]interface{}{"status": next})
	})
	if err != nil {
		return nil, err
	}
	return s.GetSquad(ctx, squadID)
}

// RequestLeave takes the caller out of their squad. A sole IGL disbands it,
// an IGL with members must transfer first, a member whose IGL is not ACTIVE
// leaves at once, and everyone else files a leave request.
func (s *Service) RequestLeave(ctx context.Context, userID uint) (*LeaveResult, error) {
	var result *LeaveResult
	err := s.inTx(ctx, "request_leave", func(repo Repository) error {
		_, sq, member, err := loadCallerSquad(repo, userID)
		if err != nil {
			return err
		}
		now := s.now()

		if member.IsIGL {
			if len(sq.Members) > 1 {
				return apperrors.InvalidState("Transfer IGL role before leaving")
			}
			if !sq.Status.CanTransitionTo(StatusDisbanded) {
				return apperrors.InvalidState("Squad cannot be disbanded")
			}
			result = &LeaveResult{Outcome: LeaveDisbanded, SquadID: sq.ID}
			return disband(repo, sq, now)
		}

		leaderActive := false
		if igl := sq.IGL(); igl != nil {
			leader, err := repo.GetProfile(igl.PlayerID)
			if err != nil {
				return err
			}
			leaderActive = leader != nil && leader.PlayerStatus == player.StatusActive
		}
		if !leaderActive {
			if err := removeMember(repo, sq, userID, now); err != nil {
				return err
			}
			result = &LeaveResult{Outcome: LeaveLeft, SquadID: sq.ID}
			return repo.SaveSquad(sq, nil)
		}

		pending, err := repo.HasPending(KindLeave, sq.ID, userID)
		if err != nil {
			return err
		}
		if pending {
			return apperrors.Conflict("Leave request already pending")
		}
		req := &LeaveRequest{SquadID: sq.ID, PlayerID: userID, Status: RequestPending}
		if err := repo.CreateLeaveRequest(req); err != nil {
			return err
		}
		result = &LeaveResult{Outcome: LeaveRequested, SquadID: sq.ID, Request: req}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// loadLeaveRequestForIGL checks the caller leads the request's squad and
// that the request may move to next.
func loadLeaveRequestForIGL(repo Repository, userID, requestID uint, next RequestStatus) (*LeaveRequest, *Squad, error) {
	req, err := repo.GetLeaveRequest(requestID)
	if err != nil {
		return nil, nil, err
	}
	if req == nil {
		return nil, nil, apperrors.NotFound("Leave request not found")
	}
	sq, err := repo.GetSquad(req.SquadID)
	if err != nil {
		return nil, nil, err
	}
	if sq == nil {
		return nil, nil, apperrors.NotFound("Squad not found")
	}
	if m := sq.Member(userID); m == nil || !m.IsIGL {
		return nil, nil, apperrors.Forbidden("Only IGL can review leave requests")
	}
	if err := CheckRequestTransition(KindLeave, req.Status, next); err != nil {
		return nil, nil, err
	}
	return req, sq, nil
}

// ApproveLeaveRequest removes the requester. A squad left empty is disbanded.
func (s *Service) ApproveLeaveRequest(ctx context.Context, userID, requestID uint) (*LeaveRequest, error) {
	var approved *LeaveRequest
	err := s.inTx(ctx, "approve_leave", func(repo Repository) error {
		req, sq, err := loadLeaveRequestForIGL(repo, userID, requestID, RequestApproved)
		if err != nil {
			return err
		}
		target := sq.Member(req.PlayerID)
		if target == nil {
			return apperrors.NotFound("Player not in squad")
		}
		if target.IsIGL {
			return apperrors.InvalidState("Transfer IGL role before leaving")
		}

		now := s.now()
		if err := repo.ResolveRequest(KindLeave, req.ID, RequestApproved, now); err != nil {
			return err
		}
		if err := removeMember(repo, sq, req.PlayerID, now); err != nil {
			return err
		}
		req.Status, req.ResolvedAt = RequestApproved, &now
		approved = req
		if len(sq.Members) == 0 {
			return disband(repo, sq, now)
		}
		return repo.SaveSquad(sq, nil)
	})
	if err != nil {
		return nil, err
	}
	return approved, nil
}

func (s *Service) RejectLeaveRequest(ctx context.Context, userID, requestID uint) (*LeaveRequest, error) {
	var rejected *LeaveRequest
	err := s.inTx(ctx, "reject_leave", func(repo Repository) error {
		req, _, err := loadLeaveRequestForIGL(repo, userID, requestID, RequestRejected)
		if err != nil {
			return err
		}
		now := s.now()
		if err := repo.ResolveRequest(KindLeave, req.ID, RequestRejected, now); err != nil {
			return err
		}
		req.Status, req.ResolvedAt = RequestRejected, &now
		rejected = req
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rejected, nil
}

// CancelLeaveRequest lets the requester withdraw a pending leave request.
func (s *Service) CancelLeaveRequest(ctx context.Context, userID, requestID uint) (*LeaveRequest, error) {
	var cancelled *LeaveRequest
	err := s.inTx(ctx, "cancel_leave", func(repo Repository) error {
		req, err := repo.GetLeaveRequest(requestID)
		if err != nil {
			return err
		}
		if req == nil {
			return apperrors.NotFound("Leave request not found")
		}
		if req.PlayerID != userID {
			return apperrors.Forbidden("Only the requester can cancel this leave request")
		}
		if err := CheckRequestTransition(KindLeave, req.Status, RequestCancelled); err != nil {
			return err
		}
		now := s.now()
		if err := repo.ResolveRequest(KindLeave, req.ID, RequestCancelled, now); err != nil {
			return err
		}
		req.Status, req.ResolvedAt = RequestCancelled, &now
		cancelled = req
		return nil
	})
	if err != nil {
		return nil, err
	}
	return cancelled, nil
}

// UpdateLogo uploads a new squad logo and drops the previous asset. Asset
// cleanup is best effort.
func (s *Service) UpdateLogo(ctx context.Context, userID uint, data []byte) (*Squad, error) {
	if len(data) == 0 {
		return nil, apperrors.Validation("Logo image is required")
	}
	if _, err := loadLedSquad(s.repo.WithContext(ctx), userID, "Only IGL can update the squad logo"); err != nil {
		return nil, database.FromDB(err, "Failed to load squad")
	}

	asset, err := s.assets.UploadImage(ctx, data, logoCategory)
	if err != nil {
		return nil, err
	}

	var squadID uint
	var previous string
	err = s.inTx(ctx, "update_logo", func(repo Repository) error {
		sq, err := loadLedSquad(repo, userID, "Only IGL can update the squad logo")
		if err != nil {
			return err
		}
		squadID, previous = sq.ID, sq.LogoAssetID
		return repo.SaveSquad(sq, map[string]interface{}{"logo": asset.URL, "logo_asset_id": asset.AssetID})
	})
	if err != nil {
		s.deleteAsset(ctx, asset.AssetID)
		return nil, err
	}
	if previous != "" && previous != asset.AssetID {
		s.deleteAsset(ctx, previous)
	}
	return s.GetSquad(ctx, squadID)
}

func (s *Service) deleteAsset(ctx context.Context, assetID string) {
	if err := s.assets.DeleteImage(ctx, assetID); err != nil {
		s.logger.Warn("failed to delete logo asset", "asset_id", assetID, "error", err)
	}
}

// --- Reads ---

func (s *Service) GetSquad(ctx context.Context, id uint) (*Squad, error) {
	sq, err := s.repo.WithContext(ctx).GetSquad(id)
	if err != nil {
		return nil, database.FromDB(err, "Failed to load squad")
	}
	if sq == nil {
		return nil, apperrors.NotFound("Squad not found")
	}
	return sq, nil
}

func (s *Service) GetMySquad(ctx context.Context, userID uint) (*Squad, error) {
	_, sq, _, err := loadCallerSquad(s.repo.WithContext(ctx), userID)
	if err != nil {
		return nil, database.FromDB(err, "Failed to load squad")
	}
	return sq, nil
}

func (s *Service) ListSquads(ctx context.Context, filter ListFilter, page, limit int) ([]Squad, int64, error) {
	squads, total, err := s.repo.WithContext(ctx).ListSquads(filter, page, limit)
	if err != nil {
		return nil, 0, database.FromDB(err, "Failed to list squads")
	}
	return squads, total, nil
}
