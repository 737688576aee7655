package registration

import (
	"context"
	"database/sql"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/DhavalSuthar-24/squadhub/internal/apperrors"
	"github.com/DhavalSuthar-24/squadhub/internal/database"
	"github.com/DhavalSuthar-24/squadhub/internal/models"
	"github.com/DhavalSuthar-24/squadhub/internal/squad"
	"github.com/DhavalSuthar-24/squadhub/internal/tournament"
)

type Options struct {
	TxOptions *sql.TxOptions
	Logger    *slog.Logger
}

// Service locks squad rosters into tournaments. Tournament lifecycle is
// only read here.
type Service struct {
	repo   Repository
	opts   Options
	logger *slog.Logger
	now    func() time.Time
}

func NewService(repo Repository, opts Options) *Service {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		repo:   repo,
		opts:   opts,
		logger: logger.With("component", "registration"),
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) inTx(ctx context.Context, op string, fn func(Repository) error) error {
	err := s.repo.WithTransaction(ctx, s.opts.TxOptions, fn)
	if err == nil {
		return nil
	}
	err = database.FromDB(err, "Failed to save registration changes")
	if database.ShouldWarn(err) {
		s.logger.Warn("transaction rejected", "op", op, "kind", apperrors.KindOf(err), "error", err)
	}
	return err
}

// callerSquad returns the squad the caller leads.
func callerSquad(repo Repository, userID uint) (*squad.Squad, error) {
	squads := repo.Squads()
	profile, err := squads.GetProfile(userID)
	if err != nil {
		return nil, err
	}
	if profile == nil || !profile.InSquad() {
		return nil, apperrors.NotFound("You are not in a squad")
	}
	sq, err := squads.GetSquad(*profile.CurrentSquadID)
	if err != nil {
		return nil, err
	}
	if sq == nil {
		return nil, apperrors.NotFound("You are not in a squad")
	}
	if m := sq.Member(userID); m == nil || !m.IsIGL {
		return nil, apperrors.Forbidden("Only IGL can register squad")
	}
	return sq, nil
}

// buildRoster checks duplicates, membership and roles in submission order.
// An empty role falls back to the player's role in the squad.
func buildRoster(sq *squad.Squad, tournamentID uint, items []RosterItem) ([]RosterEntry, []uint, error) {
	seen := make(map[uint]struct{}, len(items))
	for _, item := range items {
		if _, dup := seen[item.PlayerID]; dup {
			return nil, nil, apperrors.Validation("Duplicate players in roster")
		}
		seen[item.PlayerID] = struct{}{}
	}

	entries := make([]RosterEntry, 0, len(items))
	ids := make([]uint, 0, len(items))
	for _, item := range items {
		member := sq.Member(item.PlayerID)
		if member == nil {
			return nil, nil, apperrors.Validation("Player not in squad")
		}
		role := member.PlaystyleRole
		if strings.TrimSpace(item.Role) != "" {
			r, ok := models.ParsePlaystyleRole(item.Role)
			if !ok {
				return nil, nil, apperrors.Validation("Invalid playstyle role")
			}
			role = r
		}
		entries = append(entries, RosterEntry{
			TournamentID:  tournamentID,
			PlayerID:      item.PlayerID,
			PlaystyleRole: role,
			HoldsSlot:     true,
		})
		ids = append(ids, item.PlayerID)
	}
	return entries, ids, nil
}

// RegisterSquad submits the caller's squad with a locked roster. Checks run
// in a fixed order and the first failure is returned.
func (s *Service) RegisterSquad(ctx context.Context, userID, tournamentID uint, req RegisterSquadRequest) (*Registration, error) {
	if len(req.Roster) == 0 {
		return nil, apperrors.Validation("Roster players required")
	}

	var created *Registration
	err := s.inTx(ctx, "register_squad", func(repo Repository) error {
		t, err := repo.Tournaments().LockTournament(tournamentID)
		if err != nil {
			return err
		}
		if t == nil {
			return apperrors.NotFound("Tournament not found")
		}
		if !t.LifecycleStatus.AllowsRegistration() {
			return apperrors.InvalidState("Registration not open")
		}
		sq, err := callerSquad(repo, userID)
		if err != nil {
			return err
		}
		if sq.Status != squad.StatusActive {
			return apperrors.InvalidState("Squad not active")
		}
		organizer, err := repo.Tournaments().GetOrganizer(t.OrganizerProfileID)
		if err != nil {
			return err
		}
		if organizer != nil && organizer.OwnerID == userID {
			return apperrors.Forbidden("Organizer cannot compete in own tournament")
		}
		existing, err := repo.GetBySquad(t.ID, sq.ID)
		if err != nil {
			return err
		}
		if existing != nil {
			return apperrors.Conflict("Squad already registered")
		}

		entries, ids, err := buildRoster(sq, t.ID, req.Roster)
		if err != nil {
			return err
		}
		taken, err := repo.SlotHolders(t.ID, ids)
		if err != nil {
			return err
		}
		if len(taken) > 0 {
			return apperrors.Conflict("Player already registered")
		}
		if len(entries) < t.MinSquadSize || len(entries) > t.MaxSquadSize {
			return apperrors.Validation("Roster size not eligible")
		}

		reg := &Registration{
			TournamentID:   t.ID,
			SquadID:        sq.ID,
			RegisteredByID: userID,
			Status:         StatusRequested,
			IsRosterLocked: true,
			Roster:         entries,
		}
		if err := repo.Create(reg); err != nil {
			return err
		}
		created = reg
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// requireOrganizer checks the caller owns the tournament's organizer profile.
func requireOrganizer(repo Repository, t *tournament.Tournament, userID uint) error {
	organizer, err := repo.Tournaments().GetOrganizer(t.OrganizerProfileID)
	if err != nil {
		return err
	}
	if organizer == nil || organizer.OwnerID != userID {
		return apperrors.Forbidden("Only the organizer can manage registrations")
	}
	return nil
}

// loadForOrganizer resolves a registration and its tournament for an
// organizer-only command.
func loadForOrganizer(repo Repository, userID, registrationID uint) (*Registration, *tournament.Tournament, error) {
	reg, err := repo.Get(registrationID)
	if err != nil {
		return nil, nil, err
	}
	if reg == nil {
		return nil, nil, apperrors.NotFound("Registration not found")
	}
	t, err := repo.Tournaments().LockTournament(reg.TournamentID)
	if err != nil {
		return nil, nil, err
	}
	if t == nil {
		return nil, nil, apperrors.NotFound("Tournament not found")
	}
	if err := requireOrganizer(repo, t, userID); err != nil {
		return nil, nil, err
	}
	return reg, t, nil
}

func checkTransition(from, to Status) error {
	if from.CanTransitionTo(to) {
		return nil
	}
	if from == StatusRequested || from == StatusApproved {
		return apperrors.InvalidState("Transition not allowed")
	}
	return apperrors.InvalidState("Registration is already " + strings.ToLower(string(from)))
}

// review applies an approve or reject decision while review is still open.
func (s *Service) review(ctx context.Context, op string, userID, registrationID uint, to Status, audit func(at time.Time) map[string]interface{}) (*Registration, error) {
	var updated *Registration
	err := s.inTx(ctx, op, func(repo Repository) error {
		reg, t, err := loadForOrganizer(repo, userID, registrationID)
		if err != nil {
			return err
		}
		if !t.LifecycleStatus.AllowsRegistrationReview() {
			return apperrors.InvalidState("Registration review is closed")
		}
		if err := checkTransition(reg.Status, to); err != nil {
			return err
		}
		var fields map[string]interface{}
		if audit != nil {
			fields = audit(s.now())
		}
		if err := repo.UpdateStatus(reg, to, fields); err != nil {
			return err
		}
		updated, err = repo.Get(reg.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *Service) ApproveRegistration(ctx context.Context, userID, registrationID uint) (*Registration, error) {
	return s.review(ctx, "approve_registration", userID, registrationID, StatusApproved, nil)
}

// RejectRegistration records who rejected the registration and why, and
// frees the roster slots.
func (s *Service) RejectRegistration(ctx context.Context, userID, registrationID uint, reason string) (*Registration, error) {
	reason = strings.TrimSpace(reason)
	return s.review(ctx, "reject_registration", userID, registrationID, StatusRejected, func(at time.Time) map[string]interface{} {
		return map[string]interface{}{
			"rejection_reason": reason,
			"rejected_by_id":   userID,
			"rejected_at":      at,
		}
	})
}

// ApproveAllRegistrations approves every REQUESTED registration of the
// tournament and returns how many changed.
func (s *Service) ApproveAllRegistrations(ctx context.Context, userID, tournamentID uint) (int64, error) {
	var approved int64
	err := s.inTx(ctx, "approve_all_registrations", func(repo Repository) error {
		t, err := repo.Tournaments().LockTournament(tournamentID)
		if err != nil {
			return err
		}
		if t == nil {
			return apperrors.NotFound("Tournament not found")
		}
		if err := requireOrganizer(repo, t, userID); err != nil {
			return err
		}
		if !t.LifecycleStatus.AllowsRegistrationReview() {
			return apperrors.InvalidState("Registration review is closed")
		}
		approved, err = repo.ApproveAllRequested(t.ID)
		return err
	})
	if err != nil {
		return 0, err
	}
	return approved, nil
}

func validProofURL(raw string) bool {
	u, err := url.ParseRequestURI(raw)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// DisqualifySquad removes an approved squad from a running or finished
// tournament. The audit fields are written once.
func (s *Service) DisqualifySquad(ctx context.Context, userID, registrationID uint, req DisqualifyRequest) (*Registration, error) {
	reason := strings.TrimSpace(req.Reason)
	if reason == "" {
		return nil, apperrors.Validation("Disqualification reason required")
	}
	proof := strings.TrimSpace(req.ProofURL)
	if proof != "" && !validProofURL(proof) {
		return nil, apperrors.Validation("Proof URL must be a valid http(s) URL")
	}

	var updated *Registration
	err := s.inTx(ctx, "disqualify_squad", func(repo Repository) error {
		reg, t, err := loadForOrganizer(repo, userID, registrationID)
		if err != nil {
			return err
		}
		if !t.LifecycleStatus.AllowsDisqualification() {
			return apperrors.InvalidState("Disqualification not allowed in current tournament phase")
		}
		if reg.Status == StatusDisqualified {
			return apperrors.Conflict("Squad already disqualified")
		}
		if reg.Status != StatusApproved {
			return apperrors.InvalidState("Only approved registrations can be disqualified")
		}
		err = repo.UpdateStatus(reg, StatusDisqualified, map[string]interface{}{
			"disqualification_reason":    reason,
			"disqualification_proof_url": proof,
			"disqualified_by_id":         userID,
			"disqualified_at":            s.now(),
		})
		if err != nil {
			return err
		}
		updated, err = repo.Get(reg.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// --- Reads ---

func (s *Service) ListRegistrations(ctx context.Context, userID, tournamentID uint, rawStatus string, page, limit int) ([]Registration, int64, error) {
	var status Status
	if raw := strings.TrimSpace(rawStatus); raw != "" {
		status = Status(strings.ToUpper(raw))
		if !status.Valid() {
			return nil, 0, apperrors.Validation("Invalid registration status")
		}
	}

	repo := s.repo.WithContext(ctx)
	t, err := repo.Tournaments().GetTournament(tournamentID)
	if err != nil {
		return nil, 0, database.FromDB(err, "Failed to load tournament")
	}
	if t == nil {
		return nil, 0, apperrors.NotFound("Tournament not found")
	}
	if err := requireOrganizer(repo, t, userID); err != nil {
		return nil, 0, database.FromDB(err, "Failed to load organizer")
	}
	regs, total, err := repo.List(t.ID, status, page, limit)
	if err != nil {
		return nil, 0, database.FromDB(err, "Failed to list registrations")
	}
	return regs, total, nil
}

// GetRegistration is visible to the tournament organizer, the registrant
// and the players on the roster.
func (s *Service) GetRegistration(ctx context.Context, userID, registrationID uint) (*Registration, error) {
	repo := s.repo.WithContext(ctx)
	reg, err := repo.Get(registrationID)
	if err != nil {
		return nil, database.FromDB(err, "Failed to load registration")
	}
	if reg == nil {
		return nil, apperrors.NotFound("Registration not found")
	}
	if reg.RegisteredByID == userID {
		return reg, nil
	}
	for _, entry := range reg.Roster {
		if entry.PlayerID == userID {
			return reg, nil
		}
	}
	t, err := repo.Tournaments().GetTournament(reg.TournamentID)
	if err != nil {
		return nil, database.FromDB(err, "Failed to load tournament")
	}
	if t == nil {
		return nil, apperrors.NotFound("Tournament not found")
	}
	if err := requireOrganizer(repo, t, userID); err != nil {
		return nil, database.FromDB(err, "Failed to load organizer")
	}
	return reg, nil
}
