package tournament

import (
	"context"
	"database/sql"
	"log/slog"
	"net/url"
	"strings"

	"github.com/DhavalSuthar-24/squadhub/internal/apperrors"
	"github.com/DhavalSuthar-24/squadhub/internal/database"
	"github.com/DhavalSuthar-24/squadhub/internal/user"
)

type Options struct {
	TxOptions           *sql.TxOptions
	DefaultMinSquadSize int
	DefaultMaxSquadSize int
	Logger              *slog.Logger
}

type Service struct {
	repo   Repository
	opts   Options
	logger *slog.Logger
}

func NewService(repo Repository, opts Options) *Service {
	if opts.DefaultMinSquadSize <= 0 {
		opts.DefaultMinSquadSize = 4
	}
	if opts.DefaultMaxSquadSize <= 0 {
		opts.DefaultMaxSquadSize = 6
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, opts: opts, logger: logger.With("component", "tournament")}
}

func (s *Service) inTx(ctx context.Context, op string, fn func(Repository) error) error {
	err := s.repo.WithTransaction(ctx, s.opts.TxOptions, fn)
	if err == nil {
		return nil
	}
	err = database.FromDB(err, "Failed to save tournament changes")
	if database.ShouldWarn(err) {
		s.logger.Warn("transaction rejected", "op", op, "kind", apperrors.KindOf(err), "error", err)
	}
	return err
}

// RequestOrganizerProfile files the caller's organizer profile for admin
// review.
func (s *Service) RequestOrganizerProfile(ctx context.Context, userID uint, req CreateOrganizerRequest) (*OrganizerProfile, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.Validation("Organizer name is required")
	}
	orgType := strings.ToUpper(strings.TrimSpace(req.Type))
	if orgType != "INDIVIDUAL" && orgType != "ORGANIZATION" {
		return nil, apperrors.Validation("Invalid organizer type")
	}

	repo := s.repo.WithContext(ctx)
	existing, err := repo.GetOrganizerByOwner(userID)
	if err != nil {
		return nil, database.FromDB(err, "Failed to load organizer profile")
	}
	if existing != nil {
		return nil, apperrors.Conflict("Organizer profile already exists")
	}

	profile := &OrganizerProfile{
		OwnerID:      userID,
		Name:         name,
		Type:         orgType,
		ContactEmail: strings.ToLower(strings.TrimSpace(req.ContactEmail)),
		ContactPhone: strings.TrimSpace(req.ContactPhone),
		Status:       OrganizerUnverified,
	}
	if err := repo.CreateOrganizer(profile); err != nil {
		return nil, database.FromDB(err, "Failed to create organizer profile")
	}
	return profile, nil
}

func (s *Service) GetMyOrganizerProfile(ctx context.Context, userID uint) (*OrganizerProfile, error) {
	profile, err := s.repo.WithContext(ctx).GetOrganizerByOwner(userID)
	if err != nil {
		return nil, database.FromDB(err, "Failed to load organizer profile")
	}
	if profile == nil {
		return nil, apperrors.NotFound("Organizer profile not found")
	}
	return profile, nil
}

// SetOrganizerStatus is the admin verification hook. A verified organizer's
// account gets the ORGANIZER role; any other status drops it back to PLAYER.
func (s *Service) SetOrganizerStatus(ctx context.Context, organizerID uint, raw string) (*OrganizerProfile, error) {
	status := OrganizerStatus(strings.ToUpper(strings.TrimSpace(raw)))
	if !status.Valid() {
		return nil, apperrors.Validation("Invalid organizer status")
	}

	var updated *OrganizerProfile
	err := s.inTx(ctx, "set_organizer_status", func(repo Repository) error {
		profile, err := repo.GetOrganizer(organizerID)
		if err != nil {
			return err
		}
		if profile == nil {
			return apperrors.NotFound("Organizer profile not found")
		}
		if err := repo.SetOrganizerStatus(profile.ID, status); err != nil {
			return err
		}
		role := user.RolePlayer
		if status == OrganizerVerified {
			role = user.RoleOrganizer
		}
		if err := repo.SetUserRole(profile.OwnerID, role); err != nil {
			return err
		}
		profile.Status = status
		updated = profile
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func validCommsLink(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// CreateTournament creates a DRAFT tournament owned by the caller's
// verified organizer profile.
func (s *Service) CreateTournament(ctx context.Context, userID uint, req CreateTournamentRequest) (*Tournament, error) {
	name := strings.TrimSpace(req.Name)
	game := strings.TrimSpace(req.Game)
	if name == "" || game == "" {
		return nil, apperrors.Validation("Tournament name and game are required")
	}
	minSize, maxSize := s.opts.DefaultMinSquadSize, s.opts.DefaultMaxSquadSize
	if req.MinSquadSize != nil {
		minSize = *req.MinSquadSize
	}
	if req.MaxSquadSize != nil {
		maxSize = *req.MaxSquadSize
	}
	if minSize < 1 || maxSize < minSize {
		return nil, apperrors.Validation("Squad size range is invalid")
	}
	if req.AllowedSubstitutes < 0 {
		return nil, apperrors.Validation("Allowed substitutes cannot be negative")
	}
	if !req.RegistrationStartDate.Before(req.RegistrationEndDate) {
		return nil, apperrors.Validation("Registration must start before it ends")
	}
	if req.StartDate.Before(req.RegistrationEndDate) {
		return nil, apperrors.Validation("Tournament cannot start before registration ends")
	}
	if req.EndDate != nil && req.EndDate.Before(req.StartDate) {
		return nil, apperrors.Validation("Tournament cannot end before it starts")
	}
	link := strings.TrimSpace(req.ExternalCommsLink)
	if link != "" && !validCommsLink(link) {
		return nil, apperrors.Validation("External comms link must be an http(s) URL")
	}

	repo := s.repo.WithContext(ctx)
	organizer, err := repo.GetOrganizerByOwner(userID)
	if err != nil {
		return nil, database.FromDB(err, "Failed to load organizer profile")
	}
	if organizer == nil {
		return nil, apperrors.NotFound("Organizer profile not found")
	}
	if organizer.Status != OrganizerVerified {
		return nil, apperrors.Forbidden("Organizer is not verified")
	}

	t := &Tournament{
		Name:                  name,
		Game:                  game,
		OrganizerProfileID:    organizer.ID,
		CreatedByUserID:       userID,
		LifecycleStatus:       StatusDraft,
		MinSquadSize:          minSize,
		MaxSquadSize:          maxSize,
		AllowedSubstitutes:    req.AllowedSubstitutes,
		Region:                strings.TrimSpace(req.Region),
		RegistrationStartDate: req.RegistrationStartDate.UTC(),
		RegistrationEndDate:   req.RegistrationEndDate.UTC(),
		StartDate:             req.StartDate.UTC(),
		ExternalCommsLink:     link,
	}
	if req.EndDate != nil {
		end := req.EndDate.UTC()
		t.EndDate = &end
	}
	if err := repo.CreateTournament(t); err != nil {
		return nil, database.FromDB(err, "Failed to create tournament")
	}
	return t, nil
}

func (s *Service) GetTournament(ctx context.Context, id uint) (*Tournament, error) {
	t, err := s.repo.WithContext(ctx).GetTournament(id)
	if err != nil {
		return nil, database.FromDB(err, "Failed to load tournament")
	}
	if t == nil {
		return nil, apperrors.NotFound("Tournament not found")
	}
	return t, nil
}

func (s *Service) ListMyTournaments(ctx context.Context, userID uint, page, limit int) ([]Tournament, int64, error) {
	repo := s.repo.WithContext(ctx)
	organizer, err := repo.GetOrganizerByOwner(userID)
	if err != nil {
		return nil, 0, database.FromDB(err, "Failed to load organizer profile")
	}
	if organizer == nil {
		return nil, 0, apperrors.NotFound("Organizer profile not found")
	}
	tournaments, total, err := repo.ListByOrganizer(organizer.ID, page, limit)
	if err != nil {
		return nil, 0, database.FromDB(err, "Failed to list tournaments")
	}
	return tournaments, total, nil
}

// Transition applies an organizer lifecycle action.
func (s *Service) Transition(ctx context.Context, userID, tournamentID uint, rawAction string) (*Tournament, error) {
	action, target, ok := ParseAction(rawAction)
	if !ok {
		return nil, apperrors.Validation("Invalid lifecycle action")
	}

	var updated *Tournament
	err := s.inTx(ctx, "transition_tournament", func(repo Repository) error {
		t, err := repo.LockTournament(tournamentID)
		if err != nil {
			return err
		}
		if t == nil {
			return apperrors.NotFound("Tournament not found")
		}
		organizer, err := repo.GetOrganizer(t.OrganizerProfileID)
		if err != nil {
			return err
		}
		if organizer == nil || organizer.OwnerID != userID {
			return apperrors.Forbidden("Only the organizer can manage this tournament")
		}
		if !t.LifecycleStatus.CanTransitionTo(target) {
			return apperrors.InvalidState("Cannot " + string(action) + " a tournament in " + string(t.LifecycleStatus))
		}
		if err := repo.UpdateLifecycle(t, target); err != nil {
			return err
		}
		updated = t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
