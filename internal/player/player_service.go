package player

import (
	"context"
	"strings"

	"github.com/DhavalSuthar-24/squadhub/internal/apperrors"
	"github.com/DhavalSuthar-24/squadhub/internal/database"
	"github.com/DhavalSuthar-24/squadhub/internal/models"
)

// VerificationResetter is told when a player's verifiable identity changes.
type VerificationResetter interface {
	ResetVerification(ctx context.Context, userID uint) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreateProfile(ctx context.Context, userID uint, req CreateProfileRequest) (*Profile, error) {
	roles, err := normalizeRoles(req.Roles)
	if err != nil {
		return nil, err
	}

	repo := s.repo.WithContext(ctx)
	existing, err := repo.GetByUserID(userID)
	if err != nil {
		return nil, database.FromDB(err, "Failed to load player profile")
	}
	if existing != nil {
		return nil, apperrors.Conflict("Player profile already exists")
	}

	profile := &Profile{
		UserID:       userID,
		State:        strings.TrimSpace(req.State),
		GameUID:      strings.TrimSpace(req.GameUID),
		InGameName:   strings.TrimSpace(req.InGameName),
		ProfilePhoto: req.ProfilePhoto,
		Roles:        roles,
		PlayerStatus: StatusActive,
	}
	if err := repo.Create(profile); err != nil {
		return nil, database.FromDB(err, "Failed to create player profile")
	}
	return profile, nil
}

func (s *Service) GetMyProfile(ctx context.Context, userID uint) (*Profile, error) {
	profile, err := s.repo.WithContext(ctx).GetByUserID(userID)
	if err != nil {
		return nil, database.FromDB(err, "Failed to load player profile")
	}
	if profile == nil {
		return nil, apperrors.NotFound("Player profile not found")
	}
	return profile, nil
}

// UpdateProfile applies the editable fields. When the game UID, in-game name
// or role set differs from what was stored, the account loses its verified
// status in the same transaction.
func (s *Service) UpdateProfile(ctx context.Context, userID uint, req UpdateProfileRequest) (*Profile, error) {
	fields := map[string]interface{}{}
	if req.State != nil {
		fields["state"] = strings.TrimSpace(*req.State)
	}
	if req.GameUID != nil {
		fields["game_uid"] = strings.TrimSpace(*req.GameUID)
	}
	if req.InGameName != nil {
		ign := strings.TrimSpace(*req.InGameName)
		if ign == "" {
			return nil, apperrors.Validation("In-game name cannot be empty")
		}
		fields["in_game_name"] = ign
	}
	if req.ProfilePhoto != nil {
		fields["profile_photo"] = *req.ProfilePhoto
	}
	if req.Roles != nil {
		roles, err := normalizeRoles(*req.Roles)
		if err != nil {
			return nil, err
		}
		fields["roles"] = roles
	}
	var nextStatus Status
	if req.PlayerStatus != nil {
		nextStatus = Status(strings.ToUpper(*req.PlayerStatus))
		if !nextStatus.Valid() || nextStatus == StatusSuspended {
			return nil, apperrors.Validation("Invalid player status")
		}
		fields["player_status"] = nextStatus
	}

	var profile *Profile
	err := s.repo.WithTransaction(ctx, func(repo Repository) error {
		var err error
		profile, err = repo.GetByUserID(userID)
		if err != nil {
			return err
		}
		if profile == nil {
			return apperrors.NotFound("Player profile not found")
		}
		if nextStatus != "" && profile.PlayerStatus == StatusSuspended {
			return apperrors.Forbidden("Suspended players cannot change their status")
		}

		prevGameUID, prevIGN := profile.GameUID, profile.InGameName
		prevRoles := append([]string(nil), profile.Roles...)
		if err := repo.UpdateFields(profile, fields); err != nil {
			return err
		}

		identityChanged := profile.GameUID != prevGameUID ||
			profile.InGameName != prevIGN ||
			!models.SameRoleSet(profile.Roles, prevRoles)
		if !identityChanged {
			return nil
		}
		if verifier := repo.Verifier(); verifier != nil {
			if err := verifier.ResetVerification(ctx, userID); err != nil {
				return apperrors.Internal(err, "Failed to reset account verification")
			}
		}
		return nil
	})
	if err != nil {
		return nil, database.FromDB(err, "Failed to update player profile")
	}
	return profile, nil
}

func (s *Service) SearchPlayers(ctx context.Context, query string, freeAgentsOnly bool, page, limit int) ([]SearchResult, int64, error) {
	results, total, err := s.repo.WithContext(ctx).Search(query, freeAgentsOnly, page, limit)
	if err != nil {
		return nil, 0, database.FromDB(err, "Failed to search players")
	}
	return results, total, nil
}

func normalizeRoles(raw []string) (models.StringSlice, error) {
	roles := models.StringSlice{}
	seen := map[models.PlaystyleRole]bool{}
	for _, r := range raw {
		role, ok := models.ParsePlaystyleRole(r)
		if !ok {
			return nil, apperrors.Validation("Invalid playstyle role")
		}
		if seen[role] {
			continue
		}
		seen[role] = true
		roles = append(roles, string(role))
	}
	return roles, nil
}
