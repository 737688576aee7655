package tournament

import (
	"context"
	"testing"
	"time"

	"github.com/DhavalSuthar-24/squadhub/internal/apperrors"
	"github.com/DhavalSuthar-24/squadhub/internal/testutil"
	"github.com/DhavalSuthar-24/squadhub/internal/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()
	db := testutil.NewDB(t, &user.User{}, &OrganizerProfile{}, &Tournament{})
	return NewService(NewRepository(db), Options{}), db
}

func seedUser(t *testing.T, db *gorm.DB, name string, role user.Role) *user.User {
	t.Helper()
	u := &user.User{Name: name, Username: name, Email: name + "@test.dev", Phone: name, Role: role}
	require.NoError(t, db.Create(u).Error)
	return u
}

func validTournament() CreateTournamentRequest {
	regStart := time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC)
	return CreateTournamentRequest{
		Name:                  "Monsoon Cup",
		Game:                  "BGMI",
		RegistrationStartDate: regStart,
		RegistrationEndDate:   regStart.Add(72 * time.Hour),
		StartDate:             regStart.Add(96 * time.Hour),
		ExternalCommsLink:     "https://discord.gg/monsoon",
	}
}

// verifiedOrganizer walks a fresh user through the admin verification hook.
func verifiedOrganizer(t *testing.T, svc *Service, db *gorm.DB, name string) *user.User {
	t.Helper()
	ctx := context.Background()
	u := seedUser(t, db, name, user.RolePlayer)
	org, err := svc.RequestOrganizerProfile(ctx, u.ID, CreateOrganizerRequest{Name: name + " Esports", Type: "organization"})
	require.NoError(t, err)
	_, err = svc.SetOrganizerStatus(ctx, org.ID, "VERIFIED")
	require.NoError(t, err)
	return u
}

func TestLifecycleTable(t *testing.T) {
	assert.True(t, StatusDraft.CanTransitionTo(StatusRegistrationOpen))
	assert.True(t, StatusRegistrationClosed.CanTransitionTo(StatusCancelled))
	assert.False(t, StatusRegistrationClosed.CanTransitionTo(StatusRegistrationOpen))
	assert.False(t, StatusOngoing.CanTransitionTo(StatusCancelled))
	assert.False(t, StatusResultsFinalized.CanTransitionTo(StatusCompleted))
	assert.False(t, StatusCancelled.CanTransitionTo(StatusDraft))

	assert.True(t, StatusRegistrationOpen.AllowsRegistration())
	assert.False(t, StatusRegistrationClosed.AllowsRegistration())
	assert.True(t, StatusRegistrationClosed.AllowsRegistrationReview())
	assert.False(t, StatusOngoing.AllowsRegistrationReview())
	assert.True(t, StatusCompleted.AllowsDisqualification())
	assert.False(t, StatusRegistrationOpen.AllowsDisqualification())

	action, target, ok := ParseAction(" Open-Registration ")
	assert.True(t, ok)
	assert.Equal(t, ActionOpenRegistration, action)
	assert.Equal(t, StatusRegistrationOpen, target)
	_, _, ok = ParseAction("reopen")
	assert.False(t, ok)
}

func TestOrganizerVerification(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	u := seedUser(t, db, "orga", user.RolePlayer)

	org, err := svc.RequestOrganizerProfile(ctx, u.ID, CreateOrganizerRequest{Name: "Orga", Type: "INDIVIDUAL"})
	require.NoError(t, err)
	assert.Equal(t, OrganizerUnverified, org.Status)

	_, err = svc.RequestOrganizerProfile(ctx, u.ID, CreateOrganizerRequest{Name: "Again", Type: "INDIVIDUAL"})
	assert.True(t, apperrors.IsKind(err, apperrors.KindConflict))

	_, err = svc.CreateTournament(ctx, u.ID, validTournament())
	assert.True(t, apperrors.IsKind(err, apperrors.KindForbidden))

	_, err = svc.SetOrganizerStatus(ctx, org.ID, "verified")
	require.NoError(t, err)
	var stored user.User
	require.NoError(t, db.First(&stored, u.ID).Error)
	assert.Equal(t, user.RoleOrganizer, stored.Role)

	_, err = svc.SetOrganizerStatus(ctx, org.ID, "SUSPENDED")
	require.NoError(t, err)
	require.NoError(t, db.First(&stored, u.ID).Error)
	assert.Equal(t, user.RolePlayer, stored.Role)

	_, err = svc.SetOrganizerStatus(ctx, org.ID, "BANNED")
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
	_, err = svc.SetOrganizerStatus(ctx, 999, "VERIFIED")
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}

func TestVerifyingAdminKeepsAdminRole(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	admin := seedUser(t, db, "root", user.RoleAdmin)

	org, err := svc.RequestOrganizerProfile(ctx, admin.ID, CreateOrganizerRequest{Name: "House", Type: "ORGANIZATION"})
	require.NoError(t, err)
	_, err = svc.SetOrganizerStatus(ctx, org.ID, "VERIFIED")
	require.NoError(t, err)

	var stored user.User
	require.NoError(t, db.First(&stored, admin.ID).Error)
	assert.Equal(t, user.RoleAdmin, stored.Role)
}

func TestCreateTournamentValidation(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	u := verifiedOrganizer(t, svc, db, "orga")

	tour, err := svc.CreateTournament(ctx, u.ID, validTournament())
	require.NoError(t, err)
	assert.Equal(t, StatusDraft, tour.LifecycleStatus)
	assert.Equal(t, 4, tour.MinSquadSize)
	assert.Equal(t, 6, tour.MaxSquadSize)

	badDates := validTournament()
	badDates.RegistrationEndDate = badDates.RegistrationStartDate
	_, err = svc.CreateTournament(ctx, u.ID, badDates)
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))

	earlyStart := validTournament()
	earlyStart.StartDate = earlyStart.RegistrationStartDate
	_, err = svc.CreateTournament(ctx, u.ID, earlyStart)
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))

	badLink := validTournament()
	badLink.ExternalCommsLink = "ftp://files.example.com"
	_, err = svc.CreateTournament(ctx, u.ID, badLink)
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))

	badSizes := validTournament()
	minSize, maxSize := 5, 4
	badSizes.MinSquadSize, badSizes.MaxSquadSize = &minSize, &maxSize
	_, err = svc.CreateTournament(ctx, u.ID, badSizes)
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))

	mine, total, err := svc.ListMyTournaments(ctx, u.ID, 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Len(t, mine, 1)
}

func TestTransition(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	owner := verifiedOrganizer(t, svc, db, "owner")
	other := verifiedOrganizer(t, svc, db, "other")

	tour, err := svc.CreateTournament(ctx, owner.ID, validTournament())
	require.NoError(t, err)

	_, err = svc.Transition(ctx, other.ID, tour.ID, "open-registration")
	assert.True(t, apperrors.IsKind(err, apperrors.KindForbidden))

	_, err = svc.Transition(ctx, owner.ID, tour.ID, "start")
	assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidState))

	_, err = svc.Transition(ctx, owner.ID, tour.ID, "rewind")
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))

	for _, action := range []string{"open-registration", "close-registration", "start", "complete", "finalize"} {
		tour, err = svc.Transition(ctx, owner.ID, tour.ID, action)
		require.NoError(t, err, action)
	}
	assert.Equal(t, StatusResultsFinalized, tour.LifecycleStatus)

	_, err = svc.Transition(ctx, owner.ID, tour.ID, "cancel")
	assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidState))

	stored, err := svc.GetTournament(ctx, tour.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusResultsFinalized, stored.LifecycleStatus)
}
