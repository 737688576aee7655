package registration

import (
	"context"
	"testing"

	"github.com/DhavalSuthar-24/squadhub/internal/apperrors"
	"github.com/DhavalSuthar-24/squadhub/internal/models"
	"github.com/DhavalSuthar-24/squadhub/internal/player"
	"github.com/DhavalSuthar-24/squadhub/internal/squad"
	"github.com/DhavalSuthar-24/squadhub/internal/testutil"
	"github.com/DhavalSuthar-24/squadhub/internal/tournament"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const organizerID uint = 500

type env struct {
	db     *gorm.DB
	squads *squad.Service
	svc    *Service
}

func newEnv(t *testing.T) *env {
	t.Helper()
	db := testutil.NewDB(t,
		&player.Profile{},
		&squad.Squad{}, &squad.Member{}, &squad.Invite{}, &squad.JoinRequest{}, &squad.LeaveRequest{},
		&tournament.OrganizerProfile{}, &tournament.Tournament{},
		&Registration{}, &RosterEntry{},
	)
	return &env{
		db:     db,
		squads: squad.NewService(squad.NewRepository(db), nil, squad.Options{}),
		svc:    NewService(NewRepository(db), Options{}),
	}
}

func (e *env) profile(t *testing.T, userID uint) {
	t.Helper()
	require.NoError(t, e.db.Create(&player.Profile{UserID: userID, GameUID: "uid", InGameName: "p", PlayerStatus: player.StatusActive}).Error)
}

// squadOf creates a squad led by igl with the given members admitted.
func (e *env) squadOf(t *testing.T, name string, igl uint, members ...uint) *squad.Squad {
	t.Helper()
	ctx := context.Background()
	e.profile(t, igl)
	sq, err := e.squads.CreateSquad(ctx, igl, squad.CreateSquadRequest{SquadName: name, Game: "BGMI"})
	require.NoError(t, err)
	for _, m := range members {
		e.profile(t, m)
		inv, err := e.squads.SendInvite(ctx, igl, m)
		require.NoError(t, err)
		sq, err = e.squads.AcceptInvite(ctx, m, inv.ID)
		require.NoError(t, err)
	}
	return sq
}

func (e *env) tournament(t *testing.T, owner uint, status tournament.LifecycleStatus) *tournament.Tournament {
	t.Helper()
	var org tournament.OrganizerProfile
	require.NoError(t, e.db.Where(tournament.OrganizerProfile{OwnerID: owner}).
		Attrs(tournament.OrganizerProfile{Name: "Org", Type: "ORGANIZATION", Status: tournament.OrganizerVerified}).
		FirstOrCreate(&org).Error)
	tour := &tournament.Tournament{
		Name:               "Cup",
		Game:               "BGMI",
		OrganizerProfileID: org.ID,
		CreatedByUserID:    owner,
		LifecycleStatus:    status,
		MinSquadSize:       4,
		MaxSquadSize:       6,
	}
	require.NoError(t, e.db.Create(tour).Error)
	return tour
}

func (e *env) setPhase(t *testing.T, tour *tournament.Tournament, status tournament.LifecycleStatus) {
	t.Helper()
	require.NoError(t, e.db.Model(&tournament.Tournament{}).Where("id = ?", tour.ID).Update("lifecycle_status", status).Error)
}

func roster(ids ...uint) RegisterSquadRequest {
	req := RegisterSquadRequest{}
	for _, id := range ids {
		req.Roster = append(req.Roster, RosterItem{PlayerID: id})
	}
	return req
}

func assertKind(t *testing.T, err error, kind apperrors.Kind, msg string) {
	t.Helper()
	require.Error(t, err)
	assert.Equal(t, kind, apperrors.KindOf(err), err.Error())
	if msg != "" {
		assert.Equal(t, msg, apperrors.PublicMessage(err))
	}
}

func TestRegisterSquad(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	e.squadOf(t, "Alpha", 1, 2, 3, 4)
	tour := e.tournament(t, organizerID, tournament.StatusRegistrationOpen)

	req := roster(1, 2, 3, 4)
	req.Roster[1].Role = "sniper"
	reg, err := e.svc.RegisterSquad(ctx, 1, tour.ID, req)
	require.NoError(t, err)

	assert.Equal(t, StatusRequested, reg.Status)
	assert.True(t, reg.IsRosterLocked)
	require.Len(t, reg.Roster, 4)
	assert.Equal(t, models.RoleSniper, reg.Roster[1].PlaystyleRole)
	assert.Equal(t, models.RolePrimary, reg.Roster[0].PlaystyleRole)
	for _, entry := range reg.Roster {
		assert.True(t, entry.HoldsSlot)
		assert.Equal(t, tour.ID, entry.TournamentID)
	}

	_, err = e.svc.RegisterSquad(ctx, 1, tour.ID, roster(1, 2, 3, 4))
	assertKind(t, err, apperrors.KindConflict, "Squad already registered")
}

func TestRegisterSquadPreconditionOrder(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	e.squadOf(t, "Alpha", 1, 2, 3, 4)
	open := e.tournament(t, organizerID, tournament.StatusRegistrationOpen)
	closed := e.tournament(t, organizerID, tournament.StatusRegistrationClosed)
	own := e.tournament(t, 1, tournament.StatusRegistrationOpen)
	e.profile(t, 50)

	withRole := roster(1, 2, 3, 4)
	withRole.Roster[2].Role = "medic"

	cases := []struct {
		name   string
		caller uint
		tour   uint
		req    RegisterSquadRequest
		kind   apperrors.Kind
		msg    string
	}{
		{"empty roster", 1, open.ID, RegisterSquadRequest{}, apperrors.KindValidation, "Roster players required"},
		{"missing tournament", 1, 999, roster(1, 2, 3, 4), apperrors.KindNotFound, "Tournament not found"},
		{"registration closed", 1, closed.ID, roster(1, 2, 3, 4), apperrors.KindInvalidState, "Registration not open"},
		{"caller without squad", 50, open.ID, roster(50), apperrors.KindNotFound, "You are not in a squad"},
		{"caller not IGL", 2, open.ID, roster(1, 2, 3, 4), apperrors.KindForbidden, "Only IGL can register squad"},
		{"own tournament", 1, own.ID, roster(1, 2, 3, 4), apperrors.KindForbidden, "Organizer cannot compete in own tournament"},
		{"duplicate players", 1, open.ID, roster(1, 2, 2, 3), apperrors.KindValidation, "Duplicate players in roster"},
		{"outsider", 1, open.ID, roster(1, 2, 3, 50), apperrors.KindValidation, "Player not in squad"},
		{"invalid role", 1, open.ID, withRole, apperrors.KindValidation, "Invalid playstyle role"},
		{"roster too small", 1, open.ID, roster(1, 2, 3), apperrors.KindValidation, "Roster size not eligible"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := e.svc.RegisterSquad(ctx, tc.caller, tc.tour, tc.req)
			assertKind(t, err, tc.kind, tc.msg)
		})
	}

	var count int64
	require.NoError(t, e.db.Model(&Registration{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestRegisterInactiveSquad(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	e.squadOf(t, "Alpha", 1, 2, 3, 4)
	tour := e.tournament(t, organizerID, tournament.StatusRegistrationOpen)
	_, err := e.squads.SetSquadStatus(ctx, 1, "INACTIVE")
	require.NoError(t, err)

	_, err = e.svc.RegisterSquad(ctx, 1, tour.ID, roster(1, 2, 3, 4))
	assertKind(t, err, apperrors.KindInvalidState, "Squad not active")
}

// A player on one squad's pending roster cannot be rostered by another
// squad until that registration leaves REQUESTED/APPROVED.
func TestRosterExclusivityAcrossSquads(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	e.squadOf(t, "Alpha", 1, 2, 3, 4)
	tour := e.tournament(t, organizerID, tournament.StatusRegistrationOpen)

	alphaReg, err := e.svc.RegisterSquad(ctx, 1, tour.ID, roster(1, 2, 3, 4))
	require.NoError(t, err)

	// Player 4 moves to Bravo after Alpha's roster was locked.
	_, err = e.squads.KickPlayer(ctx, 1, 4)
	require.NoError(t, err)
	bravo := e.squadOf(t, "Bravo", 10, 11, 12)
	inv, err := e.squads.SendInvite(ctx, 10, 4)
	require.NoError(t, err)
	_, err = e.squads.AcceptInvite(ctx, 4, inv.ID)
	require.NoError(t, err)

	_, err = e.svc.RegisterSquad(ctx, 10, tour.ID, roster(10, 11, 12, 4))
	assertKind(t, err, apperrors.KindConflict, "Player already registered")

	rejected, err := e.svc.RejectRegistration(ctx, organizerID, alphaReg.ID, "roster changed")
	require.NoError(t, err)
	assert.Equal(t, StatusRejected, rejected.Status)
	assert.Equal(t, "roster changed", rejected.RejectionReason)
	require.NotNil(t, rejected.RejectedByID)
	assert.Equal(t, organizerID, *rejected.RejectedByID)
	for _, entry := range rejected.Roster {
		assert.False(t, entry.HoldsSlot)
	}

	bravoReg, err := e.svc.RegisterSquad(ctx, 10, tour.ID, roster(10, 11, 12, 4))
	require.NoError(t, err)
	assert.Equal(t, bravo.ID, bravoReg.SquadID)
}

func TestReviewRegistrations(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	e.squadOf(t, "Alpha", 1, 2, 3, 4)
	e.squadOf(t, "Bravo", 10, 11, 12, 13)
	e.squadOf(t, "Charlie", 20, 21, 22, 23)
	tour := e.tournament(t, organizerID, tournament.StatusRegistrationOpen)

	alpha, err := e.svc.RegisterSquad(ctx, 1, tour.ID, roster(1, 2, 3, 4))
	require.NoError(t, err)
	_, err = e.svc.RegisterSquad(ctx, 10, tour.ID, roster(10, 11, 12, 13))
	require.NoError(t, err)
	_, err = e.svc.RegisterSquad(ctx, 20, tour.ID, roster(20, 21, 22, 23))
	require.NoError(t, err)

	_, err = e.svc.ApproveRegistration(ctx, 1, alpha.ID)
	assertKind(t, err, apperrors.KindForbidden, "Only the organizer can manage registrations")

	approved, err := e.svc.ApproveRegistration(ctx, organizerID, alpha.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusApproved, approved.Status)

	_, err = e.svc.ApproveRegistration(ctx, organizerID, alpha.ID)
	assertKind(t, err, apperrors.KindInvalidState, "")
	_, err = e.svc.RejectRegistration(ctx, organizerID, alpha.ID, "")
	assertKind(t, err, apperrors.KindInvalidState, "")

	e.setPhase(t, tour, tournament.StatusRegistrationClosed)
	count, err := e.svc.ApproveAllRegistrations(ctx, organizerID, tour.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)

	count, err = e.svc.ApproveAllRegistrations(ctx, organizerID, tour.ID)
	require.NoError(t, err)
	assert.Zero(t, count)

	regs, total, err := e.svc.ListRegistrations(ctx, organizerID, tour.ID, "approved", 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, regs, 3)
	assert.Len(t, regs[0].Roster, 4)

	_, _, err = e.svc.ListRegistrations(ctx, 1, tour.ID, "", 1, 10)
	assertKind(t, err, apperrors.KindForbidden, "")

	e.setPhase(t, tour, tournament.StatusOngoing)
	_, err = e.svc.ApproveAllRegistrations(ctx, organizerID, tour.ID)
	assertKind(t, err, apperrors.KindInvalidState, "Registration review is closed")
}

func TestDisqualifySquad(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	e.squadOf(t, "Alpha", 1, 2, 3, 4)
	e.squadOf(t, "Bravo", 10, 11, 12, 13)
	tour := e.tournament(t, organizerID, tournament.StatusRegistrationOpen)

	alpha, err := e.svc.RegisterSquad(ctx, 1, tour.ID, roster(1, 2, 3, 4))
	require.NoError(t, err)
	bravo, err := e.svc.RegisterSquad(ctx, 10, tour.ID, roster(10, 11, 12, 13))
	require.NoError(t, err)
	_, err = e.svc.ApproveRegistration(ctx, organizerID, alpha.ID)
	require.NoError(t, err)

	_, err = e.svc.DisqualifySquad(ctx, organizerID, alpha.ID, DisqualifyRequest{Reason: "cheating"})
	assertKind(t, err, apperrors.KindInvalidState, "Disqualification not allowed in current tournament phase")

	e.setPhase(t, tour, tournament.StatusOngoing)

	_, err = e.svc.DisqualifySquad(ctx, organizerID, alpha.ID, DisqualifyRequest{Reason: "  "})
	assertKind(t, err, apperrors.KindValidation, "Disqualification reason required")
	_, err = e.svc.DisqualifySquad(ctx, organizerID, alpha.ID, DisqualifyRequest{Reason: "cheating", ProofURL: "not a url"})
	assertKind(t, err, apperrors.KindValidation, "")
	_, err = e.svc.DisqualifySquad(ctx, organizerID, bravo.ID, DisqualifyRequest{Reason: "cheating"})
	assertKind(t, err, apperrors.KindInvalidState, "Only approved registrations can be disqualified")
	_, err = e.svc.DisqualifySquad(ctx, 10, alpha.ID, DisqualifyRequest{Reason: "cheating"})
	assertKind(t, err, apperrors.KindForbidden, "")

	dq, err := e.svc.DisqualifySquad(ctx, organizerID, alpha.ID, DisqualifyRequest{Reason: "cheating", ProofURL: "https://clips.example.com/42"})
	require.NoError(t, err)
	assert.Equal(t, StatusDisqualified, dq.Status)
	assert.Equal(t, "cheating", dq.DisqualificationReason)
	assert.Equal(t, "https://clips.example.com/42", dq.DisqualificationProofURL)
	require.NotNil(t, dq.DisqualifiedAt)
	for _, entry := range dq.Roster {
		assert.False(t, entry.HoldsSlot)
	}

	_, err = e.svc.DisqualifySquad(ctx, organizerID, alpha.ID, DisqualifyRequest{Reason: "again"})
	assertKind(t, err, apperrors.KindConflict, "Squad already disqualified")

	stored, err := e.svc.GetRegistration(ctx, 2, alpha.ID)
	require.NoError(t, err)
	assert.Equal(t, "cheating", stored.DisqualificationReason)

	_, err = e.svc.GetRegistration(ctx, 11, alpha.ID)
	assertKind(t, err, apperrors.KindForbidden, "")
}

func TestStatusTable(t *testing.T) {
	assert.True(t, StatusRequested.CanTransitionTo(StatusApproved))
	assert.True(t, StatusRequested.CanTransitionTo(StatusRejected))
	assert.True(t, StatusApproved.CanTransitionTo(StatusDisqualified))
	assert.False(t, StatusApproved.CanTransitionTo(StatusRejected))
	assert.False(t, StatusRejected.CanTransitionTo(StatusApproved))
	assert.False(t, StatusDisqualified.CanTransitionTo(StatusApproved))

	assert.True(t, StatusApproved.HoldsSlots())
	assert.False(t, StatusRejected.HoldsSlots())
}
