package player

import (
	"context"
	"errors"
	"testing"

	"github.com/DhavalSuthar-24/squadhub/internal/apperrors"
	"github.com/DhavalSuthar-24/squadhub/internal/testutil"
	"github.com/DhavalSuthar-24/squadhub/internal/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type recordingResetter struct {
	calls []uint
	err   error
}

func (r *recordingResetter) ResetVerification(_ context.Context, userID uint) error {
	if r.err != nil {
		return r.err
	}
	r.calls = append(r.calls, userID)
	return nil
}

func (r *recordingResetter) factory(*gorm.DB) VerificationResetter {
	return r
}

func newService(t *testing.T) (*Service, *recordingResetter) {
	db := testutil.NewDB(t, &Profile{})
	resetter := &recordingResetter{}
	return NewService(NewRepository(db, resetter.factory)), resetter
}

func strPtr(s string) *string { return &s }

func TestCreateProfile(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	p, err := svc.CreateProfile(ctx, 7, CreateProfileRequest{GameUID: "uid-1", InGameName: "Ace", Roles: []string{"sniper", "SNIPER", "nader"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"SNIPER", "NADER"}, []string(p.Roles))
	assert.Equal(t, StatusActive, p.PlayerStatus)
	assert.Nil(t, p.CurrentSquadID)

	_, err = svc.CreateProfile(ctx, 7, CreateProfileRequest{GameUID: "uid-2", InGameName: "Dup"})
	assert.True(t, apperrors.IsKind(err, apperrors.KindConflict))

	_, err = svc.CreateProfile(ctx, 8, CreateProfileRequest{GameUID: "uid-3", InGameName: "Bad", Roles: []string{"healer"}})
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
}

func TestUpdateProfileVerificationReset(t *testing.T) {
	svc, resetter := newService(t)
	ctx := context.Background()

	_, err := svc.CreateProfile(ctx, 1, CreateProfileRequest{GameUID: "uid", InGameName: "Ace", Roles: []string{"SNIPER", "PRIMARY"}})
	require.NoError(t, err)

	// Cosmetic fields and a reordered role set keep verification.
	roles := []string{"primary", "sniper"}
	_, err = svc.UpdateProfile(ctx, 1, UpdateProfileRequest{State: strPtr("Goa"), Roles: &roles})
	require.NoError(t, err)
	assert.Empty(t, resetter.calls)

	// Writing the same in-game name is not a change either.
	_, err = svc.UpdateProfile(ctx, 1, UpdateProfileRequest{InGameName: strPtr("Ace")})
	require.NoError(t, err)
	assert.Empty(t, resetter.calls)

	p, err := svc.UpdateProfile(ctx, 1, UpdateProfileRequest{InGameName: strPtr("AceTwo")})
	require.NoError(t, err)
	assert.Equal(t, "AceTwo", p.InGameName)
	assert.Equal(t, []uint{1}, resetter.calls)

	newRoles := []string{"NADER"}
	_, err = svc.UpdateProfile(ctx, 1, UpdateProfileRequest{Roles: &newRoles})
	require.NoError(t, err)
	assert.Equal(t, []uint{1, 1}, resetter.calls)
}

func TestUpdateProfileStatus(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	_, err := svc.CreateProfile(ctx, 1, CreateProfileRequest{GameUID: "uid", InGameName: "Ace"})
	require.NoError(t, err)

	p, err := svc.UpdateProfile(ctx, 1, UpdateProfileRequest{PlayerStatus: strPtr("INACTIVE")})
	require.NoError(t, err)
	assert.Equal(t, StatusInactive, p.PlayerStatus)

	_, err = svc.UpdateProfile(ctx, 1, UpdateProfileRequest{PlayerStatus: strPtr("SUSPENDED")})
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))

	_, err = svc.UpdateProfile(ctx, 2, UpdateProfileRequest{State: strPtr("Goa")})
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}

func TestUpdateProfileRollsBackWhenResetFails(t *testing.T) {
	svc, resetter := newService(t)
	ctx := context.Background()

	_, err := svc.CreateProfile(ctx, 1, CreateProfileRequest{GameUID: "uid", InGameName: "old", Roles: []string{"SNIPER"}})
	require.NoError(t, err)

	resetter.err = errors.New("down")
	roles := []string{"NADER"}
	_, err = svc.UpdateProfile(ctx, 1, UpdateProfileRequest{InGameName: strPtr("new"), State: strPtr("Goa"), Roles: &roles})
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindInternal))

	stored, err := svc.GetMyProfile(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "old", stored.InGameName)
	assert.Empty(t, stored.State)
	assert.Equal(t, []string{"SNIPER"}, []string(stored.Roles))
}

func TestUpdateProfileResetsAccountInSameTransaction(t *testing.T) {
	db := testutil.NewDB(t, &user.User{}, &Profile{})
	svc := NewService(NewRepository(db, UserVerifier))
	ctx := context.Background()

	account := &user.User{Username: "ace", Email: "ace@example.com", Phone: "1", AccountStatus: user.AccountVerified, Role: user.RolePlayer}
	require.NoError(t, db.Create(account).Error)
	_, err := svc.CreateProfile(ctx, account.ID, CreateProfileRequest{GameUID: "uid", InGameName: "Ace"})
	require.NoError(t, err)

	_, err = svc.UpdateProfile(ctx, account.ID, UpdateProfileRequest{State: strPtr("Goa")})
	require.NoError(t, err)
	var got user.User
	require.NoError(t, db.First(&got, account.ID).Error)
	assert.Equal(t, user.AccountVerified, got.AccountStatus)

	_, err = svc.UpdateProfile(ctx, account.ID, UpdateProfileRequest{GameUID: strPtr("uid-2")})
	require.NoError(t, err)
	require.NoError(t, db.First(&got, account.ID).Error)
	assert.Equal(t, user.AccountUnverified, got.AccountStatus)
}
