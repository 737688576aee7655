package user

import (
	"context"
	"testing"

	"github.com/DhavalSuthar-24/squadhub/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResetVerification(t *testing.T) {
	repo := NewRepository(testutil.NewDB(t, &User{}))

	verified := &User{Username: "v", Email: "v@example.com", Phone: "1", AccountStatus: AccountVerified}
	disabled := &User{Username: "d", Email: "d@example.com", Phone: "2", AccountStatus: AccountDisabled}
	require.NoError(t, repo.Create(verified))
	require.NoError(t, repo.Create(disabled))

	require.NoError(t, repo.ResetVerification(context.Background(), verified.ID))
	require.NoError(t, repo.ResetVerification(context.Background(), disabled.ID))

	got, err := repo.GetByID(verified.ID)
	require.NoError(t, err)
	assert.Equal(t, AccountUnverified, got.AccountStatus)

	got, err = repo.GetByID(disabled.ID)
	require.NoError(t, err)
	assert.Equal(t, AccountDisabled, got.AccountStatus)
}

func TestLookups(t *testing.T) {
	repo := NewRepository(testutil.NewDB(t, &User{}))
	require.NoError(t, repo.Create(&User{Username: "ace", Email: "ace@example.com", Phone: "1"}))

	byEmail, err := repo.GetByLoginIdentifier("ACE@example.com")
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	assert.Equal(t, "ace", byEmail.Username)

	byName, err := repo.GetByLoginIdentifier("ace")
	require.NoError(t, err)
	require.NotNil(t, byName)

	missing, err := repo.GetByID(404)
	require.NoError(t, err)
	assert.Nil(t, missing)

	exists, err := repo.Exists("other@example.com", "ace", "9")
	require.NoError(t, err)
	assert.True(t, exists)
}
