package database

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/DhavalSuthar-24/squadhub/internal/apperrors"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestTxOptions(t *testing.T) {
	assert.Equal(t, sql.LevelSerializable, TxOptions("Serializable").Isolation)
	assert.Equal(t, sql.LevelRepeatableRead, TxOptions("repeatable_read").Isolation)
	assert.Equal(t, sql.LevelReadCommitted, TxOptions(" read_committed ").Isolation)
	assert.Nil(t, TxOptions(""))
	assert.Nil(t, TxOptions("chaos"))
}

func TestFromDB(t *testing.T) {
	assert.NoError(t, FromDB(nil, "x"))

	notFound := apperrors.NotFound("Squad not found")
	assert.Same(t, notFound, FromDB(notFound, "x"))

	dup := FromDB(fmt.Errorf("insert: %w", gorm.ErrDuplicatedKey), "x")
	assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(dup))

	serial := FromDB(&pgconn.PgError{Code: "40001"}, "x")
	assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(serial))
	assert.Equal(t, ErrConcurrentUpdate.Message, apperrors.PublicMessage(serial))

	other := FromDB(errors.New("connection refused"), "Failed to load squad")
	assert.Equal(t, apperrors.KindInternal, apperrors.KindOf(other))
	assert.Equal(t, "Failed to load squad", apperrors.PublicMessage(other))
}

func TestShouldWarn(t *testing.T) {
	assert.False(t, ShouldWarn(nil))
	assert.False(t, ShouldWarn(apperrors.Conflict("Squad is full")))
	assert.False(t, ShouldWarn(FromDB(fmt.Errorf("insert: %w", gorm.ErrDuplicatedKey), "x")))
	assert.False(t, ShouldWarn(apperrors.Forbidden("Only IGL can send invites")))

	assert.True(t, ShouldWarn(ErrConcurrentUpdate))
	assert.True(t, ShouldWarn(FromDB(ErrConcurrentUpdate, "x")))
	assert.True(t, ShouldWarn(FromDB(&pgconn.PgError{Code: "40P01"}, "x")))
	assert.True(t, ShouldWarn(FromDB(errors.New("connection refused"), "x")))
}
