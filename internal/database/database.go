// Package database holds the transaction settings and store error classification
// shared by the repositories.
package database

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/DhavalSuthar-24/squadhub/internal/apperrors"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	sqlStateSerializationFailure = "40001"
	sqlStateDeadlockDetected     = "40P01"
)

// ErrConcurrentUpdate is returned when an optimistic version check or the
// database's isolation aborts a transaction. Callers may retry.
var ErrConcurrentUpdate = apperrors.Conflict("Concurrent update detected, retry the request")

// TxOptions converts an isolation name from the config into sql.TxOptions.
// Unknown or empty names return nil, which keeps the driver default.
func TxOptions(isolation string) *sql.TxOptions {
	switch strings.ToLower(strings.TrimSpace(isolation)) {
	case "serializable":
		return &sql.TxOptions{Isolation: sql.LevelSerializable}
	case "repeatable_read":
		return &sql.TxOptions{Isolation: sql.LevelRepeatableRead}
	case "read_committed":
		return &sql.TxOptions{Isolation: sql.LevelReadCommitted}
	default:
		return nil
	}
}

// FromDB classifies a store error. Typed application errors pass through,
// unique violations become conflicts, serialization failures become
// ErrConcurrentUpdate and anything else is internal with the given message.
func FromDB(err error, message string) error {
	if err == nil {
		return nil
	}
	var appErr *apperrors.Error
	if errors.As(err, &appErr) {
		return err
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperrors.Wrap(err, apperrors.KindConflict, "A conflicting record already exists")
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case sqlStateSerializationFailure, sqlStateDeadlockDetected:
			return apperrors.Wrap(err, apperrors.KindConflict, ErrConcurrentUpdate.Message)
		}
	}
	return apperrors.Internal(err, message)
}

// ShouldWarn reports whether a failed transaction is worth a warning: lost
// races and internal failures. Domain conflicts such as a full squad are
// ordinary answers to the caller and are not.
func ShouldWarn(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrConcurrentUpdate) || apperrors.KindOf(err) == apperrors.KindInternal {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == sqlStateSerializationFailure || pgErr.Code == sqlStateDeadlockDetected
	}
	return false
}
