package gormstore

import (
	"errors"
	"fmt"
	"strings"

	"mecanica_workorder/internal/usecase/interfaces"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Postgres SQLSTATE codes.
const (
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
	pgLockNotAvailable     = "55P03"
	pgUniqueViolation      = "23505"
)

// MySQL server error numbers.
const (
	myLockWaitTimeout = 1205
	myDeadlock        = 1213
	myDuplicateEntry  = 1062
)

// translate maps driver errors onto the store port errors. Errors it does
// not recognize are returned unchanged.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, interfaces.ErrConcurrentModification) || errors.Is(err, interfaces.ErrAlreadyExists) {
		return err
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: %w", interfaces.ErrAlreadyExists, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgSerializationFailure, pgDeadlockDetected, pgLockNotAvailable:
			return fmt.Errorf("%w: %w", interfaces.ErrConcurrentModification, err)
		case pgUniqueViolation:
			return fmt.Errorf("%w: %w", interfaces.ErrAlreadyExists, err)
		}
		return err
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case myDeadlock, myLockWaitTimeout:
			return fmt.Errorf("%w: %w", interfaces.ErrConcurrentModification, err)
		case myDuplicateEntry:
			return fmt.Errorf("%w: %w", interfaces.ErrAlreadyExists, err)
		}
		return err
	}

	// The pure-Go SQLite driver only exposes result codes through the message.
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "database is locked"), strings.Contains(msg, "sqlite_busy"):
		return fmt.Errorf("%w: %w", interfaces.ErrConcurrentModification, err)
	case strings.Contains(msg, "unique constraint failed"):
		return fmt.Errorf("%w: %w", interfaces.ErrAlreadyExists, err)
	}
	return err
}

func wrap(op string, err error) error {
	return fmt.Errorf("%s: %w", op, translate(err))
}
