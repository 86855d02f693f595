// Package sqlerr classifies database errors raised through gorm so repositories
// can translate them into the lifecycle error taxonomy.
package sqlerr

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"

	"foodshare/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// PostgreSQL error codes, see https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	uniqueViolation      = pq.ErrorCode("23505")
	serializationFailure = pq.ErrorCode("40001")
	deadlockDetected     = pq.ErrorCode("40P01")
	lockNotAvailable     = pq.ErrorCode("55P03")
	adminShutdown        = pq.ErrorCode("57P01")
	tooManyConnections   = pq.ErrorCode("53300")
	connectionException  = "08"
)

// IsUniqueViolation reports whether err was caused by a unique constraint.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == uniqueViolation
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// IsTransient reports whether retrying the whole operation may succeed.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, driver.ErrBadConn) {
		return true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case serializationFailure, deadlockDetected, lockNotAvailable, adminShutdown, tooManyConnections:
			return true
		}
		return pqErr.Code.Class() == connectionException
	}
	msg := err.Error()
	return strings.Contains(msg, "database is locked") || strings.Contains(msg, "database table is locked")
}

// Wrap annotates err with the failed operation. Transient failures become
// errs.PersistenceFailureError; domain errors pass through untouched.
func Wrap(operation string, err error) error {
	if err == nil {
		return nil
	}
	if IsTransient(err) {
		return errs.NewPersistenceFailureError(operation, err)
	}
	return fmt.Errorf("%s: %w", operation, err)
}
