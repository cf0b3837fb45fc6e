// Package pgerr maps postgres and driver failures onto the error taxonomy of
// the core.
package pgerr

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"

	"freight/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE codes after which the whole transaction may be retried.
const (
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
	codeLockNotAvailable     = "55P03"
	codeQueryCanceled        = "57014"
	codeAdminShutdown        = "57P01"
	codeCannotConnectNow     = "57P03"
)

// Classify wraps err as an errs.TransientFailureError when retrying the
// transaction can succeed, and annotates it with op otherwise. nil stays nil.
func Classify(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, errs.ErrTransientFailure) {
		return err
	}
	if IsTransient(err) {
		return errs.NewTransientFailureError(op, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func IsTransient(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeSerializationFailure, codeDeadlockDetected, codeLockNotAvailable,
			codeQueryCanceled, codeAdminShutdown, codeCannotConnectNow:
			return true
		}
		// Class 08: connection exception.
		return len(pgErr.Code) == 5 && pgErr.Code[:2] == "08"
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return true
	}
	if pgconn.Timeout(err) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	if errors.Is(err, driver.ErrBadConn) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}
