package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-pkgz/repeater/v2"

	"github.com/umputun/newsdesk/pkg/domain"
)

// criticalError wraps an error to signal repeater to stop retrying
type criticalError struct {
	err error
}

func (e *criticalError) Error() string {
	return e.err.Error()
}

func (e *criticalError) Unwrap() error {
	return e.err
}

// isLockError checks if an error is a SQLite lock/busy error
func isLockError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "SQLITE_BUSY") ||
		strings.Contains(errStr, "database is locked") ||
		strings.Contains(errStr, "database table is locked")
}

// isUniqueError checks if an error is a unique constraint violation
func isUniqueError(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// isForeignKeyError checks if an error is a foreign key violation
func isForeignKeyError(err error) bool {
	return err != nil && strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}

// withRetry runs fn with backoff, retrying only on SQLite lock errors
func withRetry(ctx context.Context, fn func() error) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	err := retrier.Do(ctx, func() error {
		err := fn()
		if err == nil {
			return nil
		}
		if isLockError(err) {
			return err // retry
		}
		return &criticalError{err: err}
	})
	var ce *criticalError
	if errors.As(err, &ce) {
		return ce.err
	}
	return err
}

// mapWriteError converts constraint failures to domain errors, entity names the conflicting record
func mapWriteError(op, entity string, err error) error {
	switch {
	case err == nil:
		return nil
	case isUniqueError(err):
		return fmt.Errorf("%s: %w", op, domain.Conflict("%s already exists", entity))
	case isForeignKeyError(err):
		return fmt.Errorf("%s: %w", op, domain.Conflict("%s references a missing or in-use record", entity))
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

// mapReadError converts sql.ErrNoRows to a domain not-found error
func mapReadError(op, entity string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, domain.NotFound(entity))
	}
	return fmt.Errorf("%s: %w", op, err)
}

// checkAffected returns not-found error if nothing was changed
func checkAffected(op, entity string, res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: rows affected: %w", op, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", op, domain.NotFound(entity))
	}
	return nil
}

// likeEscape escapes LIKE wildcards, use with ESCAPE '\'
func likeEscape(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

// setClause accumulates "col = ?" assignments for partial updates
type setClause struct {
	cols []string
	args []any
}

func (s *setClause) add(col string, val any) {
	s.cols = append(s.cols, col+" = ?")
	s.args = append(s.args, val)
}

func (s *setClause) empty() bool { return len(s.cols) == 0 }

func (s *setClause) String() string { return strings.Join(s.cols, ", ") }

// now returns current time in UTC, truncated to microseconds for stable text ordering
func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
