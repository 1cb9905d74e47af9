package persistence

import (
	"errors"
	"fmt"
	"strings"

	"github.com/erp/ledger/internal/domain/shared"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// SQLSTATE codes the repositories react to
const (
	sqlStateUniqueViolation = "23505"
	sqlStateUndefinedTable  = "42P01"
)

// translateError maps driver errors onto shared domain errors. pq, pgx and
// sqlite report the same conditions differently; the message text is the
// last resort.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return shared.ErrNotFound
	}
	switch sqlState(err) {
	case sqlStateUniqueViolation:
		return fmt.Errorf("%w: %v", shared.ErrAlreadyExists, err)
	case sqlStateUndefinedTable:
		return fmt.Errorf("%w: %v", shared.ErrSystemNotProvisioned, err)
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "unique constraint failed"), strings.Contains(msg, "duplicate key"):
		return fmt.Errorf("%w: %v", shared.ErrAlreadyExists, err)
	case strings.Contains(msg, "no such table"),
		strings.Contains(msg, "relation") && strings.Contains(msg, "does not exist"):
		return fmt.Errorf("%w: %v", shared.ErrSystemNotProvisioned, err)
	}
	return err
}

func sqlState(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	return ""
}
