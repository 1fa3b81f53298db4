package errors

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// Constraint identifies which store constraint rejected a write.
type Constraint int

const (
	ConstraintNone Constraint = iota
	ConstraintUnique
	ConstraintForeignKey
	ConstraintCheck
	ConstraintNotNull
)

func (c Constraint) String() string {
	switch c {
	case ConstraintUnique:
		return "unique"
	case ConstraintForeignKey:
		return "foreign_key"
	case ConstraintCheck:
		return "check"
	case ConstraintNotNull:
		return "not_null"
	default:
		return "none"
	}
}

// PostgreSQL SQLSTATE class 23 codes.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
	pgNotNullViolation    = "23502"
)

// ParseConstraint reports which integrity constraint err violated, for both backends.
// Typed driver errors are checked first; the message match covers wrapped or
// stringified errors.
func ParseConstraint(err error) Constraint {
	if err == nil {
		return ConstraintNone
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return ConstraintUnique
		case pgForeignKeyViolation:
			return ConstraintForeignKey
		case pgCheckViolation:
			return ConstraintCheck
		case pgNotNullViolation:
			return ConstraintNotNull
		}
		return ConstraintNone
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		switch liteErr.ExtendedCode {
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			return ConstraintUnique
		case sqlite3.ErrConstraintForeignKey:
			return ConstraintForeignKey
		case sqlite3.ErrConstraintCheck:
			return ConstraintCheck
		case sqlite3.ErrConstraintNotNull:
			return ConstraintNotNull
		}
		return ConstraintNone
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint"):
		return ConstraintUnique
	case strings.Contains(msg, "foreign key constraint"):
		return ConstraintForeignKey
	case strings.Contains(msg, "check constraint"):
		return ConstraintCheck
	case strings.Contains(msg, "not-null constraint") || strings.Contains(msg, "not null constraint"):
		return ConstraintNotNull
	}
	return ConstraintNone
}

func IsUniqueViolation(err error) bool {
	return ParseConstraint(err) == ConstraintUnique
}

func IsForeignKeyViolation(err error) bool {
	return ParseConstraint(err) == ConstraintForeignKey
}
