package postgres

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Constraint checks rely on gorm's TranslateError mapping first and fall back
// to matching the SQLSTATE class in the message for statements that bypass the
// translator (raw Exec, migrations).

func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	return hasSQLState(err, "23505")
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	return hasSQLState(err, "23503")
}

// isNotNullConstraintViolation has no gorm sentinel; 23502 never gets
// translated, so the message is all there is.
func isNotNullConstraintViolation(err error) bool {
	if hasSQLState(err, "23502") {
		return true
	}

	msg := strings.ToLower(err.Error())

	return strings.Contains(msg, "null value") || strings.Contains(msg, "not-null")
}

func isCheckConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}

	return hasSQLState(err, "23514")
}

func hasSQLState(err error, code string) bool {
	if err == nil {
		return false
	}

	return strings.Contains(err.Error(), "SQLSTATE "+code)
}
