package postgres

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// notNullViolationCode is the SQLSTATE for not_null_violation.
const notNullViolationCode = "23502"

// The checks below rely on TranslateError, which Open enables on the connection.

func isUniqueConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func isForeignKeyConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated)
}

func isCheckConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrCheckConstraintViolated)
}

// isNotNullConstraintViolation has no translated gorm error, so it matches on the message.
func isNotNullConstraintViolation(err error) bool {
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "null value") ||
		strings.Contains(errMsg, "not-null constraint") ||
		strings.Contains(errMsg, notNullViolationCode)
}
