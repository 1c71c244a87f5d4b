package db

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/clinic/clinic/internal/platform/apperr"
)

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

// TranslateError maps driver failures onto apperr kinds. entity names the
// row being touched and appears in the client message.
func TranslateError(err error, entity string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound("%s not found", entity)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return apperr.Conflict("%s already exists", entity)
		case codeForeignKeyViolation:
			return apperr.Reference("%s references a user that does not exist", entity)
		}
	}
	return fmt.Errorf("%s: %w", entity, err)
}
