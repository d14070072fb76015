package models

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrDuplicateFavorite marks an insert rejected by the favorites uniqueness
// constraint. It is the only persistence error handlers are allowed to branch
// on, so the driver-level signal is classified here and nowhere else.
var ErrDuplicateFavorite = errors.New("favorite already exists")

// pg unique_violation
const uniqueViolationCode = "23505"

// IsUniqueViolation reports whether err is the store's native
// unique-constraint rejection.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
