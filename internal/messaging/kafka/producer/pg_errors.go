package producer

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// isTransientPGError reports whether err is a postgres failure that a later
// poll can reasonably expect to succeed on: serialization conflicts,
// deadlocks, connection-class errors and connection exhaustion.
func isTransientPGError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case "40001", "40P01", "53300":
		return true
	}

	return len(pgErr.Code) >= 2 && pgErr.Code[:2] == "08"
}
