package producer

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsTransientPGError(t *testing.T) {
	t.Run("serialization failure is transient", func(t *testing.T) {
		err := &pgconn.PgError{Code: "40001"}
		assert.True(t, isTransientPGError(err))
	})

	t.Run("deadlock is transient", func(t *testing.T) {
		err := &pgconn.PgError{Code: "40P01"}
		assert.True(t, isTransientPGError(err))
	})

	t.Run("connection class is transient", func(t *testing.T) {
		err := &pgconn.PgError{Code: "08006"}
		assert.True(t, isTransientPGError(err))
	})

	t.Run("wrapped transient error is detected", func(t *testing.T) {
		err := fmt.Errorf("list pending: %w", &pgconn.PgError{Code: "53300"})
		assert.True(t, isTransientPGError(err))
	})

	t.Run("constraint violation is not transient", func(t *testing.T) {
		err := &pgconn.PgError{Code: "23502"}
		assert.False(t, isTransientPGError(err))
	})

	t.Run("non postgres error is not transient", func(t *testing.T) {
		assert.False(t, isTransientPGError(errors.New("broker unreachable")))
	})
}
