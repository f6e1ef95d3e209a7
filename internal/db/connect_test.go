package db

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_SQLiteCreatesSchema(t *testing.T) {
	ctx := context.Background()
	conn, err := Open(ctx, DriverSQLite, "file:connect_test?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	for _, table := range []string{"users", "students", "courses", "grades", "student_preferences", "disabilities", "event_log"} {
		var name string
		err := conn.QueryRowContext(ctx, `SELECT name FROM sqlite_master WHERE type='table' AND name=$1`, table).Scan(&name)
		require.NoError(t, err, table)
		assert.Equal(t, table, name)
	}

	// idempotent
	require.NoError(t, ensureSchema(ctx, conn, DriverSQLite))
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := Open(context.Background(), Driver("mysql"), "")
	assert.ErrorContains(t, err, "unsupported driver")
}

func TestIsUniqueViolation(t *testing.T) {
	ctx := context.Background()
	conn, err := Open(ctx, DriverSQLite, "file:unique_test?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	insert := func(id, email string) error {
		_, err := conn.ExecContext(ctx, `INSERT INTO users (id, email, password_hash, role, created_at) VALUES ($1,$2,'x','student',1)`, id, email)
		return err
	}
	require.NoError(t, insert("u1", "a@x.edu"))

	err = insert("u2", "a@x.edu")
	require.Error(t, err)
	assert.True(t, IsUniqueViolation(err))

	err = insert("u1", "b@x.edu")
	require.Error(t, err)
	assert.True(t, IsUniqueViolation(err))

	assert.False(t, IsUniqueViolation(nil))
	assert.False(t, IsUniqueViolation(errors.New("boom")))
}
