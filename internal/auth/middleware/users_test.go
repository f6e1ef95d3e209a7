package auth

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mind-engage/mindengage-advisor/internal/db"
)

func TestSQLUsers(t *testing.T) {
	ctx := context.Background()
	conn, err := db.Open(ctx, db.DriverSQLite, "file:users_test?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	users := NewSQLUsers(conn)
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)

	u, err := users.Create(ctx, User{Email: " Grace@Navy.mil ", PasswordHash: hash, Role: "advisor"})
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "grace@navy.mil", u.Email)

	_, err = users.Create(ctx, User{Email: "grace@navy.mil", PasswordHash: hash, Role: "student"})
	assert.ErrorIs(t, err, ErrEmailTaken)

	got, err := users.ByEmail(ctx, "GRACE@navy.mil")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
	assert.True(t, CheckPassword(got.PasswordHash, "s3cret-pass"))
	assert.False(t, CheckPassword(got.PasswordHash, "nope"))

	got, err = users.ByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "advisor", got.Role)

	_, err = users.ByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestSQLUsers_DuplicateEmailRace(t *testing.T) {
	ctx := context.Background()
	conn, err := db.Open(ctx, db.DriverSQLite, "file:users_race?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	users := NewSQLUsers(conn)

	const n = 8
	errs := make(chan error, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := users.Create(ctx, User{Email: "race@uni.edu", PasswordHash: "h", Role: "student"})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	created := 0
	for err := range errs {
		if err == nil {
			created++
			continue
		}
		assert.ErrorIs(t, err, ErrEmailTaken)
	}
	assert.Equal(t, 1, created)

	u, err := users.ByEmail(ctx, "race@uni.edu")
	require.NoError(t, err)
	require.NoError(t, users.Delete(ctx, u.ID))
	_, err = users.ByID(ctx, u.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
