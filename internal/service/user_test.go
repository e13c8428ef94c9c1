package service

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/taskhive/taskhive/internal/store"
	"github.com/taskhive/taskhive/internal/store/drivers/sqlite"
)

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	dsn := "file:" + filepath.Join(t.TempDir(), "test.db")
	s, err := sqlite.NewStore(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func TestUserServiceRegister(t *testing.T) {
	t.Parallel()

	svc := &UserService{Store: newTestStore(t)}
	ctx := context.Background()

	user, err := svc.Register(ctx, "alice", "pw1")
	require.NoError(t, err)
	require.NotZero(t, user.ID)
	require.Equal(t, "alice", user.Username)

	// The stored hash is salted argon2id, never the plaintext.
	require.True(t, strings.HasPrefix(user.PasswordHash, "$argon2id$"))
	require.NotContains(t, user.PasswordHash, "pw1")

	t.Run("duplicate username conflicts", func(t *testing.T) {
		_, err := svc.Register(ctx, "alice", "pw2")
		require.ErrorIs(t, err, ErrUsernameTaken)
	})
}

func TestUserServiceAuthenticate(t *testing.T) {
	t.Parallel()

	svc := &UserService{Store: newTestStore(t)}
	ctx := context.Background()

	registered, err := svc.Register(ctx, "alice", "pw1")
	require.NoError(t, err)

	t.Run("correct password", func(t *testing.T) {
		user, err := svc.Authenticate(ctx, "alice", "pw1")
		require.NoError(t, err)
		require.Equal(t, registered.ID, user.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "alice", "wrong")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown username", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "nobody", "pw1")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})
}
