package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/taskhive/taskhive/internal/domain"
	"github.com/taskhive/taskhive/internal/store"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	dsn := "file:" + filepath.Join(t.TempDir(), "test.db")
	s, err := NewStore(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func TestUsersRepo(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	ctx := context.Background()

	t.Run("create and fetch", func(t *testing.T) {
		created, err := s.Users().CreateUser(ctx, "alice", "$argon2id$hash")
		require.NoError(t, err)
		require.NotZero(t, created.ID)
		require.Equal(t, "alice", created.Username)
		require.False(t, created.CreatedAt.IsZero())

		byName, err := s.Users().GetUserByUsername(ctx, "alice")
		require.NoError(t, err)
		require.Equal(t, created.ID, byName.ID)

		byID, err := s.Users().GetUserByID(ctx, created.ID)
		require.NoError(t, err)
		require.Equal(t, "alice", byID.Username)
	})

	t.Run("duplicate username maps to ErrAlreadyExists", func(t *testing.T) {
		_, err := s.Users().CreateUser(ctx, "bob", "h1")
		require.NoError(t, err)

		_, err = s.Users().CreateUser(ctx, "bob", "h2")
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})

	t.Run("unknown user maps to ErrNotFound", func(t *testing.T) {
		_, err := s.Users().GetUserByUsername(ctx, "nobody")
		require.ErrorIs(t, err, store.ErrNotFound)

		_, err = s.Users().GetUserByID(ctx, 99999)
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestTasksRepo(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	ctx := context.Background()

	alice, err := s.Users().CreateUser(ctx, "alice", "h")
	require.NoError(t, err)
	mallory, err := s.Users().CreateUser(ctx, "mallory", "h")
	require.NoError(t, err)

	created, err := s.Tasks().CreateTask(ctx, domain.Task{
		UserID:      alice.ID,
		Title:       "buy milk",
		Description: "2%",
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	require.False(t, created.Completed)

	t.Run("owner sees the task", func(t *testing.T) {
		got, err := s.Tasks().GetTask(ctx, created.ID, alice.ID)
		require.NoError(t, err)
		require.Equal(t, "buy milk", got.Title)
		require.Equal(t, "2%", got.Description)
	})

	t.Run("other users do not", func(t *testing.T) {
		_, err := s.Tasks().GetTask(ctx, created.ID, mallory.ID)
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("list is scoped by owner", func(t *testing.T) {
		tasks, err := s.Tasks().ListTasksByUser(ctx, alice.ID)
		require.NoError(t, err)
		require.Len(t, tasks, 1)

		tasks, err = s.Tasks().ListTasksByUser(ctx, mallory.ID)
		require.NoError(t, err)
		require.Empty(t, tasks)
	})

	t.Run("update is scoped by owner", func(t *testing.T) {
		err := s.Tasks().UpdateTask(ctx, domain.Task{
			ID:        created.ID,
			UserID:    mallory.ID,
			Title:     "hijacked",
			Completed: true,
		})
		require.NoError(t, err) // zero rows affected, last write wins

		got, err := s.Tasks().GetTask(ctx, created.ID, alice.ID)
		require.NoError(t, err)
		require.Equal(t, "buy milk", got.Title, "non-owner update must not land")

		err = s.Tasks().UpdateTask(ctx, domain.Task{
			ID:          created.ID,
			UserID:      alice.ID,
			Title:       "buy milk",
			Description: "oat",
			Completed:   true,
		})
		require.NoError(t, err)

		got, err = s.Tasks().GetTask(ctx, created.ID, alice.ID)
		require.NoError(t, err)
		require.Equal(t, "oat", got.Description)
		require.True(t, got.Completed)
	})

	t.Run("delete is scoped by owner and idempotent", func(t *testing.T) {
		require.NoError(t, s.Tasks().DeleteTask(ctx, created.ID, mallory.ID))

		_, err := s.Tasks().GetTask(ctx, created.ID, alice.ID)
		require.NoError(t, err, "non-owner delete must not land")

		require.NoError(t, s.Tasks().DeleteTask(ctx, created.ID, alice.ID))
		_, err = s.Tasks().GetTask(ctx, created.ID, alice.ID)
		require.ErrorIs(t, err, store.ErrNotFound)

		// Deleting again is still fine.
		require.NoError(t, s.Tasks().DeleteTask(ctx, created.ID, alice.ID))
	})
}
