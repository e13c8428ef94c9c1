package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTaskServiceCRUD(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	users := &UserService{Store: st}
	tasks := &TaskService{Store: st}
	ctx := context.Background()

	alice, err := users.Register(ctx, "alice", "pw1")
	require.NoError(t, err)
	bob, err := users.Register(ctx, "bob", "pw2")
	require.NoError(t, err)

	created, err := tasks.CreateTask(ctx, alice.ID, "buy milk", "", false)
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	require.False(t, created.Completed)

	t.Run("create rejects blank title", func(t *testing.T) {
		_, err := tasks.CreateTask(ctx, alice.ID, "   ", "desc", false)
		require.ErrorIs(t, err, ErrTitleRequired)
	})

	t.Run("owner can get, others cannot", func(t *testing.T) {
		got, err := tasks.GetTask(ctx, alice.ID, created.ID)
		require.NoError(t, err)
		require.Equal(t, "buy milk", got.Title)

		_, err = tasks.GetTask(ctx, bob.ID, created.ID)
		require.ErrorIs(t, err, ErrTaskNotFound)
	})

	t.Run("list returns only the owner's tasks", func(t *testing.T) {
		list, err := tasks.ListTasks(ctx, alice.ID)
		require.NoError(t, err)
		require.Len(t, list, 1)
		require.Equal(t, "buy milk", list[0].Title)

		list, err = tasks.ListTasks(ctx, bob.ID)
		require.NoError(t, err)
		require.Empty(t, list)
	})

	t.Run("update overwrites all fields", func(t *testing.T) {
		err := tasks.UpdateTask(ctx, alice.ID, created.ID, "buy milk", "2%", true)
		require.NoError(t, err)

		got, err := tasks.GetTask(ctx, alice.ID, created.ID)
		require.NoError(t, err)
		require.Equal(t, "2%", got.Description)
		require.True(t, got.Completed)
	})

	t.Run("update rejects blank title", func(t *testing.T) {
		err := tasks.UpdateTask(ctx, alice.ID, created.ID, "", "desc", false)
		require.ErrorIs(t, err, ErrTitleRequired)
	})

	t.Run("delete then get reports not found", func(t *testing.T) {
		require.NoError(t, tasks.DeleteTask(ctx, alice.ID, created.ID))

		_, err := tasks.GetTask(ctx, alice.ID, created.ID)
		require.ErrorIs(t, err, ErrTaskNotFound)

		// Idempotent.
		require.NoError(t, tasks.DeleteTask(ctx, alice.ID, created.ID))
	})
}
