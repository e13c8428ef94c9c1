package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/taskhive/taskhive/internal/domain"
	"github.com/taskhive/taskhive/internal/store"
)

var (
	ErrTaskNotFound  = errors.New("task_not_found")
	ErrTitleRequired = errors.New("title_required")
)

// TaskService owns per-user task CRUD. Every operation takes the
// authenticated user id and the store queries are scoped by it, so a task
// is invisible and unmodifiable to anyone but its owner.
type TaskService struct {
	Store store.Store
}

func (s *TaskService) ListTasks(ctx context.Context, userID int64) ([]domain.Task, error) {
	tasks, err := s.Store.Tasks().ListTasksByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

func (s *TaskService) GetTask(ctx context.Context, userID, taskID int64) (domain.Task, error) {
	task, err := s.Store.Tasks().GetTask(ctx, taskID, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Task{}, ErrTaskNotFound
		}
		return domain.Task{}, fmt.Errorf("get task: %w", err)
	}
	return task, nil
}

func (s *TaskService) CreateTask(
	ctx context.Context,
	userID int64,
	title, description string,
	completed bool,
) (domain.Task, error) {
	if strings.TrimSpace(title) == "" {
		return domain.Task{}, ErrTitleRequired
	}

	task, err := s.Store.Tasks().CreateTask(ctx, domain.Task{
		UserID:      userID,
		Title:       title,
		Description: description,
		Completed:   completed,
	})
	if err != nil {
		return domain.Task{}, fmt.Errorf("create task: %w", err)
	}
	return task, nil
}

// UpdateTask overwrites every mutable field of the task. Partial updates
// are deliberately unsupported: callers send the full record and the last
// write wins. Updating a task that does not exist (or is owned by someone
// else) is not an error, matching the create-free UPDATE semantics of the
// store.
func (s *TaskService) UpdateTask(
	ctx context.Context,
	userID, taskID int64,
	title, description string,
	completed bool,
) error {
	if strings.TrimSpace(title) == "" {
		return ErrTitleRequired
	}

	err := s.Store.Tasks().UpdateTask(ctx, domain.Task{
		ID:          taskID,
		UserID:      userID,
		Title:       title,
		Description: description,
		Completed:   completed,
	})
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	return nil
}

// DeleteTask removes the task if the caller owns it. Deleting an absent or
// foreign task is a no-op, not an error.
func (s *TaskService) DeleteTask(ctx context.Context, userID, taskID int64) error {
	if err := s.Store.Tasks().DeleteTask(ctx, taskID, userID); err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}
