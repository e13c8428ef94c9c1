package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/taskhive/taskhive/internal/domain"
)

type tasksRepo struct {
	db *sql.DB
}

func (r *tasksRepo) CreateTask(ctx context.Context, t domain.Task) (domain.Task, error) {
	now := time.Now().UTC()
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO tasks (user_id, title, description, completed, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		t.UserID, t.Title, t.Description, t.Completed, now, now,
	)
	if err != nil {
		return domain.Task{}, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return domain.Task{}, err
	}
	return r.GetTask(ctx, id, t.UserID)
}

func (r *tasksRepo) GetTask(ctx context.Context, id, userID int64) (domain.Task, error) {
	// Ownership is part of the lookup: a task belonging to another user
	// is indistinguishable from one that does not exist.
	row := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, title, description, completed, created_at, updated_at
		 FROM tasks WHERE id = ? AND user_id = ?`,
		id, userID,
	)

	var t domain.Task
	err := row.Scan(
		&t.ID, &t.UserID, &t.Title, &t.Description, &t.Completed,
		&t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return domain.Task{}, mapNotFound(err)
	}
	return t, nil
}

func (r *tasksRepo) ListTasksByUser(ctx context.Context, userID int64) ([]domain.Task, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, title, description, completed, created_at, updated_at
		 FROM tasks WHERE user_id = ? ORDER BY id`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := []domain.Task{}
	for rows.Next() {
		var t domain.Task
		err := rows.Scan(
			&t.ID, &t.UserID, &t.Title, &t.Description, &t.Completed,
			&t.CreatedAt, &t.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (r *tasksRepo) UpdateTask(ctx context.Context, t domain.Task) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE tasks SET title = ?, description = ?, completed = ?, updated_at = ?
		 WHERE id = ? AND user_id = ?`,
		t.Title, t.Description, t.Completed, time.Now().UTC(), t.ID, t.UserID,
	)
	return err
}

func (r *tasksRepo) DeleteTask(ctx context.Context, id, userID int64) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM tasks WHERE id = ? AND user_id = ?`,
		id, userID,
	)
	return err
}
