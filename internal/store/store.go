package store

import (
	"context"
	"errors"

	"github.com/taskhive/taskhive/internal/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite,
// postgres) implement this. It exposes sub-repositories to keep concerns
// tidy and testable.
type Store interface {
	Users() Users
	Tasks() Tasks

	ApplyMigrations() error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

type Users interface {
	// CreateUser inserts a new user and returns it with its assigned id.
	// A duplicate username yields ErrAlreadyExists.
	CreateUser(ctx context.Context, username, passwordHash string) (domain.User, error)

	// GetUserByUsername is used during login.
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)

	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id int64) (domain.User, error)
}

type Tasks interface {
	// CreateTask inserts a new task and returns it with its assigned id.
	CreateTask(ctx context.Context, t domain.Task) (domain.Task, error)

	// GetTask returns the task with the given id, but only if it belongs
	// to userID. Anything else is ErrNotFound.
	GetTask(ctx context.Context, id, userID int64) (domain.Task, error)

	// ListTasksByUser returns all tasks owned by userID, oldest first.
	ListTasksByUser(ctx context.Context, userID int64) ([]domain.Task, error)

	// UpdateTask overwrites title, description and completed for the task
	// matching (t.ID, t.UserID). Updating a row that does not exist or is
	// not owned is not an error: last write wins.
	UpdateTask(ctx context.Context, t domain.Task) error

	// DeleteTask removes the task matching (id, userID). Deleting a row
	// that does not exist or is not owned is not an error.
	DeleteTask(ctx context.Context, id, userID int64) error
}
