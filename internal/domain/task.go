package domain

import "time"

// Task is a single to-do item. Tasks are owned by exactly one user and
// every store lookup is scoped by that ownership.
type Task struct {
	ID          int64
	UserID      int64
	Title       string
	Description string
	Completed   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
