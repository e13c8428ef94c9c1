// Package api defines the JSON wire types shared by the server, the Go
// client and the tests.
package api

import "time"

// RegisterRequest is the body for POST /register.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest is the body for POST /login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenResponse carries the bearer token issued by POST /login.
type TokenResponse struct {
	Token string `json:"token"`
}

// TaskRequest is the body for POST /tasks and PUT /tasks/{id}. Pointer
// fields distinguish "absent" from "empty": updates require title and
// description to both be present, creates require only a title.
type TaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description,omitempty"`
	Completed   *bool   `json:"completed,omitempty"`
}

// Task is the JSON representation of a task record.
type Task struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// MessageResponse is a generic success envelope.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the error envelope for every non-2xx response. The
// message is always generic; internal causes stay in the server logs.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthChecks reports the status of critical dependencies.
type HealthChecks struct {
	Database string `json:"database"`
}

// HealthResponse is returned by the health probe endpoints.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}
