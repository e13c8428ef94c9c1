// Package taskclient is a small Go client for the taskhive HTTP API. It
// covers the full surface (register, login, task CRUD) and is what the
// end-to-end tests drive the server with.
package taskclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/taskhive/taskhive/pkg/api"
)

// Client talks to a taskhive server. Login stores the issued bearer token
// on the client; every task call after that presents it automatically.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	token string
}

// New creates a client for the given base URL.
func New(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// APIError is a non-2xx response from the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("taskclient: %d %s", e.StatusCode, e.Message)
}

// Token returns the bearer token stored by Login, empty before login.
func (c *Client) Token() string { return c.token }

// SetToken installs a bearer token directly, bypassing Login. Useful for
// testing expired or tampered tokens.
func (c *Client) SetToken(token string) { c.token = token }

// Register creates a new user account.
func (c *Client) Register(ctx context.Context, username, password string) error {
	return c.do(ctx, http.MethodPost, "/register",
		api.RegisterRequest{Username: username, Password: password}, nil, false)
}

// Login authenticates and stores the issued bearer token on the client.
func (c *Client) Login(ctx context.Context, username, password string) error {
	var resp api.TokenResponse
	err := c.do(ctx, http.MethodPost, "/login",
		api.LoginRequest{Username: username, Password: password}, &resp, false)
	if err != nil {
		return err
	}
	c.token = resp.Token
	return nil
}

// ListTasks returns every task owned by the authenticated user.
func (c *Client) ListTasks(ctx context.Context) ([]api.Task, error) {
	var tasks []api.Task
	if err := c.do(ctx, http.MethodGet, "/tasks", nil, &tasks, true); err != nil {
		return nil, err
	}
	return tasks, nil
}

// GetTask fetches a single task by id.
func (c *Client) GetTask(ctx context.Context, id int64) (api.Task, error) {
	var task api.Task
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/tasks/%d", id), nil, &task, true)
	return task, err
}

// CreateTask creates a task and returns it with its assigned id.
func (c *Client) CreateTask(ctx context.Context, req api.TaskRequest) (api.Task, error) {
	var task api.Task
	err := c.do(ctx, http.MethodPost, "/tasks", req, &task, true)
	return task, err
}

// UpdateTask overwrites a task. Title and description must both be set.
func (c *Client) UpdateTask(ctx context.Context, id int64, req api.TaskRequest) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/tasks/%d", id), req, nil, true)
}

// DeleteTask removes a task.
func (c *Client) DeleteTask(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/tasks/%d", id), nil, nil, true)
}

// do performs a request, JSON-encoding body when non-nil and decoding the
// response into out when non-nil. Non-2xx responses come back as *APIError
// carrying the server's error message.
func (c *Client) do(
	ctx context.Context,
	method, path string,
	body, out any,
	authenticated bool,
) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authenticated {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr api.ErrorResponse
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		return &APIError{StatusCode: resp.StatusCode, Message: apiErr.Error}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}
