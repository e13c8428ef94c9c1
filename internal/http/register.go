package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/taskhive/taskhive/internal/service"
	"github.com/taskhive/taskhive/pkg/api"
	"github.com/taskhive/taskhive/pkg/httpx"
	"github.com/taskhive/taskhive/pkg/slogx"
)

type RegisterHandler struct {
	UserService *service.UserService
}

// ServeHTTP creates a new user account from a username/password pair.
// Duplicate usernames are reported as a 400 conflict.
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req api.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if req.Username == "" || req.Password == "" {
		httpx.WriteError(w, http.StatusBadRequest, "username and password are required")
		return
	}

	user, err := h.UserService.Register(ctx, req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUsernameTaken):
			httpx.WriteError(w, http.StatusBadRequest, "username already exists")
		default:
			log.Error("failed to register user", "err", err)
			httpx.WriteError(w, http.StatusInternalServerError, "failed to create user")
		}
		return
	}

	log.Info("user registered", "user_id", user.ID)
	httpx.WriteJSON(w, http.StatusCreated, api.MessageResponse{Message: "user created successfully"})
}
