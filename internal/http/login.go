package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/taskhive/taskhive/internal/service"
	"github.com/taskhive/taskhive/pkg/api"
	"github.com/taskhive/taskhive/pkg/httpx"
	"github.com/taskhive/taskhive/pkg/slogx"
	"github.com/taskhive/taskhive/pkg/tokenx"
)

type LoginHandler struct {
	UserService *service.UserService
	Tokens      *tokenx.Issuer
}

// ServeHTTP verifies a username/password pair and issues a bearer token.
// Bad credentials are a 401; the response never says whether the username
// or the password was wrong.
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req api.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if req.Username == "" || req.Password == "" {
		httpx.WriteError(w, http.StatusBadRequest, "username and password are required")
		return
	}

	user, err := h.UserService.Authenticate(ctx, req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			httpx.WriteError(w, http.StatusUnauthorized, "invalid username or password")
		default:
			log.Error("failed to authenticate user", "err", err)
			httpx.WriteError(w, http.StatusInternalServerError, "failed to login")
		}
		return
	}

	token, err := h.Tokens.Issue(user.ID)
	if err != nil {
		log.Error("failed to issue token", "user_id", user.ID, "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "failed to login")
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, api.TokenResponse{Token: token})
}
