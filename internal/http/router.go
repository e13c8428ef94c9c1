package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/taskhive/taskhive/internal/service"
	"github.com/taskhive/taskhive/internal/store"
	"github.com/taskhive/taskhive/pkg/httpx"
	"github.com/taskhive/taskhive/pkg/slogx"
	"github.com/taskhive/taskhive/pkg/tokenx"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     tokenx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store       store.Store
	UserService *service.UserService
	TaskService *service.TaskService
	Tokens      *tokenx.Issuer
}

func NewRouter(
	verifier tokenx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Default middleware chain applied to every route.
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerTasks()
	r.registerSystem()
}

// ServeHTTP implements http.Handler for Router and applies the global
// middleware chain.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	registerHandler := &RegisterHandler{UserService: r.UserService}
	loginHandler := &LoginHandler{
		UserService: r.UserService,
		Tokens:      r.Tokens,
	}

	r.Mux.Handle("POST /register", registerHandler)
	r.Mux.Handle("POST /login", loginHandler)
}

func (r *Router) registerTasks() {
	h := &TasksHandler{TaskService: r.TaskService}

	// Every task route sits behind the bearer-token gate; handlers read
	// the authenticated user id from the request context.
	gate := httpx.AuthnMiddleware(r.verifier)

	r.Mux.Handle("GET /tasks", httpx.Chain(http.HandlerFunc(h.HandleList), gate))
	r.Mux.Handle("POST /tasks", httpx.Chain(http.HandlerFunc(h.HandleCreate), gate))
	r.Mux.Handle("GET /tasks/{id}", httpx.Chain(http.HandlerFunc(h.HandleGet), gate))
	r.Mux.Handle("PUT /tasks/{id}", httpx.Chain(http.HandlerFunc(h.HandleUpdate), gate))
	r.Mux.Handle("DELETE /tasks/{id}", httpx.Chain(http.HandlerFunc(h.HandleDelete), gate))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store))
}
