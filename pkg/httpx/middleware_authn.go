package httpx

import (
	"net/http"
	"strings"

	"github.com/taskhive/taskhive/pkg/slogx"
	"github.com/taskhive/taskhive/pkg/tokenx"
)

// AuthnMiddleware gates protected routes behind bearer authentication. A
// missing or malformed Authorization header, an invalid signature and an
// expired token all produce the same 403 to the caller; the distinction
// is only logged. On success the resolved user id is injected into the
// request context for downstream handlers.
func AuthnMiddleware(v tokenx.Verifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			authz := r.Header.Get("Authorization")
			if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
				WriteError(w, http.StatusForbidden, "token is missing or invalid")
				return
			}
			raw := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer"))

			userID, err := v.Verify(raw)
			if err != nil {
				WriteError(w, http.StatusForbidden, "token is missing or invalid")
				log.Warn("token verification failed", "err", err)
				return
			}

			ctx = ContextWithUserID(ctx, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
