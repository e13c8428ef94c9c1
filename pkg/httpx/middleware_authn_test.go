package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/taskhive/taskhive/pkg/tokenx"
)

func newTestIssuer() *tokenx.Issuer {
	return tokenx.New([]byte("authn-middleware-test-secret-key"), "taskhive-test", time.Hour)
}

func protectedEcho(t *testing.T) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := UserIDFromContext(r.Context())
		require.True(t, ok, "user id should be injected by the gate")
		require.Equal(t, int64(42), userID)
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthnMiddleware(t *testing.T) {
	t.Parallel()

	issuer := newTestIssuer()
	handler := Chain(protectedEcho(t), AuthnMiddleware(issuer))

	t.Run("valid token passes and injects user id", func(t *testing.T) {
		token, err := issuer.Issue(42)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing header is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusForbidden, rec.Code)
		require.JSONEq(t, `{"error":"token is missing or invalid"}`, rec.Body.String())
	})

	t.Run("non-bearer scheme is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
		req.Header.Set("Authorization", "Bearer not.a.token")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		base := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
		clock := base
		frozen := tokenx.New([]byte("authn-middleware-test-secret-key"), "taskhive-test", time.Hour).
			WithClock(func() time.Time { return clock })
		gated := Chain(protectedEcho(t), AuthnMiddleware(frozen))

		token, err := frozen.Issue(42)
		require.NoError(t, err)
		clock = base.Add(2 * time.Hour)

		req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		gated.ServeHTTP(rec, req)

		require.Equal(t, http.StatusForbidden, rec.Code)
	})
}
