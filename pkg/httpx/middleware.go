package httpx

import "net/http"

// Middleware decorates an http.Handler with cross-cutting behaviour.
type Middleware func(http.Handler) http.Handler

// Chain wraps h with the given middlewares so that the first middleware in
// the list is the outermost one at request time.
func Chain(h http.Handler, mws ...Middleware) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}
