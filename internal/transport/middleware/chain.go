package middleware

import "net/http"

// Middleware wraps an http.Handler with cross-cutting behavior.
type Middleware func(http.Handler) http.Handler

// Chain folds the given middleware into one. The first argument
// becomes the outermost wrapper: Chain(a, b)(h) serves a(b(h)), so
// requests pass a first. The app relies on this to keep RequestID
// ahead of Recovery and Auth ahead of the handlers.
func Chain(mws ...Middleware) Middleware {
	return func(h http.Handler) http.Handler {
		for i := len(mws) - 1; i >= 0; i-- {
			h = mws[i](h)
		}
		return h
	}
}
