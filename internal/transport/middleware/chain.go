package middleware

import "net/http"

// Middleware decorates an http.Handler with one cross-cutting concern.
type Middleware func(http.Handler) http.Handler

// Chain folds middleware into a single Middleware. The first argument
// becomes the outermost wrapper: Chain(a, b)(h) serves a request through
// a, then b, then h.
func Chain(mws ...Middleware) Middleware {
	return func(final http.Handler) http.Handler {
		wrapped := final
		for i := len(mws) - 1; i >= 0; i-- {
			wrapped = mws[i](wrapped)
		}
		return wrapped
	}
}
