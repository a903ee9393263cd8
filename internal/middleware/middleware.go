package middleware

import "net/http"

type Middleware func(http.Handler) http.Handler

// Wrap applies mws to h so that the first middleware listed is the outermost
// one, i.e. the first to see a request.
func Wrap(h http.Handler, mws ...Middleware) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}
