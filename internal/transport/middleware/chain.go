package middleware

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/lexicon-journal/internal/config"
)

// Middleware is a function that wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain combines middleware so that Chain(mw1, mw2)(h) == mw1(mw2(h)):
// the first one listed runs outermost.
func Chain(mws ...Middleware) Middleware {
	return func(final http.Handler) http.Handler {
		for i := len(mws) - 1; i >= 0; i-- {
			final = mws[i](final)
		}
		return final
	}
}

// Stack is the middleware every journal request passes through. The request
// ID comes first so that panics and access logs can carry it.
func Stack(logger *slog.Logger, cors config.CORSConfig) Middleware {
	return Chain(
		RequestID,
		Recovery(logger),
		Logger(logger),
		CORS(cors),
	)
}
