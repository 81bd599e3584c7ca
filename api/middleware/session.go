package middleware

import (
	"net/http"

	"github.com/tusharoffice40/Whole-X/pkg/logger"
	"github.com/tusharoffice40/Whole-X/pkg/session"
)

const sessionHeader = "X-WholeX-Session"

// Session resolves the storefront session for the request, minting a new
// one when the header is absent or stale, and echoes the token back so
// the client can carry it forward.
func Session(manager *session.Manager, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := manager.Resolve(r.Header.Get(sessionHeader))

			w.Header().Set(sessionHeader, sess.ID())

			ctx := WithSession(r.Context(), sess)
			if logg != nil {
				ctx = logg.WithSessionID(ctx, sess.ID())
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
