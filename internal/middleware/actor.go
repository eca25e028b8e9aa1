package middleware

import (
	"net/http"
	"strings"

	"github.com/pwallin/corpgraph/internal/auth"
)

// ActorHeader names the request header carrying the acting user for change
// log attribution.
const ActorHeader = "X-Actor"

// ActorMiddleware copies the acting user from the request header into the
// context. Requests without the header fall back to the system actor when the
// ledger records them.
func ActorMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if actor := strings.TrimSpace(r.Header.Get(ActorHeader)); actor != "" {
			r = r.WithContext(auth.ContextWithActor(r.Context(), actor))
		}
		next.ServeHTTP(w, r)
	})
}
