// Package requestid assigns a correlation id to every request.
package requestid

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"doccheck/pkg/requestcontext"
)

// Header is the header used to propagate request ids.
const Header = "X-Request-ID"

const maxLength = 64

// Middleware reuses a caller-supplied X-Request-ID when it is reasonable,
// otherwise generates a new UUID. The id is echoed on the response.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := strings.TrimSpace(r.Header.Get(Header))
		if reqID == "" || len(reqID) > maxLength {
			reqID = uuid.NewString()
		}
		w.Header().Set(Header, reqID)
		ctx := requestcontext.WithRequestID(r.Context(), reqID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
