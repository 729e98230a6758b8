package requesttime

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"doccheck/pkg/requestcontext"
)

func TestMiddlewareWithClock(t *testing.T) {
	fixed := time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC)

	var seen time.Time
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = requestcontext.Now(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	MiddlewareWithClock(func() time.Time { return fixed })(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, fixed, seen)
}
