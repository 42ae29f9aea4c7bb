package requestid

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestFromContext(t *testing.T) {
	assert.Equal(t, "abc", FromContext(WithRequestID(context.Background(), "abc")))
	assert.Equal(t, "", FromContext(context.Background()))
	assert.Equal(t, "", FromContext(context.WithValue(context.Background(), RequestIDKey, 42)))
}

func serve(header string) (seen string, rec *httptest.ResponseRecorder) {
	h := Middleware(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = FromContext(r.Context())
	}))
	req := httptest.NewRequest(http.MethodGet, "/articles", nil)
	if header != "" {
		req.Header.Set(RequestIDHeader, header)
	}
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return seen, rec
}

func TestMiddleware(t *testing.T) {
	tests := []struct {
		name    string
		inbound string
		keepsIt bool
	}{
		{"propagates proxy id", "req-7f3a.b_2", true},
		{"generates when missing", "", false},
		{"rejects newline injection", "abc\nlevel=ERROR", false},
		{"rejects spaces", "a b", false},
		{"rejects overlong id", strings.Repeat("x", 65), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seen, rec := serve(tt.inbound)

			assert.Equal(t, seen, rec.Header().Get(RequestIDHeader))
			if tt.keepsIt {
				assert.Equal(t, tt.inbound, seen)
				return
			}
			_, err := uuid.Parse(seen)
			assert.NoError(t, err, "expected generated UUID, got %q", seen)
		})
	}
}

func TestMiddleware_UniquePerRequest(t *testing.T) {
	a, _ := serve("")
	b, _ := serve("")
	assert.NotEqual(t, a, b)
}
