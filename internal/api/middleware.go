package api

import (
	"net/http"

	"github.com/bptrack/bptrack/internal/api/shared"
)

// TraceIDMiddleware attaches a fresh trace ID to every request context so
// error responses and log lines can be correlated.
func TraceIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := shared.SetTraceID(r.Context())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
