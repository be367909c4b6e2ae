package middleware

import (
	"log/slog"
	"net/http"
	"regexp"

	"github.com/phrazzld/taskdeck-api/internal/api/shared"
	"github.com/phrazzld/taskdeck-api/internal/platform/logger"
)

// TraceHeader carries the trace ID on requests and responses.
const TraceHeader = "X-Request-ID"

var validTraceID = regexp.MustCompile(`^[A-Za-z0-9-]{8,64}$`)

// TraceMiddleware adds a trace ID to the request context.
// An incoming X-Request-ID is reused when well formed; otherwise a new ID is
// generated. The ID is echoed in the response header and attached as
// request_id to every logger obtained from the request context. Apply it
// early in the middleware chain.
func TraceMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(TraceHeader)
		if !validTraceID.MatchString(traceID) {
			traceID = shared.NewTraceID()
		}

		ctx := shared.WithTraceID(r.Context(), traceID)
		ctx = logger.WithRequestID(ctx, traceID)
		w.Header().Set(TraceHeader, traceID)

		logger.FromContext(ctx).Debug("request started",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("remote_addr", r.RemoteAddr))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
