package middleware

import (
	"context"
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	pkgmw "github.com/little-samo/samo-api/pkg/middleware"
	"github.com/rs/zerolog/log"
)

// responseWriter wraps http.ResponseWriter to capture status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	bytes      int
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	n, err := rw.ResponseWriter.Write(b)
	rw.bytes += n
	return n, err
}

// Flush keeps streaming responses (MCP over SSE) working through the wrapper.
func (rw *responseWriter) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// Logger returns structured request logging middleware. Contract routes
// record their operation in the request context through Operation.
func Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := newResponseWriter(w)
		op := &operationHolder{}

		next.ServeHTTP(rw, r.WithContext(withHolder(r.Context(), op)))

		duration := time.Since(start)

		event := log.Info()
		if rw.statusCode >= 400 {
			event = log.Warn()
		}
		if rw.statusCode >= 500 {
			event = log.Error()
		}

		if op.name != "" {
			event = event.Str("operation", op.name)
		}
		if op.subject != "" {
			event = event.Str("subject", op.subject)
		}
		event.
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rw.statusCode).
			Int("bytes", rw.bytes).
			Dur("duration", duration).
			Str("request_id", chimw.GetReqID(r.Context())).
			Str("remote", r.RemoteAddr).
			Str("user_agent", r.UserAgent()).
			Msg("request")
	})
}

// Operation tags the request with the contract operation it serves, for
// logging and tracing.
func Operation(name string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := pkgmw.SetOperation(r.Context(), name)
			if h := holderFrom(ctx); h != nil {
				h.name = name
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// operationHolder is filled in by inner middleware so the outer logger can
// report what the request resolved to.
type operationHolder struct {
	name    string
	subject string
}

const holderKey ctxKey = "log-holder"

type ctxKey string

func withHolder(ctx context.Context, h *operationHolder) context.Context {
	return context.WithValue(ctx, holderKey, h)
}

func holderFrom(ctx context.Context) *operationHolder {
	h, _ := ctx.Value(holderKey).(*operationHolder)
	return h
}
