package handler

import (
	"context"
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"pdf-extract-server/internal/domain"

	"github.com/google/uuid"
)

// RequestID stores a request id in the context and echoes it in the response.
// A client-supplied X-Request-ID is kept.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)

		ctx := context.WithValue(r.Context(), requestIDContextKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// statusRecorder remembers the status code written by the next handler
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

// RequestLogger logs one line per request
type RequestLogger struct {
	logger domain.Logger
}

// NewRequestLogger creates a new request logging middleware
func NewRequestLogger(logger domain.Logger) *RequestLogger {
	return &RequestLogger{logger: logger}
}

// Middleware returns the request logging middleware function
func (m *RequestLogger) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		requestID, _ := GetRequestIDFromContext(r)
		fields := []interface{}{
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", time.Since(start).Milliseconds(),
			"request_id", requestID,
		}
		if rec.status >= http.StatusInternalServerError {
			m.logger.Warn("Request failed", fields...)
			return
		}
		m.logger.Info("Request handled", fields...)
	})
}

// Recoverer turns a handler panic into a 500 JSON response
type Recoverer struct {
	logger domain.Logger
	debug  bool
}

// NewRecoverer creates a new panic recovery middleware. With debug on the
// stack trace is logged.
func NewRecoverer(logger domain.Logger, debug bool) *Recoverer {
	return &Recoverer{logger: logger, debug: debug}
}

// Middleware returns the recovery middleware function
func (m *Recoverer) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			err := fmt.Errorf("%v", rec)
			requestID, _ := GetRequestIDFromContext(r)
			fields := []interface{}{"path", r.URL.Path, "request_id", requestID}
			if m.debug {
				fields = append(fields, "stack", string(debug.Stack()))
			}
			m.logger.Error("Recovered from panic", err, fields...)

			writeError(w, http.StatusInternalServerError, err.Error())
		}()

		next.ServeHTTP(w, r)
	})
}
