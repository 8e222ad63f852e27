package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestIDHeader carries the request correlation id
const RequestIDHeader = "X-Request-ID"

type requestIDKey struct{}

// requestIDMiddleware tags every request with an id, reusing one supplied by
// the client, and logs the request once it completes.
func (s *Server) requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(RequestIDHeader)
		if _, err := uuid.Parse(requestID); err != nil {
			requestID = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, requestID)

		startTime := time.Now()
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey{}, requestID)))

		s.logger.Debug("Handled request",
			zap.String("request_id", requestID),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("elapsed", time.Since(startTime)))
	})
}

// requestLogger returns the server logger annotated with the request id
func (s *Server) requestLogger(ctx context.Context) *zap.Logger {
	if requestID, ok := ctx.Value(requestIDKey{}).(string); ok {
		return s.logger.With(zap.String("request_id", requestID))
	}
	return s.logger
}
