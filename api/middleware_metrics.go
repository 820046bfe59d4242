package api

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestIDHeader carries the id assigned to every request
const RequestIDHeader = "X-Request-ID"

// SlowRequest is the duration above which a request is logged
const SlowRequest = time.Second

// Middleware assigns a request id and records the request in mc
func (mc *MetricsCollector) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		w.Header().Set(RequestIDHeader, requestID)

		start := time.Now()
		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)
		duration := time.Since(start)

		mc.RecordTrace(RequestTrace{
			RequestID: requestID,
			Method:    r.Method,
			Path:      r.URL.Path,
			Status:    rw.statusCode,
			StartTime: start,
			Duration:  duration,
		})

		if duration > SlowRequest {
			zap.S().Warnw("slow request",
				"requestId", requestID,
				"method", r.Method,
				"path", r.URL.Path,
				"duration", duration,
				"status", rw.statusCode)
		}
	})
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
