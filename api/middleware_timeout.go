package api

import (
	"context"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/linesmerrill/devcamper-api/models"
)

// TimeoutMiddleware answers with 408 when a handler runs longer than timeout.
// Whatever the handler writes afterwards is dropped.
func TimeoutMiddleware(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			tw := &timeoutWriter{w: w, h: make(http.Header)}
			done := make(chan struct{})
			go func() {
				defer close(done)
				next.ServeHTTP(tw, r.WithContext(ctx))
			}()

			select {
			case <-done:
				tw.flush()
			case <-ctx.Done():
				tw.mu.Lock()
				defer tw.mu.Unlock()
				tw.timedOut = true
				zap.S().Warnw("request timeout",
					"path", r.URL.Path,
					"method", r.Method,
					"timeout", timeout)
				WriteJSON(w, http.StatusRequestTimeout, models.ErrorMessageResponse{Error: "Request timeout"})
			}
		})
	}
}

// timeoutWriter buffers the handler response until it is known whether the
// request finished in time
type timeoutWriter struct {
	mu       sync.Mutex
	w        http.ResponseWriter
	h        http.Header
	status   int
	body     []byte
	timedOut bool
}

func (tw *timeoutWriter) Header() http.Header {
	return tw.h
}

func (tw *timeoutWriter) WriteHeader(status int) {
	tw.mu.Lock()
	defer tw.mu.Unlock()
	if tw.status == 0 {
		tw.status = status
	}
}

func (tw *timeoutWriter) Write(b []byte) (int, error) {
	tw.mu.Lock()
	defer tw.mu.Unlock()
	if tw.timedOut {
		return 0, http.ErrHandlerTimeout
	}
	if tw.status == 0 {
		tw.status = http.StatusOK
	}
	tw.body = append(tw.body, b...)
	return len(b), nil
}

func (tw *timeoutWriter) flush() {
	tw.mu.Lock()
	defer tw.mu.Unlock()
	dst := tw.w.Header()
	for k, v := range tw.h {
		dst[k] = v
	}
	if tw.status == 0 {
		tw.status = http.StatusOK
	}
	tw.w.WriteHeader(tw.status)
	_, _ = tw.w.Write(tw.body)
}
