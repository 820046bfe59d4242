package api

import (
	"context"
	"time"
)

// QueryTimeout bounds a database call made while serving a request
const QueryTimeout = 10 * time.Second

// JobTimeout bounds one run of a scheduled job
const JobTimeout = 2 * time.Minute

// WithQueryTimeout derives a context bounded by QueryTimeout
func WithQueryTimeout(parent context.Context) (context.Context, context.CancelFunc) {
	return withTimeout(parent, QueryTimeout)
}

// WithJobTimeout derives a context bounded by JobTimeout
func WithJobTimeout(parent context.Context) (context.Context, context.CancelFunc) {
	return withTimeout(parent, JobTimeout)
}

func withTimeout(parent context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return context.WithTimeout(parent, d)
}
