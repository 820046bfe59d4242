package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeRoutePath(t *testing.T) {
	tests := map[string]string{
		"/api/v1/bootcamps":                                          "/api/v1/bootcamps",
		"/api/v1/bootcamps/5d713995b721c3bb38c1f5d0":                 "/api/v1/bootcamps/{id}",
		"/api/v1/bootcamps/5d713995b721c3bb38c1f5d0/courses":         "/api/v1/bootcamps/{id}/courses",
		"/api/v1/bootcamps/radius/02118/10":                          "/api/v1/bootcamps/radius/{n}/{n}",
		"/api/v1/bootcamps/radius/02118/2.5":                         "/api/v1/bootcamps/radius/{n}/{n}",
		"/api/v1/auth/resetpassword/5d713995b721c3bb38c1f5d0abcdef12": "/api/v1/auth/resetpassword/5d713995b721c3bb38c1f5d0abcdef12",
	}
	for in, want := range tests {
		assert.Equal(t, want, normalizeRoutePath(in), in)
	}
}

func TestPercentile(t *testing.T) {
	assert.Equal(t, time.Duration(0), percentile(nil, 0.95))

	var samples []time.Duration
	for i := 1; i <= 100; i++ {
		samples = append(samples, time.Duration(i)*time.Millisecond)
	}
	assert.Equal(t, 96*time.Millisecond, percentile(samples, 0.95))
	assert.Equal(t, 100*time.Millisecond, percentile(samples, 1))
}

func TestMetricsCollector_MaxSamples(t *testing.T) {
	mc := NewMetricsCollector(2)
	for _, d := range []time.Duration{100, 1, 1} {
		mc.RecordTrace(RequestTrace{Method: "GET", Path: "/health", Status: 200, Duration: d * time.Millisecond})
	}

	sum := mc.Summary(DefaultMaxSamples)
	route := sum.Routes["GET /health"]
	require.NotNil(t, route)
	assert.Equal(t, int64(3), route.Count)
	assert.Equal(t, 100*time.Millisecond, route.MaxTime)
	assert.Equal(t, time.Millisecond, route.P95Time)
	assert.Len(t, mc.samples["GET /health"], 2)
}

func TestMetricsCollector_Middleware(t *testing.T) {
	mc := NewMetricsCollector(DefaultMaxSamples)
	h := mc.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	req := httptest.NewRequest("GET", "/api/v1/courses/5d725a4a7b292f5f8ceff789", nil)
	req.Header.Set(RequestIDHeader, "abc")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, "abc", rr.Header().Get(RequestIDHeader))
	sum := mc.Summary(1)
	assert.Equal(t, int64(1), sum.TotalErrors)
	assert.Equal(t, float64(1), sum.ErrorRate)
	require.Len(t, sum.Slowest, 1)
	assert.Equal(t, "/api/v1/courses/{id}", sum.Slowest[0].Path)
}
