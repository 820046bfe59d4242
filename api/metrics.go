package api

import (
	"regexp"
	"sort"
	"sync"
	"time"
)

// RequestTrace is the timing of a single request
type RequestTrace struct {
	RequestID string        `json:"requestId"`
	Method    string        `json:"method"`
	Path      string        `json:"path"`
	Status    int           `json:"status"`
	StartTime time.Time     `json:"startTime"`
	Duration  time.Duration `json:"duration"`
}

// RouteMetrics aggregates the requests made to one route
type RouteMetrics struct {
	Method      string        `json:"method"`
	Path        string        `json:"path"`
	Count       int64         `json:"count"`
	ErrorCount  int64         `json:"errorCount"`
	TotalTime   time.Duration `json:"totalTime"`
	AvgTime     time.Duration `json:"avgTime"`
	MinTime     time.Duration `json:"minTime"`
	MaxTime     time.Duration `json:"maxTime"`
	P95Time     time.Duration `json:"p95Time"`
	LastRequest time.Time     `json:"lastRequest"`
}

// MetricsSummary is the body of the metrics endpoint
type MetricsSummary struct {
	Since         time.Time                `json:"since"`
	TotalRequests int64                    `json:"totalRequests"`
	TotalErrors   int64                    `json:"totalErrors"`
	ErrorRate     float64                  `json:"errorRate"`
	Routes        map[string]*RouteMetrics `json:"routes"`
	Slowest       []*RouteMetrics          `json:"slowest"`
}

// MetricsCollector aggregates request traces in memory
type MetricsCollector struct {
	mu            sync.RWMutex
	since         time.Time
	maxSamples    int
	routes        map[string]*RouteMetrics
	samples       map[string][]time.Duration
	totalRequests int64
	totalErrors   int64
}

// DefaultMaxSamples is the number of durations kept per route
const DefaultMaxSamples = 1000

// NewMetricsCollector keeps the last maxSamples durations of every route for
// the percentile
func NewMetricsCollector(maxSamples int) *MetricsCollector {
	return &MetricsCollector{
		since:      time.Now(),
		maxSamples: maxSamples,
		routes:     make(map[string]*RouteMetrics),
		samples:    make(map[string][]time.Duration),
	}
}

// RecordTrace adds trace to the route it belongs to
func (mc *MetricsCollector) RecordTrace(trace RequestTrace) {
	path := normalizeRoutePath(trace.Path)
	key := trace.Method + " " + path

	mc.mu.Lock()
	defer mc.mu.Unlock()

	m, ok := mc.routes[key]
	if !ok {
		m = &RouteMetrics{Method: trace.Method, Path: path, MinTime: trace.Duration}
		mc.routes[key] = m
	}
	m.Count++
	m.TotalTime += trace.Duration
	m.AvgTime = m.TotalTime / time.Duration(m.Count)
	if trace.Duration < m.MinTime {
		m.MinTime = trace.Duration
	}
	if trace.Duration > m.MaxTime {
		m.MaxTime = trace.Duration
	}
	m.LastRequest = trace.StartTime
	mc.totalRequests++
	if trace.Status >= 400 {
		m.ErrorCount++
		mc.totalErrors++
	}

	s := append(mc.samples[key], trace.Duration)
	if len(s) > mc.maxSamples {
		s = s[len(s)-mc.maxSamples:]
	}
	mc.samples[key] = s
	m.P95Time = percentile(s, 0.95)
}

// Summary returns a copy of everything collected so far
func (mc *MetricsCollector) Summary(slowest int) MetricsSummary {
	mc.mu.RLock()
	defer mc.mu.RUnlock()

	sum := MetricsSummary{
		Since:         mc.since,
		TotalRequests: mc.totalRequests,
		TotalErrors:   mc.totalErrors,
		Routes:        make(map[string]*RouteMetrics, len(mc.routes)),
		Slowest:       []*RouteMetrics{},
	}
	if mc.totalRequests > 0 {
		sum.ErrorRate = float64(mc.totalErrors) / float64(mc.totalRequests)
	}
	for k, v := range mc.routes {
		m := *v
		sum.Routes[k] = &m
		sum.Slowest = append(sum.Slowest, &m)
	}
	sort.Slice(sum.Slowest, func(i, j int) bool {
		return sum.Slowest[i].AvgTime > sum.Slowest[j].AvgTime
	})
	if len(sum.Slowest) > slowest {
		sum.Slowest = sum.Slowest[:slowest]
	}
	return sum
}

func percentile(samples []time.Duration, p float64) time.Duration {
	if len(samples) == 0 {
		return 0
	}
	sorted := append([]time.Duration(nil), samples...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	idx := int(float64(len(sorted)) * p)
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	return sorted[idx]
}

var (
	objectIDSegment = regexp.MustCompile(`/[0-9a-fA-F]{24}(/|$)`)
	numberSegment   = regexp.MustCompile(`/\d+(\.\d+)?(/|$)`)
)

// normalizeRoutePath replaces ids and numbers in path so that requests to the
// same route share metrics, e.g.
//   - /api/v1/bootcamps/5d713995b721c3bb38c1f5d0/courses -> /api/v1/bootcamps/{id}/courses
//   - /api/v1/bootcamps/radius/02118/10 -> /api/v1/bootcamps/radius/{n}/{n}
func normalizeRoutePath(path string) string {
	for objectIDSegment.MatchString(path) {
		path = objectIDSegment.ReplaceAllString(path, "/{id}$1")
	}
	for numberSegment.MatchString(path) {
		path = numberSegment.ReplaceAllString(path, "/{n}$2")
	}
	return path
}
