package handlers

import (
	"net/http"
	"strconv"

	"github.com/linesmerrill/devcamper-api/api"
)

// DefaultSlowest is how many of the slowest routes the summary lists
const DefaultSlowest = 10

// Metrics exported for testing purposes
type Metrics struct {
	Collector *api.MetricsCollector
}

// MetricsHandler returns the request metrics collected since startup
func (m Metrics) MetricsHandler(w http.ResponseWriter, r *http.Request) {
	slowest, err := strconv.Atoi(r.URL.Query().Get("slowest"))
	if err != nil || slowest < 1 {
		slowest = DefaultSlowest
	}
	writeData(w, http.StatusOK, formatSummary(m.Collector.Summary(slowest)))
}

// formatSummary converts durations to milliseconds
func formatSummary(sum api.MetricsSummary) map[string]interface{} {
	routes := make(map[string]interface{}, len(sum.Routes))
	for k, v := range sum.Routes {
		routes[k] = formatRoute(v)
	}
	slowest := make([]map[string]interface{}, len(sum.Slowest))
	for i, v := range sum.Slowest {
		slowest[i] = formatRoute(v)
	}
	return map[string]interface{}{
		"since":         sum.Since,
		"totalRequests": sum.TotalRequests,
		"totalErrors":   sum.TotalErrors,
		"errorRate":     sum.ErrorRate,
		"routes":        routes,
		"slowest":       slowest,
	}
}

func formatRoute(route *api.RouteMetrics) map[string]interface{} {
	return map[string]interface{}{
		"method":      route.Method,
		"path":        route.Path,
		"count":       route.Count,
		"errorCount":  route.ErrorCount,
		"avgTime":     route.AvgTime.Milliseconds(),
		"minTime":     route.MinTime.Milliseconds(),
		"maxTime":     route.MaxTime.Milliseconds(),
		"p95Time":     route.P95Time.Milliseconds(),
		"lastRequest": route.LastRequest,
	}
}
