package httpapi

//
// Metrics definitions
//

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// metricsSummaryObjectives returns the summary objectives for promauto.NewSummary.
func metricsSummaryObjectives() map[float64]float64 {
	return map[float64]float64{
		0.5:  0.010,
		0.9:  0.010,
		0.99: 0.001,
	}
}

var (
	// metricRequestsCount counts the number of API requests we issued.
	metricRequestsCount = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "odesk_api_requests_count",
		Help: "Total number of oDesk API requests by method and status code",
	}, []string{"method", "code"})

	// metricCallDurationSeconds summarizes the duration of round trips that got a response.
	metricCallDurationSeconds = promauto.NewSummary(prometheus.SummaryOpts{
		Name:       "odesk_api_call_duration_seconds",
		Help:       "Summarizes the time to complete an oDesk API call (in seconds)",
		Objectives: metricsSummaryObjectives(),
	})
)
