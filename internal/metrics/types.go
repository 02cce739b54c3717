package metrics

import "github.com/prometheus/client_golang/prometheus"

// Service holds all the Prometheus metrics for the application.
// By defining them all in one place, we ensure consistency in naming and labeling.
type Service struct {
	PlayersAdded       prometheus.Counter
	MatchesRecorded    *prometheus.CounterVec
	Rejected           *prometheus.CounterVec
	RatingChange       prometheus.Histogram
	Players            prometheus.Gauge
	StorageDuration    *prometheus.HistogramVec
	NotifSent          prometheus.Counter
	NotifFailed        prometheus.Counter
	StartupTimeSeconds prometheus.Gauge
}
