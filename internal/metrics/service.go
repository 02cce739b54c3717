package metrics

import (
	"math"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		PlayersAdded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "elo_players_added_total",
			Help: "The total number of players added to the ladder.",
		}),
		MatchesRecorded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "elo_matches_recorded_total",
			Help: "The total number of matches applied to ratings, by result for player one.",
		}, []string{"result"}),
		Rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "elo_operations_rejected_total",
			Help: "The total number of ladder operations rejected, by reason.",
		}, []string{"reason"}),
		RatingChange: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "elo_rating_change_points",
			Help:    "The absolute rating change of player one per match.",
			Buckets: []float64{1, 2, 4, 8, 12, 16, 20, 24, 28, 32, 48, 64},
		}),
		Players: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "elo_players",
			Help: "The number of players currently registered.",
		}),
		StorageDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "elo_storage_duration_seconds",
			Help:    "The duration of storage load and save operations.",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"operation"}),
		NotifSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "elo_notifications_sent_total",
			Help: "The total number of notifications successfully sent.",
		}),
		NotifFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "elo_notifications_failed_total",
			Help: "The total number of notifications that failed to send.",
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "elo_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.PlayersAdded,
		s.MatchesRecorded,
		s.Rejected,
		s.RatingChange,
		s.Players,
		s.StorageDuration,
		s.NotifSent,
		s.NotifFailed,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncPlayersAdded() {
	s.PlayersAdded.Inc()
}

func (s *Service) IncMatchesRecorded(result string) {
	s.MatchesRecorded.WithLabelValues(result).Inc()
}

func (s *Service) IncRejected(reason string) {
	s.Rejected.WithLabelValues(reason).Inc()
}

func (s *Service) ObserveRatingChange(points float64) {
	s.RatingChange.Observe(math.Abs(points))
}

func (s *Service) SetPlayers(count int) {
	s.Players.Set(float64(count))
}

func (s *Service) ObserveStorageDuration(operation string, seconds float64) {
	s.StorageDuration.WithLabelValues(operation).Observe(seconds)
}

func (s *Service) IncNotifSent() {
	s.NotifSent.Inc()
}

func (s *Service) IncNotifFailed() {
	s.NotifFailed.Inc()
}

func (s *Service) SetStartupTime(duration float64) {
	s.StartupTimeSeconds.Set(duration)
}
