package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/mauv0809/elo-ladder/internal/ladder"
)

func NewServer(svc *ladder.Service, metricsHandler http.Handler) *Server {
	server := &Server{
		Ladder:         svc,
		MetricsHandler: metricsHandler,
		Router:         mux.NewRouter(),
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// Everything except /metrics goes through Chain so request logging and
	// the verbose flag apply uniformly.
	s.Router.Handle("/metrics", s.MetricsHandler).Methods(http.MethodGet)
	s.Router.Handle("/health", Chain(s.HealthCheckHandler(), paramsMiddleware)).Methods(http.MethodGet)
	s.Router.Handle("/leaderboard", Chain(s.LeaderboardHandler(), paramsMiddleware)).Methods(http.MethodGet)
	s.Router.Handle("/players/{name}", Chain(s.PlayerHandler(), paramsMiddleware)).Methods(http.MethodGet)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
