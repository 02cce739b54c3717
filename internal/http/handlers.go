package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gorilla/mux"
)

func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.FromContext(r.Context()).Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

func (s *Server) LeaderboardHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries := s.Ladder.Leaderboard()
		resp := make([]playerResponse, 0, len(entries))
		for _, e := range entries {
			resp = append(resp, playerResponse{
				Name:        e.Name,
				Rating:      e.Rating,
				GamesPlayed: e.GamesPlayed,
				Wins:        e.Wins,
				Losses:      e.Losses,
				Draws:       e.Draws,
				Rank:        e.Rank,
			})
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func (s *Server) PlayerHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := mux.Vars(r)["name"]
		for _, e := range s.Ladder.Leaderboard() {
			if e.Name != name {
				continue
			}
			writeJSON(w, http.StatusOK, playerResponse{
				Name:        e.Name,
				Rating:      e.Rating,
				GamesPlayed: e.GamesPlayed,
				Wins:        e.Wins,
				Losses:      e.Losses,
				Draws:       e.Draws,
				Rank:        e.Rank,
			})
			return
		}
		log.FromContext(r.Context()).Debug("Player not found", "name", name)
		writeJSON(w, http.StatusNotFound, errorResponse{Error: fmt.Sprintf("player %q not found", name)})
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error("Failed to encode response", "error", err)
	}
}
