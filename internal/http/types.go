package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/mauv0809/elo-ladder/internal/ladder"
)

type Server struct {
	Ladder         *ladder.Service
	MetricsHandler http.Handler
	Router         *mux.Router
}

// playerResponse is the JSON shape of a single player.
type playerResponse struct {
	Name        string  `json:"name"`
	Rating      float64 `json:"rating"`
	GamesPlayed int     `json:"games_played"`
	Wins        int     `json:"wins"`
	Losses      int     `json:"losses"`
	Draws       int     `json:"draws"`
	Rank        int     `json:"rank"`
}

type errorResponse struct {
	Error string `json:"error"`
}
