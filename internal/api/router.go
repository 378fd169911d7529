package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/yourcityvibes/vibes-backend/internal/api/recovery"
	"github.com/yourcityvibes/vibes-backend/internal/places"
)

// NewRouter wires every endpoint of the service.
func NewRouter(ranker Ranker, translator Translator, searcher places.Searcher) *mux.Router {
	r := mux.NewRouter()
	r.Use(recovery.Middleware)

	rank := NewRankHandler(ranker)
	pl := NewPlacesHandler(searcher)
	tr := NewTranslateHandler(translator)
	health := NewHealthHandler()

	r.HandleFunc("/api/rank", rank.HandleRank).Methods(http.MethodPost)
	r.HandleFunc("/api/places", pl.HandleSearch).Methods(http.MethodGet)
	r.HandleFunc("/api/places/{name}", pl.HandleFind).Methods(http.MethodGet)
	r.HandleFunc("/api/translate", tr.HandleTranslate).Methods(http.MethodGet)
	r.HandleFunc("/v0/health", health.CheckHealth).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	return r
}
