package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"github.com/yourcityvibes/vibes-backend/internal/api/respond"
	"github.com/yourcityvibes/vibes-backend/internal/model"
	"github.com/yourcityvibes/vibes-backend/internal/places"
)

// PlacesHandler handles the raw mapped-places passthrough endpoints.
type PlacesHandler struct {
	searcher places.Searcher
}

// NewPlacesHandler instantiates the handler.
func NewPlacesHandler(s places.Searcher) *PlacesHandler {
	return &PlacesHandler{searcher: s}
}

// HandleSearch handles GET /api/places?city=...&query=...&limit=...
// Upstream failure is reported as an empty 200 list; callers of this
// endpoint expect best-effort data, never an error page.
func (h *PlacesHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	city := r.URL.Query().Get("city")
	if city == "" {
		respond.WriteBadRequest(w, "city parameter is required")
		return
	}

	limit := 50
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	results, err := h.searcher.Search(r.Context(), places.SearchParams{
		Near:  city,
		Query: r.URL.Query().Get("query"),
		Limit: limit,
	})
	if err != nil {
		log.Warn().Err(err).Str("city", city).Msg("places passthrough search failed")
		respond.WriteJSON(w, http.StatusOK, []model.Place{})
		return
	}

	respond.WriteJSON(w, http.StatusOK, results)
}

// HandleFind handles GET /api/places/{name}?city=...
func (h *PlacesHandler) HandleFind(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	city := r.URL.Query().Get("city")
	if city == "" {
		respond.WriteBadRequest(w, "city parameter is required")
		return
	}

	place, err := places.FindPlace(r.Context(), h.searcher, city, name)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			respond.WriteNotFound(w, "place not found")
			return
		}
		log.Warn().Err(err).Str("name", name).Msg("place lookup failed")
		respond.WriteBadGateway(w, "places service unavailable")
		return
	}

	respond.WriteJSON(w, http.StatusOK, place)
}
