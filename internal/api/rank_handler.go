// Package api exposes the ranking pipeline over HTTP.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/yourcityvibes/vibes-backend/internal/api/respond"
	"github.com/yourcityvibes/vibes-backend/internal/model"
)

// Ranker is what the handler needs from the pipeline.
type Ranker interface {
	Rank(ctx context.Context, mood, city string) (*model.RankResponse, error)
}

// RankHandler handles POST /api/rank.
type RankHandler struct {
	ranker Ranker
}

// NewRankHandler instantiates the handler with its pipeline.
func NewRankHandler(r Ranker) *RankHandler {
	return &RankHandler{ranker: r}
}

// HandleRank decodes a rank request, runs the pipeline and maps the
// narrow error surface onto HTTP statuses. Everything the pipeline
// handles internally arrives here as a normal 200 response.
func (h *RankHandler) HandleRank(w http.ResponseWriter, r *http.Request) {
	var req model.RankRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "invalid JSON body")
		return
	}

	req.Mood = strings.TrimSpace(req.Mood)
	req.City = strings.TrimSpace(req.City)

	resp, err := h.ranker.Rank(r.Context(), req.Mood, req.City)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrMissingField):
			respond.WriteBadRequest(w, err.Error())
		case errors.Is(err, model.ErrUpstream):
			log.Warn().Err(err).Msg("rank failed upstream")
			respond.WriteBadGateway(w, "places service unavailable")
		default:
			log.Error().Err(err).Msg("rank failed")
			respond.WriteInternalError(w, "internal error")
		}
		return
	}

	respond.WriteJSON(w, http.StatusOK, resp)
}
