package api

import (
	"context"
	"net/http"

	"github.com/yourcityvibes/vibes-backend/internal/api/respond"
	"github.com/yourcityvibes/vibes-backend/internal/model"
)

// Translator is what the handler needs from the translation tier.
type Translator interface {
	Translate(ctx context.Context, phrase string) model.Translation
}

// TranslateHandler exposes the translator for diagnostics and the CLI.
type TranslateHandler struct {
	translator Translator
}

// NewTranslateHandler instantiates the handler.
func NewTranslateHandler(t Translator) *TranslateHandler {
	return &TranslateHandler{translator: t}
}

// HandleTranslate handles GET /api/translate?phrase=...
func (h *TranslateHandler) HandleTranslate(w http.ResponseWriter, r *http.Request) {
	phrase := r.URL.Query().Get("phrase")
	if phrase == "" {
		respond.WriteBadRequest(w, "phrase parameter is required")
		return
	}
	respond.WriteJSON(w, http.StatusOK, h.translator.Translate(r.Context(), phrase))
}
