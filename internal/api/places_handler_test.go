package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/yourcityvibes/vibes-backend/internal/model"
)

func TestHandleSearchRequiresCity(t *testing.T) {
	router := NewRouter(&stubRanker{}, stubTranslator{}, &stubSearcher{})
	rec := doRequest(router, http.MethodGet, "/api/places?query=tacos", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestHandleSearchOK(t *testing.T) {
	searcher := &stubSearcher{places: []model.Place{
		{Name: "Taquería Norte", Category: "restaurante"},
	}}
	router := NewRouter(&stubRanker{}, stubTranslator{}, searcher)

	rec := doRequest(router, http.MethodGet, "/api/places?city=Monterrey&query=tacos", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var got []model.Place
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Taquería Norte" {
		t.Fatalf("unexpected body: %+v", got)
	}
}

func TestHandleSearchUpstreamFailureReturnsEmptyList(t *testing.T) {
	searcher := &stubSearcher{err: fmt.Errorf("timeout")}
	router := NewRouter(&stubRanker{}, stubTranslator{}, searcher)

	rec := doRequest(router, http.MethodGet, "/api/places?city=Monterrey", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("best-effort endpoint must answer 200, got %d", rec.Code)
	}

	var got []model.Place
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty list, got %+v", got)
	}
}

func TestHandleFindOK(t *testing.T) {
	searcher := &stubSearcher{places: []model.Place{
		{Name: "Café Central", Category: "café"},
	}}
	router := NewRouter(&stubRanker{}, stubTranslator{}, searcher)

	rec := doRequest(router, http.MethodGet, "/api/places/Café%20Central?city=Monterrey", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var got model.Place
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if got.Name != "Café Central" {
		t.Fatalf("unexpected place: %+v", got)
	}
}

func TestHandleFindNotFound(t *testing.T) {
	router := NewRouter(&stubRanker{}, stubTranslator{}, &stubSearcher{})
	rec := doRequest(router, http.MethodGet, "/api/places/nowhere?city=Monterrey", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestHandleTranslate(t *testing.T) {
	router := NewRouter(&stubRanker{}, stubTranslator{}, &stubSearcher{})

	rec := doRequest(router, http.MethodGet, "/api/translate?phrase=bellakeo", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var got model.Translation
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if got.TranslatedQuery != "nightclub dance reggaeton" || got.Source != model.SourceDictionary {
		t.Fatalf("unexpected translation: %+v", got)
	}
}

func TestHandleTranslateRequiresPhrase(t *testing.T) {
	router := NewRouter(&stubRanker{}, stubTranslator{}, &stubSearcher{})
	rec := doRequest(router, http.MethodGet, "/api/translate", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestCheckHealth(t *testing.T) {
	router := NewRouter(&stubRanker{}, stubTranslator{}, &stubSearcher{})

	rec := doRequest(router, http.MethodGet, "/v0/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	healthyFlag.Store(0)
	lastProbeErr.Store("places api status 401")
	t.Cleanup(func() {
		healthyFlag.Store(1)
		lastProbeErr.Store("")
	})

	rec = doRequest(router, http.MethodGet, "/v0/health", "")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 when unhealthy, got %d", rec.Code)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if body["status"] != "DOWN" || body["message"] != "places api status 401" {
		t.Fatalf("unexpected health body: %+v", body)
	}
}
