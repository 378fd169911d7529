package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/yourcityvibes/vibes-backend/internal/model"
	"github.com/yourcityvibes/vibes-backend/internal/places"
)

type stubRanker struct {
	resp *model.RankResponse
	err  error
}

func (s *stubRanker) Rank(_ context.Context, mood, city string) (*model.RankResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	if mood == "" || city == "" {
		return nil, fmt.Errorf("%w: mood", model.ErrMissingField)
	}
	return s.resp, nil
}

type stubTranslator struct{}

func (stubTranslator) Translate(_ context.Context, phrase string) model.Translation {
	return model.Translation{
		OriginalVibe:    phrase,
		TranslatedQuery: "nightclub dance reggaeton",
		Confidence:      0.95,
		Source:          model.SourceDictionary,
	}
}

type stubSearcher struct {
	places []model.Place
	err    error
}

func (s *stubSearcher) Search(_ context.Context, _ places.SearchParams) ([]model.Place, error) {
	return s.places, s.err
}

func doRequest(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandleRankOK(t *testing.T) {
	ranker := &stubRanker{resp: &model.RankResponse{
		Places: []model.Place{{Name: "Club Neón", Category: "antro"}},
		Total:  1,
	}}
	router := NewRouter(ranker, stubTranslator{}, &stubSearcher{})

	rec := doRequest(router, http.MethodPost, "/api/rank", `{"mood": "bellakeo", "city": "Monterrey"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp model.RankResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Total != 1 || resp.Places[0].Name != "Club Neón" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestHandleRankInvalidJSON(t *testing.T) {
	router := NewRouter(&stubRanker{}, stubTranslator{}, &stubSearcher{})
	rec := doRequest(router, http.MethodPost, "/api/rank", `{"mood": `)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestHandleRankMissingField(t *testing.T) {
	router := NewRouter(&stubRanker{}, stubTranslator{}, &stubSearcher{})
	rec := doRequest(router, http.MethodPost, "/api/rank", `{"city": "Monterrey"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestHandleRankUpstreamFailure(t *testing.T) {
	ranker := &stubRanker{err: fmt.Errorf("%w: connection refused", model.ErrUpstream)}
	router := NewRouter(ranker, stubTranslator{}, &stubSearcher{})
	rec := doRequest(router, http.MethodPost, "/api/rank", `{"mood": "bellakeo", "city": "Monterrey"}`)
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rec.Code)
	}
}

func TestHandleRankInternalError(t *testing.T) {
	ranker := &stubRanker{err: fmt.Errorf("boom")}
	router := NewRouter(ranker, stubTranslator{}, &stubSearcher{})
	rec := doRequest(router, http.MethodPost, "/api/rank", `{"mood": "bellakeo", "city": "Monterrey"}`)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}
