package ranker

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/yourcityvibes/vibes-backend/internal/cache"
	"github.com/yourcityvibes/vibes-backend/internal/model"
	"github.com/yourcityvibes/vibes-backend/internal/places"
	"github.com/yourcityvibes/vibes-backend/internal/translator"
)

type fakeSearcher struct {
	places []model.Place
	err    error
	calls  int
	last   places.SearchParams
}

func (f *fakeSearcher) Search(_ context.Context, params places.SearchParams) ([]model.Place, error) {
	f.calls++
	f.last = params
	return f.places, f.err
}

func newRanker(s places.Searcher, opts Options) *Ranker {
	tr := translator.New(cache.New[model.Translation](time.Minute), nil, zerolog.Nop())
	return New(s, tr, opts, zerolog.Nop())
}

func TestRankPartyVibe(t *testing.T) {
	searcher := &fakeSearcher{places: []model.Place{
		{Name: "Bar Norte", Category: "bar", Rating: "4.0"},
		{Name: "Biblioteca Central", Category: "biblioteca", Rating: "4.9"},
		{Name: "Club Neón", Category: "antro", Tags: []string{"bellakeo", "reggaeton"}, Rating: "4.8"},
		{Name: "La Terraza", Category: "nightclub", Tags: []string{"fiesta"}, Rating: "4.7"},
		{Name: "Restaurante Sur", Category: "restaurante", Rating: "4.6"},
	}}
	r := newRanker(searcher, DefaultOptions())

	resp, err := r.Rank(context.Background(), "bellakeo", "Monterrey")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Total != 3 || len(resp.Places) != 3 {
		t.Fatalf("expected top 3, got %d", resp.Total)
	}
	if resp.Places[0].Name != "Club Neón" {
		t.Fatalf("expected the tagged antro first, got %q", resp.Places[0].Name)
	}
	for _, p := range resp.Places {
		if p.Category == "biblioteca" {
			t.Fatal("excluded category must not surface for a party vibe")
		}
	}
	if resp.Fallback {
		t.Fatal("enough high-relevance candidates, fallback must be false")
	}
	if resp.Explanation == "" {
		t.Fatal("expected an explanation")
	}

	// The high-confidence dictionary translation drives the search.
	if searcher.last.Query != "nightclub dance reggaeton" {
		t.Fatalf("unexpected search query %q", searcher.last.Query)
	}
	if searcher.last.Categories != "13002" {
		t.Fatalf("unexpected search categories %q", searcher.last.Categories)
	}
	if searcher.last.Sort != places.SortPopularity || searcher.last.Limit != 50 {
		t.Fatalf("unexpected search params %+v", searcher.last)
	}
}

func TestRankMissingInput(t *testing.T) {
	searcher := &fakeSearcher{}
	r := newRanker(searcher, DefaultOptions())
	ctx := context.Background()

	if _, err := r.Rank(ctx, "   ", "Monterrey"); !errors.Is(err, model.ErrMissingField) {
		t.Fatalf("expected ErrMissingField for blank mood, got %v", err)
	}
	if _, err := r.Rank(ctx, "bellakeo", ""); !errors.Is(err, model.ErrMissingField) {
		t.Fatalf("expected ErrMissingField for blank city, got %v", err)
	}
	if searcher.calls != 0 {
		t.Fatalf("input errors must short-circuit before the fetch, got %d calls", searcher.calls)
	}
}

func TestRankNonsenseMoodBackfillsByRating(t *testing.T) {
	searcher := &fakeSearcher{places: []model.Place{
		{Name: "Café Bajo", Category: "café", Rating: "3.0"},
		{Name: "Café Medio", Category: "café", Rating: "4.0"},
		{Name: "Café Alto", Category: "café", Rating: "4.6"},
	}}
	r := newRanker(searcher, DefaultOptions())

	resp, err := r.Rank(context.Background(), "asdkjaslkdj", "Monterrey")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Only the 4.6 place clears the threshold on its rating bonus; the
	// rest backfill ordered by rating.
	if resp.Total != 3 {
		t.Fatalf("expected a full top-3 via backfill, got %d", resp.Total)
	}
	wantOrder := []string{"Café Alto", "Café Medio", "Café Bajo"}
	for i, want := range wantOrder {
		if resp.Places[i].Name != want {
			t.Fatalf("position %d: expected %q, got %q", i, want, resp.Places[i].Name)
		}
	}
	if !resp.Fallback {
		t.Fatal("backfilled results must set fallback")
	}

	// Low-confidence translation leaves the tokenized query in place.
	if searcher.last.Query != "asdkjaslkdj" {
		t.Fatalf("unexpected search query %q", searcher.last.Query)
	}
}

func TestRankValidationEmptiedPool(t *testing.T) {
	var pool []model.Place
	for i := 0; i < 4; i++ {
		pool = append(pool, model.Place{Name: fmt.Sprintf("Gym %d", i), Category: "gym", Rating: "4.0"})
	}
	searcher := &fakeSearcher{places: pool}
	opts := DefaultOptions()
	opts.FallbackPoolSize = 2
	opts.MaxResults = 2
	r := newRanker(searcher, opts)

	resp, err := r.Rank(context.Background(), "bellakeo", "Monterrey")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Total != 2 {
		t.Fatalf("expected the bounded unfiltered pool, got %d", resp.Total)
	}
	if !resp.Fallback {
		t.Fatal("degraded validation must set fallback")
	}
}

func TestRankUpstreamFailure(t *testing.T) {
	searcher := &fakeSearcher{err: errors.New("connection refused")}
	r := newRanker(searcher, DefaultOptions())

	_, err := r.Rank(context.Background(), "bellakeo", "Monterrey")
	if !errors.Is(err, model.ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
}

func TestRankNoCandidates(t *testing.T) {
	searcher := &fakeSearcher{places: []model.Place{}}
	r := newRanker(searcher, DefaultOptions())

	resp, err := r.Rank(context.Background(), "bellakeo", "Tuxtla")
	if err != nil {
		t.Fatalf("an empty fetch is not an error: %v", err)
	}
	if len(resp.Places) != 0 || resp.Total != 0 {
		t.Fatalf("expected no places, got %+v", resp)
	}
	if !resp.Fallback {
		t.Fatal("empty fetch must set fallback")
	}
	if !strings.Contains(resp.Message, "Tuxtla") {
		t.Fatalf("message must name the city, got %q", resp.Message)
	}
}

func TestRankZeroOptionsGetDefaults(t *testing.T) {
	searcher := &fakeSearcher{places: []model.Place{
		{Name: "Café Uno", Category: "café", Rating: "4.6"},
	}}
	r := newRanker(searcher, Options{})

	resp, err := r.Rank(context.Background(), "chill", "Monterrey")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Total != 1 {
		t.Fatalf("expected the single candidate, got %d", resp.Total)
	}
	if searcher.last.Limit != 50 {
		t.Fatalf("expected default search limit, got %d", searcher.last.Limit)
	}
}
