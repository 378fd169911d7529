// Package places wraps the external venue-search collaborator behind a
// small interface and maps its responses into model.Place records.
package places

import (
	"context"
	"strings"

	"github.com/yourcityvibes/vibes-backend/internal/model"
)

// SortOrder values accepted by the search API.
const (
	SortPopularity = "POPULARITY"
	SortRating     = "RATING"
	SortDistance   = "DISTANCE"
)

// SearchParams describes one venue search.
type SearchParams struct {
	Near       string
	Query      string
	Categories string
	Limit      int
	Sort       string
}

// Searcher is the boundary contract the orchestrator depends on. An
// error from Search is recovered by the caller as "zero candidates";
// implementations should not mask their own failures.
type Searcher interface {
	Search(ctx context.Context, params SearchParams) ([]model.Place, error)
}

// FindPlace locates one place in a city by name: exact match first,
// then substring containment, both case-insensitive.
func FindPlace(ctx context.Context, s Searcher, city, name string) (model.Place, error) {
	results, err := s.Search(ctx, SearchParams{Near: city, Query: name, Limit: 50})
	if err != nil {
		return model.Place{}, err
	}

	wanted := strings.ToLower(strings.TrimSpace(name))
	for _, p := range results {
		if strings.ToLower(p.Name) == wanted {
			return p, nil
		}
	}
	for _, p := range results {
		if strings.Contains(strings.ToLower(p.Name), wanted) {
			return p, nil
		}
	}
	return model.Place{}, model.ErrNotFound
}
