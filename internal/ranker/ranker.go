// Package ranker composes the vibe pipeline: tokenize, translate,
// fetch, validate, score, backfill. The layered fallbacks exist so the
// common case of an unusual mood phrase degrades to a less precise
// result set instead of an empty one.
package ranker

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/yourcityvibes/vibes-backend/internal/metrics"
	"github.com/yourcityvibes/vibes-backend/internal/model"
	"github.com/yourcityvibes/vibes-backend/internal/places"
	"github.com/yourcityvibes/vibes-backend/internal/translator"
	"github.com/yourcityvibes/vibes-backend/internal/vibe"
)

// Options are the pipeline tunables. The threshold and result cap
// varied across revisions of the original system, so they are
// configuration rather than constants.
type Options struct {
	// RelevanceThreshold is the minimum score a candidate needs to
	// rank without backfill.
	RelevanceThreshold float64
	// MaxResults caps the final output (the curated top-N).
	MaxResults int
	// SearchLimit is how many raw candidates to request upstream.
	SearchLimit int
	// FallbackPoolSize bounds the unfiltered pool used when category
	// validation eliminates every candidate.
	FallbackPoolSize int
}

// DefaultOptions returns the documented defaults: threshold 0.5,
// top-3, 50 candidates, fallback pool of 15.
func DefaultOptions() Options {
	return Options{
		RelevanceThreshold: 0.5,
		MaxResults:         3,
		SearchLimit:        50,
		FallbackPoolSize:   15,
	}
}

// Ranker orchestrates one ranking request at a time; it holds no
// per-request state and is safe for concurrent use.
type Ranker struct {
	searcher   places.Searcher
	translator *translator.Translator
	opts       Options
	log        zerolog.Logger
}

// New builds a Ranker over its collaborators.
func New(s places.Searcher, t *translator.Translator, opts Options, log zerolog.Logger) *Ranker {
	if opts.MaxResults <= 0 {
		opts = DefaultOptions()
	}
	return &Ranker{searcher: s, translator: t, opts: opts, log: log}
}

type scoredPlace struct {
	place model.Place
	score float64
}

// Rank runs the full pipeline for one (mood, city) pair.
//
// Failure surface is deliberately narrow: missing input and a failed
// upstream fetch are the only error returns. Everything else (no
// matches, low-confidence translation, over-aggressive validation)
// degrades to a still-useful response.
func (r *Ranker) Rank(ctx context.Context, mood, city string) (*model.RankResponse, error) {
	mood = strings.TrimSpace(mood)
	city = strings.TrimSpace(city)
	if mood == "" {
		metrics.RankRequests.WithLabelValues("input_error").Inc()
		return nil, fmt.Errorf("%w: mood", model.ErrMissingField)
	}
	if city == "" {
		metrics.RankRequests.WithLabelValues("input_error").Inc()
		return nil, fmt.Errorf("%w: city", model.ErrMissingField)
	}

	tokens, group := vibe.Tokenize(mood)

	query, categories := places.BuildQuery(tokens, group)
	translation := r.translator.Translate(ctx, mood)
	if translation.Confidence >= translator.AcceptThreshold {
		query = translation.TranslatedQuery
		if len(translation.Categories) > 0 {
			categories = strings.Join(translation.Categories, ",")
		}
	}

	r.log.Info().
		Str("mood", mood).
		Str("city", city).
		Str("query", query).
		Str("mood_group", string(group)).
		Str("translation_source", string(translation.Source)).
		Msg("ranking request")

	candidates, err := r.searcher.Search(ctx, places.SearchParams{
		Near:       city,
		Query:      query,
		Categories: categories,
		Limit:      r.opts.SearchLimit,
		Sort:       places.SortPopularity,
	})
	if err != nil {
		r.log.Warn().Err(err).Str("city", city).Msg("candidate fetch failed")
		metrics.RankRequests.WithLabelValues("upstream_error").Inc()
		return nil, fmt.Errorf("%w: %v", model.ErrUpstream, err)
	}

	if len(candidates) == 0 {
		metrics.RankRequests.WithLabelValues("no_results").Inc()
		return &model.RankResponse{
			Places:   []model.Place{},
			Total:    0,
			Message:  fmt.Sprintf("No places found in %s. Try a different city or vibe.", city),
			Fallback: true,
		}, nil
	}

	primary := vibe.PrimaryVibe(tokens)
	validated := make([]model.Place, 0, len(candidates))
	for _, p := range candidates {
		if vibe.Compatible(primary, p) {
			validated = append(validated, p)
		}
	}

	degraded := false
	if len(validated) == 0 {
		// Validation ate everything; degrade to "less precise" rather
		// than "nothing".
		n := r.opts.FallbackPoolSize
		if n > len(candidates) {
			n = len(candidates)
		}
		validated = candidates[:n]
		degraded = true
		r.log.Debug().Str("vibe", primary).Msg("category validation emptied pool, using unfiltered candidates")
	}

	scored := make([]scoredPlace, len(validated))
	for i, p := range validated {
		scored[i] = scoredPlace{place: p, score: vibe.Score(p, tokens, group)}
	}
	// Stable sort keeps upstream order on ties.
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].score > scored[j].score })

	top := make([]model.Place, 0, r.opts.MaxResults)
	var below []scoredPlace
	for _, sp := range scored {
		if sp.score >= r.opts.RelevanceThreshold && len(top) < r.opts.MaxResults {
			top = append(top, sp.place)
		} else {
			below = append(below, sp)
		}
	}

	backfilled := false
	if len(top) < r.opts.MaxResults && len(below) > 0 {
		backfilled = true
		sort.SliceStable(below, func(i, j int) bool {
			return parseRating(below[i].place.Rating) > parseRating(below[j].place.Rating)
		})
		for _, sp := range below {
			if len(top) == r.opts.MaxResults {
				break
			}
			top = append(top, sp.place)
		}
	}

	metrics.RankRequests.WithLabelValues("ok").Inc()
	return &model.RankResponse{
		Places:      top,
		Total:       len(top),
		Explanation: fmt.Sprintf("Found %d great matches for %q in %s! These places align with your vibe based on their categories, tags, and ratings.", len(top), mood, city),
		Fallback:    degraded || backfilled,
	}, nil
}

func parseRating(rating string) float64 {
	r, err := strconv.ParseFloat(rating, 64)
	if err != nil {
		return 0
	}
	return r
}
