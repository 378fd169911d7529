// Package translator resolves colloquial vibe phrases into
// search-ready queries through a tiered strategy: cache, curated
// dictionary, LLM, bare fallback. It never returns an error; the last
// tier always produces a usable Translation.
package translator

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/yourcityvibes/vibes-backend/internal/cache"
	"github.com/yourcityvibes/vibes-backend/internal/llm"
	"github.com/yourcityvibes/vibes-backend/internal/metrics"
	"github.com/yourcityvibes/vibes-backend/internal/model"
)

// AcceptThreshold is the minimum confidence at which a dictionary or
// LLM result is accepted as the effective query. Below it, callers
// should treat the phrase as unresolved and may use the raw input.
const AcceptThreshold = 0.7

// llmConfidenceCap bounds how much the model's self-reported
// confidence is trusted.
const llmConfidenceCap = 0.9

const fallbackConfidence = 0.3

// Translator resolves vibe phrases. The cache is shared process-wide
// and injected; the LLM provider may be nil, which disables that tier.
type Translator struct {
	cache    *cache.TTL[model.Translation]
	provider llm.CompletionProvider
	log      zerolog.Logger
}

// New builds a Translator. provider may be nil.
func New(c *cache.TTL[model.Translation], provider llm.CompletionProvider, log zerolog.Logger) *Translator {
	return &Translator{cache: c, provider: provider, log: log}
}

// Translate resolves one phrase. Successful dictionary and LLM results
// are cached under the normalized phrase; fallback results never are.
func (t *Translator) Translate(ctx context.Context, phrase string) model.Translation {
	key := strings.ToLower(strings.TrimSpace(phrase))

	if cached, ok := t.cache.Get(key); ok {
		metrics.CacheHits.WithLabelValues("translation").Inc()
		cached.Cached = true
		return cached
	}
	metrics.CacheMisses.WithLabelValues("translation").Inc()

	if entry, confidence, ok := searchDictionary(key); ok && confidence >= AcceptThreshold {
		tr := model.Translation{
			OriginalVibe:    phrase,
			TranslatedQuery: entry.query,
			Categories:      entry.categories,
			Confidence:      confidence,
			Source:          model.SourceDictionary,
		}
		t.cache.Put(key, tr)
		metrics.Translations.WithLabelValues(string(model.SourceDictionary)).Inc()
		return tr
	}

	if t.provider != nil {
		if tr, err := t.translateWithLLM(ctx, phrase); err != nil {
			// Expected degradation, fall through to the bare tier.
			t.log.Debug().Err(err).Str("phrase", phrase).Msg("llm translation failed")
		} else if tr.Confidence >= AcceptThreshold {
			t.cache.Put(key, tr)
			metrics.Translations.WithLabelValues(string(model.SourceLLM)).Inc()
			return tr
		}
	}

	metrics.Translations.WithLabelValues(string(model.SourceFallback)).Inc()
	return model.Translation{
		OriginalVibe:    phrase,
		TranslatedQuery: phrase,
		Confidence:      fallbackConfidence,
		Source:          model.SourceFallback,
	}
}

// llmResult is the JSON contract the model is instructed to return.
type llmResult struct {
	Query      string   `json:"query"`
	Categories []string `json:"categories"`
	Confidence float64  `json:"confidence"`
}

func (t *Translator) translateWithLLM(ctx context.Context, phrase string) (model.Translation, error) {
	raw, err := t.provider.Complete(ctx, buildPrompt(phrase))
	if err != nil {
		return model.Translation{}, err
	}

	var parsed llmResult
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), &parsed); err != nil {
		return model.Translation{}, fmt.Errorf("malformed llm response: %w", err)
	}

	query := parsed.Query
	if query == "" {
		query = phrase
	}
	confidence := parsed.Confidence
	if confidence == 0 {
		confidence = 0.6
	}
	if confidence > llmConfidenceCap {
		confidence = llmConfidenceCap
	}

	return model.Translation{
		OriginalVibe:    phrase,
		TranslatedQuery: query,
		Categories:      parsed.Categories,
		Confidence:      confidence,
		Source:          model.SourceLLM,
	}, nil
}

func buildPrompt(phrase string) string {
	return fmt.Sprintf(`Translate this Spanish/Latino vibe to English search terms for a places API.

Vibe: %q

Respond with JSON only:
{
  "query": "english search terms",
  "categories": ["places_category_id"],
  "confidence": 0.8
}

Common categories:
- 13065: Restaurant
- 13003: Bar
- 13032: Café
- 13002: Nightlife
- 10000: Arts & Entertainment
- 16000: Outdoors & Recreation

Focus on accuracy over creativity.`, phrase)
}

// stripCodeFence unwraps content the model wrapped in a markdown code
// block.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
