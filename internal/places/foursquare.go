package places

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/yourcityvibes/vibes-backend/internal/cache"
	"github.com/yourcityvibes/vibes-backend/internal/metrics"
	"github.com/yourcityvibes/vibes-backend/internal/model"
)

// searchFields is the field list requested from the places API.
var searchFields = strings.Join([]string{
	"fsq_id", "name", "categories", "location", "geocodes",
	"rating", "price", "hours", "website", "tel", "features", "photos",
}, ",")

const defaultSearchLimit = 50

// FoursquareClient implements Searcher against the Foursquare v3
// places API. Mapped responses are cached per (city, query, categories,
// limit) in an injected TTL cache.
type FoursquareClient struct {
	client *resty.Client
	apiKey string
	cache  *cache.TTL[[]model.Place]
	log    zerolog.Logger
}

// NewFoursquareClient builds a client. An empty apiKey is allowed at
// construction; Search reports it as an error so the orchestrator can
// degrade instead of the process failing to start.
func NewFoursquareClient(baseURL, apiKey string, timeout time.Duration, c *cache.TTL[[]model.Place], log zerolog.Logger) *FoursquareClient {
	rc := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetHeader("Accept", "application/json").
		SetTimeout(timeout)
	return &FoursquareClient{client: rc, apiKey: apiKey, cache: c, log: log}
}

// fsqPlace mirrors the slice of the v3 response body we consume.
type fsqPlace struct {
	FsqID      string `json:"fsq_id"`
	Name       string `json:"name"`
	Categories []struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	} `json:"categories"`
	Location struct {
		FormattedAddress string `json:"formatted_address"`
		Locality         string `json:"locality"`
	} `json:"location"`
	Geocodes struct {
		Main struct {
			Latitude  float64 `json:"latitude"`
			Longitude float64 `json:"longitude"`
		} `json:"main"`
	} `json:"geocodes"`
	Rating  float64 `json:"rating"`
	Price   int     `json:"price"`
	Hours   struct {
		Display string `json:"display"`
	} `json:"hours"`
	Website  string                 `json:"website"`
	Tel      string                 `json:"tel"`
	Features map[string]interface{} `json:"features"`
	Photos   []struct {
		Prefix string `json:"prefix"`
		Suffix string `json:"suffix"`
	} `json:"photos"`
}

type fsqSearchResponse struct {
	Results []fsqPlace `json:"results"`
}

// Search runs one places search and maps the results. Single shot, no
// retry; callers treat any error as zero candidates.
func (f *FoursquareClient) Search(ctx context.Context, params SearchParams) ([]model.Place, error) {
	if f.apiKey == "" {
		return nil, fmt.Errorf("places api key not configured")
	}

	limit := params.Limit
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	cacheKey := fmt.Sprintf("%s|%s|%s|%d", strings.ToLower(params.Near), strings.ToLower(params.Query), params.Categories, limit)
	if hit, ok := f.cache.Get(cacheKey); ok {
		metrics.CacheHits.WithLabelValues("places").Inc()
		return hit, nil
	}
	metrics.CacheMisses.WithLabelValues("places").Inc()

	reqID := uuid.NewString()[:8]
	query := map[string]string{
		"near":   params.Near,
		"limit":  strconv.Itoa(limit),
		"fields": searchFields,
	}
	if params.Query != "" {
		query["query"] = params.Query
	}
	if params.Categories != "" {
		query["categories"] = params.Categories
	}
	if params.Sort != "" {
		query["sort"] = params.Sort
	}

	f.log.Debug().
		Str("request_id", reqID).
		Str("near", params.Near).
		Str("query", params.Query).
		Str("categories", params.Categories).
		Msg("places search")

	var out fsqSearchResponse
	start := time.Now()
	resp, err := f.client.R().
		SetContext(ctx).
		SetHeader("Authorization", f.apiKey).
		SetQueryParams(query).
		SetResult(&out).
		Get("/places/search")
	metrics.UpstreamLatency.Observe(time.Since(start).Seconds())

	if err != nil {
		f.log.Warn().Str("request_id", reqID).Err(err).Msg("places search failed")
		return nil, fmt.Errorf("places search: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		f.log.Warn().Str("request_id", reqID).Int("status", resp.StatusCode()).Msg("places search non-200")
		return nil, fmt.Errorf("places search status %d", resp.StatusCode())
	}

	mapped := make([]model.Place, 0, len(out.Results))
	for _, raw := range out.Results {
		mapped = append(mapped, mapPlace(raw))
	}

	f.log.Debug().Str("request_id", reqID).Int("count", len(mapped)).Msg("places search ok")
	f.cache.Put(cacheKey, mapped)
	return mapped, nil
}

// Ping checks the API is reachable with the configured key. A cheap
// one-result search doubles as a credential check.
func (f *FoursquareClient) Ping(ctx context.Context) error {
	if f.apiKey == "" {
		return fmt.Errorf("places api key not configured")
	}
	resp, err := f.client.R().
		SetContext(ctx).
		SetHeader("Authorization", f.apiKey).
		SetQueryParams(map[string]string{
			"near":   "New York",
			"limit":  "1",
			"fields": "fsq_id,name",
		}).
		Get("/places/search")
	if err != nil {
		return err
	}
	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("places api status %d", resp.StatusCode())
	}
	return nil
}

// mapPlace normalizes one raw API record into a model.Place.
func mapPlace(raw fsqPlace) model.Place {
	category := "general"
	if len(raw.Categories) > 0 && raw.Categories[0].Name != "" {
		category = strings.ToLower(raw.Categories[0].Name)
	}

	tags := make([]string, 0, len(raw.Categories)+len(raw.Features))
	for _, c := range raw.Categories {
		tags = append(tags, strings.ToLower(c.Name))
	}
	for feature := range raw.Features {
		tags = append(tags, strings.ToLower(feature))
	}
	tags = dedupStrings(tags)

	rating := "0"
	if raw.Rating > 0 {
		rating = strconv.FormatFloat(raw.Rating, 'f', -1, 64)
	}

	hours := raw.Hours.Display
	if hours == "" {
		hours = "Hours not available"
	}

	media := make([]string, 0, len(raw.Photos))
	for _, photo := range raw.Photos {
		media = append(media, photo.Prefix+"300x300"+photo.Suffix)
	}

	return model.Place{
		Name:           raw.Name,
		Category:       category,
		City:           raw.Location.Locality,
		Address:        raw.Location.FormattedAddress,
		Lat:            raw.Geocodes.Main.Latitude,
		Lng:            raw.Geocodes.Main.Longitude,
		Phone:          raw.Tel,
		Website:        raw.Website,
		Rating:         rating,
		PriceLevel:     mapPriceLevel(raw.Price),
		OpeningHours:   hours,
		Tags:           tags,
		ReviewSnippets: []string{},
		LastChecked:    time.Now().UTC().Format("2006-01-02"),
		Media:          media,
	}
}

func mapPriceLevel(price int) string {
	switch price {
	case 2:
		return "$$"
	case 3:
		return "$$$"
	case 4:
		return "$$$$"
	default:
		return "$"
	}
}

func dedupStrings(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := in[:0]
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
