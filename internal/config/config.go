package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

// Config holds the configuration for the vibes service. Environment
// variables are parsed from the VIBES_ prefix, e.g. VIBES_HTTP_PORT.
type Config struct {
	// HTTP Configuration
	HTTPPort int `envconfig:"HTTP_PORT" default:"8080"`

	// Places collaborator (Foursquare v3)
	FoursquareBaseURL string `envconfig:"FOURSQUARE_BASE_URL" default:"https://api.foursquare.com/v3"`
	FoursquareAPIKey  string `envconfig:"FOURSQUARE_API_KEY" default:""`

	// LLM collaborator (translation fallback tier). Empty key disables
	// the tier; the translator degrades to its bare fallback.
	OpenAIBaseURL string `envconfig:"OPENAI_BASE_URL" default:"https://api.openai.com"`
	OpenAIAPIKey  string `envconfig:"OPENAI_API_KEY" default:""`
	OpenAIModel   string `envconfig:"OPENAI_MODEL" default:"gpt-4o-mini"`

	// Pipeline tunables. The threshold and result cap never converged
	// in the source system, so they stay configurable.
	RelevanceThreshold float64 `envconfig:"RELEVANCE_THRESHOLD" default:"0.5"`
	MaxResults         int     `envconfig:"MAX_RESULTS" default:"3"`
	SearchLimit        int     `envconfig:"SEARCH_LIMIT" default:"50"`
	FallbackPoolSize   int     `envconfig:"FALLBACK_POOL_SIZE" default:"15"`

	// Caches and timeouts
	TranslationTTL  time.Duration `envconfig:"TRANSLATION_TTL" default:"5m"`
	PlacesCacheTTL  time.Duration `envconfig:"PLACES_CACHE_TTL" default:"1h"`
	UpstreamTimeout time.Duration `envconfig:"UPSTREAM_TIMEOUT" default:"8s"`
}

// ResolveDefaults validates tunables that envconfig cannot range-check.
func (c *Config) ResolveDefaults() error {
	if c.RelevanceThreshold < 0 {
		return fmt.Errorf("relevance threshold must be >= 0, got %v", c.RelevanceThreshold)
	}
	if c.MaxResults < 1 {
		return fmt.Errorf("max results must be >= 1, got %d", c.MaxResults)
	}
	if c.SearchLimit < c.MaxResults {
		return fmt.Errorf("search limit %d below max results %d", c.SearchLimit, c.MaxResults)
	}
	if c.FallbackPoolSize < 1 {
		return fmt.Errorf("fallback pool size must be >= 1, got %d", c.FallbackPoolSize)
	}
	if c.UpstreamTimeout <= 0 {
		return fmt.Errorf("upstream timeout must be positive, got %v", c.UpstreamTimeout)
	}
	return nil
}

// New creates a Config by parsing VIBES_-prefixed environment
// variables.
func New() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("VIBES", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}
	if err := cfg.ResolveDefaults(); err != nil {
		return nil, err
	}

	log.Info().
		Int("port", cfg.HTTPPort).
		Str("foursquare_key_present", boolWord(cfg.FoursquareAPIKey != "")).
		Str("openai_key_present", boolWord(cfg.OpenAIAPIKey != "")).
		Float64("relevance_threshold", cfg.RelevanceThreshold).
		Int("max_results", cfg.MaxResults).
		Msg("Configuration loaded")

	return &cfg, nil
}

// NewForTesting creates a config with deterministic values for tests.
func NewForTesting() *Config {
	return &Config{
		HTTPPort:           8080,
		FoursquareBaseURL:  "http://localhost:4411",
		FoursquareAPIKey:   "test-key",
		OpenAIBaseURL:      "http://localhost:4412",
		OpenAIModel:        "gpt-4o-mini",
		RelevanceThreshold: 0.5,
		MaxResults:         3,
		SearchLimit:        50,
		FallbackPoolSize:   15,
		TranslationTTL:     5 * time.Minute,
		PlacesCacheTTL:     time.Hour,
		UpstreamTimeout:    8 * time.Second,
	}
}

// GetHTTPAddr returns the HTTP server address.
func (c *Config) GetHTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}

func boolWord(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
