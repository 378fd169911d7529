// Package vibesservice boots the vibes HTTP service.
package vibesservice

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/yourcityvibes/vibes-backend/internal/api"
	"github.com/yourcityvibes/vibes-backend/internal/cache"
	"github.com/yourcityvibes/vibes-backend/internal/config"
	"github.com/yourcityvibes/vibes-backend/internal/llm"
	"github.com/yourcityvibes/vibes-backend/internal/logger"
	"github.com/yourcityvibes/vibes-backend/internal/model"
	"github.com/yourcityvibes/vibes-backend/internal/places"
	"github.com/yourcityvibes/vibes-backend/internal/ranker"
	"github.com/yourcityvibes/vibes-backend/internal/translator"
)

// Run starts the vibes service HTTP server and blocks until shutdown
// or error.
func Run() error {
	log := logger.New("vibes-service")

	cfg, err := config.New()
	if err != nil {
		log.Error().Err(err).Msg("Failed to load configuration")
		return err
	}

	log.Info().
		Int("http_port", cfg.HTTPPort).
		Float64("relevance_threshold", cfg.RelevanceThreshold).
		Int("max_results", cfg.MaxResults).
		Msg("Vibes service starting")

	ctx, stop := newServerContext()
	defer stop()

	// Process-wide caches, constructed once and injected.
	translationCache := cache.New[model.Translation](cfg.TranslationTTL)
	placesCache := cache.New[[]model.Place](cfg.PlacesCacheTTL)

	// LLM tier is optional; without a key the translator degrades to
	// its bare fallback.
	var completion llm.CompletionProvider
	if cfg.OpenAIAPIKey != "" {
		completion = llm.NewOpenAI(cfg.OpenAIBaseURL, cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.UpstreamTimeout)
	} else {
		log.Warn().Msg("no OpenAI key configured, LLM translation tier disabled")
	}

	fsq := places.NewFoursquareClient(cfg.FoursquareBaseURL, cfg.FoursquareAPIKey, cfg.UpstreamTimeout, placesCache, log)
	if cfg.FoursquareAPIKey == "" {
		log.Warn().Msg("no Foursquare key configured, searches will degrade to empty results")
	}

	trans := translator.New(translationCache, completion, log)
	rank := ranker.New(fsq, trans, ranker.Options{
		RelevanceThreshold: cfg.RelevanceThreshold,
		MaxResults:         cfg.MaxResults,
		SearchLimit:        cfg.SearchLimit,
		FallbackPoolSize:   cfg.FallbackPoolSize,
	}, log)

	router := api.NewRouter(rank, trans, fsq)

	if cfg.FoursquareAPIKey != "" {
		api.StartHealthMonitor(ctx, fsq, 30*time.Second)
	}

	server := newHTTPServer(ctx, cfg, router)
	errCh := serveHTTP(server, log)

	select {
	case <-ctx.Done():
		log.Info().Msg("Shutting down server")
		ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctxShutdown); err != nil {
			log.Error().Stack().Err(err).Msg("Server forced to shutdown")
			return err
		}
		log.Info().Msg("Server exited")
		return nil
	case err := <-errCh:
		log.Error().Stack().Err(err).Msg("HTTP server failed")
		return err
	}
}

func newServerContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}

func newHTTPServer(ctx context.Context, cfg *config.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           handler,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}
}

func serveHTTP(server *http.Server, log zerolog.Logger) <-chan error {
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", server.Addr).Msg("HTTP server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()
	return errCh
}
