package api

import (
	"context"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/yourcityvibes/vibes-backend/internal/api/respond"
)

// Pinger is implemented by collaborators that can be probed for
// liveness.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler handles GET /v0/health.
type HealthHandler struct{}

// NewHealthHandler creates a health handler.
func NewHealthHandler() *HealthHandler { return &HealthHandler{} }

// global health flag (1 = healthy, 0 = unhealthy)
var healthyFlag atomic.Int32

// lastProbeErr keeps the most recent dependency failure details.
var lastProbeErr atomic.Value // string

func init() {
	healthyFlag.Store(1)
	lastProbeErr.Store("")
}

// StartHealthMonitor probes the places collaborator every interval and
// feeds the health endpoint. A nil pinger leaves the service reported
// healthy (degraded mode without an API key is still a working
// service).
func StartHealthMonitor(ctx context.Context, pinger Pinger, interval time.Duration) {
	if pinger == nil {
		return
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		probe := func() {
			probeCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			if err := pinger.Ping(probeCtx); err != nil {
				healthyFlag.Store(0)
				lastProbeErr.Store(err.Error())
				return
			}
			healthyFlag.Store(1)
			lastProbeErr.Store("")
		}

		probe()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				probe()
			}
		}
	}()
}

// CheckHealth reports service health plus the last dependency probe
// failure, if any.
func (h *HealthHandler) CheckHealth(w http.ResponseWriter, r *http.Request) {
	if healthyFlag.Load() == 1 {
		respond.WriteJSON(w, http.StatusOK, map[string]interface{}{
			"status":    "UP",
			"message":   "Service is healthy",
			"timestamp": time.Now().Format(time.RFC3339),
		})
		return
	}

	errMsg, _ := lastProbeErr.Load().(string)
	if errMsg == "" {
		errMsg = "places collaborator unavailable"
	}
	respond.WriteJSON(w, http.StatusInternalServerError, map[string]interface{}{
		"status":    "DOWN",
		"message":   errMsg,
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
