package handlers

import (
	"context"
	"net/http"
	"time"

	"PATHFINDER_BACK-END/internal/dto"
	"PATHFINDER_BACK-END/internal/generator"
	"PATHFINDER_BACK-END/internal/session"
	"PATHFINDER_BACK-END/internal/storage"
	"PATHFINDER_BACK-END/internal/utils"
)

// HealthHandler handles health check related requests
type HealthHandler struct {
	store     storage.ItineraryStore
	generator *generator.Service
	sessions  *session.Store
}

// NewHealthHandler creates a new HealthHandler instance
func NewHealthHandler(store storage.ItineraryStore, gen *generator.Service, sessions *session.Store) *HealthHandler {
	return &HealthHandler{store: store, generator: gen, sessions: sessions}
}

// HealthCheck handles basic health check (no database)
func (h *HealthHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSONResponse(w, http.StatusOK, dto.HealthResponse{Status: "ok"})
}

// LivenessCheck handles process liveness check
func (h *HealthHandler) LivenessCheck(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSONResponse(w, http.StatusOK, dto.HealthResponse{Status: "alive"})
}

// ReadinessCheck pings the itinerary store. A missing generator key is reported but
// does not make the service unready.
func (h *HealthHandler) ReadinessCheck(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	details := map[string]any{
		"generator":       "ok",
		"active_sessions": h.sessions.Count(),
	}
	if !h.generator.Configured() {
		details["generator"] = "not configured"
	}

	if err := h.store.Ping(ctx); err != nil {
		details["store"] = err.Error()
		utils.WriteJSONResponse(w, http.StatusServiceUnavailable, dto.HealthResponse{
			Status:  "degraded",
			Details: details,
		})
		return
	}

	details["store"] = "ok"
	utils.WriteJSONResponse(w, http.StatusOK, dto.HealthResponse{
		Status:  "ready",
		Details: details,
	})
}
