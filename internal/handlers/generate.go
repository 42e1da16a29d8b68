package handlers

import (
	"net/http"
	"strings"

	"PATHFINDER_BACK-END/internal/dto"
	"PATHFINDER_BACK-END/internal/generator"
	"PATHFINDER_BACK-END/internal/planner"
	"PATHFINDER_BACK-END/internal/session"
	"PATHFINDER_BACK-END/internal/utils"
)

// GenerateHandler serves the stateless generation endpoints
type GenerateHandler struct {
	generator *generator.Service
	guard     *session.Guard
}

// NewGenerateHandler creates a new GenerateHandler
func NewGenerateHandler(gen *generator.Service, guard *session.Guard) *GenerateHandler {
	return &GenerateHandler{generator: gen, guard: guard}
}

// GenerateItinerary handles POST /api/generate
// @Summary Generate a full itinerary
// @Description Plans every day of the trip with five activities per day and a budget breakdown. Weather and hotels are included when extended output is enabled.
// @Tags planning
// @Accept json
// @Produce json
// @Param payload body dto.GenerateRequest true "Trip description"
// @Success 200 {object} dto.GenerateResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/generate [post]
func (h *GenerateHandler) GenerateItinerary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if !h.generator.Configured() {
		writeGenerationError(w, generator.ErrNotConfigured)
		return
	}

	var req dto.GenerateRequest
	if err := utils.DecodeAndValidate(w, r, &req); err != nil {
		return
	}
	trip, err := toTripRequest(req)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", err.Error())
		return
	}

	release, err := h.guard.TryAcquire("generate:" + clientKey(r))
	if err != nil {
		writeGenerationError(w, err)
		return
	}
	defer release()

	res, err := h.generator.GenerateItinerary(r.Context(), trip)
	if err != nil {
		writeGenerationError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.GenerateResponse{
		Itinerary: res.Itinerary,
		Budget:    res.Budget,
		Weather:   res.Weather,
		Hotels:    res.Hotels,
	})
}

// RegenerateActivity handles POST /api/activity/regenerate
// @Summary Suggest alternatives for one activity
// @Description Returns exactly three replacement activities for the given time slot.
// @Tags planning
// @Accept json
// @Produce json
// @Param payload body dto.RegenerateActivityRequest true "Activity to replace"
// @Success 200 {object} dto.AlternativesResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/activity/regenerate [post]
func (h *GenerateHandler) RegenerateActivity(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req dto.RegenerateActivityRequest
	if err := utils.DecodeAndValidate(w, r, &req); err != nil {
		return
	}

	release, err := h.guard.TryAcquire("alternatives:" + clientKey(r))
	if err != nil {
		writeGenerationError(w, err)
		return
	}
	defer release()

	res, err := h.generator.GenerateAlternatives(r.Context(), planner.AlternativesRequest{
		Destination: strings.TrimSpace(req.Destination),
		Current:     req.CurrentActivity,
		Preferences: req.Preferences,
		TimeSlot:    req.TimeSlot,
	})
	if err != nil {
		writeGenerationError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.AlternativesResponse{Alternatives: res.Alternatives})
}
