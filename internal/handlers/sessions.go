package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"PATHFINDER_BACK-END/internal/budget"
	"PATHFINDER_BACK-END/internal/dto"
	"PATHFINDER_BACK-END/internal/generator"
	"PATHFINDER_BACK-END/internal/models"
	"PATHFINDER_BACK-END/internal/planner"
	"PATHFINDER_BACK-END/internal/session"
	"PATHFINDER_BACK-END/internal/storage"
	"PATHFINDER_BACK-END/internal/utils"
)

// SessionsHandler serves the planning session endpoints: generate, edit, regenerate,
// export and save.
type SessionsHandler struct {
	generator *generator.Service
	sessions  *session.Store
	guard     *session.Guard
	store     storage.ItineraryStore
	loc       *time.Location
}

// NewSessionsHandler creates a new SessionsHandler
func NewSessionsHandler(gen *generator.Service, sessions *session.Store, guard *session.Guard, store storage.ItineraryStore, loc *time.Location) *SessionsHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &SessionsHandler{
		generator: gen,
		sessions:  sessions,
		guard:     guard,
		store:     store,
		loc:       loc,
	}
}

// lookup resolves the {id} path value, writing a 404 when the session is gone
func (h *SessionsHandler) lookup(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	s, err := h.sessions.Get(r.PathValue("id"))
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusNotFound, "Session not found", err.Error())
		return nil, false
	}
	return s, true
}

// CreateSession handles POST /api/sessions
// @Summary Start a planning session
// @Description Generates an itinerary and keeps it server-side so it can be edited, regenerated, exported and saved.
// @Tags sessions
// @Accept json
// @Produce json
// @Param payload body dto.GenerateRequest true "Trip description"
// @Success 201 {object} dto.SessionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/sessions [post]
func (h *SessionsHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
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

	s := h.sessions.Create(trip, sessionContent(res))
	log.Printf("sessions: created %s for %s (%d days)", s.ID, trip.Destination, trip.Days)
	utils.WriteJSONResponse(w, http.StatusCreated, toSessionResponse(s.Snapshot()))
}

// Session handles GET and DELETE /api/sessions/{id}
// @Summary Read or discard a planning session
// @Description GET returns the current session state. DELETE discards it, which is how the client starts over.
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.SessionResponse
// @Success 204 "Session discarded"
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/sessions/{id} [get]
// @Router /api/sessions/{id} [delete]
func (h *SessionsHandler) Session(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s, ok := h.lookup(w, r)
		if !ok {
			return
		}
		utils.WriteJSONResponse(w, http.StatusOK, toSessionResponse(s.Snapshot()))
	case http.MethodDelete:
		if err := h.sessions.Delete(r.PathValue("id")); err != nil {
			utils.WriteErrorResponse(w, http.StatusNotFound, "Session not found", err.Error())
			return
		}
		w.WriteHeader(http.StatusNoContent)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// writeMutation reports the outcome of a slot edit. A slot that does not exist leaves
// the session untouched and is reported with applied=false.
func (h *SessionsHandler) writeMutation(w http.ResponseWriter, s *session.Session, snap session.Snapshot, delta int64, err error, op string) {
	if errors.Is(err, session.ErrSessionNotFound) {
		utils.WriteErrorResponse(w, http.StatusNotFound, "Session not found", err.Error())
		return
	}
	if errors.Is(err, budget.ErrOutOfRange) {
		log.Printf("sessions: %s on %s ignored: %v", op, s.ID, err)
		utils.WriteJSONResponse(w, http.StatusOK, dto.MutationResponse{
			Applied: false,
			Session: toSessionResponse(s.Snapshot()),
		})
		return
	}
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Update failed", err.Error())
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.MutationResponse{
		Applied: true,
		Delta:   delta,
		Session: toSessionResponse(snap),
	})
}

// RemoveActivity handles POST /api/sessions/{id}/activities/remove
// @Summary Remove an activity
// @Description Replaces the activity with a free-time placeholder and subtracts its cost from the budget.
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param payload body dto.SlotRequest true "Slot to clear"
// @Success 200 {object} dto.MutationResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/sessions/{id}/activities/remove [post]
func (h *SessionsHandler) RemoveActivity(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s, ok := h.lookup(w, r)
	if !ok {
		return
	}

	var req dto.SlotRequest
	if err := utils.DecodeAndValidate(w, r, &req); err != nil {
		return
	}

	var delta int64
	snap, err := s.Mutate(func(it *models.Itinerary) error {
		removed, err := budget.Remove(it, req.DayIndex, models.Slot(req.Slot))
		delta = -budget.ParseCost(removed.Cost)
		return err
	})
	h.writeMutation(w, s, snap, delta, err, "remove")
}

// EditActivity handles POST /api/sessions/{id}/activities/edit
// @Summary Edit an activity
// @Description Overwrites the activity with user-written fields and applies the cost difference to the budget. An empty time keeps the slot's time.
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param payload body dto.EditActivityRequest true "Slot and new activity"
// @Success 200 {object} dto.MutationResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/sessions/{id}/activities/edit [post]
func (h *SessionsHandler) EditActivity(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s, ok := h.lookup(w, r)
	if !ok {
		return
	}

	var req dto.EditActivityRequest
	if err := utils.DecodeAndValidate(w, r, &req); err != nil {
		return
	}

	var delta int64
	snap, err := s.Mutate(func(it *models.Itinerary) error {
		current, err := budget.Lookup(it, req.DayIndex, models.Slot(req.Slot))
		if err != nil {
			return err
		}
		delta, err = budget.Replace(it, req.DayIndex, models.Slot(req.Slot), req.Activity.ToModel(current))
		return err
	})
	h.writeMutation(w, s, snap, delta, err, "edit")
}

// Alternatives handles POST /api/sessions/{id}/activities/alternatives
// @Summary Suggest alternatives for a session slot
// @Description Asks the generator for exactly three replacements. The session is not changed until one is selected.
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param payload body dto.AlternativesForSlotRequest true "Slot and optional preferences"
// @Success 200 {object} dto.AlternativesResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/sessions/{id}/activities/alternatives [post]
func (h *SessionsHandler) Alternatives(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s, ok := h.lookup(w, r)
	if !ok {
		return
	}

	var req dto.AlternativesForSlotRequest
	if err := utils.DecodeAndValidate(w, r, &req); err != nil {
		return
	}

	snap := s.Snapshot()
	current, err := budget.Lookup(&snap.Itinerary, req.DayIndex, models.Slot(req.Slot))
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid slot", err.Error())
		return
	}

	release, err := h.guard.TryAcquire(s.ID)
	if err != nil {
		writeGenerationError(w, err)
		return
	}
	defer release()

	res, err := h.generator.GenerateAlternatives(r.Context(), planner.AlternativesRequest{
		Destination: snap.Request.Destination,
		Current:     current,
		Preferences: req.Preferences,
		TimeSlot:    req.Slot,
	})
	if err != nil {
		writeGenerationError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.AlternativesResponse{Alternatives: res.Alternatives})
}

// SelectAlternative handles POST /api/sessions/{id}/activities/select
// @Summary Apply a chosen alternative
// @Description Puts the selected activity into the slot and applies the cost difference to the budget.
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param payload body dto.SelectAlternativeRequest true "Slot and chosen activity"
// @Success 200 {object} dto.MutationResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/sessions/{id}/activities/select [post]
func (h *SessionsHandler) SelectAlternative(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s, ok := h.lookup(w, r)
	if !ok {
		return
	}

	var req dto.SelectAlternativeRequest
	if err := utils.DecodeAndValidate(w, r, &req); err != nil {
		return
	}

	var delta int64
	snap, err := s.Mutate(func(it *models.Itinerary) error {
		current, err := budget.Lookup(it, req.DayIndex, models.Slot(req.Slot))
		if err != nil {
			return err
		}
		delta, err = budget.Replace(it, req.DayIndex, models.Slot(req.Slot), req.Activity.ToModel(current))
		return err
	})
	h.writeMutation(w, s, snap, delta, err, "select")
}

// Regenerate handles POST /api/sessions/{id}/regenerate
// @Summary Regenerate the whole trip
// @Description Replaces the session itinerary with a fresh one for the same request. Limited per session.
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.SessionResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 429 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/sessions/{id}/regenerate [post]
func (h *SessionsHandler) Regenerate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s, ok := h.lookup(w, r)
	if !ok {
		return
	}
	if err := s.CheckRegeneration(); err != nil {
		utils.WriteErrorResponse(w, http.StatusTooManyRequests, "Regeneration limit reached", err.Error())
		return
	}

	release, err := h.guard.TryAcquire(s.ID)
	if err != nil {
		writeGenerationError(w, err)
		return
	}
	defer release()

	res, err := h.generator.GenerateItinerary(r.Context(), s.Snapshot().Request)
	if err != nil {
		writeGenerationError(w, err)
		return
	}

	snap, err := s.Regenerate(sessionContent(res))
	if errors.Is(err, session.ErrSessionNotFound) {
		log.Printf("sessions: %s ended during regeneration, result dropped", s.ID)
		utils.WriteErrorResponse(w, http.StatusNotFound, "Session not found", err.Error())
		return
	}
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusTooManyRequests, "Regeneration limit reached", err.Error())
		return
	}
	log.Printf("sessions: regenerated %s (%d/%d)", s.ID, snap.RegenerationsUsed, snap.RegenerationsAllowed)
	utils.WriteJSONResponse(w, http.StatusOK, toSessionResponse(snap))
}

// Save handles POST /api/sessions/{id}/save
// @Summary Save the session itinerary
// @Description Persists the current itinerary for the signed-in user and ends the session.
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Success 201 {object} dto.SaveItineraryResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/sessions/{id}/save [post]
func (h *SessionsHandler) Save(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Sign in to save itineraries")
		return
	}
	id := r.PathValue("id")

	// a regeneration or a concurrent save of the same session must finish first
	release, err := h.guard.TryAcquire(id)
	if err != nil {
		writeGenerationError(w, err)
		return
	}
	defer release()

	s, err := h.sessions.Take(id)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusNotFound, "Session not found", err.Error())
		return
	}

	snap := s.Snapshot()
	rec := &models.SavedItinerary{
		UserID:      userID,
		Destination: snap.Request.Destination,
		Days:        snap.Request.Days,
		Travelers:   snap.Request.Travelers,
		BudgetLimit: snap.Request.Budget,
		StartDate:   snapshotDocument(snap).StartDate,
		Itinerary:   snap.Itinerary.Days,
		Budget:      snap.Itinerary.Budget,
		Weather:     snap.Weather,
		Hotels:      snap.Hotels,
	}
	if err := h.store.Create(r.Context(), rec); err != nil {
		h.sessions.Restore(s)
		log.Printf("sessions: save %s failed: %v", s.ID, err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to save itinerary", err.Error())
		return
	}

	log.Printf("sessions: saved %s as itinerary %s", s.ID, rec.ID)
	utils.WriteJSONResponse(w, http.StatusCreated, dto.SaveItineraryResponse{ID: rec.ID.String()})
}

// ExportPDF handles GET /api/sessions/{id}/export.pdf
// @Summary Export the session as PDF
// @Tags sessions
// @Produce application/pdf
// @Param id path string true "Session ID"
// @Success 200 {file} file
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/sessions/{id}/export.pdf [get]
func (h *SessionsHandler) ExportPDF(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s, ok := h.lookup(w, r)
	if !ok {
		return
	}
	writeExport(w, snapshotDocument(s.Snapshot()), formatPDF, h.loc)
}

// ExportICS handles GET /api/sessions/{id}/export.ics
// @Summary Export the session as an iCalendar file
// @Tags sessions
// @Produce text/calendar
// @Param id path string true "Session ID"
// @Success 200 {file} file
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /api/sessions/{id}/export.ics [get]
func (h *SessionsHandler) ExportICS(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s, ok := h.lookup(w, r)
	if !ok {
		return
	}
	writeExport(w, snapshotDocument(s.Snapshot()), formatICS, h.loc)
}
