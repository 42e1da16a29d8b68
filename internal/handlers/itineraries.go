package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"PATHFINDER_BACK-END/internal/dto"
	"PATHFINDER_BACK-END/internal/models"
	"PATHFINDER_BACK-END/internal/storage"
	"PATHFINDER_BACK-END/internal/utils"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// ItinerariesHandler serves the signed-in user's saved itineraries
type ItinerariesHandler struct {
	store storage.ItineraryStore
	loc   *time.Location
}

// NewItinerariesHandler creates a new ItinerariesHandler
func NewItinerariesHandler(store storage.ItineraryStore, loc *time.Location) *ItinerariesHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &ItinerariesHandler{store: store, loc: loc}
}

// ListItineraries handles GET /api/itineraries
// @Summary List saved itineraries
// @Description Returns the signed-in user's saved itineraries, newest first.
// @Tags itineraries
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Page size (default 20, max 100)"
// @Param offset query int false "Items to skip"
// @Success 200 {object} dto.ItineraryListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/itineraries [get]
func (h *ItinerariesHandler) ListItineraries(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "User not authenticated")
		return
	}

	limit, err := queryInt(r, "limit", defaultPageSize)
	if err != nil || limit < 1 {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid limit", "limit must be a positive integer")
		return
	}
	limit = min(limit, maxPageSize)
	offset, err := queryInt(r, "offset", 0)
	if err != nil || offset < 0 {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid offset", "offset must be zero or more")
		return
	}

	items, total, err := h.store.ListByOwner(r.Context(), userID, limit, offset)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", err.Error())
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.ItineraryListResponse{
		Items: lo.Map(items, func(it models.SavedItinerarySummary, _ int) dto.ItineraryListItem {
			return dto.ItineraryListItem{
				ID:          it.ID.String(),
				Destination: it.Destination,
				Days:        it.Days,
				Total:       it.Total,
				Currency:    it.Currency,
				CreatedAt:   utils.FormatTimestamp(it.CreatedAt),
			}
		}),
		Total:  total,
		Limit:  limit,
		Offset: offset,
	})
}

func queryInt(r *http.Request, key string, def int) (int, error) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return def, nil
	}
	return strconv.Atoi(v)
}

// load resolves the {id} path value against the signed-in user's itineraries
func (h *ItinerariesHandler) load(w http.ResponseWriter, r *http.Request) (*models.SavedItinerary, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "User not authenticated")
		return nil, false
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid itinerary ID", "Itinerary ID must be a valid UUID")
		return nil, false
	}

	rec, err := h.store.Get(r.Context(), id, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			utils.WriteErrorResponse(w, http.StatusNotFound, "Itinerary not found", err.Error())
			return nil, false
		}
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", err.Error())
		return nil, false
	}
	return rec, true
}

// GetItinerary handles GET /api/itineraries/{id}
// @Summary Get a saved itinerary
// @Tags itineraries
// @Produce json
// @Security BearerAuth
// @Param id path string true "Itinerary ID"
// @Success 200 {object} dto.ItineraryDetailResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/itineraries/{id} [get]
func (h *ItinerariesHandler) GetItinerary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	rec, ok := h.load(w, r)
	if !ok {
		return
	}

	resp := dto.ItineraryDetailResponse{
		ID:          rec.ID.String(),
		Destination: rec.Destination,
		Days:        rec.Days,
		Travelers:   rec.Travelers,
		BudgetLimit: rec.BudgetLimit,
		Itinerary:   rec.Itinerary,
		Budget:      rec.Budget,
		Weather:     rec.Weather,
		Hotels:      rec.Hotels,
		CreatedAt:   utils.FormatTimestamp(rec.CreatedAt),
	}
	if rec.StartDate != nil {
		resp.StartDate = utils.FormatDate(*rec.StartDate)
	}
	utils.WriteJSONResponse(w, http.StatusOK, resp)
}

// ExportPDF handles GET /api/itineraries/{id}/export.pdf
// @Summary Export a saved itinerary as PDF
// @Tags itineraries
// @Produce application/pdf
// @Security BearerAuth
// @Param id path string true "Itinerary ID"
// @Success 200 {file} file
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/itineraries/{id}/export.pdf [get]
func (h *ItinerariesHandler) ExportPDF(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	rec, ok := h.load(w, r)
	if !ok {
		return
	}
	writeExport(w, savedDocument(rec), formatPDF, h.loc)
}

// ExportICS handles GET /api/itineraries/{id}/export.ics
// @Summary Export a saved itinerary as an iCalendar file
// @Tags itineraries
// @Produce text/calendar
// @Security BearerAuth
// @Param id path string true "Itinerary ID"
// @Success 200 {file} file
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /api/itineraries/{id}/export.ics [get]
func (h *ItinerariesHandler) ExportICS(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	rec, ok := h.load(w, r)
	if !ok {
		return
	}
	writeExport(w, savedDocument(rec), formatICS, h.loc)
}
