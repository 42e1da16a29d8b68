package handlers

import (
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/samber/lo"

	"PATHFINDER_BACK-END/internal/budget"
	"PATHFINDER_BACK-END/internal/dto"
	"PATHFINDER_BACK-END/internal/export"
	"PATHFINDER_BACK-END/internal/generator"
	"PATHFINDER_BACK-END/internal/models"
	"PATHFINDER_BACK-END/internal/session"
	"PATHFINDER_BACK-END/internal/utils"
)

const maxTripDays = 30

// toTripRequest turns the request body into a TripRequest, deriving the day count
// from the date range when it is omitted
func toTripRequest(req dto.GenerateRequest) (models.TripRequest, error) {
	start, err := utils.ParseDate(req.DateRange.From)
	if err != nil {
		return models.TripRequest{}, fmt.Errorf("dateRange.from: %w", err)
	}
	end, err := utils.ParseDate(req.DateRange.To)
	if err != nil {
		return models.TripRequest{}, fmt.Errorf("dateRange.to: %w", err)
	}
	if end.Before(start) {
		return models.TripRequest{}, errors.New("End date cannot be earlier than start date")
	}

	days := utils.DaysInclusive(start, end)
	if req.Days != 0 && req.Days != days {
		return models.TripRequest{}, fmt.Errorf("days is %d but the date range covers %d days", req.Days, days)
	}
	if days > maxTripDays {
		return models.TripRequest{}, fmt.Errorf("trips are limited to %d days", maxTripDays)
	}

	interests := lo.Uniq(lo.FilterMap(req.Interests, func(s string, _ int) (string, bool) {
		s = strings.TrimSpace(s)
		return s, s != ""
	}))
	if len(interests) == 0 {
		return models.TripRequest{}, errors.New("Select at least one interest")
	}

	pace := models.Pace(req.Pace)
	if pace == "" {
		pace = models.PaceModerate
	}

	return models.TripRequest{
		Destination: strings.TrimSpace(req.Destination),
		Days:        days,
		Budget:      req.Budget,
		Travelers:   req.Travelers,
		Pace:        pace,
		Interests:   interests,
		StartDate:   start,
		EndDate:     end,
	}, nil
}

// writeGenerationError maps generator failures onto the JSON error envelope.
// Configuration and generation failures are both 500s.
func writeGenerationError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, generator.ErrNotConfigured):
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Invalid API Key", "Please check the generator API key in .env")
	case errors.Is(err, session.ErrInFlight):
		utils.WriteErrorResponse(w, http.StatusConflict, "Request in progress", err.Error())
	default:
		log.Printf("planning: generation failed: %v", err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Generation failed", err.Error())
	}
}

// clientKey identifies the caller for the in-flight guard: the user when signed in,
// otherwise the remote host
func clientKey(r *http.Request) string {
	if id, ok := utils.GetUserIDFromContext(r.Context()); ok {
		return "user:" + id.String()
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return "host:" + host
}

func sessionContent(res *generator.ItineraryResult) session.Content {
	return session.Content{
		Itinerary: models.Itinerary{Days: res.Itinerary, Budget: res.Budget},
		Weather:   res.Weather,
		Hotels:    res.Hotels,
	}
}

func toSessionResponse(s session.Snapshot) dto.SessionResponse {
	return dto.SessionResponse{
		SessionID:            s.ID,
		Destination:          s.Request.Destination,
		Days:                 s.Request.Days,
		Travelers:            s.Request.Travelers,
		BudgetLimit:          s.Request.Budget,
		StartDate:            utils.FormatDate(s.Request.StartDate),
		EndDate:              utils.FormatDate(s.Request.EndDate),
		Itinerary:            s.Itinerary.Days,
		Budget:               s.Itinerary.Budget,
		Weather:              s.Weather,
		Hotels:               s.Hotels,
		OverBudgetBy:         budget.OverBudget(s.Itinerary.Budget, s.Request.Budget),
		RegenerationsUsed:    s.RegenerationsUsed,
		RegenerationsAllowed: s.RegenerationsAllowed,
	}
}

func snapshotDocument(s session.Snapshot) export.Document {
	var start *time.Time
	if !s.Request.StartDate.IsZero() {
		d := s.Request.StartDate
		start = &d
	}
	return export.Document{
		Destination: s.Request.Destination,
		Days:        s.Request.Days,
		Travelers:   s.Request.Travelers,
		BudgetLimit: s.Request.Budget,
		StartDate:   start,
		Itinerary:   s.Itinerary,
		Weather:     s.Weather,
		Hotels:      s.Hotels,
	}
}

func savedDocument(rec *models.SavedItinerary) export.Document {
	return export.Document{
		Destination: rec.Destination,
		Days:        rec.Days,
		Travelers:   rec.Travelers,
		BudgetLimit: rec.BudgetLimit,
		StartDate:   rec.StartDate,
		Itinerary:   models.Itinerary{Days: rec.Itinerary, Budget: rec.Budget},
		Weather:     rec.Weather,
		Hotels:      rec.Hotels,
	}
}
