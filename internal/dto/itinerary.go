package dto

import (
	"strings"

	"PATHFINDER_BACK-END/internal/models"
)

// DateRange is the trip's first and last day, YYYY-MM-DD or RFC3339
type DateRange struct {
	From string `json:"from" validate:"required"`
	To   string `json:"to" validate:"required"`
}

// GenerateRequest describes the trip to plan
type GenerateRequest struct {
	Destination string    `json:"destination" validate:"required,min=2,max=120"`
	Days        int       `json:"days,omitempty" validate:"omitempty,min=1,max=30"`
	Budget      int64     `json:"budget" validate:"required,min=500000"`
	Travelers   int       `json:"travelers" validate:"required,min=1,max=10"`
	Interests   []string  `json:"interests" validate:"required,min=1,max=10,dive,required,max=40"`
	Pace        string    `json:"pace,omitempty" validate:"omitempty,oneof=Relaxed Moderate Packed"`
	DateRange   DateRange `json:"dateRange"`
}

// GenerateResponse is a generated itinerary. Weather and hotels are present in extended mode.
type GenerateResponse struct {
	Itinerary []models.DayPlan `json:"itinerary"`
	Budget    models.Budget    `json:"budget"`
	Weather   *models.Weather  `json:"weather,omitempty"`
	Hotels    []models.Hotel   `json:"hotels,omitempty"`
}

// RegenerateActivityRequest asks for replacements of one activity
type RegenerateActivityRequest struct {
	Destination     string          `json:"destination" validate:"required"`
	CurrentActivity models.Activity `json:"currentActivity"`
	Preferences     string          `json:"preferences,omitempty" validate:"max=500"`
	TimeSlot        string          `json:"timeSlot" validate:"required"`
}

// AlternativesResponse carries exactly three candidate activities
type AlternativesResponse struct {
	Alternatives []models.Activity `json:"alternatives"`
}

// SessionResponse is the full state of a planning session
type SessionResponse struct {
	SessionID            string           `json:"session_id"`
	Destination          string           `json:"destination"`
	Days                 int              `json:"days"`
	Travelers            int              `json:"travelers"`
	BudgetLimit          int64            `json:"budget_limit"`
	StartDate            string           `json:"start_date"`
	EndDate              string           `json:"end_date"`
	Itinerary            []models.DayPlan `json:"itinerary"`
	Budget               models.Budget    `json:"budget"`
	Weather              *models.Weather  `json:"weather,omitempty"`
	Hotels               []models.Hotel   `json:"hotels,omitempty"`
	OverBudgetBy         int64            `json:"over_budget_by"`
	RegenerationsUsed    int              `json:"regenerations_used"`
	RegenerationsAllowed int              `json:"regenerations_allowed"`
}

// SlotRequest addresses one activity slot of a session
type SlotRequest struct {
	DayIndex int    `json:"day_index" validate:"min=0"`
	Slot     string `json:"slot" validate:"required,oneof=morning lunch afternoon dinner evening"`
}

// ActivityInput is an activity written or picked by the client. An empty time
// keeps the time of the activity it replaces.
type ActivityInput struct {
	Name        string `json:"name" validate:"required,max=200"`
	Description string `json:"description" validate:"max=1000"`
	Time        string `json:"time" validate:"max=50"`
	Cost        string `json:"cost" validate:"required,max=100"`
}

// ToModel converts the input, taking the time from current when none was given
func (a ActivityInput) ToModel(current models.Activity) models.Activity {
	act := models.Activity{Name: a.Name, Description: a.Description, Time: a.Time, Cost: a.Cost}
	if strings.TrimSpace(act.Time) == "" {
		act.Time = current.Time
	}
	return act
}

// EditActivityRequest replaces a slot with a user-written activity
type EditActivityRequest struct {
	SlotRequest
	Activity ActivityInput `json:"activity"`
}

// AlternativesForSlotRequest asks for replacements of a session slot
type AlternativesForSlotRequest struct {
	SlotRequest
	Preferences string `json:"preferences,omitempty" validate:"max=500"`
}

// SelectAlternativeRequest applies a chosen alternative to a slot
type SelectAlternativeRequest struct {
	SlotRequest
	Activity ActivityInput `json:"activity"`
}

// MutationResponse reports a session edit. Applied is false when the slot did not exist.
type MutationResponse struct {
	Applied bool            `json:"applied"`
	Delta   int64           `json:"delta"`
	Session SessionResponse `json:"session"`
}

// SaveItineraryResponse is returned after a session is persisted
type SaveItineraryResponse struct {
	ID string `json:"id"`
}

// ItineraryListItem is one saved itinerary in a list
type ItineraryListItem struct {
	ID          string `json:"id"`
	Destination string `json:"destination"`
	Days        int    `json:"days"`
	Total       int64  `json:"total"`
	Currency    string `json:"currency"`
	CreatedAt   string `json:"created_at"`
}

// ItineraryListResponse is a page of saved itineraries, newest first
type ItineraryListResponse struct {
	Items  []ItineraryListItem `json:"items"`
	Total  int                 `json:"total"`
	Limit  int                 `json:"limit"`
	Offset int                 `json:"offset"`
}

// ItineraryDetailResponse is a saved itinerary
type ItineraryDetailResponse struct {
	ID          string           `json:"id"`
	Destination string           `json:"destination"`
	Days        int              `json:"days"`
	Travelers   int              `json:"travelers"`
	BudgetLimit int64            `json:"budget_limit"`
	StartDate   string           `json:"start_date,omitempty"`
	Itinerary   []models.DayPlan `json:"itinerary_data"`
	Budget      models.Budget    `json:"budget_breakdown"`
	Weather     *models.Weather  `json:"weather,omitempty"`
	Hotels      []models.Hotel   `json:"hotels,omitempty"`
	CreatedAt   string           `json:"created_at"`
}
