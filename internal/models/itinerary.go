package models

import (
	"time"

	"github.com/google/uuid"
)

// Pace controls how densely a day is planned
type Pace string

const (
	PaceRelaxed  Pace = "Relaxed"
	PaceModerate Pace = "Moderate"
	PacePacked   Pace = "Packed"
)

// Slot is one of the five fixed time-of-day positions of a DayPlan
type Slot string

const (
	SlotMorning   Slot = "morning"
	SlotLunch     Slot = "lunch"
	SlotAfternoon Slot = "afternoon"
	SlotDinner    Slot = "dinner"
	SlotEvening   Slot = "evening"
)

// Slots lists every slot in display order
var Slots = []Slot{SlotMorning, SlotLunch, SlotAfternoon, SlotDinner, SlotEvening}

// Label returns the capitalized slot name used in exports
func (s Slot) Label() string {
	switch s {
	case SlotMorning:
		return "Morning"
	case SlotLunch:
		return "Lunch"
	case SlotAfternoon:
		return "Afternoon"
	case SlotDinner:
		return "Dinner"
	case SlotEvening:
		return "Evening"
	}
	return string(s)
}

// TripRequest is the user's description of a trip, immutable once submitted
type TripRequest struct {
	Destination string    `json:"destination"`
	Days        int       `json:"days"`
	Budget      int64     `json:"budget"`
	Travelers   int       `json:"travelers"`
	Pace        Pace      `json:"pace"`
	Interests   []string  `json:"interests"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
}

// Activity fills one slot of a day
type Activity struct {
	Name        string `json:"name" bson:"name"`
	Description string `json:"description" bson:"description"`
	Time        string `json:"time" bson:"time"`
	Cost        string `json:"cost" bson:"cost"`
}

// DayActivities holds the five slots of a day
type DayActivities struct {
	Morning   Activity `json:"morning" bson:"morning"`
	Lunch     Activity `json:"lunch" bson:"lunch"`
	Afternoon Activity `json:"afternoon" bson:"afternoon"`
	Dinner    Activity `json:"dinner" bson:"dinner"`
	Evening   Activity `json:"evening" bson:"evening"`
}

// Get returns a pointer to the activity in the given slot, nil for unknown slots
func (a *DayActivities) Get(s Slot) *Activity {
	switch s {
	case SlotMorning:
		return &a.Morning
	case SlotLunch:
		return &a.Lunch
	case SlotAfternoon:
		return &a.Afternoon
	case SlotDinner:
		return &a.Dinner
	case SlotEvening:
		return &a.Evening
	}
	return nil
}

// DayPlan is one day of an itinerary
type DayPlan struct {
	Day        int           `json:"day" bson:"day"`
	Date       string        `json:"date" bson:"date"`
	Activities DayActivities `json:"activities" bson:"activities"`
}

// Budget is the cost breakdown of an itinerary
type Budget struct {
	Accommodation int64  `json:"accommodation" bson:"accommodation"`
	Food          int64  `json:"food" bson:"food"`
	Activities    int64  `json:"activities" bson:"activities"`
	Transport     int64  `json:"transport" bson:"transport"`
	Misc          int64  `json:"misc" bson:"misc"`
	Total         int64  `json:"total" bson:"total"`
	Currency      string `json:"currency" bson:"currency"`
}

// CategorySum adds up the five categories
func (b Budget) CategorySum() int64 {
	return b.Accommodation + b.Food + b.Activities + b.Transport + b.Misc
}

// Hotel is a read-only accommodation suggestion
type Hotel struct {
	Name            string `json:"name" bson:"name"`
	Address         string `json:"address" bson:"address"`
	Description     string `json:"description" bson:"description"`
	PricePerNight   string `json:"price_per_night" bson:"price_per_night"`
	Currency        string `json:"currency" bson:"currency"`
	BookingURLQuery string `json:"booking_url_query" bson:"booking_url_query"`
	Category        string `json:"category" bson:"category"`
}

// Hotel categories, one hotel each
const (
	HotelBestValue      = "Best Value"
	HotelBudgetFriendly = "Budget Friendly"
	HotelLuxury         = "Luxury/Treat"
)

// HotelCategories lists the categories in the order they are requested
var HotelCategories = []string{HotelBestValue, HotelBudgetFriendly, HotelLuxury}

// Weather is a read-only seasonal summary
type Weather struct {
	Summary     string `json:"summary" bson:"summary"`
	Temperature string `json:"temperature" bson:"temperature"`
}

// Itinerary keeps the day list and its budget together
type Itinerary struct {
	Days   []DayPlan `json:"itinerary"`
	Budget Budget    `json:"budget"`
}

// SavedItinerary is the persisted record of an itinerary
type SavedItinerary struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	UserID      uuid.UUID  `json:"user_id" db:"user_id"`
	Destination string     `json:"destination" db:"destination"`
	Days        int        `json:"days" db:"days"`
	Travelers   int        `json:"travelers" db:"travelers"`
	BudgetLimit int64      `json:"budget_limit" db:"budget_limit"`
	StartDate   *time.Time `json:"start_date,omitempty" db:"start_date"`
	Itinerary   []DayPlan  `json:"itinerary_data" db:"itinerary_data"`
	Budget      Budget     `json:"budget_breakdown" db:"budget_breakdown"`
	Weather     *Weather   `json:"weather,omitempty" db:"weather"`
	Hotels      []Hotel    `json:"hotels,omitempty" db:"hotels"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
}

// SavedItinerarySummary is the list view of a saved itinerary
type SavedItinerarySummary struct {
	ID          uuid.UUID `json:"id"`
	Destination string    `json:"destination"`
	Days        int       `json:"days"`
	Total       int64     `json:"total"`
	Currency    string    `json:"currency"`
	CreatedAt   time.Time `json:"created_at"`
}
