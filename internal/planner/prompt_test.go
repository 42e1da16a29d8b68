package planner

import (
	"strings"
	"testing"
	"time"

	"PATHFINDER_BACK-END/internal/models"
)

func baliRequest() models.TripRequest {
	return models.TripRequest{
		Destination: "Bali",
		Days:        3,
		Budget:      5000000,
		Travelers:   2,
		Pace:        models.PaceModerate,
		Interests:   []string{"Food", "Culture"},
		StartDate:   time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC),
	}
}

func TestBuildItineraryPrompt(t *testing.T) {
	got := BuildItineraryPrompt(baliRequest(), ItineraryOptions{})

	for _, want := range []string{
		"Plan a 3-day trip to Bali for 2 people.",
		"Date Range: 2025-03-14 to 2025-03-16",
		"Calculate exact dates",
		"Budget Limit: 5000000 IDR",
		"This is a LIMIT, not a target",
		"Pace: Moderate",
		"Travel Style/Interests: Food, Culture.",
		"single point estimate, never a range",
		"Return exactly 3 days",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
	if strings.Contains(got, "HOTELS") || strings.Contains(got, "WEATHER") {
		t.Error("basic prompt should not ask for hotels or weather")
	}
}

func TestBuildItineraryPromptExtended(t *testing.T) {
	got := BuildItineraryPrompt(baliRequest(), ItineraryOptions{Extended: true})

	for _, want := range []string{
		"seasonal weather",
		"exactly 3 hotels",
		`"Best Value", "Budget Friendly", "Luxury/Treat"`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("extended prompt missing %q", want)
		}
	}
}

func TestBuildItineraryPromptDefaults(t *testing.T) {
	req := baliRequest()
	req.Pace = ""
	req.Interests = nil
	req.StartDate = time.Time{}

	got := BuildItineraryPrompt(req, ItineraryOptions{})
	if !strings.Contains(got, "Pace: Moderate") {
		t.Error("empty pace should default to Moderate")
	}
	if !strings.Contains(got, "General sightseeing, local food, culture") {
		t.Error("empty interests should use the default interests")
	}
	if !strings.Contains(got, "Date Range: unspecified") {
		t.Error("zero start date should render as unspecified")
	}
}

func TestBuildItineraryPromptIsDeterministic(t *testing.T) {
	a := BuildItineraryPrompt(baliRequest(), ItineraryOptions{Extended: true})
	b := BuildItineraryPrompt(baliRequest(), ItineraryOptions{Extended: true})
	if a != b {
		t.Error("prompt should be a pure function of its inputs")
	}
}

func TestBuildAlternativesPrompt(t *testing.T) {
	got := BuildAlternativesPrompt(AlternativesRequest{
		Destination: "Bali",
		Current:     models.Activity{Name: "Tanah Lot", Description: "Sea temple", Time: "16:00 - 18:00", Cost: "Rp 60.000"},
		TimeSlot:    "afternoon",
	})

	for _, want := range []string{
		"expert travel planner for Bali",
		`Current Activity: "Tanah Lot" (Sea temple)`,
		"Time Slot: afternoon",
		"User Preferences: General tourist highlights",
		"exactly 3 distinct",
		`Keep it: "16:00 - 18:00"`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("alternatives prompt missing %q", want)
		}
	}
}
