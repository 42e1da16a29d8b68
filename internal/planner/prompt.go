// Package planner renders the natural-language instructions sent to the itinerary generator.
package planner

import (
	"fmt"
	"strings"
	"time"

	"PATHFINDER_BACK-END/internal/models"
)

// Currency is the single currency every generated cost is expressed in
const Currency = "IDR"

const (
	defaultPace        = models.PaceModerate
	defaultInterests   = "General sightseeing, local food, culture"
	defaultPreferences = "General tourist highlights"
	dateLayout         = "2006-01-02"
)

// ItineraryOptions toggles the optional parts of the full itinerary output
type ItineraryOptions struct {
	// Extended asks for a weather summary and three hotel options
	Extended bool
}

// BuildItineraryPrompt renders the full-itinerary instruction for req
func BuildItineraryPrompt(req models.TripRequest, opts ItineraryOptions) string {
	pace := req.Pace
	if pace == "" {
		pace = defaultPace
	}
	interests := strings.Join(req.Interests, ", ")
	if strings.TrimSpace(interests) == "" {
		interests = defaultInterests
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Plan a %d-day trip to %s for %d people.\n", req.Days, req.Destination, req.Travelers)
	fmt.Fprintf(&b, "Date Range: %s to %s (Calculate exact dates for every day).\n\n", formatDate(req.StartDate), formatDate(req.EndDate))

	fmt.Fprintf(&b, "Budget Limit: %d %s per person.\n", req.Budget, Currency)
	b.WriteString("IMPORTANT: This is a LIMIT, not a target. Minimize costs where possible while maintaining quality.\n")
	b.WriteString("Do not try to spend the entire budget if cheaper good options exist.\n\n")

	fmt.Fprintf(&b, "Pace: %s\n", pace)
	fmt.Fprintf(&b, "Travel Style/Interests: %s.\n\n", interests)

	b.WriteString("Generate a detailed day-by-day itinerary with:\n")
	b.WriteString("- Morning: Attraction/Activity\n")
	b.WriteString("- Lunch: Restaurant recommendation\n")
	b.WriteString("- Afternoon: Attraction/Activity\n")
	b.WriteString("- Dinner: Restaurant recommendation\n")
	b.WriteString("- Evening: Optional activity\n\n")
	fmt.Fprintf(&b, "Return exactly %d days, numbered from 1, each with all five slots filled.\n", req.Days)
	b.WriteString("Ensure realistic timing (travel time considered) and variety in activities.\n\n")

	fmt.Fprintf(&b, "Also provide a budget breakdown in %s (accommodation, food, activities, transport, misc and their total).\n", Currency)
	fmt.Fprintf(&b, "IMPORTANT: All costs MUST be in %s (Indonesian Rupiah), e.g. \"Rp 50.000\".\n", Currency)
	b.WriteString("Give every cost as a single point estimate, never a range. Use \"Free\" when there is no cost.\n")

	if opts.Extended {
		b.WriteString("\nWEATHER: Consider the typical seasonal weather for these dates at the destination ")
		b.WriteString("(rainy or dry season, heat, holidays) and adjust the activity suggestions accordingly. ")
		b.WriteString("Summarize the expected weather and temperature range.\n")
		b.WriteString("HOTELS: Suggest exactly 3 hotels with these categories, one each: ")
		fmt.Fprintf(&b, "\"%s\".\n", strings.Join(models.HotelCategories, "\", \""))
		fmt.Fprintf(&b, "Give each hotel's price per night as a single %s estimate and a search query suitable for a booking site.\n", Currency)
	}

	return b.String()
}

// AlternativesRequest carries the context of a single-activity regeneration
type AlternativesRequest struct {
	Destination string
	Current     models.Activity
	Preferences string
	TimeSlot    string
}

// BuildAlternativesPrompt renders the instruction asking for three replacements of one activity
func BuildAlternativesPrompt(req AlternativesRequest) string {
	prefs := strings.TrimSpace(req.Preferences)
	if prefs == "" {
		prefs = defaultPreferences
	}

	var b strings.Builder
	fmt.Fprintf(&b, "You are an expert travel planner for %s.\n", req.Destination)
	b.WriteString("The user wants to replace an activity in their itinerary.\n\n")
	fmt.Fprintf(&b, "Current Activity: %q (%s)\n", req.Current.Name, req.Current.Description)
	fmt.Fprintf(&b, "Time Slot: %s\n", req.TimeSlot)
	fmt.Fprintf(&b, "User Preferences: %s\n\n", prefs)
	fmt.Fprintf(&b, "Please suggest exactly 3 distinct, high-quality alternative activities for this specific time slot in %s.\n", req.Destination)
	b.WriteString("They should be different from the current activity but fit the same time slot logic.\n")
	b.WriteString("Keep descriptions punchy and under 20 words.\n\n")
	b.WriteString("Provide:\n")
	b.WriteString("- Name\n")
	b.WriteString("- Description\n")
	fmt.Fprintf(&b, "- Time (Keep it: %q)\n", req.Current.Time)
	fmt.Fprintf(&b, "- Cost (Single estimate in %s (Indonesian Rupiah), e.g. \"Rp 50.000\" or \"Free\", never a range)\n", Currency)

	return b.String()
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "unspecified"
	}
	return t.Format(dateLayout)
}
