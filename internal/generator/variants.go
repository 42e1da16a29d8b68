package generator

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/samber/lo"

	"PATHFINDER_BACK-END/internal/models"
)

// Variant tags the three kinds of structured output
type Variant string

const (
	VariantItinerary         Variant = "itinerary"
	VariantExtendedItinerary Variant = "extended_itinerary"
	VariantAlternatives      Variant = "alternatives"
)

// ItineraryResult is a validated full-itinerary response.
// Weather and Hotels are set only for the extended variant.
type ItineraryResult struct {
	Variant   Variant          `json:"-"`
	Itinerary []models.DayPlan `json:"itinerary"`
	Budget    models.Budget    `json:"budget"`
	Weather   *models.Weather  `json:"weather,omitempty"`
	Hotels    []models.Hotel   `json:"hotels,omitempty"`
}

// AlternativesResult is a validated single-activity regeneration response
type AlternativesResult struct {
	Alternatives []models.Activity `json:"alternatives"`
}

func decodeStrict(raw []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// decodeItinerary checks raw against the itinerary schema and decodes it
func decodeItinerary(raw []byte, days int, extended bool) (*ItineraryResult, error) {
	if err := ItinerarySchema(days, extended).Check(raw); err != nil {
		return nil, err
	}
	var res ItineraryResult
	if err := decodeStrict(raw, &res); err != nil {
		return nil, fmt.Errorf("decode itinerary: %w", err)
	}
	res.Variant = VariantItinerary
	if extended {
		res.Variant = VariantExtendedItinerary
	}
	if err := res.Validate(days); err != nil {
		return nil, err
	}
	return &res, nil
}

// Validate enforces the semantic rules the schema cannot express
func (r *ItineraryResult) Validate(days int) error {
	if len(r.Itinerary) != days {
		return fmt.Errorf("expected %d days, got %d", days, len(r.Itinerary))
	}
	for i := range r.Itinerary {
		day := &r.Itinerary[i]
		if day.Day != i+1 {
			return fmt.Errorf("day %d is numbered %d", i+1, day.Day)
		}
		for _, slot := range models.Slots {
			if err := checkActivity(*day.Activities.Get(slot)); err != nil {
				return fmt.Errorf("day %d %s: %w", day.Day, slot, err)
			}
		}
	}

	b := r.Budget
	if strings.TrimSpace(b.Currency) == "" {
		return fmt.Errorf("budget currency is empty")
	}
	for name, v := range map[string]int64{
		"accommodation": b.Accommodation, "food": b.Food, "activities": b.Activities,
		"transport": b.Transport, "misc": b.Misc, "total": b.Total,
	} {
		if v < 0 {
			return fmt.Errorf("budget %s is negative", name)
		}
	}

	switch r.Variant {
	case VariantExtendedItinerary:
		if r.Weather == nil || strings.TrimSpace(r.Weather.Summary) == "" {
			return fmt.Errorf("weather summary is missing")
		}
		if len(r.Hotels) != len(models.HotelCategories) {
			return fmt.Errorf("expected %d hotels, got %d", len(models.HotelCategories), len(r.Hotels))
		}
		got := lo.Uniq(lo.Map(r.Hotels, func(h models.Hotel, _ int) string { return h.Category }))
		if len(got) != len(models.HotelCategories) {
			return fmt.Errorf("hotel categories must be distinct, got %v", got)
		}
	case VariantItinerary:
		if r.Weather != nil || len(r.Hotels) > 0 {
			return fmt.Errorf("basic itinerary must not carry weather or hotels")
		}
	}
	return nil
}

// decodeAlternatives checks raw against the alternatives schema and decodes it
func decodeAlternatives(raw []byte) (*AlternativesResult, error) {
	if err := AlternativesSchema().Check(raw); err != nil {
		return nil, err
	}
	var res AlternativesResult
	if err := decodeStrict(raw, &res); err != nil {
		return nil, fmt.Errorf("decode alternatives: %w", err)
	}
	if err := res.Validate(); err != nil {
		return nil, err
	}
	return &res, nil
}

// Validate requires exactly three complete alternatives
func (r *AlternativesResult) Validate() error {
	if len(r.Alternatives) != 3 {
		return fmt.Errorf("expected 3 alternatives, got %d", len(r.Alternatives))
	}
	for i, a := range r.Alternatives {
		if err := checkActivity(a); err != nil {
			return fmt.Errorf("alternative %d: %w", i+1, err)
		}
	}
	return nil
}

func checkActivity(a models.Activity) error {
	switch {
	case strings.TrimSpace(a.Name) == "":
		return fmt.Errorf("name is empty")
	case strings.TrimSpace(a.Time) == "":
		return fmt.Errorf("time is empty")
	case strings.TrimSpace(a.Cost) == "":
		return fmt.Errorf("cost is empty")
	}
	return nil
}
