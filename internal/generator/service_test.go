package generator_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"PATHFINDER_BACK-END/internal/generator"
	"PATHFINDER_BACK-END/internal/generator/generatortest"
	"PATHFINDER_BACK-END/internal/models"
	"PATHFINDER_BACK-END/internal/planner"
)

const testKey = "AIzaTestKey123"

func tripRequest(days int) models.TripRequest {
	start := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	return models.TripRequest{
		Destination: "Bali",
		Days:        days,
		Budget:      5000000,
		Travelers:   2,
		Pace:        models.PaceModerate,
		Interests:   []string{"Food", "Culture"},
		StartDate:   start,
		EndDate:     start.AddDate(0, 0, days-1),
	}
}

func TestCredentialUsable(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{"", false},
		{"   ", false},
		{"your_api_key_here", false},
		{"YOUR_API_KEY_HERE", false},
		{"your_gemini_key", false},
		{"<api-key>", false},
		{"changeme", false},
		{testKey, true},
	}
	for _, tt := range tests {
		if got := generator.CredentialUsable(tt.key); got != tt.want {
			t.Errorf("CredentialUsable(%q) = %v; want %v", tt.key, got, tt.want)
		}
	}
}

func TestGenerateItineraryNotConfigured(t *testing.T) {
	fake := &generatortest.Provider{}
	fake.Push(generatortest.Itinerary(3))

	for _, key := range []string{"", "your_api_key_here"} {
		svc := generator.NewService(fake, generator.Options{APIKey: key})
		_, err := svc.GenerateItinerary(context.Background(), tripRequest(3))
		if !errors.Is(err, generator.ErrNotConfigured) {
			t.Errorf("key %q: err = %v; want ErrNotConfigured", key, err)
		}
	}
	if fake.Calls() != 0 {
		t.Errorf("provider called %d times; want 0", fake.Calls())
	}

	svc := generator.NewService(nil, generator.Options{APIKey: testKey})
	if _, err := svc.GenerateItinerary(context.Background(), tripRequest(3)); !errors.Is(err, generator.ErrNotConfigured) {
		t.Errorf("nil provider: err = %v; want ErrNotConfigured", err)
	}
}

func TestGenerateItineraryScenario(t *testing.T) {
	fake := &generatortest.Provider{}
	fake.Push(generatortest.Itinerary(3))
	svc := generator.NewService(fake, generator.Options{APIKey: testKey})

	res, err := svc.GenerateItinerary(context.Background(), tripRequest(3))
	if err != nil {
		t.Fatalf("GenerateItinerary returned error: %v", err)
	}
	if res.Variant != generator.VariantItinerary {
		t.Errorf("variant = %q; want itinerary", res.Variant)
	}
	if len(res.Itinerary) != 3 {
		t.Fatalf("got %d days; want 3", len(res.Itinerary))
	}
	for _, day := range res.Itinerary {
		for _, slot := range models.Slots {
			act := day.Activities.Get(slot)
			if act.Name == "" || act.Time == "" || act.Cost == "" {
				t.Errorf("day %d %s incomplete: %+v", day.Day, slot, act)
			}
		}
	}
	if res.Budget.Total > res.Budget.CategorySum() {
		t.Errorf("total %d exceeds category sum %d", res.Budget.Total, res.Budget.CategorySum())
	}
	if res.Weather != nil || res.Hotels != nil {
		t.Error("basic variant should not carry weather or hotels")
	}
	if fake.Schemas[0] != "itinerary" || !strings.Contains(fake.Prompts[0], "Plan a 3-day trip to Bali") {
		t.Errorf("unexpected call: schema=%q prompt=%q", fake.Schemas[0], fake.Prompts[0])
	}
}

func TestGenerateItineraryExtended(t *testing.T) {
	fake := &generatortest.Provider{}
	fake.Push(generatortest.ExtendedItinerary(2))
	svc := generator.NewService(fake, generator.Options{APIKey: testKey, Extended: true})

	res, err := svc.GenerateItinerary(context.Background(), tripRequest(2))
	if err != nil {
		t.Fatalf("GenerateItinerary returned error: %v", err)
	}
	if res.Variant != generator.VariantExtendedItinerary {
		t.Errorf("variant = %q; want extended_itinerary", res.Variant)
	}
	if res.Weather == nil || len(res.Hotels) != 3 {
		t.Fatalf("weather=%v hotels=%d; want weather and 3 hotels", res.Weather, len(res.Hotels))
	}
	if !strings.Contains(fake.Prompts[0], "HOTELS") {
		t.Error("extended prompt should ask for hotels")
	}
}

func TestGenerateItineraryRejectsInvalidResponses(t *testing.T) {
	wrongDays := generatortest.Itinerary(2)

	missingBudget := generatortest.Itinerary(3)
	delete(missingBudget, "budget")

	emptyCost := generatortest.Itinerary(3)
	emptyCost["itinerary"].([]models.DayPlan)[1].Activities.Lunch.Cost = ""

	misnumbered := generatortest.Itinerary(3)
	misnumbered["itinerary"].([]models.DayPlan)[2].Day = 7

	extraField := generatortest.Itinerary(3)
	extraField["notes"] = "unexpected"

	twoHotels := generatortest.ExtendedItinerary(3)
	twoHotels["hotels"] = twoHotels["hotels"].([]models.Hotel)[:2]

	sameHotels := generatortest.ExtendedItinerary(3)
	for i := range sameHotels["hotels"].([]models.Hotel) {
		sameHotels["hotels"].([]models.Hotel)[i].Category = models.HotelBestValue
	}

	tests := []struct {
		name     string
		body     any
		raw      string
		extended bool
	}{
		{name: "day count mismatch", body: wrongDays},
		{name: "missing budget", body: missingBudget},
		{name: "empty cost", body: emptyCost},
		{name: "misnumbered day", body: misnumbered},
		{name: "unknown field", body: extraField},
		{name: "not json", raw: "Here is your itinerary!"},
		{name: "float budget", raw: `{"itinerary":[],"budget":{"accommodation":1.5}}`},
		{name: "two hotels", body: twoHotels, extended: true},
		{name: "duplicate hotel categories", body: sameHotels, extended: true},
		{name: "basic response for extended request", body: generatortest.Itinerary(3), extended: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &generatortest.Provider{}
			if tt.raw != "" {
				fake.PushRaw([]byte(tt.raw))
			} else {
				fake.Push(tt.body)
			}
			svc := generator.NewService(fake, generator.Options{APIKey: testKey, Extended: tt.extended})

			res, err := svc.GenerateItinerary(context.Background(), tripRequest(3))
			if !errors.Is(err, generator.ErrGeneration) {
				t.Errorf("err = %v; want ErrGeneration", err)
			}
			if res != nil {
				t.Error("expected no partial result")
			}
		})
	}
}

func TestGenerateItineraryProviderFailure(t *testing.T) {
	cause := errors.New("503 model overloaded")
	fake := &generatortest.Provider{}
	fake.PushError(cause)
	svc := generator.NewService(fake, generator.Options{APIKey: testKey})

	_, err := svc.GenerateItinerary(context.Background(), tripRequest(3))
	if !errors.Is(err, generator.ErrGeneration) || !errors.Is(err, cause) {
		t.Errorf("err = %v; want ErrGeneration wrapping the provider error", err)
	}
	if !strings.Contains(err.Error(), "503 model overloaded") {
		t.Errorf("error message %q should carry the underlying message", err)
	}
	if fake.Calls() != 1 {
		t.Errorf("provider called %d times; want exactly 1 (no retry)", fake.Calls())
	}
}

func TestGenerateItineraryTimeout(t *testing.T) {
	fake := &generatortest.Provider{Block: make(chan struct{})}
	svc := generator.NewService(fake, generator.Options{APIKey: testKey, Timeout: 20 * time.Millisecond})

	_, err := svc.GenerateItinerary(context.Background(), tripRequest(1))
	if !errors.Is(err, generator.ErrGeneration) || !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("err = %v; want ErrGeneration wrapping DeadlineExceeded", err)
	}
}

func TestGenerateAlternatives(t *testing.T) {
	fake := &generatortest.Provider{}
	fake.Push(generatortest.Alternatives(3))
	svc := generator.NewService(fake, generator.Options{APIKey: testKey})

	res, err := svc.GenerateAlternatives(context.Background(), planner.AlternativesRequest{
		Destination: "Bali",
		Current:     generatortest.Activity("Tanah Lot", "Rp 60.000"),
		TimeSlot:    "afternoon",
	})
	if err != nil {
		t.Fatalf("GenerateAlternatives returned error: %v", err)
	}
	if len(res.Alternatives) != 3 {
		t.Errorf("got %d alternatives; want 3", len(res.Alternatives))
	}
	if fake.Schemas[0] != "alternatives" {
		t.Errorf("schema = %q; want alternatives", fake.Schemas[0])
	}
}

func TestGenerateAlternativesRequiresExactlyThree(t *testing.T) {
	for _, n := range []int{0, 2, 4} {
		fake := &generatortest.Provider{}
		fake.Push(generatortest.Alternatives(n))
		svc := generator.NewService(fake, generator.Options{APIKey: testKey})

		_, err := svc.GenerateAlternatives(context.Background(), planner.AlternativesRequest{Destination: "Bali"})
		if !errors.Is(err, generator.ErrGeneration) {
			t.Errorf("%d alternatives: err = %v; want ErrGeneration", n, err)
		}
	}
}

func TestSchemaConversions(t *testing.T) {
	node := generator.ItinerarySchema(4, true)

	g := node.Genai()
	days := g.Properties["itinerary"]
	if days.MinItems == nil || *days.MinItems != 4 || days.MaxItems == nil || *days.MaxItems != 4 {
		t.Errorf("itinerary bounds = %v/%v; want 4/4", days.MinItems, days.MaxItems)
	}
	if len(g.Required) != 4 {
		t.Errorf("required = %v; want itinerary, budget, weather, hotels", g.Required)
	}

	js := node.JSONSchema()
	raw, err := json.Marshal(js)
	if err != nil {
		t.Fatalf("marshal schema: %v", err)
	}
	if !strings.Contains(string(raw), `"additionalProperties":false`) {
		t.Error("strict JSON schema must forbid additional properties")
	}
	if !strings.Contains(string(raw), `"Luxury/Treat"`) {
		t.Error("hotel category enum missing from JSON schema")
	}

	if err := generator.AlternativesSchema().Check([]byte(`{"alternatives":[]}`)); err == nil {
		t.Error("empty alternatives should fail the schema check")
	}
}
