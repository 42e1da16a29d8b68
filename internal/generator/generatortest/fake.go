// Package generatortest provides a scripted Provider and response fixtures for tests.
package generatortest

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"PATHFINDER_BACK-END/internal/generator"
	"PATHFINDER_BACK-END/internal/models"
)

// Provider returns queued responses in order and records the prompts it was given
type Provider struct {
	mu        sync.Mutex
	responses [][]byte
	errs      []error
	Prompts   []string
	Schemas   []string
	// Block, when set, is waited on before answering
	Block chan struct{}
}

// Push queues a JSON-encodable response
func (p *Provider) Push(v any) *Provider {
	raw, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return p.PushRaw(raw)
}

// PushRaw queues a raw response body
func (p *Provider) PushRaw(raw []byte) *Provider {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.responses = append(p.responses, raw)
	p.errs = append(p.errs, nil)
	return p
}

// PushError queues a provider failure
func (p *Provider) PushError(err error) *Provider {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.responses = append(p.responses, nil)
	p.errs = append(p.errs, err)
	return p
}

// Calls returns how many requests were made
func (p *Provider) Calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.Prompts)
}

func (p *Provider) Name() string { return "fake" }

// GenerateJSON implements generator.Provider
func (p *Provider) GenerateJSON(ctx context.Context, prompt string, schemaName string, _ *generator.Node) ([]byte, error) {
	if p.Block != nil {
		select {
		case <-p.Block:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Prompts = append(p.Prompts, prompt)
	p.Schemas = append(p.Schemas, schemaName)
	if len(p.responses) == 0 {
		return nil, fmt.Errorf("no scripted response")
	}
	raw, err := p.responses[0], p.errs[0]
	p.responses, p.errs = p.responses[1:], p.errs[1:]
	return raw, err
}

// Activity builds a complete activity
func Activity(name, cost string) models.Activity {
	return models.Activity{Name: name, Description: name + " visit", Time: "09:00 - 11:00", Cost: cost}
}

// Itinerary builds a schema-valid itinerary response for the given day count
func Itinerary(days int) map[string]any {
	plans := make([]models.DayPlan, days)
	for i := range plans {
		plans[i] = models.DayPlan{
			Day:  i + 1,
			Date: fmt.Sprintf("2025-03-%02d", 14+i),
			Activities: models.DayActivities{
				Morning:   Activity(fmt.Sprintf("Temple %d", i+1), "Rp 50.000"),
				Lunch:     Activity(fmt.Sprintf("Warung %d", i+1), "Rp 75.000"),
				Afternoon: Activity(fmt.Sprintf("Beach %d", i+1), "Free"),
				Dinner:    models.Activity{Name: fmt.Sprintf("Seafood %d", i+1), Description: "Grilled fish", Time: "19:00 - 21:00", Cost: "Rp 150.000"},
				Evening:   Activity(fmt.Sprintf("Dance %d", i+1), "Rp 100.000"),
			},
		}
	}
	return map[string]any{
		"itinerary": plans,
		"budget": models.Budget{
			Accommodation: 1500000, Food: 500000, Activities: 800000,
			Transport: 150000, Misc: 50000, Total: 3000000, Currency: "IDR",
		},
	}
}

// ExtendedItinerary adds weather and three hotels to Itinerary
func ExtendedItinerary(days int) map[string]any {
	out := Itinerary(days)
	out["weather"] = models.Weather{Summary: "Dry season, sunny", Temperature: "26-32°C"}
	hotels := make([]models.Hotel, 0, len(models.HotelCategories))
	for _, c := range models.HotelCategories {
		hotels = append(hotels, models.Hotel{
			Name: c + " Hotel", Address: "Jl. Pantai", Description: "Near the beach",
			PricePerNight: "Rp 500.000", Currency: "IDR", BookingURLQuery: c + " Hotel Bali", Category: c,
		})
	}
	out["hotels"] = hotels
	return out
}

// Alternatives builds a response with n alternatives
func Alternatives(n int) map[string]any {
	alts := make([]models.Activity, n)
	for i := range alts {
		alts[i] = Activity(fmt.Sprintf("Alternative %d", i+1), fmt.Sprintf("Rp %d0.000", i+2))
	}
	return map[string]any{"alternatives": alts}
}
