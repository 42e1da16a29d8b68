package budget

import (
	"errors"
	"math"
	"testing"

	"PATHFINDER_BACK-END/internal/models"
)

func TestParseCost(t *testing.T) {
	tests := []struct {
		raw  string
		want int64
	}{
		{"Free", 0},
		{"free entry", 0},
		{"FREE", 0},
		{"Rp 50.000", 50000},
		{"20.000-50.000", 50000},
		{"Rp 100.000 – Rp 75.000", 100000},
		{"Rp 30.000 — 45.000", 45000},
		{"Rp 10.000 to Rp 25.000", 25000},
		{"", 0},
		{"Ask at the counter", 0},
		{"IDR 1,250,000", 1250000},
		{"Rp 99.999.999.999.999.999.999", math.MaxInt64},
		{"Rp 10.000 - Rp 99.999.999.999.999.999.999", math.MaxInt64},
	}

	for _, tt := range tests {
		got := ParseCost(tt.raw)
		if got != tt.want {
			t.Errorf("ParseCost(%q) = %d; want %d", tt.raw, got, tt.want)
		}
	}
}

func activity(name, cost string) models.Activity {
	return models.Activity{Name: name, Description: name + " desc", Time: "10:00 - 12:00", Cost: cost}
}

func sampleItinerary(days int) *models.Itinerary {
	it := &models.Itinerary{
		Budget: models.Budget{Accommodation: 1500000, Food: 500000, Activities: 800000, Transport: 150000, Misc: 50000, Total: 3000000, Currency: "IDR"},
	}
	for i := 1; i <= days; i++ {
		it.Days = append(it.Days, models.DayPlan{
			Day:  i,
			Date: "2025-03-1" + string(rune('0'+i)),
			Activities: models.DayActivities{
				Morning:   activity("Temple", "Rp 50.000"),
				Lunch:     activity("Warung", "Rp 75.000"),
				Afternoon: activity("Beach", "Free"),
				Dinner:    models.Activity{Name: "Seafood", Description: "Jimbaran", Time: "19:00", Cost: "Rp 150.000"},
				Evening:   activity("Dance", "Rp 100.000"),
			},
		})
	}
	return it
}

func TestRemoveDinnerScenario(t *testing.T) {
	it := sampleItinerary(3)

	removed, err := Remove(it, 1, models.SlotDinner)
	if err != nil {
		t.Fatalf("Remove returned error: %v", err)
	}
	if removed.Name != "Seafood" {
		t.Errorf("removed activity = %q; want Seafood", removed.Name)
	}
	if it.Budget.Activities != 650000 {
		t.Errorf("activities = %d; want 650000", it.Budget.Activities)
	}
	if it.Budget.Total != 2850000 {
		t.Errorf("total = %d; want 2850000", it.Budget.Total)
	}
	dinner := it.Days[1].Activities.Dinner
	if dinner.Name != FreeTimeName || dinner.Cost != FreeCost {
		t.Errorf("dinner = %+v; want Free Time placeholder", dinner)
	}
	if dinner.Time != "19:00" {
		t.Errorf("dinner time = %q; want preserved 19:00", dinner.Time)
	}
	if it.Budget.Accommodation != 1500000 || it.Budget.Food != 500000 {
		t.Errorf("non-activity categories changed: %+v", it.Budget)
	}
}

func TestReplaceDeltaConservation(t *testing.T) {
	tests := []struct {
		name     string
		newCost  string
		wantAct  int64
		wantTot  int64
		wantDiff int64
	}{
		{"more expensive", "Rp 200.000", 950000, 3150000, 150000},
		{"cheaper", "Rp 20.000", 770000, 2970000, -30000},
		{"free", "Free", 750000, 2950000, -50000},
		{"range takes upper bound", "Rp 40.000 - Rp 60.000", 810000, 3010000, 10000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it := sampleItinerary(2)
			delta, err := Replace(it, 0, models.SlotMorning, activity("New", tt.newCost))
			if err != nil {
				t.Fatalf("Replace returned error: %v", err)
			}
			if delta != tt.wantDiff {
				t.Errorf("delta = %d; want %d", delta, tt.wantDiff)
			}
			if it.Budget.Activities != tt.wantAct || it.Budget.Total != tt.wantTot {
				t.Errorf("budget = %d/%d; want %d/%d", it.Budget.Activities, it.Budget.Total, tt.wantAct, tt.wantTot)
			}
			if it.Days[0].Activities.Morning.Name != "New" {
				t.Errorf("slot not replaced: %+v", it.Days[0].Activities.Morning)
			}
		})
	}
}

func TestBudgetNeverNegative(t *testing.T) {
	it := sampleItinerary(1)
	it.Budget.Activities = 10000
	it.Budget.Total = 20000

	if _, err := Replace(it, 0, models.SlotEvening, activity("Cheap", "Free")); err != nil {
		t.Fatal(err)
	}
	if _, err := Remove(it, 0, models.SlotDinner); err != nil {
		t.Fatal(err)
	}
	if _, err := Remove(it, 0, models.SlotMorning); err != nil {
		t.Fatal(err)
	}
	if it.Budget.Activities != 0 || it.Budget.Total != 0 {
		t.Errorf("budget = %d/%d; want both floored at 0", it.Budget.Activities, it.Budget.Total)
	}

	if _, err := Replace(it, 0, models.SlotMorning, activity("Pricey", "Rp 5.000")); err != nil {
		t.Fatal(err)
	}
	if it.Budget.Activities != 5000 || it.Budget.Total != 5000 {
		t.Errorf("budget = %d/%d; want 5000/5000", it.Budget.Activities, it.Budget.Total)
	}
}

func TestHugeCostSaturates(t *testing.T) {
	it := sampleItinerary(1)
	it.Budget.Activities = 10000
	it.Budget.Total = 20000

	delta, err := Replace(it, 0, models.SlotMorning, activity("Yacht", "Rp 99.999.999.999.999.999.999"))
	if err != nil {
		t.Fatal(err)
	}
	if delta <= 0 {
		t.Errorf("delta = %d; want positive", delta)
	}
	if it.Budget.Activities != math.MaxInt64 || it.Budget.Total != math.MaxInt64 {
		t.Errorf("budget = %d/%d; want both saturated at MaxInt64", it.Budget.Activities, it.Budget.Total)
	}
}

func TestOutOfRange(t *testing.T) {
	it := sampleItinerary(2)
	before := it.Budget

	if _, err := Remove(it, 2, models.SlotMorning); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Remove(day 2) err = %v; want ErrOutOfRange", err)
	}
	if _, err := Replace(it, -1, models.SlotMorning, activity("x", "Rp 1")); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Replace(day -1) err = %v; want ErrOutOfRange", err)
	}
	if _, err := Lookup(it, 0, models.Slot("brunch")); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Lookup(brunch) err = %v; want ErrOutOfRange", err)
	}
	if it.Budget != before {
		t.Errorf("budget changed on failed mutation: %+v", it.Budget)
	}
}

func TestOverBudget(t *testing.T) {
	b := models.Budget{Total: 5500000}
	if got := OverBudget(b, 5000000); got != 500000 {
		t.Errorf("OverBudget = %d; want 500000", got)
	}
	if got := OverBudget(b, 6000000); got != 0 {
		t.Errorf("OverBudget under limit = %d; want 0", got)
	}
	if got := OverBudget(b, 0); got != 0 {
		t.Errorf("OverBudget without limit = %d; want 0", got)
	}
}
