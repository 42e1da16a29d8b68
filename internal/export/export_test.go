package export

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"PATHFINDER_BACK-END/internal/budget"
	"PATHFINDER_BACK-END/internal/models"
)

func sampleDocument(days int) Document {
	act := func(name, t, cost string) models.Activity {
		return models.Activity{Name: name, Description: name + " with a long description that wraps across several lines of the activity column", Time: t, Cost: cost}
	}
	plans := make([]models.DayPlan, days)
	for i := range plans {
		plans[i] = models.DayPlan{
			Day:  i + 1,
			Date: time.Date(2025, 3, 14+i, 0, 0, 0, 0, time.UTC).Format("2006-01-02"),
			Activities: models.DayActivities{
				Morning:   act("Uluwatu Temple", "09:00 - 11:00", "Rp 50.000"),
				Lunch:     act("Warung Babi Guling", "12:00 - 13:00", "Rp 75.000"),
				Afternoon: act("Padang Padang Beach", "14:00 - 17:00", "Free"),
				Dinner:    act("Jimbaran Seafood", "19:00 - 21:00", "Rp 150.000"),
				Evening:   act("Kecak Dance", "evening", "Rp 100.000"),
			},
		}
	}
	start := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	return Document{
		Destination: "Bali",
		Days:        days,
		Travelers:   2,
		BudgetLimit: 5000000,
		StartDate:   &start,
		Itinerary: models.Itinerary{
			Days:   plans,
			Budget: models.Budget{Accommodation: 1500000, Activities: 800000, Total: 3000000, Currency: "IDR"},
		},
		Weather: &models.Weather{Summary: "Dry season", Temperature: "26-32°C"},
		Hotels: []models.Hotel{
			{Name: "Alila", Category: models.HotelLuxury, PricePerNight: "Rp 4.000.000", Address: "Uluwatu"},
		},
	}
}

func TestWritePDF(t *testing.T) {
	for _, days := range []int{1, 7} {
		var buf bytes.Buffer
		if err := WritePDF(&buf, sampleDocument(days)); err != nil {
			t.Fatalf("%d days: WritePDF returned error: %v", days, err)
		}
		if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
			t.Errorf("%d days: output is not a PDF", days)
		}
	}
}

func TestWritePDFEmptyItinerary(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePDF(&buf, Document{Destination: "Nowhere"}); err != nil {
		t.Fatalf("WritePDF returned error: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("expected a one-page document")
	}
}

func TestWriteICS(t *testing.T) {
	doc := sampleDocument(2)
	if _, err := budget.Remove(&doc.Itinerary, 1, models.SlotDinner); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := WriteICS(&buf, doc, time.UTC); err != nil {
		t.Fatalf("WriteICS returned error: %v", err)
	}
	out := buf.String()
	if got := strings.Count(out, "BEGIN:VEVENT"); got != 9 {
		t.Errorf("got %d events; want 9 (free time skipped)", got)
	}
	if !strings.Contains(out, "SUMMARY:Uluwatu Temple") {
		t.Error("missing activity summary")
	}
	if !strings.Contains(out, "DTSTART:20250314T090000Z") {
		t.Errorf("first event should start 2025-03-14 09:00 UTC:\n%s", out)
	}
}

func TestWriteICSRequiresStartDate(t *testing.T) {
	doc := sampleDocument(1)
	doc.StartDate = nil
	if err := WriteICS(&bytes.Buffer{}, doc, nil); !errors.Is(err, ErrNoStartDate) {
		t.Errorf("err = %v; want ErrNoStartDate", err)
	}
}

func TestParseTimeRange(t *testing.T) {
	tests := []struct {
		text       string
		slot       models.Slot
		start, end clock
	}{
		{"09:00 - 11:00", models.SlotMorning, clock{9, 0}, clock{11, 0}},
		{"19.30–21.00", models.SlotDinner, clock{19, 30}, clock{21, 0}},
		{"From 14:00", models.SlotAfternoon, clock{14, 0}, clock{15, 0}},
		{"evening", models.SlotEvening, clock{21, 0}, clock{22, 30}},
		{"25:00", models.SlotLunch, clock{12, 0}, clock{13, 30}},
	}
	for _, tt := range tests {
		start, end := parseTimeRange(tt.text, tt.slot)
		if start != tt.start || end != tt.end {
			t.Errorf("parseTimeRange(%q) = %v-%v; want %v-%v", tt.text, start, end, tt.start, tt.end)
		}
	}
}

func TestFormatAmount(t *testing.T) {
	if got := FormatAmount(3000000); got != "3.000.000" {
		t.Errorf("FormatAmount = %q; want 3.000.000", got)
	}
}

func TestFileName(t *testing.T) {
	doc := Document{Destination: "Labuan Bajo, NTT"}
	if got := doc.FileName("pdf"); got != "Labuan_Bajo_NTT_Itinerary.pdf" {
		t.Errorf("FileName = %q", got)
	}
}
