package export

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"time"

	ics "github.com/arran4/golang-ical"

	"PATHFINDER_BACK-END/internal/budget"
	"PATHFINDER_BACK-END/internal/models"
)

// ErrNoStartDate is returned when a calendar is requested for an undated trip
var ErrNoStartDate = errors.New("trip has no start date")

type clock struct{ h, m int }

// used when an activity's time text cannot be read
var slotDefaults = map[models.Slot][2]clock{
	models.SlotMorning:   {{9, 0}, {12, 0}},
	models.SlotLunch:     {{12, 0}, {13, 30}},
	models.SlotAfternoon: {{14, 0}, {17, 0}},
	models.SlotDinner:    {{19, 0}, {21, 0}},
	models.SlotEvening:   {{21, 0}, {22, 30}},
}

var clockPattern = regexp.MustCompile(`(\d{1,2})[:.](\d{2})`)

// parseTimeRange reads "09:00 - 11:00" style text. A single time gets a one hour slot.
func parseTimeRange(text string, slot models.Slot) (clock, clock) {
	var found []clock
	for _, m := range clockPattern.FindAllStringSubmatch(text, 2) {
		h, _ := strconv.Atoi(m[1])
		mins, _ := strconv.Atoi(m[2])
		if h > 23 || mins > 59 {
			continue
		}
		found = append(found, clock{h, mins})
	}
	switch len(found) {
	case 0:
		d := slotDefaults[slot]
		return d[0], d[1]
	case 1:
		return found[0], clock{(found[0].h + 1) % 24, found[0].m}
	}
	return found[0], found[1]
}

// WriteICS writes one event per planned activity. Free Time placeholders are skipped.
func WriteICS(w io.Writer, doc Document, loc *time.Location) error {
	if doc.StartDate == nil || doc.StartDate.IsZero() {
		return ErrNoStartDate
	}
	if loc == nil {
		loc = time.UTC
	}
	y, mo, d := doc.StartDate.Date()
	first := time.Date(y, mo, d, 0, 0, 0, 0, loc)
	now := time.Now()

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//Pathfinder//Itinerary//EN")
	cal.SetXWRCalName(fmt.Sprintf("%s trip", doc.Destination))

	for i, day := range doc.Itinerary.Days {
		date := first.AddDate(0, 0, i)
		for _, slot := range models.Slots {
			act := day.Activities.Get(slot)
			if act.Name == "" || act.Name == budget.FreeTimeName {
				continue
			}
			from, to := parseTimeRange(act.Time, slot)
			start := date.Add(time.Duration(from.h)*time.Hour + time.Duration(from.m)*time.Minute)
			end := date.Add(time.Duration(to.h)*time.Hour + time.Duration(to.m)*time.Minute)
			if !end.After(start) {
				end = end.AddDate(0, 0, 1)
			}

			event := cal.AddEvent(fmt.Sprintf("%s-day%d-%s@pathfinder", date.Format("20060102"), day.Day, slot))
			event.SetCreatedTime(now)
			event.SetDtStampTime(now)
			event.SetStartAt(start)
			event.SetEndAt(end)
			event.SetSummary(act.Name)
			event.SetLocation(doc.Destination)
			event.SetDescription(fmt.Sprintf("%s\nCost: %s", act.Description, act.Cost))
		}
	}

	_, err := io.WriteString(w, cal.Serialize())
	return err
}
