// Package export renders an itinerary as a printable PDF or an iCalendar file.
package export

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"PATHFINDER_BACK-END/internal/models"
)

// Document is everything an export needs, built from a session or a saved record
type Document struct {
	Destination string
	Days        int
	Travelers   int
	BudgetLimit int64
	StartDate   *time.Time
	Itinerary   models.Itinerary
	Weather     *models.Weather
	Hotels      []models.Hotel
}

// Currency returns the budget currency, IDR when unset
func (d Document) Currency() string {
	if c := strings.TrimSpace(d.Itinerary.Budget.Currency); c != "" {
		return c
	}
	return "IDR"
}

// FileName returns a download name such as Bali_Itinerary.pdf
func (d Document) FileName(ext string) string {
	name := unsafeFileChars.ReplaceAllString(strings.TrimSpace(d.Destination), "_")
	if name == "" {
		name = "Trip"
	}
	return fmt.Sprintf("%s_Itinerary.%s", name, ext)
}

var unsafeFileChars = regexp.MustCompile(`[^\p{L}\p{N}]+`)

var amounts = message.NewPrinter(language.Indonesian)

// FormatAmount groups digits the Indonesian way, e.g. 3.000.000
func FormatAmount(n int64) string {
	return amounts.Sprintf("%d", n)
}
