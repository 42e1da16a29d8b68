// Package budget keeps an itinerary's budget in step with activity changes
// without calling the generator again.
package budget

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"PATHFINDER_BACK-END/internal/models"
)

// ErrOutOfRange is returned when a mutation targets a day or slot that does not exist
var ErrOutOfRange = errors.New("activity slot out of range")

// Placeholder values written into a removed slot
const (
	FreeTimeName        = "Free Time"
	FreeTimeDescription = "Enjoy some leisure time to explore on your own."
	FreeCost            = "Free"
)

var (
	rangeSeparator = regexp.MustCompile(`(?i)[-–—]|\s+to\s+`)
	nonDigit       = regexp.MustCompile(`\D`)
)

// ParseCost turns a free-text cost into a non-negative amount.
// Ranges resolve to their upper bound; anything unparseable is 0 and
// amounts too large for int64 saturate at math.MaxInt64.
func ParseCost(cost string) int64 {
	if strings.Contains(strings.ToLower(cost), "free") {
		return 0
	}
	if rangeSeparator.MatchString(cost) {
		parts := rangeSeparator.Split(cost, -1)
		return lo.Max(lo.Map(parts, func(p string, _ int) int64 {
			return digitsOnly(p)
		}))
	}
	return digitsOnly(cost)
}

func digitsOnly(s string) int64 {
	n, err := strconv.ParseInt(nonDigit.ReplaceAllString(s, ""), 10, 64)
	if errors.Is(err, strconv.ErrRange) {
		return math.MaxInt64
	}
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// ApplyDelta adds delta to the activities category and the total, flooring both at zero.
// The other categories are left untouched.
func ApplyDelta(b *models.Budget, delta int64) {
	b.Activities = max(0, saturatingAdd(b.Activities, delta))
	b.Total = max(0, saturatingAdd(b.Total, delta))
}

func saturatingAdd(a, b int64) int64 {
	switch {
	case b > 0 && a > math.MaxInt64-b:
		return math.MaxInt64
	case b < 0 && a < math.MinInt64-b:
		return math.MinInt64
	}
	return a + b
}

// OverBudget returns how far the total exceeds the limit, or 0
func OverBudget(b models.Budget, limit int64) int64 {
	if limit <= 0 {
		return 0
	}
	return max(0, b.Total-limit)
}

func locate(it *models.Itinerary, dayIndex int, slot models.Slot) (*models.Activity, error) {
	if dayIndex < 0 || dayIndex >= len(it.Days) {
		return nil, fmt.Errorf("%w: day index %d of %d", ErrOutOfRange, dayIndex, len(it.Days))
	}
	act := it.Days[dayIndex].Activities.Get(slot)
	if act == nil {
		return nil, fmt.Errorf("%w: unknown slot %q", ErrOutOfRange, slot)
	}
	return act, nil
}

// Remove replaces the activity with a Free Time placeholder, keeping its time,
// and takes its cost out of the budget. It returns the removed activity.
func Remove(it *models.Itinerary, dayIndex int, slot models.Slot) (models.Activity, error) {
	act, err := locate(it, dayIndex, slot)
	if err != nil {
		return models.Activity{}, err
	}
	removed := *act
	*act = models.Activity{
		Name:        FreeTimeName,
		Description: FreeTimeDescription,
		Time:        removed.Time,
		Cost:        FreeCost,
	}
	ApplyDelta(&it.Budget, -ParseCost(removed.Cost))
	return removed, nil
}

// Replace puts next into the slot and applies the cost difference to the budget.
// It is used for manual edits and for picking a generated alternative.
func Replace(it *models.Itinerary, dayIndex int, slot models.Slot, next models.Activity) (int64, error) {
	act, err := locate(it, dayIndex, slot)
	if err != nil {
		return 0, err
	}
	delta := ParseCost(next.Cost) - ParseCost(act.Cost)
	*act = next
	ApplyDelta(&it.Budget, delta)
	return delta, nil
}

// Lookup returns a copy of the activity in the slot
func Lookup(it *models.Itinerary, dayIndex int, slot models.Slot) (models.Activity, error) {
	act, err := locate(it, dayIndex, slot)
	if err != nil {
		return models.Activity{}, err
	}
	return *act, nil
}
