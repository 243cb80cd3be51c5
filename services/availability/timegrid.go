package availability

import (
	"strings"
	"time"
)

const (
	// SlotStepMinutes is the booking grid granularity.
	SlotStepMinutes = 15
	// SearchHorizonDays bounds every slot search.
	SearchHorizonDays = 7
	// MaxSlotResults caps findAvailableSlots output across all days and
	// specialists. A display cap, not a capacity limit.
	MaxSlotResults = 12
	// AnySpecialist is the sentinel meaning "search every specialist".
	AnySpecialist = "any"
)

const dateKeyLayout = "2006-01-02"

// DateKey returns the calendar-date key for an instant, e.g. "2025-06-02".
func DateKey(t time.Time) string {
	return t.Format(dateKeyLayout)
}

// WeekdayName returns the lower-case English weekday name used as a
// WeeklySchedule key.
func WeekdayName(t time.Time) string {
	return strings.ToLower(t.Weekday().String())
}

// StartOfDay returns midnight of t's calendar day, in t's location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StartOfNextDay returns midnight of the following calendar day.
func StartOfNextDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1)
}

// SameDay reports whether two instants share a calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// RoundUpToStep rounds t up to the next stepMinutes boundary of its day.
// An instant already on the boundary is returned unchanged.
func RoundUpToStep(t time.Time, stepMinutes int) time.Time {
	day := StartOfDay(t)
	step := time.Duration(stepMinutes) * time.Minute
	offset := t.Sub(day)
	rounded := offset / step * step
	if rounded < offset {
		rounded += step
	}
	return day.Add(rounded)
}
