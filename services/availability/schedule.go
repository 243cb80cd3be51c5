package availability

import (
	"time"

	"glowdesk/models"
)

// ResolveDaySchedule produces the salon's effective schedule for one date:
// a special closure forces the whole day closed, otherwise the weekly
// template entry applies. Absent configuration degrades to closed, never
// to an error.
func (e Engine) ResolveDaySchedule(date time.Time) models.DaySchedule {
	key := DateKey(date)
	for _, c := range e.Closures {
		if c.Date == key {
			return closedAllDay
		}
	}
	if day, ok := e.Schedule[WeekdayName(date)]; ok {
		return day
	}
	return closedAllDay
}

// IsOpenAt reports whether the salon is open at the given instant. The
// wall-clock projection of at must fall within [open, close) of at least
// one range of the day's hours.
func (e Engine) IsOpenAt(at time.Time) bool {
	day := e.ResolveDaySchedule(at)
	if !day.IsOpen {
		return false
	}
	tod := models.TimeOfDayOf(at)
	for _, r := range day.Hours {
		open, close, ok := r.Bounds()
		if !ok {
			continue
		}
		if tod >= open && tod < close {
			return true
		}
	}
	return false
}
