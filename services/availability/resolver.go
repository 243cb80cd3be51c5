package availability

import (
	"time"

	"glowdesk/models"
)

// EffectiveDaySchedule resolves the schedule that binds one specialist on
// one date. A weekly override entry, when present for that weekday, fully
// replaces the salon's day schedule (not merged); otherwise the salon
// schedule applies.
func (e Engine) EffectiveDaySchedule(sp *models.Specialist, date time.Time) models.DaySchedule {
	if sp != nil && sp.AvailabilityOverrides != nil {
		if day, ok := sp.AvailabilityOverrides[WeekdayName(date)]; ok {
			return day
		}
	}
	return e.ResolveDaySchedule(date)
}

// IsSpecialistAvailable reports whether the [start, end) interval can be
// booked with the given specialist. Gates, each short-circuiting:
//
//  1. the salon must be open at both endpoints (endpoints only — an
//     interval straddling a midday gap between two open ranges is not
//     separately validated);
//  2. the date must not be a personal off-day;
//  3. the specialist's effective day schedule must be open;
//  4. the interval must fit entirely inside one of its open ranges;
//  5. no existing visit for the same specialist may overlap.
//
// An unknown specialist id is answered from salon hours alone.
func (e Engine) IsSpecialistAvailable(specialistID string, start, end time.Time, excludeVisitID string) bool {
	if !e.IsOpenAt(start) || !e.IsOpenAt(end) {
		return false
	}

	sp := e.findSpecialist(specialistID)
	if sp == nil {
		return true
	}

	if sp.HasOffDay(DateKey(start)) {
		return false
	}

	day := e.EffectiveDaySchedule(sp, start)
	if !day.IsOpen {
		return false
	}

	startTOD := models.TimeOfDayOf(start)
	endTOD := models.TimeOfDayOf(end)
	fits := false
	for _, r := range day.Hours {
		open, close, ok := r.Bounds()
		if !ok {
			continue
		}
		if startTOD >= open && endTOD <= close {
			fits = true
			break
		}
	}
	if !fits {
		return false
	}

	return !e.HasConflict(specialistID, start, end, excludeVisitID)
}

// HasConflict reports whether any existing visit for the specialist
// overlaps [start, end). Visits assigned to other specialists — including
// unassigned ones — are ignored, as is the visit named by excludeVisitID
// (the "editing this same visit" case).
func (e Engine) HasConflict(specialistID string, start, end time.Time, excludeVisitID string) bool {
	for _, v := range e.Visits {
		if excludeVisitID != "" && v.ID == excludeVisitID {
			continue
		}
		if v.SpecialistID != specialistID {
			continue
		}
		// Half-open intervals overlap iff start < otherEnd && end > otherStart.
		if start.Before(v.EndTime) && end.After(v.StartTime) {
			return true
		}
	}
	return false
}
