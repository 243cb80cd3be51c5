package availability

import (
	"time"

	"glowdesk/models"
)

// SlotQuery parameterizes a multi-slot search.
type SlotQuery struct {
	// SpecialistID narrows the search to one specialist. Empty or
	// AnySpecialist searches all of them.
	SpecialistID string
	// After is the earliest instant a slot may start.
	After time.Time
	// DurationMinutes is the requested appointment length.
	DurationMinutes int
	// DaysToSearch bounds the day horizon; 0 means SearchHorizonDays.
	DaysToSearch int
	// ExcludeVisitID skips one visit in conflict checks, for rescheduling.
	ExcludeVisitID string
}

// FindNextAvailableSlot returns the earliest bookable start for the
// specialist at or after the given instant, or nil when nothing opens up
// within the search horizon. The candidate walks the booking grid in
// 15-minute steps; whole closed days are jumped over rather than scanned.
func (e Engine) FindNextAvailableSlot(specialistID string, after time.Time, durationMinutes int) *time.Time {
	candidate := RoundUpToStep(after, SlotStepMinutes)
	limit := after.AddDate(0, 0, SearchHorizonDays)
	duration := time.Duration(durationMinutes) * time.Minute

	for candidate.Before(limit) {
		if !e.ResolveDaySchedule(candidate).IsOpen {
			candidate = StartOfNextDay(candidate)
			continue
		}
		end := candidate.Add(duration)
		if e.IsSpecialistAvailable(specialistID, candidate, end, "") {
			return &candidate
		}
		candidate = candidate.Add(SlotStepMinutes * time.Minute)
	}
	return nil
}

// FindAvailableSlots enumerates bookable openings over the query's day
// horizon, in discovery order: day ascending, then specialist order, then
// time ascending. Collection stops globally once MaxSlotResults slots have
// been found; callers wanting more must narrow the query.
func (e Engine) FindAvailableSlots(q SlotQuery) []models.AvailableSlot {
	days := q.DaysToSearch
	if days <= 0 {
		days = SearchHorizonDays
	}
	duration := time.Duration(q.DurationMinutes) * time.Minute
	step := SlotStepMinutes * time.Minute

	specialists := e.Specialists
	if q.SpecialistID != "" && q.SpecialistID != AnySpecialist {
		specialists = nil
		if sp := e.findSpecialist(q.SpecialistID); sp != nil {
			specialists = []models.Specialist{*sp}
		}
	}

	slots := make([]models.AvailableSlot, 0, MaxSlotResults)
	for i := 0; i < days; i++ {
		day := StartOfDay(q.After).AddDate(0, 0, i)
		if !e.ResolveDaySchedule(day).IsOpen {
			continue
		}

		for _, sp := range specialists {
			daySchedule := e.EffectiveDaySchedule(&sp, day)
			if !daySchedule.IsOpen {
				continue
			}

			for _, r := range daySchedule.Hours {
				open, close, ok := r.Bounds()
				if !ok {
					continue
				}
				current := day.Add(time.Duration(open) * time.Minute)
				rangeEnd := day.Add(time.Duration(close) * time.Minute)
				if SameDay(day, q.After) {
					if rounded := RoundUpToStep(q.After, SlotStepMinutes); rounded.After(current) {
						current = rounded
					}
				}

				for !current.Add(duration).After(rangeEnd) {
					slotEnd := current.Add(duration)
					if e.IsSpecialistAvailable(sp.ID, current, slotEnd, q.ExcludeVisitID) {
						slots = append(slots, models.AvailableSlot{
							SpecialistID: sp.ID,
							Date:         DateKey(day),
							StartTime:    models.TimeOfDayOf(current).String(),
							EndTime:      models.TimeOfDayOf(slotEnd).String(),
						})
						if len(slots) >= MaxSlotResults {
							return slots
						}
					}
					current = current.Add(step)
				}
			}
		}
	}
	return slots
}
