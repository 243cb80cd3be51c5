package timeline

import (
	"sort"
	"time"

	"glowdesk/models"
	"glowdesk/services/availability"
)

// HourHeight is the pixel height of one hour in the timeline column.
const HourHeight = 120.0

// ComputePositionedVisits packs one day's visits into side-by-side display
// lanes and computes their column geometry. Greedy first-fit interval
// partitioning: visits are taken in start-time order (stable, so ties keep
// input order) and each goes to the lowest-index lane whose previous visit
// has already ended, opening a new lane when none fits. No two visits in a
// lane overlap; the lane count is not guaranteed minimal, which the visual
// contract does not require.
//
// Every visit shares the day's total lane count as its width denominator,
// producing uniform columns rather than a tighter per-visit packing.
func ComputePositionedVisits(dayVisits []models.Visit) []models.PositionedVisit {
	visits := make([]models.Visit, len(dayVisits))
	copy(visits, dayVisits)
	sort.SliceStable(visits, func(i, j int) bool {
		return visits[i].StartTime.Before(visits[j].StartTime)
	})

	// laneEnds[i] remembers the end time of lane i's latest visit.
	var laneEnds []time.Time
	lanes := make([]int, len(visits))
	for i, v := range visits {
		assigned := -1
		for li, laneEnd := range laneEnds {
			if !laneEnd.After(v.StartTime) {
				assigned = li
				break
			}
		}
		if assigned == -1 {
			assigned = len(laneEnds)
			laneEnds = append(laneEnds, v.EndTime)
		} else {
			laneEnds[assigned] = v.EndTime
		}
		lanes[i] = assigned
	}

	maxLanes := len(laneEnds)
	if maxLanes == 0 {
		maxLanes = 1
	}

	positioned := make([]models.PositionedVisit, len(visits))
	for i, v := range visits {
		dayStart := availability.StartOfDay(v.StartTime)
		minutesFromStart := v.StartTime.Sub(dayStart).Minutes()
		durationMinutes := v.EndTime.Sub(v.StartTime).Minutes()

		positioned[i] = models.PositionedVisit{
			Visit:  v,
			Lane:   lanes[i],
			Top:    minutesFromStart / 60 * HourHeight,
			Height: durationMinutes / 60 * HourHeight,
			Left:   float64(lanes[i]) / float64(maxLanes) * 100,
			Width:  100 / float64(maxLanes),
		}
	}
	return positioned
}
