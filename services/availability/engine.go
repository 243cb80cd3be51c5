package availability

import (
	"glowdesk/models"
)

// Engine answers open-hours and conflict questions over one consistent
// snapshot of the salon's records. Callers build an Engine per query from
// whatever their source of truth is; the engine never mutates its inputs
// and holds no state of its own, so a value is safe to share for reads.
type Engine struct {
	Schedule    models.WeeklySchedule
	Closures    []models.SpecialClosure
	Specialists []models.Specialist
	Visits      []models.Visit
}

func (e Engine) findSpecialist(id string) *models.Specialist {
	for i := range e.Specialists {
		if e.Specialists[i].ID == id {
			return &e.Specialists[i]
		}
	}
	return nil
}

var closedAllDay = models.DaySchedule{IsOpen: false, Hours: []models.TimeRange{}}
