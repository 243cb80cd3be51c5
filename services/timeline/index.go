package timeline

import (
	"time"

	"glowdesk/models"
	"glowdesk/services/availability"
)

// DateIndex buckets visits by the calendar date of their start time,
// giving O(1) day lookups instead of a full scan. It is a derived
// structure: rebuild it whenever the visit collection changes.
type DateIndex map[string][]models.Visit

// BuildDateIndex indexes the given visits by start date. Bucket order
// follows input order within a day.
func BuildDateIndex(visits []models.Visit) DateIndex {
	idx := make(DateIndex, len(visits))
	for _, v := range visits {
		key := availability.DateKey(v.StartTime)
		idx[key] = append(idx[key], v)
	}
	return idx
}

// VisitsForDate returns the bucket for one calendar day. The result is
// never nil.
func (idx DateIndex) VisitsForDate(date time.Time) []models.Visit {
	if visits, ok := idx[availability.DateKey(date)]; ok {
		return visits
	}
	return []models.Visit{}
}

// VisitsForRange concatenates day buckets for every calendar day in
// [start, end] inclusive, in day order. Membership is keyed purely by a
// visit's start date, so nothing is duplicated or dropped across day
// boundaries.
func (idx DateIndex) VisitsForRange(start, end time.Time) []models.Visit {
	visits := []models.Visit{}
	last := availability.StartOfDay(end)
	for d := availability.StartOfDay(start); !d.After(last); d = d.AddDate(0, 0, 1) {
		visits = append(visits, idx[availability.DateKey(d)]...)
	}
	return visits
}
