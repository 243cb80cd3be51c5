package timeline

import (
	"testing"
	"time"

	"glowdesk/models"
)

var day0 = time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)

func mkVisit(id string, day time.Time, startHour, endHour int) models.Visit {
	return models.Visit{
		ID:         id,
		ClientName: "client",
		StartTime:  day.Add(time.Duration(startHour) * time.Hour),
		EndTime:    day.Add(time.Duration(endHour) * time.Hour),
		Status:     models.VisitStatusConfirmed,
	}
}

func TestBuildDateIndex_BucketsByStartDate(t *testing.T) {
	day1 := day0.AddDate(0, 0, 1)
	visits := []models.Visit{
		mkVisit("a", day0, 9, 10),
		mkVisit("b", day1, 9, 10),
		mkVisit("c", day0, 14, 15),
	}
	idx := BuildDateIndex(visits)

	got := idx.VisitsForDate(day0)
	if len(got) != 2 || got[0].ID != "a" || got[1].ID != "c" {
		t.Errorf("day0 bucket = %v, want [a c] in input order", ids(got))
	}
	if got := idx.VisitsForDate(day1); len(got) != 1 || got[0].ID != "b" {
		t.Errorf("day1 bucket = %v, want [b]", ids(got))
	}
}

func TestVisitsForDate_EmptyDayNotNil(t *testing.T) {
	idx := BuildDateIndex(nil)
	got := idx.VisitsForDate(day0)
	if got == nil {
		t.Fatalf("expected empty slice, got nil")
	}
	if len(got) != 0 {
		t.Errorf("expected no visits, got %d", len(got))
	}
}

func TestVisitsForRange_InclusiveAndOrdered(t *testing.T) {
	day1 := day0.AddDate(0, 0, 1)
	day2 := day0.AddDate(0, 0, 2)
	idx := BuildDateIndex([]models.Visit{
		mkVisit("c", day2, 9, 10),
		mkVisit("a", day0, 9, 10),
		mkVisit("b", day1, 9, 10),
	})

	got := idx.VisitsForRange(day0.Add(8*time.Hour), day2.Add(20*time.Hour))
	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("got %d visits, want %d", len(got), len(want))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("position %d: got %q, want %q", i, got[i].ID, id)
		}
	}
}

func TestVisitsForRange_MatchesPerDayLookups(t *testing.T) {
	day1 := day0.AddDate(0, 0, 1)
	day2 := day0.AddDate(0, 0, 2)
	idx := BuildDateIndex([]models.Visit{
		mkVisit("a", day0, 9, 10),
		mkVisit("b", day0, 11, 12),
		mkVisit("d", day2, 9, 10),
	})

	ranged := idx.VisitsForRange(day0, day2)
	var daily []models.Visit
	for _, d := range []time.Time{day0, day1, day2} {
		daily = append(daily, idx.VisitsForDate(d)...)
	}
	if len(ranged) != len(daily) {
		t.Fatalf("range returned %d visits, per-day lookups %d", len(ranged), len(daily))
	}
	for i := range ranged {
		if ranged[i].ID != daily[i].ID {
			t.Errorf("position %d: range %q, per-day %q", i, ranged[i].ID, daily[i].ID)
		}
	}
}

func ids(visits []models.Visit) []string {
	out := make([]string, len(visits))
	for i, v := range visits {
		out[i] = v.ID
	}
	return out
}
