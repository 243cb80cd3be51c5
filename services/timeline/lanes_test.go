package timeline

import (
	"testing"
	"time"

	"glowdesk/models"
)

func TestComputePositionedVisits_Empty(t *testing.T) {
	got := ComputePositionedVisits(nil)
	if got == nil {
		t.Fatalf("expected empty slice, got nil")
	}
	if len(got) != 0 {
		t.Errorf("expected no positioned visits, got %d", len(got))
	}
}

func TestComputePositionedVisits_SequentialShareLane(t *testing.T) {
	got := ComputePositionedVisits([]models.Visit{
		mkVisit("a", day0, 9, 10),
		mkVisit("b", day0, 10, 11),
	})
	if len(got) != 2 {
		t.Fatalf("got %d visits", len(got))
	}
	for _, p := range got {
		if p.Lane != 0 {
			t.Errorf("visit %s: lane %d, want 0", p.ID, p.Lane)
		}
		if p.Width != 100 || p.Left != 0 {
			t.Errorf("visit %s: width %.1f left %.1f, want full width at 0", p.ID, p.Width, p.Left)
		}
	}
}

func TestComputePositionedVisits_OverlapSplitsLanes(t *testing.T) {
	// a 09:00-11:00, b 09:30-10:30 overlaps a, c 11:00-12:00 reuses lane 0.
	a := mkVisit("a", day0, 9, 11)
	b := models.Visit{ID: "b", ClientName: "client",
		StartTime: day0.Add(9*time.Hour + 30*time.Minute),
		EndTime:   day0.Add(10*time.Hour + 30*time.Minute),
		Status:    models.VisitStatusConfirmed}
	c := mkVisit("c", day0, 11, 12)

	got := ComputePositionedVisits([]models.Visit{c, b, a})
	laneOf := map[string]models.PositionedVisit{}
	for _, p := range got {
		laneOf[p.ID] = p
	}
	if laneOf["a"].Lane != 0 || laneOf["b"].Lane != 1 || laneOf["c"].Lane != 0 {
		t.Errorf("lanes = a:%d b:%d c:%d, want a:0 b:1 c:0",
			laneOf["a"].Lane, laneOf["b"].Lane, laneOf["c"].Lane)
	}
	for _, p := range got {
		if p.Width != 50 {
			t.Errorf("visit %s: width %.1f, want 50 with two lanes", p.ID, p.Width)
		}
		if want := float64(p.Lane) * 50; p.Left != want {
			t.Errorf("visit %s: left %.1f, want %.1f", p.ID, p.Left, want)
		}
	}
}

func TestComputePositionedVisits_NoOverlapWithinLane(t *testing.T) {
	visits := []models.Visit{
		mkVisit("a", day0, 9, 12),
		mkVisit("b", day0, 9, 10),
		mkVisit("c", day0, 10, 11),
		mkVisit("d", day0, 10, 13),
		mkVisit("e", day0, 12, 14),
		mkVisit("f", day0, 13, 15),
	}
	got := ComputePositionedVisits(visits)

	byLane := map[int][]models.PositionedVisit{}
	for _, p := range got {
		byLane[p.Lane] = append(byLane[p.Lane], p)
	}
	for lane, ps := range byLane {
		for i := 0; i < len(ps); i++ {
			for j := i + 1; j < len(ps); j++ {
				a, b := ps[i], ps[j]
				if a.StartTime.Before(b.EndTime) && a.EndTime.After(b.StartTime) {
					t.Errorf("lane %d: visits %s and %s overlap", lane, a.ID, b.ID)
				}
			}
		}
	}
}

func TestComputePositionedVisits_Geometry(t *testing.T) {
	v := models.Visit{ID: "a", ClientName: "client",
		StartTime: day0.Add(10 * time.Hour),
		EndTime:   day0.Add(11*time.Hour + 30*time.Minute),
		Status:    models.VisitStatusConfirmed}
	got := ComputePositionedVisits([]models.Visit{v})
	if len(got) != 1 {
		t.Fatalf("got %d visits", len(got))
	}
	p := got[0]
	if want := 10.0 * HourHeight; p.Top != want {
		t.Errorf("top = %.1f, want %.1f", p.Top, want)
	}
	if want := 1.5 * HourHeight; p.Height != want {
		t.Errorf("height = %.1f, want %.1f", p.Height, want)
	}
}

func TestComputePositionedVisits_StableOrderOnTies(t *testing.T) {
	a := mkVisit("a", day0, 9, 10)
	b := mkVisit("b", day0, 9, 10)
	got := ComputePositionedVisits([]models.Visit{a, b})
	if got[0].ID != "a" || got[1].ID != "b" {
		t.Errorf("tie order = [%s %s], want input order [a b]", got[0].ID, got[1].ID)
	}
	if got[0].Lane == got[1].Lane {
		t.Errorf("identical intervals must land in different lanes")
	}
}
