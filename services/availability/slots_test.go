package availability

import (
	"fmt"
	"testing"
	"time"

	"glowdesk/models"
)

func TestFindNextAvailableSlot_EarliestWhenFree(t *testing.T) {
	e := defaultEngine()
	e.Specialists = []models.Specialist{anna()}
	e.Visits = []models.Visit{visit("v1", "sp-anna", tuesday.Add(10*time.Hour), tuesday.Add(11*time.Hour))}

	got := e.FindNextAvailableSlot("sp-anna", tuesday.Add(9*time.Hour), 60)
	if got == nil {
		t.Fatalf("expected a slot, got nil")
	}
	if want := tuesday.Add(9 * time.Hour); !got.Equal(want) {
		t.Errorf("got %v, want %v", *got, want)
	}
}

func TestFindNextAvailableSlot_SkipsPastConflict(t *testing.T) {
	e := defaultEngine()
	e.Specialists = []models.Specialist{anna()}
	e.Visits = []models.Visit{visit("v1", "sp-anna", tuesday.Add(10*time.Hour), tuesday.Add(11*time.Hour))}

	// 10:00 through 10:45 all run into the booked hour; 11:00 is the first
	// start whose full 60 minutes are clear.
	got := e.FindNextAvailableSlot("sp-anna", tuesday.Add(10*time.Hour), 60)
	if got == nil {
		t.Fatalf("expected a slot, got nil")
	}
	if want := tuesday.Add(11 * time.Hour); !got.Equal(want) {
		t.Errorf("got %v, want %v", *got, want)
	}
}

func TestFindNextAvailableSlot_RoundsUpToGrid(t *testing.T) {
	e := defaultEngine()
	e.Specialists = []models.Specialist{anna()}

	got := e.FindNextAvailableSlot("sp-anna", tuesday.Add(9*time.Hour+7*time.Minute), 30)
	if got == nil {
		t.Fatalf("expected a slot, got nil")
	}
	if want := tuesday.Add(9*time.Hour + 15*time.Minute); !got.Equal(want) {
		t.Errorf("got %v, want %v", *got, want)
	}
}

func TestFindNextAvailableSlot_RollsOverClosedDay(t *testing.T) {
	e := defaultEngine()
	e.Specialists = []models.Specialist{anna()}

	// Saturday closes at 14:00, so a 60-minute visit after 13:30 cannot fit;
	// Sunday is closed and must be jumped whole; Monday opens at 09:00.
	got := e.FindNextAvailableSlot("sp-anna", saturday.Add(13*time.Hour+30*time.Minute), 60)
	if got == nil {
		t.Fatalf("expected a slot, got nil")
	}
	if want := saturday.AddDate(0, 0, 2).Add(9 * time.Hour); !got.Equal(want) {
		t.Errorf("got %v, want %v", *got, want)
	}
}

func TestFindNextAvailableSlot_HorizonExhausted(t *testing.T) {
	closed := models.DaySchedule{IsOpen: false, Hours: []models.TimeRange{}}
	e := Engine{Schedule: models.WeeklySchedule{
		"monday": closed, "tuesday": closed, "wednesday": closed, "thursday": closed,
		"friday": closed, "saturday": closed, "sunday": closed,
	}}
	e.Specialists = []models.Specialist{anna()}

	if got := e.FindNextAvailableSlot("sp-anna", monday.Add(9*time.Hour), 30); got != nil {
		t.Errorf("expected nil when nothing opens within the horizon, got %v", got)
	}
}

func TestFindAvailableSlots_CapAndOrder(t *testing.T) {
	e := defaultEngine()
	e.Specialists = []models.Specialist{anna()}

	slots := e.FindAvailableSlots(SlotQuery{
		SpecialistID:    "sp-anna",
		After:           monday,
		DurationMinutes: 60,
	})
	if len(slots) != MaxSlotResults {
		t.Fatalf("expected %d slots, got %d", MaxSlotResults, len(slots))
	}
	// A fully free Monday fills the cap before any later day is reached.
	for i, s := range slots {
		if s.Date != "2026-03-09" {
			t.Errorf("slot %d: date %q, want 2026-03-09", i, s.Date)
		}
		want := models.TimeOfDay(9*60 + i*SlotStepMinutes).String()
		if s.StartTime != want {
			t.Errorf("slot %d: start %q, want %q", i, s.StartTime, want)
		}
	}
}

func TestFindAvailableSlots_SameDayLowerBound(t *testing.T) {
	e := defaultEngine()
	e.Specialists = []models.Specialist{anna()}

	slots := e.FindAvailableSlots(SlotQuery{
		SpecialistID:    "sp-anna",
		After:           tuesday.Add(17*time.Hour + 20*time.Minute),
		DurationMinutes: 60,
	})
	if len(slots) == 0 {
		t.Fatalf("expected slots")
	}
	if slots[0].Date != "2026-03-10" || slots[0].StartTime != "17:30" {
		t.Errorf("first slot = %s %s, want 2026-03-10 17:30", slots[0].Date, slots[0].StartTime)
	}
	for i := 1; i < len(slots); i++ {
		if slots[i].Date < slots[i-1].Date {
			t.Errorf("slot dates out of order: %q after %q", slots[i].Date, slots[i-1].Date)
		}
	}
}

func TestFindAvailableSlots_AnySearchesEveryone(t *testing.T) {
	e := defaultEngine()
	e.Specialists = []models.Specialist{anna(), {ID: "sp-mia", Name: "Mia"}}

	slots := e.FindAvailableSlots(SlotQuery{
		SpecialistID:    AnySpecialist,
		After:           monday,
		DurationMinutes: 60,
	})
	seen := map[string]bool{}
	for _, s := range slots {
		seen[s.SpecialistID] = true
	}
	if !seen["sp-anna"] || !seen["sp-mia"] {
		t.Errorf("expected slots for both specialists, saw %v", seen)
	}
}

func TestFindAvailableSlots_UnknownSpecialistEmpty(t *testing.T) {
	e := defaultEngine()
	e.Specialists = []models.Specialist{anna()}

	slots := e.FindAvailableSlots(SlotQuery{
		SpecialistID:    "sp-ghost",
		After:           monday,
		DurationMinutes: 60,
	})
	if len(slots) != 0 {
		t.Errorf("expected no slots for an unknown specialist, got %d", len(slots))
	}
}

func TestFindAvailableSlots_EveryResultIsBookable(t *testing.T) {
	sp := anna()
	sp.OffDays = []string{"2026-03-11"}
	e := defaultEngine()
	e.Specialists = []models.Specialist{sp, {ID: "sp-mia", Name: "Mia"}}
	e.Closures = []models.SpecialClosure{{Date: "2026-03-09", Reason: "maintenance"}}
	e.Visits = []models.Visit{
		visit("v1", "sp-anna", tuesday.Add(9*time.Hour), tuesday.Add(12*time.Hour)),
		visit("v2", "sp-mia", tuesday.Add(10*time.Hour), tuesday.Add(10*time.Hour+30*time.Minute)),
	}

	slots := e.FindAvailableSlots(SlotQuery{
		SpecialistID:    AnySpecialist,
		After:           monday,
		DurationMinutes: 45,
	})
	if len(slots) == 0 {
		t.Fatalf("expected slots")
	}
	for i, s := range slots {
		start, err := time.Parse("2006-01-02 15:04", fmt.Sprintf("%s %s", s.Date, s.StartTime))
		if err != nil {
			t.Fatalf("slot %d: bad start time: %v", i, err)
		}
		end, err := time.Parse("2006-01-02 15:04", fmt.Sprintf("%s %s", s.Date, s.EndTime))
		if err != nil {
			t.Fatalf("slot %d: bad end time: %v", i, err)
		}
		if end.Sub(start) != 45*time.Minute {
			t.Errorf("slot %d: span %v, want 45m", i, end.Sub(start))
		}
		if !e.IsSpecialistAvailable(s.SpecialistID, start, end, "") {
			t.Errorf("slot %d (%s %s %s) is not actually bookable", i, s.SpecialistID, s.Date, s.StartTime)
		}
	}
}
