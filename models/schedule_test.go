package models

import (
	"testing"
	"time"
)

func TestParseTimeOfDay(t *testing.T) {
	cases := []struct {
		in      string
		want    TimeOfDay
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:00", 540, false},
		{"19:00", 1140, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"9am", 0, true},
		{"", 0, true},
	}
	for _, tc := range cases {
		got, err := ParseTimeOfDay(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseTimeOfDay(%q): expected error, got %d", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseTimeOfDay(%q): unexpected error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseTimeOfDay(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestTimeOfDayString_ZeroPadded(t *testing.T) {
	cases := []struct {
		in   TimeOfDay
		want string
	}{
		{0, "00:00"},
		{545, "09:05"},
		{1140, "19:00"},
		{1439, "23:59"},
	}
	for _, tc := range cases {
		if got := tc.in.String(); got != tc.want {
			t.Errorf("TimeOfDay(%d).String() = %q, want %q", int(tc.in), got, tc.want)
		}
	}
}

func TestTimeOfDayOf(t *testing.T) {
	at := time.Date(2026, 3, 10, 14, 30, 59, 0, time.UTC)
	if got := TimeOfDayOf(at); got != 14*60+30 {
		t.Errorf("TimeOfDayOf = %d, want %d", got, 14*60+30)
	}
}

func TestTimeRangeBounds(t *testing.T) {
	cases := []struct {
		name  string
		r     TimeRange
		ok    bool
		open  TimeOfDay
		close TimeOfDay
	}{
		{"valid", TimeRange{OpenTime: "09:00", CloseTime: "19:00"}, true, 540, 1140},
		{"inverted", TimeRange{OpenTime: "19:00", CloseTime: "09:00"}, false, 0, 0},
		{"empty", TimeRange{OpenTime: "09:00", CloseTime: "09:00"}, false, 0, 0},
		{"malformed open", TimeRange{OpenTime: "soon", CloseTime: "19:00"}, false, 0, 0},
		{"malformed close", TimeRange{OpenTime: "09:00", CloseTime: "late"}, false, 0, 0},
	}
	for _, tc := range cases {
		open, close, ok := tc.r.Bounds()
		if ok != tc.ok {
			t.Errorf("%s: Bounds() ok = %v, want %v", tc.name, ok, tc.ok)
			continue
		}
		if ok && (open != tc.open || close != tc.close) {
			t.Errorf("%s: Bounds() = (%d, %d), want (%d, %d)", tc.name, open, close, tc.open, tc.close)
		}
	}
}

func TestDefaultWeeklySchedule(t *testing.T) {
	week := DefaultWeeklySchedule()
	if len(week) != 7 {
		t.Fatalf("expected 7 weekday entries, got %d", len(week))
	}
	if !week["monday"].IsOpen || week["monday"].Hours[0].OpenTime != "09:00" {
		t.Errorf("unexpected monday schedule: %+v", week["monday"])
	}
	if !week["saturday"].IsOpen || week["saturday"].Hours[0].CloseTime != "14:00" {
		t.Errorf("unexpected saturday schedule: %+v", week["saturday"])
	}
	if week["sunday"].IsOpen {
		t.Errorf("expected sunday closed")
	}
}
