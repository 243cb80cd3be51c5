package models

import (
	"fmt"
	"time"
)

// TimeOfDay is a wall-clock time expressed as minutes from midnight.
// All comparisons are numeric; the zero-padded "HH:mm" wire format is
// produced by String and consumed by ParseTimeOfDay.
type TimeOfDay int

// ParseTimeOfDay parses a 24-hour "HH:mm" string.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("invalid time of day %q: %w", s, err)
	}
	return TimeOfDay(t.Hour()*60 + t.Minute()), nil
}

// TimeOfDayOf projects an instant onto its wall-clock time.
func TimeOfDayOf(t time.Time) TimeOfDay {
	return TimeOfDay(t.Hour()*60 + t.Minute())
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

// TimeRange is a single open interval within a day. Open is inclusive,
// close is exclusive. Overnight ranges are not supported.
type TimeRange struct {
	OpenTime  string `bson:"openTime" json:"openTime"`
	CloseTime string `bson:"closeTime" json:"closeTime"`
}

// Bounds parses both endpoints. ok is false when either is malformed or
// the range is empty/inverted; such ranges are simply skipped by callers.
func (r TimeRange) Bounds() (open, close TimeOfDay, ok bool) {
	open, err := ParseTimeOfDay(r.OpenTime)
	if err != nil {
		return 0, 0, false
	}
	close, err = ParseTimeOfDay(r.CloseTime)
	if err != nil {
		return 0, 0, false
	}
	if open >= close {
		return 0, 0, false
	}
	return open, close, true
}

// DaySchedule is the open/closed state and open hours for one day.
// When IsOpen is false, Hours is ignored.
type DaySchedule struct {
	IsOpen bool        `bson:"isOpen" json:"isOpen"`
	Hours  []TimeRange `bson:"hours" json:"hours"`
}

// WeeklySchedule maps lower-case English weekday names ("monday".."sunday")
// to that day's schedule. A missing key reads as closed.
type WeeklySchedule map[string]DaySchedule

// SpecialClosure forces the whole salon closed on one calendar date,
// regardless of the weekly template.
type SpecialClosure struct {
	Date   string `bson:"date" json:"date"` // "2006-01-02"
	Reason string `bson:"reason" json:"reason"`
}

// SalonSchedule is the persisted schedule document: the recurring weekly
// template plus date-specific closures.
type SalonSchedule struct {
	Week     WeeklySchedule   `bson:"week" json:"week"`
	Closures []SpecialClosure `bson:"closures" json:"closures"`
}

// DefaultWeeklySchedule seeds a fresh installation: Mon-Fri 09:00-19:00,
// Sat 10:00-14:00, Sun closed.
func DefaultWeeklySchedule() WeeklySchedule {
	weekday := DaySchedule{IsOpen: true, Hours: []TimeRange{{OpenTime: "09:00", CloseTime: "19:00"}}}
	return WeeklySchedule{
		"monday":    weekday,
		"tuesday":   weekday,
		"wednesday": weekday,
		"thursday":  weekday,
		"friday":    weekday,
		"saturday":  {IsOpen: true, Hours: []TimeRange{{OpenTime: "10:00", CloseTime: "14:00"}}},
		"sunday":    {IsOpen: false, Hours: []TimeRange{}},
	}
}
