package models

// Specialist is a bookable staff member. Personal exceptions (off-days and
// weekly overrides) are layered over salon hours by the availability engine.
type Specialist struct {
	ID        string `bson:"id" json:"id"`
	Name      string `bson:"name" json:"name"`
	Role      string `bson:"role" json:"role"`
	Color     string `bson:"color,omitempty" json:"color,omitempty"`
	AvatarURL string `bson:"avatarUrl,omitempty" json:"avatarUrl,omitempty"`

	// OffDays are whole-day exceptions for this specialist only, as
	// "2006-01-02" dates.
	OffDays []string `bson:"offDays,omitempty" json:"offDays,omitempty"`

	// AvailabilityOverrides, where a weekday key is present, fully replaces
	// the salon's day schedule for this specialist on that weekday.
	AvailabilityOverrides WeeklySchedule `bson:"availabilityOverrides,omitempty" json:"availabilityOverrides,omitempty"`
}

// HasOffDay reports whether dateKey ("2006-01-02") is a personal off-day.
func (s Specialist) HasOffDay(dateKey string) bool {
	for _, d := range s.OffDays {
		if d == dateKey {
			return true
		}
	}
	return false
}
