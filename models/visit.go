package models

import "time"

// VisitStatus is a visit's lifecycle state.
type VisitStatus string

const (
	VisitStatusPending   VisitStatus = "pending"
	VisitStatusConfirmed VisitStatus = "confirmed"
	VisitStatusCompleted VisitStatus = "completed"
	VisitStatusCancelled VisitStatus = "cancelled"
)

// Valid reports whether s is one of the known lifecycle states.
func (s VisitStatus) Valid() bool {
	switch s {
	case VisitStatusPending, VisitStatusConfirmed, VisitStatusCompleted, VisitStatusCancelled:
		return true
	}
	return false
}

// Visit is a single booking. A visit with no SpecialistID is unassigned: it
// still occupies a calendar cell in team views but is excluded from
// per-specialist conflict checks.
type Visit struct {
	ID           string      `bson:"id" json:"id"`
	SpecialistID string      `bson:"specialistId,omitempty" json:"specialistId,omitempty"`
	ClientID     string      `bson:"clientId,omitempty" json:"clientId,omitempty"`
	ClientName   string      `bson:"clientName" json:"clientName"`
	ClientPhone  string      `bson:"clientPhone,omitempty" json:"clientPhone,omitempty"`
	ServiceIDs   []string    `bson:"serviceIds,omitempty" json:"serviceIds,omitempty"`
	CustomTags   []string    `bson:"customTags,omitempty" json:"customTags,omitempty"`
	StartTime    time.Time   `bson:"startTime" json:"startTime"`
	EndTime      time.Time   `bson:"endTime" json:"endTime"`
	Status       VisitStatus `bson:"status" json:"status"`
	IsConfirmed  bool        `bson:"isConfirmed" json:"isConfirmed"`
}
