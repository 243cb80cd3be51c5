package models

// AvailableSlot is a candidate opening discovered by slot search. StartTime
// and EndTime are "HH:mm" wall-clock strings relative to Date.
type AvailableSlot struct {
	SpecialistID string `json:"specialistId"`
	Date         string `json:"date"` // "2006-01-02"
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
}

// PositionedVisit is a visit augmented with geometry for one day's timeline
// column. Top and Height are pixels; Left and Width are percentages of the
// column. Valid only for the rendering pass that produced it.
type PositionedVisit struct {
	Visit

	Lane   int     `json:"lane"`
	Top    float64 `json:"top"`
	Height float64 `json:"height"`
	Left   float64 `json:"left"`
	Width  float64 `json:"width"`
}
