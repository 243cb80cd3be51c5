package timeline

import (
	"context"
	"fmt"
	"time"

	visitRepo "glowdesk/database/repository/visit"
	"glowdesk/models"
)

// TimelineService assembles day and range views over the visit book.
type TimelineService interface {
	VisitsForDate(ctx context.Context, date time.Time) ([]models.Visit, error)
	VisitsForRange(ctx context.Context, start, end time.Time) ([]models.Visit, error)
	DayTimeline(ctx context.Context, date time.Time, specialistID string) ([]models.PositionedVisit, error)
}

// DefaultTimelineService rebuilds the date index from the stored visits on
// every call; the index is derived state and is never persisted.
type DefaultTimelineService struct {
	VisitRepo visitRepo.VisitRepository
}

func (s *DefaultTimelineService) buildIndex(ctx context.Context) (DateIndex, error) {
	visits, err := s.VisitRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load visits: %w", err)
	}
	return BuildDateIndex(visits), nil
}

func (s *DefaultTimelineService) VisitsForDate(ctx context.Context, date time.Time) ([]models.Visit, error) {
	idx, err := s.buildIndex(ctx)
	if err != nil {
		return nil, err
	}
	return idx.VisitsForDate(date), nil
}

func (s *DefaultTimelineService) VisitsForRange(ctx context.Context, start, end time.Time) ([]models.Visit, error) {
	idx, err := s.buildIndex(ctx)
	if err != nil {
		return nil, err
	}
	return idx.VisitsForRange(start, end), nil
}

// DayTimeline returns one day's visits packed into display lanes. A
// non-empty specialistID narrows the column to that specialist first, the
// way the calendar's specialist filter does.
func (s *DefaultTimelineService) DayTimeline(ctx context.Context, date time.Time, specialistID string) ([]models.PositionedVisit, error) {
	idx, err := s.buildIndex(ctx)
	if err != nil {
		return nil, err
	}
	dayVisits := idx.VisitsForDate(date)
	if specialistID != "" {
		filtered := make([]models.Visit, 0, len(dayVisits))
		for _, v := range dayVisits {
			if v.SpecialistID == specialistID {
				filtered = append(filtered, v)
			}
		}
		dayVisits = filtered
	}
	return ComputePositionedVisits(dayVisits), nil
}
