package availability

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	scheduleRepo "glowdesk/database/repository/schedule"
	specialistRepo "glowdesk/database/repository/specialist"
	visitRepo "glowdesk/database/repository/visit"
	"glowdesk/models"
	"glowdesk/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// AvailabilityService answers availability questions against the stored
// salon records. Every call assembles a fresh engine snapshot so a query
// never observes a partially updated visit list.
type AvailabilityService interface {
	IsOpenAt(ctx context.Context, at time.Time) (bool, error)
	ResolveDaySchedule(ctx context.Context, date time.Time) (models.DaySchedule, error)
	CheckSpecialist(ctx context.Context, specialistID string, start, end time.Time, excludeVisitID string) (bool, error)
	NextSlot(ctx context.Context, specialistID string, after time.Time, durationMinutes int) (*time.Time, error)
	FindSlots(ctx context.Context, q SlotQuery) ([]models.AvailableSlot, error)
}

// DefaultAvailabilityService is the production implementation.
type DefaultAvailabilityService struct {
	ScheduleRepo   scheduleRepo.ScheduleRepository
	SpecialistRepo specialistRepo.SpecialistRepository
	VisitRepo      visitRepo.VisitRepository

	// Cache, when set, holds slot search responses for CacheTTL. Slot
	// browsing hammers the same query while a receptionist scrolls; a
	// short TTL keeps answers fresh enough without a rebuild per keypress.
	Cache    *redis.Client
	CacheTTL time.Duration
}

// Snapshot loads every record the engine needs in one pass.
func (s *DefaultAvailabilityService) Snapshot(ctx context.Context) (Engine, error) {
	schedule, err := s.ScheduleRepo.Get(ctx)
	if err != nil {
		return Engine{}, fmt.Errorf("failed to load salon schedule: %w", err)
	}
	specialists, err := s.SpecialistRepo.GetAll(ctx)
	if err != nil {
		return Engine{}, fmt.Errorf("failed to load specialists: %w", err)
	}
	visits, err := s.VisitRepo.GetAll(ctx)
	if err != nil {
		return Engine{}, fmt.Errorf("failed to load visits: %w", err)
	}
	return Engine{
		Schedule:    schedule.Week,
		Closures:    schedule.Closures,
		Specialists: specialists,
		Visits:      visits,
	}, nil
}

func (s *DefaultAvailabilityService) IsOpenAt(ctx context.Context, at time.Time) (bool, error) {
	eng, err := s.Snapshot(ctx)
	if err != nil {
		return false, err
	}
	return eng.IsOpenAt(at), nil
}

func (s *DefaultAvailabilityService) ResolveDaySchedule(ctx context.Context, date time.Time) (models.DaySchedule, error) {
	eng, err := s.Snapshot(ctx)
	if err != nil {
		return models.DaySchedule{}, err
	}
	return eng.ResolveDaySchedule(date), nil
}

func (s *DefaultAvailabilityService) CheckSpecialist(ctx context.Context, specialistID string, start, end time.Time, excludeVisitID string) (bool, error) {
	eng, err := s.Snapshot(ctx)
	if err != nil {
		return false, err
	}
	return eng.IsSpecialistAvailable(specialistID, start, end, excludeVisitID), nil
}

func (s *DefaultAvailabilityService) NextSlot(ctx context.Context, specialistID string, after time.Time, durationMinutes int) (*time.Time, error) {
	eng, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return eng.FindNextAvailableSlot(specialistID, after, durationMinutes), nil
}

func (s *DefaultAvailabilityService) FindSlots(ctx context.Context, q SlotQuery) ([]models.AvailableSlot, error) {
	logger := utils.GetLogger()
	key := slotCacheKey(q)

	if s.Cache != nil {
		if data, err := s.Cache.Get(ctx, key).Result(); err == nil {
			var cached []models.AvailableSlot
			if err := json.Unmarshal([]byte(data), &cached); err == nil {
				return cached, nil
			}
			logger.Warn("discarding unreadable cached slot response", zap.String("key", key))
		}
	}

	eng, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	slots := eng.FindAvailableSlots(q)

	if s.Cache != nil {
		if data, err := json.Marshal(slots); err == nil {
			if err := s.Cache.Set(ctx, key, data, s.CacheTTL).Err(); err != nil {
				logger.Warn("failed to cache slot response", zap.String("key", key), zap.Error(err))
			}
		}
	}
	return slots, nil
}

func slotCacheKey(q SlotQuery) string {
	return fmt.Sprintf("slots:%s:%s:%d:%d:%s",
		q.SpecialistID, q.After.Format(time.RFC3339), q.DurationMinutes, q.DaysToSearch, q.ExcludeVisitID)
}
