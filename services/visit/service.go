package visit

import (
	"context"
	"fmt"

	visitRepo "glowdesk/database/repository/visit"
	"glowdesk/models"
	"glowdesk/services/availability"
	"glowdesk/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// VisitService owns the visit lifecycle. Create and Update are gated on
// the availability engine so a double-booking is rejected before anything
// is persisted.
type VisitService interface {
	Create(ctx context.Context, visit *models.Visit) (*models.Visit, error)
	Update(ctx context.Context, id string, visit *models.Visit) (*models.Visit, error)
	Confirm(ctx context.Context, id string) (*models.Visit, error)
	Cancel(ctx context.Context, id string) (*models.Visit, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*models.Visit, error)
}

// DefaultVisitService is the production implementation.
type DefaultVisitService struct {
	Repo         visitRepo.VisitRepository
	Availability availability.AvailabilityService
}

func validateTimes(visit *models.Visit) error {
	if visit.ClientName == "" {
		return NewValidationError("client name is required")
	}
	if !visit.StartTime.Before(visit.EndTime) {
		return NewValidationError("start time must be before end time")
	}
	if visit.Status != "" && !visit.Status.Valid() {
		return NewValidationError(fmt.Sprintf("unknown status %q", visit.Status))
	}
	return nil
}

// gate runs the availability check for assigned visits. Unassigned visits
// skip it: they carry no specialist to conflict with.
func (s *DefaultVisitService) gate(ctx context.Context, visit *models.Visit, excludeVisitID string) error {
	if visit.SpecialistID == "" {
		return nil
	}
	ok, err := s.Availability.CheckSpecialist(ctx, visit.SpecialistID, visit.StartTime, visit.EndTime, excludeVisitID)
	if err != nil {
		return fmt.Errorf("availability check failed: %w", err)
	}
	if !ok {
		return NewConflictError(visit.SpecialistID, "the requested time is not available for this specialist")
	}
	return nil
}

func (s *DefaultVisitService) Create(ctx context.Context, visit *models.Visit) (*models.Visit, error) {
	logger := utils.GetLogger()

	if err := validateTimes(visit); err != nil {
		return nil, err
	}
	if err := s.gate(ctx, visit, ""); err != nil {
		return nil, err
	}

	if visit.ID == "" {
		visit.ID = uuid.New().String()
	}
	if visit.Status == "" {
		visit.Status = models.VisitStatusPending
	}
	visit.IsConfirmed = visit.Status == models.VisitStatusConfirmed

	if err := s.Repo.Create(ctx, visit); err != nil {
		return nil, fmt.Errorf("failed to create visit: %w", err)
	}
	logger.Info("visit created",
		zap.String("visitID", visit.ID),
		zap.String("specialistID", visit.SpecialistID),
		zap.Time("start", visit.StartTime))
	return visit, nil
}

func (s *DefaultVisitService) Update(ctx context.Context, id string, visit *models.Visit) (*models.Visit, error) {
	logger := utils.GetLogger()

	if err := validateTimes(visit); err != nil {
		return nil, err
	}
	// The visit being edited must not conflict with itself.
	if err := s.gate(ctx, visit, id); err != nil {
		return nil, err
	}

	existing, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("visit %s not found: %w", id, err)
	}

	visit.ID = existing.ID
	if visit.Status == "" {
		visit.Status = existing.Status
	}
	visit.IsConfirmed = visit.Status == models.VisitStatusConfirmed

	if err := s.Repo.Update(ctx, visit); err != nil {
		return nil, fmt.Errorf("failed to update visit %s: %w", id, err)
	}
	logger.Info("visit updated", zap.String("visitID", id))
	return visit, nil
}

func (s *DefaultVisitService) setStatus(ctx context.Context, id string, status models.VisitStatus) (*models.Visit, error) {
	visit, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("visit %s not found: %w", id, err)
	}
	visit.Status = status
	visit.IsConfirmed = status == models.VisitStatusConfirmed
	if err := s.Repo.Update(ctx, visit); err != nil {
		return nil, fmt.Errorf("failed to update visit %s: %w", id, err)
	}
	return visit, nil
}

func (s *DefaultVisitService) Confirm(ctx context.Context, id string) (*models.Visit, error) {
	return s.setStatus(ctx, id, models.VisitStatusConfirmed)
}

func (s *DefaultVisitService) Cancel(ctx context.Context, id string) (*models.Visit, error) {
	return s.setStatus(ctx, id, models.VisitStatusCancelled)
}

func (s *DefaultVisitService) Delete(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete visit %s: %w", id, err)
	}
	utils.GetLogger().Info("visit deleted", zap.String("visitID", id))
	return nil
}

func (s *DefaultVisitService) GetByID(ctx context.Context, id string) (*models.Visit, error) {
	return s.Repo.GetByID(ctx, id)
}
