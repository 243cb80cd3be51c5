package scheduleRepo

import (
	"context"

	"glowdesk/database"
	"glowdesk/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ScheduleRepository persists the salon's single schedule document: the
// weekly template plus date-specific closures.
type ScheduleRepository interface {
	Get(ctx context.Context) (*models.SalonSchedule, error)
	ReplaceWeek(ctx context.Context, week models.WeeklySchedule) error
	AddClosure(ctx context.Context, closure models.SpecialClosure) error
	RemoveClosure(ctx context.Context, date string) error
}

type mongoScheduleRepo struct {
	coll *mongo.Collection
}

// NewMongoScheduleRepo constructs a new MongoDB ScheduleRepository.
func NewMongoScheduleRepo() ScheduleRepository {
	return &mongoScheduleRepo{
		coll: database.DB().Collection("schedule"),
	}
}
