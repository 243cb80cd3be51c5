package visitRepo

import (
	"context"

	"glowdesk/database"
	"glowdesk/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// VisitRepository persists bookings. GetAll returns the full visit list so
// callers can hand the engine a consistent snapshot per query.
type VisitRepository interface {
	Create(ctx context.Context, visit *models.Visit) error
	Update(ctx context.Context, visit *models.Visit) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*models.Visit, error)
	GetAll(ctx context.Context) ([]models.Visit, error)
}

type mongoVisitRepo struct {
	coll *mongo.Collection
}

// NewMongoVisitRepo constructs a new MongoDB VisitRepository.
func NewMongoVisitRepo() VisitRepository {
	return &mongoVisitRepo{
		coll: database.DB().Collection("visits"),
	}
}
