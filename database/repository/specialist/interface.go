package specialistRepo

import (
	"context"

	"glowdesk/database"
	"glowdesk/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type SpecialistRepository interface {
	Create(ctx context.Context, specialist *models.Specialist) error
	Update(ctx context.Context, specialist *models.Specialist) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*models.Specialist, error)
	GetAll(ctx context.Context) ([]models.Specialist, error)
	AddOffDay(ctx context.Context, id, date string) error
	RemoveOffDay(ctx context.Context, id, date string) error
}

type mongoSpecialistRepo struct {
	coll *mongo.Collection
}

// NewMongoSpecialistRepo constructs a new MongoDB SpecialistRepository.
func NewMongoSpecialistRepo() SpecialistRepository {
	return &mongoSpecialistRepo{
		coll: database.DB().Collection("specialists"),
	}
}
