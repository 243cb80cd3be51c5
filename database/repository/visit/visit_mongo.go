package visitRepo

import (
	"context"
	"fmt"
	"time"

	"glowdesk/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoVisitRepo) Create(ctx context.Context, visit *models.Visit) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, visit); err != nil {
		return fmt.Errorf("failed to insert visit: %w", err)
	}
	return nil
}

func (r *mongoVisitRepo) Update(ctx context.Context, visit *models.Visit) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": visit.ID}
	res, err := r.coll.ReplaceOne(ctx, filter, visit)
	if err != nil {
		return fmt.Errorf("failed to update visit %s: %w", visit.ID, err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoVisitRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete visit %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoVisitRepo) GetByID(ctx context.Context, id string) (*models.Visit, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var visit models.Visit
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&visit); err != nil {
		return nil, err
	}
	return &visit, nil
}

func (r *mongoVisitRepo) GetAll(ctx context.Context) ([]models.Visit, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "startTime", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list visits: %w", err)
	}
	defer cursor.Close(ctx)

	var visits []models.Visit
	if err := cursor.All(ctx, &visits); err != nil {
		return nil, err
	}
	return visits, nil
}
