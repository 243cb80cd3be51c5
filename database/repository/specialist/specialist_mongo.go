package specialistRepo

import (
	"context"
	"fmt"
	"time"

	"glowdesk/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoSpecialistRepo) Create(ctx context.Context, specialist *models.Specialist) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, specialist); err != nil {
		return fmt.Errorf("failed to insert specialist: %w", err)
	}
	return nil
}

func (r *mongoSpecialistRepo) Update(ctx context.Context, specialist *models.Specialist) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": specialist.ID}, specialist)
	if err != nil {
		return fmt.Errorf("failed to update specialist %s: %w", specialist.ID, err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoSpecialistRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete specialist %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoSpecialistRepo) GetByID(ctx context.Context, id string) (*models.Specialist, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var specialist models.Specialist
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&specialist); err != nil {
		return nil, err
	}
	return &specialist, nil
}

func (r *mongoSpecialistRepo) GetAll(ctx context.Context) ([]models.Specialist, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list specialists: %w", err)
	}
	defer cursor.Close(ctx)

	var specialists []models.Specialist
	if err := cursor.All(ctx, &specialists); err != nil {
		return nil, err
	}
	return specialists, nil
}

func (r *mongoSpecialistRepo) AddOffDay(ctx context.Context, id, date string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$addToSet": bson.M{"offDays": date}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to add off-day for specialist %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoSpecialistRepo) RemoveOffDay(ctx context.Context, id, date string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$pull": bson.M{"offDays": date}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to remove off-day for specialist %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
