package scheduleRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"glowdesk/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// The schedule lives in a single well-known document.
const scheduleDocID = "salon"

func (r *mongoScheduleRepo) Get(ctx context.Context) (*models.SalonSchedule, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var doc models.SalonSchedule
	err := r.coll.FindOne(ctx, bson.M{"_id": scheduleDocID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		// Fresh installation: seed and return the default week.
		doc = models.SalonSchedule{
			Week:     models.DefaultWeeklySchedule(),
			Closures: []models.SpecialClosure{},
		}
		update := bson.M{"$setOnInsert": bson.M{"week": doc.Week, "closures": doc.Closures}}
		opts := options.Update().SetUpsert(true)
		if _, err := r.coll.UpdateOne(ctx, bson.M{"_id": scheduleDocID}, update, opts); err != nil {
			return nil, fmt.Errorf("failed to seed default schedule: %w", err)
		}
		return &doc, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load schedule: %w", err)
	}
	return &doc, nil
}

func (r *mongoScheduleRepo) ReplaceWeek(ctx context.Context, week models.WeeklySchedule) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"week": week}}
	opts := options.Update().SetUpsert(true)
	if _, err := r.coll.UpdateOne(ctx, bson.M{"_id": scheduleDocID}, update, opts); err != nil {
		return fmt.Errorf("failed to replace weekly schedule: %w", err)
	}
	return nil
}

func (r *mongoScheduleRepo) AddClosure(ctx context.Context, closure models.SpecialClosure) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// One closure per date: drop any existing entry for the date first.
	pull := bson.M{"$pull": bson.M{"closures": bson.M{"date": closure.Date}}}
	if _, err := r.coll.UpdateOne(ctx, bson.M{"_id": scheduleDocID}, pull); err != nil {
		return fmt.Errorf("failed to clear closure for %s: %w", closure.Date, err)
	}

	push := bson.M{"$push": bson.M{"closures": closure}}
	opts := options.Update().SetUpsert(true)
	if _, err := r.coll.UpdateOne(ctx, bson.M{"_id": scheduleDocID}, push, opts); err != nil {
		return fmt.Errorf("failed to add closure for %s: %w", closure.Date, err)
	}
	return nil
}

func (r *mongoScheduleRepo) RemoveClosure(ctx context.Context, date string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pull := bson.M{"$pull": bson.M{"closures": bson.M{"date": date}}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": scheduleDocID}, pull)
	if err != nil {
		return fmt.Errorf("failed to remove closure for %s: %w", date, err)
	}
	if res.ModifiedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
