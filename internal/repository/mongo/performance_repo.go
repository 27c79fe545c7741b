package mongo

import (
	"context"
	"errors"
	"time"

	"dmytrok/workout-app/internal/domain"
	"dmytrok/workout-app/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const performanceCollectionName = "performance_entries"

// mongoPerformanceRepository implements repository.PerformanceRepository
type mongoPerformanceRepository struct {
	collection *mongo.Collection
}

// NewMongoPerformanceRepository creates a new PerformanceEntry repository.
func NewMongoPerformanceRepository(db *mongo.Database) repository.PerformanceRepository {
	return &mongoPerformanceRepository{
		collection: db.Collection(performanceCollectionName),
	}
}

// Upsert writes a performance entry keyed by (userId, programId,
// trainingDayId, date). An existing entry gets its performance data, week
// number and day total replaced in place; otherwise a new document is
// inserted. The unique index from EnsurePerformanceIndexes is the
// authoritative guard against racing double-logs.
func (r *mongoPerformanceRepository) Upsert(ctx context.Context, entry *domain.PerformanceEntry) (*domain.PerformanceEntry, error) {
	if entry.UserID == primitive.NilObjectID || entry.ProgramID == primitive.NilObjectID || entry.TrainingDayID == primitive.NilObjectID {
		return nil, errors.New("performance entry requires userId, programId and trainingDayId")
	}
	now := time.Now().UTC()
	filter := bson.M{
		"userId":        entry.UserID,
		"programId":     entry.ProgramID,
		"trainingDayId": entry.TrainingDayID,
		"date":          entry.Date,
	}
	update := bson.M{
		"$set": bson.M{
			"performanceData": entry.PerformanceData,
			"weekNumber":      entry.WeekNumber,
			"dayTotalVolume":  entry.DayTotalVolume,
			"updatedAt":       now,
		},
		"$setOnInsert": bson.M{
			"userId":        entry.UserID,
			"programId":     entry.ProgramID,
			"trainingDayId": entry.TrainingDayID,
			"date":          entry.Date,
			"createdAt":     now,
		},
	}
	findOptions := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var saved domain.PerformanceEntry
	err := r.collection.FindOneAndUpdate(ctx, filter, update, findOptions).Decode(&saved)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, repository.ErrDuplicateKey
		}
		return nil, err
	}
	return &saved, nil
}

// GetByWeek retrieves all entries a user logged for one week of a program.
func (r *mongoPerformanceRepository) GetByWeek(ctx context.Context, userID, programID primitive.ObjectID, weekNumber int) ([]domain.PerformanceEntry, error) {
	filter := bson.M{
		"userId":     userID,
		"programId":  programID,
		"weekNumber": weekNumber,
	}
	findOptions := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []domain.PerformanceEntry
	if err = cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// GetByProgram retrieves all entries a user logged for a program, oldest first.
func (r *mongoPerformanceRepository) GetByProgram(ctx context.Context, userID, programID primitive.ObjectID) ([]domain.PerformanceEntry, error) {
	filter := bson.M{"userId": userID, "programId": programID}
	findOptions := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []domain.PerformanceEntry
	if err = cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// DeleteByProgram removes all entries of a program (cascade path).
func (r *mongoPerformanceRepository) DeleteByProgram(ctx context.Context, programID primitive.ObjectID) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"programId": programID})
	return err
}

// EnsurePerformanceIndexes creates necessary indexes, most importantly the
// unique compound key that makes one entry per user+program+day+date a
// storage-level guarantee. Call during startup.
func EnsurePerformanceIndexes(ctx context.Context, collection *mongo.Collection) error {
	_, err := collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "userId", Value: 1},
				{Key: "programId", Value: 1},
				{Key: "trainingDayId", Value: 1},
				{Key: "date", Value: 1},
			},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "programId", Value: 1}, {Key: "weekNumber", Value: 1}},
			Options: options.Index(),
		},
	})
	return err
}
