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

const trainingDayCollectionName = "training_days"

// mongoTrainingDayRepository implements repository.TrainingDayRepository
type mongoTrainingDayRepository struct {
	collection *mongo.Collection
}

// NewMongoTrainingDayRepository creates a new TrainingDay repository.
func NewMongoTrainingDayRepository(db *mongo.Database) repository.TrainingDayRepository {
	return &mongoTrainingDayRepository{
		collection: db.Collection(trainingDayCollectionName),
	}
}

// Create inserts a new training day.
func (r *mongoTrainingDayRepository) Create(ctx context.Context, day *domain.TrainingDay) (primitive.ObjectID, error) {
	if day.ProgramID == primitive.NilObjectID || day.DayNumber < 1 {
		return primitive.NilObjectID, errors.New("training day requires programId and a positive dayNumber")
	}
	day.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	day.CreatedAt = now
	day.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, day)
	if err != nil {
		return primitive.NilObjectID, err
	}
	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted training day ID")
	}
	return insertedID, nil
}

// GetByProgram retrieves all training days of a program in dayNumber order.
func (r *mongoTrainingDayRepository) GetByProgram(ctx context.Context, programID primitive.ObjectID) ([]domain.TrainingDay, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "dayNumber", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{"programId": programID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var days []domain.TrainingDay
	if err = cursor.All(ctx, &days); err != nil {
		return nil, err
	}
	return days, nil
}

// GetByIDAndProgram retrieves a single training day scoped to its program.
func (r *mongoTrainingDayRepository) GetByIDAndProgram(ctx context.Context, id, programID primitive.ObjectID) (*domain.TrainingDay, error) {
	var day domain.TrainingDay
	err := r.collection.FindOne(ctx, bson.M{"_id": id, "programId": programID}).Decode(&day)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &day, nil
}

// Update replaces the muscle group structure of a day as one document write,
// so edits to the nested arrays are never observable half-applied.
func (r *mongoTrainingDayRepository) Update(ctx context.Context, day *domain.TrainingDay) error {
	if day.ID == primitive.NilObjectID {
		return errors.New("training day ID is required for update")
	}
	filter := bson.M{"_id": day.ID, "programId": day.ProgramID}
	update := bson.M{
		"$set": bson.M{
			"muscleGroups": day.MuscleGroups,
			"updatedAt":    time.Now().UTC(),
		},
	}
	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// DeleteByProgram removes all training days of a program (cascade path).
func (r *mongoTrainingDayRepository) DeleteByProgram(ctx context.Context, programID primitive.ObjectID) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"programId": programID})
	return err
}

// EnsureTrainingDayIndexes creates necessary indexes. Call during startup.
func EnsureTrainingDayIndexes(ctx context.Context, collection *mongo.Collection) error {
	_, err := collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "programId", Value: 1}},
			Options: options.Index(),
		},
		{
			// One slot per day number within a program.
			Keys:    bson.D{{Key: "programId", Value: 1}, {Key: "dayNumber", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
	return err
}
