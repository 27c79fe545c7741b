package repository

import (
	"context"

	"dmytrok/workout-app/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for the repository layer.
var (
	ErrNotFound     = RepositoryError("not found")
	ErrDuplicateKey = RepositoryError("duplicate key")
)

// RepositoryError helps distinguish repository errors.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with user data.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// MuscleGroupRepository provides read access to the muscle group catalog.
// The catalog is shared reference data; only the seeder writes to it.
type MuscleGroupRepository interface {
	GetAll(ctx context.Context) ([]domain.MuscleGroup, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.MuscleGroup, error)
}

// ExerciseRepository provides read access to the exercise catalog, plus the
// single write the video upload flow needs.
type ExerciseRepository interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Exercise, error)
	List(ctx context.Context, muscleGroupID *primitive.ObjectID) ([]domain.Exercise, error)
	SetVideoKey(ctx context.Context, id primitive.ObjectID, videoKey string) error
}

// ProgramRepository defines the interface for workout program data. Every
// read and write that touches a specific program is scoped by userID so that
// ownership can never be skipped.
type ProgramRepository interface {
	Create(ctx context.Context, program *domain.WorkoutProgram) (primitive.ObjectID, error)
	GetByUser(ctx context.Context, userID primitive.ObjectID) ([]domain.WorkoutProgram, error)
	GetByIDAndUser(ctx context.Context, id, userID primitive.ObjectID) (*domain.WorkoutProgram, error)
	// Update persists the mutable fields (name, status) of an owned program.
	Update(ctx context.Context, program *domain.WorkoutProgram) error
	Delete(ctx context.Context, id, userID primitive.ObjectID) error
}

// TrainingDayRepository defines the interface for training day documents.
// Each day is always persisted as a whole document, nested arrays included.
type TrainingDayRepository interface {
	Create(ctx context.Context, day *domain.TrainingDay) (primitive.ObjectID, error)
	GetByProgram(ctx context.Context, programID primitive.ObjectID) ([]domain.TrainingDay, error)
	GetByIDAndProgram(ctx context.Context, id, programID primitive.ObjectID) (*domain.TrainingDay, error)
	Update(ctx context.Context, day *domain.TrainingDay) error
	DeleteByProgram(ctx context.Context, programID primitive.ObjectID) error
}

// PerformanceRepository defines the interface for logged sessions.
type PerformanceRepository interface {
	// Upsert writes the entry keyed by (userId, programId, trainingDayId,
	// date), replacing performance data, week number and day total of an
	// existing entry in place.
	Upsert(ctx context.Context, entry *domain.PerformanceEntry) (*domain.PerformanceEntry, error)
	GetByWeek(ctx context.Context, userID, programID primitive.ObjectID, weekNumber int) ([]domain.PerformanceEntry, error)
	GetByProgram(ctx context.Context, userID, programID primitive.ObjectID) ([]domain.PerformanceEntry, error)
	DeleteByProgram(ctx context.Context, programID primitive.ObjectID) error
}
