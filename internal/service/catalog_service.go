package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dmytrok/workout-app/internal/domain"
	"dmytrok/workout-app/internal/repository"
	"dmytrok/workout-app/internal/storage"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrExerciseNotFound = errors.New("exercise not found")
	ErrNoVideoAvailable = errors.New("exercise has no demo video")
)

// Expiry for presigned video URLs handed to clients.
const videoURLExpiry = 15 * time.Minute

// ExerciseVideoUpload is the response of a requested video upload slot.
type ExerciseVideoUpload struct {
	ObjectKey string
	UploadURL string
}

// CatalogService serves the shared muscle group / exercise reference data.
// The catalog is read-only for the application; the only write is attaching
// a demo video to an exercise.
type CatalogService interface {
	GetMuscleGroups(ctx context.Context) ([]domain.MuscleGroup, error)
	GetExercises(ctx context.Context, muscleGroupID *primitive.ObjectID) ([]domain.Exercise, error)
	GetExercise(ctx context.Context, exerciseID primitive.ObjectID) (*domain.Exercise, error)
	// GetExerciseVideoURL returns a presigned download URL for the
	// exercise's demo video.
	GetExerciseVideoURL(ctx context.Context, exerciseID primitive.ObjectID) (string, error)
	// RequestVideoUpload issues a presigned upload URL and records the new
	// object key on the exercise.
	RequestVideoUpload(ctx context.Context, exerciseID primitive.ObjectID, contentType string) (*ExerciseVideoUpload, error)
}

// catalogService implements the CatalogService interface.
type catalogService struct {
	muscleGroupRepo repository.MuscleGroupRepository
	exerciseRepo    repository.ExerciseRepository
	fileStorage     storage.FileStorage
}

// NewCatalogService creates a new instance of catalogService.
func NewCatalogService(
	muscleGroupRepo repository.MuscleGroupRepository,
	exerciseRepo repository.ExerciseRepository,
	fileStorage storage.FileStorage,
) CatalogService {
	return &catalogService{
		muscleGroupRepo: muscleGroupRepo,
		exerciseRepo:    exerciseRepo,
		fileStorage:     fileStorage,
	}
}

func (s *catalogService) GetMuscleGroups(ctx context.Context) ([]domain.MuscleGroup, error) {
	return s.muscleGroupRepo.GetAll(ctx)
}

func (s *catalogService) GetExercises(ctx context.Context, muscleGroupID *primitive.ObjectID) ([]domain.Exercise, error) {
	return s.exerciseRepo.List(ctx, muscleGroupID)
}

func (s *catalogService) GetExercise(ctx context.Context, exerciseID primitive.ObjectID) (*domain.Exercise, error) {
	exercise, err := s.exerciseRepo.GetByID(ctx, exerciseID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}
	return exercise, nil
}

func (s *catalogService) GetExerciseVideoURL(ctx context.Context, exerciseID primitive.ObjectID) (string, error) {
	exercise, err := s.GetExercise(ctx, exerciseID)
	if err != nil {
		return "", err
	}
	if exercise.VideoKey == "" {
		return "", ErrNoVideoAvailable
	}
	return s.fileStorage.GeneratePresignedDownloadURL(ctx, exercise.VideoKey, videoURLExpiry)
}

func (s *catalogService) RequestVideoUpload(ctx context.Context, exerciseID primitive.ObjectID, contentType string) (*ExerciseVideoUpload, error) {
	exercise, err := s.GetExercise(ctx, exerciseID)
	if err != nil {
		return nil, err
	}

	objectKey := fmt.Sprintf("exercise-videos/%s/%s", exercise.ID.Hex(), uuid.NewString())
	uploadURL, err := s.fileStorage.GeneratePresignedUploadURL(ctx, objectKey, contentType, videoURLExpiry)
	if err != nil {
		return nil, err
	}
	if err := s.exerciseRepo.SetVideoKey(ctx, exerciseID, objectKey); err != nil {
		return nil, err
	}
	return &ExerciseVideoUpload{ObjectKey: objectKey, UploadURL: uploadURL}, nil
}
