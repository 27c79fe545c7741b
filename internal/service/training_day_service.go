package service

import (
	"context"
	"errors"

	"dmytrok/workout-app/internal/domain"
	"dmytrok/workout-app/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrTrainingDayNotFound     = errors.New("training day not found")
	ErrMuscleGroupNotInDay     = errors.New("muscle group not found in this training day")
	ErrDuplicateMuscleGroup    = errors.New("muscle group already exists in this training day")
	ErrDuplicateExercise       = errors.New("exercise already exists in this muscle group")
	ErrUnknownMuscleGroup      = errors.New("muscle group does not exist in the catalog")
	ErrInvalidExerciseForGroup = errors.New("exercise does not exist or does not belong to this muscle group")
	ErrExerciseEntryNotFound   = errors.New("exercise not found in this muscle group")
)

// ExerciseEntryInput describes one planned exercise in a request. Order is a
// desired position, not a stored value; the editor renumbers after every
// mutation.
type ExerciseEntryInput struct {
	ExerciseID  primitive.ObjectID
	Sets        int
	Reps        int
	RestSeconds int
	Order       int
}

// MuscleGroupInput describes one muscle group entry in a bulk replace.
type MuscleGroupInput struct {
	MuscleGroupID primitive.ObjectID
	Exercises     []ExerciseEntryInput
}

// ExerciseEntryUpdate carries the optional per-field updates of one planned
// exercise. A non-nil Order moves the entry to that (clamped) position.
type ExerciseEntryUpdate struct {
	Sets        *int
	Reps        *int
	RestSeconds *int
	Order       *int
}

// TrainingDayService edits the muscle group / exercise structure of training
// days. Every mutation validates referential integrity against the catalog,
// applies the dense-ordering contract to the affected exercise list, and
// persists the day as one document.
type TrainingDayService interface {
	GetTrainingDays(ctx context.Context, userID, programID primitive.ObjectID) ([]domain.TrainingDay, error)
	GetTrainingDay(ctx context.Context, userID, programID, dayID primitive.ObjectID) (*domain.TrainingDay, error)
	ReplaceMuscleGroups(ctx context.Context, userID, programID, dayID primitive.ObjectID, groups []MuscleGroupInput) (*domain.TrainingDay, error)
	AddMuscleGroup(ctx context.Context, userID, programID, dayID, muscleGroupID primitive.ObjectID, exercises []ExerciseEntryInput) (*domain.TrainingDay, error)
	UpdateMuscleGroup(ctx context.Context, userID, programID, dayID, muscleGroupID primitive.ObjectID, exercises []ExerciseEntryInput) (*domain.TrainingDay, error)
	RemoveMuscleGroup(ctx context.Context, userID, programID, dayID, muscleGroupID primitive.ObjectID) (*domain.TrainingDay, error)
	AddExercise(ctx context.Context, userID, programID, dayID, muscleGroupID primitive.ObjectID, input ExerciseEntryInput) (*domain.TrainingDay, error)
	UpdateExercise(ctx context.Context, userID, programID, dayID, muscleGroupID, exerciseID primitive.ObjectID, update ExerciseEntryUpdate) (*domain.TrainingDay, error)
	RemoveExercise(ctx context.Context, userID, programID, dayID, muscleGroupID, exerciseID primitive.ObjectID) (*domain.TrainingDay, error)
}

// trainingDayService implements the TrainingDayService interface.
type trainingDayService struct {
	programRepo     repository.ProgramRepository
	trainingDayRepo repository.TrainingDayRepository
	muscleGroupRepo repository.MuscleGroupRepository
	exerciseRepo    repository.ExerciseRepository
}

// NewTrainingDayService creates a new instance of trainingDayService.
func NewTrainingDayService(
	programRepo repository.ProgramRepository,
	trainingDayRepo repository.TrainingDayRepository,
	muscleGroupRepo repository.MuscleGroupRepository,
	exerciseRepo repository.ExerciseRepository,
) TrainingDayService {
	return &trainingDayService{
		programRepo:     programRepo,
		trainingDayRepo: trainingDayRepo,
		muscleGroupRepo: muscleGroupRepo,
		exerciseRepo:    exerciseRepo,
	}
}

// loadDay resolves a training day through its owning program. The userId
// filter on the program lookup is the ownership check.
func (s *trainingDayService) loadDay(ctx context.Context, userID, programID, dayID primitive.ObjectID) (*domain.TrainingDay, error) {
	if _, err := s.programRepo.GetByIDAndUser(ctx, programID, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProgramNotFound
		}
		return nil, err
	}
	day, err := s.trainingDayRepo.GetByIDAndProgram(ctx, dayID, programID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTrainingDayNotFound
		}
		return nil, err
	}
	return day, nil
}

func (s *trainingDayService) GetTrainingDays(ctx context.Context, userID, programID primitive.ObjectID) ([]domain.TrainingDay, error) {
	if _, err := s.programRepo.GetByIDAndUser(ctx, programID, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProgramNotFound
		}
		return nil, err
	}
	return s.trainingDayRepo.GetByProgram(ctx, programID)
}

func (s *trainingDayService) GetTrainingDay(ctx context.Context, userID, programID, dayID primitive.ObjectID) (*domain.TrainingDay, error) {
	return s.loadDay(ctx, userID, programID, dayID)
}

// buildExerciseEntries validates a requested exercise list against the
// catalog: every exercise must exist, belong to the given muscle group, and
// appear at most once. The returned entries still carry the caller's desired
// order values; NormalizeExercises settles them.
func (s *trainingDayService) buildExerciseEntries(ctx context.Context, muscleGroupID primitive.ObjectID, inputs []ExerciseEntryInput) ([]domain.ExerciseEntry, error) {
	entries := make([]domain.ExerciseEntry, 0, len(inputs))
	seen := make(map[primitive.ObjectID]struct{}, len(inputs))
	for _, in := range inputs {
		if _, dup := seen[in.ExerciseID]; dup {
			return nil, ErrDuplicateExercise
		}
		seen[in.ExerciseID] = struct{}{}

		exercise, err := s.exerciseRepo.GetByID(ctx, in.ExerciseID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, ErrInvalidExerciseForGroup
			}
			return nil, err
		}
		if exercise.MuscleGroupID != muscleGroupID {
			return nil, ErrInvalidExerciseForGroup
		}
		entries = append(entries, domain.ExerciseEntry{
			ExerciseID:  in.ExerciseID,
			Sets:        in.Sets,
			Reps:        in.Reps,
			RestSeconds: in.RestSeconds,
			Order:       in.Order,
		})
	}
	return entries, nil
}

// ReplaceMuscleGroups swaps the entire muscle group structure of a day. The
// whole payload is validated before anything is written, so a partially
// invalid request never leaves a partial result.
func (s *trainingDayService) ReplaceMuscleGroups(ctx context.Context, userID, programID, dayID primitive.ObjectID, groups []MuscleGroupInput) (*domain.TrainingDay, error) {
	day, err := s.loadDay(ctx, userID, programID, dayID)
	if err != nil {
		return nil, err
	}

	rebuilt := make([]domain.MuscleGroupEntry, 0, len(groups))
	seen := make(map[primitive.ObjectID]struct{}, len(groups))
	for _, g := range groups {
		if _, dup := seen[g.MuscleGroupID]; dup {
			return nil, ErrDuplicateMuscleGroup
		}
		seen[g.MuscleGroupID] = struct{}{}

		if _, err := s.muscleGroupRepo.GetByID(ctx, g.MuscleGroupID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, ErrUnknownMuscleGroup
			}
			return nil, err
		}
		exercises, err := s.buildExerciseEntries(ctx, g.MuscleGroupID, g.Exercises)
		if err != nil {
			return nil, err
		}
		entry := domain.MuscleGroupEntry{
			MuscleGroupID: g.MuscleGroupID,
			Exercises:     exercises,
		}
		entry.NormalizeExercises()
		rebuilt = append(rebuilt, entry)
	}

	day.MuscleGroups = rebuilt
	if err := s.trainingDayRepo.Update(ctx, day); err != nil {
		return nil, err
	}
	return day, nil
}

// AddMuscleGroup appends a new muscle group entry, optionally pre-populated
// with exercises.
func (s *trainingDayService) AddMuscleGroup(ctx context.Context, userID, programID, dayID, muscleGroupID primitive.ObjectID, exercises []ExerciseEntryInput) (*domain.TrainingDay, error) {
	day, err := s.loadDay(ctx, userID, programID, dayID)
	if err != nil {
		return nil, err
	}
	if day.HasMuscleGroup(muscleGroupID) {
		return nil, ErrDuplicateMuscleGroup
	}
	if _, err := s.muscleGroupRepo.GetByID(ctx, muscleGroupID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUnknownMuscleGroup
		}
		return nil, err
	}

	built, err := s.buildExerciseEntries(ctx, muscleGroupID, exercises)
	if err != nil {
		return nil, err
	}
	entry := domain.MuscleGroupEntry{
		MuscleGroupID: muscleGroupID,
		Exercises:     built,
	}
	entry.NormalizeExercises()

	day.MuscleGroups = append(day.MuscleGroups, entry)
	if err := s.trainingDayRepo.Update(ctx, day); err != nil {
		return nil, err
	}
	return day, nil
}

// UpdateMuscleGroup replaces the exercise list of an existing entry.
func (s *trainingDayService) UpdateMuscleGroup(ctx context.Context, userID, programID, dayID, muscleGroupID primitive.ObjectID, exercises []ExerciseEntryInput) (*domain.TrainingDay, error) {
	day, err := s.loadDay(ctx, userID, programID, dayID)
	if err != nil {
		return nil, err
	}
	entry := day.MuscleGroupEntry(muscleGroupID)
	if entry == nil {
		return nil, ErrMuscleGroupNotInDay
	}

	built, err := s.buildExerciseEntries(ctx, muscleGroupID, exercises)
	if err != nil {
		return nil, err
	}
	entry.Exercises = built
	entry.NormalizeExercises()

	if err := s.trainingDayRepo.Update(ctx, day); err != nil {
		return nil, err
	}
	return day, nil
}

// RemoveMuscleGroup deletes a muscle group entry and all its exercises.
func (s *trainingDayService) RemoveMuscleGroup(ctx context.Context, userID, programID, dayID, muscleGroupID primitive.ObjectID) (*domain.TrainingDay, error) {
	day, err := s.loadDay(ctx, userID, programID, dayID)
	if err != nil {
		return nil, err
	}
	if !day.RemoveMuscleGroup(muscleGroupID) {
		return nil, ErrMuscleGroupNotInDay
	}
	if err := s.trainingDayRepo.Update(ctx, day); err != nil {
		return nil, err
	}
	return day, nil
}

// AddExercise inserts one exercise into a muscle group entry at the requested
// position (appended when the position is absent or out of range).
func (s *trainingDayService) AddExercise(ctx context.Context, userID, programID, dayID, muscleGroupID primitive.ObjectID, input ExerciseEntryInput) (*domain.TrainingDay, error) {
	day, err := s.loadDay(ctx, userID, programID, dayID)
	if err != nil {
		return nil, err
	}
	entry := day.MuscleGroupEntry(muscleGroupID)
	if entry == nil {
		return nil, ErrMuscleGroupNotInDay
	}

	exercise, err := s.exerciseRepo.GetByID(ctx, input.ExerciseID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidExerciseForGroup
		}
		return nil, err
	}
	if exercise.MuscleGroupID != muscleGroupID {
		return nil, ErrInvalidExerciseForGroup
	}
	for _, ex := range entry.Exercises {
		if ex.ExerciseID == input.ExerciseID {
			return nil, ErrDuplicateExercise
		}
	}

	entry.InsertExercise(domain.ExerciseEntry{
		ExerciseID:  input.ExerciseID,
		Sets:        input.Sets,
		Reps:        input.Reps,
		RestSeconds: input.RestSeconds,
	}, input.Order)

	if err := s.trainingDayRepo.Update(ctx, day); err != nil {
		return nil, err
	}
	return day, nil
}

// UpdateExercise adjusts sets/reps/rest of a planned exercise and, when a new
// order is requested, moves it within its muscle group.
func (s *trainingDayService) UpdateExercise(ctx context.Context, userID, programID, dayID, muscleGroupID, exerciseID primitive.ObjectID, update ExerciseEntryUpdate) (*domain.TrainingDay, error) {
	day, err := s.loadDay(ctx, userID, programID, dayID)
	if err != nil {
		return nil, err
	}
	entry := day.MuscleGroupEntry(muscleGroupID)
	if entry == nil {
		return nil, ErrMuscleGroupNotInDay
	}

	var target *domain.ExerciseEntry
	for i := range entry.Exercises {
		if entry.Exercises[i].ExerciseID == exerciseID {
			target = &entry.Exercises[i]
			break
		}
	}
	if target == nil {
		return nil, ErrExerciseEntryNotFound
	}

	if update.Sets != nil {
		target.Sets = *update.Sets
	}
	if update.Reps != nil {
		target.Reps = *update.Reps
	}
	if update.RestSeconds != nil {
		target.RestSeconds = *update.RestSeconds
	}
	if update.Order != nil && *update.Order > 0 {
		entry.MoveExercise(exerciseID, *update.Order)
	}

	if err := s.trainingDayRepo.Update(ctx, day); err != nil {
		return nil, err
	}
	return day, nil
}

// RemoveExercise deletes one planned exercise and closes the order gap.
func (s *trainingDayService) RemoveExercise(ctx context.Context, userID, programID, dayID, muscleGroupID, exerciseID primitive.ObjectID) (*domain.TrainingDay, error) {
	day, err := s.loadDay(ctx, userID, programID, dayID)
	if err != nil {
		return nil, err
	}
	entry := day.MuscleGroupEntry(muscleGroupID)
	if entry == nil {
		return nil, ErrMuscleGroupNotInDay
	}
	if !entry.RemoveExercise(exerciseID) {
		return nil, ErrExerciseEntryNotFound
	}
	if err := s.trainingDayRepo.Update(ctx, day); err != nil {
		return nil, err
	}
	return day, nil
}
