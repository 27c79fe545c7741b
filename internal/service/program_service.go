package service

import (
	"context"
	"errors"
	"time"

	"dmytrok/workout-app/internal/domain"
	"dmytrok/workout-app/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrProgramNotFound = errors.New("program not found")
)

// Default muscle groups per split category, in display order. Day 1 of an
// UPPER split trains the upper list, day 2 the lower list, and so on.
var (
	upperGroups = []domain.MuscleGroupName{
		domain.MuscleGroupChest,
		domain.MuscleGroupBack,
		domain.MuscleGroupShoulders,
		domain.MuscleGroupBiceps,
		domain.MuscleGroupTriceps,
	}
	lowerGroups = []domain.MuscleGroupName{
		domain.MuscleGroupQuadriceps,
		domain.MuscleGroupGlutesHamstring,
		domain.MuscleGroupCalves,
	}
)

// Defaults applied to the single starter exercise generated per muscle group.
const (
	defaultSets        = 3
	defaultReps        = 10
	defaultRestSeconds = 60
)

// CreateProgramInput carries the creation parameters. Range validation
// (frequency 3-6, duration 4-12, split enum) is the API layer's concern.
type CreateProgramInput struct {
	Name              string
	TrainingFrequency int
	SplitType         domain.SplitType
	Duration          int
	StartDate         time.Time
}

// UpdateProgramInput carries the only fields mutable after creation.
type UpdateProgramInput struct {
	Name   *string
	Status *domain.ProgramStatus
}

// ProgramWithDays bundles a program with its generated schedule.
type ProgramWithDays struct {
	Program *domain.WorkoutProgram
	Days    []domain.TrainingDay
}

type ProgramService interface {
	CreateProgram(ctx context.Context, userID primitive.ObjectID, input CreateProgramInput) (*ProgramWithDays, error)
	GetPrograms(ctx context.Context, userID primitive.ObjectID) ([]domain.WorkoutProgram, error)
	GetProgram(ctx context.Context, userID, programID primitive.ObjectID) (*domain.WorkoutProgram, error)
	UpdateProgram(ctx context.Context, userID, programID primitive.ObjectID, input UpdateProgramInput) (*domain.WorkoutProgram, error)
	DeleteProgram(ctx context.Context, userID, programID primitive.ObjectID) error
}

// programService implements the ProgramService interface.
type programService struct {
	programRepo     repository.ProgramRepository
	trainingDayRepo repository.TrainingDayRepository
	muscleGroupRepo repository.MuscleGroupRepository
	performanceRepo repository.PerformanceRepository
}

// NewProgramService creates a new instance of programService.
func NewProgramService(
	programRepo repository.ProgramRepository,
	trainingDayRepo repository.TrainingDayRepository,
	muscleGroupRepo repository.MuscleGroupRepository,
	performanceRepo repository.PerformanceRepository,
) ProgramService {
	return &programService{
		programRepo:     programRepo,
		trainingDayRepo: trainingDayRepo,
		muscleGroupRepo: muscleGroupRepo,
		performanceRepo: performanceRepo,
	}
}

// CreateProgram persists a new program and generates its training day
// skeleton from the split pattern: day i trains the split's category when i
// is odd and the opposite category when i is even. Each muscle group of the
// day's category gets one starter exercise, the first one the catalog lists
// for that group; a group without catalog exercises still gets its entry,
// just with an empty list. A group missing from the catalog entirely is
// skipped.
func (s *programService) CreateProgram(ctx context.Context, userID primitive.ObjectID, input CreateProgramInput) (*ProgramWithDays, error) {
	startDate := input.StartDate
	if startDate.IsZero() {
		startDate = time.Now().UTC()
	}
	program := &domain.WorkoutProgram{
		UserID:            userID,
		Name:              input.Name,
		TrainingFrequency: input.TrainingFrequency,
		SplitType:         input.SplitType,
		Duration:          input.Duration,
		Status:            domain.ProgramActive,
		StartDate:         startDate,
	}
	programID, err := s.programRepo.Create(ctx, program)
	if err != nil {
		return nil, err
	}
	program.ID = programID

	// Pre-fetch the catalog into a name -> group map.
	catalog, err := s.muscleGroupRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	groupsByName := make(map[domain.MuscleGroupName]domain.MuscleGroup, len(catalog))
	for _, mg := range catalog {
		groupsByName[mg.Name] = mg
	}

	days := make([]domain.TrainingDay, 0, input.TrainingFrequency)
	for dayNumber := 1; dayNumber <= input.TrainingFrequency; dayNumber++ {
		names := upperGroups
		if program.DayCategory(dayNumber) == domain.SplitLower {
			names = lowerGroups
		}

		entries := make([]domain.MuscleGroupEntry, 0, len(names))
		for _, name := range names {
			mg, ok := groupsByName[name]
			if !ok {
				continue // catalog not seeded with this group
			}
			entry := domain.MuscleGroupEntry{
				MuscleGroupID: mg.ID,
				Exercises:     []domain.ExerciseEntry{},
			}
			if len(mg.Exercises) > 0 {
				entry.Exercises = append(entry.Exercises, domain.ExerciseEntry{
					ExerciseID:  mg.Exercises[0],
					Sets:        defaultSets,
					Reps:        defaultReps,
					RestSeconds: defaultRestSeconds,
					Order:       1,
				})
			}
			entries = append(entries, entry)
		}

		day := domain.TrainingDay{
			ProgramID:    program.ID,
			DayNumber:    dayNumber,
			MuscleGroups: entries,
		}
		if _, err := s.trainingDayRepo.Create(ctx, &day); err != nil {
			return nil, err
		}
		days = append(days, day)
	}

	return &ProgramWithDays{Program: program, Days: days}, nil
}

// GetPrograms lists all programs owned by the user.
func (s *programService) GetPrograms(ctx context.Context, userID primitive.ObjectID) ([]domain.WorkoutProgram, error) {
	return s.programRepo.GetByUser(ctx, userID)
}

// GetProgram retrieves one owned program.
func (s *programService) GetProgram(ctx context.Context, userID, programID primitive.ObjectID) (*domain.WorkoutProgram, error) {
	program, err := s.programRepo.GetByIDAndUser(ctx, programID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProgramNotFound
		}
		return nil, err
	}
	return program, nil
}

// UpdateProgram changes name and/or status. The schedule parameters are fixed
// at creation and cannot be updated.
func (s *programService) UpdateProgram(ctx context.Context, userID, programID primitive.ObjectID, input UpdateProgramInput) (*domain.WorkoutProgram, error) {
	program, err := s.GetProgram(ctx, userID, programID)
	if err != nil {
		return nil, err
	}
	if input.Name != nil {
		program.Name = *input.Name
	}
	if input.Status != nil {
		program.Status = *input.Status
	}
	if err := s.programRepo.Update(ctx, program); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProgramNotFound
		}
		return nil, err
	}
	return program, nil
}

// DeleteProgram removes a program and cascades to its training days and
// performance entries. The shared exercise catalog is never touched.
func (s *programService) DeleteProgram(ctx context.Context, userID, programID primitive.ObjectID) error {
	if err := s.programRepo.Delete(ctx, programID, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrProgramNotFound
		}
		return err
	}
	if err := s.trainingDayRepo.DeleteByProgram(ctx, programID); err != nil {
		return err
	}
	return s.performanceRepo.DeleteByProgram(ctx, programID)
}
