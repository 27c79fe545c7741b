package service

import (
	"context"
	"errors"
	"math"
	"strconv"
	"time"

	"dmytrok/workout-app/internal/domain"
	"dmytrok/workout-app/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrExerciseNotPlanned = errors.New("exercise is not part of the training day plan")
	ErrWeekOutOfRange     = errors.New("week number out of program range")
	ErrWeekNotReached     = errors.New("week has not been reached yet")
)

// SetPerformanceInput is one performed set as submitted by the client.
// Weight and Reps are deliberately loose: unparseable values are coerced to
// 0 rather than rejected, so a sloppy client cannot lose a whole session log.
type SetPerformanceInput struct {
	Weight any
	Reps   any
}

// ExercisePerformanceInput is the performed sets of one exercise.
type ExercisePerformanceInput struct {
	ExerciseID primitive.ObjectID
	Sets       []SetPerformanceInput
}

// PerformanceService records training sessions and aggregates them into
// week summaries.
type PerformanceService interface {
	LogPerformance(ctx context.Context, userID, programID, trainingDayID primitive.ObjectID, date time.Time, data []ExercisePerformanceInput) (*domain.PerformanceEntry, error)
	GetEntries(ctx context.Context, userID, programID primitive.ObjectID) ([]domain.PerformanceEntry, error)
	CurrentWeekNumber(ctx context.Context, userID, programID primitive.ObjectID) (int, error)
	// WeekSummary enforces the week access rules: a week outside
	// [1, duration] is ErrWeekOutOfRange, a valid week that has not yet
	// elapsed is ErrWeekNotReached.
	WeekSummary(ctx context.Context, userID, programID primitive.ObjectID, weekNumber int) (*domain.WeekSummary, error)
	CurrentWeekSummary(ctx context.Context, userID, programID primitive.ObjectID) (*domain.WeekSummary, error)
	AllWeeksSummary(ctx context.Context, userID, programID primitive.ObjectID) ([]domain.WeekSummary, error)
	ExerciseProgression(ctx context.Context, userID, programID, exerciseID primitive.ObjectID) ([]domain.ExerciseWeekVolume, error)
}

// performanceService implements the PerformanceService interface.
type performanceService struct {
	programRepo     repository.ProgramRepository
	trainingDayRepo repository.TrainingDayRepository
	performanceRepo repository.PerformanceRepository
	now             func() time.Time
}

// NewPerformanceService creates a new instance of performanceService.
func NewPerformanceService(
	programRepo repository.ProgramRepository,
	trainingDayRepo repository.TrainingDayRepository,
	performanceRepo repository.PerformanceRepository,
) PerformanceService {
	return &performanceService{
		programRepo:     programRepo,
		trainingDayRepo: trainingDayRepo,
		performanceRepo: performanceRepo,
		now:             time.Now,
	}
}

// numericValue coerces a loosely typed weight/reps value to a float64.
// Unparseable input becomes 0; this is documented policy, not an accident.
func numericValue(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// truncateToDay drops the time of day, keeping the calendar date.
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// weekNumberFor buckets a date into a 1-based program week: days 0-6 after
// the start date are week 1, days 7-13 week 2, and so on. Dates before the
// start or past the nominal end clamp into [1, duration] so a stray log date
// can never corrupt aggregation.
func weekNumberFor(startDate, date time.Time, duration int) int {
	start := truncateToDay(startDate)
	day := truncateToDay(date)
	diffDays := int(day.Sub(start).Hours() / 24)
	week := diffDays/7 + 1
	if diffDays < 0 {
		week = 1
	}
	if week < 1 {
		week = 1
	}
	if duration > 0 && week > duration {
		week = duration
	}
	return week
}

func (s *performanceService) loadProgram(ctx context.Context, userID, programID primitive.ObjectID) (*domain.WorkoutProgram, error) {
	program, err := s.programRepo.GetByIDAndUser(ctx, programID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProgramNotFound
		}
		return nil, err
	}
	return program, nil
}

// LogPerformance validates a session against the day's plan, computes per
// set, per exercise and per day volume (volume = weight * reps) and upserts
// the entry under its (user, program, day, date) key. Re-logging the same
// session replaces the previous data; totals never accumulate across
// submissions.
func (s *performanceService) LogPerformance(ctx context.Context, userID, programID, trainingDayID primitive.ObjectID, date time.Time, data []ExercisePerformanceInput) (*domain.PerformanceEntry, error) {
	program, err := s.loadProgram(ctx, userID, programID)
	if err != nil {
		return nil, err
	}
	day, err := s.trainingDayRepo.GetByIDAndProgram(ctx, trainingDayID, programID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTrainingDayNotFound
		}
		return nil, err
	}

	weekNumber := weekNumberFor(program.StartDate, date, program.Duration)

	dayTotal := 0.0
	performed := make([]domain.ExercisePerformance, 0, len(data))
	for _, ex := range data {
		if !day.PlansExercise(ex.ExerciseID) {
			return nil, ErrExerciseNotPlanned
		}
		exerciseTotal := 0.0
		sets := make([]domain.SetPerformance, 0, len(ex.Sets))
		for i, set := range ex.Sets {
			weight := numericValue(set.Weight)
			reps := int(numericValue(set.Reps))
			volume := weight * float64(reps)
			sets = append(sets, domain.SetPerformance{
				SetNumber: i + 1,
				Weight:    weight,
				Reps:      reps,
				Volume:    volume,
			})
			exerciseTotal += volume
		}
		performed = append(performed, domain.ExercisePerformance{
			ExerciseID:  ex.ExerciseID,
			Sets:        sets,
			TotalVolume: exerciseTotal,
		})
		dayTotal += exerciseTotal
	}

	entry := &domain.PerformanceEntry{
		UserID:          userID,
		ProgramID:       programID,
		TrainingDayID:   trainingDayID,
		Date:            truncateToDay(date),
		WeekNumber:      weekNumber,
		PerformanceData: performed,
		DayTotalVolume:  dayTotal,
	}
	return s.performanceRepo.Upsert(ctx, entry)
}

// GetEntries lists every session logged for a program, oldest first.
func (s *performanceService) GetEntries(ctx context.Context, userID, programID primitive.ObjectID) ([]domain.PerformanceEntry, error) {
	if _, err := s.loadProgram(ctx, userID, programID); err != nil {
		return nil, err
	}
	return s.performanceRepo.GetByProgram(ctx, userID, programID)
}

func (s *performanceService) currentWeek(program *domain.WorkoutProgram) int {
	return weekNumberFor(program.StartDate, s.now(), program.Duration)
}

// CurrentWeekNumber returns the week the program is in right now.
func (s *performanceService) CurrentWeekNumber(ctx context.Context, userID, programID primitive.ObjectID) (int, error) {
	program, err := s.loadProgram(ctx, userID, programID)
	if err != nil {
		return 0, err
	}
	return s.currentWeek(program), nil
}

// weekTotals sums the day totals and per-exercise totals of one week.
func weekTotals(entries []domain.PerformanceEntry) (float64, map[string]float64) {
	total := 0.0
	perExercise := make(map[string]float64)
	for _, entry := range entries {
		total += entry.DayTotalVolume
		for _, exPerf := range entry.PerformanceData {
			perExercise[exPerf.ExerciseID.Hex()] += exPerf.TotalVolume
		}
	}
	return total, perExercise
}

// summarizeWeek builds the summary of one (already access-checked) week.
func (s *performanceService) summarizeWeek(ctx context.Context, userID primitive.ObjectID, program *domain.WorkoutProgram, weekNumber int) (*domain.WeekSummary, error) {
	entries, err := s.performanceRepo.GetByWeek(ctx, userID, program.ID, weekNumber)
	if err != nil {
		return nil, err
	}
	totalVolume, exerciseVolumes := weekTotals(entries)

	dayStats := make([]domain.WeekDayStats, 0, len(entries))
	for _, entry := range entries {
		dayStats = append(dayStats, domain.WeekDayStats{
			TrainingDayID: entry.TrainingDayID,
			CompletedDate: entry.Date,
			Volume:        entry.DayTotalVolume,
			Exercises:     entry.PerformanceData,
		})
	}

	// Progression vs the previous week. A zero previous total with volume
	// this week means "new activity": no meaningful percentage, so nil.
	var progression *int
	if weekNumber > 1 {
		prevEntries, err := s.performanceRepo.GetByWeek(ctx, userID, program.ID, weekNumber-1)
		if err != nil {
			return nil, err
		}
		prevTotal, _ := weekTotals(prevEntries)
		switch {
		case prevTotal > 0:
			p := int(math.Round((totalVolume - prevTotal) / prevTotal * 100))
			progression = &p
		case totalVolume == 0:
			zero := 0
			progression = &zero
		}
	}

	weekStart := truncateToDay(program.StartDate).AddDate(0, 0, (weekNumber-1)*7)
	weekEnd := weekStart.AddDate(0, 0, 6)
	programEnd := truncateToDay(program.StartDate).AddDate(0, 0, program.Duration*7-1)
	if weekEnd.After(programEnd) {
		weekEnd = programEnd
	}

	return &domain.WeekSummary{
		Week:              weekNumber,
		StartDate:         weekStart,
		EndDate:           weekEnd,
		TotalVolume:       totalVolume,
		ExerciseVolumes:   exerciseVolumes,
		VolumeProgression: progression,
		CompletedDays:     len(entries),
		DayStats:          dayStats,
	}, nil
}

// WeekSummary checks access and aggregates one week. The range check comes
// first: week 20 of a 12-week program is out of range, while week 5 of a
// program currently in week 2 is merely not reached yet.
func (s *performanceService) WeekSummary(ctx context.Context, userID, programID primitive.ObjectID, weekNumber int) (*domain.WeekSummary, error) {
	program, err := s.loadProgram(ctx, userID, programID)
	if err != nil {
		return nil, err
	}
	if weekNumber < 1 || weekNumber > program.Duration {
		return nil, ErrWeekOutOfRange
	}
	if weekNumber > s.currentWeek(program) {
		return nil, ErrWeekNotReached
	}
	return s.summarizeWeek(ctx, userID, program, weekNumber)
}

// CurrentWeekSummary aggregates the week the program is in right now.
func (s *performanceService) CurrentWeekSummary(ctx context.Context, userID, programID primitive.ObjectID) (*domain.WeekSummary, error) {
	program, err := s.loadProgram(ctx, userID, programID)
	if err != nil {
		return nil, err
	}
	return s.summarizeWeek(ctx, userID, program, s.currentWeek(program))
}

// AllWeeksSummary aggregates every week from 1 up to the current one, in
// ascending order. Future weeks are never included.
func (s *performanceService) AllWeeksSummary(ctx context.Context, userID, programID primitive.ObjectID) ([]domain.WeekSummary, error) {
	program, err := s.loadProgram(ctx, userID, programID)
	if err != nil {
		return nil, err
	}
	current := s.currentWeek(program)
	summaries := make([]domain.WeekSummary, 0, current)
	for week := 1; week <= current; week++ {
		summary, err := s.summarizeWeek(ctx, userID, program, week)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, *summary)
	}
	return summaries, nil
}

// ExerciseProgression projects the all-weeks summary onto a single
// exercise's volume per week.
func (s *performanceService) ExerciseProgression(ctx context.Context, userID, programID, exerciseID primitive.ObjectID) ([]domain.ExerciseWeekVolume, error) {
	summaries, err := s.AllWeeksSummary(ctx, userID, programID)
	if err != nil {
		return nil, err
	}
	progression := make([]domain.ExerciseWeekVolume, 0, len(summaries))
	for _, week := range summaries {
		progression = append(progression, domain.ExerciseWeekVolume{
			Week:   week.Week,
			Volume: week.ExerciseVolumes[exerciseID.Hex()],
		})
	}
	return progression, nil
}
