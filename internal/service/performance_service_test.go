package service

import (
	"context"
	"testing"
	"time"

	"dmytrok/workout-app/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// perfFixture wires a performance service over fakes with one 8-week program
// starting 2024-01-01 and a single training day planning one exercise.
type perfFixture struct {
	svc        *performanceService
	userID     primitive.ObjectID
	programID  primitive.ObjectID
	dayID      primitive.ObjectID
	exerciseID primitive.ObjectID
	start      time.Time
}

func newPerfFixture(t *testing.T, duration int) *perfFixture {
	t.Helper()
	f := &perfFixture{
		userID:     primitive.NewObjectID(),
		exerciseID: primitive.NewObjectID(),
		start:      time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	programRepo := newFakeProgramRepo()
	var err error
	f.programID, err = programRepo.Create(context.Background(), &domain.WorkoutProgram{
		UserID:            f.userID,
		Name:              "Aggregation fixture",
		TrainingFrequency: 3,
		SplitType:         domain.SplitUpper,
		Duration:          duration,
		Status:            domain.ProgramActive,
		StartDate:         f.start,
	})
	require.NoError(t, err)

	dayRepo := newFakeTrainingDayRepo()
	f.dayID, err = dayRepo.Create(context.Background(), &domain.TrainingDay{
		ProgramID: f.programID,
		DayNumber: 1,
		MuscleGroups: []domain.MuscleGroupEntry{
			{
				MuscleGroupID: primitive.NewObjectID(),
				Exercises: []domain.ExerciseEntry{
					{ExerciseID: f.exerciseID, Sets: 3, Reps: 10, Order: 1},
				},
			},
		},
	})
	require.NoError(t, err)

	f.svc = NewPerformanceService(programRepo, dayRepo, newFakePerformanceRepo()).(*performanceService)
	return f
}

// setClock pins "now" so week access checks are deterministic.
func (f *perfFixture) setClock(t time.Time) {
	f.svc.now = func() time.Time { return t }
}

func (f *perfFixture) log(t *testing.T, date time.Time, weight, reps any) *domain.PerformanceEntry {
	t.Helper()
	entry, err := f.svc.LogPerformance(context.Background(), f.userID, f.programID, f.dayID, date, []ExercisePerformanceInput{
		{ExerciseID: f.exerciseID, Sets: []SetPerformanceInput{{Weight: weight, Reps: reps}}},
	})
	require.NoError(t, err)
	return entry
}

func TestWeekNumberFor(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		date time.Time
		want int
	}{
		{"start date is week 1", start, 1},
		{"day 7 still week 1", time.Date(2024, 1, 7, 23, 59, 0, 0, time.UTC), 1},
		{"day 8 is week 2", time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC), 2},
		{"before the start clamps to week 1", time.Date(2023, 12, 25, 0, 0, 0, 0, time.UTC), 1},
		{"100 days in clamps to the final week", start.AddDate(0, 0, 100), 8},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, weekNumberFor(start, tc.date, 8))
		})
	}
}

func TestNumericValue(t *testing.T) {
	assert.Equal(t, 102.5, numericValue(102.5))
	assert.Equal(t, 8.0, numericValue(8))
	assert.Equal(t, 60.0, numericValue("60"))
	assert.Equal(t, 0.0, numericValue("heavy"))
	assert.Equal(t, 0.0, numericValue(nil))
	assert.Equal(t, 0.0, numericValue([]string{"x"}))
}

func TestLogPerformance(t *testing.T) {
	ctx := context.Background()

	t.Run("computes set, exercise and day volume", func(t *testing.T) {
		f := newPerfFixture(t, 8)

		entry, err := f.svc.LogPerformance(ctx, f.userID, f.programID, f.dayID, f.start, []ExercisePerformanceInput{
			{ExerciseID: f.exerciseID, Sets: []SetPerformanceInput{
				{Weight: 100, Reps: 10},
				{Weight: 102.5, Reps: 8},
			}},
		})

		require.NoError(t, err)
		require.Len(t, entry.PerformanceData, 1)
		perf := entry.PerformanceData[0]
		require.Len(t, perf.Sets, 2)
		assert.Equal(t, 1, perf.Sets[0].SetNumber)
		assert.Equal(t, 1000.0, perf.Sets[0].Volume)
		assert.Equal(t, 2, perf.Sets[1].SetNumber)
		assert.Equal(t, 820.0, perf.Sets[1].Volume)
		assert.Equal(t, 1820.0, perf.TotalVolume)
		assert.Equal(t, 1820.0, entry.DayTotalVolume)
		assert.Equal(t, 1, entry.WeekNumber)
	})

	t.Run("unparseable weight counts as zero", func(t *testing.T) {
		f := newPerfFixture(t, 8)

		entry := f.log(t, f.start, "not a number", 10)

		assert.Equal(t, 0.0, entry.DayTotalVolume)
	})

	t.Run("re-logging the same day replaces, never accumulates", func(t *testing.T) {
		f := newPerfFixture(t, 8)
		date := f.start.AddDate(0, 0, 2)

		first := f.log(t, date, 100, 10)
		second := f.log(t, date.Add(5*time.Hour), 50, 10) // same calendar day

		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, 500.0, second.DayTotalVolume)

		entries, err := f.svc.GetEntries(context.Background(), f.userID, f.programID)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, 500.0, entries[0].DayTotalVolume)
	})

	t.Run("exercise outside the plan is rejected", func(t *testing.T) {
		f := newPerfFixture(t, 8)

		_, err := f.svc.LogPerformance(ctx, f.userID, f.programID, f.dayID, f.start, []ExercisePerformanceInput{
			{ExerciseID: primitive.NewObjectID(), Sets: []SetPerformanceInput{{Weight: 100, Reps: 10}}},
		})

		assert.ErrorIs(t, err, ErrExerciseNotPlanned)
	})
}

func TestWeekSummaryAccess(t *testing.T) {
	ctx := context.Background()

	t.Run("week outside the program range", func(t *testing.T) {
		f := newPerfFixture(t, 6)
		f.setClock(f.start.AddDate(0, 0, 8)) // week 2

		_, err := f.svc.WeekSummary(ctx, f.userID, f.programID, 9)
		assert.ErrorIs(t, err, ErrWeekOutOfRange)

		_, err = f.svc.WeekSummary(ctx, f.userID, f.programID, 0)
		assert.ErrorIs(t, err, ErrWeekOutOfRange)
	})

	t.Run("valid week not yet reached", func(t *testing.T) {
		f := newPerfFixture(t, 6)
		f.setClock(f.start.AddDate(0, 0, 8)) // week 2

		_, err := f.svc.WeekSummary(ctx, f.userID, f.programID, 4)
		assert.ErrorIs(t, err, ErrWeekNotReached)
	})

	t.Run("week date range clamps to the program end", func(t *testing.T) {
		f := newPerfFixture(t, 6)
		f.setClock(f.start.AddDate(0, 0, 6*7)) // past the end, clamps to week 6

		summary, err := f.svc.WeekSummary(ctx, f.userID, f.programID, 6)

		require.NoError(t, err)
		assert.Equal(t, f.start.AddDate(0, 0, 35), summary.StartDate)
		assert.Equal(t, f.start.AddDate(0, 0, 41), summary.EndDate)
	})
}

func TestWeekSummaryAggregation(t *testing.T) {
	ctx := context.Background()

	t.Run("sums days and exercises of the week", func(t *testing.T) {
		f := newPerfFixture(t, 8)
		f.setClock(f.start.AddDate(0, 0, 10))

		f.log(t, f.start, 100, 10)                  // week 1: 1000
		f.log(t, f.start.AddDate(0, 0, 2), 80, 10)  // week 1: 800
		f.log(t, f.start.AddDate(0, 0, 7), 120, 10) // week 2: 1200

		summary, err := f.svc.WeekSummary(ctx, f.userID, f.programID, 1)
		require.NoError(t, err)
		assert.Equal(t, 1800.0, summary.TotalVolume)
		assert.Equal(t, 2, summary.CompletedDays)
		assert.Equal(t, 1800.0, summary.ExerciseVolumes[f.exerciseID.Hex()])
		assert.Nil(t, summary.VolumeProgression) // week 1 has no baseline
	})

	t.Run("progression percentage against the previous week", func(t *testing.T) {
		f := newPerfFixture(t, 8)
		f.setClock(f.start.AddDate(0, 0, 10))

		f.log(t, f.start, 100, 10)                  // week 1: 1000
		f.log(t, f.start.AddDate(0, 0, 7), 120, 10) // week 2: 1200

		summary, err := f.svc.WeekSummary(ctx, f.userID, f.programID, 2)
		require.NoError(t, err)
		require.NotNil(t, summary.VolumeProgression)
		assert.Equal(t, 20, *summary.VolumeProgression)
	})

	t.Run("no baseline yields nil progression", func(t *testing.T) {
		f := newPerfFixture(t, 8)
		f.setClock(f.start.AddDate(0, 0, 10))

		f.log(t, f.start.AddDate(0, 0, 7), 50, 10) // week 2 only

		summary, err := f.svc.WeekSummary(ctx, f.userID, f.programID, 2)
		require.NoError(t, err)
		assert.Nil(t, summary.VolumeProgression)
	})

	t.Run("two empty weeks yield zero progression", func(t *testing.T) {
		f := newPerfFixture(t, 8)
		f.setClock(f.start.AddDate(0, 0, 10))

		summary, err := f.svc.WeekSummary(ctx, f.userID, f.programID, 2)
		require.NoError(t, err)
		require.NotNil(t, summary.VolumeProgression)
		assert.Equal(t, 0, *summary.VolumeProgression)
	})
}

func TestAllWeeksSummary(t *testing.T) {
	f := newPerfFixture(t, 8)
	f.setClock(f.start.AddDate(0, 0, 16)) // week 3

	f.log(t, f.start, 100, 10)

	current, err := f.svc.CurrentWeekNumber(context.Background(), f.userID, f.programID)
	require.NoError(t, err)
	assert.Equal(t, 3, current)

	summaries, err := f.svc.AllWeeksSummary(context.Background(), f.userID, f.programID)

	require.NoError(t, err)
	require.Len(t, summaries, 3) // weeks 1..current, future weeks excluded
	for i, s := range summaries {
		assert.Equal(t, i+1, s.Week)
	}
	assert.Equal(t, 1000.0, summaries[0].TotalVolume)
	assert.Equal(t, 0.0, summaries[1].TotalVolume)
}

func TestExerciseProgression(t *testing.T) {
	f := newPerfFixture(t, 8)
	f.setClock(f.start.AddDate(0, 0, 8)) // week 2

	f.log(t, f.start, 100, 10)                  // week 1: 1000
	f.log(t, f.start.AddDate(0, 0, 7), 110, 10) // week 2: 1100

	progression, err := f.svc.ExerciseProgression(context.Background(), f.userID, f.programID, f.exerciseID)

	require.NoError(t, err)
	require.Len(t, progression, 2)
	assert.Equal(t, domain.ExerciseWeekVolume{Week: 1, Volume: 1000}, progression[0])
	assert.Equal(t, domain.ExerciseWeekVolume{Week: 2, Volume: 1100}, progression[1])

	// An exercise never logged projects to zero volume each week.
	other, err := f.svc.ExerciseProgression(context.Background(), f.userID, f.programID, primitive.NewObjectID())
	require.NoError(t, err)
	require.Len(t, other, 2)
	assert.Equal(t, 0.0, other[0].Volume)
}
