package service

import (
	"context"
	"testing"

	"dmytrok/workout-app/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// editorFixture wires a training day service over fakes with one program, one
// training day and a two-group catalog (chest with two exercises, back with
// one).
type editorFixture struct {
	svc       TrainingDayService
	userID    primitive.ObjectID
	programID primitive.ObjectID
	dayID     primitive.ObjectID

	chestID  primitive.ObjectID
	backID   primitive.ObjectID
	benchID  primitive.ObjectID
	flyID    primitive.ObjectID
	rowID    primitive.ObjectID
	unseeded primitive.ObjectID
}

func newEditorFixture(t *testing.T) *editorFixture {
	t.Helper()
	f := &editorFixture{
		userID:   primitive.NewObjectID(),
		chestID:  primitive.NewObjectID(),
		backID:   primitive.NewObjectID(),
		benchID:  primitive.NewObjectID(),
		flyID:    primitive.NewObjectID(),
		rowID:    primitive.NewObjectID(),
		unseeded: primitive.NewObjectID(),
	}

	mgRepo := &fakeMuscleGroupRepo{groups: []domain.MuscleGroup{
		{ID: f.chestID, Name: domain.MuscleGroupChest, Exercises: []primitive.ObjectID{f.benchID, f.flyID}},
		{ID: f.backID, Name: domain.MuscleGroupBack, Exercises: []primitive.ObjectID{f.rowID}},
	}}
	exRepo := &fakeExerciseRepo{exercises: []domain.Exercise{
		{ID: f.benchID, Name: "Bench Press", MuscleGroupID: f.chestID},
		{ID: f.flyID, Name: "Cable Fly", MuscleGroupID: f.chestID},
		{ID: f.rowID, Name: "Barbell Row", MuscleGroupID: f.backID},
	}}

	programRepo := newFakeProgramRepo()
	program := &domain.WorkoutProgram{
		UserID:            f.userID,
		Name:              "Editor fixture",
		TrainingFrequency: 3,
		SplitType:         domain.SplitUpper,
		Duration:          8,
		Status:            domain.ProgramActive,
	}
	var err error
	f.programID, err = programRepo.Create(context.Background(), program)
	require.NoError(t, err)

	dayRepo := newFakeTrainingDayRepo()
	day := &domain.TrainingDay{
		ProgramID: f.programID,
		DayNumber: 1,
		MuscleGroups: []domain.MuscleGroupEntry{
			{
				MuscleGroupID: f.chestID,
				Exercises: []domain.ExerciseEntry{
					{ExerciseID: f.benchID, Sets: 3, Reps: 10, RestSeconds: 60, Order: 1},
				},
			},
		},
	}
	f.dayID, err = dayRepo.Create(context.Background(), day)
	require.NoError(t, err)

	f.svc = NewTrainingDayService(programRepo, dayRepo, mgRepo, exRepo)
	return f
}

func TestAddMuscleGroup(t *testing.T) {
	ctx := context.Background()

	t.Run("adds a group with exercises", func(t *testing.T) {
		f := newEditorFixture(t)

		day, err := f.svc.AddMuscleGroup(ctx, f.userID, f.programID, f.dayID, f.backID, []ExerciseEntryInput{
			{ExerciseID: f.rowID, Sets: 4, Reps: 8, RestSeconds: 90, Order: 1},
		})

		require.NoError(t, err)
		require.Len(t, day.MuscleGroups, 2)
		entry := day.MuscleGroupEntry(f.backID)
		require.NotNil(t, entry)
		require.Len(t, entry.Exercises, 1)
		assert.Equal(t, 1, entry.Exercises[0].Order)
	})

	t.Run("duplicate group is rejected", func(t *testing.T) {
		f := newEditorFixture(t)

		_, err := f.svc.AddMuscleGroup(ctx, f.userID, f.programID, f.dayID, f.chestID, nil)

		assert.ErrorIs(t, err, ErrDuplicateMuscleGroup)
	})

	t.Run("group must exist in the catalog", func(t *testing.T) {
		f := newEditorFixture(t)

		_, err := f.svc.AddMuscleGroup(ctx, f.userID, f.programID, f.dayID, f.unseeded, nil)

		assert.ErrorIs(t, err, ErrUnknownMuscleGroup)
	})

	t.Run("exercise from another group is rejected", func(t *testing.T) {
		f := newEditorFixture(t)

		// A chest exercise cannot be planned under the back group.
		_, err := f.svc.AddMuscleGroup(ctx, f.userID, f.programID, f.dayID, f.backID, []ExerciseEntryInput{
			{ExerciseID: f.benchID, Sets: 3, Reps: 10},
		})

		assert.ErrorIs(t, err, ErrInvalidExerciseForGroup)
	})
}

func TestReplaceMuscleGroups(t *testing.T) {
	ctx := context.Background()

	t.Run("replaces the whole structure and normalizes order", func(t *testing.T) {
		f := newEditorFixture(t)

		day, err := f.svc.ReplaceMuscleGroups(ctx, f.userID, f.programID, f.dayID, []MuscleGroupInput{
			{MuscleGroupID: f.chestID, Exercises: []ExerciseEntryInput{
				{ExerciseID: f.flyID, Sets: 3, Reps: 12, Order: 10},
				{ExerciseID: f.benchID, Sets: 5, Reps: 5, Order: 2},
			}},
			{MuscleGroupID: f.backID, Exercises: []ExerciseEntryInput{
				{ExerciseID: f.rowID, Sets: 4, Reps: 8, Order: 1},
			}},
		})

		require.NoError(t, err)
		require.Len(t, day.MuscleGroups, 2)
		chest := day.MuscleGroupEntry(f.chestID)
		require.Len(t, chest.Exercises, 2)
		// Requested orders 2 and 10 settle into 1 and 2.
		assert.Equal(t, f.benchID, chest.Exercises[0].ExerciseID)
		assert.Equal(t, 1, chest.Exercises[0].Order)
		assert.Equal(t, f.flyID, chest.Exercises[1].ExerciseID)
		assert.Equal(t, 2, chest.Exercises[1].Order)
	})

	t.Run("invalid payload leaves the day untouched", func(t *testing.T) {
		f := newEditorFixture(t)

		_, err := f.svc.ReplaceMuscleGroups(ctx, f.userID, f.programID, f.dayID, []MuscleGroupInput{
			{MuscleGroupID: f.backID, Exercises: []ExerciseEntryInput{
				{ExerciseID: f.benchID, Sets: 3, Reps: 10}, // wrong group
			}},
		})
		require.ErrorIs(t, err, ErrInvalidExerciseForGroup)

		day, err := f.svc.GetTrainingDay(ctx, f.userID, f.programID, f.dayID)
		require.NoError(t, err)
		require.Len(t, day.MuscleGroups, 1)
		assert.Equal(t, f.chestID, day.MuscleGroups[0].MuscleGroupID)
	})

	t.Run("duplicate groups in one payload are rejected", func(t *testing.T) {
		f := newEditorFixture(t)

		_, err := f.svc.ReplaceMuscleGroups(ctx, f.userID, f.programID, f.dayID, []MuscleGroupInput{
			{MuscleGroupID: f.chestID},
			{MuscleGroupID: f.chestID},
		})

		assert.ErrorIs(t, err, ErrDuplicateMuscleGroup)
	})
}

func TestAddExercise(t *testing.T) {
	ctx := context.Background()

	t.Run("inserts at the requested position", func(t *testing.T) {
		f := newEditorFixture(t)

		day, err := f.svc.AddExercise(ctx, f.userID, f.programID, f.dayID, f.chestID, ExerciseEntryInput{
			ExerciseID: f.flyID, Sets: 3, Reps: 15, Order: 1,
		})

		require.NoError(t, err)
		chest := day.MuscleGroupEntry(f.chestID)
		require.Len(t, chest.Exercises, 2)
		assert.Equal(t, f.flyID, chest.Exercises[0].ExerciseID)
		assert.Equal(t, 1, chest.Exercises[0].Order)
		assert.Equal(t, f.benchID, chest.Exercises[1].ExerciseID)
		assert.Equal(t, 2, chest.Exercises[1].Order)
	})

	t.Run("duplicate exercise in the group is rejected", func(t *testing.T) {
		f := newEditorFixture(t)

		_, err := f.svc.AddExercise(ctx, f.userID, f.programID, f.dayID, f.chestID, ExerciseEntryInput{
			ExerciseID: f.benchID, Sets: 3, Reps: 10,
		})

		assert.ErrorIs(t, err, ErrDuplicateExercise)
	})

	t.Run("exercise must belong to the group", func(t *testing.T) {
		f := newEditorFixture(t)

		_, err := f.svc.AddExercise(ctx, f.userID, f.programID, f.dayID, f.chestID, ExerciseEntryInput{
			ExerciseID: f.rowID, Sets: 3, Reps: 10,
		})

		assert.ErrorIs(t, err, ErrInvalidExerciseForGroup)
	})

	t.Run("unknown muscle group entry", func(t *testing.T) {
		f := newEditorFixture(t)

		_, err := f.svc.AddExercise(ctx, f.userID, f.programID, f.dayID, f.backID, ExerciseEntryInput{
			ExerciseID: f.rowID, Sets: 3, Reps: 10,
		})

		assert.ErrorIs(t, err, ErrMuscleGroupNotInDay)
	})
}

func TestUpdateExercise(t *testing.T) {
	ctx := context.Background()

	t.Run("patches fields and moves on order change", func(t *testing.T) {
		f := newEditorFixture(t)
		_, err := f.svc.AddExercise(ctx, f.userID, f.programID, f.dayID, f.chestID, ExerciseEntryInput{
			ExerciseID: f.flyID, Sets: 3, Reps: 15,
		})
		require.NoError(t, err)

		sets, order := 5, 1
		day, err := f.svc.UpdateExercise(ctx, f.userID, f.programID, f.dayID, f.chestID, f.flyID, ExerciseEntryUpdate{
			Sets:  &sets,
			Order: &order,
		})

		require.NoError(t, err)
		chest := day.MuscleGroupEntry(f.chestID)
		assert.Equal(t, f.flyID, chest.Exercises[0].ExerciseID)
		assert.Equal(t, 5, chest.Exercises[0].Sets)
		assert.Equal(t, 15, chest.Exercises[0].Reps) // untouched
		assert.Equal(t, 1, chest.Exercises[0].Order)
		assert.Equal(t, 2, chest.Exercises[1].Order)
	})

	t.Run("missing entry", func(t *testing.T) {
		f := newEditorFixture(t)

		sets := 5
		_, err := f.svc.UpdateExercise(ctx, f.userID, f.programID, f.dayID, f.chestID, f.flyID, ExerciseEntryUpdate{Sets: &sets})

		assert.ErrorIs(t, err, ErrExerciseEntryNotFound)
	})
}

func TestRemoveExerciseAndGroup(t *testing.T) {
	ctx := context.Background()

	t.Run("removing an exercise closes the order gap", func(t *testing.T) {
		f := newEditorFixture(t)
		_, err := f.svc.AddExercise(ctx, f.userID, f.programID, f.dayID, f.chestID, ExerciseEntryInput{
			ExerciseID: f.flyID, Sets: 3, Reps: 15,
		})
		require.NoError(t, err)

		day, err := f.svc.RemoveExercise(ctx, f.userID, f.programID, f.dayID, f.chestID, f.benchID)

		require.NoError(t, err)
		chest := day.MuscleGroupEntry(f.chestID)
		require.Len(t, chest.Exercises, 1)
		assert.Equal(t, f.flyID, chest.Exercises[0].ExerciseID)
		assert.Equal(t, 1, chest.Exercises[0].Order)
	})

	t.Run("removing a group drops its exercises with it", func(t *testing.T) {
		f := newEditorFixture(t)

		day, err := f.svc.RemoveMuscleGroup(ctx, f.userID, f.programID, f.dayID, f.chestID)

		require.NoError(t, err)
		assert.Empty(t, day.MuscleGroups)
	})

	t.Run("removing an absent group fails", func(t *testing.T) {
		f := newEditorFixture(t)

		_, err := f.svc.RemoveMuscleGroup(ctx, f.userID, f.programID, f.dayID, f.backID)

		assert.ErrorIs(t, err, ErrMuscleGroupNotInDay)
	})
}

func TestTrainingDayOwnership(t *testing.T) {
	ctx := context.Background()
	f := newEditorFixture(t)
	intruder := primitive.NewObjectID()

	_, err := f.svc.GetTrainingDay(ctx, intruder, f.programID, f.dayID)
	assert.ErrorIs(t, err, ErrProgramNotFound)

	_, err = f.svc.GetTrainingDay(ctx, f.userID, f.programID, primitive.NewObjectID())
	assert.ErrorIs(t, err, ErrTrainingDayNotFound)
}
