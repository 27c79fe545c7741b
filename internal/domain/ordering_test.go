package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func entryList(n int) (*MuscleGroupEntry, []primitive.ObjectID) {
	ids := make([]primitive.ObjectID, n)
	mg := &MuscleGroupEntry{MuscleGroupID: primitive.NewObjectID()}
	for i := range ids {
		ids[i] = primitive.NewObjectID()
		mg.Exercises = append(mg.Exercises, ExerciseEntry{
			ExerciseID: ids[i],
			Sets:       3,
			Reps:       10,
			Order:      i + 1,
		})
	}
	return mg, ids
}

// assertDenseOrder checks the standing invariant: orders are exactly 1..N in
// physical order.
func assertDenseOrder(t *testing.T, mg *MuscleGroupEntry) {
	t.Helper()
	for i, ex := range mg.Exercises {
		assert.Equal(t, i+1, ex.Order, "exercise at index %d", i)
	}
}

func orderOf(mg *MuscleGroupEntry, id primitive.ObjectID) int {
	for _, ex := range mg.Exercises {
		if ex.ExerciseID == id {
			return ex.Order
		}
	}
	return 0
}

func TestInsertExercise(t *testing.T) {
	t.Run("insert in the middle shifts the tail", func(t *testing.T) {
		mg, ids := entryList(3)
		newID := primitive.NewObjectID()

		mg.InsertExercise(ExerciseEntry{ExerciseID: newID}, 2)

		require.Len(t, mg.Exercises, 4)
		assert.Equal(t, 2, orderOf(mg, newID))
		assert.Equal(t, 1, orderOf(mg, ids[0]))
		assert.Equal(t, 3, orderOf(mg, ids[1]))
		assert.Equal(t, 4, orderOf(mg, ids[2]))
		assertDenseOrder(t, mg)
	})

	t.Run("position past the end appends", func(t *testing.T) {
		mg, _ := entryList(3)
		newID := primitive.NewObjectID()

		mg.InsertExercise(ExerciseEntry{ExerciseID: newID}, 99)

		require.Len(t, mg.Exercises, 4)
		assert.Equal(t, 4, orderOf(mg, newID))
		assertDenseOrder(t, mg)
	})

	t.Run("position zero appends", func(t *testing.T) {
		mg, _ := entryList(2)
		newID := primitive.NewObjectID()

		mg.InsertExercise(ExerciseEntry{ExerciseID: newID}, 0)

		assert.Equal(t, 3, orderOf(mg, newID))
		assertDenseOrder(t, mg)
	})

	t.Run("insert into empty list", func(t *testing.T) {
		mg := &MuscleGroupEntry{}
		newID := primitive.NewObjectID()

		mg.InsertExercise(ExerciseEntry{ExerciseID: newID}, 5)

		require.Len(t, mg.Exercises, 1)
		assert.Equal(t, 1, mg.Exercises[0].Order)
	})
}

func TestRemoveExercise(t *testing.T) {
	t.Run("removal closes the gap", func(t *testing.T) {
		mg, ids := entryList(4)

		removed := mg.RemoveExercise(ids[1])

		assert.True(t, removed)
		require.Len(t, mg.Exercises, 3)
		assert.Equal(t, 1, orderOf(mg, ids[0]))
		assert.Equal(t, 2, orderOf(mg, ids[2]))
		assert.Equal(t, 3, orderOf(mg, ids[3]))
		assertDenseOrder(t, mg)
	})

	t.Run("unknown id is reported", func(t *testing.T) {
		mg, _ := entryList(2)

		removed := mg.RemoveExercise(primitive.NewObjectID())

		assert.False(t, removed)
		assert.Len(t, mg.Exercises, 2)
	})
}

func TestMoveExercise(t *testing.T) {
	t.Run("move to front", func(t *testing.T) {
		mg, ids := entryList(4)

		moved := mg.MoveExercise(ids[3], 1)

		assert.True(t, moved)
		assert.Equal(t, 1, orderOf(mg, ids[3]))
		assert.Equal(t, 2, orderOf(mg, ids[0]))
		assertDenseOrder(t, mg)
	})

	t.Run("target position clamps to list end", func(t *testing.T) {
		mg, ids := entryList(3)

		moved := mg.MoveExercise(ids[0], 50)

		assert.True(t, moved)
		assert.Equal(t, 3, orderOf(mg, ids[0]))
		assertDenseOrder(t, mg)
	})

	t.Run("unknown id leaves the list untouched", func(t *testing.T) {
		mg, ids := entryList(3)

		moved := mg.MoveExercise(primitive.NewObjectID(), 1)

		assert.False(t, moved)
		for i, id := range ids {
			assert.Equal(t, i+1, orderOf(mg, id))
		}
	})
}

func TestNormalizeExercises(t *testing.T) {
	t.Run("sorts by requested order and renumbers densely", func(t *testing.T) {
		a, b, c := primitive.NewObjectID(), primitive.NewObjectID(), primitive.NewObjectID()
		mg := &MuscleGroupEntry{Exercises: []ExerciseEntry{
			{ExerciseID: a, Order: 7},
			{ExerciseID: b, Order: 2},
			{ExerciseID: c, Order: 40},
		}}

		mg.NormalizeExercises()

		assert.Equal(t, b, mg.Exercises[0].ExerciseID)
		assert.Equal(t, a, mg.Exercises[1].ExerciseID)
		assert.Equal(t, c, mg.Exercises[2].ExerciseID)
		assertDenseOrder(t, mg)
	})

	t.Run("ties keep payload order", func(t *testing.T) {
		a, b := primitive.NewObjectID(), primitive.NewObjectID()
		mg := &MuscleGroupEntry{Exercises: []ExerciseEntry{
			{ExerciseID: a, Order: 1},
			{ExerciseID: b, Order: 1},
		}}

		mg.NormalizeExercises()

		assert.Equal(t, a, mg.Exercises[0].ExerciseID)
		assert.Equal(t, b, mg.Exercises[1].ExerciseID)
		assertDenseOrder(t, mg)
	})
}

func TestOrderInvariantUnderMixedEdits(t *testing.T) {
	mg, ids := entryList(5)

	mg.RemoveExercise(ids[2])
	mg.InsertExercise(ExerciseEntry{ExerciseID: primitive.NewObjectID()}, 2)
	mg.MoveExercise(ids[4], 1)
	mg.RemoveExercise(ids[0])
	mg.InsertExercise(ExerciseEntry{ExerciseID: primitive.NewObjectID()}, 100)

	require.Len(t, mg.Exercises, 5)
	assertDenseOrder(t, mg)
}
