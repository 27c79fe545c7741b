package domain

import (
	"sort"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Ordered exercise list maintenance.
//
// The invariant: after every mutation the Order fields of a muscle group's
// exercises are exactly 1..N, dense and contiguous, in the list's current
// physical order. Order values supplied by callers only influence where an
// element lands; they are never stored as-is.

// renumber reassigns Order values 1..N in physical order.
func (mg *MuscleGroupEntry) renumber() {
	for i := range mg.Exercises {
		mg.Exercises[i].Order = i + 1
	}
}

// InsertExercise places entry at 1-based position pos when 1 <= pos <= len,
// otherwise appends it, then renumbers the list.
func (mg *MuscleGroupEntry) InsertExercise(entry ExerciseEntry, pos int) {
	idx := len(mg.Exercises)
	if pos >= 1 && pos <= len(mg.Exercises) {
		idx = pos - 1
	}
	mg.Exercises = append(mg.Exercises, ExerciseEntry{})
	copy(mg.Exercises[idx+1:], mg.Exercises[idx:])
	mg.Exercises[idx] = entry
	mg.renumber()
}

// RemoveExercise deletes the entry referencing exerciseID and renumbers the
// remainder. It reports whether an entry was removed.
func (mg *MuscleGroupEntry) RemoveExercise(exerciseID primitive.ObjectID) bool {
	for i := range mg.Exercises {
		if mg.Exercises[i].ExerciseID == exerciseID {
			mg.Exercises = append(mg.Exercises[:i], mg.Exercises[i+1:]...)
			mg.renumber()
			return true
		}
	}
	return false
}

// MoveExercise relocates the entry referencing exerciseID to the 1-based
// position pos, clamped to the valid range of the list excluding the moved
// entry, then renumbers. It reports whether the entry was found.
func (mg *MuscleGroupEntry) MoveExercise(exerciseID primitive.ObjectID, pos int) bool {
	from := -1
	for i := range mg.Exercises {
		if mg.Exercises[i].ExerciseID == exerciseID {
			from = i
			break
		}
	}
	if from == -1 {
		return false
	}
	entry := mg.Exercises[from]
	mg.Exercises = append(mg.Exercises[:from], mg.Exercises[from+1:]...)

	to := pos - 1
	if to < 0 {
		to = 0
	}
	if to > len(mg.Exercises) {
		to = len(mg.Exercises)
	}
	mg.Exercises = append(mg.Exercises, ExerciseEntry{})
	copy(mg.Exercises[to+1:], mg.Exercises[to:])
	mg.Exercises[to] = entry
	mg.renumber()
	return true
}

// NormalizeExercises orders a caller-supplied exercise list by its requested
// Order values (stable, so ties keep payload order) and then renumbers.
// Used for bulk payloads where the whole list is replaced at once.
func (mg *MuscleGroupEntry) NormalizeExercises() {
	sort.SliceStable(mg.Exercises, func(i, j int) bool {
		return mg.Exercises[i].Order < mg.Exercises[j].Order
	})
	mg.renumber()
}
