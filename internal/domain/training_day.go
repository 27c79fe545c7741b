package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ExerciseEntry is one planned exercise inside a muscle group entry.
// Order is a derived display value: after every mutation of the surrounding
// exercise list it is reassigned densely 1..N (see ordering.go). It is never
// trusted as an independent sort key across mutations.
type ExerciseEntry struct {
	ExerciseID  primitive.ObjectID `bson:"exerciseId" json:"exerciseId"`
	Sets        int                `bson:"sets" json:"sets"`
	Reps        int                `bson:"reps" json:"reps"`
	RestSeconds int                `bson:"restSeconds" json:"restSeconds"`
	Order       int                `bson:"order" json:"order"`
}

// MuscleGroupEntry groups the planned exercises for one muscle group within a
// training day. It is owned by its TrainingDay and not independently
// addressable. Exercises within one entry reference distinct catalog
// exercises, each of which must belong to this muscle group.
type MuscleGroupEntry struct {
	MuscleGroupID primitive.ObjectID `bson:"muscleGroupId" json:"muscleGroupId"`
	Exercises     []ExerciseEntry    `bson:"exercises" json:"exercises"`
}

// TrainingDay is one day slot of a program's weekly schedule. DayNumber is
// unique within the program (1..trainingFrequency). Training days are created
// together with their program and deleted only by program cascade.
type TrainingDay struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ProgramID    primitive.ObjectID `bson:"programId" json:"programId"`
	DayNumber    int                `bson:"dayNumber" json:"dayNumber"`
	MuscleGroups []MuscleGroupEntry `bson:"muscleGroups" json:"muscleGroups"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// MuscleGroupEntry returns the entry referencing the given muscle group, or
// nil if the day does not train it.
func (d *TrainingDay) MuscleGroupEntry(muscleGroupID primitive.ObjectID) *MuscleGroupEntry {
	for i := range d.MuscleGroups {
		if d.MuscleGroups[i].MuscleGroupID == muscleGroupID {
			return &d.MuscleGroups[i]
		}
	}
	return nil
}

// HasMuscleGroup reports whether the day already trains the given muscle group.
func (d *TrainingDay) HasMuscleGroup(muscleGroupID primitive.ObjectID) bool {
	return d.MuscleGroupEntry(muscleGroupID) != nil
}

// RemoveMuscleGroup deletes the entry for the given muscle group together with
// all its exercises. It reports whether an entry was removed.
func (d *TrainingDay) RemoveMuscleGroup(muscleGroupID primitive.ObjectID) bool {
	for i := range d.MuscleGroups {
		if d.MuscleGroups[i].MuscleGroupID == muscleGroupID {
			d.MuscleGroups = append(d.MuscleGroups[:i], d.MuscleGroups[i+1:]...)
			return true
		}
	}
	return false
}

// PlansExercise reports whether the given exercise appears anywhere in the
// day's muscle group structure. Used to reject performance logs for exercises
// not scheduled on this day.
func (d *TrainingDay) PlansExercise(exerciseID primitive.ObjectID) bool {
	for i := range d.MuscleGroups {
		for _, ex := range d.MuscleGroups[i].Exercises {
			if ex.ExerciseID == exerciseID {
				return true
			}
		}
	}
	return false
}
