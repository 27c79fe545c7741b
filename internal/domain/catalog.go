package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MuscleGroupName enumerates the fixed muscle group catalog.
type MuscleGroupName string

const (
	MuscleGroupChest           MuscleGroupName = "CHEST"
	MuscleGroupBack            MuscleGroupName = "BACK"
	MuscleGroupShoulders       MuscleGroupName = "SHOULDERS"
	MuscleGroupBiceps          MuscleGroupName = "BICEPS"
	MuscleGroupTriceps         MuscleGroupName = "TRICEPS"
	MuscleGroupQuadriceps      MuscleGroupName = "QUADRICEPS"
	MuscleGroupGlutesHamstring MuscleGroupName = "GLUTES_HAMSTRINGS"
	MuscleGroupCalves          MuscleGroupName = "CALVES"
	MuscleGroupAbs             MuscleGroupName = "ABS"
	MuscleGroupOther           MuscleGroupName = "OTHER"
)

// MuscleGroup is shared reference data: global, read-only for the application,
// mutated only by the seeder.
type MuscleGroup struct {
	ID        primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Name      MuscleGroupName      `bson:"name" json:"name"` // Unique
	Exercises []primitive.ObjectID `bson:"exercises" json:"exercises"` // All exercises belonging to this group
	CreatedAt time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time            `bson:"updatedAt" json:"updatedAt"`
}

// Exercise is a catalog exercise definition. Like MuscleGroup it is shared,
// read-only reference data.
type Exercise struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name          string             `bson:"name" json:"name"`
	MuscleGroupID primitive.ObjectID `bson:"muscleGroupId" json:"muscleGroupId"`
	Equipment     string             `bson:"equipment,omitempty" json:"equipment,omitempty"` // e.g. barbell, dumbbell, machine, bodyweight
	Difficulty    string             `bson:"difficulty,omitempty" json:"difficulty,omitempty"` // beginner | intermediate | advanced
	VideoKey      string             `bson:"videoKey,omitempty" json:"-"` // S3 object key of the demo video, if any
	Description   string             `bson:"description,omitempty" json:"description,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}
