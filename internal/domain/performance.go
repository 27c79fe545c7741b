package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SetPerformance is one performed set. Volume is always weight * reps.
type SetPerformance struct {
	SetNumber int     `bson:"setNumber" json:"setNumber"`
	Weight    float64 `bson:"weight" json:"weight"` // kg, 0 for bodyweight
	Reps      int     `bson:"reps" json:"reps"`
	Volume    float64 `bson:"volume" json:"volume"`
}

// ExercisePerformance holds the performed sets of one exercise in a session.
// TotalVolume is the sum of the set volumes.
type ExercisePerformance struct {
	ExerciseID  primitive.ObjectID `bson:"exerciseId" json:"exerciseId"`
	Sets        []SetPerformance   `bson:"sets" json:"sets"`
	TotalVolume float64            `bson:"totalVolume" json:"totalVolume"`
}

// PerformanceEntry is one logged training session, unique per
// (userId, programId, trainingDayId, date). Re-logging the same key replaces
// PerformanceData, WeekNumber and DayTotalVolume in place rather than
// appending. Entries are deleted only by program cascade.
type PerformanceEntry struct {
	ID              primitive.ObjectID    `bson:"_id,omitempty" json:"id"`
	UserID          primitive.ObjectID    `bson:"userId" json:"userId"`
	ProgramID       primitive.ObjectID    `bson:"programId" json:"programId"`
	TrainingDayID   primitive.ObjectID    `bson:"trainingDayId" json:"trainingDayId"`
	Date            time.Time             `bson:"date" json:"date"`
	WeekNumber      int                   `bson:"weekNumber" json:"weekNumber"` // Derived, 1..program.Duration
	PerformanceData []ExercisePerformance `bson:"performanceData" json:"performanceData"`
	DayTotalVolume  float64               `bson:"dayTotalVolume" json:"dayTotalVolume"`
	CreatedAt       time.Time             `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time             `bson:"updatedAt" json:"updatedAt"`
}
