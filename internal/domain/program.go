package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SplitType describes which muscle group category a program trains on day 1.
// Days alternate strictly from there.
type SplitType string

const (
	SplitUpper SplitType = "UPPER"
	SplitLower SplitType = "LOWER"
)

// Opposite returns the other split category.
func (s SplitType) Opposite() SplitType {
	if s == SplitUpper {
		return SplitLower
	}
	return SplitUpper
}

// ProgramStatus is the soft lifecycle of a program.
type ProgramStatus string

const (
	ProgramActive    ProgramStatus = "active"
	ProgramCompleted ProgramStatus = "completed"
	ProgramArchived  ProgramStatus = "archived"
)

// WorkoutProgram is the root aggregate of a multi-week training plan.
// TrainingFrequency, SplitType, Duration and StartDate are fixed at creation;
// only Name and Status are mutable afterwards.
type WorkoutProgram struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID            primitive.ObjectID `bson:"userId" json:"userId"`
	Name              string             `bson:"name" json:"name"`
	TrainingFrequency int                `bson:"trainingFrequency" json:"trainingFrequency"` // 3-6 days/week
	SplitType         SplitType          `bson:"splitType" json:"splitType"`
	Duration          int                `bson:"duration" json:"duration"` // 4-12 weeks
	Status            ProgramStatus      `bson:"status" json:"status"`
	StartDate         time.Time          `bson:"startDate" json:"startDate"`
	CreatedAt         time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// DayCategory returns the split category trained on the given day number
// (1-based): day 1 matches the program's split type, day 2 the opposite, etc.
func (p *WorkoutProgram) DayCategory(dayNumber int) SplitType {
	if dayNumber%2 == 1 {
		return p.SplitType
	}
	return p.SplitType.Opposite()
}
