package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WeekDayStats describes one completed session inside a week summary.
type WeekDayStats struct {
	TrainingDayID primitive.ObjectID    `json:"trainingDayId"`
	CompletedDate time.Time             `json:"completedDate"`
	Volume        float64               `json:"volume"`
	Exercises     []ExercisePerformance `json:"exercises"`
}

// WeekSummary is a computed, transient view over the performance entries of
// one program week. It is never persisted; every request recomputes it, so
// there is no cache to invalidate. No bson tags on purpose.
type WeekSummary struct {
	Week            int                `json:"week"`
	StartDate       time.Time          `json:"startDate"`
	EndDate         time.Time          `json:"endDate"`
	TotalVolume     float64            `json:"totalVolume"`
	ExerciseVolumes map[string]float64 `json:"exerciseVolumes"` // exercise id hex -> volume that week
	// VolumeProgression is the rounded percentage change vs the previous
	// week. Nil for week 1, and nil when the previous week had zero volume
	// but this week does not (no meaningful percentage from a zero base).
	VolumeProgression *int           `json:"volumeProgression"`
	CompletedDays     int            `json:"completedDays"`
	DayStats          []WeekDayStats `json:"dayStats"`
}

// ExerciseWeekVolume is one point of an exercise's week-by-week progression.
type ExerciseWeekVolume struct {
	Week   int     `json:"week"`
	Volume float64 `json:"volume"`
}
