package entities

import "time"

// ExerciseCategory groups exercises by the lift they train
type ExerciseCategory string

// Exercise categories
const (
	CategoryBench     ExerciseCategory = "bench"
	CategorySquat     ExerciseCategory = "squat"
	CategoryOverhead  ExerciseCategory = "overhead"
	CategoryCardio    ExerciseCategory = "cardio"
	CategoryAccessory ExerciseCategory = "accessory"
)

// Exercise is one logged movement. Weighted lifts set Weight; cardio sets
// Time in seconds and optionally Distance in miles.
type Exercise struct {
	ID       string           `json:"id"`
	Name     string           `json:"name"`
	Category ExerciseCategory `json:"category"`
	StatType Stat             `json:"statType"`
	Muscle   string           `json:"muscle,omitempty"`
	Weight   float64          `json:"weight,omitempty"`
	Reps     int              `json:"reps,omitempty"`
	Sets     int              `json:"sets,omitempty"`
	Time     float64          `json:"time,omitempty"`
	Distance float64          `json:"distance,omitempty"`
}

// TimeBased reports whether lower values are better for this exercise
func (e Exercise) TimeBased() bool {
	return e.Category == CategoryCardio
}

// RecordValue is the value compared against the personal record
func (e Exercise) RecordValue() float64 {
	if e.TimeBased() && e.Time > 0 {
		return e.Time
	}
	return e.Weight
}

// WorkoutLog is an append-only entry in a character's history
type WorkoutLog struct {
	ID               string     `json:"id"`
	Date             time.Time  `json:"date"`
	Exercises        []Exercise `json:"exercises"`
	Completed        bool       `json:"completed"`
	DungeonCompleted bool       `json:"dungeonCompleted"`
}

// Clone returns a deep copy
func (w WorkoutLog) Clone() WorkoutLog {
	w.Exercises = append([]Exercise(nil), w.Exercises...)
	return w
}

// PersonalRecord is the best value seen for an exercise: max weight, or min
// time for cardio.
type PersonalRecord struct {
	ExerciseID string    `json:"exerciseId"`
	Value      float64   `json:"value"`
	Date       time.Time `json:"date"`
}
