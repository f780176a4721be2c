package db_models

import (
	"time"

	"github.com/google/uuid"
)

// NonRunningWorkoutTypes are scheduled days that can never match a recorded
// activity.
var NonRunningWorkoutTypes = []string{"Rest", "Mobility"}

type PlannedWorkout struct {
	BaseModel
	PlanID uuid.UUID `gorm:"type:uuid;not null;index" json:"plan_id"`

	Week      int       `gorm:"not null" json:"week"`
	DayOfWeek string    `gorm:"not null" json:"day_of_week"` // Mon, Tue, ...
	Date      time.Time `gorm:"type:date;not null;index" json:"date"`

	WorkoutType    string   `gorm:"not null" json:"workout_type"` // Easy Run, Long Run, Rest, ...
	TargetDistance *float64 `json:"target_distance"`              // miles
	TargetPace     string   `json:"target_pace"`
	Description    string   `gorm:"type:text" json:"description"`
	Fueling        string   `json:"fueling"`

	// Night-before readings, backfilled from Garmin once when absent.
	SleepHours *float64 `json:"sleep_hours"`
	HRV        *int     `json:"hrv"` // milliseconds

	ActualRun *ActualRun `gorm:"foreignKey:PlannedWorkoutID" json:"actual_run,omitempty"`
	Note      *RunNote   `gorm:"foreignKey:PlannedWorkoutID" json:"note,omitempty"`
}
