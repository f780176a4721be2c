package db_models

import "time"

type TrainingPlan struct {
	BaseModel
	Name       string    `gorm:"not null" json:"name"`
	StartDate  time.Time `gorm:"type:date;not null" json:"start_date"`
	RaceDate   time.Time `gorm:"type:date;not null" json:"race_date"`
	TargetTime string    `json:"target_time"` // e.g. "4:00:00"
	TargetPace string    `json:"target_pace"` // e.g. "9:09/mi"
	Units      string    `gorm:"default:miles" json:"units"`

	Workouts []PlannedWorkout `gorm:"foreignKey:PlanID;constraint:OnDelete:CASCADE" json:"workouts,omitempty"`
}
