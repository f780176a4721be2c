package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type RunNote struct {
	BaseModel
	PlannedWorkoutID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"planned_workout_id"`

	Content      string `gorm:"type:text" json:"content"` // markdown
	MoodRating   *int   `json:"mood_rating"`              // 1-5
	EffortRating *int   `json:"effort_rating"`            // 1-10 RPE
	Audio        string `json:"audio"`                    // music, audiobook, conversation, none

	Tags       datatypes.JSON `json:"tags"`
	FuelingLog datatypes.JSON `json:"fueling_log"` // [{"type":"gel","time":"30:00","brand":"GU"}]
}
