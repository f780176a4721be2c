package request_models

import "encoding/json"

type CreateNoteRequest struct {
	PlannedWorkoutID string          `json:"planned_workout_id" binding:"required"`
	Content          string          `json:"content"`
	MoodRating       *int            `json:"mood_rating"`
	EffortRating     *int            `json:"effort_rating"`
	Audio            string          `json:"audio"`
	Tags             json.RawMessage `json:"tags"`
	FuelingLog       json.RawMessage `json:"fueling_log"`
}

type UpdateNoteRequest struct {
	Content      *string         `json:"content"`
	MoodRating   *int            `json:"mood_rating"`
	EffortRating *int            `json:"effort_rating"`
	Audio        *string         `json:"audio"`
	Tags         json.RawMessage `json:"tags"`
	FuelingLog   json.RawMessage `json:"fueling_log"`
}
