package request_models

type CreateWorkoutRequest struct {
	PlanID         string   `json:"plan_id" binding:"required"`
	Week           int      `json:"week" binding:"required"`
	DayOfWeek      string   `json:"day_of_week" binding:"required"`
	Date           string   `json:"date" binding:"required"` // YYYY-MM-DD
	WorkoutType    string   `json:"workout_type" binding:"required"`
	TargetDistance *float64 `json:"target_distance"`
	TargetPace     string   `json:"target_pace"`
	Description    string   `json:"description"`
	Fueling        string   `json:"fueling"`
}

type UpdateWorkoutRequest struct {
	Week           *int     `json:"week"`
	DayOfWeek      *string  `json:"day_of_week"`
	Date           *string  `json:"date"`
	WorkoutType    *string  `json:"workout_type"`
	TargetDistance *float64 `json:"target_distance"`
	TargetPace     *string  `json:"target_pace"`
	Description    *string  `json:"description"`
	Fueling        *string  `json:"fueling"`
	SleepHours     *float64 `json:"sleep_hours"`
	HRV            *int     `json:"hrv"`
}
