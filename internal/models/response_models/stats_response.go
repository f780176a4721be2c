package response_models

type TrainingSummary struct {
	PlanName          string  `json:"plan_name"`
	RaceDate          string  `json:"race_date"`
	DaysUntilRace     int     `json:"days_until_race"`
	CurrentWeek       int     `json:"current_week"`
	TotalWorkouts     int64   `json:"total_workouts"`
	RunWorkouts       int64   `json:"run_workouts"`
	CompletedRuns     int64   `json:"completed_runs"`
	CompletionRate    float64 `json:"completion_rate"`
	TotalPlannedMiles float64 `json:"total_planned_miles"`
	TotalActualMiles  float64 `json:"total_actual_miles"`
	MilesRemaining    float64 `json:"miles_remaining"`
}

type WeeklyStats struct {
	Week          int     `json:"week"`
	PlannedMiles  float64 `json:"planned_miles"`
	ActualMiles   float64 `json:"actual_miles"`
	TotalRuns     int64   `json:"total_runs"`
	CompletedRuns int64   `json:"completed_runs"`
}

type PaceTrendPoint struct {
	Date        string  `json:"date,omitempty"`
	Pace        string  `json:"pace"`
	PaceSeconds int     `json:"pace_seconds"`
	Distance    float64 `json:"distance"`
	WorkoutType string  `json:"workout_type,omitempty"`
}

type Countdown struct {
	RaceDate      string `json:"race_date"`
	RaceName      string `json:"race_name"`
	DaysLeft      int    `json:"days_left"`
	WeeksLeft     int    `json:"weeks_left"`
	DaysRemainder int    `json:"days_remainder"`
	TargetPace    string `json:"target_pace"`
	TargetTime    string `json:"target_time"`
}
