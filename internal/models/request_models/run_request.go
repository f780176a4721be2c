package request_models

import "encoding/json"

// CreateRunRequest covers manual entry; synced runs come from the engine.
type CreateRunRequest struct {
	PlannedWorkoutID *string `json:"planned_workout_id"`
	GarminActivityID *string `json:"garmin_activity_id"`

	Distance        float64 `json:"distance" binding:"required"`
	DurationSeconds int     `json:"duration_seconds" binding:"required"`
	Pace            string  `json:"pace"`
	PaceSeconds     int     `json:"pace_seconds"`

	AvgHR   *int            `json:"avg_hr"`
	MaxHR   *int            `json:"max_hr"`
	HRZones json.RawMessage `json:"hr_zones"`

	ElevationGain           *float64 `json:"elevation_gain"`
	Cadence                 *int     `json:"cadence"`
	Calories                *int     `json:"calories"`
	TrainingEffectAerobic   *float64 `json:"training_effect_aerobic"`
	TrainingEffectAnaerobic *float64 `json:"training_effect_anaerobic"`
	VO2Max                  *float64 `json:"vo2max"`

	StartLat  *float64 `json:"start_lat"`
	StartLon  *float64 `json:"start_lon"`
	StartedAt *string  `json:"started_at"`
}

type CreateSplitRequest struct {
	SplitNumber     int      `json:"split_number" binding:"required"`
	Distance        float64  `json:"distance"`
	DurationSeconds int      `json:"duration_seconds"`
	Pace            string   `json:"pace"`
	PaceSeconds     int      `json:"pace_seconds"`
	AvgHR           *int     `json:"avg_hr"`
	ElevationGain   *float64 `json:"elevation_gain"`
	Cadence         *int     `json:"cadence"`
}

type CreateWeatherRequest struct {
	Temperature   *float64 `json:"temperature"`
	FeelsLike     *float64 `json:"feels_like"`
	Humidity      *int     `json:"humidity"`
	WindSpeed     *float64 `json:"wind_speed"`
	WindDirection string   `json:"wind_direction"`
	Conditions    string   `json:"conditions"`
	Precipitation *float64 `json:"precipitation"`
}
