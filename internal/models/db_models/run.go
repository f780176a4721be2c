package db_models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ActualRun is one reconciled external activity or a manual entry. The
// Garmin activity id is the dedup key across repeated syncs; an unmatched
// run keeps a nil PlannedWorkoutID and can be linked later.
type ActualRun struct {
	BaseModel
	PlannedWorkoutID *uuid.UUID `gorm:"type:uuid;uniqueIndex" json:"planned_workout_id"`
	GarminActivityID *string    `gorm:"uniqueIndex" json:"garmin_activity_id"`

	Distance        float64 `json:"distance"` // miles
	DurationSeconds int     `json:"duration_seconds"`
	Pace            string  `json:"pace"` // "10:02/mi"
	PaceSeconds     int     `json:"pace_seconds"`

	AvgHR   *int           `json:"avg_hr"`
	MaxHR   *int           `json:"max_hr"`
	HRZones datatypes.JSON `json:"hr_zones"` // {"zone1": 120, ...} seconds per zone

	ElevationGain           *float64 `json:"elevation_gain"` // feet
	Cadence                 *int     `json:"cadence"`        // steps per minute
	Calories                *int     `json:"calories"`
	TrainingEffectAerobic   *float64 `json:"training_effect_aerobic"`
	TrainingEffectAnaerobic *float64 `json:"training_effect_anaerobic"`
	VO2Max                  *float64 `json:"vo2max"`

	StartLat *float64 `json:"start_lat"`
	StartLon *float64 `json:"start_lon"`

	StartedAt *time.Time `gorm:"index" json:"started_at"`

	// Original provider payload, kept opaque for reprocessing.
	RawData datatypes.JSON `json:"raw_data,omitempty"`

	Splits  []RunSplit  `gorm:"foreignKey:RunID;constraint:OnDelete:CASCADE" json:"splits,omitempty"`
	Weather *RunWeather `gorm:"foreignKey:RunID;constraint:OnDelete:CASCADE" json:"weather,omitempty"`
}

type RunSplit struct {
	BaseModel
	RunID uuid.UUID `gorm:"type:uuid;not null;index" json:"run_id"`

	SplitNumber     int      `gorm:"not null" json:"split_number"`
	Distance        float64  `json:"distance"` // miles, usually 1.0
	DurationSeconds int      `json:"duration_seconds"`
	Pace            string   `json:"pace"`
	PaceSeconds     int      `json:"pace_seconds"`
	AvgHR           *int     `json:"avg_hr"`
	ElevationGain   *float64 `json:"elevation_gain"`
	Cadence         *int     `json:"cadence"`
}

// RunWeather is derived data, written once by enrichment and never edited.
type RunWeather struct {
	BaseModel
	RunID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"run_id"`

	Temperature   *float64 `json:"temperature"` // Fahrenheit
	FeelsLike     *float64 `json:"feels_like"`
	Humidity      *int     `json:"humidity"` // percent
	WindSpeed     *float64 `json:"wind_speed"`
	WindDirection string   `json:"wind_direction"`
	Conditions    string   `json:"conditions"`
	Precipitation *float64 `json:"precipitation"` // inches
}
