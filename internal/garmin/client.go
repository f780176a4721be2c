package garmin

import (
	"context"
	"encoding/json"
	"time"
)

// Activity is one recorded session as reported by Garmin Connect. Fields are
// lifted from the provider payload; Raw keeps the full payload untouched for
// storage.
type Activity struct {
	ID              int64
	TypeKey         string // e.g. "running", "treadmill_running", "cycling"
	DistanceMeters  float64
	DurationSeconds float64
	AvgHR           *int
	MaxHR           *int
	ElevationGain   *float64 // meters
	Cadence         *int
	Calories        *int
	StartLat        *float64
	StartLon        *float64
	StartTimeLocal  string

	Raw json.RawMessage
}

type SleepSummary struct {
	TotalSleepSeconds int
}

type HRVSummary struct {
	LastNightAvg int
}

// Client is the capability the reconciliation engine needs from the fitness
// platform. Sleep and HRV lookups return (nil, nil) when the provider has no
// reading for the date.
type Client interface {
	// Configured reports whether the client carries credentials; an
	// unconfigured client makes the whole sync a hard failure.
	Configured() bool
	ActivitiesByDate(ctx context.Context, start, end time.Time) ([]Activity, error)
	SleepSummary(ctx context.Context, date time.Time) (*SleepSummary, error)
	HRVSummary(ctx context.Context, date time.Time) (*HRVSummary, error)
}
