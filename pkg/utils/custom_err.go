package utils

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidPlanDates   = errors.New("plan start date must be on or before race date")
	ErrPlanNotFound       = errors.New("training plan not found")
	ErrWorkoutNotFound    = errors.New("workout not found")
	ErrRunNotFound        = errors.New("run not found")
	ErrNoteNotFound       = errors.New("note not found")
	ErrNoteExists         = errors.New("note already exists for this workout")
	ErrWeatherExists      = errors.New("weather already exists for this run")
	ErrGarminNotConnected = errors.New("not connected to garmin")
	ErrDatabaseError      = errors.New("database error")
)
