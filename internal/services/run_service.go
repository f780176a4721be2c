package services

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"paceline/internal/models/db_models"
	"paceline/internal/models/request_models"
	"paceline/internal/repositories"
	"paceline/pkg/utils"
)

type RunServiceInterface interface {
	ListRuns(ctx context.Context, limit, offset int) ([]db_models.ActualRun, error)
	CreateRun(ctx context.Context, req request_models.CreateRunRequest) (*db_models.ActualRun, error)
	GetRun(ctx context.Context, runID uuid.UUID) (*db_models.ActualRun, error)
	DeleteRun(ctx context.Context, runID uuid.UUID) error
	AddSplit(ctx context.Context, runID uuid.UUID, req request_models.CreateSplitRequest) (*db_models.RunSplit, error)
	AddWeather(ctx context.Context, runID uuid.UUID, req request_models.CreateWeatherRequest) (*db_models.RunWeather, error)
	LinkToWorkout(ctx context.Context, runID, workoutID uuid.UUID) (*db_models.ActualRun, error)
}

type RunService struct {
	runRepo     repositories.RunRepository
	workoutRepo repositories.WorkoutRepository
}

func NewRunService(runRepo repositories.RunRepository, workoutRepo repositories.WorkoutRepository) RunServiceInterface {
	return &RunService{runRepo: runRepo, workoutRepo: workoutRepo}
}

func (r *RunService) ListRuns(ctx context.Context, limit, offset int) ([]db_models.ActualRun, error) {
	runs, err := r.runRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return runs, nil
}

func (r *RunService) CreateRun(ctx context.Context, req request_models.CreateRunRequest) (*db_models.ActualRun, error) {
	run := &db_models.ActualRun{
		GarminActivityID:        req.GarminActivityID,
		Distance:                req.Distance,
		DurationSeconds:         req.DurationSeconds,
		Pace:                    req.Pace,
		PaceSeconds:             req.PaceSeconds,
		AvgHR:                   req.AvgHR,
		MaxHR:                   req.MaxHR,
		ElevationGain:           req.ElevationGain,
		Cadence:                 req.Cadence,
		Calories:                req.Calories,
		TrainingEffectAerobic:   req.TrainingEffectAerobic,
		TrainingEffectAnaerobic: req.TrainingEffectAnaerobic,
		VO2Max:                  req.VO2Max,
		StartLat:                req.StartLat,
		StartLon:                req.StartLon,
	}
	if req.PlannedWorkoutID != nil {
		workoutID, err := uuid.Parse(*req.PlannedWorkoutID)
		if err != nil {
			return nil, utils.ErrInvalidInput
		}
		run.PlannedWorkoutID = &workoutID
	}
	if len(req.HRZones) > 0 {
		run.HRZones = datatypes.JSON(req.HRZones)
	}
	if req.StartedAt != nil {
		run.StartedAt = utils.ParseGarminTimestamp(*req.StartedAt)
	}
	// Manual entries often omit the rendered pace.
	if run.Pace == "" {
		run.Pace, run.PaceSeconds = utils.PaceForRun(run.Distance, run.DurationSeconds)
	}

	if _, err := r.runRepo.Create(ctx, run); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return run, nil
}

func (r *RunService) GetRun(ctx context.Context, runID uuid.UUID) (*db_models.ActualRun, error) {
	run, err := r.runRepo.GetByID(ctx, runID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if run == nil {
		return nil, utils.ErrRunNotFound
	}
	return run, nil
}

func (r *RunService) DeleteRun(ctx context.Context, runID uuid.UUID) error {
	run, err := r.runRepo.GetByID(ctx, runID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if run == nil {
		return utils.ErrRunNotFound
	}
	if err := r.runRepo.Delete(ctx, runID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (r *RunService) AddSplit(ctx context.Context, runID uuid.UUID, req request_models.CreateSplitRequest) (*db_models.RunSplit, error) {
	run, err := r.runRepo.GetByID(ctx, runID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if run == nil {
		return nil, utils.ErrRunNotFound
	}

	split := &db_models.RunSplit{
		RunID:           runID,
		SplitNumber:     req.SplitNumber,
		Distance:        req.Distance,
		DurationSeconds: req.DurationSeconds,
		Pace:            req.Pace,
		PaceSeconds:     req.PaceSeconds,
		AvgHR:           req.AvgHR,
		ElevationGain:   req.ElevationGain,
		Cadence:         req.Cadence,
	}
	if split.Pace == "" {
		split.Pace, split.PaceSeconds = utils.PaceForRun(split.Distance, split.DurationSeconds)
	}
	if _, err := r.runRepo.AddSplit(ctx, split); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return split, nil
}

func (r *RunService) AddWeather(ctx context.Context, runID uuid.UUID, req request_models.CreateWeatherRequest) (*db_models.RunWeather, error) {
	run, err := r.runRepo.GetByID(ctx, runID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if run == nil {
		return nil, utils.ErrRunNotFound
	}

	weather := &db_models.RunWeather{
		RunID:         runID,
		Temperature:   req.Temperature,
		FeelsLike:     req.FeelsLike,
		Humidity:      req.Humidity,
		WindSpeed:     req.WindSpeed,
		WindDirection: req.WindDirection,
		Conditions:    req.Conditions,
		Precipitation: req.Precipitation,
	}
	if err := r.runRepo.CreateWeather(ctx, weather); err != nil {
		if err == utils.ErrWeatherExists {
			return nil, err
		}
		return nil, utils.ErrDatabaseError
	}
	return weather, nil
}

func (r *RunService) LinkToWorkout(ctx context.Context, runID, workoutID uuid.UUID) (*db_models.ActualRun, error) {
	run, err := r.runRepo.GetByID(ctx, runID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if run == nil {
		return nil, utils.ErrRunNotFound
	}
	workout, err := r.workoutRepo.GetByID(ctx, workoutID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if workout == nil {
		return nil, utils.ErrWorkoutNotFound
	}

	if err := r.runRepo.LinkToWorkout(ctx, runID, workoutID); err != nil {
		return nil, utils.ErrDatabaseError
	}
	run.PlannedWorkoutID = &workoutID
	return run, nil
}
