package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"paceline/internal/models/db_models"
	"paceline/internal/models/request_models"
	"paceline/internal/repositories"
	"paceline/pkg/utils"
)

type WorkoutServiceInterface interface {
	ListWorkouts(ctx context.Context, filter repositories.WorkoutFilter) ([]db_models.PlannedWorkout, error)
	CreateWorkout(ctx context.Context, req request_models.CreateWorkoutRequest) (*db_models.PlannedWorkout, error)
	GetWorkout(ctx context.Context, workoutID uuid.UUID) (*db_models.PlannedWorkout, error)
	UpdateWorkout(ctx context.Context, workoutID uuid.UUID, req request_models.UpdateWorkoutRequest) (*db_models.PlannedWorkout, error)
	DeleteWorkout(ctx context.Context, workoutID uuid.UUID) error
	GetTodaysWorkout(ctx context.Context, planID uuid.UUID) (*db_models.PlannedWorkout, error)
	GetWeekWorkouts(ctx context.Context, planID uuid.UUID, week int) ([]db_models.PlannedWorkout, error)
}

type WorkoutService struct {
	workoutRepo repositories.WorkoutRepository
	planRepo    repositories.PlanRepository
}

func NewWorkoutService(workoutRepo repositories.WorkoutRepository, planRepo repositories.PlanRepository) WorkoutServiceInterface {
	return &WorkoutService{workoutRepo: workoutRepo, planRepo: planRepo}
}

func (w *WorkoutService) ListWorkouts(ctx context.Context, filter repositories.WorkoutFilter) ([]db_models.PlannedWorkout, error) {
	workouts, err := w.workoutRepo.List(ctx, filter)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return workouts, nil
}

func (w *WorkoutService) CreateWorkout(ctx context.Context, req request_models.CreateWorkoutRequest) (*db_models.PlannedWorkout, error) {
	planID, err := uuid.Parse(req.PlanID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	date, err := utils.ParseDateOnly(req.Date)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	plan, err := w.planRepo.GetByID(ctx, planID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if plan == nil {
		return nil, utils.ErrPlanNotFound
	}

	workout := &db_models.PlannedWorkout{
		PlanID:         planID,
		Week:           req.Week,
		DayOfWeek:      req.DayOfWeek,
		Date:           date,
		WorkoutType:    req.WorkoutType,
		TargetDistance: req.TargetDistance,
		TargetPace:     req.TargetPace,
		Description:    req.Description,
		Fueling:        req.Fueling,
	}
	if _, err := w.workoutRepo.Create(ctx, workout); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return workout, nil
}

func (w *WorkoutService) GetWorkout(ctx context.Context, workoutID uuid.UUID) (*db_models.PlannedWorkout, error) {
	workout, err := w.workoutRepo.GetByIDWithDetails(ctx, workoutID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if workout == nil {
		return nil, utils.ErrWorkoutNotFound
	}
	return workout, nil
}

func (w *WorkoutService) UpdateWorkout(ctx context.Context, workoutID uuid.UUID, req request_models.UpdateWorkoutRequest) (*db_models.PlannedWorkout, error) {
	workout, err := w.workoutRepo.GetByID(ctx, workoutID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if workout == nil {
		return nil, utils.ErrWorkoutNotFound
	}

	if req.Week != nil {
		workout.Week = *req.Week
	}
	if req.DayOfWeek != nil {
		workout.DayOfWeek = *req.DayOfWeek
	}
	if req.Date != nil {
		date, err := utils.ParseDateOnly(*req.Date)
		if err != nil {
			return nil, utils.ErrInvalidInput
		}
		workout.Date = date
	}
	if req.WorkoutType != nil {
		workout.WorkoutType = *req.WorkoutType
	}
	if req.TargetDistance != nil {
		workout.TargetDistance = req.TargetDistance
	}
	if req.TargetPace != nil {
		workout.TargetPace = *req.TargetPace
	}
	if req.Description != nil {
		workout.Description = *req.Description
	}
	if req.Fueling != nil {
		workout.Fueling = *req.Fueling
	}
	if req.SleepHours != nil {
		workout.SleepHours = req.SleepHours
	}
	if req.HRV != nil {
		workout.HRV = req.HRV
	}

	if err := w.workoutRepo.Update(ctx, workout); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return workout, nil
}

func (w *WorkoutService) DeleteWorkout(ctx context.Context, workoutID uuid.UUID) error {
	workout, err := w.workoutRepo.GetByID(ctx, workoutID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if workout == nil {
		return utils.ErrWorkoutNotFound
	}
	if err := w.workoutRepo.Delete(ctx, workoutID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (w *WorkoutService) GetTodaysWorkout(ctx context.Context, planID uuid.UUID) (*db_models.PlannedWorkout, error) {
	today := utils.Midnight(time.Now())
	workout, err := w.workoutRepo.GetByPlanAndDate(ctx, planID, today)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return workout, nil
}

func (w *WorkoutService) GetWeekWorkouts(ctx context.Context, planID uuid.UUID, week int) ([]db_models.PlannedWorkout, error) {
	workouts, err := w.workoutRepo.ListByWeek(ctx, planID, week)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return workouts, nil
}
