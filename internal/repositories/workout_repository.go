package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"paceline/internal/models/db_models"
)

type WorkoutFilter struct {
	PlanID      *uuid.UUID
	Week        *int
	WorkoutType *string
	StartDate   *time.Time
	EndDate     *time.Time
}

type WorkoutRepository interface {
	Create(ctx context.Context, workout *db_models.PlannedWorkout) (uuid.UUID, error)
	Update(ctx context.Context, workout *db_models.PlannedWorkout) error
	Delete(ctx context.Context, id uuid.UUID) error

	GetByID(ctx context.Context, id uuid.UUID) (*db_models.PlannedWorkout, error)
	GetByIDWithDetails(ctx context.Context, id uuid.UUID) (*db_models.PlannedWorkout, error)
	List(ctx context.Context, filter WorkoutFilter) ([]db_models.PlannedWorkout, error)
	GetByPlanAndDate(ctx context.Context, planID uuid.UUID, date time.Time) (*db_models.PlannedWorkout, error)
	ListByWeek(ctx context.Context, planID uuid.UUID, week int) ([]db_models.PlannedWorkout, error)

	FindMatchForDate(ctx context.Context, planID uuid.UUID, date time.Time) (*db_models.PlannedWorkout, error)
	ListMissingWellness(ctx context.Context, planID uuid.UUID, start, end time.Time) ([]db_models.PlannedWorkout, error)
	UpdateWellness(ctx context.Context, id uuid.UUID, sleepHours *float64, hrv *int) error
}

type workoutRepository struct {
	db *gorm.DB
}

func NewWorkoutRepository(db *gorm.DB) WorkoutRepository {
	return &workoutRepository{db: db}
}

func (r *workoutRepository) Create(ctx context.Context, workout *db_models.PlannedWorkout) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(workout).Error; err != nil {
		return uuid.Nil, err
	}
	return workout.ID, nil
}

func (r *workoutRepository) Update(ctx context.Context, workout *db_models.PlannedWorkout) error {
	result := r.db.WithContext(ctx).Save(workout)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *workoutRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Delete(&db_models.PlannedWorkout{}, "id = ?", id).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

func (r *workoutRepository) GetByID(ctx context.Context, id uuid.UUID) (*db_models.PlannedWorkout, error) {
	var workout db_models.PlannedWorkout
	err := r.db.WithContext(ctx).First(&workout, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &workout, nil
}

func (r *workoutRepository) GetByIDWithDetails(ctx context.Context, id uuid.UUID) (*db_models.PlannedWorkout, error) {
	var workout db_models.PlannedWorkout
	err := r.db.WithContext(ctx).
		Preload("ActualRun.Splits").
		Preload("ActualRun.Weather").
		Preload("ActualRun").
		Preload("Note").
		First(&workout, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &workout, nil
}

func (r *workoutRepository) List(ctx context.Context, filter WorkoutFilter) ([]db_models.PlannedWorkout, error) {
	query := r.db.WithContext(ctx).
		Preload("ActualRun.Weather").
		Preload("ActualRun").
		Preload("Note")

	if filter.PlanID != nil {
		query = query.Where("plan_id = ?", *filter.PlanID)
	}
	if filter.Week != nil {
		query = query.Where("week = ?", *filter.Week)
	}
	if filter.WorkoutType != nil {
		query = query.Where("workout_type = ?", *filter.WorkoutType)
	}
	if filter.StartDate != nil {
		query = query.Where("date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("date <= ?", *filter.EndDate)
	}

	var workouts []db_models.PlannedWorkout
	if err := query.Order("date").Find(&workouts).Error; err != nil {
		return nil, err
	}
	return workouts, nil
}

func (r *workoutRepository) GetByPlanAndDate(ctx context.Context, planID uuid.UUID, date time.Time) (*db_models.PlannedWorkout, error) {
	var workout db_models.PlannedWorkout
	err := r.db.WithContext(ctx).
		Preload("ActualRun").
		Preload("Note").
		Where("plan_id = ? AND date = ?", planID, date).
		First(&workout).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &workout, nil
}

func (r *workoutRepository) ListByWeek(ctx context.Context, planID uuid.UUID, week int) ([]db_models.PlannedWorkout, error) {
	var workouts []db_models.PlannedWorkout
	err := r.db.WithContext(ctx).
		Preload("ActualRun").
		Preload("Note").
		Where("plan_id = ? AND week = ?", planID, week).
		Order("date").
		Find(&workouts).Error
	if err != nil {
		return nil, err
	}
	return workouts, nil
}

// FindMatchForDate returns the candidate workout for an activity date,
// excluding days that can never match a run. When several workouts share a
// date the earliest-created one wins, so repeated syncs pick the same row.
func (r *workoutRepository) FindMatchForDate(ctx context.Context, planID uuid.UUID, date time.Time) (*db_models.PlannedWorkout, error) {
	var workout db_models.PlannedWorkout
	err := r.db.WithContext(ctx).
		Preload("ActualRun").
		Where("plan_id = ? AND date = ?", planID, date).
		Where("workout_type NOT IN ?", db_models.NonRunningWorkoutTypes).
		Order("created_at, id").
		First(&workout).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &workout, nil
}

func (r *workoutRepository) ListMissingWellness(ctx context.Context, planID uuid.UUID, start, end time.Time) ([]db_models.PlannedWorkout, error) {
	var workouts []db_models.PlannedWorkout
	err := r.db.WithContext(ctx).
		Where("plan_id = ? AND date >= ? AND date <= ?", planID, start, end).
		Where("sleep_hours IS NULL OR hrv IS NULL").
		Order("date").
		Find(&workouts).Error
	if err != nil {
		return nil, err
	}
	return workouts, nil
}

// UpdateWellness writes only the provided fields, one commit per workout so
// partial progress survives an interrupted backfill.
func (r *workoutRepository) UpdateWellness(ctx context.Context, id uuid.UUID, sleepHours *float64, hrv *int) error {
	updates := map[string]interface{}{}
	if sleepHours != nil {
		updates["sleep_hours"] = *sleepHours
	}
	if hrv != nil {
		updates["hrv"] = *hrv
	}
	if len(updates) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Model(&db_models.PlannedWorkout{}).
		Where("id = ?", id).
		Updates(updates).Error
}
