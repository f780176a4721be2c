package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"paceline/internal/models/db_models"
)

// PaceTrendRow is one synced run with the workout type it satisfied.
type PaceTrendRow struct {
	StartedAt   *time.Time
	Pace        string
	PaceSeconds int
	Distance    float64
	WorkoutType string
}

type WeekTotals struct {
	PlannedMiles  float64
	ActualMiles   float64
	TotalRuns     int64
	CompletedRuns int64
}

type StatsRepository interface {
	CountWorkouts(ctx context.Context, planID uuid.UUID) (int64, error)
	CountRunWorkouts(ctx context.Context, planID uuid.UUID) (int64, error)
	CountCompletedRuns(ctx context.Context, planID uuid.UUID) (int64, error)
	SumPlannedMiles(ctx context.Context, planID uuid.UUID) (float64, error)
	SumActualMiles(ctx context.Context, planID uuid.UUID) (float64, error)
	MaxWeek(ctx context.Context, planID uuid.UUID) (int, error)
	WeekTotals(ctx context.Context, planID uuid.UUID, week int) (WeekTotals, error)
	PaceTrend(ctx context.Context, planID uuid.UUID) ([]PaceTrendRow, error)
	HRZonePayloads(ctx context.Context, planID uuid.UUID) ([][]byte, error)
}

type statsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) workouts(ctx context.Context, planID uuid.UUID) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&db_models.PlannedWorkout{}).
		Where("plan_id = ?", planID)
}

// completedRuns joins runs onto the plan's workouts. Soft-deleted workouts
// are filtered explicitly because gorm only scopes the primary model.
func (r *statsRepository) completedRuns(ctx context.Context, planID uuid.UUID) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&db_models.ActualRun{}).
		Joins("JOIN planned_workouts ON planned_workouts.id = actual_runs.planned_workout_id").
		Where("planned_workouts.plan_id = ? AND planned_workouts.deleted_at IS NULL", planID)
}

func (r *statsRepository) CountWorkouts(ctx context.Context, planID uuid.UUID) (int64, error) {
	var count int64
	err := r.workouts(ctx, planID).Count(&count).Error
	return count, err
}

func (r *statsRepository) CountRunWorkouts(ctx context.Context, planID uuid.UUID) (int64, error) {
	var count int64
	err := r.workouts(ctx, planID).
		Where("workout_type NOT IN ?", db_models.NonRunningWorkoutTypes).
		Count(&count).Error
	return count, err
}

func (r *statsRepository) CountCompletedRuns(ctx context.Context, planID uuid.UUID) (int64, error) {
	var count int64
	err := r.completedRuns(ctx, planID).Count(&count).Error
	return count, err
}

func (r *statsRepository) SumPlannedMiles(ctx context.Context, planID uuid.UUID) (float64, error) {
	var total *float64
	err := r.workouts(ctx, planID).
		Select("SUM(target_distance)").
		Scan(&total).Error
	if err != nil || total == nil {
		return 0, err
	}
	return *total, nil
}

func (r *statsRepository) SumActualMiles(ctx context.Context, planID uuid.UUID) (float64, error) {
	var total *float64
	err := r.completedRuns(ctx, planID).
		Select("SUM(actual_runs.distance)").
		Scan(&total).Error
	if err != nil || total == nil {
		return 0, err
	}
	return *total, nil
}

func (r *statsRepository) MaxWeek(ctx context.Context, planID uuid.UUID) (int, error) {
	var week *int
	err := r.workouts(ctx, planID).
		Select("MAX(week)").
		Scan(&week).Error
	if err != nil || week == nil {
		return 0, err
	}
	return *week, nil
}

func (r *statsRepository) WeekTotals(ctx context.Context, planID uuid.UUID, week int) (WeekTotals, error) {
	var totals WeekTotals

	var planned *float64
	if err := r.workouts(ctx, planID).
		Where("week = ?", week).
		Select("SUM(target_distance)").
		Scan(&planned).Error; err != nil {
		return totals, err
	}
	if planned != nil {
		totals.PlannedMiles = *planned
	}

	var actual *float64
	if err := r.completedRuns(ctx, planID).
		Where("planned_workouts.week = ?", week).
		Select("SUM(actual_runs.distance)").
		Scan(&actual).Error; err != nil {
		return totals, err
	}
	if actual != nil {
		totals.ActualMiles = *actual
	}

	if err := r.workouts(ctx, planID).
		Where("week = ?", week).
		Where("workout_type NOT IN ?", db_models.NonRunningWorkoutTypes).
		Count(&totals.TotalRuns).Error; err != nil {
		return totals, err
	}

	err := r.completedRuns(ctx, planID).
		Where("planned_workouts.week = ?", week).
		Count(&totals.CompletedRuns).Error
	return totals, err
}

func (r *statsRepository) PaceTrend(ctx context.Context, planID uuid.UUID) ([]PaceTrendRow, error) {
	var rows []PaceTrendRow
	err := r.completedRuns(ctx, planID).
		Select("actual_runs.started_at, actual_runs.pace, actual_runs.pace_seconds, actual_runs.distance, planned_workouts.workout_type").
		Order("actual_runs.started_at").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *statsRepository) HRZonePayloads(ctx context.Context, planID uuid.UUID) ([][]byte, error) {
	var payloads [][]byte
	err := r.completedRuns(ctx, planID).
		Where("actual_runs.hr_zones IS NOT NULL").
		Pluck("actual_runs.hr_zones", &payloads).Error
	if err != nil {
		return nil, err
	}
	return payloads, nil
}
