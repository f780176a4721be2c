package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"paceline/internal/models/db_models"
	"paceline/pkg/utils"
)

type RunRepository interface {
	Create(ctx context.Context, run *db_models.ActualRun) (uuid.UUID, error)
	Delete(ctx context.Context, id uuid.UUID) error

	GetByID(ctx context.Context, id uuid.UUID) (*db_models.ActualRun, error)
	GetByGarminActivityID(ctx context.Context, activityID string) (*db_models.ActualRun, error)
	List(ctx context.Context, limit, offset int) ([]db_models.ActualRun, error)

	AddSplit(ctx context.Context, split *db_models.RunSplit) (uuid.UUID, error)
	CreateWeather(ctx context.Context, weather *db_models.RunWeather) error
	LinkToWorkout(ctx context.Context, runID, workoutID uuid.UUID) error
}

type runRepository struct {
	db *gorm.DB
}

func NewRunRepository(db *gorm.DB) RunRepository {
	return &runRepository{db: db}
}

func (r *runRepository) Create(ctx context.Context, run *db_models.ActualRun) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(run).Error; err != nil {
		return uuid.Nil, err
	}
	return run.ID, nil
}

func (r *runRepository) Delete(ctx context.Context, id uuid.UUID) error {
	// Splits and weather go with the run.
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("run_id = ?", id).Delete(&db_models.RunSplit{}).Error; err != nil {
			return err
		}
		if err := tx.Where("run_id = ?", id).Delete(&db_models.RunWeather{}).Error; err != nil {
			return err
		}
		return tx.Delete(&db_models.ActualRun{}, "id = ?", id).Error
	})
}

func (r *runRepository) GetByID(ctx context.Context, id uuid.UUID) (*db_models.ActualRun, error) {
	var run db_models.ActualRun
	err := r.db.WithContext(ctx).
		Preload("Splits", func(db *gorm.DB) *gorm.DB {
			return db.Order("run_splits.split_number")
		}).
		Preload("Weather").
		First(&run, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &run, nil
}

// GetByGarminActivityID is the dedup lookup; weather comes along so the
// caller can decide whether an existing run still needs enrichment.
func (r *runRepository) GetByGarminActivityID(ctx context.Context, activityID string) (*db_models.ActualRun, error) {
	var run db_models.ActualRun
	err := r.db.WithContext(ctx).
		Preload("Weather").
		Where("garmin_activity_id = ?", activityID).
		First(&run).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &run, nil
}

func (r *runRepository) List(ctx context.Context, limit, offset int) ([]db_models.ActualRun, error) {
	var runs []db_models.ActualRun
	err := r.db.WithContext(ctx).
		Preload("Splits", func(db *gorm.DB) *gorm.DB {
			return db.Order("run_splits.split_number")
		}).
		Preload("Weather").
		Order("started_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&runs).Error
	if err != nil {
		return nil, err
	}
	return runs, nil
}

func (r *runRepository) AddSplit(ctx context.Context, split *db_models.RunSplit) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(split).Error; err != nil {
		return uuid.Nil, err
	}
	return split.ID, nil
}

// CreateWeather enforces the one-observation-per-run rule.
func (r *runRepository) CreateWeather(ctx context.Context, weather *db_models.RunWeather) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&db_models.RunWeather{}).
			Where("run_id = ?", weather.RunID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return utils.ErrWeatherExists
		}
		return tx.Create(weather).Error
	})
}

func (r *runRepository) LinkToWorkout(ctx context.Context, runID, workoutID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&db_models.ActualRun{}).
		Where("id = ?", runID).
		Update("planned_workout_id", workoutID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
