package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"paceline/internal/models/db_models"
)

type PlanRepository interface {
	Create(ctx context.Context, plan *db_models.TrainingPlan) (uuid.UUID, error)
	Update(ctx context.Context, plan *db_models.TrainingPlan) error
	Delete(ctx context.Context, id uuid.UUID) error

	GetByID(ctx context.Context, id uuid.UUID) (*db_models.TrainingPlan, error)
	GetByIDWithWorkouts(ctx context.Context, id uuid.UUID) (*db_models.TrainingPlan, error)
	List(ctx context.Context) ([]db_models.TrainingPlan, error)
	ListActive(ctx context.Context, today time.Time) ([]db_models.TrainingPlan, error)
}

type planRepository struct {
	db *gorm.DB
}

func NewPlanRepository(db *gorm.DB) PlanRepository {
	return &planRepository{db: db}
}

func (r *planRepository) Create(ctx context.Context, plan *db_models.TrainingPlan) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(plan).Error; err != nil {
		return uuid.Nil, err
	}
	return plan.ID, nil
}

func (r *planRepository) Update(ctx context.Context, plan *db_models.TrainingPlan) error {
	result := r.db.WithContext(ctx).Save(plan)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *planRepository) Delete(ctx context.Context, id uuid.UUID) error {
	// Workouts are lifetime-bound to their plan.
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("plan_id = ?", id).Delete(&db_models.PlannedWorkout{}).Error; err != nil {
			return err
		}
		return tx.Delete(&db_models.TrainingPlan{}, "id = ?", id).Error
	})
}

func (r *planRepository) GetByID(ctx context.Context, id uuid.UUID) (*db_models.TrainingPlan, error) {
	var plan db_models.TrainingPlan
	err := r.db.WithContext(ctx).First(&plan, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &plan, nil
}

func (r *planRepository) GetByIDWithWorkouts(ctx context.Context, id uuid.UUID) (*db_models.TrainingPlan, error) {
	var plan db_models.TrainingPlan
	err := r.db.WithContext(ctx).
		Preload("Workouts", func(db *gorm.DB) *gorm.DB {
			return db.Order("planned_workouts.date")
		}).
		Preload("Workouts.ActualRun").
		Preload("Workouts.Note").
		First(&plan, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &plan, nil
}

func (r *planRepository) List(ctx context.Context) ([]db_models.TrainingPlan, error) {
	var plans []db_models.TrainingPlan
	if err := r.db.WithContext(ctx).Order("start_date").Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *planRepository) ListActive(ctx context.Context, today time.Time) ([]db_models.TrainingPlan, error) {
	var plans []db_models.TrainingPlan
	err := r.db.WithContext(ctx).
		Where("start_date <= ? AND race_date >= ?", today, today).
		Find(&plans).Error
	if err != nil {
		return nil, err
	}
	return plans, nil
}
