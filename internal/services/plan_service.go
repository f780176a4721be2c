package services

import (
	"context"

	"github.com/google/uuid"

	"paceline/internal/models/db_models"
	"paceline/internal/models/request_models"
	"paceline/internal/repositories"
	"paceline/pkg/utils"
)

type PlanServiceInterface interface {
	ListPlans(ctx context.Context) ([]db_models.TrainingPlan, error)
	CreatePlan(ctx context.Context, req request_models.CreatePlanRequest) (*db_models.TrainingPlan, error)
	GetPlanWithWorkouts(ctx context.Context, planID uuid.UUID) (*db_models.TrainingPlan, error)
	UpdatePlan(ctx context.Context, planID uuid.UUID, req request_models.UpdatePlanRequest) (*db_models.TrainingPlan, error)
	DeletePlan(ctx context.Context, planID uuid.UUID) error
}

type PlanService struct {
	planRepo repositories.PlanRepository
}

func NewPlanService(planRepo repositories.PlanRepository) PlanServiceInterface {
	return &PlanService{planRepo: planRepo}
}

func (p *PlanService) ListPlans(ctx context.Context) ([]db_models.TrainingPlan, error) {
	return p.planRepo.List(ctx)
}

func (p *PlanService) CreatePlan(ctx context.Context, req request_models.CreatePlanRequest) (*db_models.TrainingPlan, error) {
	startDate, err := utils.ParseDateOnly(req.StartDate)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	raceDate, err := utils.ParseDateOnly(req.RaceDate)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	if startDate.After(raceDate) {
		return nil, utils.ErrInvalidPlanDates
	}

	units := req.Units
	if units == "" {
		units = "miles"
	}
	plan := &db_models.TrainingPlan{
		Name:       req.Name,
		StartDate:  startDate,
		RaceDate:   raceDate,
		TargetTime: req.TargetTime,
		TargetPace: req.TargetPace,
		Units:      units,
	}
	if _, err := p.planRepo.Create(ctx, plan); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return plan, nil
}

func (p *PlanService) GetPlanWithWorkouts(ctx context.Context, planID uuid.UUID) (*db_models.TrainingPlan, error) {
	plan, err := p.planRepo.GetByIDWithWorkouts(ctx, planID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if plan == nil {
		return nil, utils.ErrPlanNotFound
	}
	return plan, nil
}

func (p *PlanService) UpdatePlan(ctx context.Context, planID uuid.UUID, req request_models.UpdatePlanRequest) (*db_models.TrainingPlan, error) {
	plan, err := p.planRepo.GetByID(ctx, planID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if plan == nil {
		return nil, utils.ErrPlanNotFound
	}

	if req.Name != nil {
		plan.Name = *req.Name
	}
	if req.StartDate != nil {
		startDate, err := utils.ParseDateOnly(*req.StartDate)
		if err != nil {
			return nil, utils.ErrInvalidInput
		}
		plan.StartDate = startDate
	}
	if req.RaceDate != nil {
		raceDate, err := utils.ParseDateOnly(*req.RaceDate)
		if err != nil {
			return nil, utils.ErrInvalidInput
		}
		plan.RaceDate = raceDate
	}
	if req.TargetTime != nil {
		plan.TargetTime = *req.TargetTime
	}
	if req.TargetPace != nil {
		plan.TargetPace = *req.TargetPace
	}
	if req.Units != nil {
		plan.Units = *req.Units
	}
	if plan.StartDate.After(plan.RaceDate) {
		return nil, utils.ErrInvalidPlanDates
	}

	if err := p.planRepo.Update(ctx, plan); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return plan, nil
}

func (p *PlanService) DeletePlan(ctx context.Context, planID uuid.UUID) error {
	plan, err := p.planRepo.GetByID(ctx, planID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if plan == nil {
		return utils.ErrPlanNotFound
	}
	if err := p.planRepo.Delete(ctx, planID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
