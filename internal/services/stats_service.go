package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"paceline/internal/models/response_models"
	"paceline/internal/repositories"
	"paceline/pkg/utils"
)

type StatsServiceInterface interface {
	GetSummary(ctx context.Context, planID uuid.UUID) (*response_models.TrainingSummary, error)
	GetWeeklyStats(ctx context.Context, planID uuid.UUID) ([]response_models.WeeklyStats, error)
	GetPaceTrend(ctx context.Context, planID uuid.UUID) ([]response_models.PaceTrendPoint, error)
	GetHRZoneDistribution(ctx context.Context, planID uuid.UUID) (map[string]int, error)
	GetCountdown(ctx context.Context, planID uuid.UUID) (*response_models.Countdown, error)
}

type StatsService struct {
	statsRepo repositories.StatsRepository
	planRepo  repositories.PlanRepository
}

func NewStatsService(statsRepo repositories.StatsRepository, planRepo repositories.PlanRepository) StatsServiceInterface {
	return &StatsService{statsRepo: statsRepo, planRepo: planRepo}
}

func (s *StatsService) GetSummary(ctx context.Context, planID uuid.UUID) (*response_models.TrainingSummary, error) {
	plan, err := s.planRepo.GetByID(ctx, planID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if plan == nil {
		return nil, utils.ErrPlanNotFound
	}

	totalWorkouts, err := s.statsRepo.CountWorkouts(ctx, planID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	runWorkouts, err := s.statsRepo.CountRunWorkouts(ctx, planID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	completed, err := s.statsRepo.CountCompletedRuns(ctx, planID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	planned, err := s.statsRepo.SumPlannedMiles(ctx, planID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	actual, err := s.statsRepo.SumActualMiles(ctx, planID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	maxWeek, err := s.statsRepo.MaxWeek(ctx, planID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	today := utils.Midnight(time.Now())
	summary := &response_models.TrainingSummary{
		PlanName:          plan.Name,
		RaceDate:          plan.RaceDate.Format(utils.DateOnly),
		DaysUntilRace:     int(plan.RaceDate.Sub(today).Hours() / 24),
		CurrentWeek:       currentWeek(plan.StartDate, today, maxWeek),
		TotalWorkouts:     totalWorkouts,
		RunWorkouts:       runWorkouts,
		CompletedRuns:     completed,
		TotalPlannedMiles: utils.Round1(planned),
		TotalActualMiles:  utils.Round1(actual),
		MilesRemaining:    utils.Round1(planned - actual),
	}
	if runWorkouts > 0 {
		summary.CompletionRate = utils.Round1(float64(completed) / float64(runWorkouts) * 100)
	}
	return summary, nil
}

func currentWeek(startDate, today time.Time, maxWeek int) int {
	if startDate.After(today) {
		return 0
	}
	week := int(today.Sub(utils.Midnight(startDate)).Hours()/24)/7 + 1
	if maxWeek > 0 && week > maxWeek {
		return maxWeek
	}
	return week
}

func (s *StatsService) GetWeeklyStats(ctx context.Context, planID uuid.UUID) ([]response_models.WeeklyStats, error) {
	maxWeek, err := s.statsRepo.MaxWeek(ctx, planID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	weeks := make([]response_models.WeeklyStats, 0, maxWeek)
	for week := 1; week <= maxWeek; week++ {
		totals, err := s.statsRepo.WeekTotals(ctx, planID, week)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		weeks = append(weeks, response_models.WeeklyStats{
			Week:          week,
			PlannedMiles:  utils.Round1(totals.PlannedMiles),
			ActualMiles:   utils.Round1(totals.ActualMiles),
			TotalRuns:     totals.TotalRuns,
			CompletedRuns: totals.CompletedRuns,
		})
	}
	return weeks, nil
}

func (s *StatsService) GetPaceTrend(ctx context.Context, planID uuid.UUID) ([]response_models.PaceTrendPoint, error) {
	rows, err := s.statsRepo.PaceTrend(ctx, planID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	points := make([]response_models.PaceTrendPoint, 0, len(rows))
	for _, row := range rows {
		point := response_models.PaceTrendPoint{
			Pace:        row.Pace,
			PaceSeconds: row.PaceSeconds,
			Distance:    row.Distance,
			WorkoutType: row.WorkoutType,
		}
		if row.StartedAt != nil {
			point.Date = row.StartedAt.Format(time.RFC3339)
		}
		points = append(points, point)
	}
	return points, nil
}

func (s *StatsService) GetHRZoneDistribution(ctx context.Context, planID uuid.UUID) (map[string]int, error) {
	payloads, err := s.statsRepo.HRZonePayloads(ctx, planID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	totals := map[string]int{"zone1": 0, "zone2": 0, "zone3": 0, "zone4": 0, "zone5": 0}
	for _, payload := range payloads {
		var zones map[string]int
		if err := json.Unmarshal(payload, &zones); err != nil {
			continue
		}
		for zone, seconds := range zones {
			if _, ok := totals[zone]; ok {
				totals[zone] += seconds
			}
		}
	}
	return totals, nil
}

func (s *StatsService) GetCountdown(ctx context.Context, planID uuid.UUID) (*response_models.Countdown, error) {
	plan, err := s.planRepo.GetByID(ctx, planID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if plan == nil {
		return nil, utils.ErrPlanNotFound
	}

	today := utils.Midnight(time.Now())
	daysLeft := int(plan.RaceDate.Sub(today).Hours() / 24)
	return &response_models.Countdown{
		RaceDate:      plan.RaceDate.Format(utils.DateOnly),
		RaceName:      plan.Name,
		DaysLeft:      daysLeft,
		WeeksLeft:     daysLeft / 7,
		DaysRemainder: daysLeft % 7,
		TargetPace:    plan.TargetPace,
		TargetTime:    plan.TargetTime,
	}, nil
}
