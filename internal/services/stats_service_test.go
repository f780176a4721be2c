package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"paceline/internal/models/db_models"
	"paceline/internal/repositories"
	"paceline/pkg/utils"
)

func TestCurrentWeek(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 1, currentWeek(start, start, 16))
	assert.Equal(t, 1, currentWeek(start, start.AddDate(0, 0, 6), 16))
	assert.Equal(t, 2, currentWeek(start, start.AddDate(0, 0, 7), 16))
	assert.Equal(t, 16, currentWeek(start, start.AddDate(0, 0, 200), 16))
	assert.Equal(t, 0, currentWeek(start, start.AddDate(0, 0, -1), 16))
}

func TestGetSummaryAndHRZones(t *testing.T) {
	fx := newSyncFixture(t)
	plan := fx.seedPlan(t)

	runDay := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	workout := fx.seedWorkout(t, plan, runDay, "Easy Run")
	workout.TargetDistance = fptr(6.0)
	require.NoError(t, fx.workouts.Update(context.Background(), workout))
	fx.seedWorkout(t, plan, runDay.AddDate(0, 0, 1), "Rest")

	activityID := "777"
	_, err := fx.runs.Create(context.Background(), &db_models.ActualRun{
		PlannedWorkoutID: &workout.ID,
		GarminActivityID: &activityID,
		Distance:         6.2,
		DurationSeconds:  3100,
		Pace:             "8:20/mi",
		PaceSeconds:      500,
		HRZones:          datatypes.JSON([]byte(`{"zone1":300,"zone2":1800,"zone3":900}`)),
	})
	require.NoError(t, err)

	stats := NewStatsService(repositories.NewStatsRepository(fx.db), fx.plans)

	summary, err := stats.GetSummary(context.Background(), plan.ID)
	require.NoError(t, err)
	assert.Equal(t, "Spring Marathon", summary.PlanName)
	assert.Equal(t, int64(2), summary.TotalWorkouts)
	assert.Equal(t, int64(1), summary.RunWorkouts)
	assert.Equal(t, int64(1), summary.CompletedRuns)
	assert.Equal(t, 100.0, summary.CompletionRate)
	assert.Equal(t, 6.0, summary.TotalPlannedMiles)
	assert.Equal(t, 6.2, summary.TotalActualMiles)

	zones, err := stats.GetHRZoneDistribution(context.Background(), plan.ID)
	require.NoError(t, err)
	assert.Equal(t, 1800, zones["zone2"])
	assert.Equal(t, 0, zones["zone5"])
}

func TestGetSummaryUnknownPlan(t *testing.T) {
	fx := newSyncFixture(t)

	stats := NewStatsService(repositories.NewStatsRepository(fx.db), fx.plans)
	_, err := stats.GetSummary(context.Background(), uuid.New())
	assert.ErrorIs(t, err, utils.ErrPlanNotFound)
}

func TestGetCountdown(t *testing.T) {
	fx := newSyncFixture(t)
	plan := fx.seedPlan(t)
	plan.TargetTime = "4:00:00"
	plan.TargetPace = "9:09/mi"
	require.NoError(t, fx.db.Save(plan).Error)

	stats := NewStatsService(repositories.NewStatsRepository(fx.db), fx.plans)
	countdown, err := stats.GetCountdown(context.Background(), plan.ID)
	require.NoError(t, err)

	assert.Equal(t, "2026-06-14", countdown.RaceDate)
	assert.Equal(t, "Spring Marathon", countdown.RaceName)
	assert.Equal(t, "9:09/mi", countdown.TargetPace)
	assert.Equal(t, countdown.DaysLeft, countdown.WeeksLeft*7+countdown.DaysRemainder)
}
