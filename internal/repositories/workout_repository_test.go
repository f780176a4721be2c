package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"paceline/internal/models/db_models"
)

func seedTestPlan(t *testing.T, db *gorm.DB) *db_models.TrainingPlan {
	t.Helper()
	plan := &db_models.TrainingPlan{
		Name:      "Spring Marathon",
		StartDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		RaceDate:  time.Date(2026, 6, 14, 0, 0, 0, 0, time.UTC),
	}
	_, err := NewPlanRepository(db).Create(context.Background(), plan)
	require.NoError(t, err)
	return plan
}

func seedTestWorkout(t *testing.T, repo WorkoutRepository, plan *db_models.TrainingPlan, date time.Time, workoutType string) *db_models.PlannedWorkout {
	t.Helper()
	workout := &db_models.PlannedWorkout{
		PlanID:      plan.ID,
		Week:        1,
		DayOfWeek:   "Sat",
		Date:        date,
		WorkoutType: workoutType,
	}
	_, err := repo.Create(context.Background(), workout)
	require.NoError(t, err)
	return workout
}

func TestFindMatchForDateSkipsRestDays(t *testing.T) {
	db := newTestDB(t)
	repo := NewWorkoutRepository(db)
	plan := seedTestPlan(t, db)

	restDay := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	runDay := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	seedTestWorkout(t, repo, plan, restDay, "Rest")
	easy := seedTestWorkout(t, repo, plan, runDay, "Easy Run")

	match, err := repo.FindMatchForDate(context.Background(), plan.ID, restDay)
	require.NoError(t, err)
	assert.Nil(t, match)

	match, err = repo.FindMatchForDate(context.Background(), plan.ID, runDay)
	require.NoError(t, err)
	require.NotNil(t, match)
	assert.Equal(t, easy.ID, match.ID)
}

func TestFindMatchForDateEarliestCreatedWins(t *testing.T) {
	db := newTestDB(t)
	repo := NewWorkoutRepository(db)
	plan := seedTestPlan(t, db)

	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	first := seedTestWorkout(t, repo, plan, day, "Easy Run")
	second := seedTestWorkout(t, repo, plan, day, "Tempo Run")

	// Force distinct creation times so the ordering is unambiguous.
	require.NoError(t, db.Model(&db_models.PlannedWorkout{}).
		Where("id = ?", first.ID).UpdateColumn("created_at", 1000).Error)
	require.NoError(t, db.Model(&db_models.PlannedWorkout{}).
		Where("id = ?", second.ID).UpdateColumn("created_at", 2000).Error)

	match, err := repo.FindMatchForDate(context.Background(), plan.ID, day)
	require.NoError(t, err)
	require.NotNil(t, match)
	assert.Equal(t, first.ID, match.ID)

	// Stable across repeated lookups.
	again, err := repo.FindMatchForDate(context.Background(), plan.ID, day)
	require.NoError(t, err)
	assert.Equal(t, match.ID, again.ID)
}

func TestFindMatchForDatePreloadsRun(t *testing.T) {
	db := newTestDB(t)
	repo := NewWorkoutRepository(db)
	plan := seedTestPlan(t, db)

	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	workout := seedTestWorkout(t, repo, plan, day, "Easy Run")

	activityID := "555"
	_, err := NewRunRepository(db).Create(context.Background(), &db_models.ActualRun{
		PlannedWorkoutID: &workout.ID,
		GarminActivityID: &activityID,
		Distance:         6.0,
	})
	require.NoError(t, err)

	match, err := repo.FindMatchForDate(context.Background(), plan.ID, day)
	require.NoError(t, err)
	require.NotNil(t, match)
	require.NotNil(t, match.ActualRun)
	assert.Equal(t, 6.0, match.ActualRun.Distance)
}

func TestListMissingWellness(t *testing.T) {
	db := newTestDB(t)
	repo := NewWorkoutRepository(db)
	plan := seedTestPlan(t, db)

	complete := seedTestWorkout(t, repo, plan, time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC), "Easy Run")
	partial := seedTestWorkout(t, repo, plan, time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), "Tempo Run")
	missing := seedTestWorkout(t, repo, plan, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), "Long Run")
	outside := seedTestWorkout(t, repo, plan, time.Date(2026, 4, 20, 0, 0, 0, 0, time.UTC), "Easy Run")

	hours := 7.5
	hrv := 52
	require.NoError(t, repo.UpdateWellness(context.Background(), complete.ID, &hours, &hrv))
	require.NoError(t, repo.UpdateWellness(context.Background(), partial.ID, &hours, nil))

	start := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)
	got, err := repo.ListMissingWellness(context.Background(), plan.ID, start, end)
	require.NoError(t, err)

	ids := make([]string, 0, len(got))
	for _, w := range got {
		ids = append(ids, w.ID.String())
	}
	assert.ElementsMatch(t, []string{partial.ID.String(), missing.ID.String()}, ids)
	assert.NotContains(t, ids, outside.ID.String())
}

func TestUpdateWellnessPartial(t *testing.T) {
	db := newTestDB(t)
	repo := NewWorkoutRepository(db)
	plan := seedTestPlan(t, db)
	workout := seedTestWorkout(t, repo, plan, time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), "Easy Run")

	hrv := 52
	require.NoError(t, repo.UpdateWellness(context.Background(), workout.ID, nil, &hrv))

	got, err := repo.GetByID(context.Background(), workout.ID)
	require.NoError(t, err)
	assert.Nil(t, got.SleepHours)
	require.NotNil(t, got.HRV)
	assert.Equal(t, 52, *got.HRV)

	// No fields provided is a no-op, not a clearing write.
	require.NoError(t, repo.UpdateWellness(context.Background(), workout.ID, nil, nil))
	got, err = repo.GetByID(context.Background(), workout.ID)
	require.NoError(t, err)
	require.NotNil(t, got.HRV)
}
