package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"paceline/internal/models/db_models"
	"paceline/pkg/utils"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&db_models.TrainingPlan{},
		&db_models.PlannedWorkout{},
		&db_models.ActualRun{},
		&db_models.RunSplit{},
		&db_models.RunWeather{},
		&db_models.RunNote{},
	))
	return db
}

func seedRun(t *testing.T, repo RunRepository, activityID string) *db_models.ActualRun {
	t.Helper()
	started := time.Date(2026, 3, 14, 6, 30, 0, 0, time.UTC)
	run := &db_models.ActualRun{
		GarminActivityID: &activityID,
		Distance:         6.0,
		DurationSeconds:  3000,
		Pace:             "8:20/mi",
		PaceSeconds:      500,
		StartedAt:        &started,
	}
	_, err := repo.Create(context.Background(), run)
	require.NoError(t, err)
	return run
}

func TestRunRepositoryGetByGarminActivityID(t *testing.T) {
	repo := NewRunRepository(newTestDB(t))
	seedRun(t, repo, "12345")

	found, err := repo.GetByGarminActivityID(context.Background(), "12345")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, 6.0, found.Distance)

	missing, err := repo.GetByGarminActivityID(context.Background(), "99999")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestRunRepositoryCreateWeatherOnce(t *testing.T) {
	repo := NewRunRepository(newTestDB(t))
	run := seedRun(t, repo, "12345")

	temp := 46.2
	err := repo.CreateWeather(context.Background(), &db_models.RunWeather{
		RunID:       run.ID,
		Temperature: &temp,
		Conditions:  "Clear",
	})
	require.NoError(t, err)

	err = repo.CreateWeather(context.Background(), &db_models.RunWeather{
		RunID:      run.ID,
		Conditions: "Overcast",
	})
	assert.ErrorIs(t, err, utils.ErrWeatherExists)

	found, err := repo.GetByID(context.Background(), run.ID)
	require.NoError(t, err)
	require.NotNil(t, found.Weather)
	assert.Equal(t, "Clear", found.Weather.Conditions)
}

func TestRunRepositoryDeleteCascades(t *testing.T) {
	db := newTestDB(t)
	repo := NewRunRepository(db)
	run := seedRun(t, repo, "12345")

	_, err := repo.AddSplit(context.Background(), &db_models.RunSplit{
		RunID:       run.ID,
		SplitNumber: 1,
		Distance:    1.0,
		PaceSeconds: 505,
	})
	require.NoError(t, err)
	require.NoError(t, repo.CreateWeather(context.Background(), &db_models.RunWeather{
		RunID:      run.ID,
		Conditions: "Clear",
	}))

	require.NoError(t, repo.Delete(context.Background(), run.ID))

	found, err := repo.GetByID(context.Background(), run.ID)
	require.NoError(t, err)
	assert.Nil(t, found)

	var splits int64
	require.NoError(t, db.Model(&db_models.RunSplit{}).Where("run_id = ?", run.ID).Count(&splits).Error)
	assert.Zero(t, splits)
}

func TestRunRepositoryLinkToWorkout(t *testing.T) {
	db := newTestDB(t)
	repo := NewRunRepository(db)
	run := seedRun(t, repo, "12345")

	workouts := NewWorkoutRepository(db)
	plans := NewPlanRepository(db)
	plan := &db_models.TrainingPlan{
		Name:      "Spring Marathon",
		StartDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		RaceDate:  time.Date(2026, 6, 14, 0, 0, 0, 0, time.UTC),
	}
	_, err := plans.Create(context.Background(), plan)
	require.NoError(t, err)
	workout := &db_models.PlannedWorkout{
		PlanID:      plan.ID,
		Week:        1,
		DayOfWeek:   "Sat",
		Date:        time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		WorkoutType: "Easy Run",
	}
	_, err = workouts.Create(context.Background(), workout)
	require.NoError(t, err)

	require.NoError(t, repo.LinkToWorkout(context.Background(), run.ID, workout.ID))

	found, err := repo.GetByID(context.Background(), run.ID)
	require.NoError(t, err)
	require.NotNil(t, found.PlannedWorkoutID)
	assert.Equal(t, workout.ID, *found.PlannedWorkoutID)

	err = repo.LinkToWorkout(context.Background(), uuid.New(), workout.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
