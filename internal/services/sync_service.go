package services

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"paceline/internal/garmin"
	"paceline/internal/models/db_models"
	"paceline/internal/models/response_models"
	"paceline/internal/repositories"
	"paceline/pkg/utils"
)

// SyncServiceInterface is the reconciliation engine: one call pulls the
// plan's Garmin activities for a window, dedupes them against earlier syncs,
// matches them to planned workouts, persists new runs with derived metrics,
// and backfills weather, sleep and HRV.
type SyncServiceInterface interface {
	SyncActivities(ctx context.Context, planID uuid.UUID, start, end *time.Time) ([]response_models.SyncedRun, error)
	Status() response_models.SyncStatus
}

type SyncService struct {
	client   garmin.Client
	weather  WeatherServiceInterface
	planRepo repositories.PlanRepository
	workouts repositories.WorkoutRepository
	runs     repositories.RunRepository
}

func NewSyncService(
	client garmin.Client,
	weather WeatherServiceInterface,
	planRepo repositories.PlanRepository,
	workouts repositories.WorkoutRepository,
	runs repositories.RunRepository,
) SyncServiceInterface {
	return &SyncService{
		client:   client,
		weather:  weather,
		planRepo: planRepo,
		workouts: workouts,
		runs:     runs,
	}
}

func (s *SyncService) Status() response_models.SyncStatus {
	if s.client != nil && s.client.Configured() {
		return response_models.SyncStatus{Status: "connected"}
	}
	return response_models.SyncStatus{Status: "disconnected"}
}

func (s *SyncService) SyncActivities(ctx context.Context, planID uuid.UUID, start, end *time.Time) ([]response_models.SyncedRun, error) {
	if s.client == nil || !s.client.Configured() {
		return nil, utils.ErrGarminNotConnected
	}

	startDate, endDate, err := s.resolveWindow(ctx, planID, start, end)
	if err != nil {
		return nil, err
	}
	log.Printf("Syncing Garmin activities from %s to %s",
		startDate.Format(utils.DateOnly), endDate.Format(utils.DateOnly))

	// One provider call for the whole window; running subtypes are filtered
	// locally so treadmill/indoor/track all come along.
	all, err := s.client.ActivitiesByDate(ctx, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("listing activities: %w", err)
	}
	var activities []garmin.Activity
	for _, a := range all {
		if strings.Contains(strings.ToLower(a.TypeKey), "running") {
			activities = append(activities, a)
		}
	}
	log.Printf("Found %d running activities (out of %d total)", len(activities), len(all))

	synced := make([]response_models.SyncedRun, 0, len(activities))
	for _, activity := range activities {
		entry, ok := s.syncOne(ctx, planID, activity)
		if ok {
			synced = append(synced, entry)
		}
	}

	s.backfillWellness(ctx, planID, startDate, endDate)

	return synced, nil
}

// resolveWindow defaults to the plan's span, or the trailing 60 days when
// the plan is unknown.
func (s *SyncService) resolveWindow(ctx context.Context, planID uuid.UUID, start, end *time.Time) (time.Time, time.Time, error) {
	today := utils.Midnight(time.Now())

	plan, err := s.planRepo.GetByID(ctx, planID)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	var startDate, endDate time.Time
	if plan != nil {
		startDate = utils.Midnight(plan.StartDate)
	} else {
		startDate = today.AddDate(0, 0, -60)
	}
	endDate = today
	if start != nil {
		startDate = utils.Midnight(*start)
	}
	if end != nil {
		endDate = utils.Midnight(*end)
	}
	return startDate, endDate, nil
}

// syncOne processes a single activity. Every failure here is isolated to
// this activity: it is logged and reported as "nothing synced" without
// touching the rest of the cycle.
func (s *SyncService) syncOne(ctx context.Context, planID uuid.UUID, activity garmin.Activity) (response_models.SyncedRun, bool) {
	var none response_models.SyncedRun
	activityID := strconv.FormatInt(activity.ID, 10)

	existing, err := s.runs.GetByGarminActivityID(ctx, activityID)
	if err != nil {
		log.Printf("Failed to look up activity %s: %v", activityID, err)
		return none, false
	}
	if existing != nil {
		// Dedup hit. Enrichment stays retryable even when the sync itself
		// is a no-op.
		if existing.Weather == nil && existing.StartLat != nil && existing.StartedAt != nil {
			s.enrichRun(ctx, existing)
		}
		log.Printf("Activity %s already synced, skipping", activityID)
		return none, false
	}

	activityDate := utils.ParseGarminDate(activity.StartTimeLocal)

	distance := utils.MetersToMiles(activity.DistanceMeters)
	duration := int(activity.DurationSeconds)
	pace, paceSec := utils.PaceForRun(distance, duration)

	var planned *db_models.PlannedWorkout
	if activityDate != nil {
		planned, err = s.workouts.FindMatchForDate(ctx, planID, *activityDate)
		if err != nil {
			log.Printf("Failed to find workout for %s: %v", activityDate.Format(utils.DateOnly), err)
			return none, false
		}
		if planned != nil && planned.ActualRun != nil {
			log.Printf("Workout on %s already has a run, skipping", activityDate.Format(utils.DateOnly))
			return none, false
		}
	}

	run := &db_models.ActualRun{
		GarminActivityID: &activityID,
		Distance:         distance,
		DurationSeconds:  duration,
		Pace:             pace,
		PaceSeconds:      paceSec,
		AvgHR:            activity.AvgHR,
		MaxHR:            activity.MaxHR,
		Cadence:          activity.Cadence,
		Calories:         activity.Calories,
		StartLat:         activity.StartLat,
		StartLon:         activity.StartLon,
		StartedAt:        utils.ParseGarminTimestamp(activity.StartTimeLocal),
		RawData:          datatypes.JSON(activity.Raw),
	}
	if planned != nil {
		run.PlannedWorkoutID = &planned.ID
	}
	if activity.ElevationGain != nil && *activity.ElevationGain != 0 {
		feet := utils.MetersToFeet(*activity.ElevationGain)
		run.ElevationGain = &feet
	}

	if _, err := s.runs.Create(ctx, run); err != nil {
		log.Printf("Failed to store activity %s: %v", activityID, err)
		return none, false
	}

	s.enrichRun(ctx, run)

	entry := response_models.SyncedRun{
		ID:       run.ID.String(),
		Distance: run.Distance,
		Pace:     run.Pace,
	}
	if activityDate != nil {
		entry.Date = activityDate.Format(utils.DateOnly)
	}
	if planned != nil {
		id := planned.ID.String()
		entry.MatchedWorkoutID = &id
	}

	matched := "unmatched"
	if planned != nil {
		matched = "matched to workout"
	}
	log.Printf("Synced: %.2fmi on %s -> %s", run.Distance, entry.Date, matched)
	return entry, true
}

// enrichRun attaches one historical weather observation to a run. Missing
// coordinates or start time, or a provider failure, leave the run without
// weather; a later sync pass will try again.
func (s *SyncService) enrichRun(ctx context.Context, run *db_models.ActualRun) {
	if run.StartLat == nil || run.StartLon == nil || run.StartedAt == nil {
		log.Printf("Run %s missing location/time data, skipping weather", run.ID)
		return
	}

	obs, err := s.weather.HistoricalWeather(ctx, *run.StartLat, *run.StartLon, *run.StartedAt)
	if err != nil {
		log.Printf("Failed to fetch weather for run %s: %v", run.ID, err)
		return
	}

	weather := &db_models.RunWeather{
		RunID:         run.ID,
		Temperature:   obs.Temperature,
		FeelsLike:     obs.FeelsLike,
		Humidity:      obs.Humidity,
		WindSpeed:     obs.WindSpeed,
		WindDirection: obs.WindDirection,
		Conditions:    obs.Conditions,
		Precipitation: obs.Precipitation,
	}
	if err := s.runs.CreateWeather(ctx, weather); err != nil {
		log.Printf("Failed to store weather for run %s: %v", run.ID, err)
	}
}

// backfillWellness fills missing sleep and HRV readings for workouts in the
// window. The two fetches are independent: a failed sleep lookup never
// blocks the HRV lookup for the same night, and each workout commits on its
// own.
func (s *SyncService) backfillWellness(ctx context.Context, planID uuid.UUID, start, end time.Time) {
	workouts, err := s.workouts.ListMissingWellness(ctx, planID, start, end)
	if err != nil {
		log.Printf("Failed to list workouts for wellness backfill: %v", err)
		return
	}
	log.Printf("Fetching sleep/HRV data for %d workouts", len(workouts))

	for _, workout := range workouts {
		var sleepHours *float64
		var hrv *int

		if workout.SleepHours == nil {
			sleep, err := s.client.SleepSummary(ctx, workout.Date)
			if err != nil {
				log.Printf("Failed to get sleep for %s: %v", workout.Date.Format(utils.DateOnly), err)
			} else if sleep != nil && sleep.TotalSleepSeconds > 0 {
				hours := utils.Round1(float64(sleep.TotalSleepSeconds) / 3600)
				sleepHours = &hours
				log.Printf("Sleep for %s: %.1fh", workout.Date.Format(utils.DateOnly), hours)
			}
		}

		if workout.HRV == nil {
			summary, err := s.client.HRVSummary(ctx, workout.Date)
			if err != nil {
				log.Printf("Failed to get HRV for %s: %v", workout.Date.Format(utils.DateOnly), err)
			} else if summary != nil && summary.LastNightAvg != 0 {
				avg := summary.LastNightAvg
				hrv = &avg
				log.Printf("HRV for %s: %dms", workout.Date.Format(utils.DateOnly), avg)
			}
		}

		if err := s.workouts.UpdateWellness(ctx, workout.ID, sleepHours, hrv); err != nil {
			log.Printf("Failed to update wellness for workout %s: %v", workout.ID, err)
		}
	}
}
