package sync_fx

import (
	"go.uber.org/fx"

	"paceline/internal/garmin"
	"paceline/internal/repositories"
	"paceline/internal/services"
)

var Module = fx.Provide(
	provideGarminClient, provideWeatherService, provideSyncService, provideScheduler)

func provideGarminClient() garmin.Client {
	return garmin.NewClientFromEnv()
}

func provideWeatherService() services.WeatherServiceInterface {
	return services.NewOpenMeteoService()
}

func provideSyncService(
	client garmin.Client,
	weather services.WeatherServiceInterface,
	planRepo repositories.PlanRepository,
	workoutRepo repositories.WorkoutRepository,
	runRepo repositories.RunRepository,
) services.SyncServiceInterface {
	return services.NewSyncService(client, weather, planRepo, workoutRepo, runRepo)
}

func provideScheduler(
	sync services.SyncServiceInterface,
	planRepo repositories.PlanRepository,
) *services.SyncScheduler {
	return services.NewSyncScheduler(sync, planRepo)
}
