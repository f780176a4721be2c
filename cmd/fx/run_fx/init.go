package run_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"paceline/internal/repositories"
	"paceline/internal/services"
)

var Module = fx.Provide(
	provideRunRepo, provideRunService)

func provideRunRepo(db *gorm.DB) repositories.RunRepository {
	return repositories.NewRunRepository(db)
}

func provideRunService(
	runRepo repositories.RunRepository,
	workoutRepo repositories.WorkoutRepository,
) services.RunServiceInterface {
	return services.NewRunService(runRepo, workoutRepo)
}
