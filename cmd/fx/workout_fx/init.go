package workout_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"paceline/internal/repositories"
	"paceline/internal/services"
)

var Module = fx.Provide(
	provideWorkoutRepo, provideWorkoutService)

func provideWorkoutRepo(db *gorm.DB) repositories.WorkoutRepository {
	return repositories.NewWorkoutRepository(db)
}

func provideWorkoutService(
	workoutRepo repositories.WorkoutRepository,
	planRepo repositories.PlanRepository,
) services.WorkoutServiceInterface {
	return services.NewWorkoutService(workoutRepo, planRepo)
}
