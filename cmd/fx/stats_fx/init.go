package stats_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"paceline/internal/repositories"
	"paceline/internal/services"
)

var Module = fx.Provide(
	provideStatsRepo, provideStatsService)

func provideStatsRepo(db *gorm.DB) repositories.StatsRepository {
	return repositories.NewStatsRepository(db)
}

func provideStatsService(
	statsRepo repositories.StatsRepository,
	planRepo repositories.PlanRepository,
) services.StatsServiceInterface {
	return services.NewStatsService(statsRepo, planRepo)
}
