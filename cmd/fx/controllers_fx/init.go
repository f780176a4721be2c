package controllers_fx

import (
	"go.uber.org/fx"

	"paceline/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewPlansController),
	fx.Provide(controllers.NewWorkoutsController),
	fx.Provide(controllers.NewRunsController),
	fx.Provide(controllers.NewNotesController),
	fx.Provide(controllers.NewStatsController),
	fx.Provide(controllers.NewSyncController))
