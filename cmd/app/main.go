package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"paceline/cmd/fx/controllers_fx"
	"paceline/cmd/fx/db_fx"
	"paceline/cmd/fx/note_fx"
	"paceline/cmd/fx/plan_fx"
	"paceline/cmd/fx/run_fx"
	"paceline/cmd/fx/stats_fx"
	"paceline/cmd/fx/sync_fx"
	"paceline/cmd/fx/workout_fx"
	"paceline/internal/api/controllers"
	"paceline/internal/services"
	"paceline/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	app := fx.New(
		db_fx.Module,
		plan_fx.Module,
		workout_fx.Module,
		run_fx.Module,
		note_fx.Module,
		stats_fx.Module,
		sync_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
		fx.Invoke(StartScheduler),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			port := os.Getenv("PORT")
			if port == "" {
				port = "8080"
			}
			go func() {
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

// StartScheduler wires the nightly sync job when SYNC_CRON is set.
// Left unset, syncs only run on demand through the API.
func StartScheduler(lc fx.Lifecycle, scheduler *services.SyncScheduler) {
	spec := os.Getenv("SYNC_CRON")
	if spec == "" {
		return
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := scheduler.Start(spec); err != nil {
				return err
			}
			log.Printf("Sync scheduler started with spec %q", spec)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			scheduler.Stop()
			return nil
		},
	})
}

func ProvideRouter(
	plansController *controllers.PlansController,
	workoutsController *controllers.WorkoutsController,
	runsController *controllers.RunsController,
	notesController *controllers.NotesController,
	statsController *controllers.StatsController,
	syncController *controllers.SyncController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, plansController, workoutsController, runsController,
		notesController, statsController, syncController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	plansController *controllers.PlansController,
	workoutsController *controllers.WorkoutsController,
	runsController *controllers.RunsController,
	notesController *controllers.NotesController,
	statsController *controllers.StatsController,
	syncController *controllers.SyncController) {

	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	plans := r.Group("/api/plans")
	plans.GET("", plansController.ListPlans)
	plans.POST("", plansController.CreatePlan)
	plans.GET("/:id", plansController.GetPlan)
	plans.PUT("/:id", plansController.UpdatePlan)
	plans.DELETE("/:id", plansController.DeletePlan)

	workouts := r.Group("/api/workouts")
	workouts.GET("", workoutsController.ListWorkouts)
	workouts.POST("", workoutsController.CreateWorkout)
	workouts.GET("/today", workoutsController.GetTodaysWorkout)
	workouts.GET("/week/:week", workoutsController.GetWeekWorkouts)
	workouts.GET("/:id", workoutsController.GetWorkout)
	workouts.PUT("/:id", workoutsController.UpdateWorkout)
	workouts.DELETE("/:id", workoutsController.DeleteWorkout)

	runs := r.Group("/api/runs")
	runs.GET("", runsController.ListRuns)
	runs.POST("", runsController.CreateRun)
	runs.GET("/:id", runsController.GetRun)
	runs.DELETE("/:id", runsController.DeleteRun)
	runs.POST("/:id/splits", runsController.AddSplit)
	runs.POST("/:id/weather", runsController.AddWeather)
	runs.PUT("/:id/workout/:workoutId", runsController.LinkToWorkout)

	notes := r.Group("/api/notes")
	notes.GET("", notesController.ListNotes)
	notes.POST("", notesController.CreateNote)
	notes.GET("/:id", notesController.GetNote)
	notes.PUT("/:id", notesController.UpdateNote)
	notes.DELETE("/:id", notesController.DeleteNote)

	stats := r.Group("/api/stats")
	stats.GET("/summary/:plan_id", statsController.GetSummary)
	stats.GET("/weekly/:plan_id", statsController.GetWeeklyStats)
	stats.GET("/pace-trend/:plan_id", statsController.GetPaceTrend)
	stats.GET("/hr-zones/:plan_id", statsController.GetHRZoneDistribution)
	stats.GET("/countdown/:plan_id", statsController.GetCountdown)

	sync := r.Group("/api/sync")
	sync.POST("/garmin/activities", syncController.SyncActivities)
	sync.GET("/garmin/status", syncController.Status)
}
