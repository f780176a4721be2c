package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"paceline/internal/models/request_models"
	"paceline/internal/repositories"
	"paceline/internal/services"
	"paceline/pkg/utils"
)

type WorkoutsController struct {
	workoutService services.WorkoutServiceInterface
}

func NewWorkoutsController(workoutService services.WorkoutServiceInterface) *WorkoutsController {
	return &WorkoutsController{workoutService: workoutService}
}

func (w *WorkoutsController) ListWorkouts(c *gin.Context) {
	var filter repositories.WorkoutFilter

	if raw := c.Query("plan_id"); raw != "" {
		planID, err := uuid.Parse(raw)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid plan ID")
			return
		}
		filter.PlanID = &planID
	}
	if raw := c.Query("week"); raw != "" {
		week, err := strconv.Atoi(raw)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid week")
			return
		}
		filter.Week = &week
	}
	if raw := c.Query("workout_type"); raw != "" {
		filter.WorkoutType = &raw
	}
	if raw := c.Query("start_date"); raw != "" {
		start, err := utils.ParseDateOnly(raw)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid start date")
			return
		}
		filter.StartDate = &start
	}
	if raw := c.Query("end_date"); raw != "" {
		end, err := utils.ParseDateOnly(raw)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid end date")
			return
		}
		filter.EndDate = &end
	}

	workouts, err := w.workoutService.ListWorkouts(c.Request.Context(), filter)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, workouts, "Workouts fetched successfully")
}

func (w *WorkoutsController) CreateWorkout(c *gin.Context) {
	var req request_models.CreateWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	workout, err := w.workoutService.CreateWorkout(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, workout, "Workout created successfully")
}

func (w *WorkoutsController) GetWorkout(c *gin.Context) {
	workoutID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid workout ID")
		return
	}

	workout, err := w.workoutService.GetWorkout(c.Request.Context(), workoutID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, workout, "Workout fetched successfully")
}

func (w *WorkoutsController) UpdateWorkout(c *gin.Context) {
	workoutID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid workout ID")
		return
	}

	var req request_models.UpdateWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	workout, err := w.workoutService.UpdateWorkout(c.Request.Context(), workoutID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, workout, "Workout updated successfully")
}

func (w *WorkoutsController) DeleteWorkout(c *gin.Context) {
	workoutID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid workout ID")
		return
	}

	if err := w.workoutService.DeleteWorkout(c.Request.Context(), workoutID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Workout deleted")
}

func (w *WorkoutsController) GetTodaysWorkout(c *gin.Context) {
	planID, err := uuid.Parse(c.Query("plan_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid plan ID")
		return
	}

	workout, err := w.workoutService.GetTodaysWorkout(c.Request.Context(), planID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, workout, "Today's workout fetched successfully")
}

func (w *WorkoutsController) GetWeekWorkouts(c *gin.Context) {
	week, err := strconv.Atoi(c.Param("week"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid week number")
		return
	}
	planID, err := uuid.Parse(c.Query("plan_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid plan ID")
		return
	}

	workouts, err := w.workoutService.GetWeekWorkouts(c.Request.Context(), planID, week)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, workouts, "Week workouts fetched successfully")
}
