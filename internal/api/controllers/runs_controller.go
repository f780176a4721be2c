package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"paceline/internal/models/request_models"
	"paceline/internal/services"
	"paceline/pkg/utils"
)

type RunsController struct {
	runService services.RunServiceInterface
}

func NewRunsController(runService services.RunServiceInterface) *RunsController {
	return &RunsController{runService: runService}
}

func (r *RunsController) ListRuns(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 || limit > 100 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid limit (must be 1-100)")
		return
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid offset")
		return
	}

	runs, err := r.runService.ListRuns(c.Request.Context(), limit, offset)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, runs, "Runs fetched successfully")
}

func (r *RunsController) CreateRun(c *gin.Context) {
	var req request_models.CreateRunRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	run, err := r.runService.CreateRun(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, run, "Run created successfully")
}

func (r *RunsController) GetRun(c *gin.Context) {
	runID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid run ID")
		return
	}

	run, err := r.runService.GetRun(c.Request.Context(), runID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, run, "Run fetched successfully")
}

func (r *RunsController) DeleteRun(c *gin.Context) {
	runID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid run ID")
		return
	}

	if err := r.runService.DeleteRun(c.Request.Context(), runID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Run deleted")
}

func (r *RunsController) AddSplit(c *gin.Context) {
	runID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid run ID")
		return
	}

	var req request_models.CreateSplitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	split, err := r.runService.AddSplit(c.Request.Context(), runID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, split, "Split added successfully")
}

func (r *RunsController) AddWeather(c *gin.Context) {
	runID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid run ID")
		return
	}

	var req request_models.CreateWeatherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	weather, err := r.runService.AddWeather(c.Request.Context(), runID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, weather, "Weather added successfully")
}

func (r *RunsController) LinkToWorkout(c *gin.Context) {
	runID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid run ID")
		return
	}
	workoutID, err := uuid.Parse(c.Param("workoutId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid workout ID")
		return
	}

	run, err := r.runService.LinkToWorkout(c.Request.Context(), runID, workoutID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, run, "Run linked to workout")
}
