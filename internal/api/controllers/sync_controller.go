package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"paceline/internal/models/response_models"
	"paceline/internal/services"
	"paceline/pkg/utils"
)

type SyncController struct {
	syncService services.SyncServiceInterface
}

func NewSyncController(syncService services.SyncServiceInterface) *SyncController {
	return &SyncController{syncService: syncService}
}

// SyncActivities triggers one reconciliation cycle for a plan. The date
// window is optional; the engine falls back to the plan's own span.
func (s *SyncController) SyncActivities(c *gin.Context) {
	planID, err := uuid.Parse(c.Query("plan_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid plan ID")
		return
	}

	var start, end *time.Time
	if raw := c.Query("start_date"); raw != "" {
		parsed, err := utils.ParseDateOnly(raw)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid start date")
			return
		}
		start = &parsed
	}
	if raw := c.Query("end_date"); raw != "" {
		parsed, err := utils.ParseDateOnly(raw)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid end date")
			return
		}
		end = &parsed
	}

	synced, err := s.syncService.SyncActivities(c.Request.Context(), planID, start, end)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.SyncResult{
		Status:           "success",
		ActivitiesSynced: len(synced),
		Activities:       synced,
	}, "Sync completed")
}

func (s *SyncController) Status(c *gin.Context) {
	utils.RespondSuccess(c, s.syncService.Status(), "Garmin connection status")
}
