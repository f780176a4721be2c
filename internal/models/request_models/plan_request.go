package request_models

type CreatePlanRequest struct {
	Name       string `json:"name" binding:"required"`
	StartDate  string `json:"start_date" binding:"required"` // YYYY-MM-DD
	RaceDate   string `json:"race_date" binding:"required"`
	TargetTime string `json:"target_time"`
	TargetPace string `json:"target_pace"`
	Units      string `json:"units"`
}

type UpdatePlanRequest struct {
	Name       *string `json:"name"`
	StartDate  *string `json:"start_date"`
	RaceDate   *string `json:"race_date"`
	TargetTime *string `json:"target_time"`
	TargetPace *string `json:"target_pace"`
	Units      *string `json:"units"`
}
