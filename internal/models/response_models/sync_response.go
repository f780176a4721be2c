package response_models

// SyncedRun reports one newly created run from a sync cycle.
type SyncedRun struct {
	ID               string  `json:"id"`
	Date             string  `json:"date,omitempty"` // YYYY-MM-DD
	Distance         float64 `json:"distance"`
	Pace             string  `json:"pace"`
	MatchedWorkoutID *string `json:"matched,omitempty"`
}

type SyncResult struct {
	Status           string      `json:"status"`
	ActivitiesSynced int         `json:"activities_synced"`
	Activities       []SyncedRun `json:"activities"`
}

type SyncStatus struct {
	Status string `json:"status"` // connected | disconnected
}
