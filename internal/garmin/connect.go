package garmin

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"
)

const defaultBaseURL = "https://connectapi.garmin.com"

// APIError is a non-2xx reply from Garmin Connect. Transient errors are
// worth retrying on a later sync pass; everything else means the request
// itself is wrong.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("garmin: status %d: %s", e.StatusCode, e.Body)
}

func (e *APIError) Transient() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= 500
}

// ConnectClient talks to Garmin Connect with a pre-obtained OAuth token.
// Obtaining and refreshing the token is handled outside this service.
type ConnectClient struct {
	HTTP    *http.Client
	BaseURL string
	Token   string
}

func NewClientFromEnv() *ConnectClient {
	base := os.Getenv("GARMIN_API_BASE")
	if base == "" {
		base = defaultBaseURL
	}
	return &ConnectClient{
		HTTP:    &http.Client{Timeout: 30 * time.Second},
		BaseURL: base,
		Token:   os.Getenv("GARMIN_ACCESS_TOKEN"),
	}
}

func (c *ConnectClient) Configured() bool {
	return c != nil && c.Token != ""
}

// rawActivity mirrors the provider payload fields the tracker cares about.
type rawActivity struct {
	ActivityID   int64 `json:"activityId"`
	ActivityType struct {
		TypeKey string `json:"typeKey"`
	} `json:"activityType"`
	Distance       *float64 `json:"distance"`
	Duration       *float64 `json:"duration"`
	AverageHR      *float64 `json:"averageHR"`
	MaxHR          *float64 `json:"maxHR"`
	ElevationGain  *float64 `json:"elevationGain"`
	AvgRunCadence  *float64 `json:"averageRunningCadenceInStepsPerMinute"`
	Calories       *float64 `json:"calories"`
	StartLatitude  *float64 `json:"startLatitude"`
	StartLongitude *float64 `json:"startLongitude"`
	StartTimeLocal string   `json:"startTimeLocal"`
}

func (c *ConnectClient) ActivitiesByDate(ctx context.Context, start, end time.Time) ([]Activity, error) {
	q := url.Values{}
	q.Set("startDate", start.Format("2006-01-02"))
	q.Set("endDate", end.Format("2006-01-02"))
	q.Set("start", "0")
	q.Set("limit", "1000")

	var payload []json.RawMessage
	if err := c.get(ctx, "/activitylist-service/activities/search/activities", q, &payload); err != nil {
		return nil, err
	}

	activities := make([]Activity, 0, len(payload))
	for _, raw := range payload {
		var ra rawActivity
		if err := json.Unmarshal(raw, &ra); err != nil {
			return nil, fmt.Errorf("garmin: decoding activity: %w", err)
		}
		a := Activity{
			ID:             ra.ActivityID,
			TypeKey:        ra.ActivityType.TypeKey,
			ElevationGain:  ra.ElevationGain,
			Cadence:        floatToInt(ra.AvgRunCadence),
			Calories:       floatToInt(ra.Calories),
			AvgHR:          floatToInt(ra.AverageHR),
			MaxHR:          floatToInt(ra.MaxHR),
			StartLat:       ra.StartLatitude,
			StartLon:       ra.StartLongitude,
			StartTimeLocal: ra.StartTimeLocal,
			Raw:            raw,
		}
		if ra.Distance != nil {
			a.DistanceMeters = *ra.Distance
		}
		if ra.Duration != nil {
			a.DurationSeconds = *ra.Duration
		}
		activities = append(activities, a)
	}
	return activities, nil
}

func (c *ConnectClient) SleepSummary(ctx context.Context, date time.Time) (*SleepSummary, error) {
	q := url.Values{}
	q.Set("date", date.Format("2006-01-02"))

	var payload struct {
		DailySleepDTO *struct {
			SleepTimeSeconds int `json:"sleepTimeSeconds"`
		} `json:"dailySleepDTO"`
	}
	if err := c.get(ctx, "/wellness-service/wellness/dailySleep", q, &payload); err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	if payload.DailySleepDTO == nil {
		return nil, nil
	}
	return &SleepSummary{TotalSleepSeconds: payload.DailySleepDTO.SleepTimeSeconds}, nil
}

func (c *ConnectClient) HRVSummary(ctx context.Context, date time.Time) (*HRVSummary, error) {
	var payload struct {
		HRVSummary *struct {
			LastNightAvg *float64 `json:"lastNightAvg"`
		} `json:"hrvSummary"`
	}
	path := "/hrv-service/hrv/" + date.Format("2006-01-02")
	if err := c.get(ctx, path, nil, &payload); err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	if payload.HRVSummary == nil || payload.HRVSummary.LastNightAvg == nil {
		return nil, nil
	}
	return &HRVSummary{LastNightAvg: int(*payload.HRVSummary.LastNightAvg)}, nil
}

func (c *ConnectClient) get(ctx context.Context, path string, q url.Values, out interface{}) error {
	u := c.BaseURL + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.Token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

func isNotFound(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.StatusCode == http.StatusNotFound
}

func floatToInt(f *float64) *int {
	if f == nil {
		return nil
	}
	i := int(*f)
	return &i
}
