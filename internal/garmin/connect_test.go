package garmin

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(srv *httptest.Server) *ConnectClient {
	return &ConnectClient{HTTP: srv.Client(), BaseURL: srv.URL, Token: "test-token"}
}

func TestConfigured(t *testing.T) {
	assert.False(t, (&ConnectClient{}).Configured())
	assert.True(t, (&ConnectClient{Token: "x"}).Configured())

	var nilClient *ConnectClient
	assert.False(t, nilClient.Configured())
}

func TestActivitiesByDate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/activitylist-service/activities/search/activities", r.URL.Path)
		assert.Equal(t, "2026-03-01", r.URL.Query().Get("startDate"))
		assert.Equal(t, "2026-03-14", r.URL.Query().Get("endDate"))
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"activityId":1001,"activityType":{"typeKey":"running"},
			 "distance":9656.06,"duration":3000.5,"averageHR":152.0,
			 "averageRunningCadenceInStepsPerMinute":172.4,
			 "startLatitude":42.36,"startLongitude":-71.06,
			 "startTimeLocal":"2026-03-14 06:30:00"},
			{"activityId":1002,"activityType":{"typeKey":"cycling"},
			 "startTimeLocal":"2026-03-14 17:00:00"}
		]`))
	}))
	defer srv.Close()

	activities, err := testClient(srv).ActivitiesByDate(context.Background(),
		time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, activities, 2)

	run := activities[0]
	assert.Equal(t, int64(1001), run.ID)
	assert.Equal(t, "running", run.TypeKey)
	assert.Equal(t, 9656.06, run.DistanceMeters)
	assert.Equal(t, 3000.5, run.DurationSeconds)
	require.NotNil(t, run.AvgHR)
	assert.Equal(t, 152, *run.AvgHR)
	require.NotNil(t, run.Cadence)
	assert.Equal(t, 172, *run.Cadence)
	assert.Nil(t, run.Calories)
	assert.NotEmpty(t, run.Raw)

	ride := activities[1]
	assert.Equal(t, "cycling", ride.TypeKey)
	assert.Zero(t, ride.DistanceMeters)
	assert.Nil(t, ride.StartLat)
}

func TestActivitiesByDateUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("maintenance"))
	}))
	defer srv.Close()

	_, err := testClient(srv).ActivitiesByDate(context.Background(), time.Now(), time.Now())
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.True(t, apiErr.Transient())
}

func TestSleepSummary(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/wellness-service/wellness/dailySleep", r.URL.Path)
		assert.Equal(t, "2026-03-14", r.URL.Query().Get("date"))
		w.Write([]byte(`{"dailySleepDTO":{"sleepTimeSeconds":27000}}`))
	}))
	defer srv.Close()

	sleep, err := testClient(srv).SleepSummary(context.Background(),
		time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NotNil(t, sleep)
	assert.Equal(t, 27000, sleep.TotalSleepSeconds)
}

func TestSleepSummaryNoReading(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	sleep, err := testClient(srv).SleepSummary(context.Background(), time.Now())
	require.NoError(t, err)
	assert.Nil(t, sleep)
}

func TestHRVSummary(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/hrv-service/hrv/2026-03-14", r.URL.Path)
		w.Write([]byte(`{"hrvSummary":{"lastNightAvg":52.6}}`))
	}))
	defer srv.Close()

	hrv, err := testClient(srv).HRVSummary(context.Background(),
		time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NotNil(t, hrv)
	assert.Equal(t, 52, hrv.LastNightAvg)
}

func TestHRVSummaryEmptyPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	hrv, err := testClient(srv).HRVSummary(context.Background(), time.Now())
	require.NoError(t, err)
	assert.Nil(t, hrv)
}
