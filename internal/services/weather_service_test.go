package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompassDirection(t *testing.T) {
	assert.Equal(t, "N", compassDirection(0))
	assert.Equal(t, "E", compassDirection(90))
	assert.Equal(t, "S", compassDirection(180))
	assert.Equal(t, "W", compassDirection(270))
	assert.Equal(t, "NNE", compassDirection(22.5))
	// 349 rounds up past NNW and wraps back to north
	assert.Equal(t, "N", compassDirection(349))
	assert.Equal(t, "N", compassDirection(360))
}

func TestConditionForCode(t *testing.T) {
	assert.Equal(t, "Clear", conditionForCode(0))
	assert.Equal(t, "Light Rain", conditionForCode(61))
	assert.Equal(t, "Thunderstorm", conditionForCode(95))
	assert.Equal(t, "Unknown", conditionForCode(12))
	assert.Equal(t, "Unknown", conditionForCode(-1))
}

func TestHistoricalWeatherPicksRunHour(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2026-03-14", r.URL.Query().Get("start_date"))
		assert.Equal(t, "2026-03-14", r.URL.Query().Get("end_date"))
		assert.Equal(t, "fahrenheit", r.URL.Query().Get("temperature_unit"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"hourly":{
			"temperature_2m":[40.1,41.0,42.5,43.2,44.0,45.5,46.2],
			"apparent_temperature":[38.0,39.0,40.0,41.0,42.0,43.0,44.1],
			"relative_humidity_2m":[80,79,78,77,76,75,74],
			"precipitation":[0,0,0,0,0,0,0.01],
			"weather_code":[0,0,1,1,2,3,61],
			"wind_speed_10m":[5.0,5.5,6.0,6.5,7.0,7.5,8.0],
			"wind_direction_10m":[10,20,30,40,50,60,90]
		}}`))
	}))
	defer srv.Close()

	svc := &OpenMeteoService{HTTP: srv.Client(), BaseURL: srv.URL}
	obs, err := svc.HistoricalWeather(context.Background(), 42.36, -71.06,
		time.Date(2026, 3, 14, 6, 30, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NotNil(t, obs)

	require.NotNil(t, obs.Temperature)
	assert.Equal(t, 46.2, *obs.Temperature)
	require.NotNil(t, obs.FeelsLike)
	assert.Equal(t, 44.1, *obs.FeelsLike)
	require.NotNil(t, obs.Humidity)
	assert.Equal(t, 74, *obs.Humidity)
	assert.Equal(t, "E", obs.WindDirection)
	assert.Equal(t, "Light Rain", obs.Conditions)
}

func TestHistoricalWeatherHourBeyondSeries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"hourly":{"temperature_2m":[40.1]}}`))
	}))
	defer srv.Close()

	svc := &OpenMeteoService{HTTP: srv.Client(), BaseURL: srv.URL}
	obs, err := svc.HistoricalWeather(context.Background(), 42.36, -71.06,
		time.Date(2026, 3, 14, 22, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Nil(t, obs.Temperature)
	assert.Empty(t, obs.WindDirection)
	assert.Empty(t, obs.Conditions)
}

func TestHistoricalWeatherUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	svc := &OpenMeteoService{HTTP: srv.Client(), BaseURL: srv.URL}
	obs, err := svc.HistoricalWeather(context.Background(), 42.36, -71.06, time.Now())
	assert.Error(t, err)
	assert.Nil(t, obs)
}
