package services

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const openMeteoArchiveURL = "https://archive-api.open-meteo.com/v1/archive"

// WeatherObservation is one hourly reading from the historical archive.
// Pointer fields stay nil when the provider has no value for that hour.
type WeatherObservation struct {
	Temperature   *float64
	FeelsLike     *float64
	Humidity      *int
	WindSpeed     *float64
	WindDirection string
	Conditions    string
	Precipitation *float64
}

type WeatherServiceInterface interface {
	HistoricalWeather(ctx context.Context, lat, lon float64, at time.Time) (*WeatherObservation, error)
}

// OpenMeteoService queries the Open-Meteo archive. The archive resolves to
// hourly granularity, so the run's minute and second are discarded.
type OpenMeteoService struct {
	HTTP    *http.Client
	BaseURL string
}

func NewOpenMeteoService() *OpenMeteoService {
	return &OpenMeteoService{
		HTTP:    &http.Client{Timeout: 15 * time.Second},
		BaseURL: openMeteoArchiveURL,
	}
}

type openMeteoHourly struct {
	Temperature   []*float64 `json:"temperature_2m"`
	FeelsLike     []*float64 `json:"apparent_temperature"`
	Humidity      []*float64 `json:"relative_humidity_2m"`
	Precipitation []*float64 `json:"precipitation"`
	WeatherCode   []*float64 `json:"weather_code"`
	WindSpeed     []*float64 `json:"wind_speed_10m"`
	WindDirection []*float64 `json:"wind_direction_10m"`
}

func (s *OpenMeteoService) HistoricalWeather(ctx context.Context, lat, lon float64, at time.Time) (*WeatherObservation, error) {
	day := at.Format("2006-01-02")
	hour := at.Hour()

	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(lon, 'f', -1, 64))
	q.Set("start_date", day)
	q.Set("end_date", day)
	q.Set("hourly", "temperature_2m,relative_humidity_2m,apparent_temperature,precipitation,weather_code,wind_speed_10m,wind_direction_10m")
	q.Set("temperature_unit", "fahrenheit")
	q.Set("wind_speed_unit", "mph")
	q.Set("precipitation_unit", "inch")
	q.Set("timezone", "auto")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.BaseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("open-meteo: status %d", resp.StatusCode)
	}

	var payload struct {
		Hourly openMeteoHourly `json:"hourly"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("open-meteo: decoding response: %w", err)
	}

	obs := &WeatherObservation{
		Temperature:   hourlyValue(payload.Hourly.Temperature, hour),
		FeelsLike:     hourlyValue(payload.Hourly.FeelsLike, hour),
		WindSpeed:     hourlyValue(payload.Hourly.WindSpeed, hour),
		Precipitation: hourlyValue(payload.Hourly.Precipitation, hour),
	}
	if h := hourlyValue(payload.Hourly.Humidity, hour); h != nil {
		pct := int(*h)
		obs.Humidity = &pct
	}
	if d := hourlyValue(payload.Hourly.WindDirection, hour); d != nil {
		obs.WindDirection = compassDirection(*d)
	}
	if c := hourlyValue(payload.Hourly.WeatherCode, hour); c != nil {
		obs.Conditions = conditionForCode(int(*c))
	}
	return obs, nil
}

func hourlyValue(values []*float64, hour int) *float64 {
	if hour < len(values) {
		return values[hour]
	}
	return nil
}

var compassPoints = []string{
	"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
}

// compassDirection maps degrees onto the 16-point wind rose.
func compassDirection(degrees float64) string {
	index := int(math.Round(degrees/22.5)) % 16
	return compassPoints[index]
}

// WMO weather interpretation codes.
var weatherConditions = map[int]string{
	0:  "Clear",
	1:  "Mainly Clear",
	2:  "Partly Cloudy",
	3:  "Overcast",
	45: "Foggy",
	48: "Foggy",
	51: "Light Drizzle",
	53: "Drizzle",
	55: "Heavy Drizzle",
	61: "Light Rain",
	63: "Rain",
	65: "Heavy Rain",
	66: "Freezing Rain",
	67: "Heavy Freezing Rain",
	71: "Light Snow",
	73: "Snow",
	75: "Heavy Snow",
	77: "Snow Grains",
	80: "Light Showers",
	81: "Showers",
	82: "Heavy Showers",
	85: "Light Snow Showers",
	86: "Heavy Snow Showers",
	95: "Thunderstorm",
	96: "Thunderstorm with Hail",
	99: "Heavy Thunderstorm",
}

func conditionForCode(code int) string {
	if cond, ok := weatherConditions[code]; ok {
		return cond
	}
	return "Unknown"
}
