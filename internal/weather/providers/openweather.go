package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/i474232898/weather-collector/internal/weather"
	"github.com/sony/gobreaker"
)

// OpenWeatherSource implements the weather.Source interface for OpenWeatherMap.
type OpenWeatherSource struct {
	name    string
	apiKey  string
	baseURL string
	client  *http.Client
	circuit *gobreaker.CircuitBreaker
}

func NewOpenWeatherSource(client *http.Client, apiKey string) *OpenWeatherSource {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "openweather",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &OpenWeatherSource{
		name:    "openweathermap",
		apiKey:  apiKey,
		baseURL: "https://api.openweathermap.org/data/2.5/weather",
		client:  client,
		circuit: cb,
	}
}

func (s *OpenWeatherSource) Name() string {
	return s.name
}

func (s *OpenWeatherSource) Fetch(ctx context.Context, city string) (weather.Reading, error) {
	if s.apiKey == "" {
		return weather.Reading{}, fmt.Errorf("openweather api key is not configured")
	}

	values := url.Values{}
	values.Set("q", city)
	values.Set("appid", s.apiKey)
	values.Set("units", "metric")

	u := fmt.Sprintf("%s?%s", s.baseURL, values.Encode())
	req, err := http.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return weather.Reading{}, err
	}

	resp, err := doRequest(ctx, s.client, s.circuit, req)
	if err != nil {
		return weather.Reading{}, err
	}
	defer resp.Body.Close()

	var payload struct {
		Main struct {
			Temp      float64 `json:"temp"`
			FeelsLike float64 `json:"feels_like"`
			Humidity  float64 `json:"humidity"`
			Pressure  float64 `json:"pressure"`
		} `json:"main"`
		Wind struct {
			Speed float64 `json:"speed"`
		} `json:"wind"`
		Clouds struct {
			All float64 `json:"all"`
		} `json:"clouds"`
		Weather []struct {
			Description string `json:"description"`
		} `json:"weather"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return weather.Reading{}, err
	}

	description := ""
	if len(payload.Weather) > 0 {
		description = payload.Weather[0].Description
	}

	return weather.Reading{
		TemperatureC:  payload.Main.Temp,
		HumidityPct:   payload.Main.Humidity,
		PressureHpa:   payload.Main.Pressure,
		WindSpeedMS:   payload.Wind.Speed,
		CloudinessPct: payload.Clouds.All,
		Description:   description,
		FeelsLikeC:    payload.Main.FeelsLike,
	}, nil
}
