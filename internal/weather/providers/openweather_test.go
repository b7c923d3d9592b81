package providers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestOpenWeatherFetchMapsPayload(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"main": {"temp": 25.5, "feels_like": 24.9, "humidity": 66, "pressure": 1012},
			"wind": {"speed": 3.2},
			"clouds": {"all": 40},
			"weather": [{"description": "clear sky"}, {"description": "ignored"}]
		}`))
	}))
	defer server.Close()

	src := NewOpenWeatherSource(server.Client(), "test-key")
	src.baseURL = server.URL

	reading, err := src.Fetch(context.Background(), "Testville")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if reading.TemperatureC != 25.5 || reading.HumidityPct != 66 || reading.PressureHpa != 1012 {
		t.Fatalf("main metrics not mapped: %+v", reading)
	}
	if reading.WindSpeedMS != 3.2 {
		t.Fatalf("wind speed not mapped: %f", reading.WindSpeedMS)
	}
	if reading.CloudinessPct != 40 {
		t.Fatalf("cloudiness not mapped: %f", reading.CloudinessPct)
	}
	if reading.FeelsLikeC != 24.9 {
		t.Fatalf("feels-like not mapped: %f", reading.FeelsLikeC)
	}
	if reading.Description != "clear sky" {
		t.Fatalf("expected first weather description, got %q", reading.Description)
	}

	if gotQuery != "appid=test-key&q=Testville&units=metric" {
		t.Fatalf("unexpected query: %s", gotQuery)
	}
}

func TestOpenWeatherFetchWithoutKey(t *testing.T) {
	src := NewOpenWeatherSource(http.DefaultClient, "")

	if _, err := src.Fetch(context.Background(), "Testville"); err == nil {
		t.Fatal("expected error when api key is not configured")
	}
}

func TestOpenWeatherFetchNon2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"cod":401,"message":"Invalid API key"}`, http.StatusUnauthorized)
	}))
	defer server.Close()

	src := NewOpenWeatherSource(server.Client(), "bad-key")
	src.baseURL = server.URL

	if _, err := src.Fetch(context.Background(), "Testville"); err == nil {
		t.Fatal("expected error for 401 response")
	}
}

func TestOpenWeatherFetchMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer server.Close()

	src := NewOpenWeatherSource(server.Client(), "test-key")
	src.baseURL = server.URL

	if _, err := src.Fetch(context.Background(), "Testville"); err == nil {
		t.Fatal("expected error for malformed body")
	}
}
