package weather

import "context"

// Provenance says where a reading came from.
type Provenance string

const (
	ProvenanceLive Provenance = "live"
	ProvenanceMock Provenance = "mock"
)

// Reading is the normalized current-weather view produced once per cycle.
// It is transient: built, written to the store, discarded.
type Reading struct {
	TemperatureC  float64 `json:"temperatureC"`
	HumidityPct   float64 `json:"humidityPercent"`
	PressureHpa   float64 `json:"pressureHpa"`
	WindSpeedMS   float64 `json:"windSpeed"`
	CloudinessPct float64 `json:"cloudinessPercent"`
	Description   string  `json:"description"`
	FeelsLikeC    float64 `json:"feelsLikeC"`
}

// Source abstracts a live weather data source (e.g. OpenWeatherMap).
type Source interface {
	Name() string
	Fetch(ctx context.Context, city string) (Reading, error)
}
