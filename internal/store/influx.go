package store

import (
	"context"
	"fmt"
	"log"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	"github.com/i474232898/weather-collector/internal/weather"
)

// InfluxWriter persists weather readings as points in an InfluxDB v2 bucket.
// Each reading becomes exactly one point, transmitted immediately (the
// blocking write API does not batch), so a successful Write means the point
// left the process.
type InfluxWriter struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	city     string
}

// NewInfluxWriter connects to the store at url and writes into org/bucket.
// The returned writer is owned for the whole process lifetime; Close must be
// called exactly once on shutdown.
func NewInfluxWriter(url, token, org, bucket, city string) *InfluxWriter {
	client := influxdb2.NewClient(url, token)
	return &InfluxWriter{
		client:   client,
		writeAPI: client.WriteAPIBlocking(org, bucket),
		city:     city,
	}
}

// NewWeatherPoint converts a reading into the persisted point form:
// measurement "weather", one city tag, six float fields and one string field.
// No timestamp is set; the store assigns it at write time.
func NewWeatherPoint(city string, r weather.Reading) *write.Point {
	return influxdb2.NewPointWithMeasurement("weather").
		AddTag("city", city).
		AddField("temperature", r.TemperatureC).
		AddField("humidity", r.HumidityPct).
		AddField("pressure", r.PressureHpa).
		AddField("wind_speed", r.WindSpeedMS).
		AddField("cloudiness", r.CloudinessPct).
		AddField("feels_like", r.FeelsLikeC).
		AddField("description", r.Description)
}

// Write persists one reading. On success it logs a one-line summary; the
// caller decides what to do with a returned error (the collector logs and
// moves on, it never aborts the loop).
func (w *InfluxWriter) Write(ctx context.Context, r weather.Reading) error {
	point := NewWeatherPoint(w.city, r)

	if err := w.writeAPI.WritePoint(ctx, point); err != nil {
		return fmt.Errorf("influx write for %s: %w", w.city, err)
	}

	log.Printf("store: wrote weather point for %s: %.0f°C, %.0f%% humidity", w.city, r.TemperatureC, r.HumidityPct)
	return nil
}

// Close releases the underlying HTTP resources of the InfluxDB client.
func (w *InfluxWriter) Close() {
	w.client.Close()
}
