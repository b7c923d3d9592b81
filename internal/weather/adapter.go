package weather

import (
	"context"
	"log"
	"math"
)

// Adapter is the single entry point the collector fetches through. It never
// fails: when the live source is unconfigured, errors out, or returns
// non-finite values, it falls back to the synthetic generator.
type Adapter struct {
	source    Source // nil when no API key is configured
	generator *SyntheticGenerator
	city      string
}

// NewAdapter creates an Adapter for the given city. Pass a nil source to run
// in synthetic-only mode; the adapter then performs no network calls at all.
func NewAdapter(source Source, generator *SyntheticGenerator, city string) *Adapter {
	return &Adapter{
		source:    source,
		generator: generator,
		city:      city,
	}
}

// Fetch returns the current reading and its provenance. All live-source
// failures are absorbed here; callers never see an error.
func (a *Adapter) Fetch(ctx context.Context) (Reading, Provenance) {
	if a.source == nil {
		return a.generator.Generate(), ProvenanceMock
	}

	reading, err := a.source.Fetch(ctx, a.city)
	if err != nil {
		log.Printf("adapter: %s fetch failed for %s, using synthetic data: %v", a.source.Name(), a.city, err)
		return a.generator.Generate(), ProvenanceMock
	}

	if !finite(reading) {
		log.Printf("adapter: %s returned non-finite values for %s, using synthetic data", a.source.Name(), a.city)
		return a.generator.Generate(), ProvenanceMock
	}

	return reading, ProvenanceLive
}

// finite reports whether every numeric field of the reading is a real number.
func finite(r Reading) bool {
	for _, v := range []float64{
		r.TemperatureC, r.HumidityPct, r.PressureHpa,
		r.WindSpeedMS, r.CloudinessPct, r.FeelsLikeC,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
