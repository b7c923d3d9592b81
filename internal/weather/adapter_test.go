package weather

import (
	"context"
	"errors"
	"math"
	"testing"
)

// fakeSource implements Source with a canned reading or error and counts calls.
type fakeSource struct {
	reading Reading
	err     error
	calls   int
}

func (f *fakeSource) Name() string { return "fake" }

func (f *fakeSource) Fetch(ctx context.Context, city string) (Reading, error) {
	f.calls++
	if f.err != nil {
		return Reading{}, f.err
	}
	return f.reading, nil
}

func TestAdapterReturnsLiveReading(t *testing.T) {
	src := &fakeSource{reading: Reading{
		TemperatureC: 21.5,
		HumidityPct:  55,
		PressureHpa:  1015,
		Description:  "few clouds",
		FeelsLikeC:   20.9,
	}}
	adapter := NewAdapter(src, NewSyntheticGenerator(), "Testville")

	reading, source := adapter.Fetch(context.Background())
	if source != ProvenanceLive {
		t.Fatalf("expected live provenance, got %s", source)
	}
	if reading != src.reading {
		t.Fatalf("expected live reading %+v, got %+v", src.reading, reading)
	}
}

func TestAdapterFallsBackOnError(t *testing.T) {
	src := &fakeSource{err: errors.New("connection refused")}
	adapter := NewAdapter(src, NewSyntheticGenerator(), "Testville")

	reading, source := adapter.Fetch(context.Background())
	if source != ProvenanceMock {
		t.Fatalf("expected mock provenance, got %s", source)
	}
	if reading.Description == "" {
		t.Fatal("fallback reading has empty description")
	}
}

func TestAdapterFallsBackOnNonFiniteValues(t *testing.T) {
	src := &fakeSource{reading: Reading{
		TemperatureC: math.NaN(),
		Description:  "clear sky",
	}}
	adapter := NewAdapter(src, NewSyntheticGenerator(), "Testville")

	reading, source := adapter.Fetch(context.Background())
	if source != ProvenanceMock {
		t.Fatalf("expected mock provenance for NaN reading, got %s", source)
	}
	if math.IsNaN(reading.TemperatureC) {
		t.Fatal("fallback reading still carries NaN temperature")
	}
}

// TestAdapterWithoutSourceSkipsNetwork verifies synthetic-only mode never
// touches a source at all.
func TestAdapterWithoutSourceSkipsNetwork(t *testing.T) {
	adapter := NewAdapter(nil, NewSyntheticGenerator(), "Testville")

	for i := 0; i < 10; i++ {
		reading, source := adapter.Fetch(context.Background())
		if source != ProvenanceMock {
			t.Fatalf("expected mock provenance, got %s", source)
		}
		if reading.Description == "" {
			t.Fatal("synthetic reading has empty description")
		}
	}
}
