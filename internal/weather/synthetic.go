package weather

import "math/rand/v2"

// descriptions a synthetic reading may carry.
var syntheticDescriptions = []string{
	"clear sky",
	"few clouds",
	"scattered clouds",
	"broken clouds",
	"light rain",
}

// SyntheticGenerator produces randomized but bounded-range readings for use
// when no live source is available. Each call samples independently; no
// seeding, no I/O.
type SyntheticGenerator struct{}

func NewSyntheticGenerator() *SyntheticGenerator {
	return &SyntheticGenerator{}
}

// Generate returns a plausible tropical-climate reading:
// temperature and feels-like 28±3°C (sampled independently), humidity 70±10%,
// pressure 1013±5 hPa, wind 0-15 m/s, cloudiness 0-100%.
func (g *SyntheticGenerator) Generate() Reading {
	return Reading{
		TemperatureC:  28 + symmetric(3),
		HumidityPct:   70 + symmetric(10),
		PressureHpa:   1013 + symmetric(5),
		WindSpeedMS:   rand.Float64() * 15,
		CloudinessPct: rand.Float64() * 100,
		Description:   syntheticDescriptions[rand.IntN(len(syntheticDescriptions))],
		FeelsLikeC:    28 + symmetric(3),
	}
}

// symmetric returns a uniform sample from [-k, k].
func symmetric(k float64) float64 {
	return (rand.Float64()*2 - 1) * k
}
