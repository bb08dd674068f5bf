package layout

import (
	"math"
	"math/rand/v2"

	"github.com/bnema/memory-garden/internal/domain"
)

const (
	DefaultLotusCount = 6
	DefaultPondRadius = 4.0

	lotusMinRadius    = 0.4
	lotusRadiusJitter = 0.6
)

var DefaultPondCenter = domain.Vec3{15, 0, 15}

// Pond lays lotus flowers around a circular pond. Flowers are not checked
// against grid cells.
type Pond struct {
	Center domain.Vec3
	Radius float64
	// LotusCount is the minimum number of flowers on the ring; decorative
	// lotus flowers fill the gap when fewer records are given.
	LotusCount int
}

func DefaultPond() Pond {
	return Pond{
		Center:     DefaultPondCenter,
		Radius:     DefaultPondRadius,
		LotusCount: DefaultLotusCount,
	}
}

// NewRand returns the generator used for lotus jitter. A zero seed is
// replaced with fallback so callers can opt into a reproducible layout.
func NewRand(seed, fallback uint64) *rand.Rand {
	if seed == 0 {
		seed = fallback
	}

	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Place spreads flowers evenly by angle with a random radius in
// [0.4R, R) per flower.
func (p Pond) Place(flowers []domain.Flower, rng *rand.Rand) []domain.Flower {
	placed := make([]domain.Flower, 0, max(len(flowers), p.LotusCount))
	placed = append(placed, flowers...)
	for len(placed) < p.LotusCount {
		placed = append(placed, domain.Flower{ModelPath: domain.LotusModelPath})
	}

	n := float64(len(placed))
	for i := range placed {
		angle := float64(i) / n * 2 * math.Pi
		radius := p.Radius * (lotusMinRadius + lotusRadiusJitter*rng.Float64())
		placed[i].Position = domain.Vec3{
			p.Center.X() + radius*math.Cos(angle),
			0,
			p.Center.Z() + radius*math.Sin(angle),
		}
	}

	return placed
}
