package kmeans

import "math/rand/v2"

// Seeding range for centroid cells.
const (
	InitLow  = 0.0
	InitHigh = 100.0
)

// RandomSource supplies independent uniform values in [low, high).
type RandomSource interface {
	Uniform(low, high float64) float64
}

// Source is a RandomSource backed by a PCG generator.
// It is not safe for concurrent use.
type Source struct {
	rand *rand.Rand
}

// NewSource returns a deterministic Source for seed.
func NewSource(seed uint64) *Source {
	return &Source{rand: rand.New(rand.NewPCG(seed, seed))}
}

// Uniform implements RandomSource.
func (s *Source) Uniform(low, high float64) float64 {
	return low + s.rand.Float64()*(high-low)
}

type globalSource struct{}

func (globalSource) Uniform(low, high float64) float64 {
	return low + rand.Float64()*(high-low)
}
