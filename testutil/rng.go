package testutil

import (
	"math/rand"
	"sync"

	"github.com/hupe1980/simclust/csr"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Uniform returns a pseudo-random number in [low, high).
func (r *RNG) Uniform(low, high float64) float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return low + r.rand.Float64()*(high-low)
}

// SparseProfiles generates a num x columns matrix where each cell is present
// with probability density and holds a value in [low, high).
func (r *RNG) SparseProfiles(num, columns int, density, low, high float64) *csr.Matrix {
	r.mu.Lock()
	defer r.mu.Unlock()

	m := csr.New(csr.WithColumnCount(columns))
	for range num {
		m.StartRow()
		for c := range columns {
			if r.rand.Float64() >= density {
				continue
			}
			_ = m.Append(c, low+r.rand.Float64()*(high-low))
		}
	}
	m.Finalize()

	return m
}

// ClusteredProfiles generates num rows drawn around clusters prototype profiles.
//
// Row i belongs to cluster i%clusters. Prototypes are random ratings in [1, 5);
// each row keeps a column with probability density and adds uniform noise
// in [-noise, noise). Every row has at least three entries.
func (r *RNG) ClusteredProfiles(num, columns, clusters int, density, noise float64) *csr.Matrix {
	r.mu.Lock()
	defer r.mu.Unlock()

	prototypes := make([][]float64, clusters)
	for k := range prototypes {
		p := make([]float64, columns)
		for c := range p {
			p[c] = 1 + r.rand.Float64()*4
		}
		prototypes[k] = p
	}

	m := csr.New(csr.WithColumnCount(columns))
	for i := range num {
		p := prototypes[i%clusters]

		present := make([]bool, columns)
		count := 0
		for c := range present {
			if r.rand.Float64() < density {
				present[c] = true
				count++
			}
		}
		for c := 0; count < 3 && c < columns; c++ {
			if !present[c] {
				present[c] = true
				count++
			}
		}

		m.StartRow()
		for c, ok := range present {
			if ok {
				_ = m.Append(c, p[c]+(r.rand.Float64()*2-1)*noise)
			}
		}
	}
	m.Finalize()

	return m
}
