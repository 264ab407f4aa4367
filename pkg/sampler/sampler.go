// Package sampler provides the seeded uniform random source threaded
// through a resolution pass.
//
// The resolver never touches a process-wide generator: a Source is
// injected by the caller so a fixed seed reproduces an identical scene.
// This is a correctness requirement of the pipeline, not an optimization.
package sampler

import "math/rand/v2"

// Source yields uniform variates in [0, 1). A single Source is threaded
// through one resolution pass; implementations need not be safe for
// concurrent use.
type Source interface {
	Float64() float64
}

type seeded struct{ r *rand.Rand }

// New returns a deterministic PCG-backed source for the given seed.
func New(seed uint64) Source {
	return &seeded{r: rand.New(rand.NewPCG(seed, seed^0xdeadbeef))}
}

func (s *seeded) Float64() float64 { return s.r.Float64() }

// Uniform draws uniformly from [lo, hi]. If lo == hi the bound itself is
// returned without consuming a variate, keeping pinned draws free.
func Uniform(src Source, lo, hi float64) float64 {
	if lo == hi {
		return lo
	}
	return lo + src.Float64()*(hi-lo)
}
