// Package sequence produces the random input sequences that are summed.
package sequence

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	apperrors "github.com/agbru/arraysum/internal/errors"
)

// Bounds of the uniform distribution the values are drawn from, [Min, Max).
const (
	Min = 0.0
	Max = 1000.0
)

// Generator draws independent values uniformly from [Min, Max).
// A Generator is not safe for concurrent use.
type Generator struct {
	dist distuv.Uniform
	seed uint64
}

// Option configures a Generator.
type Option func(*generatorOptions)

type generatorOptions struct {
	seed    uint64
	hasSeed bool
}

// WithSeed fixes the seed so that the produced sequences are reproducible.
func WithSeed(seed uint64) Option {
	return func(o *generatorOptions) {
		o.seed = seed
		o.hasSeed = true
	}
}

// NewGenerator returns a generator seeded from the system entropy source,
// unless WithSeed is given.
func NewGenerator(opts ...Option) (*Generator, error) {
	var o generatorOptions
	for _, opt := range opts {
		opt(&o)
	}
	seed := o.seed
	if !o.hasSeed {
		var err error
		if seed, err = entropySeed(); err != nil {
			return nil, apperrors.WrapError(err, "seeding generator")
		}
	}
	return &Generator{
		dist: distuv.Uniform{Min: Min, Max: Max, Src: rand.NewSource(seed)},
		seed: seed,
	}, nil
}

// Seed reports the seed in use, so that a run can be reproduced.
func (g *Generator) Seed() uint64 { return g.seed }

// Generate returns a fresh sequence of n values.
func (g *Generator) Generate(n int) ([]float64, error) {
	if n < 1 {
		return nil, apperrors.ValidationError{Field: "elements", Message: fmt.Sprintf("must be at least 1, got %d", n)}
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = g.dist.Rand()
	}
	return out, nil
}

func entropySeed() (uint64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}
