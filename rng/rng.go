package rng

import (
	crand "crypto/rand"
	"encoding/binary"
	"math"
	"math/rand"
)

// MaxSeed is the largest seed drawn when no seed is supplied.
const MaxSeed = 999_999_999

// Source is a seeded integer generator. It is not safe for concurrent use;
// each maze generation owns its own Source.
type Source struct {
	seed int64
	rand *rand.Rand
}

// New returns a Source seeded with seed. A zero seed is replaced by a fresh
// one in [1, MaxSeed] drawn from the operating system.
func New(seed int64) *Source {
	if seed == 0 {
		seed = entropySeed()
	}
	return &Source{
		seed: seed,
		rand: rand.New(rand.NewSource(seed)),
	}
}

// Seed returns the seed actually used.
func (src *Source) Seed() int64 {
	return src.seed
}

// NextInt returns an integer in [min, max), mapping a uniform float r in
// [0, 1) through floor(min + r*(max-min)). It panics if max <= min.
func (src *Source) NextInt(min, max int) int {
	if max <= min {
		panic("rng: NextInt called with empty range")
	}
	r := src.rand.Float64()
	value := int(math.Floor(float64(min) + r*float64(max-min)))
	if value >= max {
		// float rounding on very wide ranges
		value = max - 1
	}
	return value
}

func entropySeed() int64 {
	var buf [8]byte
	if _, err := crand.Read(buf[:]); err != nil {
		panic(err)
	}
	return int64(binary.LittleEndian.Uint64(buf[:])%MaxSeed) + 1
}
