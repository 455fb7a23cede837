package fmath

import (
	crand "crypto/rand"

	"github.com/MichaelTJones/pcg"
)

// hashSeed folds with boot entropy when seeding a fresh generator.
const hashSeed uint64 = 0x710677E178DFAF2E

// pcg default stream for single-sequence use
const defaultSequence uint64 = 0xda3e39cb94b95bdb

// Rand is a small fast generator for jitter, spawning and sampling work.
// It is not safe for concurrent use; give each goroutine its own
// instance. The zero value is unusable, construct through NewRand or
// NewRandSeeded.
type Rand struct {
	r *pcg.PCG32
}

// NewRand returns a generator seeded from system entropy. If the
// entropy source fails the fixed fold constant seeds it alone.
func NewRand() *Rand {
	hash := hashSeed
	var buf [8]byte
	if _, err := crand.Read(buf[:]); err == nil {
		for _, b := range buf {
			hash = hash<<8 | uint64(b)
		}
	}
	return NewRandSeeded(int64(hash))
}

// NewRandSeeded returns a deterministic generator for reproducible runs.
func NewRandSeeded(seed int64) *Rand {
	r := pcg.NewPCG32()
	r.Seed(uint64(seed), defaultSequence)
	return &Rand{r: r}
}

// Uint32 returns the next raw 32 bits.
func (r *Rand) Uint32() uint32 {
	return r.r.Random()
}

// Intn returns a uniform int in [0, n).
func (r *Rand) Intn(n int) int {
	return int(r.r.Bounded(uint32(n)))
}

// Int31n returns a uniform int32 in [0, n).
func (r *Rand) Int31n(n int32) int32 {
	return int32(r.r.Bounded(uint32(n)))
}

// Float32 returns a uniform float32 in [0, 1].
func (r *Rand) Float32() float32 {
	return float32(r.r.Random()) / (1<<32 - 1)
}

// Float64 returns a uniform float64 in [0, 1).
func (r *Rand) Float64() float64 {
	u := uint64(r.r.Random())<<32 | uint64(r.r.Random())
	return float64(u>>11) / (1 << 53)
}
