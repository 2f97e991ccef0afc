package gacha

import (
	cryptoRand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
)

// RandomSource supplies the uniform draws the engine consumes.
// Implementations must return values in [0, 1).
type RandomSource interface {
	Float64() float64
}

// cryptoRNG is the default source. It reads 53 random bits from
// crypto/rand so independent engine instances never share a stream.
type cryptoRNG struct{}

func (cryptoRNG) Float64() float64 {
	var buf [8]byte
	if _, err := cryptoRand.Read(buf[:]); err != nil {
		// crypto/rand read failed; fall back to math/rand/v2
		return rand.Float64()
	}
	u := binary.BigEndian.Uint64(buf[:]) >> 11 // keep 53 bits
	return float64(u) / (1 << 53)
}

// DefaultRNG returns the crypto-backed source used when no source is injected.
func DefaultRNG() RandomSource { return cryptoRNG{} }

// seededRNG is a reproducible PCG source for simulations and tests.
type seededRNG struct{ r *rand.Rand }

// NewSeededRNG returns a deterministic source for the given seed.
func NewSeededRNG(seed uint64) RandomSource {
	return &seededRNG{r: rand.New(rand.NewPCG(seed, 0))}
}

func (s *seededRNG) Float64() float64 { return s.r.Float64() }
