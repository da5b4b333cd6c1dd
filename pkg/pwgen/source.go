package pwgen

import (
	"crypto/rand"
	"encoding/binary"
	mrand "math/rand/v2"
)

// Source supplies the random draws consumed by the generator.
// *math/rand/v2.Rand satisfies it.
type Source interface {
	// IntN returns a uniform value in [0, n).
	IntN(n int) int
	// Float64 returns a uniform value in [0.0, 1.0).
	Float64() float64
	// Int returns a non-negative value over the full int range.
	Int() int
}

// cryptoSource is a stateless math/rand/v2 source reading from crypto/rand.
type cryptoSource struct{}

func (cryptoSource) Uint64() uint64 {
	var b [8]byte
	// crypto/rand.Read never returns an error on supported platforms.
	_, _ = rand.Read(b[:])
	return binary.LittleEndian.Uint64(b[:])
}

// NewCryptoSource returns a Source backed by crypto/rand.
// It holds no state and is safe for concurrent use.
func NewCryptoSource() Source {
	return mrand.New(cryptoSource{})
}

// NewSeededSource returns a reproducible PCG-based Source.
// The returned source is not safe for concurrent use on its own;
// a Generator serialises access to it.
func NewSeededSource(seed uint64) Source {
	return mrand.New(mrand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
