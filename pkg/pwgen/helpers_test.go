package pwgen_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// scriptedSource replays fixed draws. Each method has its own queue so a
// scenario can be written down one call site at a time.
type scriptedSource struct {
	intNs  []int
	floats []float64
	ints   []int
}

func (s *scriptedSource) IntN(n int) int {
	if len(s.intNs) == 0 {
		panic("scriptedSource: IntN queue exhausted")
	}
	v := s.intNs[0]
	s.intNs = s.intNs[1:]
	if v < 0 || v >= n {
		panic(fmt.Sprintf("scriptedSource: IntN(%d) scripted with out of range value %d", n, v))
	}
	return v
}

func (s *scriptedSource) Float64() float64 {
	if len(s.floats) == 0 {
		panic("scriptedSource: Float64 queue exhausted")
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

func (s *scriptedSource) Int() int {
	if len(s.ints) == 0 {
		panic("scriptedSource: Int queue exhausted")
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v
}

func (s *scriptedSource) assertDrained(t *testing.T) {
	t.Helper()
	assert.Empty(t, s.intNs, "unused IntN draws")
	assert.Empty(t, s.floats, "unused Float64 draws")
	assert.Empty(t, s.ints, "unused Int draws")
}

// Table indexes used by the scripted scenarios.
const (
	idxA  = 0
	idxAE = 1
	idxB  = 4
	idxCH = 6
	idxE  = 8
	idxGH = 13
	idxNG = 22
	idxOH = 24
	idxT  = 32
	idxU  = 34
)
