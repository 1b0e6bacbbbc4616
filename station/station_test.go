package station

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/rand"
)

func TestAddKeepsBounds(t *testing.T) {
	s := New("Hamburg", 120)
	s.Add(86)

	assert.Equal(t, int32(86), s.Min)
	assert.Equal(t, int32(120), s.Max)
	assert.Equal(t, int64(206), s.Sum)
	assert.Equal(t, int32(2), s.Count)
	assert.InDelta(t, 10.3, s.Avg(), 1e-9)
}

func TestMergeCommutative(t *testing.T) {
	a := New("X", 120)
	a.Add(86)
	b := New("X", -34)

	ab := *a
	ab.Merge(b)
	ba := *b
	ba.Merge(a)

	assert.Equal(t, ab.Min, ba.Min)
	assert.Equal(t, ab.Max, ba.Max)
	assert.Equal(t, ab.Sum, ba.Sum)
	assert.Equal(t, ab.Count, ba.Count)

	assert.Equal(t, int32(-34), ab.Min)
	assert.Equal(t, int32(120), ab.Max)
	assert.Equal(t, int64(172), ab.Sum)
	assert.Equal(t, int32(3), ab.Count)
}

func TestAvgRoundsTiesAwayFromZero(t *testing.T) {
	s := New("X", 1)
	s.Add(2)
	assert.InDelta(t, 0.2, s.Avg(), 1e-9)

	n := New("X", -1)
	n.Add(-2)
	assert.InDelta(t, -0.2, n.Avg(), 1e-9)
}

func TestAvgSmallNegativeIsPlainZero(t *testing.T) {
	s := New("X", 0)
	s.Add(0)
	s.Add(-1)

	avg := s.Avg()
	assert.Equal(t, 0.0, avg)
	assert.False(t, math.Signbit(avg))
}

func TestSumBoundedByExtremes(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for n := 0; n < 100; n++ {
		s := New("X", int32(r.Intn(2000)-1000))
		for i := 0; i < 50; i++ {
			s.Add(int32(r.Intn(2000) - 1000))
		}

		assert.LessOrEqual(t, s.Min, s.Max)
		assert.LessOrEqual(t, int64(s.Count)*int64(s.Min), s.Sum)
		assert.LessOrEqual(t, s.Sum, int64(s.Count)*int64(s.Max))
	}
}

func TestSingleReadingRoundTrip(t *testing.T) {
	s := New("X", -1)
	assert.Equal(t, int32(-1), s.Min)
	assert.Equal(t, int32(-1), s.Max)
	assert.InDelta(t, -0.1, s.Avg(), 1e-9)
}

func TestNameHash(t *testing.T) {
	assert.Equal(t, uint32('A')*31+uint32('B'), NameHash([]byte("AB")))

	var h uint32
	for _, b := range []byte("Hamburg") {
		h = h*31 + uint32(b)
	}
	assert.Equal(t, h, NameHash([]byte("Hamburg")))

	assert.NotEqual(t, NameHash([]byte("Hamburg")), NameHash([]byte("Berlin")))
}
