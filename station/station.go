package station

import "math"

// Stats holds the running temperature statistics for one station.
// Temperatures are stored scaled by 10 (e.g. "-3.4" is -34) so that
// accumulation stays in integer space.
type Stats struct {
	Name  string
	Min   int32
	Max   int32
	Sum   int64
	Count int32
}

func New(name string, temp int32) *Stats {
	return &Stats{
		Name:  name,
		Min:   temp,
		Max:   temp,
		Sum:   int64(temp),
		Count: 1,
	}
}

// Add folds one scaled reading into the stats.
func (s *Stats) Add(temp int32) {
	s.Min = min(s.Min, temp)
	s.Max = max(s.Max, temp)
	s.Sum += int64(temp)
	s.Count++
}

// Merge folds another station's stats into s. Merging is commutative
// and associative, so partial aggregates can be combined in any order.
func (s *Stats) Merge(o *Stats) {
	s.Min = min(s.Min, o.Min)
	s.Max = max(s.Max, o.Max)
	s.Sum += o.Sum
	s.Count += o.Count
}

// Avg returns the mean temperature rounded to one decimal digit, with
// ties rounding away from zero. Computed on demand, never stored.
func (s *Stats) Avg() float64 {
	v := math.Round(float64(s.Sum) / float64(s.Count))
	if v == 0 {
		// math.Round keeps the sign on negative zero, which would
		// render as "-0.0".
		v = 0
	}
	return v / 10
}

// NameHash is the polynomial hash used to key aggregate tables by raw
// name bytes without allocating a string per line. Overflow wraps.
// Distinct names that collide are merged, an accepted imprecision
// given the small station cardinality.
func NameHash(name []byte) uint32 {
	var h uint32
	for _, b := range name {
		h = h*31 + uint32(b)
	}
	return h
}
