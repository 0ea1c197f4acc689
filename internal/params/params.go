// Package params holds the runtime-tunable scalars of the fire lamp and
// their valid ranges. All writes clamp; there is no error path.
package params

// Param identifies one tunable.
type Param int

const (
	Brightness Param = iota
	Sparking
	Cooling
)

func (p Param) String() string {
	switch p {
	case Brightness:
		return "brightness"
	case Sparking:
		return "sparking"
	case Cooling:
		return "cooling"
	}
	return "unknown"
}

// Range describes the bounds and compiled default of one parameter.
type Range struct {
	Min, Max, Default int
}

var ranges = [...]Range{
	Brightness: {Min: 0, Max: 255, Default: 16},
	Sparking:   {Min: 50, Max: 200, Default: 120},
	Cooling:    {Min: 20, Max: 100, Default: 55},
}

// RangeOf returns the bounds of p.
func RangeOf(p Param) Range {
	return ranges[p]
}

// Store owns the three tunable values. The granularity g controls how
// Adjust scales raw encoder deltas: one full sweep of g detents spans a
// parameter's whole range. In the lamp g is the strip length.
type Store struct {
	values      [len(ranges)]int
	granularity int
}

func NewStore(granularity int) *Store {
	if granularity < 1 {
		granularity = 1
	}
	s := &Store{granularity: granularity}
	s.ResetAll()
	return s
}

func (s *Store) Get(p Param) uint8 {
	return uint8(s.values[p])
}

// Adjust applies a proportional step range*delta/granularity, clamps to
// the parameter's bounds, and returns the clamped result. Any delta is
// legal, including absurd ones.
func (s *Store) Adjust(p Param, delta int) uint8 {
	r := ranges[p]
	step := (r.Max - r.Min) * delta / s.granularity
	if step == 0 && delta != 0 {
		// Keep single detents effective on short strips.
		if delta > 0 {
			step = 1
		} else {
			step = -1
		}
	}
	v := s.values[p] + step
	if v < r.Min {
		v = r.Min
	}
	if v > r.Max {
		v = r.Max
	}
	s.values[p] = v
	return uint8(v)
}

// Set clamps v into the parameter's range and stores it. Used when
// loading configuration.
func (s *Store) Set(p Param, v int) uint8 {
	r := ranges[p]
	if v < r.Min {
		v = r.Min
	}
	if v > r.Max {
		v = r.Max
	}
	s.values[p] = v
	return uint8(v)
}

// ResetAll restores every parameter to its compiled default.
func (s *Store) ResetAll() {
	for p := range s.values {
		s.values[p] = ranges[p].Default
	}
}

// Fraction reports how far p sits inside its range, in [0,1].
func (s *Store) Fraction(p Param) float64 {
	r := ranges[p]
	return float64(s.values[p]-r.Min) / float64(r.Max-r.Min)
}
