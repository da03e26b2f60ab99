package rng

// Constant is a Source that always returns the same fraction.
// Intn maps the fraction onto [0, n).
type Constant float64

func (c Constant) Float64() float64 { return float64(c) }

func (c Constant) Intn(n int) int {
	v := int(float64(c) * float64(n))
	if v >= n {
		v = n - 1
	}
	if v < 0 {
		v = 0
	}
	return v
}

// Sequence replays a fixed list of fractions, then repeats the last one
type Sequence struct {
	values []float64
	pos    int
}

// NewSequence creates a Sequence over values
func NewSequence(values ...float64) *Sequence {
	return &Sequence{values: values}
}

func (s *Sequence) Float64() float64 {
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.pos]
	if s.pos < len(s.values)-1 {
		s.pos++
	}
	return v
}

func (s *Sequence) Intn(n int) int {
	return Constant(s.Float64()).Intn(n)
}
