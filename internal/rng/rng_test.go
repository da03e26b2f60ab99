package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_SameSeedSameStream(t *testing.T) {
	a, b := New(42), New(42)
	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Float64(), b.Float64())
		assert.Equal(t, a.Intn(100), b.Intn(100))
	}
}

func TestChance(t *testing.T) {
	tests := []struct {
		name    string
		roll    float64
		percent float64
		want    bool
	}{
		{"zero never", 0, 0, false},
		{"hundred always", 0.9999, 100, true},
		{"over hundred always", 0.9999, 250, true},
		{"under threshold", 0.10, 15, true},
		{"at threshold fails", 0.15, 15, false},
		{"negative never", 0, -5, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Chance(Constant(tt.roll), tt.percent))
		})
	}
}

func TestConstant_Intn(t *testing.T) {
	assert.Equal(t, 0, Constant(0).Intn(6))
	assert.Equal(t, 5, Constant(0.9999).Intn(6))
	assert.Equal(t, 3, Constant(0.5).Intn(6))
}

func TestSequence_RepeatsLast(t *testing.T) {
	s := NewSequence(0.1, 0.2)
	assert.Equal(t, 0.1, s.Float64())
	assert.Equal(t, 0.2, s.Float64())
	assert.Equal(t, 0.2, s.Float64())
}

func TestUniform(t *testing.T) {
	assert.InDelta(t, 0.8, Uniform(Constant(0), 0.8, 1.2), 1e-9)
	assert.InDelta(t, 1.0, Uniform(Constant(0.5), 0.8, 1.2), 1e-9)
}
