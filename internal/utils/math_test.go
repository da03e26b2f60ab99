package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name      string
		v, lo, hi float64
		want      float64
	}{
		{"below", -5, 0, 10, 0},
		{"inside", 4.5, 0, 10, 4.5},
		{"above", 75, 0, 50, 50},
		{"at upper bound", 50, 0, 50, 50},
		{"proc chance", 1.25, 0, 1, 1},
		{"nan", math.NaN(), 0, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Clamp(tt.v, tt.lo, tt.hi))
		})
	}

	assert.Equal(t, 3, Clamp(9, 1, 3), "works on ints")
	assert.Equal(t, 0.0, Clamp(math.Inf(1)-math.Inf(1), 0, 0.75), "inf minus inf is nan")
}

func TestClamp_StaysInBounds(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		lo := rapid.Float64Range(-1e6, 1e6).Draw(t, "lo")
		hi := lo + rapid.Float64Range(0, 1e6).Draw(t, "span")
		v := rapid.Float64Range(-1e7, 1e7).Draw(t, "v")

		got := Clamp(v, lo, hi)
		if got < lo || got > hi {
			t.Fatalf("Clamp(%v, %v, %v) = %v", v, lo, hi, got)
		}
		if v >= lo && v <= hi && got != v {
			t.Fatalf("in-range %v changed to %v", v, got)
		}
	})
}

func TestRound1(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{12.34, 12.3},
		{12.36, 12.4},
		{0.04, 0},
		{-2.25, -2.3},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, Round1(tt.in), 1e-9, "Round1(%v)", tt.in)
	}
}

func TestRound1_WithinHalfStep(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v := rapid.Float64Range(-1e4, 1e4).Draw(t, "v")
		if d := math.Abs(Round1(v) - v); d > 0.05+1e-9 {
			t.Fatalf("Round1(%v) moved by %v", v, d)
		}
	})
}
