package distance

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEuclidean(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float64
		expected float64
	}{
		{"Simple", []float64{0, 0}, []float64{3, 4}, 5},
		{"Zero", []float64{0, 0, 0}, []float64{0, 0, 0}, 0},
		{"Identical", []float64{1, 2, 3}, []float64{1, 2, 3}, 0},
		{"OneDimension", []float64{10}, []float64{0.5}, 9.5},
		{"Mixed", []float64{1, -1}, []float64{-1, 1}, math.Sqrt(8)},
		{"Empty", []float64{}, []float64{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Euclidean(tt.a, tt.b)
			assert.InDelta(t, tt.expected, got, 1e-12)
		})
	}
}

func TestEuclidean_AsFunc(t *testing.T) {
	a := []float64{1.5, -2, 7}
	b := []float64{0.25, 3, -1}

	var f Func = Euclidean
	assert.InDelta(t, math.Sqrt(1.25*1.25+5*5+8*8), f(a, b), 1e-12)
	assert.Equal(t, f(a, b), f(b, a))
}
