package complexx

import (
	"math"
	"testing"
)

func TestValueOf(t *testing.T) {
	tests := []struct {
		name   string
		re, im float64
	}{
		{"finite", 1.5, -2},
		{"zero", 0, 0},
		{"infinite", math.Inf(1), math.Inf(-1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := ValueOf(tt.re, tt.im)
			if c.re != tt.re || c.im != tt.im {
				t.Errorf("ValueOf(%v, %v) = {%v, %v}", tt.re, tt.im, c.re, c.im)
			}
		})
	}
}

func TestValueOf_ReturnsIndependentValues(t *testing.T) {
	a := ValueOf(1, 2)
	b := ValueOf(1, 2)

	b.re = 5
	if a.re != 1 {
		t.Errorf("instances share state: a.re = %v", a.re)
	}
}
