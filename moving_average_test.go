package canvasbar

import (
	"math"
	"testing"
)

func TestMedian(t *testing.T) {
	m := NewMedian()
	for _, v := range []float64{5, 1, 3} {
		m.Add(v)
	}
	if got := m.Value(); got != 3 {
		t.Errorf("Want: 3, Got: %v", got)
	}
	m.Add(100)
	if got := m.Value(); got != 3 {
		t.Errorf("Want: 3, Got: %v", got)
	}
	m.Set(7)
	if got := m.Value(); got != 7 {
		t.Errorf("Want: 7, Got: %v", got)
	}
}

func TestMedianEwmaIgnoresSpike(t *testing.T) {
	m := NewMedianEwma()
	for i := 0; i < 10; i++ {
		m.Add(16)
	}
	m.Add(500)
	if got := m.Value(); math.Abs(got-16) > 1e-9 {
		t.Errorf("Want: 16, Got: %v", got)
	}
}
