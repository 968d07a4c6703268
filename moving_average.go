package canvasbar

import (
	"sort"

	"github.com/VividCortex/ewma"
)

// MovingAverage computes a moving average over a time-series stream of
// numbers. The average may be over a window or exponentially decaying.
type MovingAverage interface {
	Add(float64)
	Value() float64
	Set(float64)
}

type median struct {
	window [3]float64
	dst    []float64
}

func (s *median) Add(v float64) {
	s.window[0], s.window[1] = s.window[1], s.window[2]
	s.window[2] = v
}

func (s *median) Value() float64 {
	copy(s.dst, s.window[:])
	sort.Float64s(s.dst)
	return s.dst[1]
}

func (s *median) Set(value float64) {
	for i := range s.window {
		s.window[i] = value
	}
}

// NewMedian is fixed last 3 samples median MovingAverage.
func NewMedian() MovingAverage {
	return &median{
		dst: make([]float64, 3),
	}
}

type medianEwma struct {
	ewma.MovingAverage
	median MovingAverage
}

func (s medianEwma) Add(v float64) {
	s.median.Add(v)
	s.MovingAverage.Add(s.median.Value())
}

// NewMedianEwma is ewma based MovingAverage, which gets its values from
// median MovingAverage. A single late frame doesn't skew the frame rate.
func NewMedianEwma(age ...float64) MovingAverage {
	return medianEwma{
		MovingAverage: ewma.NewMovingAverage(age...),
		median:        NewMedian(),
	}
}
