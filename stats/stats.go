// Package stats accumulates the per-game numbers of a benchmark run.
package stats

import "math"

const Epsilon = 1e-6

func FuzzyEqual(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// Statistic tracks a running mean and variance of everything pushed
// into it (Welford's algorithm), plus the extremes. The zero value is
// ready to use.
type Statistic struct {
	count int
	last  float64

	oldM float64
	newM float64
	oldS float64
	newS float64

	min float64
	max float64
}

func (s *Statistic) Push(val float64) {
	s.last = val
	s.count++
	if s.count == 1 {
		s.oldM = val
		s.newM = val
		s.oldS = 0
		s.min = val
		s.max = val
		return
	}
	s.newM = s.oldM + (val-s.oldM)/float64(s.count)
	s.newS = s.oldS + (val-s.oldM)*(val-s.newM)
	s.oldM = s.newM
	s.oldS = s.newS
	s.min = math.Min(s.min, val)
	s.max = math.Max(s.max, val)
}

func (s *Statistic) Mean() float64 {
	if s.count > 0 {
		return s.newM
	}
	return 0.0
}

func (s *Statistic) Variance() float64 {
	if s.count <= 1 {
		return 0.0
	}
	return s.newS / float64(s.count-1)
}

func (s *Statistic) Stdev() float64 {
	return math.Sqrt(s.Variance())
}

func (s *Statistic) Min() float64 {
	return s.min
}

func (s *Statistic) Max() float64 {
	return s.max
}

func (s *Statistic) Sum() float64 {
	return s.Mean() * float64(s.count)
}

func (s *Statistic) Last() float64 {
	return s.last
}

func (s *Statistic) Count() int {
	return s.count
}
