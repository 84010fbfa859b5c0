package utils

import "time"

// populationSmoothing is the weight a new sample gets in the population moving average
const populationSmoothing = 0.1

// Stats for performance monitoring
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	TotalGenerations     int
	StartTime            time.Time

	samples int
}

// NewStats starts collecting stats from now
func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update folds one frame into the stats. A zero duration leaves the rate unchanged.
func (s *Stats) Update(generation, population int, duration time.Duration) {
	s.TotalGenerations = generation
	if duration > 0 {
		s.GenerationsPerSecond = float64(time.Second) / float64(duration)
	}

	if s.samples == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation += populationSmoothing * (float64(population) - s.AveragePopulation)
	}
	s.samples++
}

// Runtime returns how long the stats have been collected
func (s *Stats) Runtime() time.Duration {
	return time.Since(s.StartTime)
}
