package utils

import "time"

const populationSmoothing = 0.1

// Stats tracks how a run evolves from one generation to the next
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	PeakPopulation       int
	PeakGeneration       int
	BoundingBoxArea      int
	Deaths               int
	TotalGenerations     int
	StartTime            time.Time

	lastPopulation int
	seen           bool
}

// NewStats starts the clock for a new run
func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update records one generation: its live cell count, the area of its
// bounding box and how long the frame took. Cells only ever die between
// generations, so any drop in population is counted as deaths.
func (s *Stats) Update(generation, population, area int, duration time.Duration) {
	s.TotalGenerations = generation
	s.BoundingBoxArea = area
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}

	if !s.seen {
		s.AveragePopulation = float64(population)
		s.PeakPopulation = population
		s.PeakGeneration = generation
		s.lastPopulation = population
		s.seen = true
		return
	}

	s.AveragePopulation += (float64(population) - s.AveragePopulation) * populationSmoothing
	if population > s.PeakPopulation {
		s.PeakPopulation = population
		s.PeakGeneration = generation
	}
	if population < s.lastPopulation {
		s.Deaths += s.lastPopulation - population
	}
	s.lastPopulation = population
}
