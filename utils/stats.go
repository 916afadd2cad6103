package utils

import (
	"time"

	"github.com/google/uuid"
)

// historySize is how many recent grid hashes are kept for cycle detection
const historySize = 5

// Stats for performance monitoring
type Stats struct {
	RunID                string
	GenerationsPerSecond float64
	AveragePopulation    float64
	TotalGenerations     int
	StartTime            time.Time

	history []string
}

func NewStats() *Stats {
	return &Stats{
		RunID:     uuid.NewString(),
		StartTime: time.Now(),
	}
}

func (s *Stats) Update(generation int, population int, duration time.Duration) {
	s.TotalGenerations = generation
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}

	// Simple moving average for population
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}

// Observe classifies the grid hash against recent generations and records it.
// The result is "Static" when nothing changed since the last generation,
// "Oscillating" when the grid repeats a state seen two or three generations
// ago, and "Active" otherwise.
func (s *Stats) Observe(hash string) string {
	status := "Active"
	for back := 1; back <= 3 && back <= len(s.history); back++ {
		if s.history[len(s.history)-back] != hash {
			continue
		}
		if back == 1 {
			status = "Static"
		} else {
			status = "Oscillating"
		}
		break
	}

	s.history = append(s.history, hash)
	if len(s.history) > historySize {
		s.history = s.history[1:]
	}
	return status
}

// Runtime returns the time elapsed since the stats were created
func (s *Stats) Runtime() time.Duration {
	return time.Since(s.StartTime)
}
