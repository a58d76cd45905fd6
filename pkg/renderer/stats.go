package renderer

import "time"

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	Rays     int           // Primary rays cast
	Hits     int           // Rays that hit a triangle
	Duration time.Duration // Wall time of the render
}

// Add accumulates the counters of other into s
func (s *RenderStats) Add(other RenderStats) {
	s.Rays += other.Rays
	s.Hits += other.Hits
}

// HitRatio returns the fraction of rays that hit something
func (s RenderStats) HitRatio() float64 {
	if s.Rays == 0 {
		return 0
	}
	return float64(s.Hits) / float64(s.Rays)
}
