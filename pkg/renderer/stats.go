package renderer

import "time"

// RenderStats describes one completed frame (batch invocation)
type RenderStats struct {
	Frame             int           // 1-based frame number
	TotalPixels       int           // Pixels rendered this frame
	BatchSamples      int           // New samples per pixel this frame
	CumulativeSamples int           // Samples per pixel folded into the average so far
	Workers           int           // Worker goroutines used
	Elapsed           time.Duration // Wall time for the frame
}

// SamplesTraced returns the total number of camera samples this frame
func (s RenderStats) SamplesTraced() int {
	return s.TotalPixels * s.BatchSamples
}
