package renderer

import "time"

// FrameStats contains statistics about a rendered frame
type FrameStats struct {
	TotalPixels int           // Total number of fragments evaluated
	HitPixels   int           // Fragments whose camera ray hit the scene
	Workers     int           // Number of workers the frame was rendered with
	Elapsed     time.Duration // Wall-clock render time
}

// TileStats contains statistics from rendering a single tile
type TileStats struct {
	Pixels int // Fragments evaluated in this tile
	Hits   int // Fragments that hit the scene
}
