package renderer

import "testing"

func TestNewTileGrid_Coverage(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		tileSize      int
		expectedTiles int
	}{
		{"exact fit", 128, 128, 64, 4},
		{"ragged edges", 100, 70, 64, 4},
		{"single tile", 32, 32, 64, 1},
		{"one pixel", 1, 1, 64, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tiles := NewTileGrid(tt.width, tt.height, tt.tileSize)

			if len(tiles) != tt.expectedTiles {
				t.Errorf("Expected %d tiles, got %d", tt.expectedTiles, len(tiles))
			}

			// Every pixel must be covered exactly once
			covered := make([]int, tt.width*tt.height)
			for _, tile := range tiles {
				for y := tile.Bounds.Min.Y; y < tile.Bounds.Max.Y; y++ {
					for x := tile.Bounds.Min.X; x < tile.Bounds.Max.X; x++ {
						if x < 0 || x >= tt.width || y < 0 || y >= tt.height {
							t.Fatalf("Tile %d exceeds frame bounds: %v", tile.ID, tile.Bounds)
						}
						covered[y*tt.width+x]++
					}
				}
			}
			for i, count := range covered {
				if count != 1 {
					t.Fatalf("Pixel %d covered %d times", i, count)
				}
			}
		})
	}
}
