package renderer

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"math"
	"time"

	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/scene"
	"github.com/df07/go-sphere-tracer/pkg/shader"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// Config contains rendering configuration
type Config struct {
	TileSize   int // Size of each tile (64x64 recommended)
	NumWorkers int // Number of parallel workers (0 = use CPU count)
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		TileSize:   64,
		NumWorkers: 0, // Auto-detect CPU count
	}
}

// Renderer executes the vertex and fragment stages over a full-screen
// quad, dispatching fragments to a worker pool tile by tile
type Renderer struct {
	scene         *scene.Scene
	width, height int
	config        Config
	logger        core.Logger
}

// NewRenderer creates a renderer for the given scene and frame size
func NewRenderer(sc *scene.Scene, width, height int, config Config, logger core.Logger) *Renderer {
	// The pool sizes its queues assuming tiles are at least 8x8
	if config.TileSize < 8 {
		config.TileSize = DefaultConfig().TileSize
	}
	if logger == nil {
		logger = NewDefaultLogger()
	}
	return &Renderer{
		scene:  sc,
		width:  width,
		height: height,
		config: config,
		logger: logger,
	}
}

// RenderFrame draws one frame and returns it with render statistics.
// The context cancels the frame between tiles.
func (r *Renderer) RenderFrame(ctx context.Context) (*image.NRGBA, FrameStats, error) {
	startTime := time.Now()

	// Vertex stage: each quad corner passes straight through, and every
	// corner forwards the same resolution varying. The rasterizer would
	// interpolate it, but a constant interpolates to itself.
	uniforms := shader.Uniforms{Resolution: core.NewVec2(float64(r.width), float64(r.height))}
	var varying core.Vec2
	for _, position := range shader.QuadVertices() {
		varying = shader.Vertex(position, uniforms).Resolution
	}

	pixels := make([]core.Vec4, r.width*r.height)
	tiles := NewTileGrid(r.width, r.height, r.config.TileSize)

	pool := NewWorkerPool(r.scene, r.width, r.height, r.config.NumWorkers)
	pool.Start()
	defer pool.Stop()

	r.logger.Printf("Rendering %dx%d frame (%d tiles, %d workers)...\n",
		r.width, r.height, len(tiles), pool.GetNumWorkers())

	// Submit all tiles as tasks
	for taskID, tile := range tiles {
		select {
		case <-ctx.Done():
			return nil, FrameStats{}, ctx.Err()
		default:
		}
		pool.SubmitTask(TileTask{
			Tile:       tile,
			TaskID:     taskID,
			Resolution: varying,
			Pixels:     pixels,
			Stride:     r.width,
		})
	}

	// Wait for all tiles to complete
	stats := FrameStats{
		TotalPixels: r.width * r.height,
		Workers:     pool.GetNumWorkers(),
	}
	for completed := 0; completed < len(tiles); completed++ {
		select {
		case <-ctx.Done():
			return nil, FrameStats{}, ctx.Err()
		case result, ok := <-pool.Results():
			if !ok {
				return nil, FrameStats{}, fmt.Errorf("worker pool closed unexpectedly")
			}
			stats.HitPixels += result.Stats.Hits
		}
	}

	img := r.assembleImage(pixels)
	stats.Elapsed = time.Since(startTime)

	return img, stats, nil
}

// assembleImage converts the shared framebuffer into an 8-bit image
func (r *Renderer) assembleImage(pixels []core.Vec4) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, r.width, r.height))
	for y := 0; y < r.height; y++ {
		for x := 0; x < r.width; x++ {
			img.SetNRGBA(x, y, vec4ToNRGBA(pixels[y*r.width+x]))
		}
	}
	return img
}

// vec4ToNRGBA converts a shader color to 8-bit NRGBA with clamping.
// Negative normal channels clamp to black, as the framebuffer would.
// NRGBA keeps the alpha channel meaningful: miss pixels stay at 0.1.
func vec4ToNRGBA(colorVec core.Vec4) color.NRGBA {
	colorVec = colorVec.Clamp(0.0, 1.0)
	return color.NRGBA{
		R: uint8(math.Round(255 * colorVec.X)),
		G: uint8(math.Round(255 * colorVec.Y)),
		B: uint8(math.Round(255 * colorVec.Z)),
		A: uint8(math.Round(255 * colorVec.W)),
	}
}
