package main

import (
	"context"
	"flag"
	"fmt"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/df07/go-sphere-tracer/pkg/renderer"
	"github.com/df07/go-sphere-tracer/pkg/scene"
)

func main() {
	// Parse command line flags
	width := flag.Int("width", 1280, "Frame width in pixels")
	height := flag.Int("height", 1024, "Frame height in pixels")
	fov := flag.Float64("fov", 90, "Diagonal field of view in degrees")
	workers := flag.Int("workers", 0, "Number of render workers (0 = CPU count)")
	outputDir := flag.String("output", "output", "Output directory for rendered frames")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		fmt.Println("Sphere Tracer")
		fmt.Println("Usage: sphere-tracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Renders the full-screen quad scene (one sphere, normal visualization")
		fmt.Println("over a direction-banded background) to output/render_<timestamp>.png")
		return
	}

	fmt.Println("Starting sphere tracer...")

	// The fixed scene with the field of view taken from the command line
	sc := scene.NewDefaultScene()
	sc.Camera.FieldOfView = *fov * math.Pi / 180

	config := renderer.DefaultConfig()
	config.NumWorkers = *workers
	r := renderer.NewRenderer(sc, *width, *height, config, renderer.NewDefaultLogger())

	img, stats, err := r.RenderFrame(context.Background())
	if err != nil {
		fmt.Printf("Render error: %v\n", err)
		return
	}

	fmt.Printf("Render completed in %v (%d workers)\n", stats.Elapsed, stats.Workers)
	fmt.Printf("Sphere coverage: %d of %d pixels\n", stats.HitPixels, stats.TotalPixels)

	// Create output directory
	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		fmt.Printf("Error creating output directory: %v\n", err)
		return
	}

	// Create timestamped filename
	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(*outputDir, fmt.Sprintf("render_%s.png", timestamp))

	file, err := os.Create(filename)
	if err != nil {
		fmt.Printf("Error creating file: %v\n", err)
		return
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		fmt.Printf("Error saving PNG: %v\n", err)
		return
	}

	fmt.Printf("Render saved as %s\n", filename)
}
