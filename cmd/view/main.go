package main

import (
	"context"
	"flag"
	"image"
	"image/draw"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/df07/go-sphere-tracer/pkg/renderer"
	"github.com/df07/go-sphere-tracer/pkg/scene"
)

// game displays the rendered frame in a desktop window. The resolution
// uniform follows the window size, so a resize triggers a re-render that
// takes effect on the next draw.
type game struct {
	scene         *scene.Scene
	config        renderer.Config
	width, height int
	frame         *ebiten.Image
}

func (g *game) Update() error {
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.frame == nil {
		r := renderer.NewRenderer(g.scene, g.width, g.height, g.config, renderer.NewDefaultLogger())
		img, stats, err := r.RenderFrame(context.Background())
		if err != nil {
			log.Printf("Render error: %v", err)
			return
		}
		log.Printf("Rendered %dx%d in %v (%d workers)", g.width, g.height, stats.Elapsed, stats.Workers)

		// Ebiten wants premultiplied RGBA; image/draw does the conversion
		rgba := image.NewRGBA(img.Bounds())
		draw.Draw(rgba, rgba.Bounds(), img, image.Point{}, draw.Src)

		g.frame = ebiten.NewImage(g.width, g.height)
		g.frame.WritePixels(rgba.Pix)
	}
	screen.DrawImage(g.frame, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth < 1 {
		outsideWidth = 1
	}
	if outsideHeight < 1 {
		outsideHeight = 1
	}
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		if g.frame != nil {
			g.frame.Deallocate()
			g.frame = nil // Re-render on the next draw
		}
	}
	return g.width, g.height
}

func main() {
	fov := flag.Float64("fov", 90, "Diagonal field of view in degrees")
	workers := flag.Int("workers", 0, "Number of render workers (0 = CPU count)")
	flag.Parse()

	sc := scene.NewDefaultScene()
	sc.Camera.FieldOfView = *fov * math.Pi / 180

	config := renderer.DefaultConfig()
	config.NumWorkers = *workers

	ebiten.SetWindowTitle("Sphere Tracer")
	ebiten.SetWindowSize(1280, 1024)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(&game{scene: sc, config: config}); err != nil {
		log.Fatal(err)
	}
}
