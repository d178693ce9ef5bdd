package server

import (
	"encoding/json"
	"fmt"
	"image/png"
	"log"
	"math"
	"net/http"
	"net/url"
	"strconv"

	"github.com/df07/go-sphere-tracer/pkg/renderer"
	"github.com/df07/go-sphere-tracer/pkg/scene"
)

// Server handles web requests for the sphere tracer
type Server struct {
	port int
}

// NewServer creates a new web server
func NewServer(port int) *Server {
	return &Server{port: port}
}

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Width   int     `json:"width"`   // Frame width in pixels
	Height  int     `json:"height"`  // Frame height in pixels
	FOV     float64 `json:"fov"`     // Diagonal field of view in degrees
	Workers int     `json:"workers"` // Number of render workers (0 = CPU count)
}

// Start starts the web server
func (s *Server) Start() error {
	http.HandleFunc("/api/render", s.handleRender)
	http.HandleFunc("/api/health", s.handleHealth)

	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, nil)
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleRender renders one frame and returns it as a PNG
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		http.Error(w, fmt.Sprintf("Invalid request: %v", err), http.StatusBadRequest)
		return
	}

	sc := scene.NewDefaultScene()
	sc.Camera.FieldOfView = req.FOV * math.Pi / 180

	config := renderer.DefaultConfig()
	config.NumWorkers = req.Workers
	tracer := renderer.NewRenderer(sc, req.Width, req.Height, config, renderer.NewDefaultLogger())

	// Use the request context so a disconnected client cancels the render
	img, stats, err := tracer.RenderFrame(r.Context())
	if err != nil {
		http.Error(w, fmt.Sprintf("Render error: %v", err), http.StatusInternalServerError)
		return
	}

	log.Printf("Rendered %dx%d in %v (%d of %d pixels hit)",
		req.Width, req.Height, stats.Elapsed, stats.HitPixels, stats.TotalPixels)

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	if err := png.Encode(w, img); err != nil {
		log.Printf("Error encoding PNG: %v", err)
	}
}

// parseRenderRequest parses request parameters
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	req := &RenderRequest{}

	// Parse and validate all parameters using helper functions
	var err error
	if req.Width, err = parseIntParam(r.URL.Query(), "width", 1280, 1, 4000); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(r.URL.Query(), "height", 1024, 1, 4000); err != nil {
		return nil, err
	}
	if req.Workers, err = parseIntParam(r.URL.Query(), "workers", 0, 0, 256); err != nil {
		return nil, err
	}
	// Keep the field of view clear of the tan singularities at 0 and 180
	if req.FOV, err = parseFloatParam(r.URL.Query(), "fov", 90, 1, 179); err != nil {
		return nil, err
	}

	return req, nil
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// parseFloatParam parses a float parameter from URL query with validation
func parseFloatParam(values url.Values, key string, defaultValue, min, max float64) (float64, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %f and %f, got: %f", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}
