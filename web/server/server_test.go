package server

import (
	"image/png"
	"net/http/httptest"
	"net/url"
	"testing"
)

func TestParseIntParam(t *testing.T) {
	tests := []struct {
		name        string
		query       string
		expected    int
		expectError bool
	}{
		{"missing uses default", "", 42, false},
		{"valid value", "size=100", 100, false},
		{"not a number", "size=abc", 0, true},
		{"below minimum", "size=0", 0, true},
		{"above maximum", "size=5000", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, _ := url.ParseQuery(tt.query)
			got, err := parseIntParam(values, "size", 42, 1, 4000)

			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for query %q, got none", tt.query)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("Expected %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestParseRenderRequest_Defaults(t *testing.T) {
	s := NewServer(0)
	r := httptest.NewRequest("GET", "/api/render", nil)

	req, err := s.parseRenderRequest(r)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if req.Width != 1280 || req.Height != 1024 {
		t.Errorf("Expected default 1280x1024, got %dx%d", req.Width, req.Height)
	}
	if req.FOV != 90 {
		t.Errorf("Expected default 90° fov, got %f", req.FOV)
	}
	if req.Workers != 0 {
		t.Errorf("Expected default 0 workers (auto), got %d", req.Workers)
	}
}

func TestHandleHealth(t *testing.T) {
	s := NewServer(0)
	r := httptest.NewRequest("GET", "/api/health", nil)
	w := httptest.NewRecorder()

	s.handleHealth(w, r)

	if w.Code != 200 {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Expected application/json, got %s", ct)
	}
}

func TestHandleRender_ReturnsPNG(t *testing.T) {
	s := NewServer(0)
	r := httptest.NewRequest("GET", "/api/render?width=32&height=24", nil)
	w := httptest.NewRecorder()

	s.handleRender(w, r)

	if w.Code != 200 {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("Expected image/png, got %s", ct)
	}

	img, err := png.Decode(w.Body)
	if err != nil {
		t.Fatalf("Response is not a decodable PNG: %v", err)
	}
	if img.Bounds().Dx() != 32 || img.Bounds().Dy() != 24 {
		t.Errorf("Expected 32x24 image, got %v", img.Bounds())
	}
}

func TestHandleRender_InvalidParams(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"zero width", "width=0"},
		{"fov at the tan singularity", "fov=180"},
		{"non-numeric height", "height=tall"},
	}

	s := NewServer(0)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/api/render?"+tt.query, nil)
			w := httptest.NewRecorder()

			s.handleRender(w, r)

			if w.Code != 400 {
				t.Errorf("Expected status 400, got %d", w.Code)
			}
		})
	}
}
