package dropper

import (
	"errors"
	"image"
	"testing"
)

func TestSurfaceSize(t *testing.T) {
	tests := []struct {
		viewport int
		w, h     int
	}{
		{1000, 800, 450},
		{1280, 1024, 576},
		{1001, 800, 450},
		{0, 0, 0},
		{-10, 0, 0},
	}

	cfg := DefaultConfig()
	for _, tt := range tests {
		w, h := SurfaceSize(cfg, tt.viewport)
		if w != tt.w || h != tt.h {
			t.Errorf("SurfaceSize(%d) = %dx%d, want %dx%d", tt.viewport, w, h, tt.w, tt.h)
		}
	}
}

func TestDisplaySurface_Version(t *testing.T) {
	s, err := NewDisplaySurface(DefaultConfig(), FixedPlacer{})
	if err != nil {
		t.Fatalf("NewDisplaySurface failed: %v", err)
	}
	v := s.Version()
	s.Resize(100)
	s.Redraw()
	if s.Version() != v+1 {
		t.Errorf("version: got %d, want %d", s.Version(), v+1)
	}
}

func TestDisplaySurface_PlacerConsulted(t *testing.T) {
	calls := 0
	placer := PlacerFunc(func(w, h int) Rect {
		calls++
		return Rect{Left: float64(1000-w) / 2, Top: 56, Width: float64(w), Height: float64(h)}
	})

	s, err := NewDisplaySurface(DefaultConfig(), placer)
	if err != nil {
		t.Fatalf("NewDisplaySurface failed: %v", err)
	}
	s.Resize(1000)

	if calls != 1 {
		t.Errorf("placer called %d times, want 1", calls)
	}
	if got := s.BoundingBox(); got.Left != 100 || got.Width != 800 {
		t.Errorf("bounding box: got %+v", got)
	}
}

func TestSourceWindow(t *testing.T) {
	cfg := DefaultConfig()
	clamped := cfg
	clamped.ClampUpper = true

	tests := []struct {
		name string
		cfg  Config
		x, y int
		want image.Rectangle
	}{
		{"centered", cfg, 100, 50, image.Rect(90, 40, 110, 60)},
		{"near origin", cfg, 2, 2, image.Rect(0, 0, 20, 20)},
		{"negative sample", cfg, -30, -5, image.Rect(0, 0, 20, 20)},
		{"near far edge", cfg, 795, 445, image.Rect(785, 435, 805, 455)},
		{"near far edge clamped", clamped, 795, 445, image.Rect(780, 430, 800, 450)},
		{"near origin clamped", clamped, 2, 2, image.Rect(0, 0, 20, 20)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SourceWindow(tt.cfg, tt.x, tt.y, 800, 450); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSampler_Local(t *testing.T) {
	s, _ := NewDisplaySurface(DefaultConfig(), FixedPlacer{Left: 100, Top: 56})
	s.Resize(1000)
	sampler := NewSampler(s)

	tests := []struct {
		cx, cy float64
		x, y   int
	}{
		{100, 56, 0, 0},
		{100.9, 56.9, 0, 0},
		{99.5, 55.5, -1, -1},
		{899.99, 505.99, 799, 449},
	}

	for _, tt := range tests {
		x, y := sampler.Local(at(tt.cx, tt.cy))
		if x != tt.x || y != tt.y {
			t.Errorf("Local(%v,%v) = (%d,%d), want (%d,%d)", tt.cx, tt.cy, x, y, tt.x, tt.y)
		}
	}
}

func TestSampler_OutOfRange(t *testing.T) {
	s, _ := NewDisplaySurface(DefaultConfig(), FixedPlacer{})
	s.Resize(1000)
	s.SetSource(gradientImage(800, 450))
	sampler := NewSampler(s)

	sample, err := sampler.Sample(at(800, 10))
	if !errors.Is(err, ErrSampleOutOfRange) {
		t.Errorf("expected ErrSampleOutOfRange, got %v", err)
	}
	if sample.Hex != "#000000" || sample.Color.A != 0 {
		t.Errorf("out of range sample: got %+v, want transparent black", sample)
	}

	if _, err := sampler.Sample(at(799, 449)); err != nil {
		t.Errorf("last pixel should be in range: %v", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if got := DefaultConfig().SourceSize(); got != 20 {
		t.Errorf("source size: got %d, want 20", got)
	}

	mutations := map[string]func(*Config){
		"zero width ratio": func(c *Config) { c.WidthRatio = 0 },
		"zero aspect":      func(c *Config) { c.AspectRatio = 0 },
		"zero factor":      func(c *Config) { c.Factor = 0 },
		"tiny magnifier":   func(c *Config) { c.MagnifierSize = 2 },
		"inverted ring":    func(c *Config) { c.RingOuterWidth = 4 },
		"negative ring":    func(c *Config) { c.RingWidth = -1 },
	}
	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultConfig()
			mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}

func TestInitError(t *testing.T) {
	cause := errors.New("no such file")
	err := error(&InitError{What: "image asset background.jpg", Err: cause})

	if !errors.Is(err, ErrInitialization) {
		t.Error("InitError should match ErrInitialization")
	}
	if !errors.Is(err, cause) {
		t.Error("InitError should unwrap to its cause")
	}
	want := "dropper initialization failed: image asset background.jpg: no such file"
	if err.Error() != want {
		t.Errorf("got %q, want %q", err.Error(), want)
	}
}
