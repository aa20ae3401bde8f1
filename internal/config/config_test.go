package config

import "testing"

func TestNewSizes(t *testing.T) {
	tests := []struct {
		name         string
		w, h         int
		wantW, wantH int
	}{
		{"display size", 1920, 1080, 1920, 1080},
		{"zero width", 0, 1080, FallbackWidth, FallbackHeight},
		{"negative height", 1920, -1, FallbackWidth, FallbackHeight},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSizes(tt.w, tt.h)
			if s.SurfaceWidth != tt.wantW || s.SurfaceHeight != tt.wantH {
				t.Errorf("NewSizes(%d, %d) surface = %dx%d, want %dx%d",
					tt.w, tt.h, s.SurfaceWidth, s.SurfaceHeight, tt.wantW, tt.wantH)
			}
			if s.RectWidth != RectWidth || s.RectHeight != RectHeight {
				t.Errorf("rect = %dx%d, want %dx%d", s.RectWidth, s.RectHeight, RectWidth, RectHeight)
			}
		})
	}
}

func TestSizesCenter(t *testing.T) {
	s := NewSizes(1000, 600)
	x, y := s.Center(RectWidth, RectHeight)
	if x != 436 || y != 264 {
		t.Errorf("Center = (%v, %v), want (436, 264)", x, y)
	}

	// нечётная разница даёт половину пикселя
	s = NewSizes(1001, 601)
	x, y = s.Center(RectWidth, RectHeight)
	if x != 436.5 || y != 264.5 {
		t.Errorf("Center = (%v, %v), want (436.5, 264.5)", x, y)
	}
}

func TestDirectionsAreUnitSteps(t *testing.T) {
	if Up != -1 || Left != -1 || Down != 1 || Right != 1 {
		t.Errorf("directions = up %d down %d left %d right %d", Up, Down, Left, Right)
	}
}
