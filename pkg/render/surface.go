// pkg/render/surface.go
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Surface is the drawable area entities render into.
type Surface interface {
	Size() (width, height int)
	// Clear erases the whole surface with the background fill.
	Clear()
	FillRect(x, y, width, height float64, c color.Color)
}

// ImageSurface draws into an ebiten image.
type ImageSurface struct {
	image      *ebiten.Image
	background color.Color
}

// NewImageSurface wraps img. Returns nil if there is no image to draw into.
func NewImageSurface(img *ebiten.Image, background color.Color) *ImageSurface {
	if img == nil {
		return nil
	}
	return &ImageSurface{image: img, background: background}
}

func (s *ImageSurface) Size() (int, int) {
	b := s.image.Bounds()
	return b.Dx(), b.Dy()
}

func (s *ImageSurface) Clear() {
	s.image.Fill(s.background)
}

func (s *ImageSurface) FillRect(x, y, width, height float64, c color.Color) {
	vector.DrawFilledRect(s.image, float32(x), float32(y), float32(width), float32(height), c, false)
}

// Image returns the underlying image, e.g. for blitting to the screen.
func (s *ImageSurface) Image() *ebiten.Image {
	return s.image
}
