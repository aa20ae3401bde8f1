// pkg/render/color.go
package render

import (
	"image/color"

	"golang.org/x/image/colornames"
)

// Palette is a cyclic, ordered list of fill colors.
type Palette []color.RGBA

// DefaultPalette holds the eight colors a bouncing shape cycles through.
var DefaultPalette = Palette{
	colornames.Red,
	colornames.Orange,
	colornames.Yellow,
	colornames.Lime,
	colornames.Cyan,
	colornames.Blue,
	colornames.Magenta,
	colornames.White,
}

// At returns the color for an ever-growing counter. Indexing wraps around.
func (p Palette) At(counter uint64) color.RGBA {
	return p[counter%uint64(len(p))]
}
