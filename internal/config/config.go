// internal/config/config.go
package config

import "image/color"

const (
	FallbackWidth  = 1200 // если монитор не сообщил размер
	FallbackHeight = 900
	RectWidth      = 128
	RectHeight     = 72
	RectSpeed      = 2.0 // пикселей за шаг
	WindowTitle    = "Flying Rectangle"
)

// Direction задаёт знак движения по одной оси
type Direction int

const (
	Up    Direction = -1
	Down  Direction = 1
	Left  Direction = -1
	Right Direction = 1
)

var BackgroundColor = color.RGBA{20, 20, 30, 255}

// Sizes хранит размеры поверхности и прямоугольника. Считается один раз при старте.
type Sizes struct {
	SurfaceWidth  int
	SurfaceHeight int
	RectWidth     int
	RectHeight    int
}

// NewSizes строит размеры по текущему размеру дисплея
func NewSizes(displayWidth, displayHeight int) Sizes {
	if displayWidth <= 0 || displayHeight <= 0 {
		displayWidth, displayHeight = FallbackWidth, FallbackHeight
	}
	return Sizes{
		SurfaceWidth:  displayWidth,
		SurfaceHeight: displayHeight,
		RectWidth:     RectWidth,
		RectHeight:    RectHeight,
	}
}

// Center возвращает левый верхний угол прямоугольника w x h, отцентрованного на поверхности
func (s Sizes) Center(w, h int) (float64, float64) {
	x := float64(s.SurfaceWidth-w) / 2
	y := float64(s.SurfaceHeight-h) / 2
	return x, y
}
