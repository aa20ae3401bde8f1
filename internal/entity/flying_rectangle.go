// internal/entity/flying_rectangle.go
package entity

import (
	"bouncing-rect/internal/config"
	"bouncing-rect/pkg/render"
	"image/color"
)

// Убеждаемся, что FlyingRectangle соответствует интерфейсу Entity
var _ Entity = (*FlyingRectangle)(nil)

// FlyingRectangle летает по поверхности и меняет цвет при каждом ударе о стену
type FlyingRectangle struct {
	sizes   config.Sizes
	palette render.Palette
	counter uint64 // не сбрасывается, цвет = palette[counter % len]
	x, y    float64
	dirX    config.Direction
	dirY    config.Direction
	speed   float64
}

// NewFlyingRectangle создаёт прямоугольник в центре поверхности, движущийся вправо-вниз
func NewFlyingRectangle(sizes config.Sizes) *FlyingRectangle {
	x, y := sizes.Center(sizes.RectWidth, sizes.RectHeight)
	return &FlyingRectangle{
		sizes:   sizes,
		palette: render.DefaultPalette,
		x:       x,
		y:       y,
		dirX:    config.Right,
		dirY:    config.Down,
		speed:   config.RectSpeed,
	}
}

func (r *FlyingRectangle) Setup() {
	// Всё состояние задаётся в конструкторе
}

// Update сначала проверяет стены, потом двигает.
// Проверки независимы: в углу цвет сменится дважды за шаг.
func (r *FlyingRectangle) Update() {
	w := float64(r.sizes.RectWidth)
	h := float64(r.sizes.RectHeight)

	if r.x+w >= float64(r.sizes.SurfaceWidth) {
		r.dirX = config.Left
		r.updateColor()
	}
	if r.x <= 0 {
		r.dirX = config.Right
		r.updateColor()
	}
	if r.y+h >= float64(r.sizes.SurfaceHeight) {
		r.dirY = config.Up
		r.updateColor()
	}
	if r.y <= 0 {
		r.dirY = config.Down
		r.updateColor()
	}

	r.x += float64(r.dirX) * r.speed
	r.y += float64(r.dirY) * r.speed
}

func (r *FlyingRectangle) updateColor() {
	r.counter++
}

func (r *FlyingRectangle) Render(surface render.Surface) {
	surface.FillRect(r.x, r.y, float64(r.sizes.RectWidth), float64(r.sizes.RectHeight), r.Color())
}

// Position возвращает левый верхний угол
func (r *FlyingRectangle) Position() (float64, float64) {
	return r.x, r.y
}

func (r *FlyingRectangle) Direction() (config.Direction, config.Direction) {
	return r.dirX, r.dirY
}

// ColorIndex возвращает индекс текущего цвета в палитре
func (r *FlyingRectangle) ColorIndex() int {
	return int(r.counter % uint64(len(r.palette)))
}

func (r *FlyingRectangle) Color() color.Color {
	return r.palette.At(r.counter)
}
