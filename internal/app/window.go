// internal/app/window.go
package app

import (
	"bouncing-rect/internal/config"
	"bouncing-rect/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
)

// Убеждаемся, что Window подходит и как хост, и как игра ebiten
var (
	_ Mount       = (*Window)(nil)
	_ ebiten.Game = (*Window)(nil)
)

// Window окно ebiten, в котором показывается поверхность драйвера
type Window struct {
	clock   *FrameClock
	surface *render.ImageSurface
	width   int
	height  int
}

func NewWindow(clock *FrameClock) *Window {
	return &Window{clock: clock}
}

// DisplaySize возвращает размер текущего монитора
func (w *Window) DisplaySize() (int, int) {
	m := ebiten.Monitor()
	if m == nil {
		return 0, 0
	}
	return m.Size()
}

func (w *Window) Attach(width, height int) render.Surface {
	if width <= 0 || height <= 0 {
		return nil
	}
	s := render.NewImageSurface(ebiten.NewImage(width, height), config.BackgroundColor)
	if s == nil {
		return nil
	}
	w.surface = s
	w.width, w.height = width, height
	return s
}

// Update отдаёт сигнал кадра драйверу и ждёт, пока он нарисует кадр
func (w *Window) Update() error {
	return w.clock.Tick()
}

func (w *Window) Draw(screen *ebiten.Image) {
	if w.surface == nil {
		return
	}
	screen.DrawImage(w.surface.Image(), nil)
}

func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	if w.surface == nil {
		return outsideWidth, outsideHeight
	}
	return w.width, w.height
}
