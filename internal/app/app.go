// internal/app/app.go
package app

import (
	"bouncing-rect/internal/config"
	"bouncing-rect/internal/entity"
	"bouncing-rect/pkg/render"
	"context"
)

// Mount хост, к которому прикрепляется поверхность
type Mount interface {
	DisplaySize() (width, height int)
	// Attach создаёт поверхность w x h под хостом. nil, если контекст рисования недоступен.
	Attach(width, height int) render.Surface
}

// App владеет поверхностью и списком сущностей и крутит цикл кадров
type App struct {
	sizes    config.Sizes
	surface  render.Surface
	entities []entity.Entity // порядок вставки = порядок отрисовки
}

// New собирает драйвер. При ошибке возвращает *SetupError и nil.
func New(mount Mount, sizes config.Sizes) (*App, error) {
	if mount == nil {
		return nil, &SetupError{Reason: reasonMountMissing}
	}
	surface := mount.Attach(sizes.SurfaceWidth, sizes.SurfaceHeight)
	if surface == nil {
		return nil, &SetupError{Reason: reasonContextMissing}
	}
	return &App{
		sizes:   sizes,
		surface: surface,
	}, nil
}

// Setup добавляет сущности и вызывает их Setup
func (a *App) Setup() {
	a.entities = append(a.entities, entity.NewFlyingRectangle(a.sizes))
	for _, e := range a.entities {
		e.Setup()
	}
}

func (a *App) Update() {
	for _, e := range a.entities {
		e.Update()
	}
}

// Render очищает всю поверхность и рисует сущности по порядку
func (a *App) Render() {
	a.surface.Clear()
	for _, e := range a.entities {
		e.Render(a.surface)
	}
}

// Entities возвращает сущности в порядке отрисовки
func (a *App) Entities() []entity.Entity {
	return a.entities
}

// Run вызывает Setup и дальше на каждый сигнал clock делает Update и Render.
// Возвращается только при отмене ctx.
func (a *App) Run(ctx context.Context, clock *FrameClock) error {
	defer clock.Stop()
	a.Setup()
	for {
		if err := clock.Wait(ctx); err != nil {
			return err
		}
		a.Update()
		a.Render()
		clock.Done()
	}
}
