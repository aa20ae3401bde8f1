// cmd/game/main.go
package main

import (
	"bouncing-rect/internal/app"
	"bouncing-rect/internal/config"
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func run() error {
	clock := app.NewFrameClock()
	window := app.NewWindow(clock)

	sizes := config.NewSizes(window.DisplaySize())
	driver, err := app.New(window, sizes)
	if err != nil {
		return fmt.Errorf("create app: %w", err)
	}
	log.Printf("surface %dx%d", sizes.SurfaceWidth, sizes.SurfaceHeight)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		if err := driver.Run(ctx, clock); err != nil && !errors.Is(err, context.Canceled) {
			log.Println("frame loop:", err)
		}
	}()

	ebiten.SetWindowSize(sizes.SurfaceWidth, sizes.SurfaceHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetTPS(ebiten.SyncWithFPS) // Update раз в обновление экрана
	return ebiten.RunGame(window)
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}
