// internal/app/frame_clock.go
package app

import (
	"context"
	"sync"
)

// FrameClock передаёт сигнал обновления экрана от хоста драйверу.
// Хост вызывает Tick раз в кадр, драйвер ждёт его в Wait и отвечает Done.
type FrameClock struct {
	tick    chan struct{}
	done    chan struct{}
	stopped chan struct{}
	once    sync.Once
}

func NewFrameClock() *FrameClock {
	return &FrameClock{
		tick:    make(chan struct{}),
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
}

// Tick посылает сигнал и блокируется, пока драйвер не обработает кадр
func (c *FrameClock) Tick() error {
	select {
	case c.tick <- struct{}{}:
	case <-c.stopped:
		return ErrClockStopped
	}
	select {
	case <-c.done:
		return nil
	case <-c.stopped:
		return ErrClockStopped
	}
}

// Wait блокирует драйвер до следующего сигнала
func (c *FrameClock) Wait(ctx context.Context) error {
	select {
	case <-c.tick:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Done отпускает хост, ждущий в Tick
func (c *FrameClock) Done() {
	select {
	case c.done <- struct{}{}:
	case <-c.stopped:
	}
}

// Stop освобождает хост навсегда. Повторные вызовы ничего не делают.
func (c *FrameClock) Stop() {
	c.once.Do(func() {
		close(c.stopped)
	})
}
