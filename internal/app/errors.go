// internal/app/errors.go
package app

import "errors"

// SetupError возвращается, если драйвер не удалось собрать при старте
type SetupError struct {
	Reason string
}

func (e *SetupError) Error() string {
	return "setup: " + e.Reason
}

const (
	reasonMountMissing   = "root element missing"
	reasonContextMissing = "failed to retrieve rendering context"
)

// ErrClockStopped получает хост, если драйвер больше не обрабатывает кадры
var ErrClockStopped = errors.New("frame clock stopped")
