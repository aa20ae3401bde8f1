// internal/entity/entity.go
package entity

import "bouncing-rect/pkg/render"

// Entity описывает жизненный цикл любого объекта сцены.
// Фазы вызываются по всей коллекции сразу: сначала Setup у всех, потом Update у всех и т.д.
type Entity interface {
	Setup()
	// Update продвигает состояние ровно на один шаг
	Update()
	// Render только рисует, состояние не меняет
	Render(surface render.Surface)
}
