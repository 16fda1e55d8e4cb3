package systems

import "fogwalker-server/internal/domain"

// IsPassable — можно ли войти в клетку при прокладке пути.
// Клетка проходима, если она в границах, открыта туманом войны,
// не в маске препятствий, не вода и не занята объектом.
// Чистый предикат без побочных эффектов: его зовет и поиск пути (на каждое
// ребро), и валидация клика по цели до запроса навигации.
func IsPassable(world *domain.WorldData, reveal *domain.RevealMask, blocked *domain.BlockedMask, x, y int) bool {
	if !world.InBounds(x, y) {
		return false
	}
	if !reveal.Revealed(x, y) {
		return false
	}
	if blocked.Blocked(x, y) {
		return false
	}
	if world.GroundAt(x, y) == domain.GroundWater {
		return false
	}
	return !world.Occupied(x, y)
}

// IsStandable — та же проверка без требования открытости.
// Нужна поиску точки спавна, который работает до того, как туман
// вообще начали открывать.
func IsStandable(world *domain.WorldData, blocked *domain.BlockedMask, x, y int) bool {
	if !world.InBounds(x, y) {
		return false
	}
	if blocked.Blocked(x, y) {
		return false
	}
	if world.GroundAt(x, y) == domain.GroundWater {
		return false
	}
	return !world.Occupied(x, y)
}
