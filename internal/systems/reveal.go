package systems

import (
	"fogwalker-server/internal/domain"
	"fogwalker-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// RevealAround открывает клетки в круге вокруг центра и возвращает индексы
// ТОЛЬКО что открытых клеток. Уже открытые в результат не попадают,
// поэтому повторный вызов с теми же аргументами вернет пустой список.
// Маска мутируется на месте; возвращаемый список нужен потребителям
// (рендер, миникарта) для инкрементального обновления без пересканирования сетки.
func RevealAround(world *domain.WorldData, mask *domain.RevealMask, center domain.GridPoint, radius int) []int {
	var revealed []int
	if radius < 0 {
		return revealed
	}

	radiusSq := radius * radius
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			// Круг, а не квадрат: отсекаем углы по квадрату расстояния
			if dx*dx+dy*dy > radiusSq {
				continue
			}
			x, y := center.X+dx, center.Y+dy
			if !world.InBounds(x, y) {
				continue
			}
			idx := world.Index(x, y)
			if mask.Cells[idx] {
				continue
			}
			mask.Cells[idx] = true
			revealed = append(revealed, idx)
		}
	}

	if len(revealed) > 0 {
		logger.Log.WithFields(logrus.Fields{
			"component": "reveal_system",
			"center":    center,
			"radius":    radius,
			"new_cells": len(revealed),
		}).Debug("Reveal pass complete.")
	}

	return revealed
}
