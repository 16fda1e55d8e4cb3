package worldgen

import (
	"fogwalker-server/internal/domain"
	"fogwalker-server/pkg/logger"
	"fogwalker-server/pkg/noise"
	"fogwalker-server/pkg/rng"

	"github.com/sirupsen/logrus"
)

// Запас плотности над порогом, начиная с которого чаща считается глухой.
const interiorMargin = 0.08

// BuildBlockedMask строит слой непроходимой чащи леса.
// Вызывается один раз после генерации, дальше маска неизменна.
//
// Клетка попадает в чащу, если она почва, плотность леса в ней заметно выше
// порога и все четыре соседа тоже выше порога — то есть это внутренность
// лесного массива, а не опушка. Опушка остается проходимой, чтобы лес
// не разрезал карту на недостижимые куски сильнее необходимого.
func BuildBlockedMask(world *domain.WorldData, cfg domain.WorldConfig) *domain.BlockedMask {
	forestField := noise.NewField(rng.DeriveSeed(cfg.Seed, rng.OffsetForest))
	mask := domain.NewBlockedMask(world.Width, world.Height)

	count := 0
	for y := 0; y < world.Height; y++ {
		for x := 0; x < world.Width; x++ {
			if world.GroundAt(x, y) != domain.GroundSoil {
				continue
			}
			if ForestDensityAt(forestField, x, y, cfg) <= cfg.ForestThreshold+interiorMargin {
				continue
			}
			if ForestDensityAt(forestField, x-1, y, cfg) <= cfg.ForestThreshold ||
				ForestDensityAt(forestField, x+1, y, cfg) <= cfg.ForestThreshold ||
				ForestDensityAt(forestField, x, y-1, cfg) <= cfg.ForestThreshold ||
				ForestDensityAt(forestField, x, y+1, cfg) <= cfg.ForestThreshold {
				continue
			}
			mask.Cells[mask.Index(x, y)] = true
			count++
		}
	}

	logger.Log.WithFields(logrus.Fields{
		"component":     "worldgen",
		"blocked_cells": count,
	}).Debug("Blocked mask built")

	return mask
}
