package worldgen

import (
	"math"

	"fogwalker-server/internal/domain"
	"fogwalker-server/pkg/logger"
	"fogwalker-server/pkg/noise"
	"fogwalker-server/pkg/rng"

	"github.com/sirupsen/logrus"
)

// Константы генерации
const (
	baseScale     = 1.0 / 80.0 // частота базового шума высот
	heightPow     = 1.05       // легкое прижатие низин
	heightOctaves = 5
	forestOctaves = 3
	lacunarity    = 2.0
	gain          = 0.5

	// Деревья не растут у самой кромки воды
	treeShoreMargin = 0.02
)

// Generate создает мир из конфига.
// Детерминировано: одинаковый конфиг дает побайтово одинаковые массивы.
// Порядок сканирования row-major и порядок потребления бросков — часть
// контракта воспроизводимости: их нельзя менять, не меняя результат.
func Generate(cfg domain.WorldConfig) (*domain.WorldData, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	heightField := noise.NewField(rng.DeriveSeed(cfg.Seed, rng.OffsetHeight))
	forestField := noise.NewField(rng.DeriveSeed(cfg.Seed, rng.OffsetForest))
	placementRolls := rng.New(cfg.Seed + rng.OffsetPlacement)
	sandRolls := rng.New(cfg.Seed + rng.OffsetJitter)

	world := domain.NewWorldData(cfg.Width, cfg.Height)

	// Фаза 1: высоты
	for y := 0; y < cfg.Height; y++ {
		for x := 0; x < cfg.Width; x++ {
			h := noise.FBM(heightField, float64(x)*baseScale, float64(y)*baseScale, heightOctaves, lacunarity, gain)
			world.Heightmap[world.Index(x, y)] = math.Pow(h, heightPow)
		}
	}

	// Фаза 2: классификация поверхности.
	// Приоритет: вода -> скалы (высота или наклон) -> песок у воды -> почва.
	for y := 0; y < cfg.Height; y++ {
		for x := 0; x < cfg.Width; x++ {
			idx := world.Index(x, y)
			h := world.Heightmap[idx]

			switch {
			case h < cfg.SeaLevel:
				world.Ground[idx] = domain.GroundWater
			case h > cfg.MountainHeight || world.SlopeAt(x, y) > cfg.SlopeRock:
				world.Ground[idx] = domain.GroundRock
			case nearWater(world, x, y, cfg.SeaLevel) &&
				h < cfg.SeaLevel+cfg.SandHeight &&
				sandRolls.Next() < cfg.SandChance:
				world.Ground[idx] = domain.GroundSand
			default:
				world.Ground[idx] = domain.GroundSoil
			}
		}
	}

	// Фаза 3: размещение объектов. Выполняется строго после полной
	// классификации, бросками из выделенного канала в row-major порядке.
	for y := 0; y < cfg.Height; y++ {
		for x := 0; x < cfg.Width; x++ {
			idx := world.Index(x, y)
			h := world.Heightmap[idx]
			slope := world.SlopeAt(x, y)

			switch world.Ground[idx] {
			case domain.GroundSoil:
				if slope >= cfg.TreeSlopeMax || h <= cfg.SeaLevel+treeShoreMargin {
					continue
				}
				density := ForestDensityAt(forestField, x, y, cfg)
				if density > cfg.ForestThreshold && placementRolls.Next() < cfg.TreeChance {
					world.PlaceObject(x, y, domain.ObjectTree)
				}
			case domain.GroundRock:
				if slope < cfg.RockSlopeMax && placementRolls.Next() < cfg.RockChance {
					world.PlaceObject(x, y, domain.ObjectRock)
				}
			}
		}
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "worldgen",
		"seed":      cfg.Seed,
		"size":      [2]int{cfg.Width, cfg.Height},
		"objects":   len(world.Objects),
	}).Info("World generated")

	return world, nil
}

// ForestDensityAt — поле плотности леса. Общее для размещения деревьев
// и для построения маски непроходимой чащи.
func ForestDensityAt(forestField *noise.Field, x, y int, cfg domain.WorldConfig) float64 {
	return noise.FBM(forestField, float64(x)*cfg.ForestScale, float64(y)*cfg.ForestScale, forestOctaves, lacunarity, gain)
}

// nearWater — есть ли вода в радиусе 2 клеток (метрика Чебышева).
// "Вода" на этом этапе — высота ниже уровня моря: массив Ground еще
// заполняется, читать его нельзя. HeightAt за границами возвращает 0,
// то есть снаружи карты читается вода — это согласовано с GroundAt.
func nearWater(w *domain.WorldData, x, y int, seaLevel float64) bool {
	for dy := -2; dy <= 2; dy++ {
		for dx := -2; dx <= 2; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if w.HeightAt(x+dx, y+dy) < seaLevel {
				return true
			}
		}
	}
	return false
}
