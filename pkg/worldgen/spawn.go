package worldgen

import (
	"strconv"
	"strings"

	"fogwalker-server/internal/domain"
	"fogwalker-server/internal/systems"
	"fogwalker-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// FindSpawn ищет стартовую клетку расширяющимся сканом от центра сетки.
//
// На каждом радиусе r заново сканируется весь квадрат (2r+1)x(2r+1):
// внутренние клетки пересматриваются, но первый подходящий результат
// обрывает поиск. Именно этот порядок перебора определяет, какая из
// равноудаленных клеток победит — не "оптимизировать" в настоящий BFS,
// не проверив, что выбор среди равных кандидатов не изменился.
func FindSpawn(world *domain.WorldData, blocked *domain.BlockedMask, maxSlope, seaLevel float64) domain.GridPoint {
	cx, cy := world.Width/2, world.Height/2
	maxR := world.Width
	if world.Height > maxR {
		maxR = world.Height
	}

	for r := 0; r <= maxR; r++ {
		for y := cy - r; y <= cy+r; y++ {
			for x := cx - r; x <= cx+r; x++ {
				if Spawnable(world, blocked, x, y, maxSlope, seaLevel) {
					return domain.GridPoint{X: x, Y: y}
				}
			}
		}
	}

	// Молчаливая деградация до (0,0) недопустима без следа в логе:
	// fallback-клетка сама может быть непроходимой
	logger.Log.WithFields(logrus.Fields{
		"component": "worldgen",
		"max_slope": maxSlope,
	}).Warn("No spawnable cell in the entire grid, falling back to (0,0)")
	return domain.GridPoint{}
}

// Spawnable — можно ли поставить агента на клетку.
// Те же требования, что у проходимости (без учета тумана), плюс высота
// не ниже уровня моря и наклон не круче maxSlope.
func Spawnable(world *domain.WorldData, blocked *domain.BlockedMask, x, y int, maxSlope, seaLevel float64) bool {
	if !systems.IsStandable(world, blocked, x, y) {
		return false
	}
	if world.HeightAt(x, y) < seaLevel {
		return false
	}
	return world.SlopeAt(x, y) <= maxSlope
}

// ResolveSpawn обрабатывает внешнее переопределение точки спавна.
// Вход недоверенный: принимаются токен "center" либо пара "x,y",
// координаты проходят ту же проверку Spawnable. Все невалидное
// деградирует до обычного поиска, а не до ошибки.
func ResolveSpawn(world *domain.WorldData, blocked *domain.BlockedMask, override string, maxSlope, seaLevel float64) domain.GridPoint {
	override = strings.TrimSpace(override)

	switch {
	case override == "" || override == "center":
		// "center" — дефолтная эвристика, отдельной ветки не требует

	case strings.Contains(override, ","):
		parts := strings.SplitN(override, ",", 2)
		x, errX := strconv.Atoi(strings.TrimSpace(parts[0]))
		y, errY := strconv.Atoi(strings.TrimSpace(parts[1]))
		if errX == nil && errY == nil && Spawnable(world, blocked, x, y, maxSlope, seaLevel) {
			return domain.GridPoint{X: x, Y: y}
		}
		logger.Log.WithFields(logrus.Fields{
			"component": "worldgen",
			"override":  override,
		}).Warn("Spawn override rejected, using default search")

	default:
		logger.Log.WithFields(logrus.Fields{
			"component": "worldgen",
			"override":  override,
		}).Warn("Unknown spawn override token, using default search")
	}

	return FindSpawn(world, blocked, maxSlope, seaLevel)
}
