package systems

import (
	"math"

	"fogwalker-server/internal/domain"
	"fogwalker-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Options — параметры поиска пути.
type Options struct {
	// MaxSlope — жесткий порог перепада высоты между соседними клетками.
	// Превышение отсекает ребро целиком, а не удорожает его.
	MaxSlope float64

	// AllowDiagonal добавляет 8-связность с диагональной стоимостью sqrt(2).
	AllowDiagonal bool

	// Blocked — опциональный слой препятствий, может быть nil.
	Blocked *domain.BlockedMask
}

// Шаги к соседям: сначала четыре ортогональных, затем четыре диагональных.
// Порядок важен для стоимости ребра (индексы >= 4 — диагонали).
var neighborSteps = [8][2]int{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
}

// FindPath ищет кратчайший маршрут классическим A* по клеткам сетки.
// Возвращает маршрут от старта до цели включительно, либо nil, если пути нет.
// "Пути нет" — ожидаемый исход нормальной игры, не ошибка.
//
// Предусловия: обе точки в границах, цель открыта туманом и проходима.
// Невыполнение — немедленный отказ без запуска поиска.
func FindPath(world *domain.WorldData, reveal *domain.RevealMask, start, goal domain.GridPoint, opts Options) domain.Path {
	if !world.InBounds(start.X, start.Y) || !world.InBounds(goal.X, goal.Y) {
		return nil
	}
	if !IsPassable(world, reveal, opts.Blocked, goal.X, goal.Y) {
		return nil
	}
	if start == goal {
		return domain.Path{start}
	}

	cells := world.Width * world.Height
	gScore := make([]float64, cells)
	parent := make([]int, cells)
	closed := make([]bool, cells)
	for i := range gScore {
		gScore[i] = math.Inf(1)
		parent[i] = -1
	}

	startIdx := world.Index(start.X, start.Y)
	goalIdx := world.Index(goal.X, goal.Y)

	open := newNodeHeap(cells)
	gScore[startIdx] = 0
	open.push(startIdx, octile(start, goal))

	steps := neighborSteps[:4]
	if opts.AllowDiagonal {
		steps = neighborSteps[:]
	}

	for !open.empty() {
		currentIdx := open.pop()
		if currentIdx == goalIdx {
			return reconstruct(world, parent, goalIdx)
		}
		closed[currentIdx] = true

		cx, cy := currentIdx%world.Width, currentIdx/world.Width
		currentHeight := world.Heightmap[currentIdx]

		for i, d := range steps {
			nx, ny := cx+d[0], cy+d[1]
			if !IsPassable(world, reveal, opts.Blocked, nx, ny) {
				continue
			}
			neighborIdx := world.Index(nx, ny)
			if closed[neighborIdx] {
				continue
			}
			// Жесткий порог наклона: слишком крутое ребро не существует
			if math.Abs(currentHeight-world.Heightmap[neighborIdx]) > opts.MaxSlope {
				continue
			}

			stepCost := 1.0
			if i >= 4 {
				stepCost = math.Sqrt2
			}
			g := gScore[currentIdx] + stepCost
			if g >= gScore[neighborIdx] {
				continue
			}
			gScore[neighborIdx] = g
			parent[neighborIdx] = currentIdx
			open.push(neighborIdx, g+octile(domain.GridPoint{X: nx, Y: ny}, goal))
		}
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "pathfind_system",
		"start":     start,
		"goal":      goal,
	}).Debug("Open set exhausted, no path.")
	return nil
}

// octile — допустимая эвристика для сетки с единичными и sqrt(2) ребрами.
func octile(a, b domain.GridPoint) float64 {
	dx := abs(a.X - b.X)
	dy := abs(a.Y - b.Y)
	return float64(dx+dy) + (math.Sqrt2-2)*float64(min(dx, dy))
}

// reconstruct разворачивает цепочку родителей от цели к старту.
func reconstruct(world *domain.WorldData, parent []int, idx int) domain.Path {
	var path domain.Path
	for idx != -1 {
		path = append(path, domain.GridPoint{X: idx % world.Width, Y: idx / world.Width})
		idx = parent[idx]
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// PathCost — суммарная стоимость ребер маршрута (1 ортогональ, sqrt(2) диагональ).
func PathCost(p domain.Path) float64 {
	cost := 0.0
	for i := 1; i < len(p); i++ {
		if p[i].X != p[i-1].X && p[i].Y != p[i-1].Y {
			cost += math.Sqrt2
		} else {
			cost++
		}
	}
	return cost
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
