package domain

import "math"

// WorldData — сгенерированный мир. Создается генератором один раз,
// после этого только читается.
type WorldData struct {
	Width  int
	Height int

	// Heightmap — высоты [0,1], плотный массив row-major (index = x + y*Width).
	Heightmap []float64

	// Ground — классификация поверхности, параллельна Heightmap.
	Ground []Ground

	// Objects — объекты в порядке размещения (скан row-major).
	Objects []Object

	// occupied — плотный индекс занятости клеток объектами.
	// Объекты не двигаются, поэтому индекс строится один раз при размещении.
	occupied []bool
}

// NewWorldData выделяет пустой мир заданного размера.
func NewWorldData(width, height int) *WorldData {
	return &WorldData{
		Width:     width,
		Height:    height,
		Heightmap: make([]float64, width*height),
		Ground:    make([]Ground, width*height),
		occupied:  make([]bool, width*height),
	}
}

// Index линеаризует координаты клетки.
func (w *WorldData) Index(x, y int) int {
	return y*w.Width + x
}

// InBounds проверяет, что клетка внутри сетки.
func (w *WorldData) InBounds(x, y int) bool {
	return x >= 0 && x < w.Width && y >= 0 && y < w.Height
}

// HeightAt возвращает высоту клетки. За границами — 0.
// Дефолт за границами согласован с GroundAt: "снаружи — вода".
func (w *WorldData) HeightAt(x, y int) float64 {
	if !w.InBounds(x, y) {
		return 0
	}
	return w.Heightmap[w.Index(x, y)]
}

// GroundAt возвращает тип поверхности. За границами — вода.
func (w *WorldData) GroundAt(x, y int) Ground {
	if !w.InBounds(x, y) {
		return GroundWater
	}
	return w.Ground[w.Index(x, y)]
}

// Occupied — занята ли клетка объектом. За границами — false.
func (w *WorldData) Occupied(x, y int) bool {
	if !w.InBounds(x, y) {
		return false
	}
	return w.occupied[w.Index(x, y)]
}

// PlaceObject добавляет объект и помечает клетку занятой.
// Вызывается только генератором, границы проверяет размещающее правило.
func (w *WorldData) PlaceObject(x, y int, kind ObjectKind) {
	w.Objects = append(w.Objects, Object{X: x, Y: y, Kind: kind})
	w.occupied[w.Index(x, y)] = true
}

// SlopeAt — максимальный перепад высоты к четырем ортогональным соседям.
// Соседи за границами исключаются из расчета (не читаются как 0).
// Для вырожденной сетки 1x1 возвращает 0.
func (w *WorldData) SlopeAt(x, y int) float64 {
	if !w.InBounds(x, y) {
		return 0
	}
	h := w.Heightmap[w.Index(x, y)]
	slope := 0.0
	for _, d := range [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
		nx, ny := x+d[0], y+d[1]
		if !w.InBounds(nx, ny) {
			continue
		}
		delta := math.Abs(h - w.Heightmap[w.Index(nx, ny)])
		if delta > slope {
			slope = delta
		}
	}
	return slope
}
