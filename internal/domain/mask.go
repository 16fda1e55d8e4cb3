package domain

// RevealMask — туман войны: какие клетки агент уже наблюдал.
// Монотонна: открытая клетка никогда не закрывается обратно.
// Единственный писатель — systems.RevealAround, остальные только читают.
type RevealMask struct {
	Width  int
	Height int
	Cells  []bool
}

// NewRevealMask создает полностью закрытую маску.
func NewRevealMask(width, height int) *RevealMask {
	return &RevealMask{
		Width:  width,
		Height: height,
		Cells:  make([]bool, width*height),
	}
}

// Index линеаризует координаты клетки.
func (m *RevealMask) Index(x, y int) int {
	return y*m.Width + x
}

// Revealed — открыта ли клетка. За границами — false.
func (m *RevealMask) Revealed(x, y int) bool {
	if x < 0 || x >= m.Width || y < 0 || y >= m.Height {
		return false
	}
	return m.Cells[m.Index(x, y)]
}

// RevealedIndices возвращает индексы всех открытых клеток.
// Используется для первоначального снапшота клиенту.
func (m *RevealMask) RevealedIndices() []int {
	var out []int
	for i, v := range m.Cells {
		if v {
			out = append(out, i)
		}
	}
	return out
}

// BlockedMask — дополнительный слой препятствий поверх типа поверхности
// (например, непроходимая чаща леса). Строится один раз после генерации,
// дальше неизменен.
type BlockedMask struct {
	Width  int
	Height int
	Cells  []bool
}

// NewBlockedMask создает пустую маску препятствий.
func NewBlockedMask(width, height int) *BlockedMask {
	return &BlockedMask{
		Width:  width,
		Height: height,
		Cells:  make([]bool, width*height),
	}
}

// Index линеаризует координаты клетки.
func (m *BlockedMask) Index(x, y int) int {
	return y*m.Width + x
}

// Blocked — заблокирована ли клетка. За границами — false.
// nil-маска означает "препятствий нет": слой опционален для поиска пути.
func (m *BlockedMask) Blocked(x, y int) bool {
	if m == nil {
		return false
	}
	if x < 0 || x >= m.Width || y < 0 || y >= m.Height {
		return false
	}
	return m.Cells[m.Index(x, y)]
}

// BlockedIndices возвращает индексы всех заблокированных клеток.
func (m *BlockedMask) BlockedIndices() []int {
	if m == nil {
		return nil
	}
	var out []int
	for i, v := range m.Cells {
		if v {
			out = append(out, i)
		}
	}
	return out
}
