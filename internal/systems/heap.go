package systems

// nodeHeap — бинарная мин-куча по f-оценке с обратным индексом позиций.
// Узлы — примитивные линейные индексы клеток, а не объекты: decrease-key
// работает через обратный индекс и не порождает аллокаций в цикле поиска.
type nodeHeap struct {
	items []int     // индексы клеток в порядке кучи
	pos   []int     // клетка -> позиция в items, -1 если клетки в куче нет
	score []float64 // f-оценка каждой клетки
}

func newNodeHeap(cells int) *nodeHeap {
	pos := make([]int, cells)
	for i := range pos {
		pos[i] = -1
	}
	return &nodeHeap{
		pos:   pos,
		score: make([]float64, cells),
	}
}

func (h *nodeHeap) empty() bool {
	return len(h.items) == 0
}

// push добавляет клетку или уменьшает ее f-оценку, если она уже в куче.
// A* никогда не увеличивает оценку, поэтому достаточно всплытия.
func (h *nodeHeap) push(idx int, f float64) {
	if p := h.pos[idx]; p >= 0 {
		if f >= h.score[idx] {
			return
		}
		h.score[idx] = f
		h.siftUp(p)
		return
	}
	h.score[idx] = f
	h.items = append(h.items, idx)
	h.pos[idx] = len(h.items) - 1
	h.siftUp(len(h.items) - 1)
}

// pop извлекает клетку с минимальной f-оценкой.
func (h *nodeHeap) pop() int {
	top := h.items[0]
	last := len(h.items) - 1
	h.swap(0, last)
	h.items = h.items[:last]
	h.pos[top] = -1
	if last > 0 {
		h.siftDown(0)
	}
	return top
}

func (h *nodeHeap) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if h.score[h.items[i]] >= h.score[h.items[parent]] {
			return
		}
		h.swap(i, parent)
		i = parent
	}
}

func (h *nodeHeap) siftDown(i int) {
	n := len(h.items)
	for {
		left := 2*i + 1
		if left >= n {
			return
		}
		smallest := left
		if right := left + 1; right < n && h.score[h.items[right]] < h.score[h.items[left]] {
			smallest = right
		}
		if h.score[h.items[i]] <= h.score[h.items[smallest]] {
			return
		}
		h.swap(i, smallest)
		i = smallest
	}
}

func (h *nodeHeap) swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.pos[h.items[i]] = i
	h.pos[h.items[j]] = j
}
