package rng

// Stream — детерминированный генератор псевдослучайных чисел.
// Обычный mulberry32: одно 32-битное состояние и целочисленное перемешивание,
// поэтому последовательность одинакова на любой платформе и в любом рантайме.
type Stream struct {
	state uint32
}

// Смещения к мастер-сиду для независимых каналов генерации.
// Каналы независимы, но полностью воспроизводимы из одного сида.
const (
	OffsetHeight    uint32 = 0
	OffsetForest    uint32 = 1013
	OffsetPlacement uint32 = 2027
	OffsetJitter    uint32 = 3041
)

// New создает генератор с заданным зерном.
func New(seed uint32) *Stream {
	return &Stream{state: seed}
}

// Next возвращает следующее число в [0,1).
func (s *Stream) Next() float64 {
	s.state += 0x6D2B79F5
	z := s.state
	z = (z ^ (z >> 15)) * (z | 1)
	z ^= z + (z^(z>>7))*(z|61)
	z ^= z >> 14
	return float64(z) / 4294967296.0
}

// DeriveSeed возвращает 64-битное зерно для канала шума.
// Шумовое поле сидится отдельно от потока бросков, чтобы порядок
// сэмплирования шума не влиял на броски размещения.
func DeriveSeed(seed uint32, offset uint32) int64 {
	return int64(seed) + int64(offset)
}
