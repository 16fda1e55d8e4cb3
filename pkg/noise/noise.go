package noise

import (
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// Field — непрерывное 2D шумовое поле на базе opensimplex.
// Одинаковое зерно дает одинаковые значения для одинаковых точек.
type Field struct {
	os opensimplex.Noise
}

// NewField создает поле с заданным зерном.
func NewField(seed int64) *Field {
	return &Field{os: opensimplex.New(seed)}
}

// Eval2 возвращает значение шума в точке, диапазон [-1,1].
func (f *Field) Eval2(x, y float64) float64 {
	return f.os.Eval2(x, y)
}

// FBM — фрактальная сумма октав: частота растет в lacunarity раз,
// амплитуда падает в gain раз. Сумма нормируется на суммарную амплитуду
// и приводится из [-1,1] к [0,1].
func FBM(f *Field, x, y float64, octaves int, lacunarity, gain float64) float64 {
	// octaves <= 0 оставил бы нулевой нормирующий множитель
	if octaves <= 0 {
		return 0
	}

	sum := 0.0
	norm := 0.0
	amp := 1.0
	freq := 1.0
	for i := 0; i < octaves; i++ {
		sum += f.Eval2(x*freq, y*freq) * amp
		norm += amp
		amp *= gain
		freq *= lacunarity
	}
	return sum/norm*0.5 + 0.5
}

// RidgedFBM — тот же цикл октав, но каждый сэмпл проходит через (1-|n|)^2.
// Дает острые гребни. Нормируется на суммарную амплитуду, к [0,1] не приводится.
func RidgedFBM(f *Field, x, y float64, octaves int, lacunarity, gain float64) float64 {
	if octaves <= 0 {
		return 0
	}

	sum := 0.0
	norm := 0.0
	amp := 1.0
	freq := 1.0
	for i := 0; i < octaves; i++ {
		n := f.Eval2(x*freq, y*freq)
		r := 1 - math.Abs(n)
		sum += r * r * amp
		norm += amp
		amp *= gain
		freq *= lacunarity
	}
	return sum / norm
}
