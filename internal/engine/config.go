package engine

import "time"

// Config хранит параметры запуска сессии.
type Config struct {
	// Seed - мастер-зерно. Все каналы генерации (высоты, лес, размещение)
	// производны от него через фиксированные смещения.
	Seed int64

	// Width, Height - размеры мира в клетках.
	Width  int
	Height int

	// TickRate - шагов агента в секунду.
	TickRate int

	// RevealRadius - радиус открытия тумана вокруг агента.
	RevealRadius int

	// MaxSlope - максимальный проходимый перепад высоты между клетками.
	MaxSlope float64

	// AllowDiagonal - разрешить диагональные шаги маршрута.
	AllowDiagonal bool

	// SpawnOverride - недоверенное переопределение точки спавна:
	// "center", "x,y" или пусто.
	SpawnOverride string
}

// NewConfig создает конфиг по умолчанию (случайный сид)
func NewConfig() Config {
	return Config{
		Seed:          time.Now().UnixNano(),
		Width:         160,
		Height:        160,
		TickRate:      8,
		RevealRadius:  6,
		MaxSlope:      0.045,
		AllowDiagonal: true,
	}
}
