package domain

import "fmt"

// WorldConfig — неизменяемые параметры генерации мира.
// Все пороги — нормализованные доли высоты [0,1], шансы — вероятности [0,1].
type WorldConfig struct {
	Width  int
	Height int
	Seed   uint32

	SeaLevel       float64 // ниже — вода
	MountainHeight float64 // выше — скалы
	SlopeRock      float64 // круче — скалы независимо от высоты
	SandHeight     float64 // полоса песка над уровнем моря
	SandChance     float64

	TreeSlopeMax    float64
	ForestScale     float64 // частота шума плотности леса
	ForestThreshold float64
	TreeChance      float64

	RockSlopeMax float64
	RockChance   float64
}

// DefaultWorldConfig возвращает конфиг с откалиброванными порогами.
// Сид и размеры задает вызывающая сторона.
func DefaultWorldConfig(seed uint32, width, height int) WorldConfig {
	return WorldConfig{
		Width:  width,
		Height: height,
		Seed:   seed,

		SeaLevel:       0.32,
		MountainHeight: 0.72,
		SlopeRock:      0.08,
		SandHeight:     0.04,
		SandChance:     0.8,

		TreeSlopeMax:    0.05,
		ForestScale:     1.0 / 24.0,
		ForestThreshold: 0.56,
		TreeChance:      0.45,

		RockSlopeMax: 0.1,
		RockChance:   0.03,
	}
}

// Validate отсекает заведомо неправильные конфиги до запуска генерации.
// Ошибка здесь — фатальная ошибка конструирования, а не игровое состояние.
func (c WorldConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid grid size %dx%d", c.Width, c.Height)
	}
	if c.SeaLevel >= c.MountainHeight {
		return fmt.Errorf("seaLevel (%v) must be below mountainHeight (%v)", c.SeaLevel, c.MountainHeight)
	}
	return nil
}
