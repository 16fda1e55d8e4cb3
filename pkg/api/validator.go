package api

import "errors"

// Validator - интерфейс, который могут реализовать DTO
type Validator interface {
	Validate() error
}

func (p NavigatePayload) Validate() error {
	// Верхнюю границу знает только движок (размер мира),
	// здесь отсекаем заведомый мусор
	if p.X < 0 || p.Y < 0 {
		return errors.New("navigation target must be non-negative")
	}
	return nil
}
