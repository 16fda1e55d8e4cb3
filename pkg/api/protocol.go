package api

import "encoding/json"

// --- КЛИЕНТ -> СЕРВЕР ---

// Типы действий клиента. INIT и UPDATE также служат типами ответов сервера.
const (
	ActionInit     = "INIT"
	ActionNavigate = "NAVIGATE"
	ActionUpdate   = "UPDATE"
)

// ClientCommand — команда от клиента.
type ClientCommand struct {
	// Action тип команды: INIT | NAVIGATE.
	Action string `json:"action"`

	// Payload параметры команды, формат зависит от Action.
	Payload json.RawMessage `json:"payload,omitempty"`

	// ClientID проставляется сервером при чтении из сокета,
	// клиент его не присылает.
	ClientID string `json:"-"`
}

// NavigatePayload — цель навигации: клетка, по которой кликнул клиент.
type NavigatePayload struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// --- СЕРВЕР -> КЛИЕНТ ---

// ServerResponse — корневой объект, который сервер отправляет клиенту.
// INIT несет полный снимок мира (один раз на подключение),
// UPDATE — инкрементальные изменения на каждом шаге агента.
type ServerResponse struct {
	// Type тип сообщения: INIT | UPDATE.
	Type string `json:"type"`

	// Tick текущее время симуляции.
	Tick int `json:"tick"`

	// Grid размеры карты, чтобы клиент подготовил сетку для рендеринга.
	Grid *GridMeta `json:"grid,omitempty"`

	// World полный снимок мира. Только в INIT.
	World *WorldView `json:"world,omitempty"`

	// Agent текущая клетка агента.
	Agent *PointView `json:"agent,omitempty"`

	// Revealed индексы клеток, открытых С ПРОШЛОГО обновления.
	// Клиент обновляет только их, не пересканируя всю сетку.
	Revealed []int `json:"revealed,omitempty"`

	// Path остаток активного маршрута (включая текущую клетку агента).
	Path []PointView `json:"path,omitempty"`

	// NoPath true, если последний запрос навигации не нашел маршрута.
	// Это штатный исход, клиент просто сбрасывает маркер цели.
	NoPath bool `json:"noPath,omitempty"`
}

// GridMeta содержит общие размеры карты.
type GridMeta struct {
	Width  int `json:"w"`
	Height int `json:"h"`
}

// WorldView — полный снимок сгенерированного мира для первой отрисовки.
type WorldView struct {
	// Heightmap высоты [0,1], row-major.
	Heightmap []float64 `json:"heightmap"`

	// Ground типы поверхности (0 вода, 1 песок, 2 почва, 3 скалы).
	Ground []uint8 `json:"ground"`

	// Objects размещенные объекты в порядке генерации.
	Objects []ObjectView `json:"objects"`

	// Blocked индексы клеток непроходимой чащи.
	Blocked []int `json:"blocked,omitempty"`

	// Revealed индексы уже открытых клеток (стартовая область видимости).
	Revealed []int `json:"revealed,omitempty"`
}

// ObjectView — DTO объекта на карте.
type ObjectView struct {
	X    int    `json:"x"`
	Y    int    `json:"y"`
	Kind string `json:"kind"` // tree | rock
}

// PointView — DTO клетки.
type PointView struct {
	X int `json:"x"`
	Y int `json:"y"`
}
