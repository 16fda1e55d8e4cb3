package server

import (
	"encoding/json"
	"net/http"

	"fogwalker-server/internal/engine"
)

// DebugHandler предоставляет доступ к внутреннему состоянию симуляции
type DebugHandler struct {
	Service *engine.GameService
}

func NewDebugHandler(s *engine.GameService) *DebugHandler {
	return &DebugHandler{Service: s}
}

// RegisterRoutes регистрирует debug-эндпоинты
func (h *DebugHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/debug/world", h.handleWorldSummary)
	mux.HandleFunc("/debug/objects", h.handleDumpObjects)
}

// /debug/world - сводка по миру и состоянию сессии
func (h *DebugHandler) handleWorldSummary(w http.ResponseWriter, r *http.Request) {
	session := h.Service.Session

	revealedCount := 0
	for _, v := range session.Reveal.Cells {
		if v {
			revealedCount++
		}
	}

	type WorldSummary struct {
		Width       int     `json:"width"`
		Height      int     `json:"height"`
		Seed        int64   `json:"seed"`
		ObjectCount int     `json:"object_count"`
		Blocked     int     `json:"blocked_cells"`
		Revealed    int     `json:"revealed_cells"`
		Tick        int     `json:"tick"`
		AgentX      int     `json:"agent_x"`
		AgentY      int     `json:"agent_y"`
		HasGoal     bool    `json:"has_goal"`
		Subscribers int     `json:"subscribers"`
		SeaLevel    float64 `json:"sea_level"`
	}

	// READ-only доступ из чужой горутины: для дебага сойдет,
	// гонка здесь может дать устаревшую сводку, но не сломать симуляцию
	writeJSON(w, WorldSummary{
		Width:       session.World.Width,
		Height:      session.World.Height,
		Seed:        session.Cfg.Seed,
		ObjectCount: len(session.World.Objects),
		Blocked:     len(session.Blocked.BlockedIndices()),
		Revealed:    revealedCount,
		Tick:        session.Tick,
		AgentX:      session.Agent.X,
		AgentY:      session.Agent.Y,
		HasGoal:     session.HasGoal(),
		Subscribers: h.Service.Hub.Count(),
		SeaLevel:    session.WorldCfg.SeaLevel,
	})
}

// /debug/objects - дамп всех размещенных объектов
func (h *DebugHandler) handleDumpObjects(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Service.Session.World.Objects)
}

func writeJSON(w http.ResponseWriter, data interface{}) {
	// Разрешаем запросы с любого источника (нужно для локального debug_client.html)
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	w.Header().Set("Content-Type", "application/json")

	// Если data == nil (например, пустой список), возвращаем [], а не null
	if data == nil {
		w.Write([]byte("[]"))
		return
	}

	json.NewEncoder(w).Encode(data)
}
